package engine

// Game routes actions to one of two Battlefields and decides when play stops.
// It never reads or changes grid contents itself.
//
// Like Battlefield, a Game is not safe for concurrent use.
type Game struct {
	battlefields [2]*Battlefield
	current      int
}

// NewGame creates a game in which first moves first
func NewGame(first, second *Battlefield) *Game {
	return &Game{
		battlefields: [2]*Battlefield{first, second},
	}
}

// SwitchTurn hands the move to the other player
func (g *Game) SwitchTurn() {
	g.current = 1 - g.current
}

// CurrentIndex returns 0 or 1 depending on whose turn it is
func (g *Game) CurrentIndex() int {
	return g.current
}

// Current returns the board of the player whose turn it is
func (g *Game) Current() *Battlefield {
	return g.battlefields[g.current]
}

// Opponent returns the board the current player is firing at
func (g *Game) Opponent() *Battlefield {
	return g.battlefields[1-g.current]
}

// Battlefield returns the board at index 0 or 1
func (g *Game) Battlefield(index int) *Battlefield {
	return g.battlefields[index]
}

// IsOngoing returns true while neither player has lost the whole fleet
func (g *Game) IsOngoing() bool {
	return g.battlefields[0].ShipsSunk() < FleetSize &&
		g.battlefields[1].ShipsSunk() < FleetSize
}

// Winner returns the board of the player who sank the other fleet, or nil
// while the game is still being played
func (g *Game) Winner() *Battlefield {
	switch {
	case g.battlefields[1].ShipsSunk() >= FleetSize:
		return g.battlefields[0]
	case g.battlefields[0].ShipsSunk() >= FleetSize:
		return g.battlefields[1]
	default:
		return nil
	}
}
