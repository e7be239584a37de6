package engine

import (
	"strings"
)

// Battlefield is one player's 10x10 board: where the ships are, where the
// opponent has fired, and how many ships have been sunk.
//
// A Battlefield is not safe for concurrent use. Exactly one player acts on
// it at a time and control only passes between turns.
type Battlefield struct {
	owner     string
	occupied  [GridSize][GridSize]bool
	shotAt    [GridSize][GridSize]bool
	shipsSunk int
}

// NewBattlefield creates an empty board for the given owner
func NewBattlefield(owner string) *Battlefield {
	return &Battlefield{owner: owner}
}

// Owner returns the name of the player the board belongs to
func (b *Battlefield) Owner() string {
	return b.owner
}

// ShipsSunk returns how many of the owner's ships have been sunk
func (b *Battlefield) ShipsSunk() int {
	return b.shipsSunk
}

// IncreaseShipSunkNumber records one more sunk ship.
// Callers invoke it once per distinct ship; Fire does this for them.
func (b *Battlefield) IncreaseShipSunkNumber() {
	b.shipsSunk++
}

// Mark derives the display value of a cell from the occupancy and shot layers.
// Cells off the board read as empty.
func (b *Battlefield) Mark(c Coordinate) CellMark {
	if !c.Valid() {
		return MarkEmpty
	}
	occupied := b.occupied[c.Row][c.Col]
	switch {
	case b.shotAt[c.Row][c.Col] && occupied:
		return MarkHit
	case b.shotAt[c.Row][c.Col]:
		return MarkMiss
	case occupied:
		return MarkShip
	default:
		return MarkEmpty
	}
}

// IsOccupied reports whether a ship covers the cell
func (b *Battlefield) IsOccupied(c Coordinate) bool {
	return c.Valid() && b.occupied[c.Row][c.Col]
}

// OccupiedCells returns the number of cells covered by ships
func (b *Battlefield) OccupiedCells() int {
	count := 0
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if b.occupied[r][c] {
				count++
			}
		}
	}
	return count
}

// AreCoordinatesValid checks that nose and tail are on the board, on the same
// row or column, and span exactly st.Size() cells. The endpoints may be given
// in either order.
func (b *Battlefield) AreCoordinatesValid(nose, tail Coordinate, st ShipType) error {
	if !nose.Valid() || !tail.Valid() {
		return newRuleError(ErrInvalidCoordinate, "You entered the wrong coordinates!")
	}
	if tail.Precedes(nose) {
		nose, tail = tail, nose
	}

	size := st.Size()
	switch {
	case nose.Row == tail.Row:
		if tail.Col-nose.Col+1 != size {
			return newRuleError(ErrPlacementRule, "Wrong length of the %s!", st.Name())
		}
	case nose.Col == tail.Col:
		if tail.Row-nose.Row+1 != size {
			return newRuleError(ErrPlacementRule, "Wrong length of the %s!", st.Name())
		}
	default:
		return newRuleError(ErrPlacementRule, "Wrong ship location!")
	}

	return nil
}

// IsPlacementValid runs AreCoordinatesValid and then makes sure no ship lies
// inside the segment's bounding box grown by one cell on every side.
// Ships may neither overlap nor touch, diagonals included.
func (b *Battlefield) IsPlacementValid(nose, tail Coordinate, st ShipType) error {
	if err := b.AreCoordinatesValid(nose, tail, st); err != nil {
		return err
	}
	if tail.Precedes(nose) {
		nose, tail = tail, nose
	}

	top, left := max(nose.Row-1, 0), max(nose.Col-1, 0)
	bottom, right := min(tail.Row+1, GridSize-1), min(tail.Col+1, GridSize-1)

	for r := top; r <= bottom; r++ {
		for c := left; c <= right; c++ {
			if b.occupied[r][c] {
				return newRuleError(ErrAdjacency, "You placed it too close to another one.")
			}
		}
	}

	return nil
}

// PlaceShip parses "nose tail" (either order) and places a ship of type st.
// On error the board is left untouched.
func (b *Battlefield) PlaceShip(raw string, st ShipType) error {
	tokens := strings.Fields(raw)
	if len(tokens) != 2 {
		return newRuleError(ErrPlacementRule, "Enter exactly two coordinates, like A1 A5.")
	}

	nose, err := ParseCoordinate(tokens[0])
	if err != nil {
		return err
	}
	tail, err := ParseCoordinate(tokens[1])
	if err != nil {
		return err
	}
	if tail.Precedes(nose) {
		nose, tail = tail, nose
	}

	if err := b.IsPlacementValid(nose, tail, st); err != nil {
		return err
	}

	for r := nose.Row; r <= tail.Row; r++ {
		for c := nose.Col; c <= tail.Col; c++ {
			b.occupied[r][c] = true
		}
	}

	return nil
}

// TakeAShot fires at the cell named by raw and reports whether it hit a ship.
// Firing at the same cell again is allowed and resolves the same way.
func (b *Battlefield) TakeAShot(raw string) (bool, error) {
	target, err := ParseCoordinate(raw)
	if err != nil {
		return false, err
	}

	b.shotAt[target.Row][target.Col] = true
	return b.occupied[target.Row][target.Col], nil
}

// WasShotAlready reports whether the cell has been fired upon
func (b *Battlefield) WasShotAlready(c Coordinate) bool {
	return c.Valid() && b.shotAt[c.Row][c.Col]
}

// IsShipSunk reports whether the ship covering c has been hit on every cell.
// Ships are straight and never touch, so it is enough to follow the line
// through c in each direction until the ship ends.
func (b *Battlefield) IsShipSunk(c Coordinate) bool {
	if b.Mark(c) != MarkHit || b.HasUnhitNeighbor(c) {
		return false
	}

	directions := []Coordinate{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}
	for _, d := range directions {
		next := Coordinate{Row: c.Row + d.Row, Col: c.Col + d.Col}
		for next.Valid() && b.occupied[next.Row][next.Col] {
			if !b.shotAt[next.Row][next.Col] {
				return false
			}
			next = Coordinate{Row: next.Row + d.Row, Col: next.Col + d.Col}
		}
	}

	return true
}

// Fire resolves a shot the way a turn should: the previous shot state is read
// before the shot lands, and the sunk counter only moves the first time the
// last cell of a ship is hit.
func (b *Battlefield) Fire(raw string) (ShotOutcome, error) {
	target, err := ParseCoordinate(raw)
	if err != nil {
		return ShotOutcome{}, err
	}

	wasShot := b.WasShotAlready(target)
	hit, err := b.TakeAShot(target.String())
	if err != nil {
		return ShotOutcome{}, err
	}

	outcome := ShotOutcome{Target: target, Hit: hit, Repeat: wasShot}
	if hit && !wasShot && b.IsShipSunk(target) {
		b.IncreaseShipSunkNumber()
		outcome.Sunk = true
	}

	return outcome, nil
}

// HasUnhitNeighbor reports whether an orthogonal neighbor of c still shows an
// un-hit ship cell. This is the local check the sunk rule is built around.
func (b *Battlefield) HasUnhitNeighbor(c Coordinate) bool {
	for _, n := range c.neighbors() {
		if b.Mark(n) == MarkShip {
			return true
		}
	}
	return false
}
