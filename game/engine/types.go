package engine

import (
	"errors"
	"fmt"
)

// CellMark represents the display value of a single grid cell
type CellMark rune

const (
	MarkEmpty CellMark = '~'
	MarkShip  CellMark = 'O'
	MarkHit   CellMark = 'X'
	MarkMiss  CellMark = 'M'

	// Board constants
	GridSize  = 10
	FirstRow  = 'A'
	LastRow   = FirstRow + GridSize - 1
	FleetSize = 5
)

// Error kinds. All of them are recoverable: the caller re-prompts and the board is unchanged.
var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrPlacementRule     = errors.New("invalid ship placement")
	ErrAdjacency         = errors.New("ship too close to another ship")
)

// RuleError carries one of the error kinds together with the text shown to the player
type RuleError struct {
	Kind   error
	Reason string
}

func newRuleError(kind error, format string, args ...any) *RuleError {
	return &RuleError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// Error returns the player-facing reason
func (e *RuleError) Error() string {
	return e.Reason
}

// Unwrap exposes the kind so callers can use errors.Is
func (e *RuleError) Unwrap() error {
	return e.Kind
}

// ShipType is one of the five ship classes in a fleet
type ShipType int

const (
	AircraftCarrier ShipType = iota
	Battleship
	Submarine
	Cruiser
	Destroyer
)

// Fleet lists every ship a player places, in placement order
var Fleet = []ShipType{AircraftCarrier, Battleship, Submarine, Cruiser, Destroyer}

var shipSizes = map[ShipType]int{
	AircraftCarrier: 5,
	Battleship:      4,
	Submarine:       3,
	Cruiser:         3,
	Destroyer:       2,
}

var shipNames = map[ShipType]string{
	AircraftCarrier: "Aircraft carrier",
	Battleship:      "Battleship",
	Submarine:       "Submarine",
	Cruiser:         "Cruiser",
	Destroyer:       "Destroyer",
}

// Size returns the number of cells the ship occupies
func (st ShipType) Size() int {
	return shipSizes[st]
}

// Name returns the human readable ship name
func (st ShipType) Name() string {
	if name, ok := shipNames[st]; ok {
		return name
	}
	return fmt.Sprintf("ShipType(%d)", int(st))
}

// FullName returns the name followed by the ship size, e.g. "Submarine (3 cells)"
func (st ShipType) FullName() string {
	return fmt.Sprintf("%s (%d cells)", st.Name(), st.Size())
}

// String implements fmt.Stringer
func (st ShipType) String() string {
	return st.Name()
}

// Coordinate is a zero-based (row, column) pair on the board
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ShotOutcome describes how a single shot resolved against a Battlefield
type ShotOutcome struct {
	Target Coordinate `json:"target"`
	Hit    bool       `json:"hit"`
	Sunk   bool       `json:"sunk"`
	Repeat bool       `json:"repeat"`
}

// GameConfig holds the player names and the texts shown by the console
type GameConfig struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Players     []string `json:"players" yaml:"players"`
	Messages    Messages `json:"messages" yaml:"messages"`
}

// Messages are the player-facing texts of a game configuration
type Messages struct {
	PlaceShips       string `json:"place_ships" yaml:"place_ships"`             // %s: owner
	EnterCoordinates string `json:"enter_coordinates" yaml:"enter_coordinates"` // %s: ship full name
	PassTurn         string `json:"pass_turn" yaml:"pass_turn"`
	YourTurn         string `json:"your_turn" yaml:"your_turn"` // %s: owner
	Hit              string `json:"hit" yaml:"hit"`
	Miss             string `json:"miss" yaml:"miss"`
	Sank             string `json:"sank" yaml:"sank"`
	Victory          string `json:"victory" yaml:"victory"`
	TryAgain         string `json:"try_again" yaml:"try_again"`
}
