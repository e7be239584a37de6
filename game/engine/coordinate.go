package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCoordinate parses a token such as "A5" or "J10".
// The row letter must be an uppercase 'A'..'J' and the column a plain decimal 1..10.
func ParseCoordinate(token string) (Coordinate, error) {
	token = strings.TrimSpace(token)
	if len(token) < 2 {
		return Coordinate{}, newRuleError(ErrInvalidCoordinate, "You entered the wrong coordinates!")
	}

	letter := token[0]
	if letter < FirstRow || letter > LastRow {
		return Coordinate{}, newRuleError(ErrInvalidCoordinate, "You entered the wrong coordinates! Rows go from %c to %c.", FirstRow, LastRow)
	}

	digits := token[1:]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Coordinate{}, newRuleError(ErrInvalidCoordinate, "You entered the wrong coordinates!")
		}
	}

	column, err := strconv.Atoi(digits)
	if err != nil {
		return Coordinate{}, newRuleError(ErrInvalidCoordinate, "You entered the wrong coordinates!")
	}
	if column < 1 || column > GridSize {
		return Coordinate{}, newRuleError(ErrInvalidCoordinate, "You entered the wrong coordinates! Columns go from 1 to %d.", GridSize)
	}

	return Coordinate{Row: int(letter - FirstRow), Col: column - 1}, nil
}

// MustParseCoordinate is like ParseCoordinate but panics on malformed input.
// It is meant for literals in tests and fixtures.
func MustParseCoordinate(token string) Coordinate {
	c, err := ParseCoordinate(token)
	if err != nil {
		panic(err)
	}
	return c
}

// Valid reports whether both components are on the board
func (c Coordinate) Valid() bool {
	return c.Row >= 0 && c.Row < GridSize && c.Col >= 0 && c.Col < GridSize
}

// String renders the coordinate in input format, e.g. "C7"
func (c Coordinate) String() string {
	if !c.Valid() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%d", rune(FirstRow+c.Row), c.Col+1)
}

// Precedes reports whether c comes before o in reading order (row first, then column)
func (c Coordinate) Precedes(o Coordinate) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// neighbors returns the orthogonal neighbors of c that are on the board
func (c Coordinate) neighbors() []Coordinate {
	candidates := []Coordinate{
		{Row: c.Row - 1, Col: c.Col},
		{Row: c.Row + 1, Col: c.Col},
		{Row: c.Row, Col: c.Col - 1},
		{Row: c.Row, Col: c.Col + 1},
	}

	result := make([]Coordinate, 0, len(candidates))
	for _, n := range candidates {
		if n.Valid() {
			result = append(result, n)
		}
	}
	return result
}
