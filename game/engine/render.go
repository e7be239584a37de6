package engine

import (
	"fmt"
	"strings"
)

// Render draws the board as text: a header of column numbers followed by
// one row per letter. With fogOfWar set, ships that have not been hit are
// drawn as open water.
func Render(b *Battlefield, fogOfWar bool) string {
	var sb strings.Builder

	sb.WriteString(" ")
	for col := 1; col <= GridSize; col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteString("\n")

	for row := 0; row < GridSize; row++ {
		sb.WriteRune(rune(FirstRow + row))
		for col := 0; col < GridSize; col++ {
			mark := b.Mark(Coordinate{Row: row, Col: col})
			if fogOfWar && mark == MarkShip {
				mark = MarkEmpty
			}
			sb.WriteByte(' ')
			sb.WriteRune(rune(mark))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// CountMarks counts the cells showing the given mark
func CountMarks(b *Battlefield, mark CellMark) int {
	count := 0
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if b.Mark(Coordinate{Row: row, Col: col}) == mark {
				count++
			}
		}
	}
	return count
}
