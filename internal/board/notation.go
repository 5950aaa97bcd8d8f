package board

import (
	"fmt"
)

// String renders c in the user-facing notation: letter column (A-S),
// 1-based row. NoCoord renders as "-".
func (c Coord) String() string {
	if !c.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'A'+rune(c.Col), c.Row+1)
}

// ParseCoord parses the user-facing notation produced by String.
func ParseCoord(s string) (Coord, error) {
	if len(s) < 2 {
		return NoCoord, fmt.Errorf("board: coordinate %q too short", s)
	}
	col := int(s[0])
	switch {
	case col >= 'A' && col <= 'Z':
		col -= 'A'
	case col >= 'a' && col <= 'z':
		col -= 'a'
	default:
		return NoCoord, fmt.Errorf("board: coordinate %q has no column letter", s)
	}
	var row int
	if _, err := fmt.Sscanf(s[1:], "%d", &row); err != nil {
		return NoCoord, fmt.Errorf("board: coordinate %q has no row number: %w", s, err)
	}
	c := Coord{Row: row - 1, Col: col}
	if !c.Valid() {
		return NoCoord, fmt.Errorf("board: coordinate %q is off-board", s)
	}
	return c, nil
}
