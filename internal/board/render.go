package board

import (
	"fmt"
	"strings"
)

// Render draws the grid as a text diagram for CLI output: '.' for empty,
// 'X' for P1, 'O' for P2, column letters along the top.
func (p *Position) Render() string {
	var b strings.Builder
	b.WriteString("   ")
	for c := 0; c < Size; c++ {
		fmt.Fprintf(&b, "%c ", 'A'+c)
	}
	b.WriteByte('\n')

	for r := 0; r < Size; r++ {
		fmt.Fprintf(&b, "%2d ", r+1)
		for c := 0; c < Size; c++ {
			switch p.Grid[r][c] {
			case P1:
				b.WriteString("X ")
			case P2:
				b.WriteString("O ")
			default:
				b.WriteString(". ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
