package rules

import (
	"github.com/jainavas/gomoku-engine/internal/board"
)

// FindCaptures returns the cells that would be removed if player placed at
// m, without mutating pos. A capture fires in a direction d when the
// sequence m, m+d, m+2d, m+3d reads Self, Opp, Opp, Self; the two opponent
// stones are reported as a pair. Checking all 8 neighbor directions forward
// from m covers both brackets of every line, since the direction table
// contains each axis in both signs.
func FindCaptures(pos *board.Position, m board.Coord, player board.Player) []board.Coord {
	opponent := player.Opponent()
	var captured []board.Coord

	for _, d := range board.NeighborDirections {
		p1 := board.Coord{Row: m.Row + d.Row, Col: m.Col + d.Col}
		p2 := board.Coord{Row: m.Row + 2*d.Row, Col: m.Col + 2*d.Col}
		p3 := board.Coord{Row: m.Row + 3*d.Row, Col: m.Col + 3*d.Col}
		if !p1.Valid() || !p2.Valid() || !p3.Valid() {
			continue
		}
		if pos.At(p1) == opponent && pos.At(p2) == opponent && pos.At(p3) == player {
			captured = append(captured, p1, p2)
		}
	}

	return captured
}

// CanBreakLineByCapture checks whether winner's opponent can play a single
// stone that captures at least one of the run's stones (run positions
// runStart, runStart+d, ..., runStart+4d along d). A pair along the run's own
// direction can never be captured this way: the cell just past either run
// stone in a contiguous 5-run is always another run stone, not an empty
// bracket target. The capturable pair is instead one run stone plus an
// adjacent winner stone lying off the run's line (the base capture rule
// fires in any of the 8 directions, not just d); if collect is non-nil, every
// breaking move found is appended to it.
func CanBreakLineByCapture(pos *board.Position, runStart, d board.Coord, winner board.Player, collect *[]board.Coord) bool {
	opponent := winner.Opponent()
	found := false
	seen := map[board.Coord]bool{}

	for i := 0; i < 5; i++ {
		p := board.Coord{Row: runStart.Row + i*d.Row, Col: runStart.Col + i*d.Col}
		if pos.At(p) != winner {
			continue
		}

		for _, nd := range board.NeighborDirections {
			q := board.Coord{Row: p.Row + nd.Row, Col: p.Col + nd.Col}
			if !q.Valid() || pos.At(q) != winner {
				continue
			}

			before := board.Coord{Row: p.Row - nd.Row, Col: p.Col - nd.Col}
			after := board.Coord{Row: q.Row + nd.Row, Col: q.Col + nd.Col}
			if !before.Valid() || !after.Valid() {
				continue
			}

			var target board.Coord
			breakable := false
			if pos.At(before) == opponent && pos.At(after) == board.Empty {
				target, breakable = after, true
			} else if pos.At(after) == opponent && pos.At(before) == board.Empty {
				target, breakable = before, true
			}
			if breakable {
				found = true
				if collect != nil && !seen[target] {
					seen[target] = true
					*collect = append(*collect, target)
				}
			}
		}
	}

	return found
}

// opponentCanCaptureNextTurn reports whether player has any empty cell
// available where placing would capture at least one pair. Used by the
// capture-loss win override.
func opponentCanCaptureNextTurn(pos *board.Position, player board.Player) bool {
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			cell := board.Coord{Row: r, Col: c}
			if !pos.IsEmpty(cell) {
				continue
			}
			if len(FindCaptures(pos, cell, player)) > 0 {
				return true
			}
		}
	}
	return false
}
