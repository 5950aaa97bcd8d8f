package rules

import (
	"github.com/jainavas/gomoku-engine/internal/board"
)

// CheckWin reports whether player has won: either by reaching 10 captured
// pairs, or by a >=5-aligned run that survives both overrides (spec.md
// section 4.1). While a run is tentative (the opponent can still break it by
// capture on their next move) CheckWin returns false for that run; the
// match driver is responsible for installing the forced-capture override
// so the tentative state is visible across the intervening ply.
func CheckWin(pos *board.Position, player board.Player) bool {
	if pos.CaptureCount(player) >= 10 {
		return true
	}

	opponent := player.Opponent()

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			start := board.Coord{Row: r, Col: c}
			if pos.At(start) != player {
				continue
			}

			for _, d := range board.LineDirections {
				if !isLineStart(pos, start, d, player) {
					continue
				}
				if countRun(pos, start, d, player) < 5 {
					continue
				}

				if CanBreakLineByCapture(pos, start, d, player, nil) {
					continue
				}

				if pos.CaptureCount(opponent) >= 8 && opponentCanCaptureNextTurn(pos, opponent) {
					return false
				}

				return true
			}
		}
	}

	return false
}

// isLineStart reports whether start is the first stone of a run along d,
// i.e. the cell behind it is not the same player. This keeps CheckWin from
// re-evaluating the same run once per stone in it.
func isLineStart(pos *board.Position, start, d board.Coord, player board.Player) bool {
	prev := board.Coord{Row: start.Row - d.Row, Col: start.Col - d.Col}
	return !prev.Valid() || pos.At(prev) != player
}

// countRun counts player's consecutive stones starting at start and moving
// along d, including start itself.
func countRun(pos *board.Position, start, d board.Coord, player board.Player) int {
	n := 0
	cur := start
	for cur.Valid() && pos.At(cur) == player {
		n++
		cur = board.Coord{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
	}
	return n
}
