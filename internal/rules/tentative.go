package rules

import (
	"github.com/jainavas/gomoku-engine/internal/board"
)

// DetectTentativeWin mirrors CheckWin's run scan but reports the specific
// case CheckWin swallows: player has a >=5 run that is only withheld because
// the opponent can still break it by capture. It returns the coordinates a
// breaking capture must land on. The match driver uses this to install a
// board.ForcedCaptureOverride for the one ply the opponent gets to respond
// (spec.md section 4.6).
func DetectTentativeWin(pos *board.Position, player board.Player) (tentative bool, targets []board.Coord) {
	if pos.CaptureCount(player) >= 10 {
		return false, nil
	}

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

				var collected []board.Coord
				if CanBreakLineByCapture(pos, start, d, player, &collected) {
					targets = append(targets, collected...)
					tentative = true
				}
			}
		}
	}

	return tentative, targets
}
