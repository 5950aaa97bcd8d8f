// Package rules implements the Gomoku/Renju-with-captures rule kernel:
// legality, capture resolution, and win detection with the break-by-capture
// override. Every operation here is total over legal inputs and never
// mutates its Position argument except ApplyMove, which mutates only on
// success (spec.md section 4.1).
package rules

import (
	"github.com/jainavas/gomoku-engine/internal/board"
)

// MoveResult is the outcome of ApplyMove.
type MoveResult struct {
	Success    bool
	MyCaptured []board.Coord
	Win        bool
}
