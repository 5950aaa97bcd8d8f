// Package engine implements the Gomoku/Renju-with-captures search core: a
// transposition table, a pattern-based static evaluator, move ordering and
// adaptive candidate generation, and the iterative-deepening alpha-beta
// search they drive. Engine is the EnginePort wrapper consumed by the match
// driver (spec.md section 4.6).
package engine

import (
	"github.com/jainavas/gomoku-engine/internal/board"
)

// defaultTTBytes is the transposition table's default byte budget
// (spec.md section 4.3).
const defaultTTBytes = 64 * 1024 * 1024

// Engine is the entry point the match driver calls. One instance owns its
// transposition table and move-ordering state; a single instance must not
// be shared across concurrent callers (spec.md section 5).
type Engine struct {
	tt       *TranspositionTable
	searcher *Searcher
	depth    int
	stats    Stats
}

// NewEngine builds an engine with a transposition table sized to ttBytes (0
// selects the default 64MiB). depthHint, if > 0, overrides the adaptive
// depth-by-phase schedule for every call; 0 leaves it adaptive.
func NewEngine(ttBytes, depthHint int) *Engine {
	if ttBytes <= 0 {
		ttBytes = defaultTTBytes
	}
	tt := NewTranspositionTable(ttBytes)
	return &Engine{
		tt:       tt,
		searcher: NewSearcher(tt),
		depth:    depthHint,
	}
}

// SetDepth overrides the adaptive depth schedule; 0 restores it.
func (e *Engine) SetDepth(depth int) {
	e.depth = depth
}

// ClearCache empties the transposition table.
func (e *Engine) ClearCache() {
	e.tt.Clear()
}

// LastStats returns the statistics from the most recent BestMove call.
func (e *Engine) LastStats() Stats {
	return e.stats
}

// BestMove runs iterative deepening to the adaptive (or overridden) depth
// and returns the chosen move (spec.md section 6, bestMove).
func (e *Engine) BestMove(pos *board.Position) board.Move {
	depth := e.depth
	if depth <= 0 {
		depth = adaptiveDepth(pos)
	}
	move, _, stats := e.searcher.BestMoveIterative(pos, depth)
	e.stats = stats
	return move
}

// adaptiveDepth implements the ply-phase depth schedule: 6 for the first 6
// plies, 8 through ply 12, 10 thereafter (spec.md section 4.5).
func adaptiveDepth(pos *board.Position) int {
	switch {
	case pos.TurnCount <= 6:
		return 6
	case pos.TurnCount <= 12:
		return 8
	default:
		return 10
	}
}
