// Package match drives a single Gomoku/Renju-with-captures game: it wraps
// rules.ApplyMove with the cross-ply forced-capture override bookkeeping and
// exposes the UI-facing mutators spec.md section 6 names (applyHumanMove,
// applyEngineMove, isGameOver, winner). The UI reads the board through
// Position but mutates it only through these mutators, and never touches
// the engine's transposition table.
package match

import (
	"errors"

	"github.com/jainavas/gomoku-engine/internal/board"
	"github.com/jainavas/gomoku-engine/internal/engine"
	"github.com/jainavas/gomoku-engine/internal/rules"
)

var (
	// ErrGameOver is returned by either mutator once a winner is decided.
	ErrGameOver = errors.New("match: game is already decided")
	// ErrIllegalMove is returned for an off-board, occupied, or
	// double-free-three-violating target.
	ErrIllegalMove = errors.New("match: illegal move")
)

// Game is one played game. It is not safe for concurrent use; callers
// serialize human and engine turns themselves.
type Game struct {
	pos    *board.Position
	eng    *engine.Engine
	over   bool
	winner board.Player
}

// NewGame starts a fresh game on an empty board with eng answering
// applyEngineMove calls.
func NewGame(eng *engine.Engine) *Game {
	return &Game{pos: board.NewPosition(), eng: eng, winner: board.Empty}
}

// NewGameFromPosition resumes a game already in progress from a position
// constructed elsewhere (e.g. parsed from notation).
func NewGameFromPosition(pos *board.Position, eng *engine.Engine) *Game {
	return &Game{pos: pos, eng: eng, winner: board.Empty}
}

// Position exposes the current board for rendering and persistence. Callers
// must not mutate it directly; all mutation goes through the two Apply
// methods.
func (g *Game) Position() *board.Position {
	return g.pos
}

// ApplyHumanMove places the human side's stone at m.
func (g *Game) ApplyHumanMove(m board.Coord) (rules.MoveResult, error) {
	return g.applyMove(m)
}

// ApplyEngineMove asks the engine for bestMove(pos) and applies it.
func (g *Game) ApplyEngineMove() (board.Move, rules.MoveResult, error) {
	if g.over {
		return board.NoCoord, rules.MoveResult{}, ErrGameOver
	}
	m := g.eng.BestMove(g.pos)
	result, err := g.applyMove(m)
	return m, result, err
}

// IsGameOver reports whether a winner has been decided.
func (g *Game) IsGameOver() bool {
	return g.over
}

// Winner returns the winning player, or board.Empty if the game is not over.
func (g *Game) Winner() board.Player {
	return g.winner
}

// applyMove is the shared mutator for both Apply methods. It resolves the
// forced-capture override across the boundary of a single ply: an override
// installed after the previous mover's tentative 5-run is either cleared (m
// is one of the recorded breaking targets) or collapses into an immediate
// win for the pending winner (spec.md section 4.6).
func (g *Game) applyMove(m board.Coord) (rules.MoveResult, error) {
	if g.over {
		return rules.MoveResult{}, ErrGameOver
	}
	if !rules.IsLegalMove(g.pos, m) {
		return rules.MoveResult{}, ErrIllegalMove
	}

	mover := g.pos.SideToMove
	pending := g.pos.Override
	breaksOverride := pending.Contains(m)

	result := rules.ApplyMove(g.pos, m)
	if !result.Success {
		return result, ErrIllegalMove
	}

	if pending != nil {
		g.pos.Override = nil
		if !breaksOverride {
			g.over = true
			g.winner = pending.PendingWinner
			return result, nil
		}
	}

	if result.Win {
		g.over = true
		g.winner = mover
		return result, nil
	}

	if tentative, targets := rules.DetectTentativeWin(g.pos, mover); tentative {
		targetSet := make(map[board.Coord]struct{}, len(targets))
		for _, t := range targets {
			targetSet[t] = struct{}{}
		}
		g.pos.Override = &board.ForcedCaptureOverride{PendingWinner: mover, CaptureTargets: targetSet}
	}

	return result, nil
}
