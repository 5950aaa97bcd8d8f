package match

import (
	"testing"

	"github.com/jainavas/gomoku-engine/internal/board"
)

func at(r, c int) board.Coord { return board.Coord{Row: r, Col: c} }

// tentativeWinPosition builds a position one P2 move away from completing a
// 5-run at row 9, cols 10-14, where the run is breakable by capture at
// (11,10): P1 at (8,10) already flanks a (9,10)/(10,10) P2 pair.
func tentativeWinPosition() *board.Position {
	pos := board.NewPosition()
	for col := 10; col <= 13; col++ {
		pos.Grid[9][col] = board.P2
	}
	pos.Grid[10][10] = board.P2
	pos.Grid[8][10] = board.P1
	pos.SideToMove = board.P2
	return pos
}

func TestTentativeWinInstallsOverride(t *testing.T) {
	g := NewGameFromPosition(tentativeWinPosition(), nil)

	result, err := g.ApplyHumanMove(at(9, 14))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Win {
		t.Fatalf("expected the win to be withheld pending the break-by-capture override")
	}
	if g.IsGameOver() {
		t.Fatalf("expected the game to remain open")
	}
	if g.Position().Override == nil {
		t.Fatalf("expected a forced-capture override to be installed")
	}
	if g.Position().Override.PendingWinner != board.P2 {
		t.Fatalf("expected P2 as the pending winner")
	}
	if !g.Position().Override.Contains(at(11, 10)) {
		t.Fatalf("expected (11,10) among the recorded breaking targets")
	}
}

func TestBreakingMoveClearsOverride(t *testing.T) {
	g := NewGameFromPosition(tentativeWinPosition(), nil)
	if _, err := g.ApplyHumanMove(at(9, 14)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := g.ApplyHumanMove(at(11, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.MyCaptured) != 2 {
		t.Fatalf("expected the breaking move to capture a pair, got %v", result.MyCaptured)
	}
	if g.IsGameOver() {
		t.Fatalf("expected the game to remain open after the run was broken")
	}
	if g.Position().Override != nil {
		t.Fatalf("expected the override to be cleared")
	}
}

func TestNonBreakingMoveCollapsesIntoWin(t *testing.T) {
	g := NewGameFromPosition(tentativeWinPosition(), nil)
	if _, err := g.ApplyHumanMove(at(9, 14)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := g.ApplyHumanMove(at(0, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.IsGameOver() {
		t.Fatalf("expected the game to be over")
	}
	if g.Winner() != board.P2 {
		t.Fatalf("expected P2 to win once the override went unaddressed, got %v", g.Winner())
	}
}

func TestApplyMoveRejectsIllegalTarget(t *testing.T) {
	g := NewGame(nil)
	g.pos.Grid[9][9] = board.P1
	if _, err := g.ApplyHumanMove(at(9, 9)); err != ErrIllegalMove {
		t.Fatalf("expected ErrIllegalMove for an occupied cell, got %v", err)
	}
}

func TestApplyMoveAfterGameOverIsRejected(t *testing.T) {
	g := NewGameFromPosition(tentativeWinPosition(), nil)
	if _, err := g.ApplyHumanMove(at(9, 14)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.ApplyHumanMove(at(0, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.ApplyHumanMove(at(1, 1)); err != ErrGameOver {
		t.Fatalf("expected ErrGameOver once a winner is decided, got %v", err)
	}
}
