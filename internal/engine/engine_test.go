package engine

import (
	"testing"

	"github.com/jainavas/gomoku-engine/internal/board"
	"github.com/jainavas/gomoku-engine/internal/rules"
)

func TestTranspositionRoundTrip(t *testing.T) {
	tt := NewTranspositionTable(1 << 20)
	mv := board.Coord{Row: 3, Col: 4}
	tt.Store(12345, 777, 5, mv, BoundExact)

	entry, ok := tt.Probe(12345)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if entry.Score != 777 || entry.Depth != 5 || entry.BestMove != mv || entry.Bound != BoundExact {
		t.Fatalf("entry mismatch: %+v", entry)
	}
}

func TestTranspositionMissOnDifferentKey(t *testing.T) {
	tt := NewTranspositionTable(1 << 10) // 32 slots: small enough to force a collision
	tt.Store(1, 1, 1, board.Coord{Row: 0, Col: 0}, BoundExact)
	// 33 & 31 == 1: key 33 maps to key 1's slot. Probe compares the stored
	// key, so the collision must read as a miss.
	if _, ok := tt.Probe(33); ok {
		t.Fatalf("expected a miss for a different key in the same slot")
	}
}

func TestQuickEvaluateMoveWinImpliesWin(t *testing.T) {
	pos := board.NewPosition()
	for col := 9; col <= 12; col++ {
		pos.Grid[9][col] = board.P1
	}
	pos.SideToMove = board.P1
	m := board.Coord{Row: 9, Col: 13}

	score := quickEvaluateMove(pos, m)
	if score < 100000 {
		t.Fatalf("expected score >= 100000, got %d", score)
	}

	trial := pos.Copy()
	result := rules.ApplyMove(trial, m)
	if !result.Success || !result.Win {
		t.Fatalf("expected the move to win for the mover")
	}
}

func TestBestMoveIterativePicksImmediateWin(t *testing.T) {
	pos := board.NewPosition()
	for col := 9; col <= 12; col++ {
		pos.Grid[9][col] = board.P1
	}
	pos.SideToMove = board.P1

	s := NewSearcher(NewTranspositionTable(1 << 20))
	move, score, stats := s.BestMoveIterative(pos, 3)

	winning := map[board.Coord]bool{
		{Row: 9, Col: 8}:  true,
		{Row: 9, Col: 13}: true,
	}
	if !winning[move] {
		t.Fatalf("expected a move completing the 5-run, got %v", move)
	}
	if score < ScoreWin {
		t.Fatalf("expected a winning score, got %d", score)
	}
	if stats.Nodes == 0 {
		t.Fatalf("expected at least one node visited")
	}
}

func TestOrderMovesPutsHintFirst(t *testing.T) {
	pos := board.NewPosition()
	pos.Grid[9][9] = board.P1
	pos.SideToMove = board.P2

	s := NewSearcher(NewTranspositionTable(1 << 20))
	candidates := generateCandidates(pos)
	if len(candidates) < 2 {
		t.Fatalf("expected multiple candidates near the lone stone")
	}
	hint := candidates[len(candidates)-1]

	ordered := s.orderMoves(pos, candidates, 0, hint)
	if ordered[0] != hint {
		t.Fatalf("expected the hinted move ordered first, got %v", ordered[0])
	}
}

func TestMateDistancePreference(t *testing.T) {
	const maxDepth = 5
	nearMate := ScoreWin - (maxDepth - 4) // decided at ply 4: mate in 1
	farMate := ScoreWin - (maxDepth - 2)  // decided at ply 2: mate in 3
	if nearMate <= farMate {
		t.Fatalf("expected a closer mate to score higher: near=%d far=%d", nearMate, farMate)
	}
}

func TestAdaptiveDepthSchedule(t *testing.T) {
	cases := []struct {
		turn     int
		expected int
	}{
		{0, 6}, {6, 6}, {7, 8}, {12, 8}, {13, 10}, {50, 10},
	}
	for _, c := range cases {
		pos := board.NewPosition()
		pos.TurnCount = c.turn
		if got := adaptiveDepth(pos); got != c.expected {
			t.Errorf("turn %d: expected depth %d, got %d", c.turn, c.expected, got)
		}
	}
}
