package rules

import (
	"github.com/jainavas/gomoku-engine/internal/board"
)

// ApplyMove places the side-to-move's stone at m and resolves the move:
// captures initiated by the mover are removed, the capture counter and hash
// are updated incrementally, the side to move flips, and the turn counter
// advances. It returns Success=false without mutating pos for off-board,
// occupied, or double-free-three-violating targets.
//
// Only captures initiated by the mover are applied; captures the move would
// trigger "against" the mover are left for the opponent's own next move
// (spec.md section 9, open question on capture resolution symmetry).
func ApplyMove(pos *board.Position, m board.Coord) MoveResult {
	var result MoveResult

	if !m.Valid() || !pos.IsEmpty(m) {
		return result
	}

	player := pos.SideToMove
	if CreatesDoubleFreeThree(pos, m, player) {
		return result
	}

	oldCaptures := pos.CaptureCount(player)

	pos.Grid[m.Row][m.Col] = player

	captured := FindCaptures(pos, m, player)
	for _, c := range captured {
		pos.Grid[c.Row][c.Col] = board.Empty
	}
	pos.Captures[player-1] += len(captured) / 2

	newCaptures := pos.CaptureCount(player)
	pos.Hash = board.UpdateHashForMove(pos.Hash, m, player, captured, oldCaptures, newCaptures)

	result.Success = true
	result.MyCaptured = captured
	result.Win = CheckWin(pos, player)

	pos.SideToMove = player.Opponent()
	pos.TurnCount++

	return result
}
