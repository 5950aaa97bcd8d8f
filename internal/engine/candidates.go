package engine

import (
	"github.com/jainavas/gomoku-engine/internal/board"
	"github.com/jainavas/gomoku-engine/internal/rules"
)

// generateCandidates restricts the legal move set to cells within an
// adaptive radius of an existing stone, admits central cells in the opening,
// adds a defensive override for any move that neutralises a detected
// opponent winning-threat, and filters through the double-free-three
// legality check (spec.md section 4.5).
func generateCandidates(pos *board.Position) []board.Coord {
	stones := pos.StoneCount()

	radius := 1
	switch {
	case stones <= 2:
		radius = 3
	case pos.TurnCount <= 8:
		radius = 2
	}

	seen := make(map[board.Coord]bool)
	var candidates []board.Coord
	add := func(c board.Coord) {
		if !c.Valid() || !pos.IsEmpty(c) || seen[c] {
			return
		}
		seen[c] = true
		candidates = append(candidates, c)
	}

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if pos.Grid[r][c] == board.Empty {
				continue
			}
			for dr := -radius; dr <= radius; dr++ {
				for dc := -radius; dc <= radius; dc++ {
					add(board.Coord{Row: r + dr, Col: c + dc})
				}
			}
		}
	}

	if stones <= 2 {
		center := board.Size / 2
		for dr := -2; dr <= 2; dr++ {
			for dc := -2; dc <= 2; dc++ {
				add(board.Coord{Row: center + dr, Col: center + dc})
			}
		}
	}

	opponent := pos.SideToMove.Opponent()
	if _, hasFour := patternScoreForPlayer(pos, opponent); hasFour {
		for r := 0; r < board.Size; r++ {
			for c := 0; c < board.Size; c++ {
				cell := board.Coord{Row: r, Col: c}
				if pos.IsEmpty(cell) && neutralizesThreat(pos, cell, opponent) {
					add(cell)
				}
			}
		}
	}

	legal := candidates[:0]
	for _, c := range candidates {
		if rules.IsLegalMove(pos, c) {
			legal = append(legal, c)
		}
	}
	return legal
}

// candidateCap returns the truncation size for the current phase of the
// game (spec.md section 4.5).
func candidateCap(pos *board.Position) int {
	switch {
	case pos.TurnCount <= 4:
		return 8
	case pos.TurnCount <= 10:
		return 10
	default:
		return 12
	}
}

// truncateCandidates cuts an already-ordered move list to candidateCap(pos),
// but never drops a move that neutralises a detected opponent
// winning-threat.
func truncateCandidates(pos *board.Position, ordered []board.Coord) []board.Coord {
	cap := candidateCap(pos)
	if len(ordered) <= cap {
		return ordered
	}

	kept := append([]board.Coord(nil), ordered[:cap]...)
	keptSet := make(map[board.Coord]bool, len(kept))
	for _, c := range kept {
		keptSet[c] = true
	}

	opponent := pos.SideToMove.Opponent()
	for _, c := range ordered[cap:] {
		if keptSet[c] {
			continue
		}
		if neutralizesThreat(pos, c, opponent) {
			kept = append(kept, c)
			keptSet[c] = true
		}
	}
	return kept
}
