package rules

import (
	"github.com/jainavas/gomoku-engine/internal/board"
)

// IsLegalMove reports whether player could place at m: the cell must be
// empty and the placement must not create two simultaneous free-threes (the
// classic no-double-three restriction). The grid is only hypothetically
// augmented; pos is never mutated.
func IsLegalMove(pos *board.Position, m board.Coord) bool {
	return pos.IsEmpty(m) && !CreatesDoubleFreeThree(pos, m, pos.SideToMove)
}

// CreatesDoubleFreeThree reports whether placing player's stone at m would
// create a free-three in at least 2 of the 4 line directions.
func CreatesDoubleFreeThree(pos *board.Position, m board.Coord, player board.Player) bool {
	count := 0
	for _, d := range board.LineDirections {
		if directionHasFreeThree(pos, m, d, player) {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}

// directionHasFreeThree scans every 5-cell window along d that contains m
// for a free-three: exactly 3 player stones, 0 opponent stones, 2 empty
// cells inside the window, both cells immediately outside the window empty,
// and at least one of the 2 empty cells fillable to produce a four.
func directionHasFreeThree(pos *board.Position, m, d board.Coord, player board.Player) bool {
	for offset := 0; offset <= 4; offset++ {
		windowStart := board.Coord{Row: m.Row - offset*d.Row, Col: m.Col - offset*d.Col}

		var cells [5]board.Coord
		valid := true
		for i := 0; i < 5; i++ {
			cells[i] = board.Coord{Row: windowStart.Row + i*d.Row, Col: windowStart.Col + i*d.Col}
			if !cells[i].Valid() {
				valid = false
				break
			}
		}
		if !valid {
			continue
		}

		var windowVals [5]board.Player
		playerCount, oppCount := 0, 0
		var emptyIdx []int
		for i, cell := range cells {
			v := pos.At(cell)
			if cell == m {
				v = player
			}
			windowVals[i] = v
			switch {
			case v == player:
				playerCount++
			case v == board.Empty:
				emptyIdx = append(emptyIdx, i)
			default:
				oppCount++
			}
		}
		if playerCount != 3 || oppCount != 0 || len(emptyIdx) != 2 {
			continue
		}

		before := board.Coord{Row: windowStart.Row - d.Row, Col: windowStart.Col - d.Col}
		after := board.Coord{Row: cells[4].Row + d.Row, Col: cells[4].Col + d.Col}
		if !before.Valid() || pos.At(before) != board.Empty {
			continue
		}
		if !after.Valid() || pos.At(after) != board.Empty {
			continue
		}

		if formsFourInWindow(windowVals, emptyIdx, player) {
			return true
		}
	}

	return false
}

// formsFourInWindow reports whether filling either empty index of vals with
// player produces a four: 4 player stones and 1 empty cell in the 5-cell
// window, so one more stone there completes five. Split shapes such as
// x.xxx count as fours, not only 4 consecutive stones.
func formsFourInWindow(vals [5]board.Player, emptyIdx []int, player board.Player) bool {
	for _, e := range emptyIdx {
		trial := vals
		trial[e] = player
		stones, empties := 0, 0
		for _, v := range trial {
			switch v {
			case player:
				stones++
			case board.Empty:
				empties++
			}
		}
		if stones == 4 && empties == 1 {
			return true
		}
	}
	return false
}
