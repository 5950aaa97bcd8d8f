package engine

import (
	"sort"

	"github.com/jainavas/gomoku-engine/internal/board"
	"github.com/jainavas/gomoku-engine/internal/rules"
)

// MoveOrderer holds the search's move-ordering state: killer moves, the
// history heuristic table, and the previous iteration's best move (spec.md
// section 4.5).
type MoveOrderer struct {
	killers      [MaxPly][2]board.Coord
	history      [board.Size][board.Size]int
	previousBest board.Coord
}

func NewMoveOrderer() *MoveOrderer {
	mo := &MoveOrderer{}
	mo.Clear()
	return mo
}

// Clear resets killers and the previous-best hint for a new search, and
// ages the history table rather than wiping it outright.
func (mo *MoveOrderer) Clear() {
	for i := range mo.killers {
		mo.killers[i][0] = board.NoCoord
		mo.killers[i][1] = board.NoCoord
	}
	for r := range mo.history {
		for c := range mo.history[r] {
			mo.history[r][c] /= 2
		}
	}
	mo.previousBest = board.NoCoord
}

func (mo *MoveOrderer) UpdateKillers(m board.Coord, ply int) {
	if ply >= MaxPly || mo.killers[ply][0] == m {
		return
	}
	mo.killers[ply][1] = mo.killers[ply][0]
	mo.killers[ply][0] = m
}

func (mo *MoveOrderer) UpdateHistory(m board.Coord, depth int) {
	bonus := depth * depth
	mo.history[m.Row][m.Col] += bonus
	if mo.history[m.Row][m.Col] > 400000 {
		for r := range mo.history {
			for c := range mo.history[r] {
				mo.history[r][c] /= 2
			}
		}
	}
}

func (mo *MoveOrderer) historyScore(m board.Coord) int {
	return mo.history[m.Row][m.Col]
}

// orderMoves ranks candidates by TT hint, quick evaluation, and killer/
// history as a tiebreaker (spec.md section 4.5).
func (s *Searcher) orderMoves(pos *board.Position, candidates []board.Coord, ply int, ttMove board.Coord) []board.Coord {
	type scored struct {
		move     board.Coord
		score    int
		tiebreak int
	}
	list := make([]scored, 0, len(candidates))
	for _, m := range candidates {
		if m == ttMove {
			continue
		}
		sc := quickEvaluateMove(pos, m)
		tb := s.orderer.historyScore(m) / 100
		switch m {
		case s.orderer.killers[ply][0]:
			tb += 5000
		case s.orderer.killers[ply][1]:
			tb += 4000
		}
		list = append(list, scored{m, sc, tb})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].score != list[j].score {
			return list[i].score > list[j].score
		}
		return list[i].tiebreak > list[j].tiebreak
	})

	ordered := make([]board.Coord, 0, len(list)+1)
	if ttMove.Valid() {
		ordered = append(ordered, ttMove)
	}
	for _, e := range list {
		ordered = append(ordered, e.move)
	}
	return ordered
}

// quickEvaluateMove scores m without recursing (spec.md section 4.5, item
// 2). A return >= 100000 only ever happens through the outright-win branch,
// which returns immediately, so the spec.md section 8 invariant ("any move
// quickEvaluateMove rates >= 100000 wins for the mover") holds: every other
// contribution is bounded well under that threshold.
func quickEvaluateMove(pos *board.Position, m board.Coord) int {
	player := pos.SideToMove
	opponent := player.Opponent()

	if !rules.IsLegalMove(pos, m) {
		return -50000
	}

	trial := pos.Copy()
	result := rules.ApplyMove(trial, m)
	if result.Success && result.Win {
		return 100000 + centrality(m)
	}

	score := 0
	if neutralizesThreat(pos, m, opponent) {
		score += 40000
	}

	captured := rules.FindCaptures(pos, m, player)
	if len(captured) > 0 {
		pairs := pos.CaptureCount(player) + len(captured)/2
		score += 1000*(len(captured)/2) + captureWinProximity(pairs)/50
	}

	score += tacticalDeltas(pos, m, player)
	score += centrality(m)
	score += connectivity(pos, m, player) * 50

	if result.Success && leavesOpponentFourThreat(trial) {
		score -= 80000
	}

	return score
}

// neutralizesThreat reports whether placing player's stone at m removes
// opponent's current FourOpen/FourHalf threat.
func neutralizesThreat(pos *board.Position, m board.Coord, opponent board.Player) bool {
	_, hadFour := patternScoreForPlayer(pos, opponent)
	if !hadFour {
		return false
	}
	trial := pos.Copy()
	trial.Grid[m.Row][m.Col] = pos.SideToMove
	_, stillFour := patternScoreForPlayer(trial, opponent)
	return !stillFour
}

// leavesOpponentFourThreat reports whether, after the move already applied
// to trial, the side now to move (the opponent) holds a four-threat.
func leavesOpponentFourThreat(trial *board.Position) bool {
	_, hasFour := patternScoreForPlayer(trial, trial.SideToMove)
	return hasFour
}

// tacticalDeltas is a cheap, single-cell approximation of the evaluator's
// per-direction pattern scan: for each line axis, count player's and
// opponent's stones within 2 cells of m (as if m were already played) and
// credit small line-strength deltas.
func tacticalDeltas(pos *board.Position, m board.Coord, player board.Player) int {
	total := 0
	for _, d := range board.LineDirections {
		total += lineStrength(pos, m, d, player) - lineStrength(pos, m, d, player.Opponent())
	}
	return total
}

func lineStrength(pos *board.Position, m, d board.Coord, player board.Player) int {
	count := 1 // the hypothetical stone at m
	for _, sign := range [2]int{1, -1} {
		for step := 1; step <= 2; step++ {
			q := board.Coord{Row: m.Row + sign*step*d.Row, Col: m.Col + sign*step*d.Col}
			if !q.Valid() {
				break
			}
			v := pos.At(q)
			if v == player {
				count++
				continue
			}
			break
		}
	}
	switch count {
	case 4:
		return ScoreFourHalf / 10
	case 3:
		return ScoreThreeOpen / 10
	case 2:
		return ScoreTwoOpen
	default:
		return 0
	}
}

func centrality(m board.Coord) int {
	distRow := min(m.Row, board.Size-1-m.Row)
	distCol := min(m.Col, board.Size-1-m.Col)
	return min(distRow, distCol) * 20
}

func connectivity(pos *board.Position, m board.Coord, player board.Player) int {
	n := 0
	for _, d := range board.NeighborDirections {
		q := board.Coord{Row: m.Row + d.Row, Col: m.Col + d.Col}
		if q.Valid() && pos.At(q) == player {
			n++
		}
	}
	return n
}
