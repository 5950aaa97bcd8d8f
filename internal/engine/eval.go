package engine

import (
	"github.com/jainavas/gomoku-engine/internal/board"
	"github.com/jainavas/gomoku-engine/internal/rules"
)

// Pattern scores (spec.md section 4.4). Two source headers disagreed on WIN
// (500000 vs 600000) and on THREE_HALF; these values follow the spec and
// keep the required ordering Win >> FourOpen > FourHalf > ThreeOpen >
// ThreeHalf > TwoOpen.
const (
	ScoreWin        = 600000
	ScoreFourOpen   = 50000
	ScoreFourHalf   = 25000
	ScoreThreeOpen  = 10000
	ScoreThreeHalf  = 1500
	ScoreTwoOpen    = 100
	fourThreatBoost = 90000
	fourThreatPenal = 105000
)

// Evaluate is the top-level static evaluator. It returns a mate-distance
// adjusted terminal score if the position is already decided for either
// side, otherwise the pattern-based static score from the side-to-move's
// perspective (spec.md section 4.4).
func Evaluate(pos *board.Position, maxDepth, curDepth int) int {
	mover := pos.SideToMove
	opponent := mover.Opponent()

	if rules.CheckWin(pos, mover) {
		return ScoreWin - (maxDepth - curDepth)
	}
	if rules.CheckWin(pos, opponent) {
		return -ScoreWin + (maxDepth - curDepth)
	}
	return staticScore(pos, mover)
}

// staticScore combines pattern, capture-pressure, capture-tally, and
// immediate-threat terms, all already relative to player (the spec's
// P2-centric-then-sign-flip convention collapses to this directly since both
// are algebraically the same score from the side-to-move's perspective).
func staticScore(pos *board.Position, player board.Player) int {
	opponent := player.Opponent()

	ownPattern, ownFour := patternScoreForPlayer(pos, player)
	oppPattern, oppFour := patternScoreForPlayer(pos, opponent)

	score := ownPattern - oppPattern
	score += evaluateCaptureOpportunities(pos, player) - evaluateCaptureOpportunities(pos, opponent)
	score += captureTally(pos, player)

	if ownFour {
		score += fourThreatBoost
	}
	if oppFour {
		score -= fourThreatPenal
	}

	return score
}

// patternScoreForPlayer sweeps all 4 line directions from every run-starting
// cell, scoring each window per the table in spec.md section 4.4. It also
// reports whether player holds at least one FourOpen/FourHalf threat.
func patternScoreForPlayer(pos *board.Position, player board.Player) (score int, hasFour bool) {
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			start := board.Coord{Row: r, Col: c}
			if pos.At(start) != player {
				continue
			}
			for _, d := range board.LineDirections {
				if !isEvalLineStart(pos, start, d, player) {
					continue
				}
				c5, t, g, f := sweepWindow(pos, start, d, player)
				s := classifyWindow(c5, t, g, f)
				score += s
				if s == ScoreFourOpen || s == ScoreFourHalf {
					hasFour = true
				}
			}
		}
	}
	return score, hasFour
}

func isEvalLineStart(pos *board.Position, start, d board.Coord, player board.Player) bool {
	prev := board.Coord{Row: start.Row - d.Row, Col: start.Col - d.Col}
	return !prev.Valid() || pos.At(prev) != player
}

// sweepWindow walks up to 6 cells from start along d, stopping early at the
// first opponent stone, and reports: c, the longest contiguous run seen; t,
// the total own stones seen; g, the number of empty gaps seen; and f, the
// count (0-2) of free (on-board and empty) endpoints immediately outside the
// swept span.
func sweepWindow(pos *board.Position, start, d board.Coord, player board.Player) (c, t, g, f int) {
	cur := start
	run := 0
	for steps := 0; steps < 6 && cur.Valid(); steps++ {
		v := pos.At(cur)
		switch {
		case v == player:
			t++
			run++
			if run > c {
				c = run
			}
		case v == board.Empty:
			g++
			run = 0
		default:
			goto stopped
		}
		cur = board.Coord{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
	}
stopped:
	before := board.Coord{Row: start.Row - d.Row, Col: start.Col - d.Col}
	if before.Valid() && pos.At(before) == board.Empty {
		f++
	}
	if cur.Valid() && pos.At(cur) == board.Empty {
		f++
	}
	return c, t, g, f
}

// classifyWindow matches (c, t, g, f) against the pattern table; the first
// matching row wins.
func classifyWindow(c, t, g, f int) int {
	switch {
	case c >= 5 || (t >= 5 && g > 0 && f >= 1):
		return ScoreWin
	case t == 4 && f == 2:
		return ScoreFourOpen
	case t == 4 && f == 1:
		return ScoreFourHalf
	case t == 3 && f == 2:
		return ScoreThreeOpen
	case t == 3 && f == 1:
		return ScoreThreeHalf
	case t == 2 && f == 2:
		return ScoreTwoOpen
	default:
		return 0
	}
}

// evaluateCaptureOpportunities scans every empty cell for a capture player
// could execute there, scoring each by distance-to-capture-win, the
// defensive value of the pair removed, and tactical proximity (spec.md
// section 4.4, evaluateCaptureContext).
func evaluateCaptureOpportunities(pos *board.Position, player board.Player) int {
	opponent := player.Opponent()
	total := 0

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			cell := board.Coord{Row: r, Col: c}
			if !pos.IsEmpty(cell) {
				continue
			}
			captured := rules.FindCaptures(pos, cell, player)
			if len(captured) == 0 {
				continue
			}

			pairsAfter := pos.CaptureCount(player) + len(captured)/2
			total += captureWinProximity(pairsAfter)
			for i := 0; i+1 < len(captured); i += 2 {
				total += captureDefensiveValue(pos, captured[i], captured[i+1], opponent)
			}
			total += captureProximityBonus(pos, captured, player)
		}
	}

	return total
}

func captureWinProximity(pairs int) int {
	switch {
	case pairs >= 10:
		return 500000
	case pairs == 9:
		return 100000
	case pairs == 8:
		return 50000
	case pairs >= 6:
		return 15000
	default:
		return 2000 * pairs
	}
}

// captureDefensiveValue rewards captures that also break up an existing
// opponent run through one of the captured cells.
func captureDefensiveValue(pos *board.Position, a, b board.Coord, opponent board.Player) int {
	best := 0
	for _, cell := range [2]board.Coord{a, b} {
		for _, d := range board.LineDirections {
			length := runThrough(pos, cell, d, opponent)
			v := 0
			switch {
			case length >= 4:
				v = 30000
			case length == 3:
				v = 12000
			case length == 2:
				v = 3000
			}
			if v > best {
				best = v
			}
		}
	}
	return best
}

// runThrough counts opponent's contiguous stones through cell along both
// signs of d, including cell itself (still occupied at evaluation time).
func runThrough(pos *board.Position, cell, d board.Coord, player board.Player) int {
	n := 1
	for _, sign := range [2]int{1, -1} {
		cur := board.Coord{Row: cell.Row + sign*d.Row, Col: cell.Col + sign*d.Col}
		for cur.Valid() && pos.At(cur) == player {
			n++
			cur = board.Coord{Row: cur.Row + sign*d.Row, Col: cur.Col + sign*d.Col}
		}
	}
	return n
}

func captureProximityBonus(pos *board.Position, captured []board.Coord, player board.Player) int {
	bonus := 0
	for _, cell := range captured {
		for _, d := range board.NeighborDirections {
			n := board.Coord{Row: cell.Row + d.Row, Col: cell.Col + d.Col}
			if n.Valid() && pos.At(n) == player {
				bonus += 1500
			}
		}
	}
	return bonus
}

// captureTally scores player's own accumulated captures and the mirrored,
// slightly heavier penalty for the opponent's.
func captureTally(pos *board.Position, player board.Player) int {
	own := pos.CaptureCount(player)
	opp := pos.CaptureCount(player.Opponent())
	return captureTallyBonus(own) - captureTallyPenalty(opp)
}

func captureTallyBonus(n int) int {
	switch {
	case n >= 9:
		return 300000
	case n == 8:
		return 200000
	case n >= 6:
		return 15000
	case n >= 4:
		return 6000
	default:
		return 500 * n
	}
}

func captureTallyPenalty(n int) int {
	switch {
	case n >= 9:
		return 330000
	case n == 8:
		return 220000
	case n >= 6:
		return 16500
	case n >= 4:
		return 6600
	default:
		return 550 * n
	}
}
