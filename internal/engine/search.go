package engine

import (
	"time"

	"github.com/jainavas/gomoku-engine/internal/board"
	"github.com/jainavas/gomoku-engine/internal/rules"
)

const (
	Infinity = 1 << 30
	MaxPly   = 64
)

// Stats are the search statistics the EnginePort exposes (spec.md section
// 6, lastStats). Nodes, CacheHits, Elapsed, Score and Depth describe the
// most recent call; HitRate is the table's hit percentage over all probes
// since its last Clear, and HashFull is the table's occupancy by the
// current generation, in permille.
type Stats struct {
	Nodes     uint64
	CacheHits uint64
	HitRate   float64
	HashFull  int
	Elapsed   time.Duration
	Score     int
	Depth     int
}

// Searcher runs iterative-deepening negamax alpha-beta over a transposition
// table and move orderer it owns (spec.md section 4.5). A Searcher is not
// safe for concurrent use; callers serialize calls as the EnginePort does.
type Searcher struct {
	tt      *TranspositionTable
	orderer *MoveOrderer

	nodes     uint64
	cacheHits uint64
}

func NewSearcher(tt *TranspositionTable) *Searcher {
	return &Searcher{tt: tt, orderer: NewMoveOrderer()}
}

// BestMoveIterative runs depth = 1..maxDepth, stashing each iteration's best
// move to seed move ordering at the next depth (the iterative-deepening
// monotonicity property in spec.md section 8).
func (s *Searcher) BestMoveIterative(pos *board.Position, maxDepth int) (board.Move, int, Stats) {
	start := time.Now()
	s.nodes = 0
	s.cacheHits = 0
	s.orderer.Clear()
	s.tt.NewGeneration()

	best := board.NoCoord
	score := 0

	for depth := 1; depth <= maxDepth; depth++ {
		sc, mv := s.negamaxRoot(pos, maxDepth, depth)
		if mv.Valid() {
			best = mv
			score = sc
			s.orderer.previousBest = best
		}
		if abs(score) > 90000 {
			break
		}
	}

	stats := Stats{
		Nodes:     s.nodes,
		CacheHits: s.cacheHits,
		HitRate:   s.tt.HitRate(),
		HashFull:  s.tt.HashFull(),
		Elapsed:   time.Since(start),
		Score:     score,
		Depth:     maxDepth,
	}
	return best, score, stats
}

// negamaxRoot is depth 0 of the search: it performs the quick win probe
// described in spec.md section 4.5 item 5 before falling back to the
// regular recursive negamax for non-winning candidates.
func (s *Searcher) negamaxRoot(pos *board.Position, maxDepth, depth int) (int, board.Move) {
	candidates := generateCandidates(pos)
	if len(candidates) == 0 {
		return Evaluate(pos, maxDepth, 0), board.NoCoord
	}

	ordered := s.orderMoves(pos, candidates, 0, s.orderer.previousBest)
	ordered = truncateCandidates(pos, ordered)

	alpha, beta := -Infinity, Infinity
	bestScore := -Infinity
	bestMove := ordered[0]

	for _, m := range ordered {
		trial := pos.Copy()
		trial.Ply = 1
		result := rules.ApplyMove(trial, m)
		if !result.Success {
			continue
		}

		var score int
		if result.Win {
			score = ScoreWin + (maxDepth - 0 + 1)
		} else {
			score = -s.negamax(trial, maxDepth, depth-1, 1, -beta, -alpha)
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
	}

	s.tt.Store(pos.Hash, bestScore, depth, bestMove, BoundExact)
	return bestScore, bestMove
}

// negamax is the interior alpha-beta recursion (spec.md section 4.5).
func (s *Searcher) negamax(pos *board.Position, maxDepth, depth, ply, alpha, beta int) int {
	s.nodes++

	var ttMove board.Coord = board.NoCoord
	if entry, ok := s.tt.Probe(pos.Hash); ok {
		s.cacheHits++
		ttMove = entry.BestMove
		if int(entry.Depth) >= depth {
			score := adjustScoreFromTT(int(entry.Score), ply)
			switch entry.Bound {
			case BoundExact:
				return score
			case BoundLower:
				if score > alpha {
					alpha = score
				}
			case BoundUpper:
				if score < beta {
					beta = score
				}
			}
			if alpha >= beta {
				return score
			}
		}
	}

	mover := pos.SideToMove
	if depth <= 0 || rules.CheckWin(pos, mover) || rules.CheckWin(pos, mover.Opponent()) {
		return Evaluate(pos, maxDepth, ply)
	}

	candidates := generateCandidates(pos)
	if len(candidates) == 0 {
		return Evaluate(pos, maxDepth, ply)
	}

	ordered := s.orderMoves(pos, candidates, ply, ttMove)
	ordered = truncateCandidates(pos, ordered)

	alphaOrig := alpha
	bestScore := -Infinity
	bestMove := board.NoCoord

	for _, m := range ordered {
		trial := pos.Copy()
		trial.Ply = ply + 1
		result := rules.ApplyMove(trial, m)
		if !result.Success {
			continue
		}

		score := -s.negamax(trial, maxDepth, depth-1, ply+1, -beta, -alpha)

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			s.orderer.UpdateKillers(m, ply)
			s.orderer.UpdateHistory(m, depth)
			break
		}
	}

	if !bestMove.Valid() {
		return Evaluate(pos, maxDepth, ply)
	}

	bound := BoundExact
	switch {
	case bestScore <= alphaOrig:
		bound = BoundUpper
	case bestScore >= beta:
		bound = BoundLower
	}
	s.tt.Store(pos.Hash, adjustScoreToTT(bestScore, ply), depth, bestMove, bound)

	return bestScore
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
