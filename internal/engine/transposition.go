package engine

import (
	"github.com/jainavas/gomoku-engine/internal/board"
)

// Bound identifies the kind of score stored in a TTEntry: an exact value, or
// a bound discovered by an alpha or beta cutoff.
type Bound uint8

const (
	BoundExact Bound = iota
	BoundLower
	BoundUpper
)

// TTEntry is a single transposition table slot (spec.md section 3). A zero
// Key means the slot is empty.
type TTEntry struct {
	Key        uint64
	Score      int32
	Depth      int8
	BestMove   board.Move
	Bound      Bound
	Generation uint32
}

// TranspositionTable is a direct-mapped, power-of-two-sized cache of search
// results keyed by position hash (spec.md section 4.3).
type TranspositionTable struct {
	entries    []TTEntry
	mask       uint64
	generation uint32

	probes uint64
	hits   uint64
}

// approxEntrySize is used only to size the table from a byte budget; it does
// not need to match unsafe.Sizeof(TTEntry{}) exactly.
const approxEntrySize = 32

// NewTranspositionTable builds a table sized to fit within byteBudget,
// rounded down to a power of two entry count.
func NewTranspositionTable(byteBudget int) *TranspositionTable {
	n := roundDownToPowerOf2(uint64(byteBudget) / approxEntrySize)
	if n == 0 {
		n = 1
	}
	return &TranspositionTable{
		entries:    make([]TTEntry, n),
		mask:       n - 1,
		generation: 1,
	}
}

func roundDownToPowerOf2(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// weight is the importance multiplier used by the collision replacement
// policy: exact bounds are worth more than one-sided bounds.
func weight(b Bound) int {
	if b == BoundExact {
		return 3
	}
	return 2
}

// Probe looks up hash. On hit, the slot's generation is refreshed to the
// table's current generation.
func (tt *TranspositionTable) Probe(hash uint64) (TTEntry, bool) {
	tt.probes++
	if hash == 0 {
		return TTEntry{}, false
	}
	slot := &tt.entries[hash&tt.mask]
	if slot.Key == hash {
		slot.Generation = tt.generation
		tt.hits++
		return *slot, true
	}
	return TTEntry{}, false
}

// Store writes to hash's slot under the replacement policy: an empty slot is
// always taken; a same-key slot is overwritten iff depth is at least as
// large as what's stored; a colliding different-key slot is overwritten only
// if the new entry's importance (depth*weight(bound), aged for the existing
// entry by 10 per generation behind) is at least as large, breaking ties in
// favour of Exact bounds (spec.md section 4.3).
func (tt *TranspositionTable) Store(hash uint64, score int, depth int, bestMove board.Move, bound Bound) {
	if hash == 0 {
		return
	}
	slot := &tt.entries[hash&tt.mask]

	switch {
	case slot.Key == 0:
		// empty slot, always take it
	case slot.Key == hash:
		if depth < int(slot.Depth) {
			return
		}
	default:
		newImportance := depth * weight(bound)
		existingImportance := int(slot.Depth)*weight(slot.Bound) - 10*int(tt.generation-slot.Generation)
		if newImportance < existingImportance {
			return
		}
		if newImportance == existingImportance && slot.Bound == BoundExact && bound != BoundExact {
			return
		}
	}

	slot.Key = hash
	slot.Score = int32(score)
	slot.Depth = int8(depth)
	slot.BestMove = bestMove
	slot.Bound = bound
	slot.Generation = tt.generation
}

// NewGeneration advances the aging counter. Called once per top-level
// BestMove call so stale entries lose replacement priority without a full
// clear.
func (tt *TranspositionTable) NewGeneration() {
	tt.generation++
}

// Clear resets every slot and the generation counter to 1.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
	tt.generation = 1
	tt.hits = 0
	tt.probes = 0
}

// HashFull samples up to the first 1000 entries and returns the permille
// occupied by the current generation.
func (tt *TranspositionTable) HashFull() int {
	sample := 1000
	if uint64(sample) > uint64(len(tt.entries)) {
		sample = len(tt.entries)
	}
	if sample == 0 {
		return 0
	}
	used := 0
	for i := 0; i < sample; i++ {
		if tt.entries[i].Key != 0 && tt.entries[i].Generation == tt.generation {
			used++
		}
	}
	return used * 1000 / sample
}

// HitRate returns the percentage of probes that hit.
func (tt *TranspositionTable) HitRate() float64 {
	if tt.probes == 0 {
		return 0
	}
	return float64(tt.hits) / float64(tt.probes) * 100
}

// Entries returns the table's entry count.
func (tt *TranspositionTable) Entries() uint64 {
	return uint64(len(tt.entries))
}

// mateThreshold marks scores close enough to a terminal win/loss that they
// encode a ply-distance-to-mate and need TT-relative adjustment.
const mateThreshold = ScoreWin - MaxPly

// adjustScoreToTT rewrites a ply-relative mate score into a ply-independent
// one before storing, so a later probe at a different ply can re-relativize
// it correctly.
func adjustScoreToTT(score, ply int) int {
	switch {
	case score > mateThreshold:
		return score + ply
	case score < -mateThreshold:
		return score - ply
	default:
		return score
	}
}

// adjustScoreFromTT is adjustScoreToTT's inverse, applied after a probe.
func adjustScoreFromTT(score, ply int) int {
	switch {
	case score > mateThreshold:
		return score - ply
	case score < -mateThreshold:
		return score + ply
	default:
		return score
	}
}
