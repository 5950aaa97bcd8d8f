package board

// Zobrist-style hash keys for position fingerprinting. Initialised once from
// a seeded PRNG so keys are reproducible across runs: the same position
// always hashes to the same value.
var (
	zobristPiece   [Size][Size][3]uint64 // [row][col][occupant]; Empty is fixed to 0
	zobristTurn    uint64                // XORed in when P2 is to move
	zobristCapture [2][11]uint64         // [playerIndex][captureBucket 0..10]
)

func init() {
	initZobrist()
}

// prng is a small xorshift64* generator. Not cryptographic; only used to
// seed a fixed, reproducible key table.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0x9E3779B97F4A7C15)

	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			// zobristPiece[r][c][Empty] stays 0 by convention.
			zobristPiece[r][c][P1] = rng.next()
			zobristPiece[r][c][P2] = rng.next()
		}
	}

	zobristTurn = rng.next()

	for pl := 0; pl < 2; pl++ {
		for bucket := 0; bucket <= 10; bucket++ {
			zobristCapture[pl][bucket] = rng.next()
		}
	}
}

func clampCaptures(n int) int {
	if n < 0 {
		return 0
	}
	if n > 10 {
		return 10
	}
	return n
}

// FullHash recomputes the hash from scratch. Used at construction time and
// by tests to verify the incremental update stays consistent.
func FullHash(p *Position) uint64 {
	var h uint64
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			h ^= zobristPiece[r][c][p.Grid[r][c]]
		}
	}
	if p.SideToMove == P2 {
		h ^= zobristTurn
	}
	h ^= zobristCapture[0][clampCaptures(p.Captures[0])]
	h ^= zobristCapture[1][clampCaptures(p.Captures[1])]
	return h
}

// UpdateHashForMove returns the incremental hash after placing mover's stone
// at placed and removing captured. moverOldCaptures/moverNewCaptures are the
// mover's capture count before and after this move. The update is its own
// inverse: applying it twice with the same arguments restores the original
// hash, which is what lets a search node revert a move by XOR rather than by
// recomputing from scratch.
func UpdateHashForMove(hash uint64, placed Coord, mover Player, captured []Coord, moverOldCaptures, moverNewCaptures int) uint64 {
	h := hash
	h ^= zobristPiece[placed.Row][placed.Col][mover]

	opp := mover.Opponent()
	for _, c := range captured {
		h ^= zobristPiece[c.Row][c.Col][opp]
	}

	h ^= zobristTurn

	if moverOldCaptures != moverNewCaptures {
		idx := int(mover) - 1
		h ^= zobristCapture[idx][clampCaptures(moverOldCaptures)]
		h ^= zobristCapture[idx][clampCaptures(moverNewCaptures)]
	}

	return h
}
