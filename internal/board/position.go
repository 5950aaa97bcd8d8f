package board

// ForcedCaptureOverride records a tentative 5-in-a-row that has not yet won
// because the opponent can still break it by capture (spec.md section 4.1,
// break-by-capture override). The match driver (internal/match) installs and
// clears this record between plies. CheckWin does not read it: it withholds
// the win from the run's geometry alone, and this record carries the
// breaking targets across the intervening ply.
type ForcedCaptureOverride struct {
	PendingWinner  Player
	CaptureTargets map[Coord]struct{}
}

// Contains reports whether c is one of the recorded breaking moves.
func (f *ForcedCaptureOverride) Contains(c Coord) bool {
	if f == nil {
		return false
	}
	_, ok := f.CaptureTargets[c]
	return ok
}

// Position is a full Gomoku/Renju board state plus the bookkeeping the
// search core and rule kernel need: per-player capture counts, the side to
// move, a running turn counter, and an incremental Zobrist-style hash.
type Position struct {
	Grid [Size][Size]Player

	// Captures is indexed by player-1 (P1 at 0, P2 at 1).
	Captures [2]int

	SideToMove Player
	TurnCount  int

	// Ply counts plies played since the search root, for mate-distance
	// accounting. It is not part of the hash.
	Ply int

	Hash uint64

	// LastHumanMove holds the most recent move played by the human side.
	// NewPosition sets it to NoCoord; neither ApplyMove nor the match driver
	// updates it, and move ordering does not read it.
	LastHumanMove Coord

	// Override is non-nil while a 5-in-a-row is tentative pending the
	// opponent's chance to break it by capture.
	Override *ForcedCaptureOverride
}

// NewPosition returns an empty board with P1 to move.
func NewPosition() *Position {
	pos := &Position{SideToMove: P1, LastHumanMove: NoCoord}
	pos.Hash = FullHash(pos)
	return pos
}

// Copy returns a deep copy safe to mutate independently of pos.
func (p *Position) Copy() *Position {
	np := *p
	if p.Override != nil {
		targets := make(map[Coord]struct{}, len(p.Override.CaptureTargets))
		for k := range p.Override.CaptureTargets {
			targets[k] = struct{}{}
		}
		np.Override = &ForcedCaptureOverride{
			PendingWinner:  p.Override.PendingWinner,
			CaptureTargets: targets,
		}
	}
	return &np
}

// At returns the occupant of c. Callers must ensure c.Valid().
func (p *Position) At(c Coord) Player {
	return p.Grid[c.Row][c.Col]
}

// IsEmpty reports whether c is on the board and unoccupied.
func (p *Position) IsEmpty(c Coord) bool {
	return c.Valid() && p.Grid[c.Row][c.Col] == Empty
}

// CaptureCount returns the number of pairs pl has captured.
func (p *Position) CaptureCount(pl Player) int {
	return p.Captures[pl-1]
}

// StoneCount returns the total number of stones on the board, used by the
// search core to pick an adaptive candidate radius in the opening.
func (p *Position) StoneCount() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if p.Grid[r][c] != Empty {
				n++
			}
		}
	}
	return n
}
