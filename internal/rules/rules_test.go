package rules

import (
	"testing"

	"github.com/jainavas/gomoku-engine/internal/board"
)

func at(r, c int) board.Coord { return board.Coord{Row: r, Col: c} }

func TestApplyMoveSimpleCapture(t *testing.T) {
	pos := board.NewPosition()
	pos.Grid[9][9] = board.P1
	pos.Grid[9][10] = board.P2
	pos.Grid[9][11] = board.P2
	pos.SideToMove = board.P1
	pos.Hash = board.FullHash(pos)

	result := ApplyMove(pos, at(9, 12))
	if !result.Success {
		t.Fatalf("expected ApplyMove to succeed")
	}
	if len(result.MyCaptured) != 2 {
		t.Fatalf("expected 2 captured cells, got %d", len(result.MyCaptured))
	}
	if pos.At(at(9, 10)) != board.Empty || pos.At(at(9, 11)) != board.Empty {
		t.Fatalf("expected captured cells emptied")
	}
	if pos.CaptureCount(board.P1) != 1 {
		t.Fatalf("expected P1 captures == 1, got %d", pos.CaptureCount(board.P1))
	}
	if pos.Hash != board.FullHash(pos) {
		t.Fatalf("incremental hash diverged from full hash")
	}
}

func TestApplyMoveRejectsDoubleFreeThree(t *testing.T) {
	pos := board.NewPosition()
	pos.Grid[9][9] = board.P1
	pos.Grid[9][11] = board.P1
	pos.Grid[11][9] = board.P1
	pos.Grid[11][11] = board.P1
	// (8,11) and (11,8) lie on the anti-diagonal through both tested moves,
	// so each move adds a second free-three to its row or column three.
	pos.Grid[8][11] = board.P1
	pos.Grid[11][8] = board.P1
	pos.SideToMove = board.P1

	for _, m := range []board.Coord{at(9, 10), at(10, 9)} {
		if IsLegalMove(pos, m) {
			t.Errorf("expected %v to be illegal (double free-three)", m)
		}
		before := *pos
		result := ApplyMove(pos, m)
		if result.Success {
			t.Errorf("expected ApplyMove(%v) to fail", m)
		}
		if *pos != before {
			t.Errorf("ApplyMove must not mutate pos on failure")
		}
	}
}

func TestCheckWinByCaptureCount(t *testing.T) {
	pos := board.NewPosition()
	pos.Captures[board.P2-1] = 9
	pos.Grid[9][9] = board.P2
	pos.Grid[9][10] = board.P1
	pos.Grid[9][11] = board.P1
	pos.SideToMove = board.P2

	result := ApplyMove(pos, at(9, 12))
	if !result.Success {
		t.Fatalf("expected move to succeed")
	}
	if pos.CaptureCount(board.P2) != 10 {
		t.Fatalf("expected 10 captures, got %d", pos.CaptureCount(board.P2))
	}
	if !CheckWin(pos, board.P2) {
		t.Fatalf("expected CheckWin to be true at 10 captures")
	}
}

func TestCanBreakLineByCapture(t *testing.T) {
	pos := board.NewPosition()
	for col := 10; col <= 14; col++ {
		pos.Grid[9][col] = board.P2
	}
	// (10,10) extends the run's leftmost stone into a vertical pair with
	// (9,10); P1 already flanks it from above at (8,10), so playing the
	// empty cell at (11,10) completes Opp-Self-Self-Opp and captures both.
	pos.Grid[10][10] = board.P2
	pos.Grid[8][10] = board.P1

	var targets []board.Coord
	can := CanBreakLineByCapture(pos, at(9, 10), board.Coord{Row: 0, Col: 1}, board.P2, &targets)
	if !can {
		t.Fatalf("expected the run to be breakable by capture")
	}
	found := false
	for _, m := range targets {
		if m == at(11, 10) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected (11,10) among breaking moves, got %v", targets)
	}
}

func TestCheckWinWithheldByBreakByCapture(t *testing.T) {
	pos := board.NewPosition()
	for col := 10; col <= 14; col++ {
		pos.Grid[9][col] = board.P2
	}
	pos.Grid[10][10] = board.P2
	pos.Grid[8][10] = board.P1
	pos.SideToMove = board.P1

	if CheckWin(pos, board.P2) {
		t.Fatalf("expected CheckWin to be withheld while the run is breakable by capture")
	}
}

func TestFindCapturesPure(t *testing.T) {
	pos := board.NewPosition()
	pos.Grid[9][9] = board.P1
	pos.Grid[9][10] = board.P2
	pos.Grid[9][11] = board.P2

	before := *pos
	captured := FindCaptures(pos, at(9, 12), board.P1)
	if *pos != before {
		t.Fatalf("FindCaptures must not mutate pos")
	}
	if len(captured) != 2 {
		t.Fatalf("expected 2 captured cells, got %d", len(captured))
	}
	for _, c := range captured {
		if pos.At(c) != board.P2 {
			t.Errorf("captured cell %v is not an opponent stone", c)
		}
	}
}

// canonicalFreeThreeWindows enumerates the 10 window shapes spec.md section
// 8 requires coverage for, read left to right with the move played at the
// rightmost 'x' added to the pattern. Each is laid out once along row 5
// starting at column 5, away from the board edge.
func canonicalFreeThreeWindows(t *testing.T) {
	t.Helper()
	patterns := []string{
		".xxx...",
		".xx.x..",
		".xx..x.",
		".x.xx..",
		".x.x.x.",
		".x..xx.",
		"..xxx..",
		"..xx.x.",
		"..x.xx.",
		"...xxx.",
	}

	for _, pattern := range patterns {
		pattern := pattern
		t.Run(pattern, func(t *testing.T) {
			pos := board.NewPosition()
			row := 5
			startCol := 5
			var moveCol = -1
			stoneCols := []int{}
			for i, ch := range pattern {
				col := startCol + i
				switch ch {
				case 'x':
					stoneCols = append(stoneCols, col)
				}
				_ = col
			}
			// Place all but the last stone; apply the last as the tested move.
			moveCol = stoneCols[len(stoneCols)-1]
			for _, col := range stoneCols[:len(stoneCols)-1] {
				pos.Grid[row][col] = board.P1
			}
			m := at(row, moveCol)
			if !directionHasFreeThree(pos, m, board.Coord{Row: 0, Col: 1}, board.P1) {
				t.Errorf("pattern %q: expected a free-three", pattern)
			}
		})
	}
}

func TestFreeThreeCanonicalWindows(t *testing.T) {
	canonicalFreeThreeWindows(t)
}

func TestFreeThreeCanonicalWindowsMirrored(t *testing.T) {
	// Mirroring horizontally is equivalent to reversing the pattern string.
	// The three consecutive-three patterns below are each other's mirrors,
	// so this set covers its own mirror images; it lays them out along the
	// vertical axis to exercise the same window logic on a different axis.
	t.Helper()
	patterns := []string{
		".xxx...",
		"..xxx..",
		"...xxx.",
	}
	for _, pattern := range patterns {
		pos := board.NewPosition()
		col := 5
		startRow := 5
		stoneRows := []int{}
		for i, ch := range pattern {
			if ch == 'x' {
				stoneRows = append(stoneRows, startRow+i)
			}
		}
		moveRow := stoneRows[len(stoneRows)-1]
		for _, row := range stoneRows[:len(stoneRows)-1] {
			pos.Grid[row][col] = board.P1
		}
		m := at(moveRow, col)
		if !directionHasFreeThree(pos, m, board.Coord{Row: 1, Col: 0}, board.P1) {
			t.Errorf("vertical pattern %q: expected a free-three", pattern)
		}
	}
}
