package shogi_test

import (
	"testing"

	"github.com/hailam/naitou-shogi/internal/sfen"
	"github.com/hailam/naitou-shogi/internal/shogi"
)

// maxMovesSfen is the famous 593-pseudo-legal-move record position, used
// upstream specifically to exercise drop-pawn-mate exclusion at depth 3
// (without it, that depth's leaf count comes out wrong).
const maxMovesSfen = "sfen R8/2K1S1SSk/4B4/9/9/9/9/9/1L1L1L3 b RBGSNLP3g3n17p 1"

func mustDecodePosition(t *testing.T, s string) *shogi.Position {
	t.Helper()
	pos, err := sfen.DecodePosition(s)
	if err != nil {
		t.Fatalf("DecodePosition(%q): %v", s, err)
	}
	return shogi.NewPositionFromBoard(pos.SideToMove, pos.Board, pos.Hands)
}

func checkPerftStats(t *testing.T, got shogi.PerftStats, wantAll, wantCapture, wantPromote, wantCheck, wantCheckmate uint64) {
	t.Helper()
	if got.CountAll != wantAll {
		t.Errorf("CountAll = %d, want %d", got.CountAll, wantAll)
	}
	if got.CountCapture != wantCapture {
		t.Errorf("CountCapture = %d, want %d", got.CountCapture, wantCapture)
	}
	if got.CountPromote != wantPromote {
		t.Errorf("CountPromote = %d, want %d", got.CountPromote, wantPromote)
	}
	if got.CountCheck != wantCheck {
		t.Errorf("CountCheck = %d, want %d", got.CountCheck, wantCheck)
	}
	if got.CountCheckmate != wantCheckmate {
		t.Errorf("CountCheckmate = %d, want %d", got.CountCheckmate, wantCheckmate)
	}
}

func TestPerftStartposDepth1(t *testing.T) {
	stats := shogi.Perft(shogi.NewPosition(), 1)
	checkPerftStats(t, stats, 30, 0, 0, 0, 0)
}

func TestPerftStartposDepth2(t *testing.T) {
	stats := shogi.Perft(shogi.NewPosition(), 2)
	checkPerftStats(t, stats, 900, 0, 0, 0, 0)
}

func TestPerftStartposDepth3(t *testing.T) {
	stats := shogi.Perft(shogi.NewPosition(), 3)
	checkPerftStats(t, stats, 25470, 59, 30, 48, 0)
}

func TestPerftStartposDepth4(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 4 from the starting position is slow; run without -short")
	}
	stats := shogi.Perft(shogi.NewPosition(), 4)
	checkPerftStats(t, stats, 719731, 1803, 842, 1121, 0)
}

func TestPerftStartposDepth5(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 5 from the starting position is a multi-minute run; run without -short")
	}
	stats := shogi.Perft(shogi.NewPosition(), 5)
	checkPerftStats(t, stats, 19861490, 113680, 57214, 71434, 0)
}

func TestPerftMaxMovesDepth1(t *testing.T) {
	pos := mustDecodePosition(t, maxMovesSfen)
	stats := shogi.Perft(pos, 1)
	checkPerftStats(t, stats, 593, 0, 52, 40, 6)
}

func TestPerftMaxMovesDepth2(t *testing.T) {
	pos := mustDecodePosition(t, maxMovesSfen)
	stats := shogi.Perft(pos, 2)
	checkPerftStats(t, stats, 105677, 538, 0, 3802, 0)
}

// TestPerftMaxMovesDepth3 specifically exercises drop-pawn-mate exclusion:
// skipping it makes this count come out wrong, per the upstream fixture.
func TestPerftMaxMovesDepth3(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 3 on the 593-move position is a multi-minute run; run without -short")
	}
	pos := mustDecodePosition(t, maxMovesSfen)
	stats := shogi.Perft(pos, 3)
	checkPerftStats(t, stats, 53393368, 197899, 4875102, 3493971, 566203)
}
