package sfen

import (
	"testing"

	"github.com/hailam/naitou-shogi/internal/shogi"
)

func TestDecodeStartpos(t *testing.T) {
	pos, err := DecodePosition("startpos")
	if err != nil {
		t.Fatalf("DecodePosition(startpos): %v", err)
	}
	if pos.SideToMove != shogi.HUM {
		t.Errorf("side = %v, want HUM", pos.SideToMove)
	}
	if pos.Board != shogi.NewPosition().Board {
		t.Errorf("board does not match the standard starting array")
	}
}

func TestDecodeIgnoresLeadingPositionToken(t *testing.T) {
	pos1, err := DecodePosition("startpos")
	if err != nil {
		t.Fatal(err)
	}
	pos2, err := DecodePosition("position startpos")
	if err != nil {
		t.Fatal(err)
	}
	if pos1 != pos2 {
		t.Errorf("leading \"position\" token changed the result")
	}
}

func TestEncodeStartposRoundTrip(t *testing.T) {
	pos, err := DecodePosition("startpos")
	if err != nil {
		t.Fatal(err)
	}
	got := EncodePosition(pos.SideToMove, &pos.Board, &pos.Hands)
	if got != "startpos" {
		t.Errorf("EncodePosition = %q, want %q", got, "startpos")
	}
}

func TestDecodeMoveWalk(t *testing.T) {
	m, err := DecodeMove("7g7f")
	if err != nil {
		t.Fatal(err)
	}
	want := shogi.NewWalkMove(shogi.NewSquare(shogi.Col(6), shogi.Row(6)), shogi.NewSquare(shogi.Col(6), shogi.Row(5)), false)
	if m != want {
		t.Errorf("DecodeMove(7g7f) = %v, want %v", m, want)
	}
	if EncodeMove(m) != "7g7f" {
		t.Errorf("EncodeMove round-trip = %q, want %q", EncodeMove(m), "7g7f")
	}
}

func TestDecodeMoveWalkPromotion(t *testing.T) {
	m, err := DecodeMove("8h2b+")
	if err != nil {
		t.Fatal(err)
	}
	if !m.IsPromotion() {
		t.Errorf("expected promotion flag set")
	}
	if got := EncodeMove(m); got != "8h2b+" {
		t.Errorf("EncodeMove round-trip = %q, want %q", got, "8h2b+")
	}
}

func TestDecodeMoveDrop(t *testing.T) {
	m, err := DecodeMove("P*5e")
	if err != nil {
		t.Fatal(err)
	}
	if !m.IsDrop() || m.DroppedKind() != shogi.Pawn {
		t.Errorf("DecodeMove(P*5e) = %v, want a pawn drop", m)
	}
	if got := EncodeMove(m); got != "P*5e" {
		t.Errorf("EncodeMove round-trip = %q, want %q", got, "P*5e")
	}
}

func TestDecodeMoveInvalid(t *testing.T) {
	for _, s := range []string{"", "xx", "7g7", "Q*5e", "99aa"} {
		if _, err := DecodeMove(s); err == nil {
			t.Errorf("DecodeMove(%q): expected error, got nil", s)
		}
	}
}

func TestDecodeFullStringWithMoves(t *testing.T) {
	pos, moves, err := Decode("startpos moves 7g7f 3c3d")
	if err != nil {
		t.Fatal(err)
	}
	if pos.SideToMove != shogi.HUM {
		t.Errorf("side = %v, want HUM", pos.SideToMove)
	}
	if len(moves) != 2 {
		t.Fatalf("len(moves) = %d, want 2", len(moves))
	}
	if got := EncodeMove(moves[0]); got != "7g7f" {
		t.Errorf("moves[0] = %q, want 7g7f", got)
	}
	if got := EncodeMove(moves[1]); got != "3c3d" {
		t.Errorf("moves[1] = %q, want 3c3d", got)
	}
}

func TestDecodeSfenPositionString(t *testing.T) {
	s := "sfen 4k4/9/9/9/9/9/9/9/4K4 b - 1"
	pos, err := DecodePosition(s)
	if err != nil {
		t.Fatal(err)
	}
	if pos.SideToMove != shogi.HUM {
		t.Errorf("side = %v, want HUM", pos.SideToMove)
	}
	king := pos.Board.At(shogi.NewSquare(shogi.Col(4), shogi.Row(0)))
	if king.Kind() != shogi.King || king.Side() != shogi.COM {
		t.Errorf("expected COM king at 5a, got %v", king)
	}
	humKing := pos.Board.At(shogi.NewSquare(shogi.Col(4), shogi.Row(8)))
	if humKing.Kind() != shogi.King || humKing.Side() != shogi.HUM {
		t.Errorf("expected HUM king at 5i, got %v", humKing)
	}

	got := EncodePosition(pos.SideToMove, &pos.Board, &pos.Hands)
	if got != s {
		t.Errorf("round trip = %q, want %q", got, s)
	}
}

func TestDecodeHandsSimple(t *testing.T) {
	hands, err := decodeHands("2R2Pb")
	if err != nil {
		t.Fatal(err)
	}
	if hands[shogi.HUM].Count(shogi.Rook) != 2 {
		t.Errorf("hum rook count = %d, want 2", hands[shogi.HUM].Count(shogi.Rook))
	}
	if hands[shogi.HUM].Count(shogi.Pawn) != 2 {
		t.Errorf("hum pawn count = %d, want 2", hands[shogi.HUM].Count(shogi.Pawn))
	}
	if hands[shogi.COM].Count(shogi.Bishop) != 1 {
		t.Errorf("com bishop count = %d, want 1", hands[shogi.COM].Count(shogi.Bishop))
	}
}
