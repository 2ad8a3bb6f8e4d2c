package book

import (
	"testing"

	"github.com/hailam/naitou-shogi/internal/shogi"
)

func TestFromHandicapEvenYieldsNothing(t *testing.T) {
	if f := FromHandicap(shogi.HumSenteEven); f != Nothing {
		t.Errorf("FromHandicap(HumSenteEven) = %v, want Nothing", f)
	}
	if f := FromHandicap(shogi.ComSenteEven); f != Nothing {
		t.Errorf("FromHandicap(ComSenteEven) = %v, want Nothing", f)
	}
}

func TestFromHandicapFixedFormations(t *testing.T) {
	cases := []struct {
		h    shogi.Handicap
		want Formation
	}{
		{shogi.HumSenteSikenbisha, Sikenbisha},
		{shogi.ComSenteSikenbisha, Sikenbisha},
		{shogi.HumSenteNakabisha, Nakabisha},
		{shogi.HumHishaochi, HumHishaochi},
		{shogi.HumNimaiochi, HumNimaiochi},
		{shogi.ComHishaochi, ComHishaochi},
		{shogi.ComNimaiochi, ComNimaiochi},
	}
	for _, c := range cases {
		if got := FromHandicap(c.h); got != c.want {
			t.Errorf("FromHandicap(%v) = %v, want %v", c.h, got, c.want)
		}
	}
}

func TestNewStateNothingNeverSuggestsAMove(t *testing.T) {
	s := NewState(Nothing)
	var board shogi.Board
	m, ok := s.NextMove(&board, 0)
	if ok || m != shogi.NoMove {
		t.Errorf("NextMove on a Nothing-formation State = (%v, %v), want (NoMove, false)", m, ok)
	}
}

func TestNextMoveFirstCanonicalMoveNakabisha(t *testing.T) {
	s := NewState(Nakabisha)
	var board shogi.Board

	first := bookMovesNakabisha[0]
	m, ok := s.NextMove(&board, 1)
	if !ok {
		t.Fatalf("expected a book move on an empty board")
	}
	want := shogi.NewWalkMove(first.src, first.dst, false)
	if m != want {
		t.Errorf("first Nakabisha move = %v, want %v", m, want)
	}
}

func TestNextMoveProgressPlyZeroDoesNotConsumeEntry(t *testing.T) {
	s := NewState(Nakabisha)
	var board shogi.Board

	first := bookMovesNakabisha[0]
	want := shogi.NewWalkMove(first.src, first.dst, false)

	m1, ok1 := s.NextMove(&board, 0)
	m2, ok2 := s.NextMove(&board, 0)

	if !ok1 || !ok2 || m1 != want || m2 != want {
		t.Errorf("progressPly==0 should repeat the same entry: got (%v,%v) then (%v,%v)", m1, ok1, m2, ok2)
	}
}

func TestNextMoveConsumesEntriesInSequence(t *testing.T) {
	s := NewState(Nakabisha)
	var board shogi.Board

	for i, want := range bookMovesNakabisha {
		m, ok := s.NextMove(&board, uint8(i+1))
		if !ok {
			t.Fatalf("entry %d: expected a book move, got none", i)
		}
		wantMove := shogi.NewWalkMove(want.src, want.dst, false)
		if m != wantMove {
			t.Errorf("entry %d = %v, want %v", i, m, wantMove)
		}
	}

	// Every canned move consumed; the book should now report exhausted.
	m, ok := s.NextMove(&board, uint8(len(bookMovesNakabisha)+1))
	if ok || m != shogi.NoMove {
		t.Errorf("after exhausting the move list, NextMove = (%v, %v), want (NoMove, false)", m, ok)
	}
	if s.Formation() != Nothing {
		t.Errorf("Formation() after exhaustion = %v, want Nothing", s.Formation())
	}
}

func TestNextMoveBranchSwitchesFormation(t *testing.T) {
	s := NewState(Sikenbisha)

	var board shogi.Board
	board.Put(shogi.SQ22, shogi.NewPiece(shogi.HUM, shogi.Bishop))

	_, ok := s.NextMove(&board, 1)
	if !ok {
		t.Fatalf("expected a move after the branch-triggering position")
	}
	if s.Formation() != Kakugawari {
		t.Errorf("Formation() after HUM bishop on 2b = %v, want Kakugawari", s.Formation())
	}
}
