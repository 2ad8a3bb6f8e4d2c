package shogi

import "testing"

func TestNewPositionPlacement(t *testing.T) {
	p := NewPosition()

	if p.SideToMove != HUM {
		t.Errorf("SideToMove = %v, want HUM", p.SideToMove)
	}
	if p.Board.At(p.KingSq[HUM]).Kind() != King || p.Board.At(p.KingSq[HUM]).Side() != HUM {
		t.Errorf("HUM king not at recorded KingSq")
	}
	if p.Board.At(p.KingSq[COM]).Kind() != King || p.Board.At(p.KingSq[COM]).Side() != COM {
		t.Errorf("COM king not at recorded KingSq")
	}

	for c := Col1; c <= Col9; c++ {
		if pc := p.Board.At(NewSquare(c, Row7)); pc.Kind() != Pawn || pc.Side() != HUM {
			t.Errorf("expected a HUM pawn on rank 7 file %d, got %v", c.Num(), pc)
		}
		if pc := p.Board.At(NewSquare(c, Row3)); pc.Kind() != Pawn || pc.Side() != COM {
			t.Errorf("expected a COM pawn on rank 3 file %d, got %v", c.Num(), pc)
		}
	}

	if p.IsChecked(HUM) || p.IsChecked(COM) {
		t.Errorf("neither king should be in check in the starting position")
	}
}

func TestDoMoveUndoMoveRoundTrip(t *testing.T) {
	p := NewPosition()
	before := *p

	m := NewWalkMove(NewSquare(Col7, Row7), NewSquare(Col7, Row6), false)
	um := p.DoMove(m)

	if p.Board.At(NewSquare(Col7, Row7)).Kind() != NoPieceKind {
		t.Errorf("source square should be empty after DoMove")
	}
	if pc := p.Board.At(NewSquare(Col7, Row6)); pc.Kind() != Pawn || pc.Side() != HUM {
		t.Errorf("destination square should hold the moved pawn, got %v", pc)
	}
	if p.SideToMove != COM {
		t.Errorf("SideToMove = %v, want COM after HUM's move", p.SideToMove)
	}

	p.UndoMove(um)

	if p.Board != before.Board {
		t.Errorf("board did not return to its original state after undo")
	}
	if p.SideToMove != before.SideToMove {
		t.Errorf("SideToMove = %v, want %v after undo", p.SideToMove, before.SideToMove)
	}
	if p.EffectCounts != before.EffectCounts {
		t.Errorf("effect counts did not return to their original state after undo")
	}
}

func TestDoMoveCapture(t *testing.T) {
	p := NewPosition()

	// Clear a path for HUM's bishop to capture COM's bishop, to exercise
	// the hand-gain half of DoMove/UndoMove.
	p.Board.Put(NewSquare(Col7, Row7), NoPiece)
	p.Board.Put(NewSquare(Col3, Row3), NoPiece)

	m := NewWalkMove(NewSquare(Col2, Row8), NewSquare(Col8, Row2), false)
	um := p.DoMove(m)

	if um.Captured.Kind() != Bishop || um.Captured.Side() != COM {
		t.Fatalf("expected to capture COM's bishop, got %v", um.Captured)
	}
	if p.Hands[HUM].Count(Bishop) != 1 {
		t.Errorf("HUM hand bishop count = %d, want 1", p.Hands[HUM].Count(Bishop))
	}

	p.UndoMove(um)

	if p.Hands[HUM].Count(Bishop) != 0 {
		t.Errorf("HUM hand bishop count after undo = %d, want 0", p.Hands[HUM].Count(Bishop))
	}
	if pc := p.Board.At(NewSquare(Col8, Row2)); pc.Kind() != Bishop || pc.Side() != COM {
		t.Errorf("COM bishop not restored at 8b, got %v", pc)
	}
}

func TestNewPositionForHandicapRemovesPieces(t *testing.T) {
	p := NewPositionForHandicap(HumHishaochi)
	if !p.Board.At(NewSquare(Col2, Row2)).IsNone() {
		t.Errorf("expected COM's rook square to be empty under hishaochi")
	}
	if p.SideToMove != HUM {
		t.Errorf("SideToMove = %v, want HUM under hum-hishaochi", p.SideToMove)
	}

	pc := NewPositionForHandicap(ComNimaiochi)
	if !pc.Board.At(NewSquare(Col2, Row2)).IsNone() || !pc.Board.At(NewSquare(Col8, Row2)).IsNone() {
		t.Errorf("expected both COM major pieces removed under nimaiochi")
	}
	if pc.SideToMove != COM {
		t.Errorf("SideToMove = %v, want COM under com-nimaiochi", pc.SideToMove)
	}
}
