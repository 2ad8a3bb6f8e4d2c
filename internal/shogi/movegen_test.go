package shogi

import "testing"

func countMoves(ml MoveList, pred func(Move) bool) int {
	n := 0
	for _, m := range ml {
		if pred(m) {
			n++
		}
	}
	return n
}

func TestGenerateMovesStartingPositionPawnPush(t *testing.T) {
	p := NewPosition()
	moves := GenerateMoves(p, HUM)

	want := NewWalkMove(NewSquare(Col7, Row7), NewSquare(Col7, Row6), false)
	found := false
	for _, m := range moves {
		if m == want {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected 7g7f among HUM's starting moves")
	}

	for _, m := range moves {
		if m.IsDrop() {
			t.Errorf("no pieces are in hand yet, but got a drop move %v", m)
		}
	}
}

func TestGenerateMovesComSymmetric(t *testing.T) {
	p := NewPosition()
	p.SideToMove = COM
	moves := GenerateMoves(p, COM)

	want := NewWalkMove(NewSquare(Col3, Row3), NewSquare(Col3, Row4), false)
	found := false
	for _, m := range moves {
		if m == want {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected 3c3d among COM's starting moves")
	}
}

func TestGenerateMovesNoCaptureOwnPiece(t *testing.T) {
	p := NewPosition()
	moves := GenerateMoves(p, HUM)

	for _, m := range moves {
		if m.IsDrop() {
			continue
		}
		dst := m.Dst()
		occ := p.Board.At(dst)
		if !occ.IsNone() && occ.Side() == HUM {
			t.Errorf("move %v lands on a square occupied by HUM's own piece", m)
		}
	}
}

func TestGenerateMovesPawnDropRestrictions(t *testing.T) {
	p := NewPosition()
	p.Hands[HUM].Add(Pawn)

	moves := GenerateMoves(p, HUM)
	for _, m := range moves {
		if !m.IsDrop() || m.DroppedKind() != Pawn {
			continue
		}
		if m.Dst().Col() == Col7 {
			t.Errorf("two-pawn rule violated: drop onto file 7 allowed where HUM already has an unpromoted pawn")
		}
		if m.Dst().Row() == Row1 {
			t.Errorf("pawn drop onto the last rank should be illegal, got %v", m)
		}
	}
}

func TestGenerateMovesKnightDropRestrictedToLastTwoRanks(t *testing.T) {
	p := NewPosition()
	p.Hands[HUM].Add(Knight)

	moves := GenerateMoves(p, HUM)
	for _, m := range moves {
		if !m.IsDrop() || m.DroppedKind() != Knight {
			continue
		}
		if m.Dst().Row() == Row1 || m.Dst().Row() == Row2 {
			t.Errorf("knight drop onto rank 1 or 2 should be illegal for HUM, got %v", m)
		}
	}
}

func TestGenerateMovesComMatchesPseudoLegalSet(t *testing.T) {
	p := NewPosition()
	p.SideToMove = COM

	generic := GenerateMoves(p, COM)
	comOrder := GenerateMovesCom(p)

	if len(generic) != len(comOrder) {
		t.Fatalf("GenerateMovesCom produced %d moves, GenerateMoves(COM) produced %d", len(comOrder), len(generic))
	}

	seen := make(map[Move]bool, len(generic))
	for _, m := range generic {
		seen[m] = true
	}
	for _, m := range comOrder {
		if !seen[m] {
			t.Errorf("GenerateMovesCom produced move %v absent from GenerateMoves(COM)", m)
		}
	}
}

func TestAppendPromotionVariantsBothOptionsInZone(t *testing.T) {
	p := NewPosition()
	// Place a HUM silver just outside the zone so a step into it offers
	// both a promoting and non-promoting variant.
	p.Board.Put(NewSquare(Col5, Row4), NewPiece(HUM, Silver))
	moves := GenerateMoves(p, HUM)

	plain := countMoves(moves, func(m Move) bool {
		return !m.IsDrop() && m.Src() == NewSquare(Col5, Row4) && m.Dst() == NewSquare(Col5, Row3) && !m.IsPromotion()
	})
	promo := countMoves(moves, func(m Move) bool {
		return !m.IsDrop() && m.Src() == NewSquare(Col5, Row4) && m.Dst() == NewSquare(Col5, Row3) && m.IsPromotion()
	})
	if plain != 1 || promo != 1 {
		t.Errorf("expected exactly one promoting and one non-promoting silver move into the zone, got plain=%d promo=%d", plain, promo)
	}
}

func TestAppendPromotionVariantsForcedForPawnLastRank(t *testing.T) {
	p := NewPosition()
	p.Board.Put(NewSquare(Col5, Row2), NewPiece(HUM, Pawn))
	p.Board.Put(NewSquare(Col5, Row1), NoPiece)
	moves := GenerateMoves(p, HUM)

	nonPromo := countMoves(moves, func(m Move) bool {
		return !m.IsDrop() && m.Src() == NewSquare(Col5, Row2) && m.Dst() == NewSquare(Col5, Row1) && !m.IsPromotion()
	})
	if nonPromo != 0 {
		t.Errorf("pawn pushed to the last rank must always promote, found a non-promoting variant")
	}
}
