package shogi

// Position holds the full mutable game state: the board, both hands, whose
// turn it is, the ply counter, and the incrementally (well, here:
// recompute-on-demand — see SPEC_FULL.md) maintained effect tables used by
// both the move generator and the evaluator.
type Position struct {
	Board         Board
	Hands         [2]Hand
	SideToMove    Side
	Ply           int
	EffectCounts  [2]EffectCountBoard
	RangedEffects RangedEffectBoard
	KingSq        [2]Square
}

// NewPosition builds the standard starting position, HUM at ranks 7-9
// (moving toward rank 1) and COM at ranks 1-3 (moving toward rank 9).
func NewPosition() *Position {
	p := &Position{SideToMove: HUM}
	backRow := [9]PieceKind{Lance, Knight, Silver, Gold, King, Gold, Silver, Knight, Lance}

	for i, pk := range backRow {
		p.Board.Put(NewSquare(Col(i), Row1), NewPiece(COM, pk))
		p.Board.Put(NewSquare(Col(i), Row9), NewPiece(HUM, pk))
	}
	for c := Col1; c <= Col9; c++ {
		p.Board.Put(NewSquare(c, Row3), NewPiece(COM, Pawn))
		p.Board.Put(NewSquare(c, Row7), NewPiece(HUM, Pawn))
	}
	p.Board.Put(NewSquare(Col2, Row2), NewPiece(COM, Rook))
	p.Board.Put(NewSquare(Col8, Row2), NewPiece(COM, Bishop))
	p.Board.Put(NewSquare(Col8, Row8), NewPiece(HUM, Rook))
	p.Board.Put(NewSquare(Col2, Row8), NewPiece(HUM, Bishop))

	p.KingSq[COM] = NewSquare(Col5, Row1)
	p.KingSq[HUM] = NewSquare(Col5, Row9)

	p.recomputeEffects()
	return p
}

// NewPositionFromBoard builds a Position from an already-decoded board and
// hands (as produced by, say, the sfen package), locating each side's king
// and computing effect tables from scratch.
func NewPositionFromBoard(side Side, board Board, hands [2]Hand) *Position {
	p := &Position{SideToMove: side, Board: board, Hands: hands}
	p.KingSq[HUM] = NoSquare
	p.KingSq[COM] = NoSquare
	for sq := Square(0); sq < 81; sq++ {
		pc := p.Board.At(sq)
		if !pc.IsNone() && pc.Kind() == King {
			p.KingSq[pc.Side()] = sq
		}
	}
	p.recomputeEffects()
	return p
}

// recomputeEffects rebuilds EffectCounts and RangedEffects for the whole
// board from the current piece placement. Called after every DoMove and
// UndoMove; see SPEC_FULL.md's "Effect maintenance strategy".
func (p *Position) recomputeEffects() {
	p.EffectCounts[HUM] = EffectCountBoard{}
	p.EffectCounts[COM] = EffectCountBoard{}
	p.RangedEffects = RangedEffectBoard{}

	for sq := Square(0); sq < 81; sq++ {
		pc := p.Board.At(sq)
		if pc.IsNone() {
			continue
		}
		side := pc.Side()
		pk := pc.Kind()

		if pk == Knight {
			for _, d := range KnightJumpDeltas(side) {
				p.addMeleeDelta(side, sq, d[0], d[1])
			}
		} else {
			for _, dir := range MeleeDirections(pk, side) {
				dc, dr := dir.delta()
				p.addMeleeDelta(side, sq, dc, dr)
			}
		}

		if pk.HasRangedEffect() {
			for _, dir := range RangedDirections(pk, side) {
				p.addRangedRay(side, sq, dir)
			}
		}
	}
}

func (p *Position) addMeleeDelta(side Side, from Square, dc, dr int) {
	col := int(from.Col()) + dc
	row := int(from.Row()) + dr
	if col < 0 || col > 8 || row < 0 || row > 8 {
		return
	}
	to := NewSquare(Col(col), Row(row))
	p.EffectCounts[side][to]++
}

// addRangedRay walks one ray from a ranged piece, marking every empty square
// along the way plus the first blocker as attacked, then — if that first
// blocker is friendly and its own support direction set includes this ray's
// direction — extends one further square through it (the "shadow" effect)
// before stopping for good. A friendly knight or king, or a friendly piece
// whose support set doesn't include this direction (e.g. a rook's side-ray
// through a pawn), blocks the ray outright with no shadow square.
func (p *Position) addRangedRay(side Side, from Square, dir Direction) {
	dc, dr := dir.delta()
	col, row := int(from.Col()), int(from.Row())
	dirSet := DirSetOf(dir)

	for {
		col += dc
		row += dr
		if col < 0 || col > 8 || row < 0 || row > 8 {
			return
		}
		cur := NewSquare(Col(col), Row(row))
		p.EffectCounts[side][cur]++
		p.RangedEffects[cur] |= DirectionSetPairFromPart(side, dirSet)

		occ := p.Board.At(cur)
		if occ.IsNone() {
			continue
		}
		if occ.Side() == side && fromPieceSupported(occ.Kind(), occ.Side()).Has(dir) {
			sc, sr := col+dc, row+dr
			if sc >= 0 && sc <= 8 && sr >= 0 && sr <= 8 {
				shadow := NewSquare(Col(sc), Row(sr))
				p.EffectCounts[side][shadow]++
				p.RangedEffects[shadow] |= DirectionSetPairFromPart(side, dirSet)
			}
		}
		return
	}
}

// DoMove applies m for the side to move and returns the information needed
// to undo it.
func (p *Position) DoMove(m Move) UndoableMove {
	us := p.SideToMove
	dst := m.Dst()
	captured := p.Board.At(dst)
	var moved Piece

	if m.IsDrop() {
		pk := m.DroppedKind()
		p.Hands[us].Remove(pk)
		p.Board.Put(dst, NewPiece(us, pk))
	} else {
		src := m.Src()
		moved = p.Board.At(src)
		newKind := moved.Kind()
		if m.IsPromotion() {
			newKind = newKind.ToPromoted()
		}
		p.Board.Put(src, NoPiece)
		p.Board.Put(dst, NewPiece(us, newKind))
		if newKind == King {
			p.KingSq[us] = dst
		}
	}

	if !captured.IsNone() {
		p.Hands[us].Add(captured.Kind().ToRaw())
	}

	p.SideToMove = us.Inv()
	p.Ply++
	p.recomputeEffects()

	return UndoableMove{Move: m, Moved: moved, Captured: captured}
}

// UndoMove reverses a DoMove, given the UndoableMove it returned.
func (p *Position) UndoMove(um UndoableMove) {
	p.SideToMove = p.SideToMove.Inv()
	us := p.SideToMove
	dst := um.Move.Dst()

	if um.Move.IsDrop() {
		p.Board.Put(dst, NoPiece)
		p.Hands[us].Add(um.Move.DroppedKind())
	} else {
		src := um.Move.Src()
		p.Board.Put(src, um.Moved)
		p.Board.Put(dst, um.Captured)
		if um.Moved.Kind() == King {
			p.KingSq[us] = src
		}
	}

	if !um.Captured.IsNone() {
		p.Hands[us].Remove(um.Captured.Kind().ToRaw())
	}

	p.Ply--
	p.recomputeEffects()
}

// IsChecked reports whether side s's king currently sits on a square
// attacked by the opponent.
func (p *Position) IsChecked(s Side) bool {
	return p.EffectCounts[s.Inv()][p.KingSq[s]] > 0
}

// EffectAt returns how many of side s's pieces attack sq.
func (p *Position) EffectAt(s Side, sq Square) uint8 {
	return p.EffectCounts[s][sq]
}
