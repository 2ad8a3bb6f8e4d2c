package shogi

// allDirections lists all 8 ray directions, used to build king-neighborhood
// and queen-ray bitboards without depending on a piece kind.
var allDirections = [8]Direction{DirR, DirRU, DirU, DirLU, DirL, DirLD, DirD, DirRD}

// kingNeighborhood returns the 8 squares a king on sq attacks.
func kingNeighborhood(sq Square) Bitboard {
	var bb Bitboard
	for _, dir := range allDirections {
		dc, dr := dir.delta()
		col, row := int(sq.Col())+dc, int(sq.Row())+dr
		if col < 0 || col > 8 || row < 0 || row > 8 {
			continue
		}
		bb = bb.Set(NewSquare(Col(col), Row(row)))
	}
	return bb
}

// queenEffect returns the squares a rook+bishop combined attack from sq,
// given the current occupancy: every empty square along each of the 8 rays
// plus the first occupied square on each ray (inclusive, whichever side).
func queenEffect(p *Position, sq Square) Bitboard {
	var bb Bitboard
	for _, dir := range allDirections {
		dc, dr := dir.delta()
		col, row := int(sq.Col()), int(sq.Row())
		for {
			col += dc
			row += dr
			if col < 0 || col > 8 || row < 0 || row > 8 {
				break
			}
			dst := NewSquare(Col(col), Row(row))
			bb = bb.Set(dst)
			if !p.Board.At(dst).IsNone() {
				break
			}
		}
	}
	return bb
}

// blankSquares returns every empty square on the board.
func blankSquares(p *Position) Bitboard {
	var bb Bitboard
	for sq := Square(0); sq < 81; sq++ {
		if p.Board.At(sq).IsNone() {
			bb = bb.Set(sq)
		}
	}
	return bb
}

// checkingKnightSquare returns the square of an enemy knight delivering
// check to side's king, or NoSquare if the checker (if any) isn't a knight.
func checkingKnightSquare(p *Position, side Side) Square {
	them := side.Inv()
	kingSq := p.KingSq[side]
	for _, d := range KnightJumpDeltas(side) {
		col := int(kingSq.Col()) + d[0]
		row := int(kingSq.Row()) + d[1]
		if col < 0 || col > 8 || row < 0 || row > 8 {
			continue
		}
		sq := NewSquare(Col(col), Row(row))
		pc := p.Board.At(sq)
		if !pc.IsNone() && pc.Side() == them && pc.Kind() == Knight {
			return sq
		}
	}
	return NoSquare
}

// GenerateEvasions produces every pseudo-legal check-evasion move for
// side's king in the current position (not all of them necessarily escape
// check: like GenerateMoves, legality is checked separately). side must be
// in check. All blank squares are drop targets; use GenerateEvasionsNaitou
// for the original's king-8-neighborhood-restricted drop heuristic.
func GenerateEvasions(p *Position, side Side) MoveList {
	return generateEvasionsImpl(p, side, blankSquares(p))
}

// GenerateEvasionsNaitou reproduces the original console's checkmate-probe
// evasion generator: identical to GenerateEvasions, except drops are
// restricted to the HUM king's 8-neighborhood rather than the whole board.
// p.SideToMove must be HUM and HUM's king must be in check.
func GenerateEvasionsNaitou(p *Position) MoveList {
	dropTarget := blankSquares(p).And(kingNeighborhood(p.KingSq[HUM]))
	return generateEvasionsImpl(p, HUM, dropTarget)
}

func generateEvasionsImpl(p *Position, side Side, dropTarget Bitboard) MoveList {
	var out MoveList
	out = appendKingEvasions(out, p, side)

	var target Bitboard
	if sq := checkingKnightSquare(p, side); sq != NoSquare {
		target = target.Set(sq)
	} else {
		target = queenEffect(p, p.KingSq[side])
	}

	out = appendNonKingEvasionWalks(out, p, side, target)
	out = appendEvasionDrops(out, p, side, target.And(dropTarget))
	return out
}

// appendKingEvasions emits the king's own evasion moves: any neighboring
// square not occupied by a friendly piece and not attacked by the
// opponent. The opponent-effect check uses EffectCounts as computed with
// the king still on its origin square, so it can miss a ray that only
// opens up once the king steps out of its own way (matching the original's
// documented sloppiness, see generate_evasions_king).
func appendKingEvasions(out MoveList, p *Position, side Side) MoveList {
	them := side.Inv()
	kingSq := p.KingSq[side]
	kingNeighborhood(kingSq).ForEach(func(dst Square) {
		occ := p.Board.At(dst)
		if !occ.IsNone() && occ.Side() == side {
			return
		}
		if p.EffectCounts[them][dst] > 0 {
			return
		}
		out = append(out, NewWalkMove(kingSq, dst, false))
	})
	return out
}

// appendNonKingEvasionWalks emits every non-king walk move landing on a
// target square, in the piece-kind order the original's evasion generator
// uses (pawn, lance, knight, silver, bishop, rook, then the gold and
// promoted-minor group, then horse, dragon).
func appendNonKingEvasionWalks(out MoveList, p *Position, side Side, target Bitboard) MoveList {
	order := [...]PieceKind{
		Pawn, Lance, Knight, Silver, Bishop, Rook,
		Gold, ProPawn, ProLance, ProKnight, ProSilver, Horse, Dragon,
	}
	for _, pk := range order {
		for src := Square(0); src < 81; src++ {
			pc := p.Board.At(src)
			if pc.IsNone() || pc.Side() != side || pc.Kind() != pk {
				continue
			}
			out = appendEvasionWalksFrom(out, p, side, src, pk, target)
		}
	}
	return out
}

func appendEvasionWalksFrom(out MoveList, p *Position, side Side, src Square, pk PieceKind, target Bitboard) MoveList {
	emit := func(dst Square) {
		if !target.Test(dst) {
			return
		}
		out = appendPromotionVariants(out, pk, side, src, dst)
	}

	if pk == Knight {
		for _, d := range KnightJumpDeltas(side) {
			col := int(src.Col()) + d[0]
			row := int(src.Row()) + d[1]
			if col < 0 || col > 8 || row < 0 || row > 8 {
				continue
			}
			dst := NewSquare(Col(col), Row(row))
			occ := p.Board.At(dst)
			if !occ.IsNone() && occ.Side() == side {
				continue
			}
			emit(dst)
		}
		return out
	}

	for _, dir := range MeleeDirections(pk, side) {
		dc, dr := dir.delta()
		col := int(src.Col()) + dc
		row := int(src.Row()) + dr
		if col < 0 || col > 8 || row < 0 || row > 8 {
			continue
		}
		dst := NewSquare(Col(col), Row(row))
		occ := p.Board.At(dst)
		if !occ.IsNone() && occ.Side() == side {
			continue
		}
		emit(dst)
	}

	if pk.HasRangedEffect() {
		for _, dir := range RangedDirections(pk, side) {
			dc, dr := dir.delta()
			col, row := int(src.Col()), int(src.Row())
			for {
				col += dc
				row += dr
				if col < 0 || col > 8 || row < 0 || row > 8 {
					break
				}
				dst := NewSquare(Col(col), Row(row))
				occ := p.Board.At(dst)
				if !occ.IsNone() && occ.Side() == side {
					break
				}
				emit(dst)
				if !occ.IsNone() {
					break
				}
			}
		}
	}
	return out
}

// appendEvasionDrops emits drop moves of every hand kind onto target
// squares, in the original's pawn/lance/knight/silver/gold/bishop/rook
// order.
func appendEvasionDrops(out MoveList, p *Position, side Side, target Bitboard) MoveList {
	for _, pk := range AllHandKinds {
		if p.Hands[side].Count(pk) == 0 {
			continue
		}
		target.ForEach(func(dst Square) {
			if !dropIsLegalSquare(p, side, pk, dst) {
				return
			}
			out = append(out, NewDropMove(pk, dst))
		})
	}
	return out
}

// GenerateCaptures produces every pseudo-legal capturing move for side:
// walk moves landing on an enemy-occupied square. Drops can never capture,
// so they're never part of this set. Used by the forced-win solver, which
// only cares about moves that remove material from the board.
func GenerateCaptures(p *Position, side Side) MoveList {
	them := side.Inv()
	var out MoveList
	for _, m := range appendWalkMoves(nil, p, side) {
		occ := p.Board.At(m.Dst())
		if !occ.IsNone() && occ.Side() == them {
			out = append(out, m)
		}
	}
	return out
}

// PositionIsCheckmated reports whether side is checkmated using the
// general (whole-board drop target) evasion generator: in check, with no
// pseudo-legal move that escapes check.
func PositionIsCheckmated(p *Position, side Side) bool {
	if !p.IsChecked(side) {
		return false
	}
	for _, m := range GenerateEvasions(p, side) {
		um := p.DoMove(m)
		stillChecked := p.IsChecked(side)
		p.UndoMove(um)
		if !stillChecked {
			return false
		}
	}
	return true
}
