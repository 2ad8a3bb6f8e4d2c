package shogi

// GenerateMovesCom produces COM's pseudo-legal moves in the original
// console's exact scan order: squares in naitouSquares order, and for each
// occupied COM square, ranged rays first (in RangedDirections order), then
// melee moves (in MeleeDirections order), followed (per square) by drop
// moves in pawn/lance/knight/silver/gold/bishop/rook order when the square
// is empty. Unlike the general generator, a promotable piece here is
// ALWAYS emitted as its promoted form when eligible — never both —
// matching movegen/com.rs's generate_walk_helper.
func GenerateMovesCom(p *Position) MoveList {
	var out MoveList
	for _, sq := range naitouSquares {
		pc := p.Board.At(sq)
		if pc.IsNone() {
			if p.SideToMove == COM {
				out = appendComDropsAt(out, p, sq)
			}
			continue
		}
		if pc.Side() != COM {
			continue
		}
		out = appendComWalksFrom(out, p, sq, pc.Kind())
	}
	return out
}

func appendComWalksFrom(out MoveList, p *Position, src Square, pk PieceKind) MoveList {
	emit := func(dst Square) {
		if pk.IsPromotable() && (src.Row().IsPromotionZone(COM) || dst.Row().IsPromotionZone(COM)) {
			out = append(out, NewWalkMove(src, dst, true))
			return
		}
		out = append(out, NewWalkMove(src, dst, false))
	}

	if pk == Knight {
		for _, d := range KnightJumpDeltas(COM) {
			col := int(src.Col()) + d[0]
			row := int(src.Row()) + d[1]
			if col < 0 || col > 8 || row < 0 || row > 8 {
				continue
			}
			dst := NewSquare(Col(col), Row(row))
			occ := p.Board.At(dst)
			if !occ.IsNone() && occ.Side() == COM {
				continue
			}
			emit(dst)
		}
		return out
	}

	if pk.HasRangedEffect() {
		for _, dir := range RangedDirections(pk, COM) {
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
				if !occ.IsNone() && occ.Side() == COM {
					break
				}
				emit(dst)
				if !occ.IsNone() {
					break
				}
			}
		}
	}

	for _, dir := range MeleeDirections(pk, COM) {
		dc, dr := dir.delta()
		col := int(src.Col()) + dc
		row := int(src.Row()) + dr
		if col < 0 || col > 8 || row < 0 || row > 8 {
			continue
		}
		dst := NewSquare(Col(col), Row(row))
		occ := p.Board.At(dst)
		if !occ.IsNone() && occ.Side() == COM {
			continue
		}
		emit(dst)
	}
	return out
}

// appendComDropsAt emits COM's drop moves onto an empty square, in the
// fixed pawn/lance/knight/silver/gold/bishop/rook order, gating pawn on the
// double-pawn file rule and last-rank rule, lance on the last-rank rule,
// and knight on the last-two-ranks rule.
func appendComDropsAt(out MoveList, p *Position, dst Square) MoveList {
	hand := p.Hands[COM]

	if hand.Count(Pawn) > 0 && !isLastRank(dst, COM) && !hasUnpromotedPawnOnFile(p, COM, dst.Col()) {
		out = append(out, NewDropMove(Pawn, dst))
	}
	if hand.Count(Lance) > 0 && !isLastRank(dst, COM) {
		out = append(out, NewDropMove(Lance, dst))
	}
	if hand.Count(Knight) > 0 && !isLastTwoRanks(dst, COM) {
		out = append(out, NewDropMove(Knight, dst))
	}
	if hand.Count(Silver) > 0 {
		out = append(out, NewDropMove(Silver, dst))
	}
	if hand.Count(Gold) > 0 {
		out = append(out, NewDropMove(Gold, dst))
	}
	if hand.Count(Bishop) > 0 {
		out = append(out, NewDropMove(Bishop, dst))
	}
	if hand.Count(Rook) > 0 {
		out = append(out, NewDropMove(Rook, dst))
	}
	return out
}
