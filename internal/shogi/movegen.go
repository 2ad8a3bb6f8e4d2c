package shogi

// GenerateMoves produces every pseudo-legal move for side in the current
// position: king safety (leaving one's own king in check) is NOT filtered
// here, matching the original's "pseudo-legal generator, legality checked
// separately" split.
func GenerateMoves(p *Position, side Side) MoveList {
	var out MoveList
	out = appendWalkMoves(out, p, side)
	out = appendDropMoves(out, p, side)
	return out
}

func appendWalkMoves(out MoveList, p *Position, side Side) MoveList {
	for src := Square(0); src < 81; src++ {
		pc := p.Board.At(src)
		if pc.IsNone() || pc.Side() != side {
			continue
		}
		pk := pc.Kind()

		emit := func(dst Square) {
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
				if p.Board.At(dst).Side() == side && !p.Board.At(dst).IsNone() {
					continue
				}
				emit(dst)
			}
		} else {
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
	}
	return out
}

// appendPromotionVariants emits one or both of the non-promoting /
// promoting move for a walk, following the standard shogi promotion rule
// table: forced promotion for pawn/lance on the last rank and knight on the
// last two ranks, optional promotion anywhere the src or dst lies in the
// promotion zone for a promotable kind, and never for gold/king/already
// promoted kinds.
func appendPromotionVariants(out MoveList, pk PieceKind, side Side, src, dst Square) MoveList {
	if !pk.IsPromotable() {
		return append(out, NewWalkMove(src, dst, false))
	}

	forcedLastRank := (pk == Pawn || pk == Lance) && dst.Row().IsPromotionZone(side) && isLastRank(dst, side)
	forcedLastTwo := pk == Knight && isLastTwoRanks(dst, side)

	inZone := src.Row().IsPromotionZone(side) || dst.Row().IsPromotionZone(side)

	if forcedLastRank || forcedLastTwo {
		return append(out, NewWalkMove(src, dst, true))
	}
	if inZone {
		out = append(out, NewWalkMove(src, dst, false))
		out = append(out, NewWalkMove(src, dst, true))
		return out
	}
	return append(out, NewWalkMove(src, dst, false))
}

func isLastRank(sq Square, side Side) bool {
	if side == HUM {
		return sq.Row() == Row1
	}
	return sq.Row() == Row9
}

func isLastTwoRanks(sq Square, side Side) bool {
	if side == HUM {
		return sq.Row() == Row1 || sq.Row() == Row2
	}
	return sq.Row() == Row9 || sq.Row() == Row8
}

func appendDropMoves(out MoveList, p *Position, side Side) MoveList {
	for _, pk := range AllHandKinds {
		if p.Hands[side].Count(pk) == 0 {
			continue
		}
		for dst := Square(0); dst < 81; dst++ {
			if !p.Board.At(dst).IsNone() {
				continue
			}
			if !dropIsLegalSquare(p, side, pk, dst) {
				continue
			}
			out = append(out, NewDropMove(pk, dst))
		}
	}
	return out
}

func dropIsLegalSquare(p *Position, side Side, pk PieceKind, dst Square) bool {
	switch pk {
	case Pawn:
		if isLastRank(dst, side) {
			return false
		}
		if hasUnpromotedPawnOnFile(p, side, dst.Col()) {
			return false
		}
	case Lance:
		if isLastRank(dst, side) {
			return false
		}
	case Knight:
		if isLastTwoRanks(dst, side) {
			return false
		}
	}
	return true
}

func hasUnpromotedPawnOnFile(p *Position, side Side, col Col) bool {
	for row := Row1; row <= Row9; row++ {
		pc := p.Board.At(NewSquare(col, row))
		if pc.Side() == side && pc.Kind() == Pawn {
			return true
		}
	}
	return false
}
