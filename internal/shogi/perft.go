package shogi

// PerftStats accumulates leaf counts over a fixed-depth perft walk.
type PerftStats struct {
	CountAll       uint64
	CountCapture   uint64
	CountPromote   uint64
	CountCheck     uint64
	CountCheckmate uint64
}

// Perft enumerates every legal position reachable in exactly depth plies
// from p and returns aggregate leaf counts. p is left unchanged when Perft
// returns. A "legal" leaf here still admits perpetual check and
// drop-pawn-stalemate, matching the original's documented scope — only
// drop-pawn-CHECKMATE is excluded, at the leaf only.
func Perft(p *Position, depth int) PerftStats {
	var stats PerftStats
	perftDFS(p, nil, depth, &stats)
	return stats
}

func perftDFS(p *Position, prev *UndoableMove, depth int, stats *PerftStats) {
	us := p.SideToMove
	them := us.Inv()

	// The side not on move can't legally be in check: that would make the
	// previous move a suicide.
	if p.IsChecked(them) {
		return
	}

	checked := p.IsChecked(us)

	if depth > 0 {
		var moves MoveList
		if checked {
			moves = GenerateEvasions(p, us)
		} else {
			moves = GenerateMoves(p, us)
		}
		for _, m := range moves {
			um := p.DoMove(m)
			perftDFS(p, &um, depth-1, stats)
			p.UndoMove(um)
		}
		return
	}

	checkmated := checked && PositionIsCheckmated(p, us)
	if checkmated && prev != nil && prev.Move.IsDrop() && prev.Move.DroppedKind() == Pawn {
		return
	}

	stats.CountAll++
	if prev != nil && !prev.Move.IsDrop() {
		if !prev.Captured.IsNone() {
			stats.CountCapture++
		}
		if prev.Move.IsPromotion() {
			stats.CountPromote++
		}
	}
	if checked {
		stats.CountCheck++
	}
	if checkmated {
		stats.CountCheckmate++
	}
}
