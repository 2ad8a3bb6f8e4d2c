package engine

import "github.com/hailam/naitou-shogi/internal/shogi"

// isRejected applies the two candidate-rejection rules from spec.md §4.4.
// l must already have AdvPrice/DisadvPrice/HumIsCheckmated/DisadvSq
// populated from the post-move scan, but NOT yet have reviseLeaf applied.
func isRejected(l LeafEvaluation, root RootEvaluation, captured bool) bool {
	if l.Move.IsDrop() && l.MovedKind == shogi.Pawn {
		dstToHumKing := shogi.NaitouSquareDistance(l.Move.Dst(), root.KingSqHum)
		if dstToHumKing < 3 && l.HumIsCheckmated && l.DisadvPrice < 30 && l.AdvPrice >= 30 {
			return true
		}
	}

	if !captured && root.DisadvPrice < 30 && !l.HumIsCheckmated {
		if l.DisadvSq != shogi.NoSquare && l.DisadvSq == l.Move.Dst() {
			return true
		}
	}

	return false
}
