package engine

import "github.com/hailam/naitou-shogi/internal/shogi"

// reviseLeaf applies the ~20 heuristic revisions to l in the exact order
// spec.md §4.5 lists them, gated by root features and l's own computed
// features. All arithmetic on CapturePrice/ScorePosi/ScoreNega is 8-bit
// wrap-add/sub; the three are saturated to 0 at the very end if they read
// negative.
func reviseLeaf(l *LeafEvaluation, root RootEvaluation) {
	disadvSqExists := l.DisadvSq != shogi.NoSquare
	advSqExists := l.AdvSq != shogi.NoSquare

	// 1. Capture-by-pawn.
	if root.DisadvPrice < 20 && l.CapturePrice > 0 && l.MovedKind == shogi.Pawn {
		l.ScoreNega = wrapSub8(int(l.ScoreNega), 1)
	}

	// 2. HUM hanging.
	if l.HumHanging {
		l.ScoreNega = wrapAdd8(int(l.ScoreNega), 4)
	}

	powerGate15 := l.PowerHum >= 15 || l.PowerCom >= 15
	powerGate25 := l.PowerHum >= 25 || l.PowerCom >= 25

	// 3. Mid-game distant attacked pawn.
	if powerGate15 && l.ScoreNega < 3 && disadvSqExists &&
		shogi.NaitouSquareDistance(root.KingSqCom, l.DisadvSq) >= 4 {
		l.ScoreNega = wrapSub8(int(l.ScoreNega), int(l.DisadvPrice))
	}

	// 4. End-game unimportant advantage square.
	if powerGate25 && advSqExists &&
		shogi.NaitouSquareDistance(root.KingSqHum, l.AdvSq) >= 4 &&
		shogi.NaitouSquareDistance(root.KingSqCom, l.AdvSq) >= 3 {
		l.ScorePosi = wrapSub8(int(l.ScorePosi), int(l.AdvPrice))
	}

	// 5. End-game unimportant cheap disadvantage.
	if powerGate25 && l.DisadvPrice < 7 && disadvSqExists &&
		shogi.NaitouSquareDistance(root.KingSqHum, l.DisadvSq) >= 4 &&
		shogi.NaitouSquareDistance(root.KingSqCom, l.DisadvSq) >= 3 {
		l.ScoreNega = wrapSub8(int(l.ScoreNega), int(l.DisadvPrice))
	}

	// 6. End-game capture near HUM king.
	if powerGate25 && l.CapturePrice > 0 && l.DstToHumKing <= 2 {
		l.CapturePrice = wrapAdd8(int(l.CapturePrice), 2)
	}

	// 7. End-game unimportant capture.
	if powerGate25 && l.CapturePrice > 0 && l.DstToHumKing >= 4 && l.SrcToComKing >= 4 {
		l.CapturePrice = wrapSub8(int(l.CapturePrice), 3)
	}

	// 8. Useless check.
	if l.AdvPrice >= 30 && l.HumKingThreatAround25 < 12 && root.RbpCom < 4 &&
		l.PowerCom < 35 && int(l.ScorePosi)-int(l.AdvPrice) < 3 {
		l.ScorePosi = wrapSub8(int(l.ScorePosi), int(l.AdvPrice))
	}

	// 9. Useless drop.
	if l.Move.IsDrop() && (l.MovedKind == shogi.Silver || l.MovedKind == shogi.Gold) &&
		ownHalfFarFromBothKings(l.Move.Dst(), root) && root.DisadvPrice < 30 {
		l.ScoreNega = wrapAdd8(int(l.ScoreNega), 2)
	}

	// 10. Inflate capture_price.
	if l.PowerCom >= 27 && l.ScorePosi >= 6 {
		l.CapturePrice = wrapAdd8(int(l.CapturePrice), 4)
	} else if l.ScorePosi >= 3 {
		l.CapturePrice = wrapAdd8(int(l.CapturePrice), 1)
	}

	// 11. Rook/bishop drop location.
	if l.Move.IsDrop() && (l.MovedKind == shogi.Bishop || l.MovedKind == shogi.Rook) {
		dstRow := l.Move.Dst().Row().Num()
		if dstRow >= 8 {
			l.ScorePosi = wrapAdd8(int(l.ScorePosi), 2)
			l.ScoreNega = wrapSub8(int(l.ScoreNega), 2)
		} else if root.DisadvPrice < 30 {
			l.ScorePosi = wrapSub8(int(l.ScorePosi), 2)
			l.ScoreNega = wrapAdd8(int(l.ScoreNega), 2)
			if dstRow <= 4 {
				l.ScoreNega = wrapAdd8(int(l.ScoreNega), 2)
			}
		}
	}

	// 12. King capture (original bug: fires even on non-captures).
	if l.MovedKind == shogi.King {
		l.CapturePrice = wrapSub8(int(l.CapturePrice), 1)
		l.ScorePosi = wrapSub8(int(l.ScorePosi), 2)
	}

	// 13. Cheap advantage near HUM king.
	if l.PowerCom >= 31 && l.AdvPrice < 4 && l.DisadvPrice == 0 &&
		l.HumKingThreatAround25 >= 7 &&
		shogi.NaitouSquareDistance(l.AdvSq, root.KingSqCom) <= 2 {
		l.ScorePosi = wrapAdd8(int(l.ScorePosi), (int(l.HumKingThreatAround25)-7)/2)
	}

	// 14. Inhibit bishop exchange.
	if l.AdvPrice == 16 && l.MovedKind == shogi.Bishop {
		l.ScorePosi = wrapSub8(int(l.ScorePosi), int(l.AdvPrice))
		l.AdvPrice = 0
	}

	// 15. Keep rook/bishop in emergency.
	if l.PowerCom >= 27 && !(l.Move.IsDrop() && (l.MovedKind == shogi.Rook || l.MovedKind == shogi.Bishop)) {
		penalty := 4 * int(l.ComKingChokeAround8)
		l.ScorePosi = wrapSub8(int(l.ScorePosi), penalty)
		l.ScoreNega = wrapAdd8(int(l.ScoreNega), penalty)
	}

	// 16. Winning capture near HUM king.
	if l.CapturePrice >= 8 && isMajorOrKing(l.CapturedKind) &&
		(l.AdvPrice >= 30 || shogi.NaitouSquareDistance(l.AdvSq, root.KingSqHum) < 3) &&
		l.PowerCom >= 30 && l.HumKingThreatAround25 >= 7 && root.RbpCom >= 4 {
		l.ScorePosi = wrapAdd8(int(l.ScorePosi), 2)
		if l.DisadvPrice >= 8 && l.DisadvPrice < 30 {
			l.ScoreNega = 8
			l.DisadvPrice = 8
		}
	}

	// 17. Capture-by-king in emergency.
	if l.ComKingThreatAround8 >= 5 && l.MovedKind == shogi.King {
		l.CapturePrice = 0
	}

	// 18. Capturing check.
	if l.PowerCom >= 35 && l.AdvPrice >= 30 && l.CapturePrice >= 2 {
		l.ScoreNega = wrapSub8(int(l.ScoreNega), 2)
	}

	// 19. Pad cheap capture.
	if l.PowerCom >= 20 && l.CapturePrice < 2 {
		switch {
		case l.ScorePosi >= 20:
			l.CapturePrice = wrapAdd8(int(l.CapturePrice), 3)
		case l.ScorePosi >= 10:
			l.CapturePrice = wrapAdd8(int(l.CapturePrice), 2)
		case l.ScorePosi >= 5:
			l.CapturePrice = wrapAdd8(int(l.CapturePrice), 1)
		}
	}

	// 20. Rook/bishop drop not in enemy camp.
	if l.Move.IsDrop() && (l.MovedKind == shogi.Bishop || l.MovedKind == shogi.Rook) &&
		l.Move.Dst().Row().Num() <= 6 {
		l.ScorePosi = wrapSub8(int(l.ScorePosi), 3)
		l.ScoreNega = wrapAdd8(int(l.ScoreNega), 3)
	}

	// 21. Promoted-piece walk.
	if !l.Move.IsDrop() && l.MovedKind.IsPromoted() {
		before := shogi.NaitouSquareDistance(l.Move.Src(), root.KingSqHum)
		after := shogi.NaitouSquareDistance(l.Move.Dst(), root.KingSqHum)
		l.ScorePosi = wrapAdd8(int(l.ScorePosi), before-after)
	}

	// 22. Check with power.
	if l.PowerCom >= 25 && l.AdvPrice >= 30 {
		l.ScorePosi = wrapAdd8(int(l.ScorePosi), 4)
		l.CapturePrice = wrapAdd8(int(l.CapturePrice), 1)
		l.ScoreNega = wrapSub8(int(l.ScoreNega), 2)
	}

	// 23. Good capturing check.
	if l.AdvPrice >= 30 && l.CapturePrice >= 8 {
		l.ScoreNega = wrapSub8(int(l.ScoreNega), 4)
	}

	l.CapturePrice = saturate8(l.CapturePrice)
	l.ScorePosi = saturate8(l.ScorePosi)
	l.ScoreNega = saturate8(l.ScoreNega)

	if l.HumIsCheckmated && !l.Rejected {
		l.AdvPrice = 60
		l.CapturePrice = 60
		l.DisadvPrice = 0
	}
}

func isMajorOrKing(pk shogi.PieceKind) bool {
	switch pk {
	case shogi.Silver, shogi.Bishop, shogi.Rook, shogi.Gold, shogi.King,
		shogi.ProSilver, shogi.Horse, shogi.Dragon:
		return true
	}
	return false
}

func ownHalfFarFromBothKings(dst shogi.Square, root RootEvaluation) bool {
	inOwnHalf := dst.Row().Num() >= 6
	return inOwnHalf &&
		shogi.NaitouSquareDistance(dst, root.KingSqHum) >= 4 &&
		shogi.NaitouSquareDistance(dst, root.KingSqCom) >= 4
}
