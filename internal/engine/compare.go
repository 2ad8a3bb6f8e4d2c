package engine

import "github.com/hailam/naitou-shogi/internal/shogi"

// WorstCandidate is the sentinel "best" a comparator starts from: beaten by
// almost anything.
func WorstCandidate() LeafEvaluation {
	return LeafEvaluation{
		CapturePrice:          0,
		DisadvPrice:           99,
		ScorePosi:             0,
		ScoreNega:             99,
		ComKingThreatAround25: 99,
		DstToHumKing:          99,
		ComLooseCount:         99,
	}
}

// canImproveBest decides whether cand should replace best, per spec.md
// §4.6's lexicographic chain. bestSrcValue is the carried-over (never
// reinitialized per ply) tie-break value for drop-vs-drop decisions.
func canImproveBest(cand, best LeafEvaluation, rootDisadvPrice uint8, bestSrcValue *int) bool {
	if cand.HumIsCheckmated {
		return true
	}

	// 1. Safer-disadvantage-price-class always wins.
	candUnsafe := cand.DisadvPrice >= 40
	bestUnsafe := best.DisadvPrice >= 40
	if candUnsafe != bestUnsafe {
		return !candUnsafe
	}

	// 2. score_nega comparison.
	switch {
	case cand.ScoreNega > best.ScoreNega:
		// candidate worse on nega.
		negaLoss := int(cand.ScoreNega) - int(best.ScoreNega)
		switch {
		case cand.CapturePrice < best.CapturePrice:
			return false
		case cand.CapturePrice > best.CapturePrice:
			captureGain := int(cand.CapturePrice) - int(best.CapturePrice)
			return captureGain >= negaLoss
		default:
			if best.PowerCom >= 18 && cand.CapturePrice == 0 && best.CapturePrice == 0 {
				posiGain := int(cand.ScorePosi) - int(best.ScorePosi)
				if cand.ScorePosi > best.ScorePosi && posiGain > negaLoss {
					return true
				}
			}
			return false
		}

	case cand.ScoreNega < best.ScoreNega:
		if best.ScoreNega >= 30 && best.ScoreNega < 80 {
			return true
		}
		switch {
		case cand.CapturePrice > best.CapturePrice:
			return true
		case cand.CapturePrice < best.CapturePrice:
			negaGain := int(best.ScoreNega) - int(cand.ScoreNega)
			captureLoss := int(best.CapturePrice) - int(cand.CapturePrice)
			if negaGain != captureLoss {
				return negaGain > captureLoss
			}
			// fall through to tie-break chain below.
		default:
			if best.PowerCom >= 18 && cand.CapturePrice == 0 && best.CapturePrice == 0 &&
				cand.ScorePosi < best.ScorePosi {
				// fall through to tie-break chain.
			} else {
				return true
			}
		}

	default: // equal score_nega
		if cand.CapturePrice > best.CapturePrice {
			return true
		}
		if cand.CapturePrice < best.CapturePrice {
			return false
		}
		// equal: fall through to tie-break chain.
	}

	// 3. Tie-break chain.
	if cand.ComPromoCount != best.ComPromoCount {
		return cand.ComPromoCount > best.ComPromoCount
	}
	if cand.ScorePosi != best.ScorePosi {
		return cand.ScorePosi > best.ScorePosi
	}
	if cand.AdvPrice != best.AdvPrice {
		return cand.AdvPrice > best.AdvPrice
	}

	// 4. Drop handling.
	if cand.Move.IsDrop() {
		if rootDisadvPrice < 30 {
			return false
		}
		srcValue := shogi.NaitouComDropSrcValue(cand.MovedKind)
		if srcValue < *bestSrcValue {
			*bestSrcValue = srcValue
			return true
		}
		return false
	}

	// 5. Walk tie-break.
	if cand.HumKingThreatAround25 != best.HumKingThreatAround25 {
		return cand.HumKingThreatAround25 < best.HumKingThreatAround25
	}
	if cand.ComKingSafetyAround25 != best.ComKingSafetyAround25 {
		return cand.ComKingSafetyAround25 < best.ComKingSafetyAround25
	}
	if cand.ComKingThreatAround25 != best.ComKingThreatAround25 {
		return cand.ComKingThreatAround25 < best.ComKingThreatAround25
	}
	if cand.ComLooseCount != best.ComLooseCount {
		return cand.ComLooseCount < best.ComLooseCount
	}
	if cand.SrcToComKing >= 3 && cand.DstToHumKing != best.DstToHumKing {
		return cand.DstToHumKing < best.DstToHumKing
	}
	return cand.SrcToComKing > best.SrcToComKing
}
