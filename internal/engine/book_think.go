package engine

import (
	"github.com/hailam/naitou-shogi/internal/book"
	"github.com/hailam/naitou-shogi/internal/shogi"
)

// bookTriggerSquares are the HUM destination squares that unconditionally
// re-consult the book within the first few plies (spec.md §4.7 (a)).
var bookTriggerSquares = map[shogi.Square]bool{
	shogi.SQ22: true,
	shogi.SQ45: true,
	shogi.SQ56: true,
}

// shouldConsultBook implements the two triggers in spec.md §4.7.
func shouldConsultBook(progressPly, progressLevel int, humLastDst shogi.Square, quietMove, forceSkipBook bool) bool {
	if progressPly <= 6 && bookTriggerSquares[humLastDst] && progressLevel == 0 {
		return true
	}
	return progressLevel == 0 && quietMove && !forceSkipBook
}

// bookMoveIsLegal checks the pseudo-legality conditions spec.md §4.7
// requires of a returned book move: no COM piece sits on dst, the square
// named by src holds a COM piece that can reach dst without promoting, and
// playing it doesn't leave COM's own king in check.
func bookMoveIsLegal(pos *shogi.Position, m shogi.Move) bool {
	srcPc := pos.Board.At(m.Src())
	if srcPc.IsNone() || srcPc.Side() != shogi.COM {
		return false
	}
	dstPc := pos.Board.At(m.Dst())
	if !dstPc.IsNone() && dstPc.Side() == shogi.COM {
		return false
	}

	found := false
	for _, mv := range shogi.GenerateMoves(pos, shogi.COM) {
		if mv.IsDrop() {
			continue
		}
		if mv.Src() == m.Src() && mv.Dst() == m.Dst() && !mv.IsPromotion() {
			found = true
			break
		}
	}
	if !found {
		return false
	}

	um := pos.DoMove(m)
	suicide := pos.IsChecked(shogi.COM)
	pos.UndoMove(um)
	return !suicide
}

// evaluateBookMove checks the "must not disadvantage the resulting
// position" rule, with the documented exception for the progress_ply<=6,
// HUM-last-dst==45 opening trick.
func evaluateBookMove(pos *shogi.Position, m shogi.Move, progressPly int, humLastDst shogi.Square, progressLevel int) bool {
	if !bookMoveIsLegal(pos, m) {
		return false
	}

	um := pos.DoMove(m)
	hasDisadvantage := false
	iterDisadvantageSquares(pos, progressLevel, func(shogi.Square, uint8) { hasDisadvantage = true })
	pos.UndoMove(um)

	if hasDisadvantage {
		return progressPly <= 6 && humLastDst == shogi.SQ45
	}
	return true
}

// thinkBook tries the book when its consultation conditions are met,
// returning the chosen move and true on success.
func thinkBook(pos *shogi.Position, st *book.State, progressPly, progressLevel int, humLastDst shogi.Square, quietMove, forceSkipBook bool) (shogi.Move, bool) {
	if st.Formation().IsNothing() {
		return shogi.NoMove, false
	}
	if !shouldConsultBook(progressPly, progressLevel, humLastDst, quietMove, forceSkipBook) {
		return shogi.NoMove, false
	}

	m, ok := st.NextMove(&pos.Board, uint8(progressPly))
	if !ok {
		return shogi.NoMove, false
	}
	if !evaluateBookMove(pos, m, progressPly, humLastDst, progressLevel) {
		return shogi.NoMove, false
	}
	return m, true
}
