// Package engine orchestrates the fixed-depth-1 COM thinking procedure: one
// root evaluation, a scan of every pseudo-legal COM move with leaf
// evaluation, revision and lexicographic comparison against the best
// candidate so far, then an opening-book override attempt, all wrapped in
// the progress-ply/progress-level bookkeeping that quietly reshapes the
// evaluation as a game goes long.
package engine

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/hailam/naitou-shogi/internal/book"
	"github.com/hailam/naitou-shogi/internal/shogi"
)

// ErrIllegalMove is returned by DoStep when the supplied HUM move isn't
// pseudo-legal or leaves HUM's own king in check.
var ErrIllegalMove = errors.New("engine: illegal move")

// ErrNotHumTurn is returned by DoStep when it's called out of turn, which
// only happens if a caller ignores a terminal EngineResponse and keeps
// stepping.
var ErrNotHumTurn = errors.New("engine: not HUM's turn")

// Engine holds one game's full mutable state: the position, the book's
// progress through its formation, and the progress-ply/progress-level
// counters spec.md §4.8 describes.
type Engine struct {
	pos      *shogi.Position
	handicap shogi.Handicap
	book     *book.State
	log      *log.Logger

	progressPly      int
	progressLevel    int
	progressLevelSub int

	// bestSrcValue is carried across the whole game, not reinitialized per
	// search — see compare.go's canImproveBest. UndoStep leaves it
	// unchanged.
	bestSrcValue int

	humLastDst    shogi.Square
	forceSkipBook bool
}

// New builds an Engine for the given handicap. If the handicap hands COM
// the first move, it immediately runs one thinking step and returns both
// the Engine and COM's opening response; otherwise the second return value
// is nil and the caller should supply HUM's first move via DoStep.
func New(handicap shogi.Handicap, logWriter io.Writer) (*Engine, EngineResponse) {
	e := &Engine{
		pos:          shogi.NewPositionForHandicap(handicap),
		handicap:     handicap,
		book:         book.NewState(book.FromHandicap(handicap)),
		bestSrcValue: 256,
		humLastDst:   shogi.NoSquare,
		log:          newLogger(logWriter),
	}
	if !shogi.ComMovesFirst(handicap) {
		return e, nil
	}

	root := EvaluateRoot(e.pos, e.progressPly, e.progressLevel)
	resp := e.comTurn(root, shogi.UndoableMove{}, false)
	return e, resp
}

// Position returns the current game position. Callers must not mutate it
// directly.
func (e *Engine) Position() *shogi.Position { return e.pos }

// ProgressPly returns the current progress-ply counter.
func (e *Engine) ProgressPly() int { return e.progressPly }

// ProgressLevel returns the current progress-level.
func (e *Engine) ProgressLevel() int { return e.progressLevel }

// ProgressLevelSub returns the current progress-level sub-counter.
func (e *Engine) ProgressLevelSub() int { return e.progressLevelSub }

// BookState returns the engine's opening-book state.
func (e *Engine) BookState() *book.State { return e.book }

// DoStep applies humMove and runs COM's reply, returning the tagged
// outcome. On ErrIllegalMove the position is left untouched.
func (e *Engine) DoStep(humMove shogi.Move) (EngineResponse, error) {
	if e.pos.SideToMove != shogi.HUM {
		return nil, ErrNotHumTurn
	}

	legal := false
	for _, m := range shogi.GenerateMoves(e.pos, shogi.HUM) {
		if m == humMove {
			legal = true
			break
		}
	}
	if !legal {
		return nil, fmt.Errorf("%w: %s", ErrIllegalMove, humMove)
	}

	humUndo := e.pos.DoMove(humMove)
	if e.pos.IsChecked(shogi.HUM) {
		e.pos.UndoMove(humUndo)
		return nil, fmt.Errorf("%w: leaves own king in check: %s", ErrIllegalMove, humMove)
	}

	e.humLastDst = humMove.Dst()
	e.advanceProgressPly()

	root := EvaluateRoot(e.pos, e.progressPly, e.progressLevel)
	if root.AdvPrice >= 30 {
		e.log.Printf("hum move %s leaves hum king hanging (adv_price=%d), hum suicide", humMove, root.AdvPrice)
		return HumSuicideResponse{HumUndo: humUndo}, nil
	}

	return e.comTurn(root, humUndo, true), nil
}

// UndoStep reverses whatever DoStep (or New, for the very first COM-first
// move) produced: it undoes the COM and HUM moves on the position and
// decrements progress_ply once for the HUM move. Nothing else is
// restored: progress_level, progress_level_sub, the book state,
// bestSrcValue, the last HUM destination and the force-skip-book flag keep
// the values the undone step left them with.
func (e *Engine) UndoStep(resp EngineResponse) {
	switch r := resp.(type) {
	case MoveResponse:
		e.pos.UndoMove(r.ComUndo)
		e.undoHumSide(r.HumUndo)
	case ComWinResponse:
		e.pos.UndoMove(r.ComUndo)
		e.undoHumSide(r.HumUndo)
	case HumWinResponse:
		e.undoHumSide(r.HumUndo)
	case HumSuicideResponse:
		e.undoHumSide(r.HumUndo)
	}
}

func (e *Engine) undoHumSide(humUndo shogi.UndoableMove) {
	if humUndo.Move == shogi.NoMove {
		return // the COM-first opening move: no HUM move to undo.
	}
	e.pos.UndoMove(humUndo)
	if e.progressPly > 0 {
		e.progressPly--
	}
}

// advanceProgressPly implements spec.md §4.8's ply-driven escalation:
// progress_ply increments (capped at 100) once per HUM move, and
// progress_level escalates at fixed thresholds.
func (e *Engine) advanceProgressPly() {
	if e.progressPly < 100 {
		e.progressPly++
	}
	switch {
	case e.progressPly >= 71:
		e.progressLevel = 2
	case e.progressPly >= 51:
		if e.progressLevel < 1 {
			e.progressLevel = 1
		}
	}
}

// advanceProgressLevelSub implements the other half of §4.8: while
// progress_level is still 0, a run of non-quiet search results nudges
// progress_level_sub up, escalating progress_level to 1 once it reaches 5.
func (e *Engine) advanceProgressLevelSub(quiet bool) {
	if e.progressLevel != 0 {
		return
	}
	if quiet {
		e.progressLevelSub = 0
		return
	}
	e.progressLevelSub++
	if e.progressLevelSub >= 5 {
		e.progressLevel = 1
	}
}

// comTurn runs the candidate search, an opening-book override attempt, and
// decides the final EngineResponse. hasHumUndo is false only for the very
// first COM-first opening move, where humUndo carries no real move.
func (e *Engine) comTurn(root RootEvaluation, humUndo shogi.UndoableMove, hasHumUndo bool) EngineResponse {
	bestMove, best := e.searchBestMove(root)

	quiet := bestMove != shogi.NoMove && best.CapturePrice == 0
	e.advanceProgressLevelSub(quiet)
	e.forceSkipBook = best.ScorePosi != best.AdvPrice && best.ScorePosi >= 8

	if bm, ok := thinkBook(e.pos, e.book, e.progressPly, e.progressLevel, e.humLastDst, quiet, e.forceSkipBook); ok {
		um := e.pos.DoMove(bm)
		l := EvaluateLeaf(e.pos, bm, um, root, e.progressLevel)
		e.pos.UndoMove(um)
		bestMove, best = bm, l
	}

	if bestMove == shogi.NoMove || best.DisadvPrice >= 40 {
		e.log.Printf("com resigns at progress_ply=%d (best disadv_price=%d)", e.progressPly, best.DisadvPrice)
		if !hasHumUndo {
			// COM can't even make an opening move; this can't happen with
			// the standard starting arrays, but is handled for safety.
			return HumWinResponse{}
		}
		return HumWinResponse{HumUndo: humUndo}
	}

	comUndo := e.pos.DoMove(bestMove)
	if best.HumIsCheckmated {
		e.log.Printf("com plays %s, hum checkmated", bestMove)
		return ComWinResponse{ComMove: bestMove, HumUndo: humUndo, ComUndo: comUndo}
	}
	e.log.Printf("com plays %s (score_nega=%d capture_price=%d)", bestMove, best.ScoreNega, best.CapturePrice)
	return MoveResponse{ComMove: bestMove, HumUndo: humUndo, ComUndo: comUndo}
}

// searchBestMove scans every pseudo-legal COM move, per spec.md §4.4-§4.6,
// sharing the engine's carried bestSrcValue.
func (e *Engine) searchBestMove(root RootEvaluation) (shogi.Move, LeafEvaluation) {
	return Search(e.pos, root, e.progressLevel, &e.bestSrcValue)
}

// Search scans every pseudo-legal COM move in pos, discarding suicides and
// rejected candidates, revising and lexicographically comparing the rest
// against root, per spec.md §4.4-§4.6. Returns (NoMove, WorstCandidate())
// if nothing survives. bestSrcValue is the drop-vs-drop tie-break carried
// across a whole game (see compare.go); callers outside Engine that only
// ever search once (e.g. naitou-solve) can pass a fresh
// new(int)-initialized-to-256 pointer each time.
func Search(pos *shogi.Position, root RootEvaluation, progressLevel int, bestSrcValue *int) (shogi.Move, LeafEvaluation) {
	best := WorstCandidate()
	bestMove := shogi.NoMove

	for _, m := range shogi.GenerateMovesCom(pos) {
		um := pos.DoMove(m)
		l := EvaluateLeaf(pos, m, um, root, progressLevel)

		if l.IsSuicide {
			pos.UndoMove(um)
			continue
		}

		captured := !um.Captured.IsNone()
		l.Rejected = isRejected(l, root, captured)
		if !l.Rejected {
			reviseLeaf(&l, root)
			if canImproveBest(l, best, root.DisadvPrice, bestSrcValue) {
				best = l
				bestMove = m
			}
		}

		pos.UndoMove(um)
	}

	return bestMove, best
}
