package engine

import (
	"io"
	"testing"

	"github.com/hailam/naitou-shogi/internal/shogi"
)

func TestNewEvenHandicapHumMovesFirst(t *testing.T) {
	eng, resp := New(shogi.HumSenteEven, io.Discard)
	if resp != nil {
		t.Fatalf("New(HumSenteEven) returned an opening response %T, want nil (HUM moves first)", resp)
	}
	if eng.Position().SideToMove != shogi.HUM {
		t.Errorf("SideToMove = %v, want HUM", eng.Position().SideToMove)
	}
}

func TestNewComFirstHandicapPlaysOpeningMove(t *testing.T) {
	eng, resp := New(shogi.ComHishaochi, io.Discard)
	if resp == nil {
		t.Fatalf("New(ComHishaochi) returned a nil opening response, want COM's first move")
	}
	mr, ok := resp.(MoveResponse)
	if !ok {
		t.Fatalf("opening response is %T, want MoveResponse", resp)
	}
	if mr.ComMove == shogi.NoMove {
		t.Errorf("opening MoveResponse carries no move")
	}
	if eng.Position().SideToMove != shogi.HUM {
		t.Errorf("SideToMove after COM's opening move = %v, want HUM", eng.Position().SideToMove)
	}
}

func TestDoStepLegalOpeningMoveReturnsMoveResponse(t *testing.T) {
	eng, resp := New(shogi.HumSenteEven, io.Discard)
	if resp != nil {
		t.Fatalf("unexpected opening response %T", resp)
	}

	m := shogi.NewWalkMove(shogi.SQ77, shogi.SQ76, false)
	resp, err := eng.DoStep(m)
	if err != nil {
		t.Fatalf("DoStep(7g7f) returned error: %v", err)
	}

	switch r := resp.(type) {
	case MoveResponse:
		if r.ComMove == shogi.NoMove {
			t.Errorf("MoveResponse carries no COM move")
		}
	case HumWinResponse, HumSuicideResponse, ComWinResponse:
		t.Fatalf("unexpected terminal response %T for an opening pawn push", r)
	default:
		t.Fatalf("unexpected response type %T", resp)
	}

	if eng.ProgressPly() != 1 {
		t.Errorf("ProgressPly() after one HUM move = %d, want 1", eng.ProgressPly())
	}
}

func TestDoStepIllegalMoveRejected(t *testing.T) {
	eng, _ := New(shogi.HumSenteEven, io.Discard)

	// HUM has no piece on 5e; this cannot be a legal move.
	m := shogi.NewWalkMove(shogi.SQ55, shogi.SQ54, false)
	_, err := eng.DoStep(m)
	if err == nil {
		t.Fatalf("DoStep accepted an illegal move")
	}
}

func TestDoStepWrongSideToMove(t *testing.T) {
	eng, resp := New(shogi.ComHishaochi, io.Discard)
	if resp == nil {
		t.Fatalf("expected COM's opening move under com-hishaochi")
	}

	// It's HUM's turn now; feeding a COM-side move back in should be
	// rejected rather than silently applied.
	m := shogi.NewWalkMove(shogi.SQ33, shogi.SQ34, false)
	_, err := eng.DoStep(m)
	if err == nil {
		t.Fatalf("DoStep accepted a move for the side not on move")
	}
}

func TestSearchNeverReturnsASuicidalMove(t *testing.T) {
	pos := shogi.NewPosition()
	pos.SideToMove = shogi.COM
	root := EvaluateRoot(pos, 0, 0)
	bestSrcValue := 256

	bestMove, best := Search(pos, root, 0, &bestSrcValue)
	if bestMove == shogi.NoMove {
		t.Fatalf("expected COM to find a move from the starting position")
	}
	if best.IsSuicide {
		t.Errorf("Search returned a move flagged IsSuicide")
	}
}
