package engine

import "github.com/hailam/naitou-shogi/internal/shogi"

// EngineResponse is the tagged result of Engine.DoStep: either COM's reply
// move, or one of the three end-of-game signals. Exactly one concrete type
// implements it per call, matching a closed "one exported struct per case"
// convention rather than a stringly-typed tag.
type EngineResponse interface {
	isEngineResponse()
}

// MoveResponse carries COM's reply and the undo information for the whole
// (HUM, COM) step pair.
type MoveResponse struct {
	ComMove shogi.Move
	HumUndo shogi.UndoableMove
	ComUndo shogi.UndoableMove
}

// HumWinResponse means the engine resigns: every candidate left it worse
// off than it's willing to accept (best.DisadvPrice >= 40, or every
// candidate was a suicide).
type HumWinResponse struct {
	HumUndo shogi.UndoableMove
}

// HumSuicideResponse means HUM's move left their own king under an attack
// worth >= 30 (root.AdvPrice >= 30) — the engine never even searches.
type HumSuicideResponse struct {
	HumUndo shogi.UndoableMove
}

// ComWinResponse means the chosen leaf evaluation detected checkmate of
// HUM.
type ComWinResponse struct {
	ComMove shogi.Move
	HumUndo shogi.UndoableMove
	ComUndo shogi.UndoableMove
}

func (MoveResponse) isEngineResponse()       {}
func (HumWinResponse) isEngineResponse()     {}
func (HumSuicideResponse) isEngineResponse() {}
func (ComWinResponse) isEngineResponse()     {}
