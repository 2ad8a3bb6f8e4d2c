package main

import (
	"sync"

	"github.com/hailam/naitou-shogi/internal/engine"
	"github.com/hailam/naitou-shogi/internal/shogi"
)

// numSolverWorkers is the worker-pool size for the forced-win search's
// root-level subtree fan-out.
const numSolverWorkers = 4

// forcedWinResult is the outcome of searching one line for a forced
// full-piece win: every one of COM's non-king pieces (on board or in hand)
// eliminated without HUM's king ever standing in check at the end of a HUM
// ply.
type forcedWinResult struct {
	line  []shogi.Move
	found bool
}

// comNonkingCount counts every piece, on board or in hand, that COM owns
// aside from its own king.
func comNonkingCount(pos *shogi.Position) int {
	n := 0
	for sq := shogi.Square(0); sq < 81; sq++ {
		pc := pos.Board.At(sq)
		if !pc.IsNone() && pc.Side() == shogi.COM && pc.Kind() != shogi.King {
			n++
		}
	}
	for _, pk := range shogi.AllHandKinds {
		n += int(pos.Hands[shogi.COM].Count(pk))
	}
	return n
}

func clonePosition(pos *shogi.Position) *shogi.Position {
	cp := *pos
	return &cp
}

// solveForcedWin searches, up to maxDepth HUM moves deep, for a line of
// HUM captures that drives comNonkingCount to zero, with COM replying at
// each ply exactly as the live engine would (engine.Search against the
// resulting position). Root candidates are restricted to
// shogi.GenerateCaptures, matching the original's "generate_captures ...
// for the full-piece-win solver" role for this driver.
//
// Each root candidate move i is assigned to worker i%numSolverWorkers, one
// goroutine per logical worker; workers share nothing but read-only access
// to root (each clones its own Position before mutating it).
func solveForcedWin(root *shogi.Position, maxDepth int) forcedWinResult {
	roots := shogi.GenerateCaptures(root, root.SideToMove)
	if len(roots) == 0 || maxDepth <= 0 {
		return forcedWinResult{}
	}

	results := make(chan forcedWinResult, len(roots))
	var wg sync.WaitGroup

	for worker := 0; worker < numSolverWorkers; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := worker; i < len(roots); i += numSolverWorkers {
				m := roots[i]
				pos := clonePosition(root)
				mover := pos.SideToMove
				um := pos.DoMove(m)
				if !pos.IsChecked(mover) {
					results <- exploreForcedWin(pos, maxDepth-1, []shogi.Move{m})
				}
				pos.UndoMove(um)
			}
		}(worker)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var best forcedWinResult
	for res := range results {
		if res.found && (!best.found || len(res.line) < len(best.line)) {
			best = res
		}
	}
	return best
}

// exploreForcedWin continues a forced-win line sequentially from pos,
// which already reflects every move in line. It applies COM's actual
// engine reply, then tries every remaining HUM capture at the next ply.
func exploreForcedWin(pos *shogi.Position, depth int, line []shogi.Move) forcedWinResult {
	if comNonkingCount(pos) == 0 {
		return forcedWinResult{line: append([]shogi.Move(nil), line...), found: true}
	}
	if depth <= 0 {
		return forcedWinResult{}
	}

	root := engine.EvaluateRoot(pos, 0, 0)
	bestSrcValue := 256
	comMove, best := engine.Search(pos, root, 0, &bestSrcValue)
	if comMove == shogi.NoMove || best.HumIsCheckmated {
		return forcedWinResult{}
	}

	comUndo := pos.DoMove(comMove)
	defer pos.UndoMove(comUndo)

	for _, m := range shogi.GenerateCaptures(pos, pos.SideToMove) {
		mover := pos.SideToMove
		um := pos.DoMove(m)
		if !pos.IsChecked(mover) {
			nextLine := append(append([]shogi.Move(nil), line...), m)
			if res := exploreForcedWin(pos, depth-1, nextLine); res.found {
				pos.UndoMove(um)
				return res
			}
		}
		pos.UndoMove(um)
	}
	return forcedWinResult{}
}
