package engine

import "github.com/hailam/naitou-shogi/internal/shogi"

// positionIsCheckmatedNaitou reports whether HUM is checkmated, using the
// original console's own cheap probe: in check, with no pseudo-legal
// evasion, where evasion drops are restricted to HUM king's 8-neighborhood
// rather than the whole board. pos.SideToMove must be HUM.
func positionIsCheckmatedNaitou(pos *shogi.Position, side shogi.Side) bool {
	if side != shogi.HUM {
		panic("positionIsCheckmatedNaitou: side must be HUM")
	}
	if !pos.IsChecked(side) {
		return false
	}
	for _, m := range shogi.GenerateEvasionsNaitou(pos) {
		um := pos.DoMove(m)
		stillChecked := pos.IsChecked(side)
		pos.UndoMove(um)
		if !stillChecked {
			return false
		}
	}
	return true
}
