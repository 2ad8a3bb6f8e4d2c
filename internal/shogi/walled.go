package shogi

// WalledSquare packs a square together with four signed step counters
// (steps remaining to the right/up/down/left edge) so that stepping in any
// of the 8 directions is a single integer add and leaving the board is
// detected by testing the sign bit of the relevant counter. No code in the
// module uses it: effect tables and move generation walk rays by
// column/row deltas.
//
// Bit layout (low to high): bit 8 is a guard bit fixed at 1 so that the
// signed counters below it never borrow into it; bits 9-13 steps-to-right,
// bits 14-18 steps-to-up, bits 19-23 steps-to-down, bits 24-28
// steps-to-left.
type WalledSquare int32

const (
	wwGuard = 1 << 8

	wwStepR = 9
	wwStepU = 14
	wwStepD = 19
	wwStepL = 24

	wwSignR = 1 << 13
	wwSignU = 1 << 18
	wwSignD = 1 << 23
	wwSignL = 1 << 28

	wwOffBoardMask = wwSignR | wwSignU | wwSignD | wwSignL
)

// Per-direction deltas, derived once in init() the same way the original
// derives DIR_R/DIR_U/DIR_D/DIR_L from a base inner-square encoding: walking
// R decrements the right-counter and increments the left-counter, etc.
var wwDelta [8]int32

func init() {
	dirR := int32(-1)<<wwStepR + int32(1)<<wwStepL
	dirU := int32(-1)<<wwStepU + int32(1)<<wwStepD
	dirD := -dirU
	dirL := -dirR

	wwDelta[DirR] = dirR
	wwDelta[DirU] = dirU
	wwDelta[DirD] = dirD
	wwDelta[DirL] = dirL
	wwDelta[DirRU] = dirR + dirU
	wwDelta[DirRD] = dirR + dirD
	wwDelta[DirLU] = dirL + dirU
	wwDelta[DirLD] = dirL + dirD
}

// NewWalledSquare builds the walled encoding for a board square: the
// counters of the corner square file 1 rank 1 (8 right, 0 up, 8 down,
// 0 left), offset by the column/row of sq.
func NewWalledSquare(sq Square) WalledSquare {
	col := int32(sq.Col())
	row := int32(sq.Row())

	// Base: file-1 rank-1, i.e. 8 steps right, 0 up, 8 down, 0 left.
	base := WalledSquare(wwGuard | 8<<wwStepR | 0<<wwStepU | 8<<wwStepD | 0<<wwStepL)
	return base + WalledSquare(col)*WalledSquare(wwDelta[DirR]) + WalledSquare(row)*WalledSquare(wwDelta[DirD])
}

// Step returns the WalledSquare one step in direction d from ws.
func (ws WalledSquare) Step(d Direction) WalledSquare {
	return ws + WalledSquare(wwDelta[d])
}

// IsOnBoard reports whether ws still names a square on the 9x9 board: true
// iff none of the four sign bits are set.
func (ws WalledSquare) IsOnBoard() bool {
	return int32(ws)&wwOffBoardMask == 0
}

// Square converts a (valid, on-board) WalledSquare back to a Square.
func (ws WalledSquare) Square() Square {
	right := (int32(ws) >> wwStepR) & 0x1F
	down := (int32(ws) >> wwStepD) & 0x1F
	col := 8 - right
	row := 8 - down
	return NewSquare(Col(col), Row(row))
}
