package shogi

import "fmt"

// Move packs a single pseudo-legal move into 16 bits: bits 0-6 destination
// square, bits 7-13 source square (or, for a drop, the dropped piece kind),
// bit 14 the drop flag, bit 15 the promotion flag.
type Move uint16

const (
	moveDstMask  = 0x7F
	moveSrcShift = 7
	moveSrcMask  = 0x7F << moveSrcShift
	moveDropBit  = 1 << 14
	movePromoBit = 1 << 15
)

// NoMove is the zero value, never a legal move (src==dst==SQ_11 with no
// flags); callers compare against it to detect "no move".
const NoMove Move = 0

// NewWalkMove builds a walking (non-drop) move.
func NewWalkMove(src, dst Square, promote bool) Move {
	m := Move(dst) | Move(src)<<moveSrcShift
	if promote {
		m |= movePromoBit
	}
	return m
}

// NewDropMove builds a drop move of the given hand piece kind.
func NewDropMove(pk PieceKind, dst Square) Move {
	return Move(dst) | Move(pk)<<moveSrcShift | moveDropBit
}

func (m Move) Dst() Square { return Square(m & moveDstMask) }

func (m Move) IsDrop() bool { return m&moveDropBit != 0 }

func (m Move) IsPromotion() bool { return m&movePromoBit != 0 }

// Src returns the source square. Must not be called on a drop move.
func (m Move) Src() Square { return Square((m & moveSrcMask) >> moveSrcShift) }

// DroppedKind returns the dropped piece kind. Must not be called on a walk
// move.
func (m Move) DroppedKind() PieceKind { return PieceKind((m & moveSrcMask) >> moveSrcShift) }

func (m Move) String() string {
	if m.IsDrop() {
		return fmt.Sprintf("%s*%s", m.DroppedKind(), m.Dst())
	}
	promo := ""
	if m.IsPromotion() {
		promo = "+"
	}
	return fmt.Sprintf("%s%s%s", m.Src(), m.Dst(), promo)
}

// UndoableMove extends Move with the information Position.UndoMove needs to
// restore board state without a lookup: the piece that moved (in its
// pre-move, unpromoted-or-not form) and whatever piece was captured, if any.
type UndoableMove struct {
	Move     Move
	Moved    Piece
	Captured Piece
}

// MoveList is an ordered sequence of moves. Order matters: the COM-facing
// generators must reproduce the original console's scan order exactly, so
// callers must never sort or deduplicate a MoveList returned by a COM
// generator.
type MoveList []Move
