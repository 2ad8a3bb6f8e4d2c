// Package shogi implements the board primitives, bitboard, position, and
// move generator that the engine package drives. Naming and on-board
// predicates follow the original console's internal numbering exactly
// where that numbering is observable (square scan order, tie-break values).
package shogi

import "fmt"

// Side is a two-valued tag: the human player or the console's engine.
type Side uint8

const (
	HUM Side = 0
	COM Side = 1
)

// Inv returns the other side.
func (s Side) Inv() Side {
	return s ^ 1
}

func (s Side) String() string {
	if s == HUM {
		return "HUM"
	}
	return "COM"
}

// Col is a board file, 0-indexed (Col(0) == file 1, Col(8) == file 9).
type Col int8

const (
	Col1 Col = iota
	Col2
	Col3
	Col4
	Col5
	Col6
	Col7
	Col8
	Col9
)

// IsOnBoard reports whether the column lies within 1..9.
func (c Col) IsOnBoard() bool { return c >= Col1 && c <= Col9 }

// Num returns the 1-indexed file number.
func (c Col) Num() int { return int(c) + 1 }

func (c Col) String() string { return fmt.Sprintf("%d", c.Num()) }

// Row is a board rank, 0-indexed (Row(0) == rank 1, Row(8) == rank 9).
type Row int8

const (
	Row1 Row = iota
	Row2
	Row3
	Row4
	Row5
	Row6
	Row7
	Row8
	Row9
)

// IsOnBoard reports whether the row lies within 1..9.
func (r Row) IsOnBoard() bool { return r >= Row1 && r <= Row9 }

// Num returns the 1-indexed rank number.
func (r Row) Num() int { return int(r) + 1 }

func (r Row) String() string { return fmt.Sprintf("%d", r.Num()) }

// IsPromotionZone reports whether a piece of side s on this row sits in its
// promotion zone (ranks 1-3 for HUM, 7-9 for COM).
func (r Row) IsPromotionZone(s Side) bool {
	if s == HUM {
		return r <= Row3
	}
	return r >= Row7
}

// Square is a board square, 0..80, with Square = 9*col + row.
type Square int8

const NoSquare Square = -1

// NewSquare builds a square from 0-indexed col/row.
func NewSquare(col Col, row Row) Square {
	return Square(9*int(col) + int(row))
}

// Col returns the square's file.
func (sq Square) Col() Col { return Col(int(sq) / 9) }

// Row returns the square's rank.
func (sq Square) Row() Row { return Row(int(sq) % 9) }

// IsOnBoard reports whether the square index is valid.
func (sq Square) IsOnBoard() bool { return sq >= 0 && sq < 81 }

// IsPromotionZone reports whether the square lies in side s's promotion zone.
func (sq Square) IsPromotionZone(s Side) bool { return sq.Row().IsPromotionZone(s) }

// Distance returns the Chebyshev distance between two squares.
func (sq Square) Distance(other Square) int {
	dc := int(sq.Col()) - int(other.Col())
	dr := int(sq.Row()) - int(other.Row())
	if dc < 0 {
		dc = -dc
	}
	if dr < 0 {
		dr = -dr
	}
	if dc > dr {
		return dc
	}
	return dr
}

func (sq Square) String() string {
	if !sq.IsOnBoard() {
		return "--"
	}
	return fmt.Sprintf("%d%c", sq.Col().Num(), 'a'+sq.Row().Num()-1)
}

// squareConst builds a Square from 1-indexed file/rank numbers, used only
// to spell out the SQ_xy constant table in the same shape as the original.
func squareConst(file, rank int) Square {
	return NewSquare(Col(file-1), Row(rank-1))
}

// Named squares, 1-indexed file then rank, matching the original's SQ_xy
// naming (SQ_11 == file 1 rank 1).
var (
	SQ11, SQ12, SQ13, SQ14, SQ15, SQ16, SQ17, SQ18, SQ19 = sqRow(1)
	SQ21, SQ22, SQ23, SQ24, SQ25, SQ26, SQ27, SQ28, SQ29 = sqRow(2)
	SQ31, SQ32, SQ33, SQ34, SQ35, SQ36, SQ37, SQ38, SQ39 = sqRow(3)
	SQ41, SQ42, SQ43, SQ44, SQ45, SQ46, SQ47, SQ48, SQ49 = sqRow(4)
	SQ51, SQ52, SQ53, SQ54, SQ55, SQ56, SQ57, SQ58, SQ59 = sqRow(5)
	SQ61, SQ62, SQ63, SQ64, SQ65, SQ66, SQ67, SQ68, SQ69 = sqRow(6)
	SQ71, SQ72, SQ73, SQ74, SQ75, SQ76, SQ77, SQ78, SQ79 = sqRow(7)
	SQ81, SQ82, SQ83, SQ84, SQ85, SQ86, SQ87, SQ88, SQ89 = sqRow(8)
	SQ91, SQ92, SQ93, SQ94, SQ95, SQ96, SQ97, SQ98, SQ99 = sqRow(9)
)

func sqRow(file int) (a, b, c, d, e, f, g, h, i Square) {
	return squareConst(file, 1), squareConst(file, 2), squareConst(file, 3),
		squareConst(file, 4), squareConst(file, 5), squareConst(file, 6),
		squareConst(file, 7), squareConst(file, 8), squareConst(file, 9)
}

// Direction indexes one of the 8 ray directions so that d and 7-d are
// opposite: RU=0, R=1, RD=2, U=3, D=4, LU=5, L=6, LD=7.
type Direction uint8

const (
	DirRU Direction = iota
	DirR
	DirRD
	DirU
	DirD
	DirLU
	DirL
	DirLD
)

// Opposite returns the reverse direction (d and 7-d are opposite).
func (d Direction) Opposite() Direction { return 7 - d }

// delta returns the (dcol, drow) step for a direction, used for
// straightforward ray-walking.
func (d Direction) delta() (int, int) {
	switch d {
	case DirR:
		return 1, 0
	case DirRU:
		return 1, -1
	case DirU:
		return 0, -1
	case DirLU:
		return -1, -1
	case DirL:
		return -1, 0
	case DirLD:
		return -1, 1
	case DirD:
		return 0, 1
	case DirRD:
		return 1, 1
	}
	panic("bad direction")
}

// DirectionSet is an 8-bit set of directions.
type DirectionSet uint8

func DirSetOf(dirs ...Direction) DirectionSet {
	var s DirectionSet
	for _, d := range dirs {
		s |= 1 << d
	}
	return s
}

func (s DirectionSet) Has(d Direction) bool { return s&(1<<d) != 0 }
func (s DirectionSet) IsEmpty() bool        { return s == 0 }

// DirectionSetPair bundles both sides' DirectionSets into one 16-bit value:
// low byte HUM, high byte COM.
type DirectionSetPair uint16

func NewDirectionSetPair(hum, com DirectionSet) DirectionSetPair {
	return DirectionSetPair(hum) | DirectionSetPair(com)<<8
}

func DirectionSetPairFromPart(side Side, dirs DirectionSet) DirectionSetPair {
	return DirectionSetPair(dirs) << (8 * side)
}

func (p DirectionSetPair) Get(side Side) DirectionSet {
	return DirectionSet(p >> (8 * side))
}

func (p DirectionSetPair) IsEmpty() bool { return p == 0 }

// Pop removes and returns one direction present for either side, along with
// the per-side DirectionSetPair carrying just that direction. Order among
// simultaneously-set directions is unspecified, matching the original.
func (p *DirectionSetPair) Pop() (Direction, DirectionSetPair) {
	v := uint16(*p)
	var lsb uint16
	for i := 0; i < 16; i++ {
		if v&(1<<i) != 0 {
			lsb = uint16(i)
			break
		}
	}
	dir := Direction(lsb & 7)
	mask := DirectionSetPair((1 << lsb) | (1 << ((lsb + 8) % 16)))
	dsp := *p & mask
	*p &^= dsp
	return dir, dsp
}
