package shogi

import "math/bits"

// Bitboard holds one bit per square across two 64-bit lanes: Lo packs files
// 1-7 (63 bits, columns 0-6 at 9 bits each), Hi packs files 8-9 (18 bits,
// columns 7-8). A single uint64 can't hold all 81 squares, so the board is
// split the way a two-lane SIMD register would be, without needing actual
// vector instructions since nothing here is performance critical at the
// scale this engine runs.
type Bitboard struct {
	Lo uint64
	Hi uint64
}

func bitPos(sq Square) (hi bool, shift uint) {
	col := int(sq.Col())
	row := int(sq.Row())
	if col < 7 {
		return false, uint(col*9 + row)
	}
	return true, uint((col-7)*9 + row)
}

// Set returns a copy of b with sq set.
func (b Bitboard) Set(sq Square) Bitboard {
	hi, shift := bitPos(sq)
	if hi {
		b.Hi |= 1 << shift
	} else {
		b.Lo |= 1 << shift
	}
	return b
}

// Clear returns a copy of b with sq cleared.
func (b Bitboard) Clear(sq Square) Bitboard {
	hi, shift := bitPos(sq)
	if hi {
		b.Hi &^= 1 << shift
	} else {
		b.Lo &^= 1 << shift
	}
	return b
}

// Test reports whether sq is set in b.
func (b Bitboard) Test(sq Square) bool {
	hi, shift := bitPos(sq)
	if hi {
		return b.Hi&(1<<shift) != 0
	}
	return b.Lo&(1<<shift) != 0
}

func (b Bitboard) IsEmpty() bool { return b.Lo == 0 && b.Hi == 0 }

func (b Bitboard) PopCount() int { return bits.OnesCount64(b.Lo) + bits.OnesCount64(b.Hi) }

func (b Bitboard) Or(o Bitboard) Bitboard    { return Bitboard{b.Lo | o.Lo, b.Hi | o.Hi} }
func (b Bitboard) And(o Bitboard) Bitboard   { return Bitboard{b.Lo & o.Lo, b.Hi & o.Hi} }
func (b Bitboard) Xor(o Bitboard) Bitboard   { return Bitboard{b.Lo ^ o.Lo, b.Hi ^ o.Hi} }
func (b Bitboard) AndNot(o Bitboard) Bitboard { return Bitboard{b.Lo &^ o.Lo, b.Hi &^ o.Hi} }
func (b Bitboard) Not() Bitboard {
	return Bitboard{^b.Lo & loMask, ^b.Hi & hiMask}
}

const (
	loMask = (uint64(1) << 63) - 1
	hiMask = (uint64(1) << 18) - 1
)

// LSB returns the lowest-indexed set square, or NoSquare if b is empty.
// Files 1-7 (Lo) sort before files 8-9 (Hi), matching column-major order.
func (b Bitboard) LSB() Square {
	if b.Lo != 0 {
		shift := bits.TrailingZeros64(b.Lo)
		return squareFromLane(false, shift)
	}
	if b.Hi != 0 {
		shift := bits.TrailingZeros64(b.Hi)
		return squareFromLane(true, shift)
	}
	return NoSquare
}

// PopLSB removes and returns the lowest-indexed set square.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	if sq == NoSquare {
		return NoSquare
	}
	*b = b.Clear(sq)
	return sq
}

func squareFromLane(hi bool, shift int) Square {
	col := shift / 9
	row := shift % 9
	if hi {
		col += 7
	}
	return NewSquare(Col(col), Row(row))
}

// ForEach calls f for every set square in ascending order.
func (b Bitboard) ForEach(f func(Square)) {
	for sq := b.LSB(); sq != NoSquare; sq = b.LSB() {
		b = b.Clear(sq)
		f(sq)
	}
}
