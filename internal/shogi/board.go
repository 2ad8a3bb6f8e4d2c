package shogi

// handIndex maps a droppable PieceKind to its slot in a Hand, following
// AllHandKinds' order: pawn, lance, knight, silver, gold, bishop, rook.
var handIndex = [...]int{
	NoPieceKind: -1,
	Pawn:        0,
	Lance:       1,
	Knight:      2,
	Silver:      3,
	Gold:        4,
	Bishop:      5,
	Rook:        6,
}

// Hand counts how many of each droppable kind a side is holding.
type Hand [7]uint8

func (h Hand) Count(pk PieceKind) uint8 { return h[handIndex[pk]] }

func (h *Hand) Add(pk PieceKind) { h[handIndex[pk]]++ }

// Remove decrements the count for pk. Must not be called with a zero count.
func (h *Hand) Remove(pk PieceKind) { h[handIndex[pk]]-- }

func (h Hand) IsEmpty() bool {
	for _, c := range h {
		if c != 0 {
			return false
		}
	}
	return true
}

// Board is the flat 81-square array of pieces, SQ_11-indexed.
type Board [81]Piece

func (b Board) At(sq Square) Piece { return b[sq] }

func (b *Board) Put(sq Square, p Piece) { b[sq] = p }
