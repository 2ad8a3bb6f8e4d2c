package shogi

// PieceKind identifies a kind of piece, independent of side. Values are
// assigned so that OR-ing bit 3 promotes a promotable kind and AND-ing with
// 0b111 demotes (king is handled separately, it never promotes).
type PieceKind uint8

const (
	NoPieceKind PieceKind = 0
	Pawn        PieceKind = 1
	Lance       PieceKind = 2
	Knight      PieceKind = 3
	Silver      PieceKind = 4
	Bishop      PieceKind = 5
	Rook        PieceKind = 6
	Gold        PieceKind = 7
	King        PieceKind = 8
	ProPawn     PieceKind = 9
	ProLance    PieceKind = 10
	ProKnight   PieceKind = 11
	ProSilver   PieceKind = 12
	Horse       PieceKind = 13
	Dragon      PieceKind = 14
)

// IsPiece reports whether pk names an actual piece kind (not NoPieceKind).
func (pk PieceKind) IsPiece() bool { return pk >= Pawn && pk <= Dragon }

// IsPromotable reports whether pk can promote (pawn through rook).
func (pk PieceKind) IsPromotable() bool { return pk >= Pawn && pk <= Rook }

// IsPromoted reports whether pk is already a promoted kind.
func (pk PieceKind) IsPromoted() bool { return pk >= ProPawn && pk <= Dragon }

// IsHand reports whether pk is one of the seven droppable kinds.
func (pk PieceKind) IsHand() bool { return pk >= Pawn && pk <= Gold }

// HasRangedEffect reports whether pk projects a ranged attack in its raw or
// promoted form: lance, bishop, rook, horse, dragon.
func (pk PieceKind) HasRangedEffect() bool {
	return pk == Lance || ((pk+1)&0b110) == 0b110
}

// ToPromoted returns the promoted form of a promotable kind.
func (pk PieceKind) ToPromoted() PieceKind { return pk | 0b1000 }

// ToRaw demotes a promoted kind back to its raw form. Must not be called on
// King.
func (pk PieceKind) ToRaw() PieceKind { return pk & 0b111 }

func (pk PieceKind) String() string {
	names := [...]string{
		"-", "P", "L", "N", "S", "B", "R", "G", "K",
		"+P", "+L", "+N", "+S", "+B", "+R",
	}
	if int(pk) < len(names) {
		return names[pk]
	}
	return "?"
}

// AllHandKinds lists the seven droppable kinds in the original's drop order:
// pawn, lance, knight, silver, gold, bishop, rook.
var AllHandKinds = [...]PieceKind{Pawn, Lance, Knight, Silver, Gold, Bishop, Rook}

// AllPieceKinds lists every real piece kind, pawn through dragon.
var AllPieceKinds = [...]PieceKind{
	Pawn, Lance, Knight, Silver, Bishop, Rook, Gold, King,
	ProPawn, ProLance, ProKnight, ProSilver, Horse, Dragon,
}

// Piece fuses a Side and a PieceKind: OR-ing bit 4 switches to COM.
type Piece uint8

const NoPiece Piece = 0

func NewPiece(s Side, pk PieceKind) Piece {
	return Piece(pk) | Piece(s)<<4
}

func (p Piece) Side() Side           { return Side(p >> 4) }
func (p Piece) Kind() PieceKind      { return PieceKind(p & 0xF) }
func (p Piece) IsNone() bool         { return p == NoPiece }

func (p Piece) String() string {
	if p.IsNone() {
		return ".."
	}
	s := p.Kind().String()
	if p.Side() == COM {
		// lower-case the kind for COM, matching sfen's case convention.
		out := make([]byte, len(s))
		for i := 0; i < len(s); i++ {
			c := s[i]
			if c >= 'A' && c <= 'Z' {
				c = c - 'A' + 'a'
			}
			out[i] = c
		}
		return string(out)
	}
	return s
}

// Named pieces, matching the original's H_xxx / C_xxx constants.
var (
	HPawn, HLance, HKnight, HSilver, HBishop, HRook, HGold, HKing = pieceRow(HUM)
	HProPawn, HProLance, HProKnight, HProSilver, HHorse, HDragon = proRow(HUM)
	CPawn, CLance, CKnight, CSilver, CBishop, CRook, CGold, CKing = pieceRow(COM)
	CProPawn, CProLance, CProKnight, CProSilver, CHorse, CDragon = proRow(COM)
)

func pieceRow(s Side) (pawn, lance, knight, silver, bishop, rook, gold, king Piece) {
	return NewPiece(s, Pawn), NewPiece(s, Lance), NewPiece(s, Knight), NewPiece(s, Silver),
		NewPiece(s, Bishop), NewPiece(s, Rook), NewPiece(s, Gold), NewPiece(s, King)
}

func proRow(s Side) (proPawn, proLance, proKnight, proSilver, horse, dragon Piece) {
	return NewPiece(s, ProPawn), NewPiece(s, ProLance), NewPiece(s, ProKnight),
		NewPiece(s, ProSilver), NewPiece(s, Horse), NewPiece(s, Dragon)
}
