package shogi

import "fmt"

// handicapNames pairs every Handicap with the flag-friendly name CLI
// drivers accept and print.
var handicapNames = [...]struct {
	h    Handicap
	name string
}{
	{HumSenteEven, "hum-sente-even"},
	{ComSenteEven, "com-sente-even"},
	{HumSenteSikenbisha, "hum-sente-sikenbisha"},
	{ComSenteSikenbisha, "com-sente-sikenbisha"},
	{HumSenteNakabisha, "hum-sente-nakabisha"},
	{ComSenteNakabisha, "com-sente-nakabisha"},
	{HumHishaochi, "hum-hishaochi"},
	{HumNimaiochi, "hum-nimaiochi"},
	{ComHishaochi, "com-hishaochi"},
	{ComNimaiochi, "com-nimaiochi"},
}

func (h Handicap) String() string {
	for _, e := range handicapNames {
		if e.h == h {
			return e.name
		}
	}
	return "unknown"
}

// ParseHandicap resolves one of the names Handicap.String() produces back
// to a Handicap.
func ParseHandicap(name string) (Handicap, error) {
	for _, e := range handicapNames {
		if e.name == name {
			return e.h, nil
		}
	}
	return 0, fmt.Errorf("shogi: unknown handicap %q", name)
}

// comFirstHandicaps are the handicaps where COM holds the advantage and
// therefore moves first.
var comFirstHandicaps = map[Handicap]bool{
	ComSenteSikenbisha: true,
	ComSenteNakabisha:  true,
	ComHishaochi:       true,
	ComNimaiochi:       true,
}

// ComMovesFirst reports whether COM makes the opening move under h.
func ComMovesFirst(h Handicap) bool { return comFirstHandicaps[h] }

// NewPositionForHandicap builds the starting position for h: the even
// array, with COM's rook and/or bishop removed for the piece-odds
// handicaps, and SideToMove set to whichever side opens under h.
func NewPositionForHandicap(h Handicap) *Position {
	p := NewPosition()

	switch h {
	case HumHishaochi, ComHishaochi:
		p.Board.Put(NewSquare(Col2, Row2), NoPiece)
	case HumNimaiochi, ComNimaiochi:
		p.Board.Put(NewSquare(Col2, Row2), NoPiece)
		p.Board.Put(NewSquare(Col8, Row2), NoPiece)
	}

	if ComMovesFirst(h) {
		p.SideToMove = COM
	} else {
		p.SideToMove = HUM
	}
	p.recomputeEffects()
	return p
}
