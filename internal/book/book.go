// Package book implements the opening-book state machine: a fixed set of
// named formations, each with a branch table ("if HUM has played this,
// respond with this, or switch formation") and a move list ("absent any
// branch match, play the next move in this formation's canned sequence").
package book

import (
	"github.com/hailam/naitou-shogi/internal/shogi"
)

// Formation names one of the book's eight opening lines, plus the
// post-book sentinel.
type Formation int

const (
	Nakabisha Formation = iota
	Sikenbisha
	Kakugawari
	Sujichigai
	HumHishaochi
	HumNimaiochi
	ComHishaochi
	ComNimaiochi
	Nothing // book exhausted
)

// IsNothing reports whether the book has been exhausted.
func (f Formation) IsNothing() bool { return f == Nothing }

// FromHandicap returns the initial formation for a starting handicap.
func FromHandicap(h shogi.Handicap) Formation {
	switch h {
	case shogi.HumSenteSikenbisha, shogi.ComSenteSikenbisha:
		return Sikenbisha
	case shogi.HumSenteNakabisha, shogi.ComSenteNakabisha:
		return Nakabisha
	case shogi.HumHishaochi:
		return HumHishaochi
	case shogi.HumNimaiochi:
		return HumNimaiochi
	case shogi.ComHishaochi:
		return ComHishaochi
	case shogi.ComNimaiochi:
		return ComNimaiochi
	}
	// HumSenteEven / ComSenteEven pick no fixed formation; COM starts
	// from general evaluation without any book guidance.
	return Nothing
}

func (f Formation) String() string {
	switch f {
	case Nakabisha:
		return "Nakabisha"
	case Sikenbisha:
		return "Sikenbisha"
	case Kakugawari:
		return "Kakugawari"
	case Sujichigai:
		return "Sujichigai"
	case HumHishaochi:
		return "HumHishaochi"
	case HumNimaiochi:
		return "HumNimaiochi"
	case ComHishaochi:
		return "ComHishaochi"
	case ComNimaiochi:
		return "ComNimaiochi"
	}
	return "Nothing"
}

// branchMove is a "if HUM piece pk sits on sq, respond with this walk"
// branch entry.
type branchMove struct {
	sq       shogi.Square
	pk       shogi.PieceKind
	src, dst shogi.Square
}

func (e branchMove) matches(board *shogi.Board) bool {
	return board.At(e.sq) == shogi.NewPiece(shogi.HUM, e.pk)
}

// branchChangeFormation is a "if HUM piece pk sits on sq, and progress_ply
// is still within ply, switch to formation" branch entry.
type branchChangeFormation struct {
	sq        shogi.Square
	pk        shogi.PieceKind
	formation Formation
	ply       uint8
}

func (e branchChangeFormation) matches(board *shogi.Board, progressPly uint8) bool {
	return board.At(e.sq) == shogi.NewPiece(shogi.HUM, e.pk) && progressPly <= e.ply
}

// branchEntry is either a branchMove or a branchChangeFormation.
type branchEntry struct {
	move       *branchMove
	changeForm *branchChangeFormation
}

func bMove(sq shogi.Square, pk shogi.PieceKind, src, dst shogi.Square) branchEntry {
	m := branchMove{sq: sq, pk: pk, src: src, dst: dst}
	return branchEntry{move: &m}
}

func bChange(sq shogi.Square, pk shogi.PieceKind, formation Formation, ply uint8) branchEntry {
	c := branchChangeFormation{sq: sq, pk: pk, formation: formation, ply: ply}
	return branchEntry{changeForm: &c}
}

// movesEntry is one step of a formation's canned move sequence: always a
// non-promoting walk.
type movesEntry struct {
	src, dst shogi.Square
}

func mv(src, dst shogi.Square) movesEntry { return movesEntry{src: src, dst: dst} }

func (f Formation) branchTable() []branchEntry {
	switch f {
	case Nakabisha:
		return bookBranchNakabisha
	case Sikenbisha:
		return bookBranchSikenbisha
	case Kakugawari:
		return bookBranchKakugawari
	case Sujichigai:
		return bookBranchSujichigai
	case HumHishaochi:
		return bookBranchHumHishaochi
	case HumNimaiochi:
		return bookBranchHumNimaiochi
	case ComHishaochi:
		return bookBranchComHishaochi
	case ComNimaiochi:
		return bookBranchComNimaiochi
	}
	panic("book: branchTable called on Nothing")
}

func (f Formation) movesTable() []movesEntry {
	switch f {
	case Nakabisha:
		return bookMovesNakabisha
	case Sikenbisha:
		return bookMovesSikenbisha
	case Kakugawari:
		return bookMovesKakugawari
	case Sujichigai:
		return bookMovesSujichigai
	case HumHishaochi:
		return bookMovesHumHishaochi
	case HumNimaiochi:
		return bookMovesHumNimaiochi
	case ComHishaochi:
		return bookMovesComHishaochi
	case ComNimaiochi:
		return bookMovesComNimaiochi
	}
	panic("book: movesTable called on Nothing")
}

// State tracks which branch/move entries remain unused for the current
// formation, and the formation itself.
type State struct {
	formation         Formation
	maskUnusedBranch  uint32
	maskUnusedMoves   uint32
}

// NewState builds a State for the given starting formation. Nothing is
// accepted and yields a State whose NextMove always reports the book
// exhausted (used for the no-fixed-formation even handicaps).
func NewState(formation Formation) *State {
	if formation == Nothing {
		return &State{formation: Nothing}
	}
	s := &State{formation: Nothing}
	s.changeFormation(formation)
	return s
}

// Formation returns the current formation.
func (s *State) Formation() Formation { return s.formation }

func (s *State) changeFormation(formation Formation) {
	s.formation = formation
	s.maskUnusedBranch = (uint32(1) << len(formation.branchTable())) - 1
	s.maskUnusedMoves = (uint32(1) << len(formation.movesTable())) - 1
}

// NextMove returns the book's suggested move for the current position, or
// (NoMove, false) once the book is exhausted. progressPly is the engine's
// progress-ply counter; per the original, COM moving first has
// progressPly==0 on its very first move, and book entries matched at
// progressPly==0 are deliberately NOT marked used — this lets the very
// first COM move re-match on a later call. Legality and material-loss
// checks are the caller's responsibility.
func (s *State) NextMove(board *shogi.Board, progressPly uint8) (shogi.Move, bool) {
	if s.formation == Nothing {
		return shogi.NoMove, false
	}

bookBranch:
	for {
		table := s.formation.branchTable()
		for i := 0; i < len(table); i++ {
			if s.maskUnusedBranch&(1<<uint(i)) == 0 {
				continue
			}
			e := table[i]
			if e.move != nil {
				if e.move.matches(board) {
					if progressPly != 0 {
						s.maskUnusedBranch &^= 1 << uint(i)
					}
					return shogi.NewWalkMove(e.move.src, e.move.dst, false), true
				}
				continue
			}
			if e.changeForm.matches(board, progressPly) {
				s.changeFormation(e.changeForm.formation)
				continue bookBranch
			}
		}
		break
	}

	if s.maskUnusedMoves != 0 {
		i := lowestSetBit(s.maskUnusedMoves)
		e := s.formation.movesTable()[i]
		if progressPly != 0 {
			s.maskUnusedMoves &^= 1 << uint(i)
		}
		return shogi.NewWalkMove(e.src, e.dst, false), true
	}

	s.formation = Nothing
	return shogi.NoMove, false
}

func lowestSetBit(v uint32) int {
	for i := 0; i < 32; i++ {
		if v&(1<<uint(i)) != 0 {
			return i
		}
	}
	return -1
}
