// Package sfen decodes and encodes the text position/move notation the
// engine's drivers speak: a shogi-forsyth-edwards-notation board string,
// hands, side to move, and a trailing move list, plus the "startpos"
// shorthand for the even starting position. Syntax is checked; legality
// never is — that's the caller's job, same as the original.
package sfen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hailam/naitou-shogi/internal/shogi"
)

// Position is the decoded (side to move, board, hands) triple.
type Position struct {
	SideToMove shogi.Side
	Board      shogi.Board
	Hands      [2]shogi.Hand
}

// handOrder is the sfen hand-piece ordering: rook, bishop, gold, silver,
// knight, lance, pawn.
var handOrder = [...]shogi.PieceKind{
	shogi.Rook, shogi.Bishop, shogi.Gold, shogi.Silver, shogi.Knight, shogi.Lance, shogi.Pawn,
}

var boardPieceChars = map[byte]struct {
	side shogi.Side
	pk   shogi.PieceKind
}{
	'K': {shogi.HUM, shogi.King}, 'R': {shogi.HUM, shogi.Rook}, 'B': {shogi.HUM, shogi.Bishop},
	'G': {shogi.HUM, shogi.Gold}, 'S': {shogi.HUM, shogi.Silver}, 'N': {shogi.HUM, shogi.Knight},
	'L': {shogi.HUM, shogi.Lance}, 'P': {shogi.HUM, shogi.Pawn},
	'k': {shogi.COM, shogi.King}, 'r': {shogi.COM, shogi.Rook}, 'b': {shogi.COM, shogi.Bishop},
	'g': {shogi.COM, shogi.Gold}, 's': {shogi.COM, shogi.Silver}, 'n': {shogi.COM, shogi.Knight},
	'l': {shogi.COM, shogi.Lance}, 'p': {shogi.COM, shogi.Pawn},
}

var handPieceChars = map[byte]struct {
	side shogi.Side
	pk   shogi.PieceKind
}{
	'R': {shogi.HUM, shogi.Rook}, 'B': {shogi.HUM, shogi.Bishop}, 'G': {shogi.HUM, shogi.Gold},
	'S': {shogi.HUM, shogi.Silver}, 'N': {shogi.HUM, shogi.Knight}, 'L': {shogi.HUM, shogi.Lance},
	'P': {shogi.HUM, shogi.Pawn},
	'r': {shogi.COM, shogi.Rook}, 'b': {shogi.COM, shogi.Bishop}, 'g': {shogi.COM, shogi.Gold},
	's': {shogi.COM, shogi.Silver}, 'n': {shogi.COM, shogi.Knight}, 'l': {shogi.COM, shogi.Lance},
	'p': {shogi.COM, shogi.Pawn},
}

// Decode parses a full position-plus-moves string: "startpos [moves ...]"
// or "[position] sfen <board> <side> <hands> <ply> [moves ...]". Leading
// and trailing whitespace is ignored.
func Decode(s string) (Position, []shogi.Move, error) {
	tokens := strings.Fields(s)
	pos, rest, err := decodePositionFromTokens(tokens)
	if err != nil {
		return Position{}, nil, err
	}

	if len(rest) == 0 {
		return pos, nil, nil
	}
	if rest[0] != "moves" {
		return Position{}, nil, fmt.Errorf(`sfen: expected "moves", got %q`, rest[0])
	}

	moves := make([]shogi.Move, 0, len(rest)-1)
	for _, tok := range rest[1:] {
		m, err := DecodeMove(tok)
		if err != nil {
			return Position{}, nil, err
		}
		moves = append(moves, m)
	}
	return pos, moves, nil
}

// DecodePosition parses just the position portion, erroring if any tokens
// remain afterward.
func DecodePosition(s string) (Position, error) {
	pos, rest, err := decodePositionFromTokens(strings.Fields(s))
	if err != nil {
		return Position{}, err
	}
	if len(rest) != 0 {
		return Position{}, fmt.Errorf("sfen: position string has redundant token: %q", rest[0])
	}
	return pos, nil
}

func decodePositionFromTokens(tokens []string) (Position, []string, error) {
	if len(tokens) == 0 {
		return Position{}, nil, fmt.Errorf("sfen: position string is empty")
	}
	if tokens[0] == "position" {
		tokens = tokens[1:]
	}
	if len(tokens) == 0 {
		return Position{}, nil, fmt.Errorf("sfen: position string is empty")
	}

	switch tokens[0] {
	case "startpos":
		return Position{SideToMove: shogi.HUM, Board: shogi.NewPosition().Board}, tokens[1:], nil
	case "sfen":
		tokens = tokens[1:]
	default:
		return Position{}, nil, fmt.Errorf("sfen: invalid position string magic: %q", tokens[0])
	}

	if len(tokens) < 4 {
		return Position{}, nil, fmt.Errorf("sfen: position string is missing fields")
	}

	board, err := decodeBoard(tokens[0])
	if err != nil {
		return Position{}, nil, err
	}
	side, err := decodeSide(tokens[1])
	if err != nil {
		return Position{}, nil, err
	}
	hands, err := decodeHands(tokens[2])
	if err != nil {
		return Position{}, nil, err
	}
	if _, err := decodePly(tokens[3]); err != nil {
		return Position{}, nil, err
	}

	return Position{SideToMove: side, Board: board, Hands: hands}, tokens[4:], nil
}

func decodeBoard(s string) (shogi.Board, error) {
	var board shogi.Board
	rows := strings.Split(s, "/")
	if len(rows) != 9 {
		return board, fmt.Errorf("sfen: board string must have exactly 9 rows, got %d", len(rows))
	}
	for i, rowStr := range rows {
		if err := decodeBoardRow(rowStr, shogi.Row(i), &board); err != nil {
			return board, err
		}
	}
	return board, nil
}

func decodeBoardRow(s string, row shogi.Row, board *shogi.Board) error {
	col := shogi.Col9
	promo := false

	checkOverflow := func(n int) error {
		if int(col)-n+1 < int(shogi.Col1) {
			return fmt.Errorf("sfen: board row overflow: %q", s)
		}
		return nil
	}

	for _, r := range s {
		switch {
		case r == '+':
			if promo {
				return fmt.Errorf("sfen: double '+' is not allowed: %q", s)
			}
			if err := checkOverflow(1); err != nil {
				return err
			}
			promo = true
		case r >= '1' && r <= '9':
			if promo {
				return fmt.Errorf("sfen: '+' cannot be placed before digit: %q", s)
			}
			n := int(r - '0')
			if err := checkOverflow(n); err != nil {
				return err
			}
			col -= shogi.Col(n)
		default:
			if r > 127 {
				return fmt.Errorf("sfen: invalid board piece char: %q", r)
			}
			info, ok := boardPieceChars[byte(r)]
			if !ok {
				return fmt.Errorf("sfen: invalid board piece char: %q", r)
			}
			pk := info.pk
			if promo {
				if !pk.IsPromotable() {
					return fmt.Errorf("sfen: not promotable piece: %q", r)
				}
				pk = pk.ToPromoted()
				promo = false
			}
			if err := checkOverflow(1); err != nil {
				return err
			}
			board.Put(shogi.NewSquare(col, row), shogi.NewPiece(info.side, pk))
			col--
		}
	}

	if promo {
		return fmt.Errorf("sfen: remaining promotion flag: %q", s)
	}
	if col+1 != shogi.Col1 {
		return fmt.Errorf("sfen: board row must have exactly 9 columns: %q", s)
	}
	return nil
}

func decodeSide(s string) (shogi.Side, error) {
	switch s {
	case "b":
		return shogi.HUM, nil
	case "w":
		return shogi.COM, nil
	}
	return 0, fmt.Errorf("sfen: invalid side string: %q", s)
}

func decodeHands(s string) ([2]shogi.Hand, error) {
	var hands [2]shogi.Hand
	if s == "-" {
		return hands, nil
	}

	count := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			if r == '0' && count == 0 {
				return hands, fmt.Errorf("sfen: leading zero is not allowed: %q", s)
			}
			count = count*10 + int(r-'0')
			continue
		}
		if r > 127 {
			return hands, fmt.Errorf("sfen: invalid hand piece char: %q", r)
		}
		info, ok := handPieceChars[byte(r)]
		if !ok {
			return hands, fmt.Errorf("sfen: invalid hand piece char: %q", r)
		}
		n := count
		if n == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			hands[info.side].Add(info.pk)
		}
		count = 0
	}
	if count != 0 {
		return hands, fmt.Errorf("sfen: remaining count specifier: %q", s)
	}
	return hands, nil
}

func decodePly(s string) (int, error) {
	ply, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("sfen: invalid ply string: %q", s)
	}
	if ply < 1 {
		return 0, fmt.Errorf("sfen: ply must be positive: %d", ply)
	}
	return ply, nil
}

// DecodeMove parses one move token: a walk ("7g7f", "8h2b+") or a drop
// ("P*5e").
func DecodeMove(s string) (shogi.Move, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return shogi.NoMove, fmt.Errorf("sfen: move string is empty")
	}

	if m, ok := decodeMoveDrop(s); ok {
		return m, nil
	}
	if m, ok := decodeMoveWalk(s); ok {
		return m, nil
	}
	return shogi.NoMove, fmt.Errorf("sfen: invalid move string: %q", s)
}

func decodeMoveWalk(s string) (shogi.Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return shogi.NoMove, false
	}
	srcCol, ok := decodeMoveCol(s[0])
	if !ok {
		return shogi.NoMove, false
	}
	srcRow, ok := decodeMoveRow(s[1])
	if !ok {
		return shogi.NoMove, false
	}
	dstCol, ok := decodeMoveCol(s[2])
	if !ok {
		return shogi.NoMove, false
	}
	dstRow, ok := decodeMoveRow(s[3])
	if !ok {
		return shogi.NoMove, false
	}
	promo := false
	if len(s) == 5 {
		if s[4] != '+' {
			return shogi.NoMove, false
		}
		promo = true
	}
	src := shogi.NewSquare(srcCol, srcRow)
	dst := shogi.NewSquare(dstCol, dstRow)
	return shogi.NewWalkMove(src, dst, promo), true
}

func decodeMoveDrop(s string) (shogi.Move, bool) {
	if len(s) != 4 || s[1] != '*' {
		return shogi.NoMove, false
	}
	pk, ok := decodeMoveDropPieceKind(s[0])
	if !ok {
		return shogi.NoMove, false
	}
	dstCol, ok := decodeMoveCol(s[2])
	if !ok {
		return shogi.NoMove, false
	}
	dstRow, ok := decodeMoveRow(s[3])
	if !ok {
		return shogi.NoMove, false
	}
	return shogi.NewDropMove(pk, shogi.NewSquare(dstCol, dstRow)), true
}

func decodeMoveCol(c byte) (shogi.Col, bool) {
	if c < '1' || c > '9' {
		return 0, false
	}
	return shogi.Col(c - '1'), true
}

func decodeMoveRow(c byte) (shogi.Row, bool) {
	if c < 'a' || c > 'i' {
		return 0, false
	}
	return shogi.Row(c - 'a'), true
}

func decodeMoveDropPieceKind(c byte) (shogi.PieceKind, bool) {
	switch c {
	case 'R':
		return shogi.Rook, true
	case 'B':
		return shogi.Bishop, true
	case 'G':
		return shogi.Gold, true
	case 'S':
		return shogi.Silver, true
	case 'N':
		return shogi.Knight, true
	case 'L':
		return shogi.Lance, true
	case 'P':
		return shogi.Pawn, true
	}
	return 0, false
}

// Encode renders (side to move, board, hands, moves) as a full sfen
// string, e.g. "startpos moves 7g7f 3c3d" or
// "sfen lnsgkgsnl/... b - 1 moves ...".
func Encode(side shogi.Side, board *shogi.Board, hands *[2]shogi.Hand, moves []shogi.Move) string {
	var b strings.Builder
	b.WriteString(EncodePosition(side, board, hands))
	b.WriteString(" moves")
	for _, m := range moves {
		b.WriteByte(' ')
		b.WriteString(EncodeMove(m))
	}
	return b.String()
}

// EncodePosition renders (side to move, board, hands) as an sfen position
// string, or "startpos" for the even starting position with HUM to move.
func EncodePosition(side shogi.Side, board *shogi.Board, hands *[2]shogi.Hand) string {
	if side == shogi.HUM && *board == shogi.NewPosition().Board && handsEmpty(hands) {
		return "startpos"
	}

	var b strings.Builder
	b.WriteString("sfen ")
	encodeBoard(board, &b)
	b.WriteByte(' ')
	encodeSide(side, &b)
	b.WriteByte(' ')
	encodeHands(hands, &b)
	b.WriteString(" 1")
	return b.String()
}

func handsEmpty(hands *[2]shogi.Hand) bool {
	for _, side := range [...]shogi.Side{shogi.HUM, shogi.COM} {
		for _, pk := range handOrder {
			if hands[side].Count(pk) != 0 {
				return false
			}
		}
	}
	return true
}

func encodeBoard(board *shogi.Board, b *strings.Builder) {
	for row := shogi.Row1; row <= shogi.Row9; row++ {
		if row != shogi.Row1 {
			b.WriteByte('/')
		}
		encodeBoardRow(board, row, b)
	}
}

func encodeBoardRow(board *shogi.Board, row shogi.Row, b *strings.Builder) {
	runBlank := 0
	flush := func() {
		if runBlank > 0 {
			b.WriteString(strconv.Itoa(runBlank))
			runBlank = 0
		}
	}
	for col := shogi.Col9; col >= shogi.Col1; col-- {
		pc := board.At(shogi.NewSquare(col, row))
		if pc.IsNone() {
			runBlank++
			continue
		}
		flush()
		encodeBoardPiece(pc, b)
	}
	flush()
}

func encodeBoardPiece(pc shogi.Piece, b *strings.Builder) {
	pk := pc.Kind()
	if pk.IsPromoted() {
		b.WriteByte('+')
		pk = pk.ToRaw()
	}
	c := pieceKindChar(pk)
	if pc.Side() == shogi.COM {
		c = c - 'A' + 'a'
	}
	b.WriteByte(c)
}

func pieceKindChar(pk shogi.PieceKind) byte {
	switch pk {
	case shogi.King:
		return 'K'
	case shogi.Rook:
		return 'R'
	case shogi.Bishop:
		return 'B'
	case shogi.Gold:
		return 'G'
	case shogi.Silver:
		return 'S'
	case shogi.Knight:
		return 'N'
	case shogi.Lance:
		return 'L'
	case shogi.Pawn:
		return 'P'
	}
	panic(fmt.Sprintf("sfen: invalid board piece kind: %v", pk))
}

func encodeSide(side shogi.Side, b *strings.Builder) {
	if side == shogi.HUM {
		b.WriteByte('b')
	} else {
		b.WriteByte('w')
	}
}

func encodeHands(hands *[2]shogi.Hand, b *strings.Builder) {
	if handsEmpty(hands) {
		b.WriteByte('-')
		return
	}
	for _, side := range [...]shogi.Side{shogi.HUM, shogi.COM} {
		for _, pk := range handOrder {
			n := hands[side].Count(pk)
			if n == 0 {
				continue
			}
			if n >= 2 {
				b.WriteString(strconv.Itoa(int(n)))
			}
			c := pieceKindChar(pk)
			if side == shogi.COM {
				c = c - 'A' + 'a'
			}
			b.WriteByte(c)
		}
	}
}

// EncodeMove renders one move as its sfen token.
func EncodeMove(m shogi.Move) string {
	var b strings.Builder
	if m.IsDrop() {
		c := pieceKindChar(m.DroppedKind())
		b.WriteByte(c)
		b.WriteByte('*')
		encodeMoveCol(m.Dst().Col(), &b)
		encodeMoveRow(m.Dst().Row(), &b)
		return b.String()
	}
	encodeMoveCol(m.Src().Col(), &b)
	encodeMoveRow(m.Src().Row(), &b)
	encodeMoveCol(m.Dst().Col(), &b)
	encodeMoveRow(m.Dst().Row(), &b)
	if m.IsPromotion() {
		b.WriteByte('+')
	}
	return b.String()
}

func encodeMoveCol(col shogi.Col, b *strings.Builder) {
	b.WriteByte(byte('1' + int(col)))
}

func encodeMoveRow(row shogi.Row, b *strings.Builder) {
	b.WriteByte(byte('a' + int(row)))
}
