package engine

import "github.com/hailam/naitou-shogi/internal/shogi"

// RootEvaluation holds the root-position features computed once per COM
// thinking step, before any candidate move is tried.
type RootEvaluation struct {
	AdvPrice    uint8
	AdvSq       shogi.Square
	DisadvPrice uint8
	DisadvSq    shogi.Square
	PowerHum    uint8
	PowerCom    uint8
	RbpCom      uint8
	KingSqHum   shogi.Square
	KingSqCom   shogi.Square
}

// LeafEvaluation holds every feature computed for one candidate move after
// it has been applied to the position.
type LeafEvaluation struct {
	Move         shogi.Move
	MovedKind    shogi.PieceKind
	CapturedKind shogi.PieceKind
	IsPromoted   bool

	CapturePrice uint8
	ScorePosi    uint8
	ScoreNega    uint8

	AdvPrice    uint8
	AdvSq       shogi.Square
	DisadvPrice uint8
	DisadvSq    shogi.Square

	HumKingThreatAround25 uint8
	ComKingSafetyAround25 uint8
	ComKingThreatAround25 uint8
	ComKingThreatAround8  uint8
	ComKingChokeAround8   uint8

	SrcToComKing uint8
	DstToHumKing uint8

	HumHanging      bool
	ComPromoCount   uint8
	ComLooseCount   uint8
	HumIsCheckmated bool
	IsSuicide       bool

	PowerHum uint8
	PowerCom uint8
	RbpCom   uint8

	Rejected bool
}

// iterAdvantageSquares walks the board in naitou scan order, calling f for
// every square where HUM holds a piece attacked by COM that qualifies as an
// "advantage square" this ply (per spec §4.3/§4.4), passing the square and
// the HUM piece's price_B. Non-qualifying squares are skipped.
func iterAdvantageSquares(pos *shogi.Position, progressLevel int, f func(sq shogi.Square, price uint8)) {
	for _, sq := range shogi.NaitouSquares() {
		pc := pos.Board.At(sq)
		if pc.IsNone() || pc.Side() != shogi.HUM {
			continue
		}
		if pos.EffectAt(shogi.COM, sq) == 0 {
			continue
		}
		humPrice := shogi.PriceTableB[pc.Kind()]
		advantage := true
		if pos.EffectAt(shogi.HUM, sq) > 0 {
			_, comAtkKind := shogi.NaitouAttacker(pos, shogi.COM, sq)
			comPrice := shogi.PriceTableB[comAtkKind]
			advantage = comPrice < humPrice || (progressLevel != 0 && comPrice == humPrice)
		}
		if advantage {
			f(sq, humPrice)
		}
	}
}

// iterDisadvantageSquares walks the board in naitou scan order, calling f
// for every square where COM holds a piece attacked by HUM that qualifies
// as a "disadvantage square", passing the square and the COM piece's
// price_D.
func iterDisadvantageSquares(pos *shogi.Position, progressLevel int, f func(sq shogi.Square, price uint8)) {
	for _, sq := range shogi.NaitouSquares() {
		pc := pos.Board.At(sq)
		if pc.IsNone() || pc.Side() != shogi.COM {
			continue
		}
		if pos.EffectAt(shogi.HUM, sq) == 0 {
			continue
		}
		comPrice := shogi.PriceTableD[pc.Kind()]
		disadvantage := true
		if pos.EffectAt(shogi.COM, sq) > 0 {
			_, humAtkKind := shogi.NaitouAttacker(pos, shogi.HUM, sq)
			humPrice := shogi.PriceTableC[humAtkKind]
			disadvantage = humPrice < comPrice || (progressLevel != 0 && humPrice == comPrice)
		}
		if disadvantage {
			f(sq, comPrice)
		}
	}
}

// powerOf computes the weighted-material power figure for one side:
// 8 per rook/bishop/promoted-major, 4 per gold/silver, 2 per knight/lance,
// 1 per pawn, summed over board+hand, plus progress_ply/11 (doubled once
// that reaches 7).
func powerOf(pos *shogi.Position, side shogi.Side, progressPly int) uint8 {
	var total int

	count := func(pk shogi.PieceKind, weight int) {
		n := 0
		for sq := shogi.Square(0); sq < 81; sq++ {
			pc := pos.Board.At(sq)
			if pc.Side() == side && !pc.IsNone() && pc.Kind() == pk {
				n++
			}
		}
		if pk.IsHand() {
			n += int(pos.Hands[side].Count(pk))
		}
		total += n * weight
	}

	for _, pk := range []shogi.PieceKind{shogi.Rook, shogi.Bishop, shogi.Dragon, shogi.Horse} {
		count(pk, 8)
	}
	for _, pk := range []shogi.PieceKind{shogi.Gold, shogi.Silver, shogi.ProSilver} {
		count(pk, 4)
	}
	for _, pk := range []shogi.PieceKind{shogi.Knight, shogi.Lance, shogi.ProKnight, shogi.ProLance} {
		count(pk, 2)
	}
	count(shogi.Pawn, 1)
	count(shogi.ProPawn, 1)

	bonus := progressPly / 11
	total += bonus
	if bonus >= 7 {
		total += bonus
	}

	return uint8(total)
}

func rbpComCount(pos *shogi.Position) uint8 {
	n := 0
	for sq := shogi.Square(0); sq < 81; sq++ {
		pc := pos.Board.At(sq)
		if pc.IsNone() || pc.Side() != shogi.COM {
			continue
		}
		switch pc.Kind() {
		case shogi.Rook, shogi.Bishop, shogi.Dragon, shogi.Horse:
			n++
		}
	}
	return uint8(n)
}

// EvaluateRoot computes the root features before any candidate is tried.
func EvaluateRoot(pos *shogi.Position, progressPly, progressLevel int) RootEvaluation {
	var r RootEvaluation
	r.AdvSq = shogi.NoSquare
	r.DisadvSq = shogi.NoSquare

	iterAdvantageSquares(pos, progressLevel, func(sq shogi.Square, price uint8) {
		if price > r.AdvPrice || r.AdvSq == shogi.NoSquare {
			r.AdvPrice = price
			r.AdvSq = sq
		}
	})
	iterDisadvantageSquares(pos, progressLevel, func(sq shogi.Square, price uint8) {
		if price > r.DisadvPrice || r.DisadvSq == shogi.NoSquare {
			r.DisadvPrice = price
			r.DisadvSq = sq
		}
	})

	r.PowerHum = powerOf(pos, shogi.HUM, progressPly)
	r.PowerCom = powerOf(pos, shogi.COM, progressPly)
	r.RbpCom = rbpComCount(pos)
	r.KingSqHum = pos.KingSq[shogi.HUM]
	r.KingSqCom = pos.KingSq[shogi.COM]
	return r
}

func around25(center shogi.Square) []shogi.Square {
	var out []shogi.Square
	if center == shogi.NoSquare {
		return out
	}
	cc, cr := int(center.Col()), int(center.Row())
	for dc := -2; dc <= 2; dc++ {
		for dr := -2; dr <= 2; dr++ {
			c, rr := cc+dc, cr+dr
			if c < 0 || c > 8 || rr < 0 || rr > 8 {
				continue
			}
			out = append(out, shogi.NewSquare(shogi.Col(c), shogi.Row(rr)))
		}
	}
	return out
}

func around8(center shogi.Square) []shogi.Square {
	var out []shogi.Square
	if center == shogi.NoSquare {
		return out
	}
	for _, dir := range []shogi.Direction{shogi.DirR, shogi.DirRU, shogi.DirU, shogi.DirLU, shogi.DirL, shogi.DirLD, shogi.DirD, shogi.DirRD} {
		c, r := int(center.Col()), int(center.Row())
		dc, dr := dirDelta(dir)
		c += dc
		r += dr
		if c < 0 || c > 8 || r < 0 || r > 8 {
			continue
		}
		out = append(out, shogi.NewSquare(shogi.Col(c), shogi.Row(r)))
	}
	return out
}

func dirDelta(d shogi.Direction) (int, int) {
	switch d {
	case shogi.DirR:
		return 1, 0
	case shogi.DirRU:
		return 1, -1
	case shogi.DirU:
		return 0, -1
	case shogi.DirLU:
		return -1, -1
	case shogi.DirL:
		return -1, 0
	case shogi.DirLD:
		return -1, 1
	case shogi.DirD:
		return 0, 1
	case shogi.DirRD:
		return 1, 1
	}
	return 0, 0
}

func sumEffect(pos *shogi.Position, side shogi.Side, squares []shogi.Square) uint8 {
	var total int
	for _, sq := range squares {
		total += int(pos.EffectAt(side, sq))
	}
	return uint8(total)
}

// EvaluateLeaf computes every per-candidate feature after m has been
// applied to pos, using root king squares for king-safety features (this
// is intentional, see SPEC_FULL.md).
func EvaluateLeaf(pos *shogi.Position, m shogi.Move, um shogi.UndoableMove, root RootEvaluation, progressLevel int) LeafEvaluation {
	var l LeafEvaluation
	l.Move = m
	l.AdvSq = shogi.NoSquare
	l.DisadvSq = shogi.NoSquare

	if m.IsDrop() {
		l.MovedKind = m.DroppedKind()
	} else {
		l.MovedKind = um.Moved.Kind()
		if m.IsPromotion() {
			l.IsPromoted = true
		}
	}

	if !um.Captured.IsNone() {
		l.CapturePrice = shogi.PriceTableA[um.Captured.Kind()]
		l.CapturedKind = um.Captured.Kind()
	}

	exchangeSet := false
	iterAdvantageSquares(pos, progressLevel, func(sq shogi.Square, price uint8) {
		l.ScorePosi = wrapAdd8(int(l.ScorePosi), int(price))
		if price > l.AdvPrice || l.AdvSq == shogi.NoSquare {
			l.AdvPrice = price
			l.AdvSq = sq
		}
	})
	iterDisadvantageSquares(pos, progressLevel, func(sq shogi.Square, price uint8) {
		contribution := int(price)
		if exchangeSet {
			contribution--
		}
		l.ScoreNega = wrapAdd8(int(l.ScoreNega), contribution)
		if price > l.DisadvPrice || l.DisadvSq == shogi.NoSquare {
			l.DisadvPrice = price
			l.DisadvSq = sq
		}
		exchangeSet = true
	})

	l.HumKingThreatAround25 = sumEffect(pos, shogi.COM, around25(root.KingSqHum))
	l.ComKingSafetyAround25 = sumEffect(pos, shogi.COM, around25(root.KingSqCom))
	l.ComKingThreatAround25 = sumEffect(pos, shogi.HUM, around25(root.KingSqCom))

	a8 := around8(root.KingSqCom)
	l.ComKingThreatAround8 = sumEffect(pos, shogi.HUM, a8)
	choke := 0
	for _, sq := range a8 {
		if pos.EffectAt(shogi.HUM, sq) >= pos.EffectAt(shogi.COM, sq) {
			choke++
		}
	}
	l.ComKingChokeAround8 = uint8(choke)

	if !m.IsDrop() {
		l.SrcToComKing = uint8(shogi.NaitouSquareDistance(m.Src(), root.KingSqCom))
	} else {
		l.SrcToComKing = uint8(shogi.NaitouSquareDistance(shogi.NoSquare, root.KingSqCom))
	}
	l.DstToHumKing = uint8(shogi.NaitouSquareDistance(m.Dst(), root.KingSqHum))

	l.HumHanging = computeHumHanging(pos)
	l.ComPromoCount = countComPromoted(pos)
	l.ComLooseCount = countComLoose(pos)
	l.HumIsCheckmated = positionIsCheckmatedNaitou(pos, shogi.HUM)
	l.IsSuicide = pos.IsChecked(shogi.COM)

	l.PowerHum = root.PowerHum
	l.PowerCom = root.PowerCom
	l.RbpCom = root.RbpCom

	return l
}

func computeHumHanging(pos *shogi.Position) bool {
	for sq := shogi.Square(0); sq < 81; sq++ {
		pc := pos.Board.At(sq)
		if pc.IsNone() || pc.Side() != shogi.HUM {
			continue
		}
		if pc.Kind() != shogi.Pawn && pc.Kind() != shogi.Lance {
			continue
		}
		if !sq.Row().IsOnBoard() || sq.Row() < shogi.Row1 || sq.Row() > shogi.Row4 {
			continue
		}
		col, row := int(sq.Col()), int(sq.Row())-1
		if row < 0 {
			continue
		}
		fwd := shogi.NewSquare(shogi.Col(col), shogi.Row(row))
		if pos.EffectAt(shogi.HUM, fwd) > pos.EffectAt(shogi.COM, fwd) {
			return true
		}
	}
	return false
}

func countComPromoted(pos *shogi.Position) uint8 {
	n := 0
	for sq := shogi.Square(0); sq < 81; sq++ {
		pc := pos.Board.At(sq)
		if !pc.IsNone() && pc.Side() == shogi.COM && pc.Kind().IsPromoted() {
			n++
		}
	}
	return uint8(n)
}

func countComLoose(pos *shogi.Position) uint8 {
	n := 0
	for sq := shogi.Square(0); sq < 81; sq++ {
		pc := pos.Board.At(sq)
		if pc.IsNone() || pc.Side() != shogi.COM {
			continue
		}
		switch pc.Kind() {
		case shogi.Pawn, shogi.Lance, shogi.Knight, shogi.King:
			continue
		}
		if pos.EffectAt(shogi.COM, sq) == 0 {
			n++
		}
	}
	return uint8(n)
}
