package book

// Book data: eight formations' branch tables and move lists, transcribed
// verbatim from the original console's fixed opening-book dataset. This is
// finite literal shogi data, not something to reinterpret or compress.

import "github.com/hailam/naitou-shogi/internal/shogi"

var bookBranchNakabisha = []branchEntry{
	bChange(shogi.SQ22, shogi.Bishop, Kakugawari, 5),
	bChange(shogi.SQ22, shogi.Horse, Kakugawari, 5),
	bMove(shogi.SQ55, shogi.Bishop, shogi.SQ53, shogi.SQ54),
	bMove(shogi.SQ46, shogi.Bishop, shogi.SQ44, shogi.SQ45),
	bMove(shogi.SQ46, shogi.Silver, shogi.SQ44, shogi.SQ45),
	bMove(shogi.SQ26, shogi.Silver, shogi.SQ41, shogi.SQ32),
	bMove(shogi.SQ46, shogi.Pawn, shogi.SQ22, shogi.SQ33),
	bMove(shogi.SQ96, shogi.Pawn, shogi.SQ93, shogi.SQ94),
	bMove(shogi.SQ25, shogi.Pawn, shogi.SQ22, shogi.SQ33),
	bMove(shogi.SQ35, shogi.Silver, shogi.SQ44, shogi.SQ45),
}

var bookBranchSikenbisha = []branchEntry{
	bChange(shogi.SQ22, shogi.Bishop, Kakugawari, 5),
	bChange(shogi.SQ22, shogi.Horse, Kakugawari, 5),
	bMove(shogi.SQ55, shogi.Bishop, shogi.SQ53, shogi.SQ54),
	bMove(shogi.SQ46, shogi.Bishop, shogi.SQ44, shogi.SQ45),
	bMove(shogi.SQ46, shogi.Silver, shogi.SQ44, shogi.SQ45),
	bMove(shogi.SQ26, shogi.Silver, shogi.SQ42, shogi.SQ32),
	bMove(shogi.SQ46, shogi.Pawn, shogi.SQ22, shogi.SQ33),
	bMove(shogi.SQ96, shogi.Pawn, shogi.SQ93, shogi.SQ94),
	bMove(shogi.SQ25, shogi.Pawn, shogi.SQ22, shogi.SQ33),
	bMove(shogi.SQ35, shogi.Silver, shogi.SQ44, shogi.SQ45),
}

var bookBranchKakugawari = []branchEntry{
	bChange(shogi.SQ45, shogi.Bishop, Sujichigai, 5),
	bChange(shogi.SQ56, shogi.Bishop, Sujichigai, 5),
	bMove(shogi.SQ96, shogi.Pawn, shogi.SQ93, shogi.SQ94),
}

var bookBranchSujichigai = []branchEntry{
	bMove(shogi.SQ96, shogi.Pawn, shogi.SQ93, shogi.SQ94),
	bMove(shogi.SQ16, shogi.Pawn, shogi.SQ13, shogi.SQ14),
}

var bookBranchHumHishaochi = []branchEntry{
	bMove(shogi.SQ16, shogi.Pawn, shogi.SQ13, shogi.SQ14),
	bMove(shogi.SQ96, shogi.Pawn, shogi.SQ93, shogi.SQ94),
	bMove(shogi.SQ22, shogi.Bishop, shogi.SQ31, shogi.SQ22),
	bMove(shogi.SQ22, shogi.Horse, shogi.SQ31, shogi.SQ22),
}

var bookBranchHumNimaiochi = []branchEntry{
	bMove(shogi.SQ56, shogi.Pawn, shogi.SQ53, shogi.SQ54),
}

var bookBranchComHishaochi = []branchEntry{
	bMove(shogi.SQ25, shogi.Pawn, shogi.SQ22, shogi.SQ33),
	bMove(shogi.SQ96, shogi.Pawn, shogi.SQ93, shogi.SQ94),
	bMove(shogi.SQ16, shogi.Pawn, shogi.SQ13, shogi.SQ14),
}

var bookBranchComNimaiochi = []branchEntry{
	bMove(shogi.SQ16, shogi.Pawn, shogi.SQ13, shogi.SQ14),
	bMove(shogi.SQ96, shogi.Pawn, shogi.SQ93, shogi.SQ94),
	bMove(shogi.SQ56, shogi.Pawn, shogi.SQ53, shogi.SQ54),
	bMove(shogi.SQ35, shogi.Pawn, shogi.SQ31, shogi.SQ22),
}

var bookMovesNakabisha = []movesEntry{
	mv(shogi.SQ33, shogi.SQ34), mv(shogi.SQ43, shogi.SQ44), mv(shogi.SQ31, shogi.SQ42), mv(shogi.SQ82, shogi.SQ52),
	mv(shogi.SQ42, shogi.SQ43), mv(shogi.SQ51, shogi.SQ62), mv(shogi.SQ62, shogi.SQ72), mv(shogi.SQ71, shogi.SQ62),
	mv(shogi.SQ22, shogi.SQ33), mv(shogi.SQ53, shogi.SQ54), mv(shogi.SQ63, shogi.SQ64), mv(shogi.SQ62, shogi.SQ63),
	mv(shogi.SQ61, shogi.SQ62), mv(shogi.SQ41, shogi.SQ42), mv(shogi.SQ42, shogi.SQ53), mv(shogi.SQ52, shogi.SQ22),
	mv(shogi.SQ23, shogi.SQ24), mv(shogi.SQ24, shogi.SQ25), mv(shogi.SQ44, shogi.SQ45),
}

var bookMovesSikenbisha = []movesEntry{
	mv(shogi.SQ33, shogi.SQ34), mv(shogi.SQ43, shogi.SQ44), mv(shogi.SQ31, shogi.SQ32), mv(shogi.SQ82, shogi.SQ42),
	mv(shogi.SQ32, shogi.SQ43), mv(shogi.SQ51, shogi.SQ62), mv(shogi.SQ62, shogi.SQ72), mv(shogi.SQ72, shogi.SQ82),
	mv(shogi.SQ71, shogi.SQ72), mv(shogi.SQ41, shogi.SQ52), mv(shogi.SQ22, shogi.SQ33), mv(shogi.SQ63, shogi.SQ64),
	mv(shogi.SQ52, shogi.SQ63), mv(shogi.SQ73, shogi.SQ74), mv(shogi.SQ42, shogi.SQ41), mv(shogi.SQ93, shogi.SQ94),
	mv(shogi.SQ44, shogi.SQ45),
}

var bookMovesKakugawari = []movesEntry{
	mv(shogi.SQ33, shogi.SQ34), mv(shogi.SQ31, shogi.SQ22), mv(shogi.SQ22, shogi.SQ33), mv(shogi.SQ71, shogi.SQ62),
	mv(shogi.SQ83, shogi.SQ84), mv(shogi.SQ41, shogi.SQ32), mv(shogi.SQ84, shogi.SQ85), mv(shogi.SQ61, shogi.SQ52),
	mv(shogi.SQ51, shogi.SQ41), mv(shogi.SQ63, shogi.SQ64), mv(shogi.SQ62, shogi.SQ63), mv(shogi.SQ73, shogi.SQ74),
	mv(shogi.SQ41, shogi.SQ31), mv(shogi.SQ31, shogi.SQ22), mv(shogi.SQ43, shogi.SQ44), mv(shogi.SQ52, shogi.SQ43),
	mv(shogi.SQ93, shogi.SQ94), mv(shogi.SQ81, shogi.SQ73), mv(shogi.SQ64, shogi.SQ65), mv(shogi.SQ63, shogi.SQ54),
}

var bookMovesSujichigai = []movesEntry{
	mv(shogi.SQ33, shogi.SQ34), mv(shogi.SQ31, shogi.SQ22), mv(shogi.SQ61, shogi.SQ52), mv(shogi.SQ41, shogi.SQ32),
	mv(shogi.SQ22, shogi.SQ33), mv(shogi.SQ71, shogi.SQ62), mv(shogi.SQ83, shogi.SQ84), mv(shogi.SQ84, shogi.SQ85),
	mv(shogi.SQ51, shogi.SQ41), mv(shogi.SQ63, shogi.SQ64), mv(shogi.SQ62, shogi.SQ63), mv(shogi.SQ53, shogi.SQ54),
	mv(shogi.SQ73, shogi.SQ74), mv(shogi.SQ81, shogi.SQ73), mv(shogi.SQ93, shogi.SQ94), mv(shogi.SQ13, shogi.SQ14),
	mv(shogi.SQ33, shogi.SQ44), mv(shogi.SQ64, shogi.SQ65),
}

var bookMovesHumHishaochi = []movesEntry{
	mv(shogi.SQ33, shogi.SQ34), mv(shogi.SQ83, shogi.SQ84), mv(shogi.SQ84, shogi.SQ85), mv(shogi.SQ41, shogi.SQ32),
	mv(shogi.SQ71, shogi.SQ62), mv(shogi.SQ61, shogi.SQ52), mv(shogi.SQ51, shogi.SQ41), mv(shogi.SQ53, shogi.SQ54),
	mv(shogi.SQ73, shogi.SQ74), mv(shogi.SQ31, shogi.SQ42), mv(shogi.SQ63, shogi.SQ64), mv(shogi.SQ62, shogi.SQ63),
	mv(shogi.SQ81, shogi.SQ73), mv(shogi.SQ93, shogi.SQ94), mv(shogi.SQ13, shogi.SQ14), mv(shogi.SQ22, shogi.SQ33),
	mv(shogi.SQ64, shogi.SQ65),
}

var bookMovesHumNimaiochi = []movesEntry{
	mv(shogi.SQ33, shogi.SQ34), mv(shogi.SQ63, shogi.SQ64), mv(shogi.SQ64, shogi.SQ65), mv(shogi.SQ82, shogi.SQ62),
	mv(shogi.SQ73, shogi.SQ74), mv(shogi.SQ74, shogi.SQ75), mv(shogi.SQ71, shogi.SQ72), mv(shogi.SQ72, shogi.SQ73),
	mv(shogi.SQ41, shogi.SQ32), mv(shogi.SQ61, shogi.SQ52), mv(shogi.SQ51, shogi.SQ41), mv(shogi.SQ31, shogi.SQ42),
	mv(shogi.SQ53, shogi.SQ54), mv(shogi.SQ73, shogi.SQ74), mv(shogi.SQ81, shogi.SQ73), mv(shogi.SQ93, shogi.SQ94),
	mv(shogi.SQ13, shogi.SQ14), mv(shogi.SQ62, shogi.SQ61), mv(shogi.SQ75, shogi.SQ76),
}

var bookMovesComHishaochi = []movesEntry{
	mv(shogi.SQ33, shogi.SQ34), mv(shogi.SQ43, shogi.SQ44), mv(shogi.SQ41, shogi.SQ32), mv(shogi.SQ31, shogi.SQ42),
	mv(shogi.SQ42, shogi.SQ43), mv(shogi.SQ51, shogi.SQ62), mv(shogi.SQ62, shogi.SQ72), mv(shogi.SQ71, shogi.SQ62),
	mv(shogi.SQ53, shogi.SQ54), mv(shogi.SQ13, shogi.SQ14), mv(shogi.SQ93, shogi.SQ94), mv(shogi.SQ63, shogi.SQ64),
	mv(shogi.SQ62, shogi.SQ63), mv(shogi.SQ61, shogi.SQ62), mv(shogi.SQ73, shogi.SQ74), mv(shogi.SQ22, shogi.SQ33),
}

var bookMovesComNimaiochi = []movesEntry{
	mv(shogi.SQ41, shogi.SQ32), mv(shogi.SQ71, shogi.SQ62), mv(shogi.SQ53, shogi.SQ54), mv(shogi.SQ62, shogi.SQ53),
	mv(shogi.SQ61, shogi.SQ62), mv(shogi.SQ63, shogi.SQ64), mv(shogi.SQ62, shogi.SQ63), mv(shogi.SQ73, shogi.SQ74),
	mv(shogi.SQ51, shogi.SQ62), mv(shogi.SQ13, shogi.SQ14), mv(shogi.SQ93, shogi.SQ94), mv(shogi.SQ81, shogi.SQ73),
	mv(shogi.SQ31, shogi.SQ42), mv(shogi.SQ64, shogi.SQ65),
}
