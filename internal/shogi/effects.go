package shogi

// EffectCountBoard counts, per square, how many of a side's pieces attack
// it. Values wrap the same way the original's u8 counters do (capped
// overflow is never expected in a legal position, but nothing here clamps
// it either, matching the source).
type EffectCountBoard [81]uint8

// RangedEffectBoard records, per square, which ray directions currently
// reach it from a ranged attacker of each side (used to detect "shadow"
// effects: a ranged piece's attack extended one further square through a
// friendly piece immediately in front of it).
type RangedEffectBoard [81]DirectionSetPair

// sideDirs returns the six direction constants relative to a side's forward
// orientation: forward, forward-right, forward-left, backward,
// backward-right, backward-left. HUM's forward is toward row 1 (DirU); COM's
// forward is toward row 9 (DirD).
func sideDirs(s Side) (fwd, fwdR, fwdL, back, backR, backL Direction) {
	if s == HUM {
		return DirU, DirRU, DirLU, DirD, DirRD, DirLD
	}
	return DirD, DirRD, DirLD, DirU, DirRU, DirLU
}

// MeleeDirections returns the single-step attack directions for a piece
// kind's melee moves. Knight is excluded: its jump isn't a ray direction,
// see KnightJumpDeltas.
func MeleeDirections(pk PieceKind, s Side) []Direction {
	fwd, fwdR, fwdL, back, backR, backL := sideDirs(s)
	switch pk {
	case Pawn:
		return []Direction{fwd}
	case Silver:
		return []Direction{fwdR, fwd, fwdL, backR, backL}
	case Gold, ProPawn, ProLance, ProKnight, ProSilver:
		return []Direction{fwdR, fwd, fwdL, DirR, DirL, back}
	case King:
		return []Direction{fwdR, fwd, fwdL, DirR, DirL, backR, back, backL}
	case Horse:
		// Melee extension beyond the diagonal ranged attack: the four
		// orthogonal squares.
		return []Direction{fwd, DirR, DirL, back}
	case Dragon:
		// Melee extension beyond the orthogonal ranged attack: the four
		// diagonal squares.
		return []Direction{fwdR, fwdL, backR, backL}
	}
	return nil
}

// KnightJumpDeltas returns the two (dcol, drow) offsets a knight of side s
// attacks: two rows forward, one column to either side.
func KnightJumpDeltas(s Side) [2][2]int {
	rowStep := -2
	if s == COM {
		rowStep = 2
	}
	return [2][2]int{{1, rowStep}, {-1, rowStep}}
}

// RangedDirections returns the ray directions a piece kind projects as a
// ranged attacker, in the original generator's emission order. Bishop and
// rook (and their promoted forms) are side-independent; lance only attacks
// forward.
func RangedDirections(pk PieceKind, s Side) []Direction {
	switch pk {
	case Lance:
		fwd, _, _, _, _, _ := sideDirs(s)
		return []Direction{fwd}
	case Bishop, Horse:
		return []Direction{DirLU, DirRU, DirLD, DirRD}
	case Rook, Dragon:
		return []Direction{DirU, DirD, DirL, DirR}
	}
	return nil
}

// fromPieceSupported returns the direction set a piece kind "supports" from
// its own square: the directions along which it could recapture or hold a
// square one step beyond itself. A friendly ranged ray blocked by a piece
// only extends its shadow effect one further square when the ray direction
// is in this set. Knight and king support nothing — a ray blocked by either
// stops dead, matching shogi.rs's from_piece_supported table.
func fromPieceSupported(pk PieceKind, side Side) DirectionSet {
	switch pk {
	case Pawn, Lance:
		fwd, _, _, _, _, _ := sideDirs(side)
		return DirSetOf(fwd)
	case Silver, Gold, ProPawn, ProLance, ProKnight, ProSilver:
		return DirSetOf(MeleeDirections(pk, side)...)
	case Bishop:
		return DirSetOf(DirLU, DirRU, DirLD, DirRD)
	case Rook:
		return DirSetOf(DirU, DirD, DirL, DirR)
	case Horse, Dragon:
		return DirSetOf(DirR, DirRU, DirU, DirLU, DirL, DirLD, DirD, DirRD)
	}
	return 0
}

// DirectionSetFromPieceRanged returns the DirectionSet a piece kind projects
// as a ranged attacker for side s (empty for non-ranged kinds).
func DirectionSetFromPieceRanged(pk PieceKind, s Side) DirectionSet {
	dirs := RangedDirections(pk, s)
	if dirs == nil {
		return 0
	}
	return DirSetOf(dirs...)
}

// DirectionSetPairFromPieceRanged builds the single-side DirectionSetPair a
// piece contributes as a ranged attacker.
func DirectionSetPairFromPieceRanged(p Piece) DirectionSetPair {
	if p.IsNone() {
		return 0
	}
	dirs := DirectionSetFromPieceRanged(p.Kind(), p.Side())
	if dirs.IsEmpty() {
		return 0
	}
	return DirectionSetPairFromPart(p.Side(), dirs)
}
