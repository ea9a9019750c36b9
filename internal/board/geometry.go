package board

import "github.com/Santicm23/chess-lab/internal/chess"

// Raw movement shape predicates. These know nothing about occupancy;
// sliding-piece blocking is handled separately.

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Diagonal reports whether from and to share a diagonal.
func Diagonal(from, to chess.Square) bool {
	df, dr := abs(to.File-from.File), abs(to.Rank-from.Rank)
	return df == dr && df != 0
}

// Straight reports whether from and to share a rank or file.
func Straight(from, to chess.Square) bool {
	return (from.File == to.File) != (from.Rank == to.Rank)
}

// KnightJump reports whether from to to is an L-shape.
func KnightJump(from, to chess.Square) bool {
	df, dr := abs(to.File-from.File), abs(to.Rank-from.Rank)
	return (df == 1 && dr == 2) || (df == 2 && dr == 1)
}

// Adjacent reports whether to is one king step from from.
func Adjacent(from, to chess.Square) bool {
	df, dr := abs(to.File-from.File), abs(to.Rank-from.Rank)
	return df <= 1 && dr <= 1 && (df != 0 || dr != 0)
}

// PawnCapture reports whether a pawn of colour c on from attacks to:
// one square diagonally forward.
func PawnCapture(c chess.Colour, from, to chess.Square) bool {
	return abs(to.File-from.File) == 1 && to.Rank-from.Rank == c.Direction()
}

// PawnAdvance reports whether a pawn of colour c on from may push to to:
// one square forward on the same file, or two from its start rank.
// Blocking is not considered here.
func PawnAdvance(c chess.Colour, from, to chess.Square) bool {
	if from.File != to.File {
		return false
	}
	dr := to.Rank - from.Rank
	if dr == c.Direction() {
		return true
	}
	return dr == 2*c.Direction() && from.Rank == pawnStartRank(c)
}

func pawnStartRank(c chess.Colour) int {
	if c == chess.White {
		return 1
	}
	return 6
}

// unitStep returns the per-axis sign of the displacement from from to to.
func unitStep(from, to chess.Square) (int, int) {
	sign := func(n int) int {
		switch {
		case n > 0:
			return 1
		case n < 0:
			return -1
		}
		return 0
	}
	return sign(to.File - from.File), sign(to.Rank - from.Rank)
}
