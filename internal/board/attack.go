package board

import (
	"github.com/Santicm23/chess-lab/internal/chess"
	"github.com/Santicm23/chess-lab/internal/errors"
)

// SquaresBetweenOccupied walks one square at a time from from toward to
// and reports whether any strictly intermediate square is occupied.
// Fails with ErrUnalignedSquares when the squares share no rank, file,
// or diagonal.
func (b *Board) SquaresBetweenOccupied(from, to chess.Square) (bool, error) {
	if !Diagonal(from, to) && !Straight(from, to) {
		return false, errors.Wrapf(errors.ErrUnalignedSquares, "%v to %v", from, to)
	}
	return b.rayBlocked(from, to), nil
}

// rayBlocked assumes from and to are aligned.
func (b *Board) rayBlocked(from, to chess.Square) bool {
	df, dr := unitStep(from, to)
	for sq := chess.Sq(from.File+df, from.Rank+dr); sq != to; sq = chess.Sq(sq.File+df, sq.Rank+dr) {
		if b.IsOccupied(sq) {
			return true
		}
	}
	return false
}

// CanCapture reports whether the piece on from could capture on to going
// by raw movement shape: same-colour destinations are excluded, sliding
// pieces need a clear ray, and pawns capture diagonally only. Whether to
// actually holds a piece is not considered, so this doubles as the
// "attacks this square" test. Fails with ErrSquareEmpty if from is empty.
func (b *Board) CanCapture(from, to chess.Square) (bool, error) {
	p, ok := b.PieceAt(from)
	if !ok {
		return false, errors.Wrapf(errors.ErrSquareEmpty, "capture from %v", from)
	}
	if victim, ok := b.PieceAt(to); ok && victim.Colour == p.Colour {
		return false, nil
	}

	switch p.Type {
	case chess.Pawn:
		return PawnCapture(p.Colour, from, to), nil
	case chess.Knight:
		return KnightJump(from, to), nil
	case chess.King:
		return Adjacent(from, to), nil
	case chess.Bishop:
		return Diagonal(from, to) && !b.rayBlocked(from, to), nil
	case chess.Rook:
		return Straight(from, to) && !b.rayBlocked(from, to), nil
	case chess.Queen:
		return (Diagonal(from, to) || Straight(from, to)) && !b.rayBlocked(from, to), nil
	}
	return false, nil
}

// IsAttacked reports whether any piece of colour by can capture on sq.
func (b *Board) IsAttacked(sq chess.Square, by chess.Colour) bool {
	for _, from := range b.FindAll(by) {
		if ok, err := b.CanCapture(from, sq); err == nil && ok {
			return true
		}
	}
	return false
}
