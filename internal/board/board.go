// Package board implements the bitboard piece-placement store. It knows
// raw piece movement shapes and spatial queries, but nothing about turn
// order, check, or any other game rule.
package board

import (
	"math/bits"

	"github.com/Santicm23/chess-lab/internal/chess"
	"github.com/Santicm23/chess-lab/internal/errors"
)

// Board holds one 64-bit occupancy mask per (colour, piece type). The bit
// index of a square is rank*8 + file, so a1 is bit 0 and h8 is bit 63.
//
// The twelve masks are pairwise disjoint. The mutation primitives keep
// that invariant as long as callers respect their contracts; they do no
// legality checking of any kind.
//
// Board is a value type: copying it yields an independent position, which
// is how legality simulation works.
type Board struct {
	masks [2][chess.NumPieceTypes]uint64
}

func maskIndex(t chess.PieceType) int {
	return int(t) - 1
}

func (b *Board) mask(p chess.Piece) *uint64 {
	return &b.masks[p.Colour][maskIndex(p.Type)]
}

// IsOccupied reports whether any piece sits on sq.
func (b *Board) IsOccupied(sq chess.Square) bool {
	return b.occupied()&(1<<uint(sq.Bit())) != 0
}

// PieceAt returns the piece on sq, if any.
func (b *Board) PieceAt(sq chess.Square) (chess.Piece, bool) {
	bit := uint64(1) << uint(sq.Bit())
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for i, m := range b.masks[colour] {
			if m&bit != 0 {
				return chess.Piece{Colour: colour, Type: chess.PieceType(i + 1)}, true
			}
		}
	}
	return chess.Piece{}, false
}

// SetPiece places p on sq. Fails with ErrSquareOccupied if sq is taken.
func (b *Board) SetPiece(p chess.Piece, sq chess.Square) error {
	if b.IsOccupied(sq) {
		return errors.Wrapf(errors.ErrSquareOccupied, "set %v %v on %v", p.Colour, p.Type, sq)
	}
	*b.mask(p) |= 1 << uint(sq.Bit())
	return nil
}

// RemovePiece removes and returns the piece on sq. Fails with
// ErrSquareEmpty if there is none.
func (b *Board) RemovePiece(sq chess.Square) (chess.Piece, error) {
	p, ok := b.PieceAt(sq)
	if !ok {
		return chess.Piece{}, errors.Wrapf(errors.ErrSquareEmpty, "remove from %v", sq)
	}
	*b.mask(p) &^= 1 << uint(sq.Bit())
	return p, nil
}

// MovePiece moves the piece on from to to. Whatever sits on to is
// silently removed first; this primitive does no capture or legality
// checking. Fails with ErrSquareEmpty if from is empty.
func (b *Board) MovePiece(from, to chess.Square) error {
	p, err := b.RemovePiece(from)
	if err != nil {
		return err
	}
	if b.IsOccupied(to) {
		if _, err := b.RemovePiece(to); err != nil {
			return err
		}
	}
	return b.SetPiece(p, to)
}

// Find returns the squares holding pieces of the given type and colour,
// in increasing bit-index order (a1..h8, file varying fastest).
func (b *Board) Find(t chess.PieceType, c chess.Colour) []chess.Square {
	var out []chess.Square
	for m := b.masks[c][maskIndex(t)]; m != 0; m &= m - 1 {
		out = append(out, chess.SquareFromBit(bits.TrailingZeros64(m)))
	}
	return out
}

// FindAll returns every square holding a piece of the given colour,
// grouped by type in the fixed order pawn, knight, bishop, rook, queen,
// king.
func (b *Board) FindAll(c chess.Colour) []chess.Square {
	var out []chess.Square
	for t := chess.Pawn; t <= chess.King; t++ {
		out = append(out, b.Find(t, c)...)
	}
	return out
}

// Count returns the number of pieces of the given type and colour.
func (b *Board) Count(t chess.PieceType, c chess.Colour) int {
	return bits.OnesCount64(b.masks[c][maskIndex(t)])
}

func (b *Board) occupied() uint64 {
	var all uint64
	for c := range b.masks {
		for _, m := range b.masks[c] {
			all |= m
		}
	}
	return all
}
