package board

import (
	"fmt"
	"strings"

	"github.com/Santicm23/chess-lab/internal/chess"
	"github.com/Santicm23/chess-lab/internal/errors"
)

// Placement renders the board as the first FEN field: ranks 8 down to 1
// separated by '/', files a to h, runs of empty squares as digits.
func (b *Board) Placement() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			if p, ok := b.PieceAt(chess.Sq(file, rank)); ok {
				if empty > 0 {
					sb.WriteByte(byte('0' + empty))
					empty = 0
				}
				sb.WriteByte(p.FENLetter())
			} else {
				empty++
			}
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// FromPlacement parses the first FEN field into a Board. Each of the 8
// ranks must account for exactly 8 squares, using the 6 piece letters
// (case gives the colour) or the digits 1-8.
func FromPlacement(field string) (Board, error) {
	var b Board
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return Board{}, fmt.Errorf("placement has %d ranks: %w", len(ranks), errors.ErrInvalidFEN)
	}
	for i, rankText := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankText); j++ {
			c := rankText[j]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				p, ok := chess.PieceFromFENLetter(c)
				if !ok {
					return Board{}, fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN)
				}
				if file > 7 {
					return Board{}, fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
				}
				if err := b.SetPiece(p, chess.Sq(file, rank)); err != nil {
					return Board{}, err
				}
				file++
			}
		}
		if file != 8 {
			return Board{}, fmt.Errorf("rank %d has %d squares: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return b, nil
}

// Diagram renders an ASCII board with rank and file labels, rank 8 on
// top, for terminal display.
func (b *Board) Diagram() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			if p, ok := b.PieceAt(chess.Sq(file, rank)); ok {
				sb.WriteByte(p.FENLetter())
			} else {
				sb.WriteByte('.')
			}
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
