package chess

import (
	"fmt"

	"github.com/Santicm23/chess-lab/internal/errors"
)

// Square identifies a board square by file (0-7, a-h) and rank (0-7, 1-8).
type Square struct {
	File int
	Rank int
}

// NoSquare is the zero-ish sentinel for "no square", used where a square
// field is optional (en passant target, rook origin on non-castle moves).
var NoSquare = Square{File: -1, Rank: -1}

// Sq builds a Square from file and rank indices.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether both components are in [0,7].
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < 8 && s.Rank >= 0 && s.Rank < 8
}

// Bit returns the square's bitboard index (rank*8 + file, a1=0, h8=63).
func (s Square) Bit() int {
	return s.Rank*8 + s.File
}

// SquareFromBit is the inverse of Bit.
func SquareFromBit(i int) Square {
	return Square{File: i % 8, Rank: i / 8}
}

// String returns the canonical form, e.g. "e4". Invalid squares render as "-".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// ParseSquare parses the canonical two-character form.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 || text[0] < 'a' || text[0] > 'h' || text[1] < '1' || text[1] > '8' {
		return NoSquare, errors.Wrap(errors.ErrInvalidMove, fmt.Sprintf("bad square %q", text))
	}
	return Square{File: int(text[0] - 'a'), Rank: int(text[1] - '1')}, nil
}

// Offset returns the square displaced by (df, dr) files and ranks.
// The second result is false when the displacement leaves the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	out := Square{File: s.File + df, Rank: s.Rank + dr}
	return out, out.Valid()
}
