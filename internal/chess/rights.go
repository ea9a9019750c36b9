package chess

import "strings"

// CastlingRights is a 4-bit mask of the remaining castling options,
// high to low: White kingside, White queenside, Black kingside,
// Black queenside.
type CastlingRights uint8

const (
	CastleWhiteKingside  CastlingRights = 0b1000
	CastleWhiteQueenside CastlingRights = 0b0100
	CastleBlackKingside  CastlingRights = 0b0010
	CastleBlackQueenside CastlingRights = 0b0001

	AllCastlingRights CastlingRights = 0b1111
	NoCastlingRights  CastlingRights = 0
)

// CastleSide distinguishes the two castling wings.
type CastleSide int

const (
	KingSide CastleSide = iota
	QueenSide
)

// String returns "O-O" or "O-O-O".
func (s CastleSide) String() string {
	if s == KingSide {
		return "O-O"
	}
	return "O-O-O"
}

// RightFor returns the single rights bit for a colour and wing.
func RightFor(c Colour, side CastleSide) CastlingRights {
	switch {
	case c == White && side == KingSide:
		return CastleWhiteKingside
	case c == White && side == QueenSide:
		return CastleWhiteQueenside
	case c == Black && side == KingSide:
		return CastleBlackKingside
	default:
		return CastleBlackQueenside
	}
}

// RightsFor returns both rights bits for a colour.
func RightsFor(c Colour) CastlingRights {
	if c == White {
		return CastleWhiteKingside | CastleWhiteQueenside
	}
	return CastleBlackKingside | CastleBlackQueenside
}

// Has reports whether every bit of r2 is present in r.
func (r CastlingRights) Has(r2 CastlingRights) bool {
	return r&r2 == r2
}

// Clear returns r with the bits of r2 removed.
func (r CastlingRights) Clear(r2 CastlingRights) CastlingRights {
	return r &^ r2
}

// String returns the FEN castling field ("KQkq" subset, or "-").
func (r CastlingRights) String() string {
	if r == NoCastlingRights {
		return "-"
	}
	var sb strings.Builder
	if r.Has(CastleWhiteKingside) {
		sb.WriteByte('K')
	}
	if r.Has(CastleWhiteQueenside) {
		sb.WriteByte('Q')
	}
	if r.Has(CastleBlackKingside) {
		sb.WriteByte('k')
	}
	if r.Has(CastleBlackQueenside) {
		sb.WriteByte('q')
	}
	return sb.String()
}

// ParseCastlingRights parses the FEN castling field. The letters must
// appear in KQkq order without repeats.
func ParseCastlingRights(field string) (CastlingRights, bool) {
	if field == "-" {
		return NoCastlingRights, true
	}
	if field == "" {
		return NoCastlingRights, false
	}
	bits := map[byte]CastlingRights{
		'K': CastleWhiteKingside,
		'Q': CastleWhiteQueenside,
		'k': CastleBlackKingside,
		'q': CastleBlackQueenside,
	}
	var r, prev CastlingRights
	for i := 0; i < len(field); i++ {
		bit, ok := bits[field[i]]
		if !ok || (prev != 0 && bit >= prev) {
			return NoCastlingRights, false
		}
		r |= bit
		prev = bit
	}
	return r, true
}
