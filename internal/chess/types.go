// Package chess provides the core value types shared by the board, engine,
// and history packages: colours, pieces, squares, moves, castling rights,
// and game status.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Direction returns +1 for White and -1 for Black (pawn advance direction).
func (c Colour) Direction() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index for the colour (0 or 7).
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return 7
}

// PromotionRank returns the farthest rank index for the colour's pawns.
func (c Colour) PromotionRank() int {
	if c == White {
		return 7
	}
	return 0
}

// PieceType represents a chess piece kind. The zero value NoPiece marks
// optional fields (no capture, no promotion).
type PieceType int

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes = 6
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"NoPiece", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the uppercase algebraic letter of a piece type.
// Pawns and NoPiece have no letter and return 0.
func (p PieceType) Letter() byte {
	switch p {
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	}
	return 0
}

// PieceTypeFromLetter maps an uppercase algebraic letter to a piece type.
func PieceTypeFromLetter(b byte) (PieceType, bool) {
	switch b {
	case 'P':
		return Pawn, true
	case 'N':
		return Knight, true
	case 'B':
		return Bishop, true
	case 'R':
		return Rook, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	}
	return NoPiece, false
}

// Piece is a coloured piece.
type Piece struct {
	Colour Colour
	Type   PieceType
}

// FENLetter returns the piece's FEN letter: uppercase for White,
// lowercase for Black.
func (p Piece) FENLetter() byte {
	letters := [...]byte{NoPiece: '?', Pawn: 'p', Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q', King: 'k'}
	l := letters[p.Type]
	if p.Colour == White {
		l -= 'a' - 'A'
	}
	return l
}

// PieceFromFENLetter maps a FEN letter to a coloured piece.
func PieceFromFENLetter(b byte) (Piece, bool) {
	colour := Black
	if b >= 'A' && b <= 'Z' {
		colour = White
		b += 'a' - 'A'
	}
	switch b {
	case 'p':
		return Piece{colour, Pawn}, true
	case 'n':
		return Piece{colour, Knight}, true
	case 'b':
		return Piece{colour, Bishop}, true
	case 'r':
		return Piece{colour, Rook}, true
	case 'q':
		return Piece{colour, Queen}, true
	case 'k':
		return Piece{colour, King}, true
	}
	return Piece{}, false
}
