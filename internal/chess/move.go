package chess

import (
	"strings"

	"github.com/Santicm23/chess-lab/internal/errors"
)

// MoveKind tags the three structurally distinct move shapes.
type MoveKind int

const (
	NormalMove MoveKind = iota
	CastleMove
	EnPassantMove
)

// Move is a fully resolved move. All fields are comparable so history
// nodes can be matched with ==.
//
// The constructors enforce the structural invariants: the capture flag is
// set exactly when a captured piece is present, promotion applies only to
// pawns, castling only to kings with a rook origin, and en passant only
// to pawns.
type Move struct {
	Piece Piece
	From  Square
	To    Square
	Kind  MoveKind

	Capture   bool
	Captured  PieceType // NoPiece unless Capture
	Promotion PieceType // NoPiece unless promoting

	Side     CastleSide // castle moves only
	RookFrom Square     // castle moves only; NoSquare otherwise

	// Disambiguation flags for notation rendering.
	NeedFile bool
	NeedRank bool

	Check     bool
	Checkmate bool
}

// NewNormalMove builds a plain or promoting move. captured and promotion
// may be NoPiece.
func NewNormalMove(p Piece, from, to Square, captured, promotion PieceType) (Move, error) {
	if !from.Valid() || !to.Valid() {
		return Move{}, errors.Wrap(errors.ErrInvalidMove, "square off the board")
	}
	if promotion != NoPiece && p.Type != Pawn {
		return Move{}, errors.Wrap(errors.ErrInvalidMove, "promotion of a non-pawn")
	}
	if promotion == Pawn || promotion == King {
		return Move{}, errors.Wrap(errors.ErrInvalidMove, "promotion to pawn or king")
	}
	return Move{
		Piece:     p,
		From:      from,
		To:        to,
		Kind:      NormalMove,
		Capture:   captured != NoPiece,
		Captured:  captured,
		Promotion: promotion,
		RookFrom:  NoSquare,
	}, nil
}

// NewCastleMove builds a castling move for a king, recording the rook's
// origin square.
func NewCastleMove(p Piece, from, to Square, side CastleSide, rookFrom Square) (Move, error) {
	if p.Type != King {
		return Move{}, errors.Wrap(errors.ErrInvalidMove, "castle by a non-king")
	}
	if !from.Valid() || !to.Valid() || !rookFrom.Valid() {
		return Move{}, errors.Wrap(errors.ErrInvalidMove, "square off the board")
	}
	return Move{
		Piece:    p,
		From:     from,
		To:       to,
		Kind:     CastleMove,
		Side:     side,
		RookFrom: rookFrom,
	}, nil
}

// NewEnPassantMove builds an en passant capture. The captured pawn is
// implied and always recorded.
func NewEnPassantMove(p Piece, from, to Square) (Move, error) {
	if p.Type != Pawn {
		return Move{}, errors.Wrap(errors.ErrInvalidMove, "en passant by a non-pawn")
	}
	if !from.Valid() || !to.Valid() {
		return Move{}, errors.Wrap(errors.ErrInvalidMove, "square off the board")
	}
	return Move{
		Piece:    p,
		From:     from,
		To:       to,
		Kind:     EnPassantMove,
		Capture:  true,
		Captured: Pawn,
		RookFrom: NoSquare,
	}, nil
}

// String renders the move in standard algebraic notation, including any
// required disambiguation and the check/checkmate suffix. The rendered
// text re-parses through the same notation grammar that produced it.
func (m Move) String() string {
	var sb strings.Builder

	switch {
	case m.Kind == CastleMove:
		sb.WriteString(m.Side.String())
	case m.Piece.Type == Pawn:
		if m.Capture {
			sb.WriteByte(byte('a' + m.From.File))
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.Promotion != NoPiece {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
	default:
		sb.WriteByte(m.Piece.Type.Letter())
		if m.NeedFile {
			sb.WriteByte(byte('a' + m.From.File))
		}
		if m.NeedRank {
			sb.WriteByte(byte('1' + m.From.Rank))
		}
		if m.Capture {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
	}

	if m.Checkmate {
		sb.WriteByte('#')
	} else if m.Check {
		sb.WriteByte('+')
	}
	return sb.String()
}
