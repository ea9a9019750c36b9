package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Santicm23/chess-lab/internal/chess"
	"github.com/Santicm23/chess-lab/internal/errors"
)

// MoveIntent is a tokenized algebraic move before resolution: the piece
// kind, optional source hints, destination, and the notation's claims
// about capture, promotion, and castling. Check and checkmate suffixes
// are stripped here and recomputed after the move applies; they are
// never trusted from input.
type MoveIntent struct {
	Piece     chess.PieceType
	FromFile  int // -1 when the notation gives no file hint
	FromRank  int // -1 when the notation gives no rank hint
	To        chess.Square
	Capture   bool
	Promotion chess.PieceType
	Castle    bool
	Side      chess.CastleSide
}

var (
	sanPattern    = regexp.MustCompile(`^([NBRQK])?([a-h])?([1-8])?(x)?([a-h][1-8])(?:=([NBRQ]))?([+#])?$`)
	castlePattern = regexp.MustCompile(`^O-O(-O)?([+#])?$`)
)

// ParseMoveText tokenizes one algebraic move. It validates shape only;
// whether the move is playable is the resolver's concern.
func ParseMoveText(text string) (MoveIntent, error) {
	trimmed := strings.TrimSpace(text)

	if m := castlePattern.FindStringSubmatch(trimmed); m != nil {
		side := chess.KingSide
		if m[1] == "-O" {
			side = chess.QueenSide
		}
		return MoveIntent{
			Piece:    chess.King,
			FromFile: -1,
			FromRank: -1,
			To:       chess.NoSquare,
			Castle:   true,
			Side:     side,
		}, nil
	}

	m := sanPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return MoveIntent{}, fmt.Errorf("unrecognized move text %q: %w", text, errors.ErrInvalidMove)
	}

	intent := MoveIntent{Piece: chess.Pawn, FromFile: -1, FromRank: -1}
	if m[1] != "" {
		intent.Piece, _ = chess.PieceTypeFromLetter(m[1][0])
	}
	if m[2] != "" {
		intent.FromFile = int(m[2][0] - 'a')
	}
	if m[3] != "" {
		intent.FromRank = int(m[3][0] - '1')
	}
	intent.Capture = m[4] == "x"
	to, err := chess.ParseSquare(m[5])
	if err != nil {
		return MoveIntent{}, err
	}
	intent.To = to
	if m[6] != "" {
		intent.Promotion, _ = chess.PieceTypeFromLetter(m[6][0])
	}
	return intent, nil
}
