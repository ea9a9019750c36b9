package engine

import (
	"fmt"

	"github.com/Santicm23/chess-lab/internal/board"
	"github.com/Santicm23/chess-lab/internal/chess"
	"github.com/Santicm23/chess-lab/internal/errors"
)

// resolve turns a tokenized intent into a fully specified move for the
// side to move. It scans the candidate source squares, keeps those for
// which the move would be legal, and demands exactly one survivor:
// zero is ErrIllegalMove, more than one is ErrAmbiguousMove.
func (g *Game) resolve(intent MoveIntent) (chess.Move, error) {
	if intent.Castle {
		return g.resolveCastle(intent.Side)
	}
	if intent.Promotion != chess.NoPiece && intent.Piece != chess.Pawn {
		return chess.Move{}, fmt.Errorf("promotion of a %v: %w", intent.Piece, errors.ErrInvalidMove)
	}

	enPassant := intent.Piece == chess.Pawn && intent.Capture &&
		g.enPassant.Valid() && intent.To == g.enPassant

	var matches []chess.Square
	for _, from := range g.board.Find(intent.Piece, g.toMove) {
		if intent.FromFile >= 0 && from.File != intent.FromFile {
			continue
		}
		if intent.FromRank >= 0 && from.Rank != intent.FromRank {
			continue
		}
		if g.moveLegal(from, intent, enPassant) {
			matches = append(matches, from)
		}
	}

	switch len(matches) {
	case 0:
		return chess.Move{}, fmt.Errorf("no %v can play to %v: %w", intent.Piece, intent.To, errors.ErrIllegalMove)
	case 1:
		return g.buildMove(matches[0], intent, enPassant)
	default:
		return chess.Move{}, fmt.Errorf("%d pieces can play to %v: %w", len(matches), intent.To, errors.ErrAmbiguousMove)
	}
}

// moveLegal tests whether the piece on from can play the intended move:
// movement shape, capture consistency, promotion rank, and (unless king
// capture is allowed) the own-king safety simulation that rules out
// pinned pieces and moves made while in check.
func (g *Game) moveLegal(from chess.Square, intent MoveIntent, enPassant bool) bool {
	to := intent.To
	if enPassant {
		return board.PawnCapture(g.toMove, from, to) && g.leavesKingSafe(from, to, true)
	}

	victim, occupied := g.board.PieceAt(to)
	if intent.Capture {
		if !occupied || victim.Colour == g.toMove {
			return false
		}
		if ok, err := g.board.CanCapture(from, to); err != nil || !ok {
			return false
		}
	} else {
		if occupied {
			return false
		}
		if intent.Piece == chess.Pawn {
			if !board.PawnAdvance(g.toMove, from, to) {
				return false
			}
			if mid, double := doubleStepMidpoint(g.toMove, from, to); double && g.board.IsOccupied(mid) {
				return false
			}
		} else if ok, err := g.board.CanCapture(from, to); err != nil || !ok {
			return false
		}
	}

	if intent.Piece == chess.Pawn {
		atLast := to.Rank == g.toMove.PromotionRank()
		if atLast != (intent.Promotion != chess.NoPiece) {
			return false
		}
	}

	return g.leavesKingSafe(from, to, false)
}

// doubleStepMidpoint returns the square a double pawn push passes over.
func doubleStepMidpoint(c chess.Colour, from, to chess.Square) (chess.Square, bool) {
	if to.Rank-from.Rank != 2*c.Direction() {
		return chess.NoSquare, false
	}
	return chess.Sq(from.File, (from.Rank+to.Rank)/2), true
}

func (g *Game) buildMove(from chess.Square, intent MoveIntent, enPassant bool) (chess.Move, error) {
	piece := chess.Piece{Colour: g.toMove, Type: intent.Piece}

	if enPassant {
		m, err := chess.NewEnPassantMove(piece, from, intent.To)
		if err != nil {
			return chess.Move{}, err
		}
		return m, nil
	}

	captured := chess.NoPiece
	if intent.Capture {
		victim, _ := g.board.PieceAt(intent.To)
		captured = victim.Type
	}
	m, err := chess.NewNormalMove(piece, from, intent.To, captured, intent.Promotion)
	if err != nil {
		return chess.Move{}, err
	}
	m.NeedFile, m.NeedRank = g.disambiguationFlags(from, intent, enPassant)
	return m, nil
}

// disambiguationFlags recomputes, for a move already known to be legal,
// whether the notation needs a file and/or rank qualifier to separate it
// from other legal movers of the same kind to the same destination.
// The usual minimal-qualifier rule applies: file alone when it is unique,
// rank alone when the file is shared, both otherwise.
func (g *Game) disambiguationFlags(from chess.Square, intent MoveIntent, enPassant bool) (bool, bool) {
	if intent.Piece == chess.Pawn || intent.Piece == chess.King {
		return false, false
	}
	sharedFile, sharedRank, others := false, false, false
	for _, other := range g.board.Find(intent.Piece, g.toMove) {
		if other == from || !g.moveLegal(other, intent, enPassant) {
			continue
		}
		others = true
		if other.File == from.File {
			sharedFile = true
		}
		if other.Rank == from.Rank {
			sharedRank = true
		}
	}
	switch {
	case !others:
		return false, false
	case !sharedFile:
		return true, false
	case !sharedRank:
		return false, true
	default:
		return true, true
	}
}

// resolveCastle validates castling for the side to move. The rights bit
// must be available, every square the king occupies or crosses through
// must be free (apart from the king itself) and unattacked, and a rook
// of the moving side must be the first piece beyond the king's
// destination toward the board edge. The scan-based rook lookup keeps
// alternate back-rank layouts working without special cases.
func (g *Game) resolveCastle(side chess.CastleSide) (chess.Move, error) {
	c := g.toMove
	if !g.rights.Has(chess.RightFor(c, side)) {
		return chess.Move{}, fmt.Errorf("%v has no %v right: %w", c, side, errors.ErrIllegalMove)
	}

	kings := g.board.Find(chess.King, c)
	rank := c.HomeRank()
	if len(kings) == 0 || kings[0].Rank != rank {
		return chess.Move{}, fmt.Errorf("%v king not on its home rank: %w", c, errors.ErrIllegalMove)
	}
	kingFrom := kings[0]

	destFile, outward := 6, 1
	if side == chess.QueenSide {
		destFile, outward = 2, -1
	}
	dest := chess.Sq(destFile, rank)

	step := 0
	if destFile > kingFrom.File {
		step = 1
	} else if destFile < kingFrom.File {
		step = -1
	}
	for f := kingFrom.File; ; f += step {
		sq := chess.Sq(f, rank)
		if sq != kingFrom && g.board.IsOccupied(sq) {
			return chess.Move{}, fmt.Errorf("%v is occupied: %w", sq, errors.ErrIllegalMove)
		}
		if g.board.IsAttacked(sq, c.Opposite()) {
			return chess.Move{}, fmt.Errorf("%v is attacked: %w", sq, errors.ErrIllegalMove)
		}
		if f == destFile || step == 0 {
			break
		}
	}

	rookFrom := chess.NoSquare
	for f := destFile + outward; f >= 0 && f < 8; f += outward {
		sq := chess.Sq(f, rank)
		if sq == kingFrom {
			continue
		}
		p, ok := g.board.PieceAt(sq)
		if !ok {
			continue
		}
		if p == (chess.Piece{Colour: c, Type: chess.Rook}) {
			rookFrom = sq
		}
		break
	}
	if !rookFrom.Valid() {
		return chess.Move{}, fmt.Errorf("no rook available for %v: %w", side, errors.ErrIllegalMove)
	}

	// The rook's landing square may fall outside the king's crossed path
	// (king starting on b1 or c1); it must still be free to receive it.
	rookTo := chess.Sq(castleRookToFile(side), rank)
	if rookTo != kingFrom && rookTo != rookFrom && g.board.IsOccupied(rookTo) {
		return chess.Move{}, fmt.Errorf("%v is occupied: %w", rookTo, errors.ErrIllegalMove)
	}

	return chess.NewCastleMove(chess.Piece{Colour: c, Type: chess.King}, kingFrom, dest, side, rookFrom)
}
