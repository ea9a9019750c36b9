package engine

import (
	"github.com/Santicm23/chess-lab/internal/chess"
)

// castleRookToFile is the rook's post-castle file: f for kingside,
// d for queenside.
func castleRookToFile(side chess.CastleSide) int {
	if side == chess.KingSide {
		return 5
	}
	return 3
}

// apply mutates the board and every scalar field for a resolved move,
// then recomputes the move's check flags and the game status. Board
// errors indicate a broken internal invariant and abort immediately.
func (g *Game) apply(m *chess.Move) error {
	if err := g.applyToBoard(*m); err != nil {
		return err
	}

	mover := m.Piece.Colour
	g.updateRights(*m)
	g.updateEnPassant(*m)

	if m.Capture || m.Piece.Type == chess.Pawn {
		g.halfmove = 0
	} else {
		g.halfmove++
	}
	if mover == chess.Black {
		g.fullmove++
	}
	g.toMove = mover.Opposite()

	m.Check = g.InCheck(g.toMove)
	m.Checkmate = m.Check && !g.hasAnyLegalMove(g.toMove)

	g.repetition[g.ReducedFEN()]++
	g.status = g.positionStatus()
	return nil
}

func (g *Game) applyToBoard(m chess.Move) error {
	switch m.Kind {
	case chess.CastleMove:
		// Both legs land on a scratch copy so a contract error cannot
		// leave the king moved but the rook behind.
		sim := g.board
		if err := sim.MovePiece(m.From, m.To); err != nil {
			return err
		}
		rookTo := chess.Sq(castleRookToFile(m.Side), m.From.Rank)
		if err := sim.MovePiece(m.RookFrom, rookTo); err != nil {
			return err
		}
		g.board = sim
		return nil

	case chess.EnPassantMove:
		if err := g.board.MovePiece(m.From, m.To); err != nil {
			return err
		}
		_, err := g.board.RemovePiece(chess.Sq(m.To.File, m.From.Rank))
		return err

	default:
		if err := g.board.MovePiece(m.From, m.To); err != nil {
			return err
		}
		if m.Promotion != chess.NoPiece {
			if _, err := g.board.RemovePiece(m.To); err != nil {
				return err
			}
			return g.board.SetPiece(chess.Piece{Colour: m.Piece.Colour, Type: m.Promotion}, m.To)
		}
		return nil
	}
}

// revert is the board-level inverse of applyToBoard.
func (g *Game) revert(m chess.Move) error {
	opp := m.Piece.Colour.Opposite()

	switch m.Kind {
	case chess.CastleMove:
		sim := g.board
		rookTo := chess.Sq(castleRookToFile(m.Side), m.From.Rank)
		rook, err := sim.RemovePiece(rookTo)
		if err != nil {
			return err
		}
		if err := sim.MovePiece(m.To, m.From); err != nil {
			return err
		}
		if err := sim.SetPiece(rook, m.RookFrom); err != nil {
			return err
		}
		g.board = sim
		return nil

	case chess.EnPassantMove:
		if err := g.board.MovePiece(m.To, m.From); err != nil {
			return err
		}
		return g.board.SetPiece(chess.Piece{Colour: opp, Type: chess.Pawn}, chess.Sq(m.To.File, m.From.Rank))

	default:
		if m.Promotion != chess.NoPiece {
			if _, err := g.board.RemovePiece(m.To); err != nil {
				return err
			}
			if err := g.board.SetPiece(m.Piece, m.From); err != nil {
				return err
			}
		} else if err := g.board.MovePiece(m.To, m.From); err != nil {
			return err
		}
		if m.Captured != chess.NoPiece {
			return g.board.SetPiece(chess.Piece{Colour: opp, Type: m.Captured}, m.To)
		}
		return nil
	}
}

// updateRights clears castling rights after the move has hit the board:
// both wings when a side's king moves or castles, one wing when its rook
// leaves the home rank, and the victim's wing when a rook is captured on
// its classical corner square.
func (g *Game) updateRights(m chess.Move) {
	mover := m.Piece.Colour

	switch m.Piece.Type {
	case chess.King:
		g.rights = g.rights.Clear(chess.RightsFor(mover))
	case chess.Rook:
		if m.From.Rank == mover.HomeRank() {
			if kings := g.board.Find(chess.King, mover); len(kings) > 0 {
				side := chess.QueenSide
				if m.From.File > kings[0].File {
					side = chess.KingSide
				}
				g.rights = g.rights.Clear(chess.RightFor(mover, side))
			}
		}
	}

	if m.Captured == chess.Rook {
		opp := mover.Opposite()
		if m.To.Rank == opp.HomeRank() {
			switch m.To.File {
			case 0:
				g.rights = g.rights.Clear(chess.RightFor(opp, chess.QueenSide))
			case 7:
				g.rights = g.rights.Clear(chess.RightFor(opp, chess.KingSide))
			}
		}
	}
}

// updateEnPassant sets the en passant target after a double pawn push,
// but only when an enemy pawn actually stands ready to take it; every
// other move clears it.
func (g *Game) updateEnPassant(m chess.Move) {
	g.enPassant = chess.NoSquare
	if m.Kind != chess.NormalMove || m.Piece.Type != chess.Pawn {
		return
	}
	mid, double := doubleStepMidpoint(m.Piece.Colour, m.From, m.To)
	if !double {
		return
	}

	opp := m.Piece.Colour.Opposite()
	for _, df := range []int{-1, 1} {
		sq, ok := m.To.Offset(df, 0)
		if !ok {
			continue
		}
		if p, occupied := g.board.PieceAt(sq); occupied && p == (chess.Piece{Colour: opp, Type: chess.Pawn}) {
			g.enPassant = mid
			return
		}
	}
}
