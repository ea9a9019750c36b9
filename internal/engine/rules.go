package engine

import (
	"github.com/Santicm23/chess-lab/internal/board"
	"github.com/Santicm23/chess-lab/internal/chess"
)

// InCheck reports whether c's king is attacked. A missing king (possible
// only in the relaxed king-capture mode) is never in check.
func (g *Game) InCheck(c chess.Colour) bool {
	kings := g.board.Find(chess.King, c)
	if len(kings) == 0 {
		return false
	}
	return g.board.IsAttacked(kings[0], c.Opposite())
}

// leavesKingSafe simulates the move on a copy of the board and reports
// whether the mover's own king is attacked afterwards. Always true in
// the relaxed king-capture mode.
func (g *Game) leavesKingSafe(from, to chess.Square, enPassant bool) bool {
	if g.allowKingCapture {
		return true
	}
	p, ok := g.board.PieceAt(from)
	if !ok {
		return false
	}

	sim := g.board
	if err := sim.MovePiece(from, to); err != nil {
		return false
	}
	if enPassant {
		if _, err := sim.RemovePiece(chess.Sq(to.File, from.Rank)); err != nil {
			return false
		}
	}

	kings := sim.Find(chess.King, p.Colour)
	if len(kings) == 0 {
		return true
	}
	return !sim.IsAttacked(kings[0], p.Colour.Opposite())
}

// hasAnyLegalMove exhaustively scans every piece of c against every
// destination square, counting en passant, and reports whether at least
// one move passes the king-safety simulation. Castling is skipped: when
// castling is legal the king's first crossing step is itself a legal
// king move, so it can never be the only move available.
func (g *Game) hasAnyLegalMove(c chess.Colour) bool {
	for _, from := range g.board.FindAll(c) {
		p, _ := g.board.PieceAt(from)
		for bit := 0; bit < 64; bit++ {
			to := chess.SquareFromBit(bit)
			if to == from {
				continue
			}
			if !g.pseudoLegal(p, from, to) {
				continue
			}
			enPassant := p.Type == chess.Pawn && g.enPassant.Valid() && to == g.enPassant
			if g.allowKingCapture || g.leavesKingSafe(from, to, enPassant) {
				return true
			}
		}
	}
	return false
}

// pseudoLegal tests raw movement shape plus occupancy: captures for
// occupied destinations, quiet moves (and pawn pushes) for empty ones.
func (g *Game) pseudoLegal(p chess.Piece, from, to chess.Square) bool {
	if victim, occupied := g.board.PieceAt(to); occupied {
		if victim.Colour == p.Colour {
			return false
		}
		ok, err := g.board.CanCapture(from, to)
		return err == nil && ok
	}

	if p.Type == chess.Pawn {
		if g.enPassant.Valid() && to == g.enPassant && board.PawnCapture(p.Colour, from, to) {
			return true
		}
		if !board.PawnAdvance(p.Colour, from, to) {
			return false
		}
		mid, double := doubleStepMidpoint(p.Colour, from, to)
		return !double || !g.board.IsOccupied(mid)
	}
	ok, err := g.board.CanCapture(from, to)
	return err == nil && ok
}

// positionStatus recomputes the status of the current position with the
// fixed precedence checkmate, stalemate, threefold repetition, fifty-move
// rule, in progress. Insufficient material never ends a game here; use
// HasInsufficientMaterial and SetDrawByAgreement at the session level.
func (g *Game) positionStatus() chess.GameStatus {
	side := g.toMove
	hasMove := g.hasAnyLegalMove(side)

	switch {
	case !hasMove && g.InCheck(side):
		return chess.Win(side.Opposite(), chess.Checkmate)
	case !hasMove:
		return chess.Draw(chess.Stalemate)
	case g.repetition[g.ReducedFEN()] >= 3:
		return chess.Draw(chess.ThreefoldRepetition)
	case g.halfmove >= 100:
		return chess.Draw(chess.FiftyMoveRule)
	}
	return chess.GameStatus{}
}

// HasInsufficientMaterial reports whether neither side retains mating
// material: king versus king, a single minor piece, or same-coloured
// bishops only.
func (g *Game) HasInsufficientMaterial() bool {
	var knights, bishops int
	var bishopSquares []chess.Square
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if g.board.Count(chess.Pawn, c) > 0 ||
			g.board.Count(chess.Rook, c) > 0 ||
			g.board.Count(chess.Queen, c) > 0 {
			return false
		}
		knights += g.board.Count(chess.Knight, c)
		bishops += g.board.Count(chess.Bishop, c)
		bishopSquares = append(bishopSquares, g.board.Find(chess.Bishop, c)...)
	}

	if knights+bishops <= 1 {
		return true
	}
	if knights > 0 {
		return false
	}
	// Bishops only: insufficient when they all live on one square colour.
	shade := (bishopSquares[0].File + bishopSquares[0].Rank) % 2
	for _, sq := range bishopSquares[1:] {
		if (sq.File+sq.Rank)%2 != shade {
			return false
		}
	}
	return true
}
