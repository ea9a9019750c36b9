package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Santicm23/chess-lab/internal/board"
	"github.com/Santicm23/chess-lab/internal/chess"
	"github.com/Santicm23/chess-lab/internal/errors"
	"github.com/Santicm23/chess-lab/internal/pgn"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN exports the position as the six space-separated FEN fields. The
// output of FEN round-trips exactly through NewGameFromFEN.
func (g *Game) FEN() string {
	return fmt.Sprintf("%s %d %d", g.ReducedFEN(), g.halfmove, g.fullmove)
}

// ReducedFEN exports the first four FEN fields only, dropping the clocks.
// This is the repetition key: two positions recur when their reduced
// forms are equal.
func (g *Game) ReducedFEN() string {
	side := "w"
	if g.toMove == chess.Black {
		side = "b"
	}
	ep := "-"
	if g.enPassant.Valid() {
		ep = g.enPassant.String()
	}
	return fmt.Sprintf("%s %s %s %s", g.board.Placement(), side, g.rights, ep)
}

// NewGameFromFEN builds a game from a FEN position. The status of the
// imported position is computed immediately, so importing a mated or
// stalemated position yields a terminal game.
func NewGameFromFEN(fen string) (*Game, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, &errors.FENError{Err: errors.ErrInvalidFEN, Value: fen}
	}

	b, err := board.FromPlacement(fields[0])
	if err != nil {
		return nil, &errors.FENError{Err: err, Field: "placement", Value: fields[0]}
	}

	var toMove chess.Colour
	switch fields[1] {
	case "w":
		toMove = chess.White
	case "b":
		toMove = chess.Black
	default:
		return nil, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "side to move", Value: fields[1]}
	}

	rights, ok := chess.ParseCastlingRights(fields[2])
	if !ok {
		return nil, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "castling", Value: fields[2]}
	}

	enPassant := chess.NoSquare
	if fields[3] != "-" {
		sq, err := chess.ParseSquare(fields[3])
		if err != nil || (sq.Rank != 2 && sq.Rank != 5) {
			return nil, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "en passant", Value: fields[3]}
		}
		enPassant = sq
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "halfmove clock", Value: fields[4]}
	}
	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return nil, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "fullmove number", Value: fields[5]}
	}

	g := &Game{
		board:      b,
		toMove:     toMove,
		halfmove:   halfmove,
		fullmove:   fullmove,
		enPassant:  enPassant,
		rights:     rights,
		repetition: make(map[string]int),
		history:    pgn.NewTree(),
	}
	g.status = g.positionStatus()
	return g, nil
}
