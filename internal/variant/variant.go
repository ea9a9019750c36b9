// Package variant exposes the playable game variants behind a common
// interface. Each variant composes the variant-agnostic engine rather
// than reimplementing any rules.
package variant

import (
	"github.com/Santicm23/chess-lab/internal/board"
	"github.com/Santicm23/chess-lab/internal/chess"
	"github.com/Santicm23/chess-lab/internal/engine"
)

// Variant is the capability set every playable variant offers.
type Variant interface {
	// Name identifies the variant ("Standard", "Chess960", ...).
	Name() string

	// MovePiece plays one algebraic move for the side to move.
	MovePiece(text string) (chess.GameStatus, error)

	// Undo reverses the last move; no-op with none.
	Undo() error
	// Redo replays the recorded mainline continuation.
	Redo() error
	// RedoVariant replays the n-th recorded continuation.
	RedoVariant(n int) error
	// NextMoves lists the recorded continuations, mainline first.
	NextMoves() []chess.Move

	Resign(c chess.Colour)
	SetLostOnTime(c chess.Colour)
	SetDrawByAgreement()

	Status() chess.GameStatus
	ToMove() chess.Colour
	Board() board.Board
	FEN() string
	PGN() string
	SetTag(name, value string)
}

// game adapts *engine.Game to the Variant interface; the concrete
// variants embed it and add their name and setup.
type game struct {
	inner *engine.Game
}

func (g *game) MovePiece(text string) (chess.GameStatus, error) { return g.inner.MakeMove(text) }
func (g *game) Undo() error                                     { return g.inner.Undo() }
func (g *game) Redo() error                                     { return g.inner.Redo() }
func (g *game) RedoVariant(n int) error                         { return g.inner.RedoVariant(n) }
func (g *game) NextMoves() []chess.Move                         { return g.inner.NextMoves() }
func (g *game) Resign(c chess.Colour)                           { g.inner.Resign(c) }
func (g *game) SetLostOnTime(c chess.Colour)                    { g.inner.SetLostOnTime(c) }
func (g *game) SetDrawByAgreement()                             { g.inner.SetDrawByAgreement() }
func (g *game) Status() chess.GameStatus                        { return g.inner.Status() }
func (g *game) ToMove() chess.Colour                            { return g.inner.ToMove() }
func (g *game) Board() board.Board                              { return g.inner.Board() }
func (g *game) FEN() string                                     { return g.inner.FEN() }
func (g *game) PGN() string                                     { return g.inner.PGN() }
func (g *game) SetTag(name, value string)                       { g.inner.SetTag(name, value) }

// Game exposes the underlying engine for callers that need the full
// engine surface (insufficient-material queries, history inspection).
func (g *game) Game() *engine.Game {
	return g.inner
}
