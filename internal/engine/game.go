// Package engine implements move resolution and the game state machine:
// it owns a Board plus turn, clocks, castling rights, en passant target,
// repetition counters, and terminal status, and records every applied
// move in a branching history tree.
package engine

import (
	"github.com/Santicm23/chess-lab/internal/board"
	"github.com/Santicm23/chess-lab/internal/chess"
	"github.com/Santicm23/chess-lab/internal/errors"
	"github.com/Santicm23/chess-lab/internal/pgn"
)

// Game is one game session. It is exclusively owned: no field is safe
// for concurrent mutation, and every operation completes synchronously.
type Game struct {
	board      board.Board
	toMove     chess.Colour
	halfmove   int
	fullmove   int
	enPassant  chess.Square // NoSquare when unset
	rights     chess.CastlingRights
	repetition map[string]int
	status     chess.GameStatus
	history    *pgn.Tree
	tags       pgn.TagSet

	// allowKingCapture skips the own-king safety simulation, for the
	// relaxed variant where the king may be left or moved into check.
	allowKingCapture bool
}

// NewGame returns a game at the standard starting position.
func NewGame() *Game {
	g, err := NewGameFromFEN(InitialFEN)
	if err != nil {
		panic(err) // the initial FEN constant always parses
	}
	return g
}

// SetKingCaptureAllowed toggles the relaxed legality mode in which moves
// are not tested for leaving one's own king attacked.
func (g *Game) SetKingCaptureAllowed(allowed bool) {
	g.allowKingCapture = allowed
}

// Status returns the current game status.
func (g *Game) Status() chess.GameStatus {
	return g.status
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.toMove
}

// Board returns a copy of the current position.
func (g *Game) Board() board.Board {
	return g.board
}

// Rights returns the current castling rights.
func (g *Game) Rights() chess.CastlingRights {
	return g.rights
}

// EnPassantTarget returns the current en passant target square, if set.
func (g *Game) EnPassantTarget() (chess.Square, bool) {
	return g.enPassant, g.enPassant.Valid()
}

// HalfmoveClock returns the halfmove clock.
func (g *Game) HalfmoveClock() int {
	return g.halfmove
}

// FullmoveNumber returns the fullmove number.
func (g *Game) FullmoveNumber() int {
	return g.fullmove
}

// History returns the game's move-history tree.
func (g *Game) History() *pgn.Tree {
	return g.history
}

// SetTag sets a PGN header tag.
func (g *Game) SetTag(name, value string) {
	g.tags.Set(name, value)
}

// Tag returns a PGN header tag value.
func (g *Game) Tag(name string) (string, bool) {
	return g.tags.Get(name)
}

// MakeMove resolves and applies one algebraic move for the side to move.
// Invalid, illegal, and ambiguous moves leave the game untouched and
// return an error wrapping the corresponding sentinel. Once the game is
// terminal MakeMove is a no-op that returns the frozen status.
func (g *Game) MakeMove(text string) (chess.GameStatus, error) {
	if g.status.Terminal() {
		return g.status, nil
	}

	intent, err := ParseMoveText(text)
	if err != nil {
		return g.status, &errors.MoveError{Err: err, Text: text, Ply: g.ply() + 1}
	}
	m, err := g.resolve(intent)
	if err != nil {
		return g.status, &errors.MoveError{Err: err, Text: text, Ply: g.ply() + 1}
	}

	snap := g.snapshot()
	if err := g.apply(&m); err != nil {
		return g.status, err
	}
	g.history.AddMove(m, snap)
	return g.status, nil
}

// Undo reverses the most recent move, restoring the exact prior position,
// clocks, rights, en passant target, and status, and moves the history
// cursor back. With no previous move it is a no-op.
func (g *Game) Undo() error {
	m, snap, ok := g.history.Current()
	if !ok {
		return nil
	}

	key := g.ReducedFEN()
	if n := g.repetition[key]; n <= 1 {
		delete(g.repetition, key)
	} else {
		g.repetition[key] = n - 1
	}

	if err := g.revert(m); err != nil {
		return err
	}

	g.halfmove = snap.HalfmoveClock
	g.fullmove = snap.FullmoveNum
	g.enPassant = snap.EnPassant
	g.rights = snap.Rights
	g.status = snap.Status
	g.toMove = m.Piece.Colour
	g.history.Back()
	return nil
}

// Redo replays the mainline continuation recorded at the history cursor.
// The move's rendered notation goes back through the normal make path,
// so status, clocks, and rights are recomputed rather than replayed, and
// the history cursor advances onto the existing node.
func (g *Game) Redo() error {
	return g.RedoVariant(0)
}

// RedoVariant replays the n-th recorded continuation; index 0 is the
// mainline.
func (g *Game) RedoVariant(n int) error {
	m, ok := g.history.NextMoveVariant(n)
	if !ok {
		return errors.Wrapf(errors.ErrNoNextMove, "variant %d", n)
	}
	_, err := g.MakeMove(m.String())
	return err
}

// NextMoves lists the recorded continuations at the current position,
// mainline first.
func (g *Game) NextMoves() []chess.Move {
	return g.history.AllNextMoves()
}

// Resign ends the game in favour of the opponent. No-op once terminal.
func (g *Game) Resign(c chess.Colour) {
	if !g.status.Terminal() {
		g.status = chess.Win(c.Opposite(), chess.Resignation)
	}
}

// SetLostOnTime ends the game against the flagged side. No-op once
// terminal. Wall-clock tracking itself lives with the caller.
func (g *Game) SetLostOnTime(c chess.Colour) {
	if !g.status.Terminal() {
		g.status = chess.Win(c.Opposite(), chess.Time)
	}
}

// SetDrawByAgreement ends the game as an agreed draw. No-op once terminal.
func (g *Game) SetDrawByAgreement() {
	if !g.status.Terminal() {
		g.status = chess.Draw(chess.Agreement)
	}
}

// PGN renders the header tags (when any are set) and the full move tree
// with variations and the result token.
func (g *Game) PGN() string {
	if g.tags.Len() > 0 {
		result := g.status.Result()
		if result == "" {
			result = "*"
		}
		g.tags.Set("Result", result)
	}

	header := g.tags.Header()
	body := g.history.Notation(g.status)
	switch {
	case header == "":
		return body
	case body == "":
		return header
	default:
		return header + "\n" + body
	}
}

func (g *Game) snapshot() pgn.Snapshot {
	return pgn.Snapshot{
		HalfmoveClock: g.halfmove,
		FullmoveNum:   g.fullmove,
		EnPassant:     g.enPassant,
		Rights:        g.rights,
		Status:        g.status,
	}
}

func (g *Game) ply() int {
	ply := (g.fullmove - 1) * 2
	if g.toMove == chess.Black {
		ply++
	}
	return ply
}
