// Package testutil provides shared test utilities for the chess-lab
// project. These utilities reduce code duplication across test files and
// provide consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/Santicm23/chess-lab/internal/engine"
)

// NewTestGame builds a game from a FEN position, failing the test on a
// parse error. An empty fen gives the standard starting position.
func NewTestGame(t *testing.T, fen string) *engine.Game {
	t.Helper()
	if fen == "" {
		return engine.NewGame()
	}
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to build game from FEN %q: %v", fen, err)
	}
	return g
}

// MustPlay applies a sequence of algebraic moves, failing the test on
// the first one that does not resolve and apply cleanly.
func MustPlay(t *testing.T, g *engine.Game, moves ...string) {
	t.Helper()
	for i, move := range moves {
		if _, err := g.MakeMove(move); err != nil {
			t.Fatalf("move %d (%q) failed: %v", i+1, move, err)
		}
	}
}

// PlayedGame builds a fresh standard game and plays the given moves.
func PlayedGame(t *testing.T, moves ...string) *engine.Game {
	t.Helper()
	g := engine.NewGame()
	MustPlay(t, g, moves...)
	return g
}
