package variant

import "github.com/Santicm23/chess-lab/internal/engine"

// Standard is orthodox chess.
type Standard struct {
	game
}

// NewStandard returns a standard game at the initial position.
func NewStandard() *Standard {
	return &Standard{game{inner: engine.NewGame()}}
}

// NewStandardFromFEN returns a standard game resumed from a position.
func NewStandardFromFEN(fen string) (*Standard, error) {
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Standard{game{inner: g}}, nil
}

// Name implements Variant.
func (*Standard) Name() string {
	return "Standard"
}
