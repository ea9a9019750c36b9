package variant

import "github.com/Santicm23/chess-lab/internal/engine"

// Chess960 plays Fischer random chess from a caller-supplied starting
// position; generating the shuffled back rank is the caller's job.
// Castling still lands the king on g/c and the rook on f/d, with the
// rook located by position rather than by a fixed corner file.
type Chess960 struct {
	game
}

// NewChess960 returns a Chess960 game from its starting FEN.
func NewChess960(startFEN string) (*Chess960, error) {
	g, err := engine.NewGameFromFEN(startFEN)
	if err != nil {
		return nil, err
	}
	g.SetTag("Variant", "Chess960")
	g.SetTag("FEN", startFEN)
	g.SetTag("SetUp", "1")
	return &Chess960{game{inner: g}}, nil
}

// Name implements Variant.
func (*Chess960) Name() string {
	return "Chess960"
}
