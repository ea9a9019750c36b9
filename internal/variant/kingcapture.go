package variant

import "github.com/Santicm23/chess-lab/internal/engine"

// KingCapture is the relaxed variant in which moves are never rejected
// for leaving one's own king attacked: pins do not bind and the king may
// step into check, so winning means actually taking the king.
type KingCapture struct {
	game
}

// NewKingCapture returns a relaxed-legality game at the initial position.
func NewKingCapture() *KingCapture {
	g := engine.NewGame()
	g.SetKingCaptureAllowed(true)
	return &KingCapture{game{inner: g}}
}

// NewKingCaptureFromFEN returns a relaxed-legality game from a position.
func NewKingCaptureFromFEN(fen string) (*KingCapture, error) {
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		return nil, err
	}
	g.SetKingCaptureAllowed(true)
	return &KingCapture{game{inner: g}}, nil
}

// Name implements Variant.
func (*KingCapture) Name() string {
	return "KingCapture"
}
