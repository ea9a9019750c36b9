package engine_test

import (
	"testing"

	"github.com/Santicm23/chess-lab/internal/chess"
	"github.com/Santicm23/chess-lab/internal/errors"
	"github.com/Santicm23/chess-lab/internal/testutil"
)

func TestResolve_IllegalMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
	}{
		{"no piece can reach", "", "Ne5"},
		{"blocked slider", "", "Bb5"},
		{"pawn capture to an empty square", "", "exd3"},
		{"pawn capture claim on its own file", "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2", "exe5"},
		{"quiet move to an occupied square", "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2", "e5"},
		{"pinned piece may not move", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", "Bd3"},
		{"king may not step into check", "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1", "Kd2"},
		{"promotion short of the last rank", "4k3/8/P7/8/8/8/8/4K3 w - - 0 1", "a7=Q"},
		{"pawn on the last rank needs a promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a8"},
		{"capturing a defended piece with the king", "4k3/8/8/8/8/2b5/1q6/K7 w - - 0 1", "Kxb2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.NewTestGame(t, tt.fen)
			_, err := g.MakeMove(tt.move)
			testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
		})
	}
}

func TestResolve_InvalidNotation(t *testing.T) {
	g := testutil.NewTestGame(t, "")
	for _, text := range []string{"", "xyz", "e9", "Pe4", "O-O-O-O", "Nf3!", "Qd8=Q"} {
		t.Run(text, func(t *testing.T) {
			_, err := g.MakeMove(text)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)
		})
	}
}

func TestResolve_IllegalNeverMutates(t *testing.T) {
	g := testutil.NewTestGame(t, "")
	before := g.FEN()

	for _, text := range []string{"Ne5", "xyz", "Bb5"} {
		_, err := g.MakeMove(text)
		testutil.AssertError(t, err)
		testutil.AssertEqual(t, g.FEN(), before, "failed move %q must not mutate state", text)
	}
}

func TestResolve_Ambiguity(t *testing.T) {
	// Knights on a1 and c1 both reach b3.
	g := testutil.NewTestGame(t, "4k3/8/8/8/8/8/8/N1N1K3 w - - 0 1")

	_, err := g.MakeMove("Nb3")
	testutil.AssertErrorIs(t, err, errors.ErrAmbiguousMove)

	testutil.MustPlay(t, g, "Nab3")
	testutil.AssertContains(t, g.PGN(), "Nab3", "the rendered move keeps its file qualifier")
}

func TestResolve_RankDisambiguation(t *testing.T) {
	// Rooks on a1 and a5 both reach a3; the shared file forces rank
	// qualifiers.
	g := testutil.NewTestGame(t, "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1")

	_, err := g.MakeMove("Ra3")
	testutil.AssertErrorIs(t, err, errors.ErrAmbiguousMove)

	testutil.MustPlay(t, g, "R1a3")
	testutil.AssertContains(t, g.PGN(), "R1a3")
}

func TestResolve_PinBreaksAmbiguity(t *testing.T) {
	// Knights on c2 and e2 both shape-reach d4, but the e2 knight is
	// pinned, so no hint is needed and none is rendered.
	g := testutil.NewTestGame(t, "4k3/4r3/8/8/8/8/2N1N3/4K3 w - - 0 1")

	testutil.MustPlay(t, g, "Nd4")
	testutil.AssertContains(t, g.PGN(), "1. Nd4")
}

func TestResolve_HintsFilterCandidates(t *testing.T) {
	g := testutil.NewTestGame(t, "4k3/8/8/8/8/8/8/N1N1K3 w - - 0 1")

	// A wrong hint matches nothing.
	_, err := g.MakeMove("Nbb3")
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)

	// A full from-square hint always pins down one candidate.
	testutil.MustPlay(t, g, "Nc1b3")
}

func TestResolve_Promotion(t *testing.T) {
	g := testutil.NewTestGame(t, "6r1/5P2/8/8/8/8/7k/4K3 w - - 0 1")

	// Capturing promotion, delivering nothing special.
	testutil.MustPlay(t, g, "fxg8=N")
	b := g.Board()
	sq, err := chess.ParseSquare("g8")
	testutil.AssertNoError(t, err)
	p, ok := b.PieceAt(sq)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, p, chess.Piece{Colour: chess.White, Type: chess.Knight})
}
