package variant_test

import (
	"testing"

	"github.com/Santicm23/chess-lab/internal/chess"
	"github.com/Santicm23/chess-lab/internal/engine"
	"github.com/Santicm23/chess-lab/internal/testutil"
	"github.com/Santicm23/chess-lab/internal/variant"
)

var (
	_ variant.Variant = (*variant.Standard)(nil)
	_ variant.Variant = (*variant.Chess960)(nil)
	_ variant.Variant = (*variant.KingCapture)(nil)
)

func TestStandard(t *testing.T) {
	g := variant.NewStandard()
	testutil.AssertEqual(t, g.Name(), "Standard")
	testutil.AssertEqual(t, g.FEN(), engine.InitialFEN)

	_, err := g.MovePiece("e4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.FEN(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")

	testutil.AssertNoError(t, g.Undo())
	testutil.AssertEqual(t, g.FEN(), engine.InitialFEN)

	testutil.AssertNoError(t, g.Redo())
	testutil.AssertEqual(t, g.ToMove(), chess.Black)
}

func TestStandardFromFEN_Invalid(t *testing.T) {
	_, err := variant.NewStandardFromFEN("not a position")
	testutil.AssertError(t, err)
}

func TestChess960_CastlingFromShuffledRank(t *testing.T) {
	const start = "nrbbqknr/pppppppp/8/8/8/8/PPPPPPPP/NRBBQKNR w KQkq - 0 1"
	g, err := variant.NewChess960(start)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.Name(), "Chess960")

	// Clear the king's path, then castle short: the king lands on g1 and
	// the h-rook on f1 even though the king started on f1.
	for _, move := range []string{"Nf3", "Nf6", "O-O"} {
		_, err := g.MovePiece(move)
		testutil.AssertNoError(t, err, "move %q", move)
	}
	testutil.AssertEqual(t, g.FEN(), "nrbbqk1r/pppppppp/5n2/8/8/8/PPPPPPPP/NRBBQRK1 b kq - 3 2")
}

func TestChess960_Tags(t *testing.T) {
	const start = "nrbbqknr/pppppppp/8/8/8/8/PPPPPPPP/NRBBQKNR w KQkq - 0 1"
	g, err := variant.NewChess960(start)
	testutil.AssertNoError(t, err)

	pgn := g.PGN()
	testutil.AssertContains(t, pgn, "[Variant \"Chess960\"]")
	testutil.AssertContains(t, pgn, "[SetUp \"1\"]")
	testutil.AssertContains(t, pgn, "[FEN \""+start+"\"]")
}

func TestChess960_InvalidStart(t *testing.T) {
	_, err := variant.NewChess960("nrbbqknr/pppppppp w KQkq - 0 1")
	testutil.AssertError(t, err)
}

func TestKingCapture_RelaxedLegality(t *testing.T) {
	t.Run("king may step into an attacked square", func(t *testing.T) {
		g, err := variant.NewKingCaptureFromFEN("4k3/8/8/8/8/8/4r3/4K2R w - - 0 1")
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, g.Name(), "KingCapture")

		_, err = g.MovePiece("Kd2")
		testutil.AssertNoError(t, err)

		// The exposed king is really captured, and play continues.
		_, err = g.MovePiece("Rxd2")
		testutil.AssertNoError(t, err)
		b := g.Board()
		testutil.AssertEqual(t, b.Count(chess.King, chess.White), 0)
		testutil.AssertEqual(t, g.Status(), chess.GameStatus{})
	})

	t.Run("pinned pieces are free to move", func(t *testing.T) {
		g, err := variant.NewKingCaptureFromFEN("4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")
		testutil.AssertNoError(t, err)

		_, err = g.MovePiece("Bd3")
		testutil.AssertNoError(t, err)
	})
}
