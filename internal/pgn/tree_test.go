package pgn_test

import (
	"testing"

	"github.com/Santicm23/chess-lab/internal/chess"
	"github.com/Santicm23/chess-lab/internal/pgn"
	"github.com/Santicm23/chess-lab/internal/testutil"
)

// mv builds a minimal pawn push for tree tests; the tree itself never
// interprets moves beyond equality and rendering.
func mv(t *testing.T, c chess.Colour, from, to string) chess.Move {
	t.Helper()
	f, err := chess.ParseSquare(from)
	testutil.AssertNoError(t, err)
	s, err := chess.ParseSquare(to)
	testutil.AssertNoError(t, err)
	m, err := chess.NewNormalMove(chess.Piece{Colour: c, Type: chess.Pawn}, f, s, chess.NoPiece, chess.NoPiece)
	testutil.AssertNoError(t, err)
	return m
}

func snap(fullmove int) pgn.Snapshot {
	return pgn.Snapshot{FullmoveNum: fullmove, EnPassant: chess.NoSquare, Rights: chess.AllCastlingRights}
}

func TestTree_Navigation(t *testing.T) {
	tr := pgn.NewTree()
	testutil.AssertFalse(t, tr.HasPrev())
	testutil.AssertFalse(t, tr.HasNext())

	e4 := mv(t, chess.White, "e2", "e4")
	e5 := mv(t, chess.Black, "e7", "e5")

	tr.AddMove(e4, snap(1))
	tr.AddMove(e5, snap(1))
	testutil.AssertEqual(t, tr.Len(), 2)
	testutil.AssertTrue(t, tr.HasPrev())
	testutil.AssertFalse(t, tr.HasNext())

	cur, _, ok := tr.Current()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, cur, e5)

	testutil.AssertTrue(t, tr.Back())
	next, ok := tr.NextMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, next, e5)

	testutil.AssertTrue(t, tr.Back())
	testutil.AssertFalse(t, tr.Back(), "Back at the root is a no-op")

	_, _, ok = tr.Current()
	testutil.AssertFalse(t, ok)
}

func TestTree_AddMoveDeduplicates(t *testing.T) {
	tr := pgn.NewTree()
	e4 := mv(t, chess.White, "e2", "e4")

	tr.AddMove(e4, snap(1))
	tr.Back()
	tr.AddMove(e4, snap(1))

	testutil.AssertEqual(t, tr.Len(), 1, "replaying the same move must reuse the node")

	cur, _, ok := tr.Current()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, cur, e4)
}

func TestTree_VariationsAndAllNextMoves(t *testing.T) {
	tr := pgn.NewTree()
	e4 := mv(t, chess.White, "e2", "e4")
	d4 := mv(t, chess.White, "d2", "d4")
	c4 := mv(t, chess.White, "c2", "c4")

	tr.AddMove(e4, snap(1))
	tr.Back()
	tr.AddMove(d4, snap(1))
	tr.Back()
	tr.AddMove(c4, snap(1))
	tr.Back()

	testutil.AssertEqual(t, tr.AllNextMoves(), []chess.Move{e4, d4, c4})

	second, ok := tr.NextMoveVariant(1)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, second, d4)

	_, ok = tr.NextMoveVariant(3)
	testutil.AssertFalse(t, ok)

	main, ok := tr.NextMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, main, e4, "the first child stays the mainline")
}

func TestTree_Notation(t *testing.T) {
	tr := pgn.NewTree()
	tr.AddMove(mv(t, chess.White, "e2", "e4"), snap(1))
	tr.AddMove(mv(t, chess.Black, "e7", "e5"), snap(1))
	tr.AddMove(mv(t, chess.White, "d2", "d4"), snap(2))

	got := tr.Notation(chess.GameStatus{})
	testutil.AssertEqual(t, got, "1. e4 e5 2. d4")

	got = tr.Notation(chess.Win(chess.White, chess.Resignation))
	testutil.AssertEqual(t, got, "1. e4 e5 2. d4 1-0")
}

func TestTree_NotationWithVariations(t *testing.T) {
	tr := pgn.NewTree()
	tr.AddMove(mv(t, chess.White, "e2", "e4"), snap(1))
	tr.AddMove(mv(t, chess.Black, "e7", "e5"), snap(1))

	// Branch at Black's first move.
	tr.Back()
	tr.AddMove(mv(t, chess.Black, "c7", "c5"), snap(1))
	tr.AddMove(mv(t, chess.White, "d2", "d4"), snap(2))

	// Continue the mainline after the variation.
	tr.Back()
	tr.Back()
	tr.AddMove(mv(t, chess.Black, "e7", "e5"), snap(1))
	tr.AddMove(mv(t, chess.White, "g2", "g3"), snap(2))

	got := tr.Notation(chess.GameStatus{})
	testutil.AssertEqual(t, got, "1. e4 e5 (1... c5 2. d4) 2. g3")
}

func TestTree_NotationStartsWithBlack(t *testing.T) {
	tr := pgn.NewTree()
	tr.AddMove(mv(t, chess.Black, "e7", "e5"), snap(12))
	tr.AddMove(mv(t, chess.White, "d2", "d4"), snap(13))

	got := tr.Notation(chess.GameStatus{})
	testutil.AssertEqual(t, got, "12... e5 13. d4")
}

func TestTagSet(t *testing.T) {
	var tags pgn.TagSet
	testutil.AssertEqual(t, tags.Header(), "")

	tags.Set("White", "Karpov")
	tags.Set("Event", "Candidates")
	tags.Set("Annotator", "engine")
	tags.Set("White", "Kasparov")

	v, ok := tags.Get("White")
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, v, "Kasparov")

	// Roster tags come first, in roster order, then the rest.
	want := "[Event \"Candidates\"]\n[White \"Kasparov\"]\n[Annotator \"engine\"]\n"
	testutil.AssertEqual(t, tags.Header(), want)
}
