package chess_test

import (
	"testing"

	"github.com/Santicm23/chess-lab/internal/chess"
	"github.com/Santicm23/chess-lab/internal/testutil"
)

func TestColour_Opposite(t *testing.T) {
	testutil.AssertEqual(t, chess.White.Opposite(), chess.Black)
	testutil.AssertEqual(t, chess.Black.Opposite(), chess.White)
	testutil.AssertEqual(t, chess.White.Opposite().Opposite(), chess.White)
}

func TestColour_Geometry(t *testing.T) {
	testutil.AssertEqual(t, chess.White.Direction(), 1)
	testutil.AssertEqual(t, chess.Black.Direction(), -1)
	testutil.AssertEqual(t, chess.White.HomeRank(), 0)
	testutil.AssertEqual(t, chess.Black.HomeRank(), 7)
	testutil.AssertEqual(t, chess.White.PromotionRank(), 7)
	testutil.AssertEqual(t, chess.Black.PromotionRank(), 0)
}

func TestPiece_FENLetters(t *testing.T) {
	tests := []struct {
		piece  chess.Piece
		letter byte
	}{
		{chess.Piece{Colour: chess.White, Type: chess.Pawn}, 'P'},
		{chess.Piece{Colour: chess.Black, Type: chess.Pawn}, 'p'},
		{chess.Piece{Colour: chess.White, Type: chess.Knight}, 'N'},
		{chess.Piece{Colour: chess.Black, Type: chess.Queen}, 'q'},
		{chess.Piece{Colour: chess.White, Type: chess.King}, 'K'},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, tt.piece.FENLetter(), tt.letter)

		back, ok := chess.PieceFromFENLetter(tt.letter)
		testutil.AssertTrue(t, ok)
		testutil.AssertEqual(t, back, tt.piece)
	}

	if _, ok := chess.PieceFromFENLetter('x'); ok {
		t.Error("PieceFromFENLetter('x') should fail")
	}
}

func TestCastlingRights(t *testing.T) {
	r := chess.AllCastlingRights
	testutil.AssertEqual(t, r.String(), "KQkq")

	r = r.Clear(chess.RightsFor(chess.White))
	testutil.AssertEqual(t, r.String(), "kq")
	testutil.AssertFalse(t, r.Has(chess.CastleWhiteKingside))
	testutil.AssertTrue(t, r.Has(chess.CastleBlackQueenside))

	r = r.Clear(chess.RightFor(chess.Black, chess.KingSide))
	testutil.AssertEqual(t, r.String(), "q")

	testutil.AssertEqual(t, chess.NoCastlingRights.String(), "-")
}

func TestParseCastlingRights(t *testing.T) {
	tests := []struct {
		field string
		want  chess.CastlingRights
		ok    bool
	}{
		{"KQkq", chess.AllCastlingRights, true},
		{"-", chess.NoCastlingRights, true},
		{"Kq", chess.CastleWhiteKingside | chess.CastleBlackQueenside, true},
		{"", 0, false},
		{"qK", 0, false},
		{"KK", 0, false},
		{"X", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got, ok := chess.ParseCastlingRights(tt.field)
			testutil.AssertEqual(t, ok, tt.ok)
			if tt.ok {
				testutil.AssertEqual(t, got, tt.want)
			}
		})
	}
}

func TestGameStatus(t *testing.T) {
	var inProgress chess.GameStatus
	testutil.AssertFalse(t, inProgress.Terminal())
	testutil.AssertEqual(t, inProgress.Result(), "")

	mate := chess.Win(chess.White, chess.Checkmate)
	testutil.AssertTrue(t, mate.Terminal())
	testutil.AssertEqual(t, mate.Result(), "1-0")
	testutil.AssertEqual(t, mate.String(), "White wins by checkmate")

	flag := chess.Win(chess.Black, chess.Time)
	testutil.AssertEqual(t, flag.Result(), "0-1")

	draw := chess.Draw(chess.Stalemate)
	testutil.AssertEqual(t, draw.Result(), "1/2-1/2")
	testutil.AssertEqual(t, draw.String(), "draw by stalemate")
}
