package chess_test

import (
	"testing"

	"github.com/Santicm23/chess-lab/internal/chess"
	"github.com/Santicm23/chess-lab/internal/testutil"
)

func TestSquare_BitMapping(t *testing.T) {
	tests := []struct {
		name string
		sq   chess.Square
		bit  int
	}{
		{"a1 is bit 0", chess.Sq(0, 0), 0},
		{"h1 is bit 7", chess.Sq(7, 0), 7},
		{"a2 is bit 8", chess.Sq(0, 1), 8},
		{"e4", chess.Sq(4, 3), 28},
		{"h8 is bit 63", chess.Sq(7, 7), 63},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.sq.Bit(), tt.bit)
			testutil.AssertEqual(t, chess.SquareFromBit(tt.bit), tt.sq)
		})
	}
}

func TestParseSquare(t *testing.T) {
	sq, err := chess.ParseSquare("e4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sq, chess.Sq(4, 3))
	testutil.AssertEqual(t, sq.String(), "e4")

	for _, bad := range []string{"", "e", "e9", "i4", "4e", "e44"} {
		if _, err := chess.ParseSquare(bad); err == nil {
			t.Errorf("ParseSquare(%q) should fail", bad)
		}
	}
}

func TestSquare_Offset(t *testing.T) {
	from := chess.Sq(4, 3) // e4

	to, ok := from.Offset(1, 1)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, to.String(), "f5")

	if _, ok := chess.Sq(7, 7).Offset(1, 0); ok {
		t.Error("offset past the h file should report false")
	}
}

func TestNoSquare(t *testing.T) {
	testutil.AssertFalse(t, chess.NoSquare.Valid())
	testutil.AssertEqual(t, chess.NoSquare.String(), "-")
}
