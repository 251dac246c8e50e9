package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestMustPosition_RoundTrip(t *testing.T) {
	start := chess.StartingPosition()
	rows := []string{
		"rnbqkbnr",
		"pppppppp",
		"........",
		"........",
		"........",
		"........",
		"PPPPPPPP",
		"RNBQKBNR",
	}
	AssertPosition(t, MustPosition(t, rows...), start)
}

func TestMustPosition_Pieces(t *testing.T) {
	pos := MustPosition(t,
		"....k...",
		"........",
		"........",
		"...pP...",
		"........",
		"........",
		"........",
		"....K..R",
	)

	tests := []struct {
		sq   chess.Square
		want chess.Piece
	}{
		{chess.Sq(0, 4), chess.B(chess.King)},
		{chess.Sq(3, 3), chess.B(chess.Pawn)},
		{chess.Sq(3, 4), chess.W(chess.Pawn)},
		{chess.Sq(7, 4), chess.W(chess.King)},
		{chess.Sq(7, 7), chess.W(chess.Rook)},
		{chess.Sq(7, 0), chess.NoPiece},
	}
	for _, tt := range tests {
		AssertEqual(t, pos.Get(tt.sq), tt.want, "square %v", tt.sq)
	}
}

func TestPlies(t *testing.T) {
	h := Plies([4]int{6, 4, 4, 4}, [4]int{1, 3, 3, 3})
	want := chess.History{
		chess.NewMove(chess.Sq(6, 4), chess.Sq(4, 4)),
		chess.NewMove(chess.Sq(1, 3), chess.Sq(3, 3)),
	}
	AssertEqual(t, h, want)
	AssertEqual(t, len(FoolsMate), 4, "fool's mate length")
}

func TestPieceFromLetter(t *testing.T) {
	tests := []struct {
		letter byte
		want   chess.Piece
		ok     bool
	}{
		{'K', chess.W(chess.King), true},
		{'q', chess.B(chess.Queen), true},
		{'N', chess.W(chess.Knight), true},
		{'.', chess.NoPiece, true},
		{'x', chess.NoPiece, false},
	}
	for _, tt := range tests {
		got, ok := pieceFromLetter(tt.letter)
		if ok != tt.ok || got != tt.want {
			t.Errorf("pieceFromLetter(%q) = %v, %v; want %v, %v", tt.letter, got, ok, tt.want, tt.ok)
		}
	}
}
