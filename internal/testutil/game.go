package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Mv builds a move from rank/file coordinates.
func Mv(fromRank, fromFile, toRank, toFile int) chess.Move {
	return chess.NewMove(chess.Sq(fromRank, fromFile), chess.Sq(toRank, toFile))
}

// Plies builds a history from {fromRank, fromFile, toRank, toFile} tuples.
func Plies(plies ...[4]int) chess.History {
	h := make(chess.History, 0, len(plies))
	for _, p := range plies {
		h = append(h, Mv(p[0], p[1], p[2], p[3]))
	}
	return h
}

// FoolsMate is the shortest checkmate: Black mates White on the fourth ply.
var FoolsMate = Plies(
	[4]int{6, 5, 5, 5}, // f-pawn one step
	[4]int{1, 4, 3, 4}, // e-pawn two steps
	[4]int{6, 6, 4, 6}, // g-pawn two steps
	[4]int{0, 3, 4, 7}, // queen to the h-file, mate
)

// MustPosition builds a position from eight rows of piece letters, rank 0
// first, in the format produced by chess.Position.String. It calls t.Fatal
// on malformed input.
func MustPosition(t *testing.T, rows ...string) chess.Position {
	t.Helper()
	var pos chess.Position
	if len(rows) != chess.BoardSize {
		t.Fatalf("MustPosition: got %d rows, want %d", len(rows), chess.BoardSize)
	}
	for rank, row := range rows {
		if len(row) != chess.BoardSize {
			t.Fatalf("MustPosition: row %d %q has %d squares, want %d", rank, row, len(row), chess.BoardSize)
		}
		for file := 0; file < chess.BoardSize; file++ {
			piece, ok := pieceFromLetter(row[file])
			if !ok {
				t.Fatalf("MustPosition: unknown piece letter %q at (%d,%d)", row[file], rank, file)
			}
			pos.Set(chess.Sq(rank, file), piece)
		}
	}
	return pos
}

func pieceFromLetter(c byte) (chess.Piece, bool) {
	if c == '.' {
		return chess.NoPiece, true
	}
	colour := chess.White
	if c >= 'a' && c <= 'z' {
		colour = chess.Black
		c -= 'a' - 'A'
	}
	for kind := chess.Pawn; kind <= chess.King; kind++ {
		if kind.Letter() == c {
			return chess.Piece{Colour: colour, Kind: kind}, true
		}
	}
	return chess.NoPiece, false
}
