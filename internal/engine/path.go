package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// stepMoves returns the destinations one offset away from from that are
// empty or hold an enemy piece.
func stepMoves(pos *chess.Position, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var moves []chess.Square
	for _, o := range offsets {
		to := from.Offset(o[0], o[1])
		if canLand(pos, to, colour) {
			moves = append(moves, to)
		}
	}
	return moves
}

// slideMoves walks each direction until the edge of the board or the first
// occupied square. An enemy piece on that square is included as a capture.
func slideMoves(pos *chess.Position, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var moves []chess.Square
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); to.Valid(); to = to.Offset(dir[0], dir[1]) {
			piece, occupied := pos.At(to)
			if !occupied {
				moves = append(moves, to)
				continue
			}
			if piece.Colour != colour {
				moves = append(moves, to)
			}
			break // Blocked
		}
	}
	return moves
}

// canLand reports whether a piece of the given colour may end its move on sq.
func canLand(pos *chess.Position, sq chess.Square, colour chess.Colour) bool {
	if !sq.Valid() {
		return false
	}
	piece, occupied := pos.At(sq)
	return !occupied || piece.Colour != colour
}

// isPathClear checks that every listed square is empty.
func isPathClear(pos *chess.Position, squares []chess.Square) bool {
	for _, sq := range squares {
		if !pos.IsEmpty(sq) {
			return false
		}
	}
	return true
}
