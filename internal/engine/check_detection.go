package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Relative offsets as {rank, file} pairs.
var (
	knightOffsets = [...][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [...][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [...][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [...][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// Attackers returns the squares of every piece of colour by that attacks sq.
// The order of the result is not significant.
func Attackers(pos *chess.Position, sq chess.Square, by chess.Colour) []chess.Square {
	var attackers []chess.Square

	// Pawns capture diagonally forward for their own colour, so an
	// attacking pawn stands one rank behind sq from its point of view.
	back := -chess.Forward(by)
	for _, df := range [...]int{-1, 1} {
		from := sq.Offset(back, df)
		if pos.Get(from).Is(by, chess.Pawn) {
			attackers = append(attackers, from)
		}
	}

	attackers = appendStepAttackers(attackers, pos, sq, by, chess.Knight, knightOffsets[:])
	attackers = appendStepAttackers(attackers, pos, sq, by, chess.King, kingOffsets[:])
	attackers = appendRayAttackers(attackers, pos, sq, by, chess.Bishop, diagonalDirs[:])
	attackers = appendRayAttackers(attackers, pos, sq, by, chess.Rook, straightDirs[:])

	return attackers
}

// appendStepAttackers adds pieces of the given kind one offset away from sq.
func appendStepAttackers(dst []chess.Square, pos *chess.Position, sq chess.Square, by chess.Colour, kind chess.Kind, offsets [][2]int) []chess.Square {
	for _, o := range offsets {
		from := sq.Offset(o[0], o[1])
		if pos.Get(from).Is(by, kind) {
			dst = append(dst, from)
		}
	}
	return dst
}

// appendRayAttackers walks outward from sq and adds the first piece met on
// each ray if it is a kind slider or a queen of the attacking colour.
func appendRayAttackers(dst []chess.Square, pos *chess.Position, sq chess.Square, by chess.Colour, kind chess.Kind, dirs [][2]int) []chess.Square {
	for _, dir := range dirs {
		for cur := sq.Offset(dir[0], dir[1]); cur.Valid(); cur = cur.Offset(dir[0], dir[1]) {
			piece, ok := pos.At(cur)
			if !ok {
				continue
			}
			if piece.Colour == by && (piece.Kind == kind || piece.Kind == chess.Queen) {
				dst = append(dst, cur)
			}
			break // Blocked
		}
	}
	return dst
}

// IsAttacked reports whether any piece of colour by attacks sq.
func IsAttacked(pos *chess.Position, sq chess.Square, by chess.Colour) bool {
	return len(Attackers(pos, sq, by)) > 0
}

// InCheck reports whether the given colour's king is attacked.
// A position without that king is an internal inconsistency.
func InCheck(pos *chess.Position, colour chess.Colour) (bool, error) {
	king, ok := pos.FindKing(colour)
	if !ok {
		return false, errors.Internal("no %v king on the board", colour)
	}
	return IsAttacked(pos, king, colour.Opposite()), nil
}
