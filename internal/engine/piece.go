package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// PseudoLegalMoves returns the destinations the piece on from could reach by
// its movement rules, before excluding moves that leave its own king attacked.
func PseudoLegalMoves(st *State, from chess.Square) ([]chess.Square, error) {
	if !from.Valid() {
		return nil, fmt.Errorf("%v: %w", from, errors.ErrInvalidSquare)
	}
	piece, ok := st.Position.At(from)
	if !ok {
		return nil, fmt.Errorf("%v: %w", from, errors.ErrNoPiece)
	}

	pos := &st.Position
	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(st, from, piece.Colour), nil
	case chess.Knight:
		return stepMoves(pos, from, piece.Colour, knightOffsets[:]), nil
	case chess.Bishop:
		return slideMoves(pos, from, piece.Colour, diagonalDirs[:]), nil
	case chess.Rook:
		return slideMoves(pos, from, piece.Colour, straightDirs[:]), nil
	case chess.Queen:
		// A queen slides along every direction a king steps in.
		return slideMoves(pos, from, piece.Colour, kingOffsets[:]), nil
	case chess.King:
		moves := stepMoves(pos, from, piece.Colour, kingOffsets[:])
		return append(moves, castlingMoves(st, from, piece.Colour)...), nil
	}
	return nil, errors.Internal("unknown piece kind %d on %v", int(piece.Kind), from)
}
