package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Apply plays m on pos and returns the normalized move: the promotion is
// resolved for a pawn reaching the last rank and cleared for every other move.
// fallback is used when a promoting move carries no choice of its own.
//
// Apply does not check legality. An empty origin square is an internal
// inconsistency, since callers only apply moves that were generated or
// validated against the same position.
func Apply(pos *chess.Position, m chess.Move, fallback chess.Promotion) (chess.Move, error) {
	if !m.Valid() {
		return chess.Move{}, fmt.Errorf("applying %v: %w", m, errors.ErrInvalidSquare)
	}
	piece, ok := pos.At(m.From)
	if !ok {
		return chess.Move{}, errors.Internal("applying %v: no piece on %v", m, m.From)
	}

	switch piece.Kind {
	case chess.Pawn:
		return applyPawnMove(pos, piece, m, fallback)
	case chess.King:
		applyKingMove(pos, m)
	default:
		pos.Relocate(m.From, m.To)
	}

	m.Promotion = chess.NoPromotion
	return m, nil
}
