package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// LeavesOwnKingAttacked reports whether playing m would leave mover's king
// attacked. The move is tried on a sandbox successor of st; st itself is
// never touched.
func LeavesOwnKingAttacked(st *State, m chess.Move, mover chess.Colour) (bool, error) {
	next, _, err := st.With(m)
	if err != nil {
		return false, err
	}
	return InCheck(&next.Position, mover)
}

// LegalMoves returns the destinations the piece on from can legally move to.
// It fails with ErrInvalidSquare off the board and ErrNoPiece on an empty square.
func LegalMoves(st *State, from chess.Square) ([]chess.Square, error) {
	candidates, err := PseudoLegalMoves(st, from)
	if err != nil {
		return nil, err
	}

	mover := st.Position.Get(from).Colour
	legal := candidates[:0]
	for _, to := range candidates {
		attacked, err := LeavesOwnKingAttacked(st, chess.NewMove(from, to), mover)
		if err != nil {
			return nil, err
		}
		if !attacked {
			legal = append(legal, to)
		}
	}
	return legal, nil
}

// IsLegal reports whether m is among the legal moves of the piece on m.From.
func IsLegal(st *State, m chess.Move) (bool, error) {
	moves, err := LegalMoves(st, m.From)
	if err != nil {
		return false, err
	}
	for _, to := range moves {
		if to == m.To {
			return true, nil
		}
	}
	return false, nil
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(st *State, colour chess.Colour) (bool, error) {
	for _, from := range st.Position.Occupied(colour) {
		moves, err := LegalMoves(st, from)
		if err != nil {
			return false, err
		}
		if len(moves) > 0 {
			return true, nil
		}
	}
	return false, nil
}

// AllLegalMoves returns every legal move of the given colour, ordered by origin square.
func AllLegalMoves(st *State, colour chess.Colour) ([]chess.Move, error) {
	var all []chess.Move
	for _, from := range st.Position.Occupied(colour) {
		moves, err := LegalMoves(st, from)
		if err != nil {
			return nil, err
		}
		for _, to := range moves {
			all = append(all, chess.NewMove(from, to))
		}
	}
	return all, nil
}
