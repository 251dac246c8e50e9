// Package engine provides chess move validation and board manipulation.
//
// Every position is derived by replaying a move history from the standard
// starting layout. Speculative positions used for legality checks are built
// the same way, on an independent copy of the history.
package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// State is a history together with the position it produces.
// A State owns its History; it never shares backing storage with the
// history it was built from.
type State struct {
	Position chess.Position
	History  chess.History

	// Promotion is used for pawn moves that reach the last rank without an
	// explicit promotion choice.
	Promotion chess.Promotion
}

// Reconstruct replays history from the starting position. The returned
// state's history holds the normalized form of every move, with promotion
// choices resolved against fallback.
func Reconstruct(history chess.History, fallback chess.Promotion) (*State, error) {
	st := &State{
		Position:  chess.StartingPosition(),
		History:   make(chess.History, 0, len(history)+1),
		Promotion: fallback,
	}
	for i, m := range history {
		normalized, err := Apply(&st.Position, m, fallback)
		if err != nil {
			return nil, fmt.Errorf("replaying ply %d (%v): %w", i+1, m, err)
		}
		st.History = append(st.History, normalized)
	}
	return st, nil
}

// With returns the state that results from playing m, plus the normalized move.
// The receiver is not modified. The result is identical to reconstructing
// the extended history from scratch.
func (s *State) With(m chess.Move) (*State, chess.Move, error) {
	next := &State{Position: s.Position, Promotion: s.Promotion}
	normalized, err := Apply(&next.Position, m, s.Promotion)
	if err != nil {
		return nil, chess.Move{}, err
	}
	next.History = s.History.With(normalized)
	return next, normalized, nil
}

// Ply returns the number of moves played.
func (s *State) Ply() int {
	return s.History.Len()
}
