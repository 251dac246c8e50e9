package engine

import (
	"encoding/json"
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MatchState classifies a position for the side to move.
type MatchState int

const (
	InProgress MatchState = iota
	Stalemate
	Win
)

// String returns the string representation of a match state.
func (s MatchState) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Stalemate:
		return "stalemate"
	case Win:
		return "win"
	}
	return fmt.Sprintf("MatchState(%d)", int(s))
}

// MarshalText encodes the state as "in-progress", "stalemate" or "win".
func (s MatchState) MarshalText() ([]byte, error) {
	switch s {
	case InProgress:
		return []byte("in-progress"), nil
	case Stalemate, Win:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("invalid match state %d", int(s))
}

// Outcome is the result of evaluating a position. Winner is only
// meaningful when State is Win.
type Outcome struct {
	State  MatchState
	Winner chess.Colour
}

// MarshalJSON encodes the outcome as {"state": ..., "winner": ...}, leaving
// out the winner unless the game was won.
func (o Outcome) MarshalJSON() ([]byte, error) {
	out := struct {
		State  MatchState    `json:"state"`
		Winner *chess.Colour `json:"winner,omitempty"`
	}{State: o.State}
	if o.State == Win {
		out.Winner = &o.Winner
	}
	return json.Marshal(out)
}

// Over reports whether the game has ended.
func (o Outcome) Over() bool {
	return o.State != InProgress
}

// String returns e.g. "in progress", "stalemate" or "White wins".
func (o Outcome) String() string {
	if o.State == Win {
		return o.Winner.String() + " wins"
	}
	return o.State.String()
}

// Evaluate determines the state of the game with toMove to play.
// If toMove has any legal move the game is in progress. Otherwise it is
// checkmate, a win for the opponent, when toMove's king is attacked, and
// stalemate when it is not.
func Evaluate(st *State, toMove chess.Colour) (Outcome, error) {
	if _, ok := st.Position.FindKing(toMove); !ok {
		return Outcome{}, errors.Internal("no %v king on the board", toMove)
	}

	hasMoves, err := HasLegalMoves(st, toMove)
	if err != nil {
		return Outcome{}, err
	}
	if hasMoves {
		return Outcome{State: InProgress}, nil
	}

	inCheck, err := InCheck(&st.Position, toMove)
	if err != nil {
		return Outcome{}, err
	}
	if inCheck {
		return Outcome{State: Win, Winner: toMove.Opposite()}, nil
	}
	return Outcome{State: Stalemate}, nil
}

// IsCheckmate returns true if toMove is checkmated.
func IsCheckmate(st *State, toMove chess.Colour) (bool, error) {
	o, err := Evaluate(st, toMove)
	return err == nil && o.State == Win, err
}

// IsStalemate returns true if toMove has no legal move and is not in check.
func IsStalemate(st *State, toMove chess.Colour) (bool, error) {
	o, err := Evaluate(st, toMove)
	return err == nil && o.State == Stalemate, err
}
