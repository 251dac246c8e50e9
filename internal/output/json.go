package output

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// JSONGame represents a replayed game in JSON format.
type JSONGame struct {
	File    string          `json:"file"`
	ID      string          `json:"id,omitempty"`
	Plies   int             `json:"plies"`
	Outcome *engine.Outcome `json:"outcome,omitempty"`
	Board   []string        `json:"board,omitempty"` // Rank 0 first
	Moves   chess.History   `json:"moves,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// JSONOutput holds every game of a report.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// ResultToJSON converts a replay result to JSON format.
func ResultToJSON(r *worker.Result, out *config.OutputConfig) *JSONGame {
	jg := &JSONGame{File: r.Name, Plies: r.Plies}
	if r.Err != nil {
		jg.Error = r.Err.Error()
		return jg
	}

	jg.ID = r.ID.String()
	outcome := r.Outcome
	jg.Outcome = &outcome
	if out.ShowBoard {
		jg.Board = strings.Split(strings.TrimSuffix(r.Position.String(), "\n"), "\n")
	}
	if out.ShowMoves {
		jg.Moves = r.Moves.Clone()
	}
	return jg
}
