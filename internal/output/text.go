package output

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// FormatText renders a result as a summary line, then the numbered moves and
// the final board when out asks for them.
func FormatText(r *worker.Result, out *config.OutputConfig) string {
	var sb strings.Builder
	if r.Err != nil {
		fmt.Fprintf(&sb, "%s: error: %v\n", r.Name, r.Err)
		return sb.String()
	}

	fmt.Fprintf(&sb, "%s: %v after %d plies\n", r.Name, r.Outcome, r.Plies)
	if out.ShowMoves {
		for n, m := range r.Moves {
			fmt.Fprintf(&sb, "  %3d. %v\n", n+1, m)
		}
	}
	if out.ShowBoard {
		sb.WriteString(r.Position.String())
	}
	return sb.String()
}
