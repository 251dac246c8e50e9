package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

func startResult() *worker.Result {
	return &worker.Result{
		Name:     "start.json",
		ID:       uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		Plies:    1,
		Moves:    testutil.Plies([4]int{6, 4, 4, 4}),
		Outcome:  engine.Outcome{State: engine.InProgress},
		Position: chess.StartingPosition(),
	}
}

func failedResult() *worker.Result {
	return &worker.Result{
		Name: "bad.json",
		Err:  &errors.RecordError{Err: errors.ErrIllegalMove, File: "bad.json", Index: 3},
	}
}

func TestFormatText(t *testing.T) {
	tests := []struct {
		name   string
		result *worker.Result
		out    config.OutputConfig
		want   string
	}{
		{
			name:   "summary only",
			result: startResult(),
			out:    config.OutputConfig{},
			want:   "start.json: in progress after 1 plies\n",
		},
		{
			name:   "with moves",
			result: startResult(),
			out:    config.OutputConfig{ShowMoves: true},
			want:   "start.json: in progress after 1 plies\n    1. (6,4)-(4,4)\n",
		},
		{
			name:   "with board",
			result: startResult(),
			out:    config.OutputConfig{ShowBoard: true},
			want: "start.json: in progress after 1 plies\n" +
				"rnbqkbnr\npppppppp\n........\n........\n........\n........\nPPPPPPPP\nRNBQKBNR\n",
		},
		{
			name:   "error",
			result: failedResult(),
			out:    config.OutputConfig{ShowBoard: true, ShowMoves: true},
			want:   "bad.json: error: bad.json: move 3: illegal move\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, FormatText(tt.result, &tt.out), tt.want)
		})
	}
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	_, isText := NewWriter(&buf, nil).(*TextWriter)
	testutil.AssertTrue(t, isText, "default writer is text")
	_, isJSON := NewWriter(&buf, &config.OutputConfig{JSONFormat: true}).(*JSONWriter)
	testutil.AssertTrue(t, isJSON, "JSONFormat selects the JSON writer")
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf, &config.OutputConfig{ShowBoard: true, ShowMoves: true})

	testutil.AssertNoError(t, w.WriteResult(startResult()))
	testutil.AssertNoError(t, w.WriteResult(failedResult()))
	testutil.AssertEqual(t, buf.Len(), 0, "batched until Close")
	testutil.AssertNoError(t, w.Close())

	var doc struct {
		Games []struct {
			File    string            `json:"file"`
			ID      string            `json:"id"`
			Outcome map[string]string `json:"outcome"`
			Board   []string          `json:"board"`
			Moves   chess.History     `json:"moves"`
			Error   string            `json:"error"`
		} `json:"games"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	testutil.AssertEqual(t, len(doc.Games), 2)

	ok := doc.Games[0]
	testutil.AssertEqual(t, ok.ID, "6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	testutil.AssertEqual(t, ok.Outcome, map[string]string{"state": "in-progress"})
	testutil.AssertEqual(t, ok.Board[0], "rnbqkbnr")
	testutil.AssertEqual(t, ok.Moves, testutil.Plies([4]int{6, 4, 4, 4}))

	bad := doc.Games[1]
	testutil.AssertEqual(t, bad.Error, "bad.json: move 3: illegal move")
	testutil.AssertEqual(t, len(bad.Board), 0)
	testutil.AssertEqual(t, bad.ID, "")

	// A second Close has nothing left to write.
	n := buf.Len()
	testutil.AssertNoError(t, w.Close())
	testutil.AssertEqual(t, buf.Len(), n)
}

func TestTextWriter_WritesImmediately(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf, &config.OutputConfig{})
	for i := 0; i < 3; i++ {
		r := startResult()
		r.Name = fmt.Sprintf("g%d.json", i)
		testutil.AssertNoError(t, w.WriteResult(r))
	}
	testutil.AssertNoError(t, w.Flush())
	testutil.AssertNoError(t, w.Close())
	testutil.AssertEqual(t, buf.String(),
		"g0.json: in progress after 1 plies\ng1.json: in progress after 1 plies\ng2.json: in progress after 1 plies\n")
}
