// Package output formats replay results as text or JSON reports.
package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// ResultWriter is the interface for writing replay results to output.
type ResultWriter interface {
	// WriteResult writes a single result to the output.
	WriteResult(r *worker.Result) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. For batch writers (like JSON), this also
	// writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by out.
func NewWriter(w io.Writer, out *config.OutputConfig) ResultWriter {
	if out == nil {
		out = config.NewOutputConfig()
	}
	if out.JSONFormat {
		return NewJSONWriter(w, out)
	}
	return NewTextWriter(w, out)
}

// TextWriter writes one summary line per game, optionally followed by the
// move list and the final board.
type TextWriter struct {
	w   io.Writer
	out *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, out *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, out: out}
}

// WriteResult writes a result immediately.
func (tw *TextWriter) WriteResult(r *worker.Result) error {
	_, err := io.WriteString(tw.w, FormatText(r, tw.out))
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter buffers results and writes them as one JSON document on Flush
// or Close.
type JSONWriter struct {
	w     io.Writer
	out   *config.OutputConfig
	games []*JSONGame
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, out *config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:     w,
		out:   out,
		games: make([]*JSONGame, 0),
	}
}

// WriteResult adds a result to the batch.
func (jw *JSONWriter) WriteResult(r *worker.Result) error {
	jw.games = append(jw.games, ResultToJSON(r, jw.out))
	return nil
}

// Flush writes the buffered results and clears the batch.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&JSONOutput{Games: jw.games}); err != nil {
		return err
	}
	jw.games = jw.games[:0]
	return nil
}

// Close flushes any pending results.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
