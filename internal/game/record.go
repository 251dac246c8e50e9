package game

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Record is the persisted form of a session: enough to rebuild everything else.
type Record struct {
	ID          uuid.UUID       `json:"id"`
	InitialSide chess.Colour    `json:"initialSide"`
	Promotion   chess.Promotion `json:"promotion"`
	Moves       chess.History   `json:"moves"`
}

// Record returns the persisted form of the session.
func (s *Session) Record() Record {
	moves := s.history.Clone()
	if moves == nil {
		moves = chess.History{}
	}
	return Record{
		ID:          s.id,
		InitialSide: s.initial,
		Promotion:   s.promotion,
		Moves:       moves,
	}
}

// FromRecord rebuilds a session by replaying every recorded move through
// ApplyMove, so a record holding an illegal move is rejected. Settings not
// carried by the record, such as position memoization, come from cfg.
func FromRecord(rec Record, cfg *config.GameConfig, opts ...Option) (*Session, error) {
	if !rec.InitialSide.Valid() {
		return nil, &errors.RecordError{Err: fmt.Errorf("initial side %d: %w", int(rec.InitialSide), errors.ErrInvalidRecord)}
	}

	gc := config.NewGameConfig()
	if cfg != nil {
		*gc = *cfg
	}
	gc.InitialSide = rec.InitialSide
	if rec.Promotion.Valid() {
		gc.Promotion = rec.Promotion
	}

	if rec.ID != uuid.Nil {
		opts = append([]Option{WithID(rec.ID)}, opts...)
	}
	s := New(gc, opts...)
	for i, m := range rec.Moves {
		if _, err := s.ApplyMove(m); err != nil {
			return nil, &errors.RecordError{Err: err, Index: i + 1}
		}
	}
	return s, nil
}

// ReadRecord decodes a JSON record. The initial side and promotion choice
// are optional in the input and default to those of cfg.
func ReadRecord(r io.Reader, cfg *config.GameConfig) (Record, error) {
	if cfg == nil {
		cfg = config.NewGameConfig()
	}
	rec := Record{InitialSide: cfg.InitialSide, Promotion: cfg.Promotion}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rec); err != nil {
		return Record{}, fmt.Errorf("%w: %v", errors.ErrInvalidRecord, err)
	}
	return rec, nil
}

// WriteRecord encodes rec as indented JSON.
func WriteRecord(w io.Writer, rec Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
