package game

import (
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// SyncSession wraps Session with mutex protection for concurrent access.
// Queries that may fill the position memo take the write lock.
type SyncSession struct {
	session *Session
	mu      sync.RWMutex
}

// NewSyncSession wraps s. The caller must not use s directly afterwards.
func NewSyncSession(s *Session) *SyncSession {
	return &SyncSession{session: s}
}

// ID returns the session identifier.
func (s *SyncSession) ID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.ID()
}

// SideToMove returns the colour whose turn it is.
func (s *SyncSession) SideToMove() chess.Colour {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.SideToMove()
}

// History returns a copy of the move history.
func (s *SyncSession) History() chess.History {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.History()
}

// Record returns the persisted form of the session.
func (s *SyncSession) Record() Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Record()
}

// CurrentPosition returns the current position.
func (s *SyncSession) CurrentPosition() (chess.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.CurrentPosition()
}

// PieceAt returns the piece on sq.
func (s *SyncSession) PieceAt(sq chess.Square) (chess.Piece, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.PieceAt(sq)
}

// LegalMoves returns the legal destinations of the piece on sq.
func (s *SyncSession) LegalMoves(sq chess.Square) ([]chess.Square, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.LegalMoves(sq)
}

// ApplyMove validates and records m atomically.
func (s *SyncSession) ApplyMove(m chess.Move) (chess.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.ApplyMove(m)
}

// UndoLastMove removes the most recent move.
func (s *SyncSession) UndoLastMove() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.UndoLastMove()
}

// SetPromotionChoice sets the pending promotion choice.
func (s *SyncSession) SetPromotionChoice(p chess.Promotion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.SetPromotionChoice(p)
}

// MatchState evaluates the game for the side to move.
func (s *SyncSession) MatchState() (engine.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.MatchState()
}

// InCheck reports whether the side to move is in check.
func (s *SyncSession) InCheck() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.InCheck()
}
