// Package game provides the session API over the rules engine: one game,
// its move history and the queries and mutations a front end needs.
package game

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/logging"
)

// Session is a single game. Its only state is the move history, the side
// that moved first and the pending promotion choice; every position is
// derived from them.
//
// A Session is not safe for concurrent use. Wrap it in a SyncSession when
// calls cannot be serialized by the caller.
type Session struct {
	id        uuid.UUID
	history   chess.History
	initial   chess.Colour
	toMove    chess.Colour
	promotion chess.Promotion
	cache     *positionCache // nil when memoization is disabled
	logger    *zap.Logger

	// endLogged is 1 + the history length at which the end of the game
	// was last logged, or 0.
	endLogged int
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. Sessions log nothing by default.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		s.logger = logging.OrNop(l)
	}
}

// WithID sets the session identifier instead of generating a new one.
func WithID(id uuid.UUID) Option {
	return func(s *Session) {
		s.id = id
	}
}

// New starts a game from the standard starting position. A nil cfg selects
// the defaults of config.NewGameConfig.
func New(cfg *config.GameConfig, opts ...Option) *Session {
	if cfg == nil {
		cfg = config.NewGameConfig()
	}
	s := &Session{
		id:        uuid.New(),
		initial:   cfg.InitialSide,
		toMove:    cfg.InitialSide,
		promotion: cfg.Promotion,
		logger:    zap.NewNop(),
	}
	if !s.promotion.Valid() {
		s.promotion = chess.PromoteQueen
	}
	if cfg.CachePositions {
		s.cache = newPositionCache()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// SideToMove returns the colour whose turn it is.
func (s *Session) SideToMove() chess.Colour {
	return s.toMove
}

// InitialSide returns the colour that moved first.
func (s *Session) InitialSide() chess.Colour {
	return s.initial
}

// Promotion returns the pending promotion choice.
func (s *Session) Promotion() chess.Promotion {
	return s.promotion
}

// Ply returns the number of moves played.
func (s *Session) Ply() int {
	return s.history.Len()
}

// History returns a copy of the normalized move history.
func (s *Session) History() chess.History {
	return s.history.Clone()
}

// CurrentPosition returns the position after every move played so far.
func (s *Session) CurrentPosition() (chess.Position, error) {
	st, err := s.state()
	if err != nil {
		return chess.Position{}, err
	}
	return st.Position, nil
}

// PieceAt returns the piece on sq and whether the square is occupied.
func (s *Session) PieceAt(sq chess.Square) (chess.Piece, bool, error) {
	if !sq.Valid() {
		return chess.NoPiece, false, fmt.Errorf("%v: %w", sq, errors.ErrInvalidSquare)
	}
	st, err := s.state()
	if err != nil {
		return chess.NoPiece, false, err
	}
	piece, ok := st.Position.At(sq)
	return piece, ok, nil
}

// LegalMoves returns the legal destinations of the piece on sq, regardless
// of whose turn it is. It fails with ErrInvalidSquare off the board and
// ErrNoPiece on an empty square.
func (s *Session) LegalMoves(sq chess.Square) ([]chess.Square, error) {
	st, err := s.state()
	if err != nil {
		return nil, err
	}
	moves, err := engine.LegalMoves(st, sq)
	if err != nil {
		return nil, s.checkInternal(err)
	}
	return moves, nil
}

// ApplyMove validates m against the side to move and the legal moves of the
// piece on m.From, then records it. It returns the normalized move, with the
// promotion resolved for a pawn reaching the last rank.
//
// Rejections are reported as *errors.MoveError wrapping ErrIllegalMove,
// ErrInvalidSquare, ErrNoPiece or ErrInvalidPromotion.
func (s *Session) ApplyMove(m chess.Move) (chess.Move, error) {
	reject := func(err error) (chess.Move, error) {
		return chess.Move{}, &errors.MoveError{
			Err:    err,
			Ply:    s.history.Len() + 1,
			Move:   m.String(),
			Colour: s.toMove.String(),
		}
	}

	if !m.Valid() {
		return reject(errors.ErrInvalidSquare)
	}
	if m.Promotion != chess.NoPromotion && !m.Promotion.Valid() {
		return reject(errors.ErrInvalidPromotion)
	}

	st, err := s.state()
	if err != nil {
		return chess.Move{}, err
	}
	piece, ok := st.Position.At(m.From)
	if !ok {
		return reject(errors.ErrNoPiece)
	}
	if piece.Colour != s.toMove {
		return reject(fmt.Errorf("%v is not on move: %w", piece, errors.ErrIllegalMove))
	}

	legal, err := engine.IsLegal(st, m)
	if err != nil {
		return chess.Move{}, s.checkInternal(err)
	}
	if !legal {
		return reject(errors.ErrIllegalMove)
	}

	if !m.Promotion.Valid() {
		m.Promotion = s.promotion
	}
	next, normalized, err := st.With(m)
	if err != nil {
		return chess.Move{}, s.checkInternal(err)
	}

	s.history = next.History
	s.toMove = s.toMove.Opposite()
	s.cache.put(next)
	if err := s.checkParity(); err != nil {
		return chess.Move{}, err
	}

	s.logger.Debug("move applied",
		zap.String("session", s.id.String()),
		zap.Int("ply", s.history.Len()),
		zap.Stringer("move", normalized),
		zap.Stringer("colour", piece.Colour),
	)
	return normalized, nil
}

// UndoLastMove removes the most recent move and returns the number of
// history entries removed: 0 on an empty history, otherwise 1. A castling
// move is a single entry, so undoing it restores both king and rook.
func (s *Session) UndoLastMove() (int, error) {
	last, ok := s.history.Last()
	if !ok {
		return 0, nil
	}

	s.history = s.history.Truncate(s.history.Len() - 1)
	s.toMove = s.toMove.Opposite()
	s.cache.truncate(s.history.Len())
	if err := s.checkParity(); err != nil {
		return 0, err
	}

	s.logger.Debug("move undone",
		zap.String("session", s.id.String()),
		zap.Int("ply", s.history.Len()+1),
		zap.Stringer("move", last),
	)
	return 1, nil
}

// SetPromotionChoice sets the piece used for promotions that do not name one.
func (s *Session) SetPromotionChoice(p chess.Promotion) error {
	if !p.Valid() {
		return fmt.Errorf("promotion choice %v: %w", p, errors.ErrInvalidPromotion)
	}
	s.promotion = p
	return nil
}

// InCheck reports whether the side to move is in check.
func (s *Session) InCheck() (bool, error) {
	st, err := s.state()
	if err != nil {
		return false, err
	}
	inCheck, err := engine.InCheck(&st.Position, s.toMove)
	return inCheck, s.checkInternal(err)
}

// MatchState evaluates the game for the side to move.
func (s *Session) MatchState() (engine.Outcome, error) {
	st, err := s.state()
	if err != nil {
		return engine.Outcome{}, err
	}
	outcome, err := engine.Evaluate(st, s.toMove)
	if err != nil {
		return engine.Outcome{}, s.checkInternal(err)
	}

	if outcome.Over() && s.endLogged != s.history.Len()+1 {
		s.endLogged = s.history.Len() + 1
		s.logger.Info("game over",
			zap.String("session", s.id.String()),
			zap.Int("ply", s.history.Len()),
			zap.Stringer("outcome", outcome),
		)
	}
	return outcome, nil
}

// state returns the engine state for the current history, extending the
// position memo from its last entry when enabled.
func (s *Session) state() (*engine.State, error) {
	n := s.history.Len()
	if s.cache == nil {
		st, err := engine.Reconstruct(s.history, s.promotion)
		return st, s.checkInternal(err)
	}
	if st, ok := s.cache.get(n); ok {
		return st, nil
	}

	st, ok := s.cache.get(s.cache.size() - 1)
	if !ok {
		var err error
		if st, err = engine.Reconstruct(nil, s.promotion); err != nil {
			return nil, s.checkInternal(err)
		}
		s.cache.put(st)
	}
	for st.Ply() < n {
		next, _, err := st.With(s.history[st.Ply()])
		if err != nil {
			return nil, s.checkInternal(errors.Wrapf(err, "replaying ply %d", st.Ply()+1))
		}
		s.cache.put(next)
		st = next
	}
	return st, nil
}

// checkParity verifies that the side to move agrees with the history length.
func (s *Session) checkParity() error {
	if want := s.history.SideToMove(s.initial); want != s.toMove {
		return s.checkInternal(errors.Internal(
			"side to move is %v after %d plies from %v, want %v", s.toMove, s.history.Len(), s.initial, want))
	}
	return nil
}

// checkInternal logs err at error level if it signals a broken invariant.
func (s *Session) checkInternal(err error) error {
	if err != nil && errors.Is(err, errors.ErrInternal) {
		s.logger.Error("internal inconsistency",
			zap.String("session", s.id.String()),
			zap.Int("ply", s.history.Len()),
			zap.Error(err),
		)
	}
	return err
}
