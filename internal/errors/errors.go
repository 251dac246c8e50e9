// Package errors provides sentinel errors and error types for the rules engine.
// It defines the caller-facing failure conditions and structured error types
// that preserve context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSquare indicates coordinates outside the 8x8 board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrNoPiece indicates a move query or move targeting an empty square.
	ErrNoPiece = errors.New("no piece at square")

	// ErrIllegalMove indicates a move that violates chess rules or is out of turn.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidPromotion indicates a promotion choice other than queen, rook, bishop or knight.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrInternal indicates a broken engine invariant, such as a missing king.
	// It signals a defect in the engine, never a caller mistake.
	ErrInternal = errors.New("internal inconsistency")

	// ErrInvalidRecord indicates a malformed saved game record.
	ErrInvalidRecord = errors.New("invalid game record")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// MoveError wraps errors with move context: the ply at which the move was
// attempted, the move itself and the side that attempted it.
type MoveError struct {
	Err    error  // The underlying error
	Ply    int    // 1-based ply number the move would have had (0 if not applicable)
	Move   string // The move that caused the error (if applicable)
	Colour string // The side that attempted the move (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Colour != "" {
		parts = append(parts, e.Colour)
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %s", e.Move))
	}

	context := strings.Join(parts, ", ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "move error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// RecordError represents a failure to load a saved game record.
type RecordError struct {
	Err   error  // The underlying error
	File  string // Source file name (if known)
	Index int    // 1-based index of the offending move (0 if the record as a whole is bad)
}

// Error returns a formatted error message with location context.
func (e *RecordError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, e.File)
	}
	if e.Index > 0 {
		parts = append(parts, fmt.Sprintf("move %d", e.Index))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "record error"
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// Internal builds an ErrInternal with a description of the broken invariant.
func Internal(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInternal, fmt.Sprintf(format, args...))
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
