// Package errors provides sentinel errors and error types for chess-lab.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidMove indicates move text that does not describe any
	// conceivable chess move.
	ErrInvalidMove = errors.New("invalid move")

	// ErrIllegalMove indicates a well-formed move that no piece can
	// legally play in the current position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrAmbiguousMove indicates move text that more than one piece
	// could legally play; the caller must add a file or rank hint.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrSquareOccupied indicates a piece placement onto an occupied square.
	ErrSquareOccupied = errors.New("square already occupied")

	// ErrSquareEmpty indicates a piece removal from an empty square.
	ErrSquareEmpty = errors.New("square is empty")

	// ErrUnalignedSquares indicates a ray query between two squares that
	// share no rank, file, or diagonal.
	ErrUnalignedSquares = errors.New("squares are not aligned")

	// ErrNoNextMove indicates a redo with no recorded continuation.
	ErrNoNextMove = errors.New("no next move recorded")
)

// MoveError wraps a move failure with the offending move text and ply.
// It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	Text string // The move text that caused the error
	Ply  int    // 1-based ply number (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	if e.Ply > 0 {
		return fmt.Sprintf("ply %d, move %q: %v", e.Ply, e.Text, e.Err)
	}
	return fmt.Sprintf("move %q: %v", e.Text, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// FENError wraps a FEN failure with the field that failed to parse.
type FENError struct {
	Err   error  // The underlying error
	Field string // Name of the FEN field ("placement", "side to move", ...)
	Value string // The offending field text
}

// Error returns a formatted error message with field context.
func (e *FENError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("FEN %s field %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("FEN %q: %v", e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *FENError) Unwrap() error {
	return e.Err
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
