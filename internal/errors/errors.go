// Package errors provides sentinel errors and error types for the chess core.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrMissingKing indicates a position without exactly one king per colour.
	ErrMissingKing = errors.New("position must have exactly one king per colour")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSAN indicates move text that is not algebraic notation.
	ErrInvalidSAN = errors.New("invalid SAN move")

	// ErrAmbiguousMove indicates SAN that fits more than one legal move.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrUnresolvedTransition indicates two snapshots whose difference
	// could not be explained as a single move.
	ErrUnresolvedTransition = errors.New("unresolved transition")

	// ErrEmptyLog indicates a snapshot log without a single usable position.
	ErrEmptyLog = errors.New("no positions in log")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNothingToUndo indicates an undo request on a log at its first entry.
	ErrNothingToUndo = errors.New("nothing to undo")
)

// ParseError represents a FEN parsing error with field and column context.
type ParseError struct {
	Err    error  // The underlying error
	Input  string // The offending FEN string
	Field  string // FEN field name ("placement", "active colour", ...)
	Column int    // Column number (1-based, 0 if unknown)
	Got    string // What was found
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		loc := e.Field
		if e.Column > 0 {
			loc += fmt.Sprintf(" col %d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
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
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// MoveError wraps errors with move context: the ply at which the move was
// attempted and its text.
type MoveError struct {
	Err      error  // The underlying error
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	if len(parts) == 0 {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "move error"
	}

	context := strings.Join(parts, ", ")
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

// TransitionError reports a snapshot pair that reconstruction skipped.
type TransitionError struct {
	Err    error  // The underlying error
	File   string // Source file name (if known)
	Line   int    // 1-based line of the later snapshot
	Reason string // Short description of why it was skipped
}

// Error returns a formatted error message.
func (e *TransitionError) Error() string {
	loc := fmt.Sprintf("line %d", e.Line)
	if e.File != "" {
		loc = fmt.Sprintf("%s:%d", e.File, e.Line)
	}
	msg := loc
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *TransitionError) Unwrap() error {
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

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
