// Package apperr defines the failure kinds session operations report and a
// few console formatting helpers for the CLI layer.
package apperr

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/dailydash/internal/logger"
)

// Sentinel kinds. Callers classify failures with errors.Is against these, so
// every operation failure must wrap exactly one of them.
var (
	// ErrNotFound reports an id or name that does not resolve to anything.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput reports malformed user input; state is unchanged.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCapacity reports a full task-slot set or habit list; distinct from
	// ErrNotFound so the CLI can word the message correctly.
	ErrCapacity = errors.New("capacity exceeded")
)

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// Invalidf wraps ErrInvalidInput with a formatted message.
func Invalidf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidInput)...)
}

// Capacityf wraps ErrCapacity with a formatted message.
func Capacityf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrCapacity)...)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
