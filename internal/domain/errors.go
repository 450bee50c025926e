package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a requested file does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrUnsupportedFormat is returned for file types the extractor cannot handle.
	ErrUnsupportedFormat = errors.New("unsupported file type")
)

// ConnectionError means the inference server is unreachable. It aborts a
// fallback chain immediately; remaining candidates are not tried.
type ConnectionError struct {
	Addr string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot connect to Ollama server at %s, please make sure Ollama is running", e.Addr)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// NoModelAvailableError means the server was reachable but no candidate model
// produced a response. Models lists every identifier tried so the user can be
// told what to install.
type NoModelAvailableError struct {
	Models []string
}

func (e *NoModelAvailableError) Error() string {
	return fmt.Sprintf("no suitable model available, please install one of: %s", strings.Join(e.Models, ", "))
}

// CorruptHistoryError means an existing history document could not be parsed.
// The store never silently discards unreadable history.
type CorruptHistoryError struct {
	Path string
	Err  error
}

func (e *CorruptHistoryError) Error() string {
	return fmt.Sprintf("failed to parse history file %s: %v", e.Path, e.Err)
}

func (e *CorruptHistoryError) Unwrap() error { return e.Err }
