package internal

import (
	"errors"
	"fmt"
)

// ErrProjectsDirNotFound is returned when the projects directory does not exist
var ErrProjectsDirNotFound = errors.New("projects directory not found")

// StorageError represents errors accessing session files on disk
type StorageError struct {
	Path string
	Op   string // "stat", "open", "read", "readdir"
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ParseError represents errors parsing user input or configuration
type ParseError struct {
	Source string // "date", "config"
	Key    string // offending value or file path
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error [%s] %s: %v", e.Source, e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ExportError represents errors while rendering a report
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
