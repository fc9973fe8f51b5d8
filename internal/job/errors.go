package job

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	ErrInputRequired = errors.New("input file is required")
	ErrInputMissing  = errors.New("input file does not exist")
	ErrIsDirectory   = errors.New("path is a directory")
	ErrFileTooLarge  = errors.New("file too large")
)

// ReadError wraps a failure while reading the input file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError wraps a failure while writing the output file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
