package labmap

import (
	"errors"
	"fmt"
)

// ErrSourceMissing indicates the source workbook path is empty or does not exist.
var ErrSourceMissing = errors.New("source workbook missing")

// ErrUnreadable indicates a source file could not be opened or parsed.
var ErrUnreadable = errors.New("source unreadable")

// ErrWrite indicates an output document could not be written.
var ErrWrite = errors.New("write failed")

// BuildError represents a failure while producing one output document.
type BuildError struct {
	Document string
	Stage    string // "open", "styles", "reflow", "save", "build"
	Err      error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("building %s (%s): %v", e.Document, e.Stage, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// NewBuildError creates a new BuildError.
func NewBuildError(document, stage string, err error) *BuildError {
	return &BuildError{
		Document: document,
		Stage:    stage,
		Err:      err,
	}
}
