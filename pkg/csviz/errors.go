package csviz

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the dataset file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates an xlsx dataset that is not a readable workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// LoadError represents a failure while loading one dataset.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
