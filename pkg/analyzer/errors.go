package analyzer

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the referenced workbook is not loaded.
var ErrFileNotFound = errors.New("file not loaded")

// ErrSheetNotFound indicates the referenced sheet does not exist in the
// workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrColumnNotFound indicates the referenced column does not exist in the
// sheet.
var ErrColumnNotFound = errors.New("column not found")

// LoadError reports a workbook ingestion failure tagged with the file label.
// Loads are never retried automatically.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %q: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
