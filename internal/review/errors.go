package review

import (
	"errors"
	"fmt"
)

var (
	// ErrEndOfReview is returned by Cursor.Current when every pair has been visited.
	ErrEndOfReview = errors.New("all pairs have been reviewed")

	// ErrEmptyCollection is returned when saving a collection with no pairs,
	// since there is no row to derive a header from.
	ErrEmptyCollection = errors.New("collection has no pairs")

	// ErrInvalidStatus is returned when annotating with an unknown verdict.
	ErrInvalidStatus = errors.New("invalid status")
)

// DataSourceError reports an input file that is missing or malformed.
type DataSourceError struct {
	Path string
	Err  error
}

func (e *DataSourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("data source: %v", e.Err)
	}
	return fmt.Sprintf("data source %s: %v", e.Path, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// PersistenceError reports an output file that could not be written.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
