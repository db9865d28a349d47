package reset

import (
	"errors"
	"fmt"
)

var errMissingID = errors.New("record has no _id")

// CollectionFetchError aborts the reset of one collection; no updates are attempted.
type CollectionFetchError struct {
	Collection string
	Err        error
}

func (e *CollectionFetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Collection, e.Err)
}

func (e *CollectionFetchError) Unwrap() error { return e.Err }

// RecordUpdateError means a single record kept its flag; the run continues.
type RecordUpdateError struct {
	Collection string
	RecordID   string
	Err        error
}

func (e *RecordUpdateError) Error() string {
	return fmt.Sprintf("update %s %s: %v", e.Collection, e.RecordID, e.Err)
}

func (e *RecordUpdateError) Unwrap() error { return e.Err }
