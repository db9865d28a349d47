package store

import (
	"context"
	"errors"

	"example.com/checkin-reset/internal/model"
)

var ErrNotFound = errors.New("reset run not found")

// Journal keeps a record of every attempted checked_in reset.
type Journal interface {
	Append(ctx context.Context, e *model.ResetEntry) error
	ListByRun(ctx context.Context, runID string) ([]model.ResetEntry, error)
}
