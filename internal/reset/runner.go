package reset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"example.com/checkin-reset/internal/database"
	"example.com/checkin-reset/internal/model"
	"example.com/checkin-reset/internal/queue"
	"example.com/checkin-reset/internal/store"
)

// API is the part of the database client the runner needs.
type API interface {
	GetAll(ctx context.Context, coll model.Collection) ([]model.Record, error)
	SetCheckedIn(ctx context.Context, coll model.Collection, id any, checkedIn bool) error
}

// Result is the outcome of resetting one collection.
type Result struct {
	Collection string
	Found      int
	Flagged    int
	Updated    int
	Failed     []*RecordUpdateError
	Err        error // set when the fetch failed
}

type Runner struct {
	api     API
	out     io.Writer
	runID   string
	journal store.Journal
	pub     queue.Publisher
}

type Option func(*Runner)

// WithJournal records every attempted update in j.
func WithJournal(j store.Journal) Option {
	return func(r *Runner) { r.journal = j }
}

// WithPublisher publishes a summary after each collection.
func WithPublisher(p queue.Publisher) Option {
	return func(r *Runner) { r.pub = p }
}

func WithRunID(id string) Option {
	return func(r *Runner) { r.runID = id }
}

func NewRunner(api API, out io.Writer, opts ...Option) (*Runner, error) {
	if api == nil {
		return nil, errors.New("nil database api")
	}
	if out == nil {
		out = io.Discard
	}
	r := &Runner{api: api, out: out}
	for _, opt := range opts {
		opt(r)
	}
	if r.runID == "" {
		r.runID = uuid.NewString()
	}
	return r, nil
}

func (r *Runner) RunID() string { return r.runID }

// Run resets teams then members. A failure in one collection never stops the next.
func (r *Runner) Run(ctx context.Context) []Result {
	r.printf("Starting check-in reset process...\n")
	var results []Result
	for i, coll := range []model.Collection{model.Teams, model.Members} {
		if i > 0 {
			r.printf("\n")
		}
		res, _ := r.ResetCollection(ctx, coll)
		results = append(results, res)
	}
	r.printf("\nCheck-in reset process completed!\n")
	return results
}

// ResetCollection sets checked_in to false on every record of coll where it is true.
func (r *Runner) ResetCollection(ctx context.Context, coll model.Collection) (Result, error) {
	res := Result{Collection: coll.Name}
	r.printf("Resetting %s check-ins...\n", coll.Name)

	recs, err := r.api.GetAll(ctx, coll)
	if err != nil {
		var se *database.StatusError
		if errors.As(err, &se) {
			r.printf("Error fetching %s: %d\n%s\n", coll.Plural, se.Code, se.Body)
		} else {
			r.printf("Error: %v\n", err)
		}
		res.Err = &CollectionFetchError{Collection: coll.Name, Err: err}
		r.publish(ctx, res)
		return res, res.Err
	}
	if len(recs) == 0 {
		r.printf("No %s found\n", coll.Plural)
		r.publish(ctx, res)
		return res, nil
	}

	res.Found = len(recs)
	r.printf("Found %d %s\n", res.Found, coll.Plural)

	for _, rec := range recs {
		if !rec.CheckedIn() {
			continue
		}
		res.Flagged++
		if uerr := r.resetRecord(ctx, coll, rec); uerr != nil {
			res.Failed = append(res.Failed, uerr)
			continue
		}
		res.Updated++
	}

	r.printf("Updated %d %s\n", res.Updated, coll.Plural)
	r.publish(ctx, res)
	return res, nil
}

func (r *Runner) resetRecord(ctx context.Context, coll model.Collection, rec model.Record) *RecordUpdateError {
	id, ok := rec.ID()
	recordID := model.FormatID(id)
	entry := &model.ResetEntry{
		RunID:       r.runID,
		Collection:  coll.Name,
		RecordID:    recordID,
		DisplayName: rec.Label(coll.DisplayName),
		Status:      model.ResetDone,
	}

	var err error
	if !ok {
		err = errMissingID
	} else {
		err = r.api.SetCheckedIn(ctx, coll, id, false)
	}
	if err != nil {
		var se *database.StatusError
		if errors.As(err, &se) {
			r.printf("Failed to update %s %s: %d\n%s\n", coll.Name, recordID, se.Code, se.Body)
		} else {
			r.printf("Failed to update %s %s: %v\n", coll.Name, recordID, err)
		}
		entry.Status = model.ResetFailed
		entry.Error = err.Error()
		r.record(ctx, entry)
		return &RecordUpdateError{Collection: coll.Name, RecordID: recordID, Err: err}
	}

	r.printf("Reset %s: %s\n", coll.Name, entry.DisplayName)
	r.record(ctx, entry)
	return nil
}

func (r *Runner) record(ctx context.Context, e *model.ResetEntry) {
	if r.journal == nil {
		return
	}
	if err := r.journal.Append(ctx, e); err != nil {
		log.Printf("reset: journal append for %s %s failed: %v", e.Collection, e.RecordID, err)
	}
}

func (r *Runner) publish(ctx context.Context, res Result) {
	if r.pub == nil {
		return
	}
	s := model.ResetSummary{
		RunID:      r.runID,
		Collection: res.Collection,
		Found:      res.Found,
		Flagged:    res.Flagged,
		Updated:    res.Updated,
		Failed:     len(res.Failed),
	}
	if res.Err != nil {
		s.Error = res.Err.Error()
	}
	if err := r.pub.Publish(ctx, s); err != nil {
		log.Printf("reset: publish summary for %s failed: %v", res.Collection, err)
	}
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}
