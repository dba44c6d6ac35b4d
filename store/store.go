// Package store persists completed optimizer runs so they can be compared
// later. Two backends exist: an in-process map and a SQLite file.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/acotour/aco"
)

// CurrentSchemaVersion is written into every Run and checked on decode.
const CurrentSchemaVersion = 1

// Run is one persisted optimizer invocation.
type Run struct {
	SchemaVersion int       `json:"schema_version"`
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`

	Params aco.Params `json:"params"`
	Seed   int64      `json:"seed"`
	Labels []string   `json:"labels,omitempty"`

	Tour       []int     `json:"tour"`
	Distance   float64   `json:"distance"`
	History    []float64 `json:"history"`
	Degenerate int64     `json:"degenerate,omitempty"`
	Optimum    float64   `json:"optimum,omitempty"` // 0 when not computed

	System SysInfo `json:"system"`
}

// NewRun stamps a fresh ID and creation time onto the outcome of res.
func NewRun(p aco.Params, seed int64, labels []string, res aco.Result) Run {
	return Run{
		SchemaVersion: CurrentSchemaVersion,
		ID:            NewRunID(),
		CreatedAt:     time.Now().UTC(),
		Params:        p,
		Seed:          seed,
		Labels:        labels,
		Tour:          res.Tour,
		Distance:      res.Distance,
		History:       res.History,
		Degenerate:    res.Degenerate,
	}
}

// NewRunID returns a random UUID string.
func NewRunID() string {
	return uuid.NewString()
}

// Store defines persistence operations for runs.
// Get returns ok=false, not an error, when id is unknown.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	// ListRuns returns every run ordered by CreatedAt, oldest first.
	ListRuns(ctx context.Context) ([]Run, error)
}
