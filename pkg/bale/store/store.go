// Package store defines persistence for evaluation verdicts.
//
// Verdicts are the audit trail of the logic engine: each record keeps
// the proved value and the full derivation trace so a past decision can
// be replayed for explanation. Rule packs themselves are never
// persisted; they are loaded fresh per run.
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale/logic"
	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale/verdict"
)

// Store persists verdicts.
type Store interface {
	Close() error

	SaveVerdict(ctx context.Context, r Record) error
	GetVerdict(ctx context.Context, id string) (Record, bool, error)
	// ListVerdicts returns the most recent verdicts for a goal, newest
	// first. An empty goal matches all goals.
	ListVerdicts(ctx context.Context, goal string, limit int) ([]Record, error)
}

// Record is the flat storage shape of a verdict. Value and trace are
// JSON-encoded strings so backends do not need to understand them.
type Record struct {
	ID          string
	Pack        string
	Goal        string
	Proved      bool
	ValueJSON   string // tagged logic.Value object; empty when unproved
	TraceJSON   string // JSON array of trace lines
	EvaluatedAt time.Time
}

// FromVerdict flattens a verdict into its storage shape.
func FromVerdict(v verdict.Verdict) (Record, error) {
	r := Record{
		ID:          v.ID,
		Pack:        v.Pack,
		Goal:        v.Goal,
		Proved:      v.Proved,
		EvaluatedAt: v.EvaluatedAt,
	}

	if v.Proved {
		vj, err := json.Marshal(v.Value)
		if err != nil {
			return Record{}, err
		}
		r.ValueJSON = string(vj)
	}

	tj, err := json.Marshal(v.Trace)
	if err != nil {
		return Record{}, err
	}
	r.TraceJSON = string(tj)
	return r, nil
}

// ToVerdict rebuilds a verdict from its storage shape.
func (r Record) ToVerdict() (verdict.Verdict, error) {
	v := verdict.Verdict{
		ID:          r.ID,
		Pack:        r.Pack,
		Goal:        r.Goal,
		Proved:      r.Proved,
		EvaluatedAt: r.EvaluatedAt,
	}

	if r.ValueJSON != "" {
		var val logic.Value
		if err := json.Unmarshal([]byte(r.ValueJSON), &val); err != nil {
			return verdict.Verdict{}, err
		}
		v.Value = val
	}

	if r.TraceJSON != "" {
		if err := json.Unmarshal([]byte(r.TraceJSON), &v.Trace); err != nil {
			return verdict.Verdict{}, err
		}
	}
	return v, nil
}
