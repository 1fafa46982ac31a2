// Package bale wires the symbolic logic engine to a rule pack and an
// optional verdict store. It is the in-process surface consumed by the
// surrounding contract-analysis pipeline: the pipeline extracts boolean
// facts, the adjudicator proves the pack's goal and returns an
// auditable verdict.
package bale

import (
	"context"
	"errors"

	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale/logic"
	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale/rulepack"
	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale/store"
	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale/verdict"
)

// Adjudicator evaluates fact sets against a fixed rule pack.
type Adjudicator struct {
	pack     rulepack.Pack
	store    store.Store
	builder  *verdict.Builder
	maxDepth int
}

// Options configures an Adjudicator instance
type Options struct {
	Pack rulepack.Pack

	// Store receives every verdict when set; nil disables persistence.
	Store store.Store

	// MaxDepth bounds proof recursion per evaluation; 0 means unbounded.
	MaxDepth int
}

// New creates an Adjudicator with the given dependencies
func New(opts Options) (*Adjudicator, error) {
	if len(opts.Pack.Rules) == 0 {
		return nil, errors.New("bale: rule pack has no rules")
	}
	return &Adjudicator{
		pack:     opts.Pack,
		store:    opts.Store,
		builder:  verdict.New(),
		maxDepth: opts.MaxDepth,
	}, nil
}

// Close cleanly shuts down the Adjudicator instance
func (a *Adjudicator) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

// Goal returns the pack's designated top-level goal.
func (a *Adjudicator) Goal() string {
	return a.pack.Goal
}

// Adjudicate proves goal from the given facts and returns the verdict.
// An empty goal defaults to the pack's own goal. Each call runs on a
// fresh engine, so fact sets never bleed between evaluations and
// concurrent calls are safe.
func (a *Adjudicator) Adjudicate(ctx context.Context, facts map[string]logic.Value, goal string) (verdict.Verdict, error) {
	if goal == "" {
		goal = a.pack.Goal
	}

	eng := logic.New()
	eng.MaxDepth = a.maxDepth
	if err := a.pack.Apply(eng); err != nil {
		return verdict.Verdict{}, err
	}
	for name, v := range facts {
		eng.SetFact(name, v)
	}

	value, proved, err := eng.Evaluate(goal)
	if err != nil {
		return verdict.Verdict{}, err
	}

	v := a.builder.Build(a.pack.Name, goal, value, proved, eng.Trace())

	if a.store != nil {
		rec, err := store.FromVerdict(v)
		if err != nil {
			return verdict.Verdict{}, err
		}
		if err := a.store.SaveVerdict(ctx, rec); err != nil {
			return verdict.Verdict{}, err
		}
	}

	return v, nil
}
