package bale

import (
	"context"
	"testing"

	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale/logic"
	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale/rulepack"
	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale/store/memstore"
)

func TestAdjudicateEconomicHardship(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()

	adj, err := New(Options{Pack: rulepack.ForceMajeure(), Store: st})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer adj.Close()

	facts, err := rulepack.FactsFromJSON([]byte(`{
		"is_economic_change": true,
		"is_external": true,
		"is_unforeseeable": true
	}`))
	if err != nil {
		t.Fatalf("FactsFromJSON: %v", err)
	}

	v, err := adj.Adjudicate(ctx, facts, "")
	if err != nil {
		t.Fatalf("Adjudicate: %v", err)
	}

	if v.Proved {
		t.Fatal("economic hardship must not be valid force majeure")
	}
	if v.Goal != rulepack.GoalValidForceMajeure {
		t.Errorf("expected pack goal default, got %q", v.Goal)
	}
	if len(v.Trace) == 0 {
		t.Error("expected derivation trace on the verdict")
	}

	// The verdict was persisted.
	rec, found, err := st.GetVerdict(ctx, v.ID)
	if err != nil || !found {
		t.Fatalf("stored verdict missing: found=%v err=%v", found, err)
	}
	if rec.Goal != v.Goal {
		t.Errorf("stored goal mismatch: %q", rec.Goal)
	}
}

func TestAdjudicateIsolatedPerCall(t *testing.T) {
	adj, err := New(Options{Pack: rulepack.ForceMajeure()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer adj.Close()

	ctx := context.Background()
	all := map[string]logic.Value{
		"is_external":      logic.Bool(true),
		"is_unforeseeable": logic.Bool(true),
		"is_irresistible":  logic.Bool(true),
	}

	v, err := adj.Adjudicate(ctx, all, "")
	if err != nil {
		t.Fatalf("Adjudicate: %v", err)
	}
	if !v.Proved || !v.Value.Equal(logic.Bool(true)) {
		t.Fatal("expected valid force majeure with all three prongs")
	}

	// A second call with no facts must not see the first call's
	// memoized conclusions.
	v2, err := adj.Adjudicate(ctx, nil, "")
	if err != nil {
		t.Fatalf("second Adjudicate: %v", err)
	}
	if v2.Proved {
		t.Error("fact sets bled between adjudications")
	}
}

func TestNewRequiresRules(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Error("expected error for empty pack")
	}
}
