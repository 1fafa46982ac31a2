package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale/store"
)

func record(id, goal string, at time.Time) store.Record {
	return store.Record{
		ID:          id,
		Pack:        "force-majeure",
		Goal:        goal,
		Proved:      true,
		ValueJSON:   `{"kind":"bool","bool":true}`,
		TraceJSON:   `["SUCCESS: Proven g = true"]`,
		EvaluatedAt: at,
	}
}

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	r := record("01A", "g", time.Now())
	if err := s.SaveVerdict(ctx, r); err != nil {
		t.Fatalf("SaveVerdict: %v", err)
	}

	got, found, err := s.GetVerdict(ctx, "01A")
	if err != nil {
		t.Fatalf("GetVerdict: %v", err)
	}
	if !found {
		t.Fatal("expected record to be found")
	}
	if got.Goal != "g" || !got.Proved {
		t.Errorf("record mismatch: %+v", got)
	}

	if _, found, _ := s.GetVerdict(ctx, "nope"); found {
		t.Error("expected miss for unknown ID")
	}
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := New()

	base := time.Now()
	s.SaveVerdict(ctx, record("01A", "g", base.Add(-2*time.Minute)))
	s.SaveVerdict(ctx, record("01B", "g", base.Add(-1*time.Minute)))
	s.SaveVerdict(ctx, record("01C", "other", base))

	out, err := s.ListVerdicts(ctx, "g", 10)
	if err != nil {
		t.Fatalf("ListVerdicts: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 records for goal g, got %d", len(out))
	}
	if out[0].ID != "01B" || out[1].ID != "01A" {
		t.Errorf("expected newest first, got %s then %s", out[0].ID, out[1].ID)
	}

	all, err := s.ListVerdicts(ctx, "", 1)
	if err != nil {
		t.Fatalf("ListVerdicts all: %v", err)
	}
	if len(all) != 1 || all[0].ID != "01C" {
		t.Errorf("expected limit to keep only the newest, got %+v", all)
	}
}
