package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale/store"
)

// TestSQLiteIntegrationBasic tests basic save/get operations
func TestSQLiteIntegrationBasic(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "verdicts.db")

	st, err := OpenSQLite(ctx, dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer st.Close()

	rec := store.Record{
		ID:          "01HQXW2J9N4R8T6V0B3D5F7G9K",
		Pack:        "force-majeure",
		Goal:        "is_valid_force_majeure",
		Proved:      false,
		TraceJSON:   `["FAIL: Could not prove is_valid_force_majeure"]`,
		EvaluatedAt: time.Now().UTC(),
	}

	if err := st.SaveVerdict(ctx, rec); err != nil {
		t.Fatalf("SaveVerdict: %v", err)
	}

	got, found, err := st.GetVerdict(ctx, rec.ID)
	if err != nil {
		t.Fatalf("GetVerdict: %v", err)
	}
	if !found {
		t.Fatal("record should be found")
	}

	if got.Pack != rec.Pack || got.Goal != rec.Goal {
		t.Errorf("pack/goal mismatch: got %q/%q", got.Pack, got.Goal)
	}
	if got.Proved {
		t.Error("proved flag should round trip as false")
	}
	if got.TraceJSON != rec.TraceJSON {
		t.Errorf("trace mismatch: got %q", got.TraceJSON)
	}
	if !got.EvaluatedAt.Equal(rec.EvaluatedAt) {
		t.Errorf("timestamp mismatch: got %v, want %v", got.EvaluatedAt, rec.EvaluatedAt)
	}

	if _, found, err := st.GetVerdict(ctx, "missing"); err != nil || found {
		t.Errorf("expected clean miss, found=%v err=%v", found, err)
	}
}

// TestSQLiteIntegrationReSave tests that saving the same ID replaces the row
func TestSQLiteIntegrationReSave(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "verdicts.db")

	st, err := OpenSQLite(ctx, dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer st.Close()

	rec := store.Record{
		ID:          "01A",
		Goal:        "g",
		Proved:      false,
		EvaluatedAt: time.Now().UTC(),
	}
	if err := st.SaveVerdict(ctx, rec); err != nil {
		t.Fatalf("first SaveVerdict: %v", err)
	}

	rec.Proved = true
	rec.ValueJSON = `{"kind":"bool","bool":true}`
	if err := st.SaveVerdict(ctx, rec); err != nil {
		t.Fatalf("second SaveVerdict: %v", err)
	}

	got, _, err := st.GetVerdict(ctx, "01A")
	if err != nil {
		t.Fatalf("GetVerdict: %v", err)
	}
	if !got.Proved || got.ValueJSON != rec.ValueJSON {
		t.Errorf("replace lost fields: %+v", got)
	}

	list, err := st.ListVerdicts(ctx, "g", 10)
	if err != nil {
		t.Fatalf("ListVerdicts: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected a single row after re-save, got %d", len(list))
	}
}

// TestSQLiteIntegrationList tests goal filtering and ordering
func TestSQLiteIntegrationList(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "verdicts.db")

	st, err := OpenSQLite(ctx, dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer st.Close()

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		goal := "g"
		if i%2 == 1 {
			goal = "other"
		}
		rec := store.Record{
			ID:          fmt.Sprintf("01-%02d", i),
			Goal:        goal,
			EvaluatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := st.SaveVerdict(ctx, rec); err != nil {
			t.Fatalf("SaveVerdict %d: %v", i, err)
		}
	}

	out, err := st.ListVerdicts(ctx, "g", 2)
	if err != nil {
		t.Fatalf("ListVerdicts: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
	if out[0].ID != "01-04" || out[1].ID != "01-02" {
		t.Errorf("expected newest first, got %s then %s", out[0].ID, out[1].ID)
	}

	all, err := st.ListVerdicts(ctx, "", 10)
	if err != nil {
		t.Fatalf("ListVerdicts all: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("expected all 5 records without goal filter, got %d", len(all))
	}
}
