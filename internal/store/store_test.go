package store

import (
	"context"
	"testing"
	"time"

	"github.com/verte-zerg/srctype/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := OpenMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestInsertAndListRuns(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	run := model.RunStats{
		StartedAt: start,
		EndedAt:   start.Add(42 * time.Second),
		File:      "cmd/main.go",
		TimeLimit: 60 * time.Second,
		Typed:     180,
		Typo:      12,
		WPM:       48,
		Accuracy:  94,
	}
	id, err := st.InsertRun(ctx, run)
	if err != nil {
		t.Fatalf("insert run: %v", err)
	}

	runs, err := st.ListRuns(ctx)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	run.ID = id
	if !got.StartedAt.Equal(run.StartedAt) || !got.EndedAt.Equal(run.EndedAt) {
		t.Fatalf("unexpected timestamps %+v", got)
	}
	got.StartedAt, got.EndedAt = run.StartedAt, run.EndedAt
	if got != run {
		t.Fatalf("expected %+v, got %+v", run, got)
	}
}

func TestBestWPM(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	best, err := st.BestWPM(ctx)
	if err != nil {
		t.Fatalf("best wpm: %v", err)
	}
	if best != 0 {
		t.Fatalf("expected 0 without runs, got %d", best)
	}

	for _, wpm := range []int{30, 72, 55} {
		if _, err := st.InsertRun(ctx, model.RunStats{WPM: wpm, StartedAt: time.Now(), EndedAt: time.Now()}); err != nil {
			t.Fatalf("insert run: %v", err)
		}
	}
	best, err = st.BestWPM(ctx)
	if err != nil {
		t.Fatalf("best wpm: %v", err)
	}
	if best != 72 {
		t.Fatalf("expected 72, got %d", best)
	}
}

func TestMemoryStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)
	ctx := context.Background()
	if _, err := a.InsertRun(ctx, model.RunStats{StartedAt: time.Now(), EndedAt: time.Now()}); err != nil {
		t.Fatalf("insert run: %v", err)
	}
	runs, err := b.ListRuns(ctx)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected separate in-memory databases")
	}
}
