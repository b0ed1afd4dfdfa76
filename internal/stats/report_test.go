package stats

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/srctype/internal/model"
	"github.com/verte-zerg/srctype/internal/store"
)

func TestBuildReport(t *testing.T) {
	st, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	for i, wpm := range []int{40, 60, 50} {
		start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
		run := model.RunStats{
			StartedAt: start,
			EndedAt:   start.Add(30 * time.Second),
			File:      "/src/main.go",
			TimeLimit: 30 * time.Second,
			Typed:     100,
			Typo:      10,
			WPM:       wpm,
			Accuracy:  91,
		}
		if _, err := st.InsertRun(ctx, run); err != nil {
			t.Fatalf("insert run: %v", err)
		}
	}

	report, err := BuildReport(ctx, st)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(report.Runs))
	}
	if report.BestWPM != 60 {
		t.Fatalf("expected best 60, got %d", report.BestWPM)
	}
	if report.AvgWPM != 50 {
		t.Fatalf("expected avg 50, got %.2f", report.AvgWPM)
	}
	last, ok := report.Last()
	if !ok || last.WPM != 50 {
		t.Fatalf("unexpected last run %+v", last)
	}
}

func TestRenderSummary(t *testing.T) {
	report := NewReport([]model.RunStats{
		{File: "/a/main.go", TimeLimit: 30 * time.Second, Typed: 90, Typo: 10, WPM: 42, Accuracy: 90},
		{File: "/a/lib.rs", TimeLimit: 60 * time.Second, Typed: 200, Typo: 0, WPM: 70, Accuracy: 100},
	})
	var buf bytes.Buffer
	if err := RenderSummary(&buf, report); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Runs: 2", "Avg WPM: 56.00", "Best WPM: 70", "Avg Accuracy: 95.00%", "WPM trend: [ @]", "main.go", "lib.rs"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, NewReport(nil)); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "No runs finished." {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
