package stats

import "testing"

type fixedMetrics struct {
	wpm int
	acc int
}

func (m fixedMetrics) WPM() int      { return m.wpm }
func (m fixedMetrics) Accuracy() int { return m.acc }

func TestProgressEmpty(t *testing.T) {
	var p Progress
	if p.MaxWPM() != 0 {
		t.Fatalf("expected 0 max wpm, got %d", p.MaxWPM())
	}
	wpm := p.WPMPoints()
	if len(wpm) != 1 || wpm[0] != (Point{X: 0, Y: 0}) {
		t.Fatalf("unexpected wpm points %+v", wpm)
	}
	acc := p.AccPoints()
	if len(acc) != 1 || acc[0] != (Point{X: 0, Y: 100}) {
		t.Fatalf("unexpected acc points %+v", acc)
	}
}

func TestProgressSample(t *testing.T) {
	var p Progress
	p = p.Sample(fixedMetrics{wpm: 36, acc: 90})
	first := p
	p = p.Sample(fixedMetrics{wpm: 60, acc: 95})
	p = p.Sample(fixedMetrics{wpm: 48, acc: 80})

	if p.Len() != 3 || first.Len() != 1 {
		t.Fatalf("expected sampling to leave earlier values untouched")
	}
	if p.MaxWPM() != 60 {
		t.Fatalf("expected max 60, got %d", p.MaxWPM())
	}
	wpm := p.WPMPoints()
	want := []Point{{0, 0}, {1, 36}, {2, 60}, {3, 48}}
	if len(wpm) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(wpm))
	}
	for i := range want {
		if wpm[i] != want[i] {
			t.Fatalf("point %d: expected %+v, got %+v", i, want[i], wpm[i])
		}
	}
	acc := p.AccPoints()
	if acc[0].Y != 100 || acc[3].Y != 80 {
		t.Fatalf("unexpected acc points %+v", acc)
	}
	if got := Values(acc); len(got) != 4 || got[1] != 90 {
		t.Fatalf("unexpected values %v", got)
	}
}
