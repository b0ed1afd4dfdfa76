package stats

import (
	"context"

	"github.com/verte-zerg/srctype/internal/model"
)

// RunLister lists the runs recorded in this process.
type RunLister interface {
	ListRuns(ctx context.Context) ([]model.RunStats, error)
}

// Report contains precomputed data for the end-of-process summary.
type Report struct {
	Runs        []model.RunStats
	BestWPM     int
	AvgWPM      float64
	AvgAccuracy float64
}

// BuildReport loads runs and aggregates them.
func BuildReport(ctx context.Context, st RunLister) (Report, error) {
	runs, err := st.ListRuns(ctx)
	if err != nil {
		return Report{}, err
	}
	return NewReport(runs), nil
}

// NewReport aggregates runs.
func NewReport(runs []model.RunStats) Report {
	report := Report{Runs: runs}
	if len(runs) == 0 {
		return report
	}
	var totalWPM, totalAcc int
	for _, r := range runs {
		totalWPM += r.WPM
		totalAcc += r.Accuracy
		if r.WPM > report.BestWPM {
			report.BestWPM = r.WPM
		}
	}
	count := float64(len(runs))
	report.AvgWPM = float64(totalWPM) / count
	report.AvgAccuracy = float64(totalAcc) / count
	return report
}

// Last returns the most recent run.
func (r Report) Last() (model.RunStats, bool) {
	if len(r.Runs) == 0 {
		return model.RunStats{}, false
	}
	return r.Runs[len(r.Runs)-1], true
}
