// Package stats contains the progress sampler, run summaries and text charts.
package stats

// Point is a plot-ready sample.
type Point struct {
	X float64
	Y float64
}

// Metrics is the part of a run the sampler reads.
type Metrics interface {
	WPM() int
	Accuracy() int
}

// Progress records one wpm and accuracy sample per elapsed second of a run.
// It is a value; Sample returns an extended copy.
type Progress struct {
	wpm []int
	acc []int
}

// Sample appends the current wpm and accuracy of m.
func (p Progress) Sample(m Metrics) Progress {
	wpm := make([]int, len(p.wpm), len(p.wpm)+1)
	copy(wpm, p.wpm)
	acc := make([]int, len(p.acc), len(p.acc)+1)
	copy(acc, p.acc)
	return Progress{
		wpm: append(wpm, m.WPM()),
		acc: append(acc, m.Accuracy()),
	}
}

// Len returns the number of samples.
func (p Progress) Len() int {
	return len(p.wpm)
}

// MaxWPM returns the highest sampled wpm, or 0 without samples.
func (p Progress) MaxWPM() int {
	maxVal := 0
	for _, v := range p.wpm {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// WPMPoints returns the wpm series starting at (0, 0).
func (p Progress) WPMPoints() []Point {
	return withOrigin(p.wpm, 0)
}

// AccPoints returns the accuracy series starting at (0, 100).
func (p Progress) AccPoints() []Point {
	return withOrigin(p.acc, 100)
}

func withOrigin(values []int, origin float64) []Point {
	points := make([]Point, 0, len(values)+1)
	points = append(points, Point{X: 0, Y: origin})
	for i, v := range values {
		points = append(points, Point{X: float64(i + 1), Y: float64(v)})
	}
	return points
}

// Values returns the Y coordinates of points.
func Values(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Y
	}
	return out
}
