package stats

import (
	"math"
	"sync"
)

const Epsilon = 1e-6

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Running tracks the mean and spread of episode scores as they come in,
// using Welford's update. It is safe for use by several workers.
type Running struct {
	mu    sync.Mutex
	n     int
	sum   int
	mean  float64
	m2    float64
	best  int
	worst int
}

// Add records one final score and returns the number of scores seen so far.
func (r *Running) Add(score int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.n == 0 || score > r.best {
		r.best = score
	}
	if r.n == 0 || score < r.worst {
		r.worst = score
	}
	r.n++
	r.sum += score
	x := float64(score)
	delta := x - r.mean
	r.mean += delta / float64(r.n)
	r.m2 += delta * (x - r.mean)
	return r.n
}

// Snapshot returns a Summary of the scores so far. Median is not tracked
// and stays zero.
func (r *Running) Snapshot() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.n == 0 {
		return Summary{}
	}
	var stdev float64
	if r.n > 1 {
		stdev = math.Sqrt(r.m2 / float64(r.n-1))
	}
	return Summary{
		Episodes:    r.n,
		Min:         r.worst,
		Max:         r.best,
		Avg:         r.sum / r.n,
		Mean:        r.mean,
		Stdev:       stdev,
		CIHalfWidth: ciHalfWidth(stdev, r.n),
	}
}
