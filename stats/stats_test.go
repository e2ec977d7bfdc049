package stats

import (
	"sync"
	"testing"

	"github.com/matryer/is"
)

func TestRunningMatchesSummarize(t *testing.T) {
	is := is.New(t)
	cases := [][]int{
		{10, 12, 23, 23, 16, 23, 21, 16},
		{14, 35, 71, 124, 10, 24, 55, 33, 87, 19},
		{1},
		{1, 1},
		{7, 2},
	}
	for _, scores := range cases {
		r := &Running{}
		for i, sc := range scores {
			is.Equal(r.Add(sc), i+1)
		}
		got := r.Snapshot()
		want := Summarize(scores)
		is.Equal(got.Episodes, want.Episodes)
		is.Equal(got.Min, want.Min)
		is.Equal(got.Max, want.Max)
		is.Equal(got.Avg, want.Avg)
		is.True(FuzzyEqual(got.Mean, want.Mean))
		is.True(FuzzyEqual(got.Stdev, want.Stdev))
		is.True(FuzzyEqual(got.CIHalfWidth, want.CIHalfWidth))
		is.Equal(got.Median, 0.0)
	}
}

func TestRunningEmpty(t *testing.T) {
	is := is.New(t)
	r := &Running{}
	is.Equal(r.Snapshot(), Summary{})
}

func TestRunningConcurrentAdds(t *testing.T) {
	is := is.New(t)
	r := &Running{}
	var wg sync.WaitGroup
	for w := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 250 {
				r.Add(w*250 + i)
			}
		}()
	}
	wg.Wait()
	s := r.Snapshot()
	is.Equal(s.Episodes, 1000)
	is.Equal(s.Min, 0)
	is.Equal(s.Max, 999)
	is.True(FuzzyEqual(s.Mean, 499.5))
}
