package stats

import (
	"math"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	is := is.New(t)
	scores := []int{10, 12, 23, 23, 16, 23, 21, 16}
	s := Summarize(scores)
	is.Equal(s.Episodes, 8)
	is.Equal(s.Min, 10)
	is.Equal(s.Max, 23)
	is.Equal(s.Avg, 18)
	is.True(FuzzyEqual(s.Mean, 18))
	is.True(FuzzyEqual(s.Stdev, 5.2372293656638))
	// empirical quantile takes the lower middle value
	is.Equal(s.Median, 16.0)
	assert.InDelta(t, 1.959964*5.2372293656638/math.Sqrt(8), s.CIHalfWidth, 1e-4)
}

func TestSummarizeEdges(t *testing.T) {
	is := is.New(t)
	is.Equal(Summarize(nil), Summary{})

	one := Summarize([]int{41})
	is.Equal(one.Min, 41)
	is.Equal(one.Max, 41)
	is.Equal(one.Avg, 41)
	is.Equal(one.Stdev, 0.0)
	is.Equal(one.CIHalfWidth, 0.0)
	is.Equal(one.Median, 41.0)

	// integer average truncates
	is.Equal(Summarize([]int{1, 2}).Avg, 1)
}

func TestSummaryString(t *testing.T) {
	s := Summarize([]int{3, 5})
	assert.Contains(t, s.String(), "episodes: 2, min: 3, max: 5, avg: 4")
}

func TestZVal(t *testing.T) {
	assert.InDelta(t, 1.959964, ZVal(95), 1e-5)
	assert.InDelta(t, 2.575829, ZVal(99), 1e-5)
}

func TestFprintHistogram(t *testing.T) {
	is := is.New(t)
	var sb strings.Builder
	is.NoErr(FprintHistogram(&sb, nil))
	is.Equal(sb.String(), "")

	is.NoErr(FprintHistogram(&sb, []int{10, 20, 20, 30, 45, 50, 50, 50}))
	is.True(sb.Len() > 0)
}
