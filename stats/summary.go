package stats

import (
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	DefaultConfidence = 95
	HistogramBins     = 15
	HistogramWidth    = 50
)

// Summary describes the final scores of a set of episodes.
type Summary struct {
	Episodes int `yaml:"episodes"`
	Min      int `yaml:"min"`
	Max      int `yaml:"max"`
	// Avg is the truncated integer mean.
	Avg    int     `yaml:"avg"`
	Mean   float64 `yaml:"mean"`
	Stdev  float64 `yaml:"stdev"`
	Median float64 `yaml:"median"`
	// CIHalfWidth is half the width of the 95% confidence interval of the
	// mean.
	CIHalfWidth float64 `yaml:"ci95-half-width"`
}

// Summarize computes a Summary of scores. An empty slice gives the zero
// Summary.
func Summarize(scores []int) Summary {
	if len(scores) == 0 {
		return Summary{}
	}
	fs := lo.Map(scores, func(s int, _ int) float64 { return float64(s) })
	slices.Sort(fs)
	mean, stdev := stat.MeanStdDev(fs, nil)
	if len(fs) == 1 {
		stdev = 0
	}
	sum := lo.Sum(scores)
	return Summary{
		Episodes:    len(scores),
		Min:         lo.Min(scores),
		Max:         lo.Max(scores),
		Avg:         sum / len(scores),
		Mean:        mean,
		Stdev:       stdev,
		Median:      stat.Quantile(0.5, stat.Empirical, fs, nil),
		CIHalfWidth: ciHalfWidth(stdev, len(fs)),
	}
}

// ZVal returns the two-tailed Z-value for a confidence level given in
// percent.
func ZVal(confidence float64) float64 {
	return distuv.UnitNormal.Quantile((1 + confidence/100) / 2)
}

func ciHalfWidth(stdev float64, n int) float64 {
	return ZVal(DefaultConfidence) * stdev / math.Sqrt(float64(n))
}

func (s Summary) String() string {
	return fmt.Sprintf("episodes: %d, min: %d, max: %d, avg: %d, mean: %.2f ± %.2f (stdev %.2f), median: %.1f",
		s.Episodes, s.Min, s.Max, s.Avg, s.Mean, s.CIHalfWidth, s.Stdev, s.Median)
}

// FprintHistogram draws a horizontal histogram of scores.
func FprintHistogram(w io.Writer, scores []int) error {
	if len(scores) == 0 {
		return nil
	}
	fs := lo.Map(scores, func(s int, _ int) float64 { return float64(s) })
	h := histogram.Hist(HistogramBins, fs)
	return histogram.Fprint(w, h, histogram.Linear(HistogramWidth))
}
