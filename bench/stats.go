package bench

import (
	"math"
	"slices"
	"time"
)

// Stats condenses the timings of a number of trials.
type Stats struct {
	N      int           `yaml:"n"`
	Min    time.Duration `yaml:"min"`
	Max    time.Duration `yaml:"max"`
	Mean   time.Duration `yaml:"mean"`
	Median time.Duration `yaml:"median"`
	P95    time.Duration `yaml:"p95"`
	StdDev time.Duration `yaml:"stddev"`
	PerOp  time.Duration `yaml:"per_op"` // median divided by operations per trial
}

// ComputeStats calculates statistics for trial samples, where each trial
// performed ops operations. Zero samples result in zero Stats.
func ComputeStats(samples []time.Duration, ops int) Stats {
	if len(samples) == 0 {
		return Stats{}
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	n := len(sorted)
	var sum float64
	for _, s := range sorted {
		sum += float64(s)
	}
	mean := sum / float64(n)
	var sq float64
	for _, s := range sorted {
		d := float64(s) - mean
		sq += d * d
	}
	st := Stats{
		N:      n,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Mean:   time.Duration(mean),
		Median: percentile(sorted, 50),
		P95:    percentile(sorted, 95),
	}
	if n > 1 {
		st.StdDev = time.Duration(math.Sqrt(sq / float64(n-1)))
	}
	if ops > 0 {
		st.PerOp = st.Median / time.Duration(ops)
	}
	return st
}

// percentile uses linear interpolation between closest ranks.
// sorted must not be empty.
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	frac := rank - float64(lo)
	return sorted[lo] + time.Duration(math.Round(frac*float64(sorted[hi]-sorted[lo])))
}
