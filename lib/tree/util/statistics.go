// Package util provides helpers shared by the tree implementations.
// This file implements the summary statistics reported by ITree.GetInfo, used to
// judge how balanced the fan-out of a tree is without printing the whole tree.
package util

import (
	"math"
)

// ----------------------------------------------------------------------------
// Stats
// ----------------------------------------------------------------------------

type Stats struct {
	StdDeviation float64 `json:"std_deviation"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Mean         float64 `json:"mean"`
	MinMaxRatio  float64 `json:"min_max_ratio"`
}

// NewStats computes the standard deviation, minimum, maximum and mean
// of a list of values.
func NewStats(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}

	lo, hi := values[0], values[0]

	var sum float64
	for _, v := range values {
		sum += v
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	mean := sum / float64(len(values))

	var sumSquaredDiffs float64
	for _, v := range values {
		diff := v - mean
		sumSquaredDiffs += diff * diff
	}

	// population standard deviation
	stdDev := math.Sqrt(sumSquaredDiffs / float64(len(values)))

	minMaxRatio := 1.0
	if hi > 0 {
		minMaxRatio = lo / hi
	}

	return Stats{
		StdDeviation: stdDev,
		Min:          lo,
		Max:          hi,
		Mean:         mean,
		MinMaxRatio:  minMaxRatio,
	}
}

// ----------------------------------------------------------------------------
// DistributionStats
// ----------------------------------------------------------------------------

type DistributionStats struct {
	Stats
	Samples             int     `json:"samples"`
	DistributionQuality float64 `json:"distribution_quality"`
}

// NewDistributionStats computes how evenly values are spread. For a tree the values
// are the child counts of every inner node: a quality close to 1 means every inner
// node has about the same number of children.
func NewDistributionStats(values []float64) DistributionStats {
	stats := NewStats(values)

	// coefficient of variation
	var cv float64
	if stats.Mean > 0 {
		cv = stats.StdDeviation / stats.Mean
	}

	// lower CV and higher min/max ratio -> better distribution
	quality := (1.0-math.Min(1.0, cv))*0.5 + stats.MinMaxRatio*0.5
	if len(values) == 0 {
		quality = 0
	}

	return DistributionStats{
		Stats:               stats,
		Samples:             len(values),
		DistributionQuality: quality,
	}
}
