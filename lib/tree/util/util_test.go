package util

import (
	"math"
	"slices"
	"testing"
)

func TestNewStats(t *testing.T) {
	s := NewStats([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if s.Mean != 5 {
		t.Errorf("Mean: got %v, want 5", s.Mean)
	}
	if s.StdDeviation != 2 {
		t.Errorf("StdDeviation: got %v, want 2", s.StdDeviation)
	}
	if s.Min != 2 || s.Max != 9 {
		t.Errorf("Min/Max: got %v/%v, want 2/9", s.Min, s.Max)
	}

	if empty := NewStats(nil); empty != (Stats{}) {
		t.Errorf("empty input should give zero stats, got %+v", empty)
	}
}

func TestDistributionStats(t *testing.T) {
	even := NewDistributionStats([]float64{3, 3, 3})
	if math.Abs(even.DistributionQuality-1) > 1e-9 {
		t.Errorf("even distribution should have quality 1, got %v", even.DistributionQuality)
	}
	if even.Samples != 3 {
		t.Errorf("Samples: got %d, want 3", even.Samples)
	}

	skewed := NewDistributionStats([]float64{1, 1, 20})
	if skewed.DistributionQuality >= even.DistributionQuality {
		t.Errorf("skewed distribution should score lower, got %v", skewed.DistributionQuality)
	}

	if none := NewDistributionStats(nil); none.DistributionQuality != 0 {
		t.Errorf("no samples should give quality 0, got %v", none.DistributionQuality)
	}
}

func TestCompareLabels(t *testing.T) {
	ints := []any{10, 2, -1}
	slices.SortFunc(ints, CompareLabels)
	if !slices.Equal(ints, []any{-1, 2, 10}) {
		t.Errorf("ints sorted by value expected, got %v", ints)
	}

	strs := []any{"b", "a", "c"}
	slices.SortFunc(strs, CompareLabels)
	if !slices.Equal(strs, []any{"a", "b", "c"}) {
		t.Errorf("strings sorted by value expected, got %v", strs)
	}

	if CompareLabels(nil, "a") >= 0 {
		t.Error("nil should sort first")
	}
	if CompareLabels(true, false) <= 0 {
		t.Error("true should sort after false")
	}
	if CompareLabels(1.5, 1.5) != 0 {
		t.Error("equal floats should compare equal")
	}
}
