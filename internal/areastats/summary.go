// Package areastats computes descriptive statistics, classification breaks
// and per-class summaries over polygon area distributions.
//
// Functions never mutate their inputs and hold no package state.
package areastats

import (
	"math"
	"slices"

	"github.com/montanaflynn/stats"
)

// Summary is a snapshot of descriptive statistics over an area distribution.
type Summary struct {
	Sum            float64 `json:"sum"`
	Count          int     `json:"count"`
	Mean           float64 `json:"mean"`
	Median         float64 `json:"median"`
	Std            float64 `json:"std"` // sample standard deviation; NaN for a single value
	Min            float64 `json:"minimum"`
	FirstQuartile  float64 `json:"first_quartile"`
	SecondQuartile float64 `json:"second_quartile"`
	ThirdQuartile  float64 `json:"third_quartile"`
	Max            float64 `json:"maximum"`
}

// Summarize computes the summary statistics of areas. The input must be
// non-empty and every value finite and non-negative.
func Summarize(areas []float64) (Summary, error) {
	if err := validateAreas(areas); err != nil {
		return Summary{}, err
	}

	data := stats.Float64Data(areas)
	sum, err := stats.Sum(data)
	if err != nil {
		return Summary{}, invalidInput("areastats: sum: %v", err)
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, invalidInput("areastats: mean: %v", err)
	}
	median, err := stats.Median(data)
	if err != nil {
		return Summary{}, invalidInput("areastats: median: %v", err)
	}
	minimum, err := stats.Min(data)
	if err != nil {
		return Summary{}, invalidInput("areastats: minimum: %v", err)
	}
	maximum, err := stats.Max(data)
	if err != nil {
		return Summary{}, invalidInput("areastats: maximum: %v", err)
	}

	std := math.NaN()
	if len(areas) > 1 {
		std, err = stats.StandardDeviationSample(data)
		if err != nil {
			return Summary{}, invalidInput("areastats: std: %v", err)
		}
	}

	sorted := sortedCopy(areas)
	return Summary{
		Sum:            sum,
		Count:          len(areas),
		Mean:           mean,
		Median:         median,
		Std:            std,
		Min:            minimum,
		FirstQuartile:  quantileSorted(sorted, 0.25),
		SecondQuartile: quantileSorted(sorted, 0.5),
		ThirdQuartile:  quantileSorted(sorted, 0.75),
		Max:            maximum,
	}, nil
}

// Quantile returns the p-quantile of areas using linear interpolation
// between the closest ranks at position (n-1)*p.
func Quantile(areas []float64, p float64) (float64, error) {
	if err := validateAreas(areas); err != nil {
		return 0, err
	}
	if p < 0 || p > 1 || math.IsNaN(p) {
		return 0, invalidInput("areastats: quantile %v outside [0, 1]", p)
	}
	return quantileSorted(sortedCopy(areas), p), nil
}

// quantileSorted expects sorted, non-empty input.
func quantileSorted(sorted []float64, p float64) float64 {
	pos := float64(len(sorted)-1) * p
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

func validateAreas(areas []float64) error {
	if len(areas) == 0 {
		return invalidInput("areastats: no area values")
	}
	for i, a := range areas {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return invalidInput("areastats: area %d is not finite", i)
		}
		if a < 0 {
			return invalidInput("areastats: area %d is negative (%v)", i, a)
		}
	}
	return nil
}

func sortedCopy(areas []float64) []float64 {
	sorted := slices.Clone(areas)
	slices.Sort(sorted)
	return sorted
}
