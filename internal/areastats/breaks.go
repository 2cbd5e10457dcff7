package areastats

import (
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Breaks is an ordered sequence of class boundaries. k classes are described
// by k+1 boundaries including the global minimum and maximum.
type Breaks []float64

// Classes returns the number of classes described by b.
func (b Breaks) Classes() int {
	if len(b) < 2 {
		return 0
	}
	return len(b) - 1
}

// Trim drops the first and last boundary, leaving the k-1 interior cut
// points. A break set with fewer than two boundaries trims to empty.
func (b Breaks) Trim() Breaks {
	if len(b) < 2 {
		return Breaks{}
	}
	return slices.Clone(b[1 : len(b)-1])
}

// WithBounds re-combines interior cut points with dataset bounds.
func (b Breaks) WithBounds(minimum, maximum float64) Breaks {
	out := make(Breaks, 0, len(b)+2)
	out = append(out, minimum)
	out = append(out, b...)
	return append(out, maximum)
}

// EqualInterval returns the width of each of k equal-width classes spanning
// [min, max] of areas.
func EqualInterval(areas []float64, k int) (float64, error) {
	if err := validateAreas(areas); err != nil {
		return 0, err
	}
	if k < 1 {
		return 0, invalidInput("areastats: equal interval needs at least one class, got %d", k)
	}
	return (floats.Max(areas) - floats.Min(areas)) / float64(k), nil
}

// EqualIntervalBreaks returns the boundaries min + i*interval for i in 0..k.
// With trim set, the global min and max are dropped, leaving k-1 values.
func EqualIntervalBreaks(areas []float64, k int, trim bool) (Breaks, error) {
	interval, err := EqualInterval(areas, k)
	if err != nil {
		return nil, err
	}
	minimum := floats.Min(areas)
	breaks := make(Breaks, k+1)
	for i := range breaks {
		breaks[i] = minimum + float64(i)*interval
	}
	if trim {
		return breaks.Trim(), nil
	}
	return breaks, nil
}

// JenksBreaks returns the Fisher-Jenks natural breaks partition of areas into
// k classes. The untrimmed result holds k+1 boundaries: the minimum, the upper
// value of each of the first k-1 classes, and the maximum. With trim set only
// the k-1 interior boundaries are returned.
//
// Runs in O(k*n^2) time and O(k*n) memory.
func JenksBreaks(areas []float64, k int, trim bool) (Breaks, error) {
	if err := validateAreas(areas); err != nil {
		return nil, err
	}
	n := len(areas)
	if k < 1 {
		return nil, invalidInput("areastats: natural breaks needs at least one class, got %d", k)
	}

	data := sortedCopy(areas)
	breaks := make(Breaks, k+1)
	if data[0] == data[n-1] {
		for i := range breaks {
			breaks[i] = data[0]
		}
		if trim {
			return breaks.Trim(), nil
		}
		return breaks, nil
	}
	if k > n {
		return nil, invalidInput("areastats: natural breaks needs 1 <= classes <= %d, got %d", n, k)
	}

	lower := jenksLowerClassLimits(data, k)
	breaks[0] = data[0]
	breaks[k] = data[n-1]
	idx := n
	for j := k; j >= 2; j-- {
		limit := lower[idx][j]
		breaks[j-1] = data[limit-2]
		idx = limit - 1
	}

	if trim {
		return breaks.Trim(), nil
	}
	return breaks, nil
}

// jenksLowerClassLimits fills the lower class limit matrix of the Jenks
// dynamic program. Indices are 1-based: lower[l][j] is the 1-based index of
// the first value of class j in the optimal j-class partition of data[:l].
func jenksLowerClassLimits(data []float64, k int) [][]int {
	n := len(data)
	lower := make([][]int, n+1)
	variance := make([][]float64, n+1)
	for i := range lower {
		lower[i] = make([]int, k+1)
		variance[i] = make([]float64, k+1)
	}
	for j := 1; j <= k; j++ {
		lower[1][j] = 1
		for i := 2; i <= n; i++ {
			variance[i][j] = math.Inf(1)
		}
	}

	for l := 2; l <= n; l++ {
		var sum, sumSquares, w, v float64
		for m := 1; m <= l; m++ {
			first := l - m + 1
			val := data[first-1]
			sumSquares += val * val
			sum += val
			w++
			v = sumSquares - (sum*sum)/w
			prev := first - 1
			if prev == 0 {
				continue
			}
			// Class j can start at first only if data[:prev] can hold j-1 classes.
			for j := 2; j <= k && j-1 <= prev; j++ {
				if variance[l][j] >= v+variance[prev][j-1] {
					lower[l][j] = first
					variance[l][j] = v + variance[prev][j-1]
				}
			}
		}
		lower[l][1] = 1
		variance[l][1] = v
	}
	return lower
}

// GoodnessOfVarianceFit returns 1 - SDCM/SDAM for a full break set: the share
// of the total squared deviation explained by the classes. Membership follows
// the natural breaks convention, where each interior break is the upper value
// of its class: class i holds (breaks[i], breaks[i+1]] and the first class also
// holds breaks[0]. Zero-variance input fits perfectly and returns 1.
func GoodnessOfVarianceFit(areas []float64, breaks Breaks) (float64, error) {
	if err := validateAreas(areas); err != nil {
		return 0, err
	}
	if err := validateBreaks(breaks); err != nil {
		return 0, err
	}

	sdam := squaredDeviation(areas)
	if sdam == 0 {
		return 1, nil
	}

	groups := make([][]float64, breaks.Classes())
	last := len(breaks) - 1
	for _, a := range areas {
		if a < breaks[0] || a > breaks[last] {
			return 0, classificationError("areastats: value %v outside [%v, %v]", a, breaks[0], breaks[last])
		}
		i := max(sort.Search(len(breaks), func(j int) bool { return breaks[j] >= a })-1, 0)
		groups[i] = append(groups[i], a)
	}

	var sdcm float64
	for _, g := range groups {
		if len(g) > 0 {
			sdcm += squaredDeviation(g)
		}
	}
	return 1 - sdcm/sdam, nil
}

func squaredDeviation(values []float64) float64 {
	mean := stat.Mean(values, nil)
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum
}
