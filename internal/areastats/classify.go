package areastats

import (
	"fmt"
	"math"
	"sort"

	"github.com/rotisserie/eris"
)

// Labels generates k class labels "<prefix>1" .. "<prefix>k".
func Labels(prefix string, k int) []string {
	labels := make([]string, 0, max(k, 0))
	for i := 1; i <= k; i++ {
		labels = append(labels, fmt.Sprintf("%s%d", prefix, i))
	}
	return labels
}

// Classify assigns each area the label of the interval it falls into.
// Interval i is [breaks[i], breaks[i+1]); the last interval is closed on both
// ends, and a value equal to breaks[0] always lands in the first class. The
// result is parallel to areas.
func Classify(areas []float64, breaks Breaks, labels []string) ([]string, error) {
	if err := validateBreaks(breaks); err != nil {
		return nil, err
	}
	if len(labels) != breaks.Classes() {
		return nil, classificationError("areastats: %d labels for %d classes", len(labels), breaks.Classes())
	}

	classes := make([]string, len(areas))
	for i, a := range areas {
		idx, err := classIndex(a, breaks)
		if err != nil {
			return nil, eris.Wrapf(err, "areastats: record %d", i)
		}
		classes[i] = labels[idx]
	}
	return classes, nil
}

// classIndex expects validated breaks.
func classIndex(v float64, breaks Breaks) (int, error) {
	last := len(breaks) - 1
	if math.IsNaN(v) || v < breaks[0] || v > breaks[last] {
		return 0, classificationError("areastats: value %v outside [%v, %v]", v, breaks[0], breaks[last])
	}
	if v == breaks[0] {
		return 0, nil
	}
	if v == breaks[last] {
		return last - 1, nil
	}
	// First boundary strictly above v closes the interval holding v.
	upper := sort.Search(len(breaks), func(i int) bool { return breaks[i] > v })
	return upper - 1, nil
}

func validateBreaks(breaks Breaks) error {
	if len(breaks) < 2 {
		return classificationError("areastats: need at least two breaks, got %d", len(breaks))
	}
	for i, b := range breaks {
		if math.IsNaN(b) {
			return classificationError("areastats: break %d is NaN", i)
		}
		if i > 0 && b < breaks[i-1] {
			return classificationError("areastats: breaks decrease at index %d (%v < %v)", i, b, breaks[i-1])
		}
	}
	return nil
}
