package areastats

import "math"

// ClassSummary aggregates the records assigned to one class.
type ClassSummary struct {
	Class            string   `json:"classes"`
	Count            int      `json:"count"`
	Area             float64  `json:"area"`
	ClassAverageArea float64  `json:"class_average_area"`
	AreaRatio        float64  `json:"area_ratio"`
	SampleAreaRatio  *float64 `json:"sample_area_ratio,omitempty"`
}

// SummaryOptions tunes SummarizeByClass.
type SummaryOptions struct {
	// ReferenceArea, when set, adds SampleAreaRatio = 100*area/reference.
	ReferenceArea *float64
	// OmitEmpty drops classes without records instead of failing with
	// ErrDivisionUndefined.
	OmitEmpty bool
}

// SummarizeByClass groups areas by their class label and returns one summary
// per label, in the order of labels. classes must be parallel to areas and
// hold only values from labels.
func SummarizeByClass(areas []float64, classes, labels []string, opts SummaryOptions) ([]ClassSummary, error) {
	if len(areas) != len(classes) {
		return nil, classificationError("areastats: %d areas but %d class assignments", len(areas), len(classes))
	}
	if opts.ReferenceArea != nil {
		if err := checkReferenceArea(*opts.ReferenceArea); err != nil {
			return nil, err
		}
	}

	pos := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, dup := pos[l]; dup {
			return nil, classificationError("areastats: duplicate label %q", l)
		}
		pos[l] = i
	}

	counts := make([]int, len(labels))
	sums := make([]float64, len(labels))
	var total float64
	for i, c := range classes {
		idx, ok := pos[c]
		if !ok {
			return nil, classificationError("areastats: record %d has unknown class %q", i, c)
		}
		counts[idx]++
		sums[idx] += areas[i]
		total += areas[i]
	}
	if total == 0 {
		return nil, divisionUndefined("areastats: total area is zero")
	}

	out := make([]ClassSummary, 0, len(labels))
	for i, l := range labels {
		if counts[i] == 0 {
			if opts.OmitEmpty {
				continue
			}
			return nil, divisionUndefined("areastats: class %q has no records", l)
		}
		cs := ClassSummary{
			Class:            l,
			Count:            counts[i],
			Area:             sums[i],
			ClassAverageArea: sums[i] / float64(counts[i]),
			AreaRatio:        sums[i] / total * 100,
		}
		if opts.ReferenceArea != nil {
			ratio := sums[i] / *opts.ReferenceArea * 100
			cs.SampleAreaRatio = &ratio
		}
		out = append(out, cs)
	}
	return out, nil
}

// Comparison relates an area sum to an externally supplied reference area.
type Comparison struct {
	SampleAreaSize        float64 `json:"sample_area_size"`
	ExperimentalAreaRatio float64 `json:"experimental_area_ratio"`
}

// Compare returns the comparison of sum against reference.
func Compare(sum, reference float64) (Comparison, error) {
	if err := checkReferenceArea(reference); err != nil {
		return Comparison{}, err
	}
	return Comparison{
		SampleAreaSize:        reference,
		ExperimentalAreaRatio: sum / reference * 100,
	}, nil
}

func checkReferenceArea(reference float64) error {
	switch {
	case math.IsNaN(reference) || math.IsInf(reference, 0):
		return invalidInput("areastats: reference area is not finite")
	case reference < 0:
		return invalidInput("areastats: reference area is negative (%v)", reference)
	case reference == 0:
		return divisionUndefined("areastats: reference area is zero")
	}
	return nil
}
