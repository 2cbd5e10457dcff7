package areastats

// Classification scheme names, also used as output column names.
const (
	SchemeJenks         = "jenks"
	SchemeEqualInterval = "equal_interval_breaks"
	SchemeQuartiles     = "quartiles"
)

// Default class counts.
const (
	DefaultNaturalBreaks  = 4
	DefaultEqualIntervals = 4
)

// Analysis bundles the class counts and optional reference area applied to
// one area distribution. The zero value is not usable; build one with
// NewAnalysis.
type Analysis struct {
	NaturalBreaks  int
	EqualIntervals int
	// ReferenceArea switches on comparison mode when set.
	ReferenceArea *float64
}

// NewAnalysis returns an Analysis without a reference area.
func NewAnalysis(naturalBreaks, equalIntervals int) Analysis {
	return Analysis{NaturalBreaks: naturalBreaks, EqualIntervals: equalIntervals}
}

// WithReferenceArea returns a copy of a comparing against reference.
func (a Analysis) WithReferenceArea(reference float64) Analysis {
	a.ReferenceArea = &reference
	return a
}

// Report is the statistics record of one distribution.
type Report struct {
	Summary
	Jenks               Breaks // interior natural breaks
	JenksGVF            float64
	EqualInterval       float64
	EqualIntervalBreaks Breaks // interior equal interval breaks
	Comparison          *Comparison
}

// Statistics computes the full statistics report of areas.
func (a Analysis) Statistics(areas []float64) (Report, error) {
	summary, err := Summarize(areas)
	if err != nil {
		return Report{}, err
	}
	jenks, err := JenksBreaks(areas, a.NaturalBreaks, false)
	if err != nil {
		return Report{}, err
	}
	gvf, err := GoodnessOfVarianceFit(areas, jenks)
	if err != nil {
		return Report{}, err
	}
	interval, err := EqualInterval(areas, a.EqualIntervals)
	if err != nil {
		return Report{}, err
	}
	equalBreaks, err := EqualIntervalBreaks(areas, a.EqualIntervals, true)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		Summary:             summary,
		Jenks:               jenks.Trim(),
		JenksGVF:            gvf,
		EqualInterval:       interval,
		EqualIntervalBreaks: equalBreaks,
	}
	if a.ReferenceArea != nil {
		cmp, err := Compare(summary.Sum, *a.ReferenceArea)
		if err != nil {
			return Report{}, err
		}
		r.Comparison = &cmp
	}
	return r, nil
}

// Fields returns the report as an ordered record.
func (r Report) Fields() Fields {
	f := Fields{
		{KeySum, r.Sum},
		{KeyCount, r.Count},
		{KeyMean, r.Mean},
		{KeyMedian, r.Median},
		{KeyStd, r.Std},
		{KeyMinimum, r.Min},
		{KeyFirstQuartile, r.FirstQuartile},
		{KeySecondQuartile, r.SecondQuartile},
		{KeyThirdQuartile, r.ThirdQuartile},
		{KeyJenks, []float64(r.Jenks)},
		{KeyJenksGVF, r.JenksGVF},
		{KeyEqualInterval, r.EqualInterval},
		{KeyEqualIntervalBreaks, []float64(r.EqualIntervalBreaks)},
		{KeyMaximum, r.Max},
	}
	if r.Comparison != nil {
		f = append(f,
			Field{KeySampleAreaSize, r.Comparison.SampleAreaSize},
			Field{KeyExperimentalAreaRatio, r.Comparison.ExperimentalAreaRatio},
		)
	}
	return f
}

// Classification is one classification scheme applied to a distribution.
type Classification struct {
	Name    string
	Breaks  Breaks   // full break set including min and max
	Labels  []string // in class order
	Classes []string // parallel to the classified areas
}

// Classifications applies the natural breaks, equal interval and quartile
// schemes to areas. Interior cut points are combined with the dataset min and
// max so the extremes always classify.
func (a Analysis) Classifications(areas []float64) ([]Classification, error) {
	r, err := a.Statistics(areas)
	if err != nil {
		return nil, err
	}

	schemes := []struct {
		name   string
		breaks Breaks
		labels []string
	}{
		{SchemeJenks, r.Jenks.WithBounds(r.Min, r.Max), Labels("jenks_", a.NaturalBreaks)},
		{SchemeEqualInterval, r.EqualIntervalBreaks.WithBounds(r.Min, r.Max), Labels("equal_interval_", a.EqualIntervals)},
		{SchemeQuartiles, Breaks{r.FirstQuartile, r.SecondQuartile, r.ThirdQuartile}.WithBounds(r.Min, r.Max), Labels("quartile_", 4)},
	}

	out := make([]Classification, 0, len(schemes))
	for _, s := range schemes {
		classes, err := Classify(areas, s.breaks, s.labels)
		if err != nil {
			return nil, err
		}
		out = append(out, Classification{Name: s.name, Breaks: s.breaks, Labels: s.labels, Classes: classes})
	}
	return out, nil
}

// ClassTable summarizes a classification of areas, carrying the analysis
// reference area into the sample area ratio.
func (a Analysis) ClassTable(areas []float64, c Classification, omitEmpty bool) ([]ClassSummary, error) {
	return SummarizeByClass(areas, c.Classes, c.Labels, SummaryOptions{
		ReferenceArea: a.ReferenceArea,
		OmitEmpty:     omitEmpty,
	})
}
