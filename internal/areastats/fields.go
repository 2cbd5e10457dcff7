package areastats

// Canonical statistic and column keys. Output collaborators translate them
// for display; the engine never uses localized names.
const (
	KeySum                   = "sum"
	KeyCount                 = "count"
	KeyMean                  = "mean"
	KeyMedian                = "median"
	KeyStd                   = "std"
	KeyMinimum               = "minimum"
	KeyFirstQuartile         = "first_quartile"
	KeySecondQuartile        = "second_quartile"
	KeyThirdQuartile         = "third_quartile"
	KeyJenks                 = "jenks"
	KeyJenksGVF              = "jenks_gvf"
	KeyEqualInterval         = "equal_interval"
	KeyEqualIntervalBreaks   = "equal_interval_breaks"
	KeyMaximum               = "maximum"
	KeySampleAreaSize        = "sample_area_size"
	KeyExperimentalAreaRatio = "experimental_area_ratio"

	KeyClasses          = "classes"
	KeyArea             = "area"
	KeyClassAverageArea = "class_average_area"
	KeyAreaRatio        = "area_ratio"
	KeySampleAreaRatio  = "sample_area_ratio"
)

// Field is one key/value pair of an ordered result record. Value is an int,
// a float64 or a []float64.
type Field struct {
	Key   string
	Value any
}

// Fields is an ordered key/value record.
type Fields []Field

// Get returns the value stored under key.
func (f Fields) Get(key string) (any, bool) {
	for _, field := range f {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in order.
func (f Fields) Keys() []string {
	keys := make([]string, len(f))
	for i, field := range f {
		keys[i] = field.Key
	}
	return keys
}

// Fields returns the summary as an ordered record.
func (s Summary) Fields() Fields {
	return Fields{
		{KeySum, s.Sum},
		{KeyCount, s.Count},
		{KeyMean, s.Mean},
		{KeyMedian, s.Median},
		{KeyStd, s.Std},
		{KeyMinimum, s.Min},
		{KeyFirstQuartile, s.FirstQuartile},
		{KeySecondQuartile, s.SecondQuartile},
		{KeyThirdQuartile, s.ThirdQuartile},
		{KeyMaximum, s.Max},
	}
}

// ClassTableColumns returns the column keys of a class summary table.
func ClassTableColumns(withSampleRatio bool) []string {
	cols := []string{KeyClasses, KeyCount, KeyArea, KeyClassAverageArea, KeyAreaRatio}
	if withSampleRatio {
		cols = append(cols, KeySampleAreaRatio)
	}
	return cols
}

// Fields returns the class summary as an ordered record.
func (c ClassSummary) Fields() Fields {
	f := Fields{
		{KeyClasses, c.Class},
		{KeyCount, c.Count},
		{KeyArea, c.Area},
		{KeyClassAverageArea, c.ClassAverageArea},
		{KeyAreaRatio, c.AreaRatio},
	}
	if c.SampleAreaRatio != nil {
		f = append(f, Field{KeySampleAreaRatio, *c.SampleAreaRatio})
	}
	return f
}
