package report

import "github.com/sells-group/area-stats/internal/areastats"

func ptr(f float64) *float64 { return &f }

func sampleClassTable() []areastats.ClassSummary {
	return []areastats.ClassSummary{
		{Class: "jenks_1", Count: 1, Area: 1, ClassAverageArea: 1, AreaRatio: 100.0 / 55},
		{Class: "jenks_2", Count: 2, Area: 5, ClassAverageArea: 2.5, AreaRatio: 500.0 / 55},
		{Class: "jenks_3", Count: 3, Area: 15, ClassAverageArea: 5, AreaRatio: 1500.0 / 55},
		{Class: "jenks_4", Count: 4, Area: 34, ClassAverageArea: 8.5, AreaRatio: 3400.0 / 55},
	}
}

func withSampleRatio(rows []areastats.ClassSummary, reference float64) []areastats.ClassSummary {
	out := make([]areastats.ClassSummary, len(rows))
	for i, r := range rows {
		r.SampleAreaRatio = ptr(100 * r.Area / reference)
		out[i] = r
	}
	return out
}
