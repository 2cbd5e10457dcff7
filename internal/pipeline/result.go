package pipeline

import (
	"github.com/sells-group/area-stats/internal/areastats"
	"github.com/sells-group/area-stats/internal/report"
)

// PhaseStatus is the outcome of one pipeline phase.
type PhaseStatus string

// Phase statuses.
const (
	PhaseStatusComplete PhaseStatus = "complete"
	PhaseStatusFailed   PhaseStatus = "failed"
	PhaseStatusSkipped  PhaseStatus = "skipped"
)

// PhaseResult records a phase of one dataset.
type PhaseResult struct {
	Name     string      `json:"name"`
	Status   PhaseStatus `json:"status"`
	Duration int64       `json:"duration_ms"`
	Error    string      `json:"error,omitempty"`
}

// ClassificationResult is one classification scheme with its class table.
type ClassificationResult struct {
	areastats.Classification
	Table []areastats.ClassSummary
}

// DatasetResult is everything computed and written for one dataset.
type DatasetResult struct {
	Name            string
	Records         int
	Statistics      areastats.Report
	Classifications []ClassificationResult
	Files           []string
	Phases          []PhaseResult
}

// Result summarizes a pipeline run.
type Result struct {
	RunID    string
	Project  string
	Language string
	Folders  report.Folders
	Workbook string // empty when xlsx output is disabled
	Datasets []DatasetResult
	// Duration of the whole run in milliseconds.
	Duration int64
}

// Files returns every file written by the run.
func (r *Result) Files() []string {
	var files []string
	for _, d := range r.Datasets {
		files = append(files, d.Files...)
	}
	if r.Workbook != "" && len(r.Datasets) > 0 {
		files = append(files, r.Workbook)
	}
	return files
}
