// Package pipeline runs the statistics, classification and reporting phases
// over every dataset of a project.
package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/sells-group/area-stats/internal/areastats"
	"github.com/sells-group/area-stats/internal/config"
	"github.com/sells-group/area-stats/internal/dataset"
	"github.com/sells-group/area-stats/internal/i18n"
	"github.com/sells-group/area-stats/internal/project"
	"github.com/sells-group/area-stats/internal/report"
)

// WorkbookName is the statistics workbook written into the statistics folder.
const WorkbookName = "statistics.xlsx"

// LoadFunc loads one named dataset.
type LoadFunc func(ctx context.Context, name string, src dataset.Source, opts dataset.LoadOptions) (*dataset.Dataset, error)

// Pipeline turns project datasets into result files.
type Pipeline struct {
	cfg  *config.Config
	load LoadFunc
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLoader replaces the dataset loader.
func WithLoader(fn LoadFunc) Option {
	return func(p *Pipeline) { p.load = fn }
}

// New creates a Pipeline reading datasets with dataset.Load.
func New(cfg *config.Config, opts ...Option) *Pipeline {
	p := &Pipeline{cfg: cfg, load: dataset.Load}
	for _, o := range opts {
		o(p)
	}
	return p
}

// RunOptions tunes a single run.
type RunOptions struct {
	// Clean removes the previous results of the project first.
	Clean bool
}

// Run processes every dataset of m in order and stops at the first failing
// dataset. The returned result holds the datasets completed so far.
func (p *Pipeline) Run(ctx context.Context, m *project.Manifest, opts RunOptions) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	lang := p.cfg.Output.Language
	if m.Language != "" {
		lang = m.Language
	}
	tr := i18n.Lookup(lang)

	result := &Result{
		RunID:    uuid.New().String(),
		Project:  m.Project,
		Language: tr.Language(),
	}
	log := zap.L().With(zap.String("run_id", result.RunID), zap.String("project", m.Project))
	log.Info("pipeline: starting run",
		zap.Int("datasets", len(m.Datasets)),
		zap.String("language", result.Language),
	)

	results := p.cfg.Output.ResultsFolder
	if opts.Clean {
		if err := report.RemovePreviousResults(results, m.Project); err != nil {
			return nil, err
		}
		log.Info("pipeline: removed previous results")
	}
	folders, err := report.CreateResultsFolders(results, m.Project)
	if err != nil {
		return nil, err
	}
	result.Folders = folders

	var workbook *report.XLSXWriter
	if p.cfg.Output.Enabled(config.FormatXLSX) {
		path := filepath.Join(folders.Statistics, WorkbookName)
		workbook, err = report.OpenXLSX(path, tr)
		if err != nil {
			return nil, err
		}
		result.Workbook = path
	}

	for _, d := range m.Datasets {
		if err := ctx.Err(); err != nil {
			return result, eris.Wrap(err, "pipeline: run cancelled")
		}
		w := &datasetRun{
			cfg:      p.cfg,
			load:     p.load,
			tr:       tr,
			folders:  folders,
			workbook: workbook,
			entry:    d,
			log:      log.With(zap.String("dataset", d.Name)),
		}
		dr, err := w.run(ctx)
		if dr != nil {
			result.Datasets = append(result.Datasets, *dr)
		}
		if err != nil {
			return result, eris.Wrapf(err, "pipeline: dataset %s", d.Name)
		}
	}

	result.Duration = time.Since(start).Milliseconds()
	log.Info("pipeline: run complete",
		zap.Int("files", len(result.Files())),
		zap.Int64("duration_ms", result.Duration),
	)
	return result, nil
}

// analysisFor returns the configured class counts with the dataset sample
// area as reference.
func analysisFor(cfg *config.Config, d project.Dataset) areastats.Analysis {
	a := areastats.NewAnalysis(cfg.Classification.NaturalBreaks, cfg.Classification.EqualIntervals)
	if d.SampleArea != nil {
		a = a.WithReferenceArea(*d.SampleArea)
	}
	return a
}

func diagramOptions(cfg config.OutputConfig, title string) report.DiagramOptions {
	return report.DiagramOptions{
		Title:  title,
		Width:  vg.Length(cfg.DiagramWidth) * vg.Inch,
		Height: vg.Length(cfg.DiagramHeight) * vg.Inch,
		DPI:    cfg.DPI,
	}
}

func loadOptions(cfg *config.Config, d project.Dataset) dataset.LoadOptions {
	col := d.GeometryColumn
	if col == "" {
		col = cfg.PostGIS.GeometryColumn
	}
	return dataset.LoadOptions{GeometryColumn: col}
}
