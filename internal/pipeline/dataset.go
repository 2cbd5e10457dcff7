package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/area-stats/internal/areastats"
	"github.com/sells-group/area-stats/internal/config"
	"github.com/sells-group/area-stats/internal/dataset"
	"github.com/sells-group/area-stats/internal/i18n"
	"github.com/sells-group/area-stats/internal/project"
	"github.com/sells-group/area-stats/internal/report"
)

// Phase names.
const (
	PhaseLoad       = "load"
	PhaseStatistics = "statistics"
	PhaseClassify   = "classify"
	PhaseGIS        = "gis"
)

// diagramSchemes maps classification schemes to the diagram title prefix and
// the short name used in file and sheet names.
var diagramSchemes = map[string]struct{ title, short string }{
	areastats.SchemeJenks:         {"natural_break", "jenks"},
	areastats.SchemeEqualInterval: {"equal_interval", "equal_interval"},
	areastats.SchemeQuartiles:     {"quartiles", "quartiles"},
}

type datasetRun struct {
	cfg      *config.Config
	load     LoadFunc
	tr       i18n.Translator
	folders  report.Folders
	workbook *report.XLSXWriter
	entry    project.Dataset
	log      *zap.Logger

	ds     *dataset.Dataset
	result *DatasetResult
}

// trackPhase runs fn, times it and appends its outcome to the dataset result.
func (w *datasetRun) trackPhase(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	pr := PhaseResult{Name: name, Status: PhaseStatusComplete, Duration: time.Since(start).Milliseconds()}
	if err != nil {
		pr.Status = PhaseStatusFailed
		pr.Error = err.Error()
		w.log.Error("pipeline: phase failed",
			zap.String("phase", name),
			zap.Int64("duration_ms", pr.Duration),
			zap.Error(err),
		)
	} else {
		w.log.Info("pipeline: phase complete",
			zap.String("phase", name),
			zap.Int64("duration_ms", pr.Duration),
		)
	}
	w.result.Phases = append(w.result.Phases, pr)
	return err
}

func (w *datasetRun) skipPhase(name string) {
	w.result.Phases = append(w.result.Phases, PhaseResult{Name: name, Status: PhaseStatusSkipped})
	w.log.Debug("pipeline: phase skipped", zap.String("phase", name))
}

func (w *datasetRun) run(ctx context.Context) (*DatasetResult, error) {
	w.result = &DatasetResult{Name: w.entry.Name}
	analysis := analysisFor(w.cfg, w.entry)

	if err := w.trackPhase(PhaseLoad, func() error { return w.loadPhase(ctx) }); err != nil {
		return w.result, err
	}
	areas := w.ds.Areas()

	if err := w.trackPhase(PhaseStatistics, func() error { return w.statisticsPhase(analysis, areas) }); err != nil {
		return w.result, err
	}
	if err := ctx.Err(); err != nil {
		return w.result, eris.Wrap(err, "pipeline: cancelled")
	}
	if err := w.trackPhase(PhaseClassify, func() error { return w.classifyPhase(ctx, analysis, areas) }); err != nil {
		return w.result, err
	}

	if !w.cfg.Output.Enabled(config.FormatGIS) {
		w.skipPhase(PhaseGIS)
	} else if err := w.trackPhase(PhaseGIS, w.gisPhase); err != nil {
		return w.result, err
	}

	if w.workbook != nil {
		if err := w.workbook.Save(); err != nil {
			return w.result, err
		}
	}
	return w.result, nil
}

func (w *datasetRun) loadPhase(ctx context.Context) error {
	ds, err := w.load(ctx, w.entry.Name, w.entry.Location(), loadOptions(w.cfg, w.entry))
	if err != nil {
		return err
	}
	w.ds = ds
	w.result.Records = ds.Len()
	w.log.Info("pipeline: dataset loaded",
		zap.Int("records", ds.Len()),
		zap.String("kind", string(ds.Kind)),
	)
	return nil
}

func (w *datasetRun) statisticsPhase(a areastats.Analysis, areas []float64) error {
	stats, err := a.Statistics(areas)
	if err != nil {
		return err
	}
	w.result.Statistics = stats
	fields := stats.Fields()

	if w.cfg.Output.Enabled(config.FormatJSON) {
		path := filepath.Join(w.folders.Statistics, w.entry.Name+"_statistics.json")
		if err := report.WriteJSON(path, fields); err != nil {
			return err
		}
		w.addFile(path)
	}
	if w.cfg.Output.Enabled(config.FormatCSV) {
		path := filepath.Join(w.folders.Statistics, w.entry.Name+"_statistics.csv")
		if err := report.WriteCSV(path, fields, w.tr); err != nil {
			return err
		}
		w.addFile(path)
	}
	if w.workbook != nil {
		sheet, err := w.workbook.WriteStatistics(w.entry.Name, fields)
		if err != nil {
			return err
		}
		w.log.Debug("pipeline: statistics sheet added", zap.String("sheet", sheet))
	}
	return nil
}

func (w *datasetRun) classifyPhase(ctx context.Context, a areastats.Analysis, areas []float64) error {
	classifications, err := a.Classifications(areas)
	if err != nil {
		return err
	}

	type figure struct {
		path  string
		title string
		table []areastats.ClassSummary
	}
	var figures []figure

	for _, c := range classifications {
		table, err := a.ClassTable(areas, c, w.cfg.Classification.OmitEmptyClasses)
		if err != nil {
			return eris.Wrapf(err, "pipeline: class table %s", c.Name)
		}
		w.result.Classifications = append(w.result.Classifications, ClassificationResult{
			Classification: c,
			Table:          table,
		})

		scheme := diagramSchemes[c.Name]
		base := w.entry.Name + "_" + scheme.short

		if w.cfg.Output.Enabled(config.FormatCSV) {
			path := filepath.Join(w.folders.Statistics, base+".csv")
			if err := report.WriteClassTableCSV(path, table, w.tr); err != nil {
				return err
			}
			w.addFile(path)
		}
		if w.workbook != nil {
			if _, err := w.workbook.WriteClassTable(base, table); err != nil {
				return err
			}
		}
		if w.cfg.Output.Enabled(config.FormatFigures) {
			figures = append(figures, figure{
				path:  filepath.Join(w.folders.Figures, base+".png"),
				title: w.tr.DiagramTitle(scheme.title, w.entry.Name),
				table: table,
			})
		}
	}

	// Render the diagrams concurrently; the workbook was written above.
	g, gCtx := errgroup.WithContext(ctx)
	for _, f := range figures {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return eris.Wrap(err, "pipeline: render cancelled")
			}
			return report.WriteDiagram(f.path, f.table, w.tr, diagramOptions(w.cfg.Output, f.title))
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, f := range figures {
		w.addFile(f.path)
	}
	return nil
}

func (w *datasetRun) gisPhase() error {
	classifications := make([]areastats.Classification, len(w.result.Classifications))
	for i, c := range w.result.Classifications {
		classifications[i] = c.Classification
	}
	path := filepath.Join(w.folders.GISData, w.entry.Name+"_classified.geojson")
	if err := report.WriteClassifiedGeoJSON(path, w.ds, classifications); err != nil {
		return err
	}
	w.addFile(path)
	return nil
}

func (w *datasetRun) addFile(path string) {
	w.result.Files = append(w.result.Files, path)
}
