package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/area-stats/internal/areastats"
	"github.com/sells-group/area-stats/internal/dataset"
	"github.com/sells-group/area-stats/internal/project"
	"github.com/sells-group/area-stats/internal/report"
)

// BasicResult is the outcome of BasicStatistics.
type BasicResult struct {
	Name       string
	Path       string
	Statistics areastats.Report
}

// LayerName returns the name used for a source: the layer when given,
// otherwise the file name without extension.
func LayerName(src dataset.Source) string {
	if src.Layer != "" {
		return src.Layer
	}
	if src.IsPostGIS() {
		return "postgis"
	}
	base := filepath.Base(src.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// BasicStatistics computes the statistics report of one source and writes it
// to <outDir>/basic_statistics_<layer>.json.
func (p *Pipeline) BasicStatistics(ctx context.Context, src dataset.Source, outDir string) (*BasicResult, error) {
	name := LayerName(src)
	log := zap.L().With(zap.String("dataset", name))

	entry := project.Dataset{Name: name, Source: src.Path, Layer: src.Layer}
	ds, err := p.load(ctx, name, src, loadOptions(p.cfg, entry))
	if err != nil {
		return nil, err
	}

	stats, err := analysisFor(p.cfg, entry).Statistics(ds.Areas())
	if err != nil {
		return nil, eris.Wrapf(err, "pipeline: statistics of %s", name)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, eris.Wrapf(err, "pipeline: create %s", outDir)
	}
	path := filepath.Join(outDir, "basic_statistics_"+name+".json")
	if err := report.WriteJSON(path, stats.Fields()); err != nil {
		return nil, err
	}

	log.Info("pipeline: basic statistics written",
		zap.String("path", path),
		zap.Int("records", ds.Len()),
	)
	return &BasicResult{Name: name, Path: path, Statistics: stats}, nil
}
