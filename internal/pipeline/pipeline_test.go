package pipeline

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
	"github.com/twpayne/go-geom"

	"github.com/sells-group/area-stats/internal/areastats"
	"github.com/sells-group/area-stats/internal/config"
	"github.com/sells-group/area-stats/internal/dataset"
	"github.com/sells-group/area-stats/internal/project"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Classification.NaturalBreaks = 4
	cfg.Classification.EqualIntervals = 4
	cfg.Classification.OmitEmptyClasses = true
	cfg.Output.ResultsFolder = t.TempDir()
	cfg.Output.Language = "en"
	cfg.Output.DPI = 30
	cfg.Output.DiagramWidth = 4
	cfg.Output.DiagramHeight = 3
	cfg.Output.Formats = config.KnownFormats
	cfg.PostGIS.GeometryColumn = "geom"
	return cfg
}

// squares builds a dataset of squares with the given areas.
func squares(name string, areas ...float64) *dataset.Dataset {
	ds := &dataset.Dataset{Name: name, Kind: dataset.KindPolygon}
	for i, a := range areas {
		s := math.Sqrt(a)
		g := geom.NewPolygonFlat(geom.XY, []float64{0, 0, s, 0, s, s, 0, s, 0, 0}, []int{10})
		ds.Records = append(ds.Records, dataset.Record{
			Index:      i,
			Kind:       dataset.KindPolygon,
			Geometry:   g,
			Area:       a,
			Properties: map[string]any{"id": i},
		})
	}
	return ds
}

func staticLoader(sets map[string]*dataset.Dataset) LoadFunc {
	return func(_ context.Context, name string, _ dataset.Source, _ dataset.LoadOptions) (*dataset.Dataset, error) {
		ds, ok := sets[name]
		if !ok {
			return nil, errors.New("no such dataset")
		}
		return ds, nil
	}
}

func oneToTen() []float64 { return []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10} }

func TestRun(t *testing.T) {
	cfg := testConfig(t)
	reference := 50.0
	m := &project.Manifest{
		Project: "oleasters",
		Datasets: []project.Dataset{
			{Name: "study_area", Source: "study.shp"},
			{Name: "ludas", Source: "ludas.shp", SampleArea: &reference},
		},
	}
	p := New(cfg, WithLoader(staticLoader(map[string]*dataset.Dataset{
		"study_area": squares("study_area", oneToTen()...),
		"ludas":      squares("ludas", oneToTen()...),
	})))

	res, err := p.Run(context.Background(), m, RunOptions{})
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, "en", res.Language)
	require.Len(t, res.Datasets, 2)

	study := res.Datasets[0]
	assert.Equal(t, 10, study.Records)
	assert.Equal(t, 55.0, study.Statistics.Sum)
	assert.Nil(t, study.Statistics.Comparison)
	require.Len(t, study.Classifications, 3)
	assert.Equal(t, areastats.SchemeJenks, study.Classifications[0].Name)
	assert.Len(t, study.Classifications[0].Table, 4)
	for _, ph := range study.Phases {
		assert.Equal(t, PhaseStatusComplete, ph.Status, ph.Name)
	}

	ludas := res.Datasets[1]
	require.NotNil(t, ludas.Statistics.Comparison)
	assert.InDelta(t, 110, ludas.Statistics.Comparison.ExperimentalAreaRatio, 1e-9)
	require.NotNil(t, ludas.Classifications[0].Table[0].SampleAreaRatio)

	for _, f := range res.Files() {
		assert.FileExists(t, f)
	}
	assert.FileExists(t, filepath.Join(res.Folders.Statistics, "study_area_statistics.json"))
	assert.FileExists(t, filepath.Join(res.Folders.Figures, "ludas_quartiles.png"))
	assert.FileExists(t, filepath.Join(res.Folders.GISData, "ludas_classified.geojson"))

	wb, err := xlsx.OpenFile(res.Workbook)
	require.NoError(t, err)
	assert.Contains(t, wb.Sheet, "study_area")
	assert.Contains(t, wb.Sheet, "ludas_jenks")
	assert.Contains(t, wb.Sheet, "ludas_equal_interval")
}

func TestRun_AppendsAndCleans(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output.Formats = []string{config.FormatXLSX}
	m := project.Single("parcels", project.Dataset{Source: "parcels.shp"})
	p := New(cfg, WithLoader(staticLoader(map[string]*dataset.Dataset{
		"parcels": squares("parcels", oneToTen()...),
	})))

	res, err := p.Run(context.Background(), m, RunOptions{})
	require.NoError(t, err)
	_, err = p.Run(context.Background(), m, RunOptions{})
	require.NoError(t, err)

	wb, err := xlsx.OpenFile(res.Workbook)
	require.NoError(t, err)
	assert.Contains(t, wb.Sheet, "parcels_01")

	_, err = p.Run(context.Background(), m, RunOptions{Clean: true})
	require.NoError(t, err)
	wb, err = xlsx.OpenFile(res.Workbook)
	require.NoError(t, err)
	assert.NotContains(t, wb.Sheet, "parcels_01")
	assert.Len(t, wb.Sheets, 4)
}

func TestRun_FormatsFilter(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output.Formats = []string{config.FormatJSON}
	m := project.Single("parcels", project.Dataset{Source: "parcels.shp"})
	p := New(cfg, WithLoader(staticLoader(map[string]*dataset.Dataset{
		"parcels": squares("parcels", oneToTen()...),
	})))

	res, err := p.Run(context.Background(), m, RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(res.Folders.Statistics, "parcels_statistics.json")}, res.Files())
	assert.Empty(t, res.Workbook)
	phases := res.Datasets[0].Phases
	assert.Equal(t, PhaseStatusSkipped, phases[len(phases)-1].Status)
}

func TestRun_StopsAtFailingDataset(t *testing.T) {
	cfg := testConfig(t)
	m := &project.Manifest{
		Project: "oleasters",
		Datasets: []project.Dataset{
			{Name: "good", Source: "good.shp"},
			{Name: "missing", Source: "missing.shp"},
			{Name: "never", Source: "never.shp"},
		},
	}
	p := New(cfg, WithLoader(staticLoader(map[string]*dataset.Dataset{
		"good":  squares("good", oneToTen()...),
		"never": squares("never", oneToTen()...),
	})))

	res, err := p.Run(context.Background(), m, RunOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset missing")
	require.Len(t, res.Datasets, 2)
	assert.Equal(t, PhaseStatusFailed, res.Datasets[1].Phases[0].Status)
}

func TestRun_TooFewRecords(t *testing.T) {
	cfg := testConfig(t)
	m := project.Single("tiny", project.Dataset{Source: "tiny.shp"})
	p := New(cfg, WithLoader(staticLoader(map[string]*dataset.Dataset{
		"tiny": squares("tiny", 1, 2),
	})))

	_, err := p.Run(context.Background(), m, RunOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, areastats.ErrInvalidInput))
}

func TestRun_Cancelled(t *testing.T) {
	cfg := testConfig(t)
	m := project.Single("parcels", project.Dataset{Source: "parcels.shp"})
	p := New(cfg, WithLoader(staticLoader(nil)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := p.Run(ctx, m, RunOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, res.Datasets)
}

func TestRun_InvalidManifest(t *testing.T) {
	_, err := New(testConfig(t)).Run(context.Background(), &project.Manifest{}, RunOptions{})
	assert.Error(t, err)
}

func TestRun_ManifestLanguage(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output.Formats = []string{config.FormatCSV}
	m := project.Single("parcels", project.Dataset{Source: "parcels.shp"})
	m.Language = "hu-HU"
	p := New(cfg, WithLoader(staticLoader(map[string]*dataset.Dataset{
		"parcels": squares("parcels", oneToTen()...),
	})))

	res, err := p.Run(context.Background(), m, RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, "hu", res.Language)

	data, err := os.ReadFile(filepath.Join(res.Folders.Statistics, "parcels_statistics.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "összeg,55")
}
