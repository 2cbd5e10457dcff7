package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/area-stats/internal/areastats"
	"github.com/sells-group/area-stats/internal/dataset"
)

func squareRecord(i int, size float64) dataset.Record {
	g := geom.NewPolygonFlat(geom.XY, []float64{0, 0, size, 0, size, size, 0, size, 0, 0}, []int{10})
	return dataset.Record{
		Index:      i,
		Kind:       dataset.KindPolygon,
		Geometry:   g,
		Area:       g.Area(),
		Properties: map[string]any{"id": i},
	}
}

func TestWriteClassifiedGeoJSON(t *testing.T) {
	ds := &dataset.Dataset{
		Name:    "parcels",
		Kind:    dataset.KindPolygon,
		Records: []dataset.Record{squareRecord(0, 1), squareRecord(1, 3)},
	}
	classes := []areastats.Classification{
		{Name: areastats.SchemeJenks, Classes: []string{"jenks_1", "jenks_2"}},
		{Name: areastats.SchemeQuartiles, Classes: []string{"quartile_1", "quartile_4"}},
	}

	path := filepath.Join(t.TempDir(), "parcels.geojson")
	require.NoError(t, WriteClassifiedGeoJSON(path, ds, classes))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var fc geojson.FeatureCollection
	require.NoError(t, json.Unmarshal(data, &fc))
	require.Len(t, fc.Features, 2)

	props := fc.Features[1].Properties
	assert.Equal(t, 9.0, props["area"])
	assert.Equal(t, "jenks_2", props["jenks"])
	assert.Equal(t, "quartile_4", props["quartiles"])
	assert.Equal(t, 1.0, props["id"])
	assert.IsType(t, &geom.Polygon{}, fc.Features[1].Geometry)

	// The source record keeps its own properties.
	_, touched := ds.Records[1].Properties["jenks"]
	assert.False(t, touched)
}

func TestClassifiedFeatures_LengthMismatch(t *testing.T) {
	ds := &dataset.Dataset{Records: []dataset.Record{squareRecord(0, 1)}}
	_, err := ClassifiedFeatures(ds, []areastats.Classification{{Name: "jenks", Classes: []string{"a", "b"}}})
	assert.Error(t, err)
}
