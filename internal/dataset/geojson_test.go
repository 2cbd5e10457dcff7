package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const polygonsGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "a"},
     "geometry": {"type": "Polygon", "coordinates": [[[0,0],[4,0],[4,4],[0,4],[0,0]]]}},
    {"type": "Feature", "properties": {"name": "b"},
     "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,1],[0,0]]]}}
  ]
}`

func TestLoadGeoJSON(t *testing.T) {
	path := writeFile(t, "layer.geojson", polygonsGeoJSON)

	ds, err := LoadGeoJSON(path)
	require.NoError(t, err)
	require.NoError(t, ds.Validate())

	assert.Equal(t, KindPolygon, ds.Kind)
	assert.InDeltaSlice(t, []float64{16, 1}, ds.Areas(), 1e-9)
	assert.Equal(t, "a", ds.Records[0].Properties["name"])
}

func TestLoadGeoJSON_ClockwiseRings(t *testing.T) {
	path := writeFile(t, "clockwise.geojson", `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "holed"},
     "geometry": {"type": "Polygon", "coordinates": [
       [[0,0],[0,10],[10,10],[10,0],[0,0]],
       [[2,2],[2,4],[4,4],[4,2],[2,2]]]}},
    {"type": "Feature", "properties": {"name": "small"},
     "geometry": {"type": "Polygon", "coordinates": [[[0,0],[0,1],[1,1],[1,0],[0,0]]]}}
  ]
}`)

	ds, err := LoadGeoJSON(path)
	require.NoError(t, err)
	require.NoError(t, ds.Validate())
	assert.InDeltaSlice(t, []float64{96, 1}, ds.Areas(), 1e-9)
}

func TestLoadGeoJSON_MixedKinds(t *testing.T) {
	path := writeFile(t, "mixed.geojson", `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": null,
     "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,0]]]}},
    {"type": "Feature", "properties": null,
     "geometry": {"type": "MultiPolygon", "coordinates": [[[[0,0],[1,0],[1,1],[0,0]]]]}}
  ]
}`)

	ds, err := LoadGeoJSON(path)
	require.NoError(t, err)
	assert.NotNil(t, ds.Records[0].Properties)
	assert.Error(t, ds.Validate())
}

func TestLoadGeoJSON_Invalid(t *testing.T) {
	_, err := LoadGeoJSON(writeFile(t, "bad.geojson", "{not json"))
	assert.Error(t, err)

	_, err = LoadGeoJSON(filepath.Join(t.TempDir(), "missing.geojson"))
	assert.Error(t, err)
}
