package dataset

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"
)

// LoadGeoJSON reads a GeoJSON FeatureCollection.
func LoadGeoJSON(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: read geojson %s", path)
	}

	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, eris.Wrapf(err, "dataset: parse geojson %s", path)
	}

	ds := &Dataset{Records: make([]Record, 0, len(fc.Features))}
	for i, f := range fc.Features {
		props := f.Properties
		if props == nil {
			props = map[string]any{}
		}
		ds.Records = append(ds.Records, newRecord(i, f.Geometry, props))
	}

	zap.L().Debug("dataset: read geojson",
		zap.String("path", path),
		zap.Int("features", len(ds.Records)),
	)
	return ds, nil
}
