package report

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/area-stats/internal/areastats"
	"github.com/sells-group/area-stats/internal/dataset"
)

// ClassifiedFeatures returns the records of ds as GeoJSON features carrying
// their original properties, the computed area and one property per
// classification holding the assigned class.
func ClassifiedFeatures(ds *dataset.Dataset, classifications []areastats.Classification) (*geojson.FeatureCollection, error) {
	for _, c := range classifications {
		if len(c.Classes) != ds.Len() {
			return nil, eris.Errorf("report: classification %s has %d classes for %d records",
				c.Name, len(c.Classes), ds.Len())
		}
	}

	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, ds.Len())}
	for i, r := range ds.Records {
		props := make(map[string]any, len(r.Properties)+1+len(classifications))
		for k, v := range r.Properties {
			props[k] = v
		}
		props[areastats.KeyArea] = r.Area
		for _, c := range classifications {
			props[c.Name] = c.Classes[i]
		}
		fc.Features = append(fc.Features, &geojson.Feature{
			Geometry:   r.Geometry,
			Properties: props,
		})
	}
	return fc, nil
}

// WriteClassifiedGeoJSON writes the classified records of ds to path.
func WriteClassifiedGeoJSON(path string, ds *dataset.Dataset, classifications []areastats.Classification) error {
	fc, err := ClassifiedFeatures(ds, classifications)
	if err != nil {
		return err
	}
	data, err := json.Marshal(fc)
	if err != nil {
		return eris.Wrapf(err, "report: encode %s", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "report: write %s", path)
	}
	return nil
}
