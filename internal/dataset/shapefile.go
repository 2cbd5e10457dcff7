package dataset

import (
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"
)

// LoadShapefile reads every feature of an ESRI shapefile. DBF attributes are
// kept as string properties. Polygon parts are grouped by winding: clockwise
// rings start a new polygon, counter-clockwise rings are holes of the
// preceding polygon. One outer ring yields a Polygon, several a MultiPolygon.
func LoadShapefile(shpPath string) (*Dataset, error) {
	reader, err := shp.Open(shpPath)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: open shapefile %s", shpPath)
	}
	defer func() { _ = reader.Close() }()

	fields := reader.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = strings.TrimRight(f.String(), "\x00")
	}

	ds := &Dataset{}
	for reader.Next() {
		n, shape := reader.Shape()

		props := make(map[string]any, len(names))
		for i, name := range names {
			val := strings.TrimSpace(strings.TrimRight(reader.Attribute(i), "\x00"))
			props[name] = val
		}

		ds.Records = append(ds.Records, newRecord(n, shapeGeometry(shape), props))
	}
	if err := reader.Err(); err != nil {
		return nil, eris.Wrapf(err, "dataset: read shapefile %s", shpPath)
	}

	zap.L().Debug("dataset: read shapefile",
		zap.String("path", shpPath),
		zap.Int("features", len(ds.Records)),
	)
	return ds, nil
}

// shapeGeometry converts a go-shp shape to a go-geom geometry. Non-polygon
// shapes keep their kind so validation can reject them.
func shapeGeometry(shape shp.Shape) geom.T {
	switch s := shape.(type) {
	case *shp.Polygon:
		return ringsToPolygonal(s.Parts, s.Points)
	case *shp.PolygonZ:
		return ringsToPolygonal(s.Parts, s.Points)
	case *shp.PolygonM:
		return ringsToPolygonal(s.Parts, s.Points)
	case *shp.Point:
		return geom.NewPointFlat(geom.XY, []float64{s.X, s.Y})
	case *shp.MultiPoint:
		flat := make([]float64, 0, 2*len(s.Points))
		for _, p := range s.Points {
			flat = append(flat, p.X, p.Y)
		}
		return geom.NewMultiPointFlat(geom.XY, flat)
	case *shp.PolyLine:
		return ringsToLines(s.Parts, s.Points)
	default:
		return nil
	}
}

func ringsToPolygonal(parts []int32, points []shp.Point) geom.T {
	var polys []*geom.Polygon
	for _, ring := range splitParts(parts, points) {
		lr := geom.NewLinearRingFlat(geom.XY, ring)
		if len(polys) == 0 || signedArea(ring) <= 0 {
			poly := geom.NewPolygon(geom.XY)
			if err := poly.Push(lr); err != nil {
				zap.L().Debug("dataset: skipping malformed polygon ring", zap.Error(err))
				continue
			}
			polys = append(polys, poly)
			continue
		}
		if err := polys[len(polys)-1].Push(lr); err != nil {
			zap.L().Debug("dataset: skipping malformed hole", zap.Error(err))
		}
	}

	switch len(polys) {
	case 0:
		return geom.NewPolygon(geom.XY)
	case 1:
		return polys[0]
	}
	mp := geom.NewMultiPolygon(geom.XY)
	for _, p := range polys {
		if err := mp.Push(p); err != nil {
			zap.L().Debug("dataset: skipping malformed polygon part", zap.Error(err))
		}
	}
	return mp
}

func ringsToLines(parts []int32, points []shp.Point) geom.T {
	rings := splitParts(parts, points)
	if len(rings) == 1 {
		return geom.NewLineStringFlat(geom.XY, rings[0])
	}
	mls := geom.NewMultiLineString(geom.XY)
	for _, r := range rings {
		if err := mls.Push(geom.NewLineStringFlat(geom.XY, r)); err != nil {
			zap.L().Debug("dataset: skipping malformed linestring part", zap.Error(err))
		}
	}
	return mls
}

// splitParts cuts a shapefile point list into flat XY coordinates per part.
func splitParts(parts []int32, points []shp.Point) [][]float64 {
	out := make([][]float64, 0, len(parts))
	for i, start := range parts {
		end := int32(len(points))
		if i+1 < len(parts) {
			end = parts[i+1]
		}
		if start < 0 || start > end || int(end) > len(points) {
			continue
		}
		flat := make([]float64, 0, 2*(end-start))
		for _, p := range points[start:end] {
			flat = append(flat, p.X, p.Y)
		}
		out = append(out, flat)
	}
	return out
}

// signedArea is the shoelace area of a flat XY ring: positive for
// counter-clockwise winding, negative for clockwise.
func signedArea(flat []float64) float64 {
	n := len(flat) / 2
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += flat[2*i]*flat[2*j+1] - flat[2*j]*flat[2*i+1]
	}
	return sum / 2
}
