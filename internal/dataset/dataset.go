// Package dataset loads polygon layers from geospatial files and databases
// into ordered area records.
package dataset

import (
	"math"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"

	"github.com/sells-group/area-stats/internal/areastats"
)

// GeometryKind names a geometry type the way GIS tools report it.
type GeometryKind string

// Geometry kinds.
const (
	KindPolygon            GeometryKind = "Polygon"
	KindMultiPolygon       GeometryKind = "MultiPolygon"
	KindPoint              GeometryKind = "Point"
	KindMultiPoint         GeometryKind = "MultiPoint"
	KindLineString         GeometryKind = "LineString"
	KindMultiLineString    GeometryKind = "MultiLineString"
	KindGeometryCollection GeometryKind = "GeometryCollection"
	KindNull               GeometryKind = "Null"
	KindUnknown            GeometryKind = "Unknown"
)

// IsPolygonal reports whether k is Polygon or MultiPolygon.
func (k GeometryKind) IsPolygonal() bool {
	return k == KindPolygon || k == KindMultiPolygon
}

// Record is one feature of a layer.
type Record struct {
	Index      int
	Kind       GeometryKind
	Geometry   geom.T // nil for null geometries
	Area       float64
	Properties map[string]any
}

// Dataset is an ordered collection of records sharing one geometry kind.
type Dataset struct {
	Name    string
	Kind    GeometryKind
	Records []Record
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.Records) }

// Areas returns the area of every record in record order.
func (d *Dataset) Areas() []float64 {
	areas := make([]float64, len(d.Records))
	for i, r := range d.Records {
		areas[i] = r.Area
	}
	return areas
}

// Validate checks that the dataset is non-empty and that every record has
// the same polygonal geometry kind. It sets Kind on success.
func (d *Dataset) Validate() error {
	if len(d.Records) == 0 {
		return eris.Wrapf(areastats.ErrInvalidInput, "dataset: %s has no features", d.Name)
	}
	first := d.Records[0].Kind
	if !first.IsPolygonal() {
		return eris.Wrapf(areastats.ErrInvalidInput,
			"dataset: %s: geometry types must be polygons or multipolygons, got %s", d.Name, first)
	}
	for _, r := range d.Records[1:] {
		if r.Kind != first {
			return eris.Wrapf(areastats.ErrInvalidInput,
				"dataset: %s: only one geometry type is allowed, found %s and %s", d.Name, first, r.Kind)
		}
	}
	d.Kind = first
	return nil
}

// newRecord builds a record and computes its planar area.
func newRecord(index int, g geom.T, props map[string]any) Record {
	r := Record{Index: index, Kind: KindOf(g), Geometry: g, Properties: props}
	switch t := g.(type) {
	case *geom.Polygon:
		r.Area = polygonArea(t)
	case *geom.MultiPolygon:
		for i := 0; i < t.NumPolygons(); i++ {
			r.Area += polygonArea(t.Polygon(i))
		}
	}
	return r
}

// polygonArea is the outer ring area minus the hole areas, independent of
// ring winding.
func polygonArea(p *geom.Polygon) float64 {
	if p.NumLinearRings() == 0 {
		return 0
	}
	area := math.Abs(p.LinearRing(0).Area())
	for i := 1; i < p.NumLinearRings(); i++ {
		area -= math.Abs(p.LinearRing(i).Area())
	}
	return area
}

// KindOf returns the geometry kind of g.
func KindOf(g geom.T) GeometryKind {
	switch g.(type) {
	case nil:
		return KindNull
	case *geom.Polygon:
		return KindPolygon
	case *geom.MultiPolygon:
		return KindMultiPolygon
	case *geom.Point:
		return KindPoint
	case *geom.MultiPoint:
		return KindMultiPoint
	case *geom.LineString:
		return KindLineString
	case *geom.MultiLineString:
		return KindMultiLineString
	case *geom.GeometryCollection:
		return KindGeometryCollection
	default:
		return KindUnknown
	}
}
