package dataset

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
)

// Source identifies a layer to load. Path is a file path or a postgres://
// connection string; Layer is the GeoPackage layer or PostGIS table.
type Source struct {
	Path  string
	Layer string
}

// IsPostGIS reports whether the source is a database connection string.
func (s Source) IsPostGIS() bool {
	return strings.HasPrefix(s.Path, "postgres://") || strings.HasPrefix(s.Path, "postgresql://")
}

// LoadOptions tunes Load.
type LoadOptions struct {
	// GeometryColumn is the PostGIS geometry column; DefaultGeometryColumn if empty.
	GeometryColumn string
}

// Load reads the source, names the dataset and validates its geometry kind.
func Load(ctx context.Context, name string, src Source, opts LoadOptions) (*Dataset, error) {
	ds, err := read(ctx, src, opts)
	if err != nil {
		return nil, err
	}
	ds.Name = name
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

func read(ctx context.Context, src Source, opts LoadOptions) (*Dataset, error) {
	if src.IsPostGIS() {
		pool, err := pgxpool.New(ctx, src.Path)
		if err != nil {
			return nil, eris.Wrap(err, "dataset: connect postgis")
		}
		defer pool.Close()
		return LoadPostGIS(ctx, pool, src.Layer, opts.GeometryColumn)
	}

	switch strings.ToLower(filepath.Ext(src.Path)) {
	case ".shp":
		return LoadShapefile(src.Path)
	case ".geojson", ".json":
		return LoadGeoJSON(src.Path)
	case ".gpkg":
		return LoadGeoPackage(ctx, src.Path, src.Layer)
	default:
		return nil, eris.Errorf("dataset: unsupported source %q", src.Path)
	}
}
