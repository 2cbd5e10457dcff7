package dataset

import (
	"context"
	"database/sql"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// gpkgEnvelopeSizes maps the envelope indicator of a GeoPackage binary
// header to the envelope length in bytes.
var gpkgEnvelopeSizes = map[byte]int{0: 0, 1: 32, 2: 48, 3: 48, 4: 64}

func openGeoPackage(path string) (*sql.DB, error) {
	// sql.Open would silently create a missing file.
	if _, err := os.Stat(path); err != nil {
		return nil, eris.Wrapf(err, "dataset: open geopackage %s", path)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: open geopackage %s", path)
	}
	return db, nil
}

// Layers lists the feature layers of a GeoPackage.
func Layers(ctx context.Context, path string) ([]string, error) {
	db, err := openGeoPackage(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return featureLayers(ctx, db)
}

func featureLayers(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT table_name FROM gpkg_contents WHERE data_type = 'features' ORDER BY table_name`)
	if err != nil {
		return nil, eris.Wrap(err, "dataset: list geopackage layers")
	}
	defer rows.Close()

	var layers []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, eris.Wrap(err, "dataset: scan geopackage layer")
		}
		layers = append(layers, name)
	}
	return layers, eris.Wrap(rows.Err(), "dataset: list geopackage layers")
}

// LoadGeoPackage reads every feature of a GeoPackage layer. An empty layer
// name selects the only feature layer of the file.
func LoadGeoPackage(ctx context.Context, path, layer string) (*Dataset, error) {
	db, err := openGeoPackage(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if layer == "" {
		layers, err := featureLayers(ctx, db)
		if err != nil {
			return nil, err
		}
		if len(layers) != 1 {
			return nil, eris.Errorf("dataset: %s has %d feature layers, choose one of %v", path, len(layers), layers)
		}
		layer = layers[0]
	}

	var geomCol string
	err = db.QueryRowContext(ctx,
		`SELECT column_name FROM gpkg_geometry_columns WHERE table_name = ?`, layer).Scan(&geomCol)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: geometry column of layer %s", layer)
	}

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+quoteIdent(layer))
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: query layer %s", layer)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: columns of layer %s", layer)
	}

	ds := &Dataset{}
	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrap(err, "dataset: read geopackage")
		}
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, eris.Wrapf(err, "dataset: scan layer %s", layer)
		}

		var g geom.T
		props := make(map[string]any, len(cols)-1)
		for i, col := range cols {
			if !strings.EqualFold(col, geomCol) {
				props[col] = values[i]
				continue
			}
			blob, ok := values[i].([]byte)
			if !ok || blob == nil {
				continue
			}
			g, err = DecodeGeoPackageGeometry(blob)
			if err != nil {
				return nil, eris.Wrapf(err, "dataset: layer %s feature %d", layer, len(ds.Records))
			}
		}
		ds.Records = append(ds.Records, newRecord(len(ds.Records), g, props))
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrapf(err, "dataset: read layer %s", layer)
	}

	zap.L().Debug("dataset: read geopackage",
		zap.String("path", path),
		zap.String("layer", layer),
		zap.Int("features", len(ds.Records)),
	)
	return ds, nil
}

// DecodeGeoPackageGeometry decodes a GeoPackage binary geometry blob: the
// "GP" header with optional envelope followed by standard WKB.
func DecodeGeoPackageGeometry(blob []byte) (geom.T, error) {
	if len(blob) < 8 || blob[0] != 'G' || blob[1] != 'P' {
		return nil, eris.New("dataset: not a geopackage geometry")
	}
	flags := blob[3]
	size, ok := gpkgEnvelopeSizes[(flags>>1)&0x07]
	if !ok {
		return nil, eris.Errorf("dataset: invalid geopackage envelope indicator %d", (flags>>1)&0x07)
	}
	start := 8 + size
	if len(blob) < start {
		return nil, eris.New("dataset: truncated geopackage geometry")
	}
	g, err := wkb.Unmarshal(blob[start:])
	if err != nil {
		return nil, eris.Wrap(err, "dataset: decode wkb")
	}
	return g, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
