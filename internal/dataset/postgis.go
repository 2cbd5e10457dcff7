package dataset

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"
	"go.uber.org/zap"
)

// DefaultGeometryColumn is the geometry column read from PostGIS tables
// when none is configured.
const DefaultGeometryColumn = "geom"

// Querier is the subset of pgxpool.Pool used by the PostGIS loader.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// LoadPostGIS reads the geometry column of a PostGIS table. table may be
// schema-qualified ("public.parcels").
func LoadPostGIS(ctx context.Context, q Querier, table, geomColumn string) (*Dataset, error) {
	if table == "" {
		return nil, eris.New("dataset: postgis table is required")
	}
	if geomColumn == "" {
		geomColumn = DefaultGeometryColumn
	}

	query := "SELECT ST_AsBinary(" + pgx.Identifier{geomColumn}.Sanitize() + ") FROM " +
		pgx.Identifier(strings.Split(table, ".")).Sanitize()

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: query %s", table)
	}
	defer rows.Close()

	ds := &Dataset{}
	for rows.Next() {
		var blob []byte
		if err := rows.Scan(&blob); err != nil {
			return nil, eris.Wrapf(err, "dataset: scan %s", table)
		}
		var g geom.T
		if blob != nil {
			g, err = wkb.Unmarshal(blob)
			if err != nil {
				return nil, eris.Wrapf(err, "dataset: decode %s feature %d", table, len(ds.Records))
			}
		}
		ds.Records = append(ds.Records, newRecord(len(ds.Records), g, map[string]any{}))
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrapf(err, "dataset: read %s", table)
	}

	zap.L().Debug("dataset: read postgis table",
		zap.String("table", table),
		zap.Int("features", len(ds.Records)),
	)
	return ds, nil
}
