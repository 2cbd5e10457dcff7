package dataset

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"
)

func wkbBytes(t *testing.T, g geom.T) []byte {
	t.Helper()
	b, err := wkb.Marshal(g, wkb.NDR)
	require.NoError(t, err)
	return b
}

func TestLoadPostGIS(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"st_asbinary"}).
		AddRow(wkbBytes(t, square(0, 0, 3))).
		AddRow(wkbBytes(t, square(1, 1, 2)))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ST_AsBinary("geom") FROM "public"."parcels"`)).
		WillReturnRows(rows)

	ds, err := LoadPostGIS(context.Background(), mock, "public.parcels", "")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{9, 4}, ds.Areas(), 1e-9)
	assert.Equal(t, KindPolygon, ds.Records[1].Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadPostGIS_CustomColumn(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ST_AsBinary("wkb_geometry") FROM "fields"`)).
		WillReturnRows(pgxmock.NewRows([]string{"st_asbinary"}).AddRow(wkbBytes(t, square(0, 0, 1))))

	ds, err := LoadPostGIS(context.Background(), mock, "fields", "wkb_geometry")
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadPostGIS_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT ST_AsBinary").WillReturnError(errors.New("relation does not exist"))

	_, err = LoadPostGIS(context.Background(), mock, "missing", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relation does not exist")
}

func TestLoadPostGIS_BadWKB(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT ST_AsBinary").
		WillReturnRows(pgxmock.NewRows([]string{"st_asbinary"}).AddRow([]byte{0x01, 0x02}))

	_, err = LoadPostGIS(context.Background(), mock, "parcels", "")
	assert.Error(t, err)
}

func TestLoadPostGIS_RequiresTable(t *testing.T) {
	_, err := LoadPostGIS(context.Background(), nil, "", "")
	assert.Error(t, err)
}
