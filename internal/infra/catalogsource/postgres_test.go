package catalogsource

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/wvwild/adventure-hub/internal/domain/adventure"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch ptr := d.(type) {
		case *string:
			*ptr = r.values[i].(string)
		case *[]string:
			*ptr = r.values[i].([]string)
		case *sql.NullInt32:
			*ptr = r.values[i].(sql.NullInt32)
		case *sql.NullString:
			*ptr = r.values[i].(sql.NullString)
		case *[]byte:
			*ptr = r.values[i].([]byte)
		}
	}
	return nil
}

func TestScanAdventure(t *testing.T) {
	row := fakeRow{values: []any{
		"seneca-rocks", "trail", "Seneca Rocks", "Fins above the valley", "Pendleton County",
		[]string{"spring", "fall"}, "moderate",
		sql.NullInt32{Int32: 740, Valid: true},
		[]string{"dog-friendly"}, []string{"water"},
		sql.NullString{String: "1h 45m", Valid: true},
		[]byte(`[{"src":"/images/seneca.jpg","alt":"Seneca Rocks"}]`),
	}}

	item, err := scanAdventure(row)
	require.NoError(t, err)
	require.Equal(t, adventure.KindTrail, item.Type)
	require.Equal(t, []adventure.Season{adventure.SeasonSpring, adventure.SeasonFall}, item.Season)
	require.Equal(t, adventure.DifficultyModerate, item.Difficulty)
	require.NotNil(t, item.ElevationGain)
	require.Equal(t, 740, *item.ElevationGain)
	require.Equal(t, []adventure.Suitability{adventure.SuitabilityDogFriendly}, item.Suitability)
	require.Equal(t, "1h 45m", item.DriveTime)
	require.Len(t, item.Images, 1)
	require.NoError(t, adventure.Validate(item))
}

func TestScanAdventureNullElevation(t *testing.T) {
	row := fakeRow{values: []any{
		"burnsville-lake-wma", "wma", "Burnsville Lake WMA", "", "Braxton County",
		[]string{"fall"}, "moderate",
		sql.NullInt32{},
		[]string{}, []string{"blaze orange"},
		sql.NullString{},
		[]byte(nil),
	}}

	item, err := scanAdventure(row)
	require.NoError(t, err)
	require.False(t, item.HasElevationGain())
	require.Empty(t, item.DriveTime)
	require.Empty(t, item.Images)
}

func TestScanAdventureErrors(t *testing.T) {
	_, err := scanAdventure(fakeRow{err: errors.New("boom")})
	require.ErrorContains(t, err, "scan adventure")

	row := fakeRow{values: []any{
		"x", "trail", "X", "", "", []string{}, "easy",
		sql.NullInt32{}, []string{}, []string{}, sql.NullString{},
		[]byte(`{not json`),
	}}
	_, err = scanAdventure(row)
	require.ErrorContains(t, err, "decode images of x")
}

type fakeRows struct {
	rows   []fakeRow
	pos    int
	err    error
	closed bool
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return r.rows[r.pos-1].Scan(dest...)
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

type stubQueryer struct {
	rows *fakeRows
	err  error
	sql  string
}

func (q *stubQueryer) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.sql = sql
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func adventureRow(id, title string) fakeRow {
	return fakeRow{values: []any{
		id, "trail", title, "", "Braxton County",
		[]string{"summer"}, "easy",
		sql.NullInt32{}, []string{}, []string{}, sql.NullString{},
		[]byte(`[]`),
	}}
}

func TestPostgresSourceLoadKeepsRowOrder(t *testing.T) {
	rows := &fakeRows{rows: []fakeRow{
		adventureRow("sutton-lake", "Sutton Lake"),
		adventureRow("elk-river-float", "Elk River Float"),
	}}
	db := &stubQueryer{rows: rows}

	items, err := (&PostgresSource{db: db}).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "sutton-lake", items[0].ID)
	require.Equal(t, "elk-river-float", items[1].ID)
	require.True(t, rows.closed)
	require.Contains(t, db.sql, "WHERE published")
	require.Contains(t, db.sql, "ORDER BY position, id")
}

func TestPostgresSourceLoadErrors(t *testing.T) {
	_, err := (&PostgresSource{db: &stubQueryer{err: errors.New("connection reset")}}).Load(context.Background())
	require.ErrorContains(t, err, "query adventures")

	rows := &fakeRows{rows: []fakeRow{adventureRow("a", "A")}, err: errors.New("stream broken")}
	_, err = (&PostgresSource{db: &stubQueryer{rows: rows}}).Load(context.Background())
	require.ErrorContains(t, err, "stream broken")

	rows = &fakeRows{rows: []fakeRow{adventureRow("a", "A"), {err: errors.New("bad column")}}}
	_, err = (&PostgresSource{db: &stubQueryer{rows: rows}}).Load(context.Background())
	require.ErrorContains(t, err, "scan adventure")
	require.True(t, rows.closed)
}
