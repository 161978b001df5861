package catalogsource

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wvwild/adventure-hub/internal/domain/adventure"
)

// PostgresSource reads the catalog from the adventures table, ordered by
// its position column so the source order is stable across loads.
type PostgresSource struct {
	db queryer
}

// queryer is the part of *pgxpool.Pool the source uses.
type queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// NewPostgresSource constructs the source.
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: pool}
}

// Load implements adventure.Source.
func (s *PostgresSource) Load(ctx context.Context) ([]adventure.Adventure, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, kind, title, description, location, seasons, difficulty,
		       elevation_gain, suitability, gear, drive_time, images
		FROM adventures
		WHERE published
		ORDER BY position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query adventures: %w", err)
	}
	defer rows.Close()

	var out []adventure.Adventure
	for rows.Next() {
		item, err := scanAdventure(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAdventure(row rowScanner) (adventure.Adventure, error) {
	var (
		item        adventure.Adventure
		kind        string
		difficulty  string
		seasons     []string
		suitability []string
		gear        []string
		elevation   sql.NullInt32
		driveTime   sql.NullString
		images      []byte
	)
	if err := row.Scan(
		&item.ID, &kind, &item.Title, &item.Description, &item.Location, &seasons, &difficulty,
		&elevation, &suitability, &gear, &driveTime, &images,
	); err != nil {
		return adventure.Adventure{}, fmt.Errorf("scan adventure: %w", err)
	}
	item.Type = adventure.Kind(kind)
	item.Difficulty = adventure.Difficulty(difficulty)
	item.Gear = gear
	item.DriveTime = driveTime.String
	for _, s := range seasons {
		item.Season = append(item.Season, adventure.Season(s))
	}
	for _, s := range suitability {
		item.Suitability = append(item.Suitability, adventure.Suitability(s))
	}
	if elevation.Valid {
		v := int(elevation.Int32)
		item.ElevationGain = &v
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &item.Images); err != nil {
			return adventure.Adventure{}, fmt.Errorf("decode images of %s: %w", item.ID, err)
		}
	}
	return item, nil
}

var _ adventure.Source = (*PostgresSource)(nil)
