package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
)

// SQLDirectionsCache is a SQL-backed cache for provider route legs, keyed
// by profile and rounded origin/destination coordinates. It persists across
// restarts, unlike the in-memory TTL caches used for enrichment data.
type SQLDirectionsCache struct {
	DB *sql.DB
}

func NewSQLDirectionsCache(db *sql.DB) *SQLDirectionsCache {
	return &SQLDirectionsCache{DB: db}
}

// coordKey rounds to 5 decimal places (~1m) so that near-identical inputs
// share one cache row.
func coordKey(c domain.Coordinate) string {
	return fmt.Sprintf("%.5f,%.5f", c.Lat, c.Lon)
}

// Get fetches a cached leg. The second return is false on a miss.
func (s *SQLDirectionsCache) Get(
	ctx context.Context,
	profile string,
	origin, destination domain.Coordinate,
) (_ ports.Leg, _ bool, err error) {
	defer obs.Time(ctx, "directions.cache.Get")(&err)

	if s.DB == nil {
		return ports.Leg{}, false, errors.New("directions cache: db is nil")
	}

	q := `
	SELECT distance_meters, duration_seconds, path
	FROM directions_cache
	WHERE profile = $1
		AND origin = $2
		AND destination = $3;
	`

	var (
		meters, seconds float64
		pathJSON        []byte
	)

	row := s.DB.QueryRowContext(ctx, q, profile, coordKey(origin), coordKey(destination))
	if err := row.Scan(&meters, &seconds, &pathJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ports.Leg{}, false, nil
		}
		return ports.Leg{}, false, fmt.Errorf("get directions cache: scan row: %w", err)
	}

	var path []domain.Coordinate
	if err := json.Unmarshal(pathJSON, &path); err != nil {
		return ports.Leg{}, false, fmt.Errorf("get directions cache: decode path: %w", err)
	}

	return ports.Leg{
		DistanceMeters:  meters,
		DurationSeconds: seconds,
		Path:            path,
	}, true, nil
}

// Put stores one leg, replacing any previous row for the same key.
func (s *SQLDirectionsCache) Put(
	ctx context.Context,
	profile string,
	origin, destination domain.Coordinate,
	leg ports.Leg,
) error {
	if s.DB == nil {
		return errors.New("directions cache: db is nil")
	}

	pathJSON, err := json.Marshal(leg.Path)
	if err != nil {
		return fmt.Errorf("insert directions cache: encode path: %w", err)
	}

	q := `
	INSERT INTO directions_cache (profile, origin, destination, distance_meters, duration_seconds, path)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (profile, origin, destination) DO UPDATE
	SET distance_meters = EXCLUDED.distance_meters,
		duration_seconds = EXCLUDED.duration_seconds,
		path = EXCLUDED.path;
	`

	if _, err := s.DB.ExecContext(ctx, q,
		profile, coordKey(origin), coordKey(destination),
		leg.DistanceMeters, leg.DurationSeconds, pathJSON,
	); err != nil {
		return fmt.Errorf("insert directions cache: %w", err)
	}

	return nil
}

// InitSchema creates the cache table if it does not exist.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: db is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS directions_cache (
		profile          TEXT NOT NULL,
		origin           TEXT NOT NULL,
		destination      TEXT NOT NULL,
		distance_meters  DOUBLE PRECISION NOT NULL,
		duration_seconds DOUBLE PRECISION NOT NULL,
		path             JSONB NOT NULL,
		PRIMARY KEY (profile, origin, destination)
	);
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create directions_cache: %w", err)
	}

	return nil
}
