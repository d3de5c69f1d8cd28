// Package db persists computed geolocation fixes so past conversions can be
// reviewed and exported.
package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/pavlo-mel/coordinate-converter-app/geolocate"
)

const defaultListLimit = 500

// timestampLayout is fixed-width so that lexicographic order of stored
// timestamps matches chronological order. RFC3339Nano would trim trailing
// zeros and break ORDER BY for fixes recorded within the same second.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

type DB struct {
	*sql.DB
}

func NewDB(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = sqlDB.Exec(`
		CREATE TABLE IF NOT EXISTS fixes (
			fix_id TEXT PRIMARY KEY,
			camera_type TEXT,
			pixel_x DOUBLE,
			pixel_y DOUBLE,
			camera_lat DOUBLE,
			camera_lon DOUBLE,
			object_lat DOUBLE,
			object_lon DOUBLE,
			ground_distance DOUBLE,
			bearing_deg DOUBLE,
			timestamp TEXT
		);
	`)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	return &DB{sqlDB}, nil
}

// Fix is one recorded pixel-to-GPS conversion.
type Fix struct {
	ID             string
	CameraType     string
	Pixel          geolocate.Pixel
	Camera         geolocate.Coordinates
	Object         geolocate.Coordinates
	GroundDistance float64
	BearingDegrees float64
	Timestamp      time.Time
}

func (f *Fix) String() string {
	return fmt.Sprintf("Object: (%.6f, %.6f), Camera: (%.6f, %.6f), Distance: %.2fm, Bearing: %.1f°",
		f.Object.Latitude, f.Object.Longitude,
		f.Camera.Latitude, f.Camera.Longitude,
		f.GroundDistance, f.BearingDegrees)
}

// RecordFix inserts a fix, assigning an id and timestamp when missing.
func (db *DB) RecordFix(f *Fix) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.Timestamp.IsZero() {
		f.Timestamp = time.Now().UTC()
	}

	_, err := db.Exec(`
		INSERT INTO fixes (fix_id, camera_type, pixel_x, pixel_y, camera_lat, camera_lon,
			object_lat, object_lon, ground_distance, bearing_deg, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.ID, f.CameraType, f.Pixel.X, f.Pixel.Y,
		f.Camera.Latitude, f.Camera.Longitude,
		f.Object.Latitude, f.Object.Longitude,
		f.GroundDistance, f.BearingDegrees,
		f.Timestamp.UTC().Format(timestampLayout),
	)
	return err
}

// Fixes returns recorded fixes, newest first. A non-positive limit applies
// the default of 500.
func (db *DB) Fixes(limit int) ([]Fix, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := db.Query(`
		SELECT fix_id, camera_type, pixel_x, pixel_y, camera_lat, camera_lon,
			object_lat, object_lon, ground_distance, bearing_deg, timestamp
		FROM fixes ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fixes []Fix
	for rows.Next() {
		var f Fix
		var ts string
		if err := rows.Scan(&f.ID, &f.CameraType, &f.Pixel.X, &f.Pixel.Y,
			&f.Camera.Latitude, &f.Camera.Longitude,
			&f.Object.Latitude, &f.Object.Longitude,
			&f.GroundDistance, &f.BearingDegrees, &ts); err != nil {
			return nil, err
		}
		f.Timestamp, err = time.Parse(timestampLayout, ts)
		if err != nil {
			return nil, fmt.Errorf("failed to parse fix timestamp %q: %w", ts, err)
		}
		fixes = append(fixes, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fixes, nil
}
