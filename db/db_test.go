package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavlo-mel/coordinate-converter-app/geolocate"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := NewDB(filepath.Join(t.TempDir(), "fixes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestRecordFixAssignsIDAndTimestamp(t *testing.T) {
	database := openTestDB(t)

	fix := Fix{
		CameraType:     "wide-angle",
		Pixel:          geolocate.Pixel{X: 2000, Y: 1000},
		Camera:         geolocate.Coordinates{Latitude: 37.7749, Longitude: -122.4194},
		Object:         geolocate.Coordinates{Latitude: 37.774874, Longitude: -122.419401},
		GroundDistance: 2.91,
		BearingDegrees: -178.35,
	}
	require.NoError(t, database.RecordFix(&fix))

	assert.NotEmpty(t, fix.ID)
	assert.False(t, fix.Timestamp.IsZero())
}

func TestFixesRoundTrip(t *testing.T) {
	database := openTestDB(t)

	want := Fix{
		ID:             "fix-1",
		CameraType:     "telephoto",
		Pixel:          geolocate.Pixel{X: 640, Y: 480},
		Camera:         geolocate.Coordinates{Latitude: 50.8503, Longitude: 4.3517},
		Object:         geolocate.Coordinates{Latitude: 50.8504, Longitude: 4.3519},
		GroundDistance: 17.4,
		BearingDegrees: 51.2,
		Timestamp:      time.Date(2026, 8, 27, 12, 30, 0, 0, time.UTC),
	}
	require.NoError(t, database.RecordFix(&want))

	fixes, err := database.Fixes(0)
	require.NoError(t, err)
	require.Len(t, fixes, 1)

	if diff := cmp.Diff(want, fixes[0]); diff != "" {
		t.Errorf("fix mismatch (-want +got):\n%s", diff)
	}
}

func TestFixesNewestFirstAndLimited(t *testing.T) {
	database := openTestDB(t)

	base := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		fix := Fix{
			ID:        string(rune('a' + i)),
			Pixel:     geolocate.Pixel{X: float64(i)},
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, database.RecordFix(&fix))
	}

	fixes, err := database.Fixes(2)
	require.NoError(t, err)
	require.Len(t, fixes, 2)
	assert.Equal(t, "c", fixes[0].ID)
	assert.Equal(t, "b", fixes[1].ID)
}

func TestFixesSameSecondNewestFirst(t *testing.T) {
	// Fixes milliseconds apart must still come back newest first: the
	// stored timestamp text has to sort chronologically even when the
	// fractional seconds differ only in width.
	database := openTestDB(t)

	base := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	older := Fix{ID: "older", Timestamp: base.Add(120 * time.Millisecond)}
	newer := Fix{ID: "newer", Timestamp: base.Add(123 * time.Millisecond)}
	require.NoError(t, database.RecordFix(&older))
	require.NoError(t, database.RecordFix(&newer))

	fixes, err := database.Fixes(0)
	require.NoError(t, err)
	require.Len(t, fixes, 2)
	assert.Equal(t, "newer", fixes[0].ID)
	assert.Equal(t, "older", fixes[1].ID)
}

func TestNewDBUnusablePathFails(t *testing.T) {
	// A directory is not a database file; NewDB must surface the failure.
	_, err := NewDB(t.TempDir())
	require.Error(t, err)
}

func TestFixString(t *testing.T) {
	fix := Fix{
		Camera:         geolocate.Coordinates{Latitude: 37.7749, Longitude: -122.4194},
		Object:         geolocate.Coordinates{Latitude: 37.774874, Longitude: -122.419401},
		GroundDistance: 2.91,
		BearingDegrees: -178.35,
	}
	assert.Contains(t, fix.String(), "37.774874")
	assert.Contains(t, fix.String(), "2.91m")
}
