// Package api exposes the pixel-to-GPS pipeline over HTTP: one endpoint runs
// a conversion, the rest list presets and review or export recorded fixes.
package api

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pavlo-mel/coordinate-converter-app/camera"
	"github.com/pavlo-mel/coordinate-converter-app/db"
	"github.com/pavlo-mel/coordinate-converter-app/geolocate"
	"github.com/pavlo-mel/coordinate-converter-app/internal/monitoring"
)

type Server struct {
	db      *db.DB
	presets []camera.Preset
}

// NewServer builds a server over the given fix store and presets. A nil
// database disables fix recording; nil presets fall back to the built-ins.
func NewServer(database *db.DB, presets []camera.Preset) *Server {
	if presets == nil {
		presets = camera.Defaults()
	}
	return &Server{
		db:      database,
		presets: presets,
	}
}

func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/locate", s.locateHandler)
	mux.HandleFunc("/api/presets", s.listPresets)
	mux.HandleFunc("/api/fixes", s.listFixes)
	mux.HandleFunc("/api/fixes.csv", s.exportFixesCSV)
	mux.HandleFunc("/", s.homeHandler)
	return mux
}

func (s *Server) homeHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Object Coordinate Converter: from detection to GPS\n"))
}

// LocateRequest carries everything one conversion needs. Either a camera
// type naming a preset or explicit focal length and sensor size must be set.
type LocateRequest struct {
	ImageWidth  int     `json:"image_width"`
	ImageHeight int     `json:"image_height"`
	PixelX      float64 `json:"pixel_x"`
	PixelY      float64 `json:"pixel_y"`

	CameraType  string                 `json:"camera_type,omitempty"`
	FocalLength *geolocate.FocalLength `json:"focal_length,omitempty"`
	SensorSize  *geolocate.SensorSize  `json:"sensor_size,omitempty"`

	TiltDegrees     float64 `json:"tilt_degrees"`
	AltitudeMeters  float64 `json:"altitude_meters"`
	CameraLatitude  float64 `json:"camera_latitude"`
	CameraLongitude float64 `json:"camera_longitude"`
}

type LocateResponse struct {
	Object         geolocate.Coordinates `json:"object"`
	GroundDistance float64               `json:"ground_distance_m"`
	BearingDegrees float64               `json:"bearing_degrees"`
	FixID          string                `json:"fix_id,omitempty"`
}

func (s *Server) locateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req LocateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	focal, sensor, err := s.resolveOptics(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	intrinsics, err := geolocate.ComputeIntrinsics(focal, sensor,
		geolocate.ImageSize{Width: req.ImageWidth, Height: req.ImageHeight})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tilt := geolocate.ComputeTiltRotation(req.TiltDegrees)

	offset, err := geolocate.ProjectToGround(
		geolocate.Pixel{X: req.PixelX, Y: req.PixelY},
		intrinsics, tilt, req.AltitudeMeters)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, geolocate.ErrInvalidAltitude) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	cameraPos := geolocate.Coordinates{Latitude: req.CameraLatitude, Longitude: req.CameraLongitude}
	object := geolocate.TranslateToGPS(offset, cameraPos)
	distance, bearing := geolocate.GroundRange(offset)

	resp := LocateResponse{
		Object:         object,
		GroundDistance: distance,
		BearingDegrees: geolocate.Rad2Degrees(bearing),
	}

	if s.db != nil {
		fix := db.Fix{
			CameraType:     req.CameraType,
			Pixel:          geolocate.Pixel{X: req.PixelX, Y: req.PixelY},
			Camera:         cameraPos,
			Object:         object,
			GroundDistance: distance,
			BearingDegrees: resp.BearingDegrees,
		}
		if err := s.db.RecordFix(&fix); err != nil {
			monitoring.Logf("failed to record fix: %v", err)
		} else {
			resp.FixID = fix.ID
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		monitoring.Logf("failed to encode locate response: %v", err)
	}
}

// resolveOptics picks the focal length and sensor size for a request: a
// camera type selects a preset, explicit values win when both axes are given.
func (s *Server) resolveOptics(req LocateRequest) (geolocate.FocalLength, geolocate.SensorSize, error) {
	if req.FocalLength != nil && req.SensorSize != nil {
		return *req.FocalLength, *req.SensorSize, nil
	}
	if req.CameraType == "" {
		return geolocate.FocalLength{}, geolocate.SensorSize{},
			fmt.Errorf("either camera_type or both focal_length and sensor_size are required")
	}
	preset, ok := camera.Find(s.presets, req.CameraType)
	if !ok {
		return geolocate.FocalLength{}, geolocate.SensorSize{},
			fmt.Errorf("unknown camera type %q, valid types: %v", req.CameraType, camera.Names(s.presets))
	}
	return preset.FocalLength, preset.SensorSize, nil
}

func (s *Server) listPresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.presets); err != nil {
		monitoring.Logf("failed to encode presets: %v", err)
	}
}

func (s *Server) listFixes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.db == nil {
		http.Error(w, "Fix recording is disabled", http.StatusNotFound)
		return
	}

	fixes, err := s.db.Fixes(0)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve fixes: %v", err), http.StatusInternalServerError)
		return
	}

	for _, fix := range fixes {
		if _, err := w.Write([]byte(fix.String() + "\n")); err != nil {
			http.Error(w, "Failed to write fix", http.StatusInternalServerError)
			return
		}
	}
}

func (s *Server) exportFixesCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.db == nil {
		http.Error(w, "Fix recording is disabled", http.StatusNotFound)
		return
	}

	fixes, err := s.db.Fixes(0)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve fixes: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="object_gps_coordinates.csv"`)

	cw := csv.NewWriter(w)
	cw.Write([]string{"latitude", "longitude", "ground_distance_m", "bearing_degrees",
		"camera_latitude", "camera_longitude", "pixel_x", "pixel_y", "camera_type", "timestamp"})
	for _, fix := range fixes {
		cw.Write([]string{
			formatFloat(fix.Object.Latitude),
			formatFloat(fix.Object.Longitude),
			formatFloat(fix.GroundDistance),
			formatFloat(fix.BearingDegrees),
			formatFloat(fix.Camera.Latitude),
			formatFloat(fix.Camera.Longitude),
			formatFloat(fix.Pixel.X),
			formatFloat(fix.Pixel.Y),
			fix.CameraType,
			fix.Timestamp.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		monitoring.Logf("failed to write fixes CSV: %v", err)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
