package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/pavlo-mel/coordinate-converter-app/api"
	"github.com/pavlo-mel/coordinate-converter-app/camera"
	"github.com/pavlo-mel/coordinate-converter-app/db"
	"github.com/pavlo-mel/coordinate-converter-app/geolocate"
)

var (
	listen      = flag.String("listen", ":8080", "Listen address")
	dbFile      = flag.String("db", "fixes.db", "Path to the fixes database")
	presetsFile = flag.String("presets", "", "Optional JSON file with extra camera presets")

	locate       = flag.Bool("locate", false, "Compute a single fix from flags and exit")
	cameraType   = flag.String("camera", camera.WideAngle, "Camera preset (wide-angle, telephoto, other)")
	focalX       = flag.Float64("focal-x", 0, "Focal length f_x in mm (with -focal-y and -sensor-* overrides the preset)")
	focalY       = flag.Float64("focal-y", 0, "Focal length f_y in mm")
	sensorWidth  = flag.Float64("sensor-width", 0, "Sensor width in mm")
	sensorHeight = flag.Float64("sensor-height", 0, "Sensor height in mm")
	imageWidth   = flag.Int("width", 3840, "Image width in pixels")
	imageHeight  = flag.Int("height", 2160, "Image height in pixels")
	pixelX       = flag.Float64("pixel-x", 2000, "Pixel x-coordinate of the detected object")
	pixelY       = flag.Float64("pixel-y", 1000, "Pixel y-coordinate of the detected object")
	tilt         = flag.Float64("tilt", 45, "Camera tilt in degrees from vertical")
	altitude     = flag.Float64("altitude", 3.0, "Camera altitude in meters")
	cameraLat    = flag.Float64("lat", 37.7749, "Camera GPS latitude")
	cameraLon    = flag.Float64("lon", -122.4194, "Camera GPS longitude")
)

func loadPresets() ([]camera.Preset, error) {
	if *presetsFile == "" {
		return camera.Defaults(), nil
	}
	return camera.Load(*presetsFile)
}

func resolveOptics(presets []camera.Preset) (geolocate.FocalLength, geolocate.SensorSize, error) {
	if *focalX > 0 && *focalY > 0 && *sensorWidth > 0 && *sensorHeight > 0 {
		return geolocate.FocalLength{X: *focalX, Y: *focalY},
			geolocate.SensorSize{Width: *sensorWidth, Height: *sensorHeight}, nil
	}
	preset, ok := camera.Find(presets, *cameraType)
	if !ok {
		return geolocate.FocalLength{}, geolocate.SensorSize{},
			fmt.Errorf("unknown camera type %q, valid types: %v", *cameraType, camera.Names(presets))
	}
	return preset.FocalLength, preset.SensorSize, nil
}

func runLocate(presets []camera.Preset) error {
	focal, sensor, err := resolveOptics(presets)
	if err != nil {
		return err
	}

	intrinsics, err := geolocate.ComputeIntrinsics(focal, sensor,
		geolocate.ImageSize{Width: *imageWidth, Height: *imageHeight})
	if err != nil {
		return err
	}
	rotation := geolocate.ComputeTiltRotation(*tilt)

	fmt.Printf("Camera intrinsics:\n%v\n\n", geolocate.FormatMatrix(intrinsics))
	fmt.Printf("Camera rotation:\n%v\n\n", geolocate.FormatMatrix(rotation))

	offset, err := geolocate.ProjectToGround(
		geolocate.Pixel{X: *pixelX, Y: *pixelY}, intrinsics, rotation, *altitude)
	if err != nil {
		return err
	}
	fmt.Printf("Object world coords: (%.4f, %.4f, %.4f)\n\n", offset.X, offset.Y, offset.Z)

	object := geolocate.TranslateToGPS(offset,
		geolocate.Coordinates{Latitude: *cameraLat, Longitude: *cameraLon})
	distance, bearing := geolocate.GroundRange(offset)

	fmt.Printf("Object GPS coordinates: Latitude = %.6f, Longitude = %.6f\n", object.Latitude, object.Longitude)
	fmt.Printf("Ground distance: %.2fm, bearing: %.1f°\n", distance, geolocate.Rad2Degrees(bearing))
	return nil
}

func main() {
	flag.Parse()

	presets, err := loadPresets()
	if err != nil {
		log.Fatalf("failed to load presets: %v", err)
	}

	if *locate {
		if err := runLocate(presets); err != nil {
			log.Fatalf("failed to locate object: %v", err)
		}
		return
	}

	if *listen == "" {
		log.Fatal("Listen address is required")
	}

	database, err := db.NewDB(*dbFile)
	if err != nil {
		log.Fatalf("failed to open fixes database: %v", err)
	}
	defer database.Close()

	server := api.NewServer(database, presets)
	log.Printf("Listening on %s", *listen)
	log.Fatal(http.ListenAndServe(*listen, server.ServeMux()))
}
