// Package geolocate converts a pixel location of a detected object in a
// tilted, downward-facing camera image into the object's GPS coordinates on
// the ground.
//
// The pipeline is four pure stages: ComputeIntrinsics builds the pinhole
// intrinsics matrix, ComputeTiltRotation builds the mount tilt rotation,
// ProjectToGround back-projects the pixel to its ground-plane intersection in
// camera-centred world coordinates, and TranslateToGPS moves the camera's GPS
// position by the resulting ground distance and bearing. Every stage is
// stateless and deterministic.
package geolocate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// FormatMatrix returns a printable form of a matrix for logs and CLI output.
func FormatMatrix(matrix mat.Matrix) fmt.Formatter {
	return mat.Formatted(matrix, mat.Prefix("    "), mat.Squeeze())
}

func roundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

func Degrees2Rad(deg float64) float64 {
	res := deg * math.Pi / 180
	return roundFloat(res, 10)
}

func Rad2Degrees(rad float64) float64 {
	res := rad * 180 / math.Pi
	return roundFloat(res, 10)
}
