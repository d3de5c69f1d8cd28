package geolocate

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ComputeIntrinsics builds the pinhole camera intrinsics,
//
//	K = [ f_x   0   c_x ]
//	    [  0   f_y  c_y ]
//	    [  0    0    1  ]
//
// where f_x and f_y are the focal lengths in pixels along each axis and
// (c_x, c_y) is the principal point. The principal point is assumed to sit
// at the centre of the image; this is a stated simplification, not a general
// calibration.
func ComputeIntrinsics(focal FocalLength, sensor SensorSize, image ImageSize) (*mat.Dense, error) {
	if focal.X <= 0 || focal.Y <= 0 {
		return nil, fmt.Errorf("focal length %gx%g mm: %w", focal.X, focal.Y, ErrInvalidDimensions)
	}
	if sensor.Width <= 0 || sensor.Height <= 0 {
		return nil, fmt.Errorf("sensor size %gx%g mm: %w", sensor.Width, sensor.Height, ErrInvalidDimensions)
	}
	if image.Width <= 0 || image.Height <= 0 {
		return nil, fmt.Errorf("image size %dx%d px: %w", image.Width, image.Height, ErrInvalidDimensions)
	}

	fx := focal.X / sensor.Width * float64(image.Width)
	fy := focal.Y / sensor.Height * float64(image.Height)

	cx := float64(image.Width / 2)
	cy := float64(image.Height / 2)

	return mat.NewDense(3, 3, []float64{
		fx, 0, cx,
		0, fy, cy,
		0, 0, 1,
	}), nil
}
