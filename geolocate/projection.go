package geolocate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// horizonEpsilon bounds |b_z| below which the back-projected ray is treated
// as parallel to the ground plane. Exact zero almost never survives floating
// point, so pixels within nanoradians of the projected horizon fail too.
const horizonEpsilon = 1e-9

// ProjectToGround back-projects an image pixel to its intersection with the
// ground plane, in camera-centred world coordinates.
//
// The homogeneous pixel [x y 1] is mapped through the inverse intrinsics to
// a ray in the optical frame, rotated into the world frame with the
// transpose of the tilt rotation, and scaled so its vertical component
// equals the camera altitude. The object is assumed to lie on the ground
// plane, so that single scaling is the whole ray/plane intersection.
func ProjectToGround(px Pixel, intrinsics, tilt mat.Matrix, altitudeMeters float64) (WorldOffset, error) {
	if altitudeMeters <= 0 {
		return WorldOffset{}, fmt.Errorf("altitude %g m: %w", altitudeMeters, ErrInvalidAltitude)
	}

	var inverse mat.Dense
	if err := inverse.Inverse(intrinsics); err != nil {
		return WorldOffset{}, fmt.Errorf("%w: %v", ErrSingularIntrinsics, err)
	}

	pixel := mat.NewVecDense(3, []float64{px.X, px.Y, 1})

	var ray mat.VecDense
	ray.MulVec(&inverse, pixel)

	// The tilt rotation is orthonormal, so the transpose is the inverse.
	var body mat.VecDense
	body.MulVec(tilt.T(), &ray)

	bz := body.AtVec(2)
	if math.Abs(bz) < horizonEpsilon {
		return WorldOffset{}, fmt.Errorf("pixel (%g, %g): %w", px.X, px.Y, ErrHorizon)
	}

	var world mat.VecDense
	world.ScaleVec(altitudeMeters/bz, &body)

	return WorldOffset{
		X: world.AtVec(0),
		Y: world.AtVec(1),
		Z: world.AtVec(2),
	}, nil
}
