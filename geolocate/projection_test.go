package geolocate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func wideAngleIntrinsics(t *testing.T) *mat.Dense {
	t.Helper()
	k, err := ComputeIntrinsics(
		FocalLength{X: 24, Y: 24},
		SensorSize{Width: 17.3, Height: 13.0},
		ImageSize{Width: 3840, Height: 2160},
	)
	require.NoError(t, err)
	return k
}

func TestProjectToGroundReferenceCase(t *testing.T) {
	k := wideAngleIntrinsics(t)
	r := ComputeTiltRotation(45)

	offset, err := ProjectToGround(Pixel{X: 2000, Y: 1000}, k, r, 3.0)
	require.NoError(t, err)

	assert.InDelta(t, -2.9112289403916867, offset.X, 1e-8)
	assert.InDelta(t, -0.08385541804886221, offset.Y, 1e-8)
	assert.InDelta(t, 3.0, offset.Z, 1e-12)
}

func TestProjectToGroundPlaneInvariant(t *testing.T) {
	// Whatever the pixel, the scaled ray ends on the ground plane: the
	// vertical component equals the supplied altitude.
	k := wideAngleIntrinsics(t)

	cases := []struct {
		alpha    float64
		px       Pixel
		altitude float64
	}{
		{0, Pixel{X: 0, Y: 0}, 3},
		{0, Pixel{X: 3839, Y: 2159}, 12.5},
		{30, Pixel{X: 1920, Y: 1080}, 0.5},
		{45, Pixel{X: 2000, Y: 1000}, 120},
		{60, Pixel{X: 640, Y: 1800}, 3},
	}

	for _, tc := range cases {
		r := ComputeTiltRotation(tc.alpha)
		offset, err := ProjectToGround(tc.px, k, r, tc.altitude)
		require.NoError(t, err)
		assert.InDelta(t, tc.altitude, offset.Z, 1e-9, "alpha=%g px=%+v", tc.alpha, tc.px)
	}
}

func TestProjectToGroundPrincipalPointZeroTilt(t *testing.T) {
	// With no tilt, the principal point looks straight down: the object is
	// directly below the camera.
	k := wideAngleIntrinsics(t)
	r := ComputeTiltRotation(0)

	offset, err := ProjectToGround(Pixel{X: 1920, Y: 1080}, k, r, 3.0)
	require.NoError(t, err)

	assert.InDelta(t, 0, offset.X, 1e-12)
	assert.InDelta(t, 0, offset.Y, 1e-12)
	assert.InDelta(t, 3.0, offset.Z, 1e-12)
}

func TestProjectToGroundHorizonPixelFails(t *testing.T) {
	// At 90 degrees of tilt the optical axis is level with the ground, so
	// the principal point sits exactly on the projected horizon.
	k := wideAngleIntrinsics(t)
	r := ComputeTiltRotation(90)

	_, err := ProjectToGround(Pixel{X: 1920, Y: 1080}, k, r, 3.0)
	require.ErrorIs(t, err, ErrHorizon)
}

func TestProjectToGroundSingularIntrinsicsFails(t *testing.T) {
	singular := mat.NewDense(3, 3, []float64{
		1, 0, 1920,
		0, 0, 1080,
		0, 0, 1,
	})
	r := ComputeTiltRotation(45)

	_, err := ProjectToGround(Pixel{X: 10, Y: 10}, singular, r, 3.0)
	require.ErrorIs(t, err, ErrSingularIntrinsics)
}

func TestProjectToGroundRejectsBadAltitude(t *testing.T) {
	k := wideAngleIntrinsics(t)
	r := ComputeTiltRotation(45)

	for _, altitude := range []float64{0, -3} {
		_, err := ProjectToGround(Pixel{X: 2000, Y: 1000}, k, r, altitude)
		require.ErrorIs(t, err, ErrInvalidAltitude)
	}
}
