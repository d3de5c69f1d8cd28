package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavlo-mel/coordinate-converter-app/camera"
)

func resetOpticsFlags() {
	*focalX, *focalY, *sensorWidth, *sensorHeight = 0, 0, 0, 0
}

func TestResolveOpticsFromPreset(t *testing.T) {
	resetOpticsFlags()
	*cameraType = camera.Telephoto

	focal, sensor, err := resolveOptics(camera.Defaults())
	require.NoError(t, err)
	assert.Equal(t, 162.0, focal.X)
	assert.Equal(t, 4.8, sensor.Height)
}

func TestResolveOpticsExplicitOverride(t *testing.T) {
	resetOpticsFlags()
	*cameraType = camera.WideAngle
	*focalX, *focalY = 35, 35
	*sensorWidth, *sensorHeight = 36, 24

	focal, sensor, err := resolveOptics(camera.Defaults())
	require.NoError(t, err)
	assert.Equal(t, 35.0, focal.Y)
	assert.Equal(t, 36.0, sensor.Width)

	resetOpticsFlags()
}

func TestResolveOpticsUnknownPreset(t *testing.T) {
	resetOpticsFlags()
	*cameraType = "fisheye"

	_, _, err := resolveOptics(camera.Defaults())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fisheye")
}
