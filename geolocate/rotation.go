package geolocate

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ComputeTiltRotation builds the rotation taking the straight-down reference
// view to a camera tilted alpha degrees away from vertical, about the
// camera's horizontal (y) axis:
//
//	R = [ cos(a)  0  sin(a) ]
//	    [   0     1    0    ]
//	    [-sin(a)  0  cos(a) ]
//
// Alpha is not bounds-checked: values outside [0, 90] stay numerically valid
// but may aim the back-projected ray at or above the horizon downstream.
func ComputeTiltRotation(alphaDegrees float64) *mat.Dense {
	alpha := Degrees2Rad(alphaDegrees)
	cosAlpha := math.Cos(alpha)
	sinAlpha := math.Sin(alpha)

	return mat.NewDense(3, 3, []float64{
		cosAlpha, 0, sinAlpha,
		0, 1, 0,
		-sinAlpha, 0, cosAlpha,
	})
}
