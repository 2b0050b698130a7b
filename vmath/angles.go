package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Angles is the rotation state in radians about the X, Y and Z axes
// Values grow without wrapping; trig periodicity makes that harmless
type Angles struct {
	X, Y, Z float64
}

// Advance returns the triple with per-axis increments added
func (a Angles) Advance(speed Angles) Angles {
	return Angles{a.X + speed.X, a.Y + speed.Y, a.Z + speed.Z}
}

// Matrix returns the composed rotation Rz*Ry*Rx
func (a Angles) Matrix() mgl64.Mat3 {
	return mgl64.Rotate3DZ(a.Z).Mul3(mgl64.Rotate3DY(a.Y)).Mul3(mgl64.Rotate3DX(a.X))
}

// trig caches the six sines and cosines used by Rotate
type trig struct {
	sx, cx, sy, cy, sz, cz float64
}

func (a Angles) trig() trig {
	sx, cx := math.Sincos(a.X)
	sy, cy := math.Sincos(a.Y)
	sz, cz := math.Sincos(a.Z)
	return trig{sx, cx, sy, cy, sz, cz}
}
