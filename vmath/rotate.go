// @focus: #render { rotate }
package vmath

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Rotate applies the composed X-then-Y-then-Z rotation to p about the origin
// All three output axes are computed from the unrotated input
func Rotate(p mgl64.Vec3, a Angles) mgl64.Vec3 {
	return a.trig().apply(p)
}

// Rotator holds precomputed trig for one angle triple
// Frame builders create one per frame and reuse it for every sample
type Rotator struct {
	t trig
}

// NewRotator precomputes the sines and cosines of a
func NewRotator(a Angles) Rotator {
	return Rotator{t: a.trig()}
}

// Rotate is equivalent to the package-level Rotate with the captured angles
func (r Rotator) Rotate(p mgl64.Vec3) mgl64.Vec3 {
	return r.t.apply(p)
}

func (t trig) apply(p mgl64.Vec3) mgl64.Vec3 {
	x, y, z := p[0], p[1], p[2]

	rx := x*t.cy*t.cz + y*t.sx*t.sy*t.cz + z*t.cx*t.sy*t.cz - y*t.cx*t.sz + z*t.sx*t.sz
	ry := x*t.cy*t.sz + y*t.sx*t.sy*t.sz + z*t.cx*t.sy*t.sz + y*t.cx*t.cz - z*t.sx*t.cz
	rz := -x*t.sy + y*t.sx*t.cy + z*t.cx*t.cy

	return mgl64.Vec3{rx, ry, rz}
}
