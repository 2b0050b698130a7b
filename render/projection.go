// @focus: #render { projection }
package render

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Projection maps rotated points to grid coordinates with a perspective divide
// Near and Far are negative for a camera looking down -Z
type Projection struct {
	Width, Height  int
	Near, Far      float64
	CameraDistance float64
	// GlyphAspect scales rows to compensate for cells taller than wide; 1 disables
	GlyphAspect float64
}

// ScreenPoint is a projected sample before truncation to a cell
type ScreenPoint struct {
	X, Y  float64
	Depth float64
}

// Cell truncates the point to grid indices
func (sp ScreenPoint) Cell() (x, y int) {
	return int(sp.X), int(sp.Y)
}

// Project applies camera offset, perspective divide and depth remap
// z == CameraDistance yields non-finite coordinates which InBounds rejects
func (p Projection) Project(v mgl64.Vec3) ScreenPoint {
	z := v[2] - p.CameraDistance
	scale := 2 * p.Near / z

	return ScreenPoint{
		X:     (float64(p.Width) - scale*v[0]) / 2,
		Y:     (float64(p.Height) + scale*v[1]*p.GlyphAspect) / 2,
		Depth: p.Depth(z),
	}
}

// Depth remaps a camera-space z to normalized depth; the far plane maps to 1
func (p Projection) Depth(z float64) float64 {
	return (p.Far*z - p.Far*p.Near) / ((p.Far - p.Near) * z)
}

// InBounds reports whether sp truncates to a cell inside the grid
// Tested on the unrounded values so (-1, 0) is rejected rather than truncated to 0
func (p Projection) InBounds(sp ScreenPoint) bool {
	return sp.X >= 0 && sp.X < float64(p.Width) && sp.Y >= 0 && sp.Y < float64(p.Height)
}
