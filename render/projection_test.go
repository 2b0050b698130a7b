package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func testProjection() Projection {
	return Projection{
		Width:          99,
		Height:         31,
		Near:           -30,
		Far:            -300,
		CameraDistance: 100,
		GlyphAspect:    1,
	}
}

func TestProjection_ForwardAxisHitsCenter(t *testing.T) {
	p := testProjection()
	for _, z := range []float64{-50, 0, 30, 60} {
		x, y := p.Project(mgl64.Vec3{0, 0, z}).Cell()
		assert.Equal(t, p.Width/2, x, "z=%v", z)
		assert.Equal(t, p.Height/2, y, "z=%v", z)
	}
}

func TestProjection_DepthIncreasesWithDistance(t *testing.T) {
	p := testProjection()

	prev := math.Inf(-1)
	// local z from near the camera to the far plane
	for z := 60.0; z >= -200; z -= 10 {
		d := p.Project(mgl64.Vec3{0, 0, z}).Depth
		assert.Greater(t, d, prev, "local z=%v", z)
		prev = d
	}
}

func TestProjection_DepthPlanes(t *testing.T) {
	p := testProjection()
	assert.InDelta(t, 0.0, p.Depth(p.Near), 1e-12)
	assert.InDelta(t, 1.0, p.Depth(p.Far), 1e-12)
}

func TestProjection_PerspectiveShrinksWithDistance(t *testing.T) {
	p := testProjection()
	near := p.Project(mgl64.Vec3{10, 0, 30})
	far := p.Project(mgl64.Vec3{10, 0, -30})

	cx := float64(p.Width) / 2
	assert.Greater(t, math.Abs(near.X-cx), math.Abs(far.X-cx))
	// positive x maps left of centre under this camera
	assert.Less(t, near.X, cx)
}

func TestProjection_GlyphAspect(t *testing.T) {
	p := testProjection()
	full := p.Project(mgl64.Vec3{0, 20, 0})
	p.GlyphAspect = 0.5
	half := p.Project(mgl64.Vec3{0, 20, 0})

	cy := float64(p.Height) / 2
	assert.InDelta(t, (full.Y-cy)/2, half.Y-cy, 1e-12)
	assert.Equal(t, full.X, half.X)
}

func TestProjection_InBounds(t *testing.T) {
	p := testProjection()
	tests := []struct {
		name string
		sp   ScreenPoint
		want bool
	}{
		{"origin", ScreenPoint{X: 0, Y: 0}, true},
		{"last cell", ScreenPoint{X: 98.99, Y: 30.99}, true},
		{"right edge", ScreenPoint{X: 99, Y: 0}, false},
		{"bottom edge", ScreenPoint{X: 0, Y: 31}, false},
		{"slightly negative", ScreenPoint{X: -0.5, Y: 3}, false},
		{"nan", ScreenPoint{X: math.NaN(), Y: 3}, false},
		{"inf", ScreenPoint{X: 3, Y: math.Inf(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.InBounds(tt.sp); got != tt.want {
				t.Errorf("InBounds(%+v) = %v, want %v", tt.sp, got, tt.want)
			}
		})
	}
}

func TestProjection_CameraPlaneIsOutOfBounds(t *testing.T) {
	p := testProjection()
	sp := p.Project(mgl64.Vec3{1, 1, p.CameraDistance})
	assert.False(t, p.InBounds(sp))
}
