package shape

import (
	"iter"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/wirecube/vmath"
)

// DefaultCubeGlyphs in face order: +Z, +Y, +X, -Z, -Y, -X
var DefaultCubeGlyphs = [6]rune{'@', '!', '#', '=', '$', '*'}

// Cube samples the six faces of an axis-aligned cube on a square lattice
type Cube struct {
	HalfWidth float64
	Step      float64
	Glyphs    [6]rune
}

// StepsPerAxis returns the lattice size along one face edge
func (c Cube) StepsPerAxis() int {
	return vmath.Steps(-c.HalfWidth, c.HalfWidth, c.Step)
}

func (c Cube) Count() int {
	n := c.StepsPerAxis()
	return 6 * n * n
}

// Samples yields, for every lattice point (i, j), one sample per face
// Each face pins one axis to +/-HalfWidth and sweeps the other two
func (c Cube) Samples() iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		h := c.HalfWidth
		n := c.StepsPerAxis()
		g := c.Glyphs

		for ii := 0; ii < n; ii++ {
			i := vmath.LatticeAt(-h, c.Step, ii)
			for jj := 0; jj < n; jj++ {
				j := vmath.LatticeAt(-h, c.Step, jj)

				faces := [6]Sample{
					{mgl64.Vec3{i, j, h}, g[0]},
					{mgl64.Vec3{i, h, j}, g[1]},
					{mgl64.Vec3{h, i, j}, g[2]},
					{mgl64.Vec3{i, j, -h}, g[3]},
					{mgl64.Vec3{i, -h, j}, g[4]},
					{mgl64.Vec3{-h, i, j}, g[5]},
				}
				for _, s := range faces {
					if !yield(s) {
						return
					}
				}
			}
		}
	}
}
