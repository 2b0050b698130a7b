package shape

import (
	"iter"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/wirecube/vmath"
)

const DefaultLineGlyph = '#'

// Line samples a segment along X centred on the origin
type Line struct {
	HalfLength float64
	Step       float64
	Glyph      rune
}

func (l Line) Count() int {
	return vmath.Steps(-l.HalfLength, l.HalfLength, l.Step)
}

func (l Line) Samples() iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		n := l.Count()
		for k := 0; k < n; k++ {
			x := vmath.LatticeAt(-l.HalfLength, l.Step, k)
			if !yield(Sample{Point: mgl64.Vec3{x, 0, 0}, Glyph: l.Glyph}) {
				return
			}
		}
	}
}
