package shape

import (
	"iter"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/wirecube/vmath"
)

const DefaultRingGlyph = '@'

// Ring samples a circle of Radius in the XY plane
// Aspect stretches X; 1 draws a true circle
type Ring struct {
	Radius float64
	Step   float64
	Aspect float64
	Glyph  rune
}

func (r Ring) Count() int {
	return vmath.Steps(0, 2*math.Pi, r.Step)
}

func (r Ring) Samples() iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		n := r.Count()
		for k := 0; k < n; k++ {
			s, c := math.Sincos(vmath.LatticeAt(0, r.Step, k))
			p := mgl64.Vec3{r.Radius * c * r.Aspect, r.Radius * s, 0}
			if !yield(Sample{Point: p, Glyph: r.Glyph}) {
				return
			}
		}
	}
}
