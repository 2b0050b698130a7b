// Package shape enumerates point samples of the fixed renderable shapes.
//
// Every generator is pure: Samples may be ranged over any number of times and
// yields the same sequence each time, in the same order.
package shape

import (
	"errors"
	"fmt"
	"iter"

	"github.com/go-gl/mathgl/mgl64"
)

// Sample is one shape-local point and the glyph drawn for it
type Sample struct {
	Point mgl64.Vec3
	Glyph rune
}

// Shape is a finite, restartable sample generator
type Shape interface {
	// Samples yields every sample of the shape
	Samples() iter.Seq[Sample]

	// Count returns the number of samples Samples yields
	Count() int
}

// Kind names a shape generator
type Kind string

const (
	KindCube Kind = "cube"
	KindRing Kind = "ring"
	KindLine Kind = "line"
)

// Kinds lists the recognized kinds in display order
var Kinds = []Kind{KindCube, KindRing, KindLine}

var ErrUnknownKind = errors.New("unknown shape kind")

// ParseKind resolves a kind name; "donut" is accepted for the ring
func ParseKind(s string) (Kind, error) {
	switch s {
	case "cube":
		return KindCube, nil
	case "ring", "donut":
		return KindRing, nil
	case "line":
		return KindLine, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Params carries the geometric constants for any kind
// Only the fields relevant to Kind are read
type Params struct {
	Kind Kind

	HalfWidth float64 // cube
	Radius    float64 // ring
	Aspect    float64 // ring, horizontal stretch
	HalfLen   float64 // line
	Step      float64

	// Glyphs holds six face glyphs for a cube, or one glyph for ring/line
	Glyphs []rune
}

// New builds the generator described by p
func New(p Params) (Shape, error) {
	switch p.Kind {
	case KindCube:
		c := Cube{HalfWidth: p.HalfWidth, Step: p.Step, Glyphs: DefaultCubeGlyphs}
		if len(p.Glyphs) > 0 {
			if len(p.Glyphs) != len(c.Glyphs) {
				return nil, fmt.Errorf("cube needs %d glyphs, got %d", len(c.Glyphs), len(p.Glyphs))
			}
			copy(c.Glyphs[:], p.Glyphs)
		}
		return c, nil

	case KindRing:
		r := Ring{Radius: p.Radius, Step: p.Step, Aspect: p.Aspect, Glyph: DefaultRingGlyph}
		if r.Aspect == 0 {
			r.Aspect = 1
		}
		if len(p.Glyphs) > 0 {
			r.Glyph = p.Glyphs[0]
		}
		return r, nil

	case KindLine:
		l := Line{HalfLength: p.HalfLen, Step: p.Step, Glyph: DefaultLineGlyph}
		if len(p.Glyphs) > 0 {
			l.Glyph = p.Glyphs[0]
		}
		return l, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, p.Kind)
}
