package render

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/wirecube/shape"
	"github.com/lixenwraith/wirecube/vmath"
)

// BoundsPolicy selects how samples projected outside the grid are handled
type BoundsPolicy uint8

const (
	// BoundsClip discards the sample and counts it as clipped
	BoundsClip BoundsPolicy = iota
	// BoundsStrict aborts the frame with ErrOutOfBounds
	BoundsStrict
)

var ErrOutOfBounds = errors.New("sample projected outside grid")

// ParseBoundsPolicy resolves "clip" or "strict"
func ParseBoundsPolicy(s string) (BoundsPolicy, error) {
	switch s {
	case "clip", "":
		return BoundsClip, nil
	case "strict":
		return BoundsStrict, nil
	}
	return 0, fmt.Errorf("unknown bounds policy %q", s)
}

func (p BoundsPolicy) String() string {
	if p == BoundsStrict {
		return "strict"
	}
	return "clip"
}

// Options controls per-frame buffer initialization and bounds handling
type Options struct {
	Sentinel   float64
	Background rune
	Bounds     BoundsPolicy
}

// DefaultOptions uses a far sentinel of 1, blank background and clipping
func DefaultOptions() Options {
	return Options{Sentinel: 1.0, Background: ' ', Bounds: BoundsClip}
}

// FrameStats counts sample outcomes for the last built frame
type FrameStats struct {
	Samples  int
	Plotted  int // won the depth test
	Occluded int // lost the depth test
	Clipped  int // projected outside the grid
}

// Builder renders one shape into frame text
// Owns a single Buffer reused across frames; not safe for concurrent Build calls
type Builder struct {
	proj  Projection
	src   shape.Shape
	opts  Options
	buf   *Buffer
	stats FrameStats
}

// NewBuilder allocates the buffer pair sized from proj
func NewBuilder(proj Projection, src shape.Shape, opts Options) *Builder {
	return &Builder{
		proj: proj,
		src:  src,
		opts: opts,
		buf:  NewBuffer(proj.Width, proj.Height, opts.Background),
	}
}

// Build renders the shape rotated by a and returns the serialized grid
// Identical angles and configuration always yield identical text
func (b *Builder) Build(a vmath.Angles) (string, error) {
	if err := b.Composite(a); err != nil {
		return "", err
	}
	return b.buf.String(), nil
}

// Composite runs the sample pipeline into the buffer without serializing
func (b *Builder) Composite(a vmath.Angles) error {
	b.buf.Reset(b.opts.Sentinel)
	b.stats = FrameStats{}

	rot := vmath.NewRotator(a)
	for s := range b.src.Samples() {
		b.stats.Samples++

		sp := b.proj.Project(rot.Rotate(s.Point))
		if !b.proj.InBounds(sp) {
			if b.opts.Bounds == BoundsStrict {
				return fmt.Errorf("%w: point %v at (%.2f, %.2f) in %dx%d grid",
					ErrOutOfBounds, s.Point, sp.X, sp.Y, b.proj.Width, b.proj.Height)
			}
			b.stats.Clipped++
			continue
		}

		x, y := sp.Cell()
		if b.buf.Plot(x, y, sp.Depth, s.Glyph) {
			b.stats.Plotted++
		} else {
			b.stats.Occluded++
		}
	}
	return nil
}

// Buffer exposes the composited grid of the last frame
func (b *Builder) Buffer() *Buffer {
	return b.buf
}

// Stats returns counters for the last frame
func (b *Builder) Stats() FrameStats {
	return b.stats
}
