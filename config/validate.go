package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/wirecube/render"
	"github.com/lixenwraith/wirecube/shape"
)

var ErrInvalid = errors.New("invalid config")

// Validate reports every problem found, each wrapping ErrInvalid
func (c Config) Validate() error {
	var errs []error
	bad := func(key, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s: %s", ErrInvalid, key, fmt.Sprintf(format, args...)))
	}

	if c.GridWidth <= 0 {
		bad("grid_width", "must be positive, got %d", c.GridWidth)
	}
	if c.GridHeight <= 0 {
		bad("grid_height", "must be positive, got %d", c.GridHeight)
	}
	if c.Near == 0 {
		bad("near", "must be non-zero")
	}
	if c.Near == c.Far {
		bad("far", "must differ from near (%v)", c.Near)
	}
	finite := []struct {
		key string
		v   float64
	}{
		{"near", c.Near},
		{"far", c.Far},
		{"camera_distance", c.CameraDistance},
		{"rotate_speed_x", c.RotateSpeedX},
		{"rotate_speed_y", c.RotateSpeedY},
		{"rotate_speed_z", c.RotateSpeedZ},
		{"depth_sentinel", c.DepthSentinel},
	}
	for _, f := range finite {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			bad(f.key, "must be finite")
		}
	}
	if c.FrameInterval.Duration < 0 {
		bad("frame_interval", "must not be negative, got %s", c.FrameInterval)
	}
	if !(c.GlyphAspect > 0) {
		bad("glyph_aspect", "must be positive, got %v", c.GlyphAspect)
	}
	if err := checkGlyphs("background", c.Background, 1); err != nil {
		errs = append(errs, err)
	}
	if _, err := render.ParseBoundsPolicy(c.Bounds); err != nil {
		bad("bounds", "%v", err)
	}

	errs = append(errs, c.Shape.validate()...)
	return errors.Join(errs...)
}

func (s Shape) validate() []error {
	var errs []error
	bad := func(key, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: shape.%s: %s", ErrInvalid, key, fmt.Sprintf(format, args...)))
	}

	kind, err := shape.ParseKind(s.Kind)
	if err != nil {
		bad("kind", "%v", err)
		return errs
	}
	if !(s.Step > 0) {
		bad("step", "must be positive, got %v", s.Step)
	}

	glyphs := 1
	switch kind {
	case shape.KindCube:
		glyphs = len(shape.DefaultCubeGlyphs)
		if s.HalfWidth < 0 {
			bad("half_width", "must not be negative, got %v", s.HalfWidth)
		}
	case shape.KindRing:
		if !(s.Radius > 0) {
			bad("radius", "must be positive, got %v", s.Radius)
		}
		if s.Aspect < 0 {
			bad("aspect", "must not be negative, got %v", s.Aspect)
		}
	case shape.KindLine:
		if s.HalfLength < 0 {
			bad("half_length", "must not be negative, got %v", s.HalfLength)
		}
	}

	if s.Glyphs != "" {
		if err := checkGlyphs("shape.glyphs", s.Glyphs, glyphs); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// checkGlyphs requires exactly n runes that each occupy one terminal cell
func checkGlyphs(key, s string, n int) error {
	rs := []rune(s)
	if len(rs) != n {
		return fmt.Errorf("%w: %s: want %d glyphs, got %d", ErrInvalid, key, n, len(rs))
	}
	for _, r := range rs {
		if w := runewidth.RuneWidth(r); w != 1 {
			return fmt.Errorf("%w: %s: glyph %q is %d cells wide", ErrInvalid, key, r, w)
		}
	}
	return nil
}
