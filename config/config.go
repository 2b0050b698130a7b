// Package config holds the renderer configuration, its presets and TOML I/O.
package config

import (
	"fmt"
	"sort"
	"time"

	"github.com/lixenwraith/wirecube/render"
	"github.com/lixenwraith/wirecube/shape"
	"github.com/lixenwraith/wirecube/vmath"
)

// Config is the full set of tunables for one run
type Config struct {
	GridWidth      int     `toml:"grid_width"`
	GridHeight     int     `toml:"grid_height"`
	Near           float64 `toml:"near"`
	Far            float64 `toml:"far"`
	CameraDistance float64 `toml:"camera_distance"`

	RotateSpeedX float64 `toml:"rotate_speed_x"`
	RotateSpeedY float64 `toml:"rotate_speed_y"`
	RotateSpeedZ float64 `toml:"rotate_speed_z"`

	FrameInterval Duration `toml:"frame_interval"`
	GlyphAspect   float64  `toml:"glyph_aspect"`

	// DepthSentinel is the per-frame "nothing drawn" depth; samples at or beyond it are dropped
	DepthSentinel float64 `toml:"depth_sentinel"`
	Background    string  `toml:"background"`
	Bounds        string  `toml:"bounds"`

	Shape Shape `toml:"shape"`
}

// Shape selects the generator and its geometric constants
type Shape struct {
	Kind       string  `toml:"kind"`
	Step       float64 `toml:"step"`
	HalfWidth  float64 `toml:"half_width,omitempty"`
	Radius     float64 `toml:"radius,omitempty"`
	Aspect     float64 `toml:"aspect,omitempty"`
	HalfLength float64 `toml:"half_length,omitempty"`
	Glyphs     string  `toml:"glyphs,omitempty"`
}

// Default returns the cube profile
func Default() Config {
	return Config{
		GridWidth:      99,
		GridHeight:     31,
		Near:           -30,
		Far:            -300,
		CameraDistance: 100,
		RotateSpeedX:   0.05,
		RotateSpeedY:   0.04,
		RotateSpeedZ:   0.03,
		FrameInterval:  Duration{15 * time.Millisecond},
		GlyphAspect:    0.5,
		DepthSentinel:  1.0,
		Background:     " ",
		Bounds:         "clip",
		Shape: Shape{
			Kind:      string(shape.KindCube),
			HalfWidth: 30,
			Step:      2,
			Glyphs:    string(shape.DefaultCubeGlyphs[:]),
		},
	}
}

var presets = map[string]func() Config{
	"cube": Default,
	"donut": func() Config {
		c := Default()
		c.Shape = Shape{Kind: string(shape.KindRing), Radius: 40, Step: 0.01, Aspect: 1, Glyphs: "@"}
		return c
	},
	"line": func() Config {
		c := Default()
		c.Shape = Shape{Kind: string(shape.KindLine), HalfLength: 40, Step: 0.001, Glyphs: "#"}
		return c
	},
	"compact": func() Config {
		c := Default()
		c.GridWidth = 100
		c.RotateSpeedX, c.RotateSpeedY, c.RotateSpeedZ = 0.05, 0.05, 0.01
		c.FrameInterval = Duration{16 * time.Millisecond}
		c.Shape = Shape{Kind: string(shape.KindCube), HalfWidth: 10, Step: 0.6, Glyphs: "@$~#;+"}
		return c
	},
}

// shapePresets maps a kind to the preset carrying its default geometry
var shapePresets = map[shape.Kind]string{
	shape.KindCube: "cube",
	shape.KindRing: "donut",
	shape.KindLine: "line",
}

// ShapeDefaults returns the default shape table for a kind name
func ShapeDefaults(kind string) (Shape, error) {
	k, err := shape.ParseKind(kind)
	if err != nil {
		return Shape{}, err
	}
	return presets[shapePresets[k]]().Shape, nil
}

// Preset returns the named profile
func Preset(name string) (Config, error) {
	fn, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown preset %q (have %v)", name, PresetNames())
	}
	return fn(), nil
}

// PresetNames lists preset names in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for k := range presets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Projection derives the projector parameters
func (c Config) Projection() render.Projection {
	return render.Projection{
		Width:          c.GridWidth,
		Height:         c.GridHeight,
		Near:           c.Near,
		Far:            c.Far,
		CameraDistance: c.CameraDistance,
		GlyphAspect:    c.GlyphAspect,
	}
}

// RenderOptions derives buffer and bounds options; call Validate first
func (c Config) RenderOptions() (render.Options, error) {
	policy, err := render.ParseBoundsPolicy(c.Bounds)
	if err != nil {
		return render.Options{}, err
	}
	bg := ' '
	if rs := []rune(c.Background); len(rs) > 0 {
		bg = rs[0]
	}
	return render.Options{Sentinel: c.DepthSentinel, Background: bg, Bounds: policy}, nil
}

// ShapeParams derives generator parameters
func (c Config) ShapeParams() (shape.Params, error) {
	kind, err := shape.ParseKind(c.Shape.Kind)
	if err != nil {
		return shape.Params{}, err
	}
	return shape.Params{
		Kind:      kind,
		HalfWidth: c.Shape.HalfWidth,
		Radius:    c.Shape.Radius,
		Aspect:    c.Shape.Aspect,
		HalfLen:   c.Shape.HalfLength,
		Step:      c.Shape.Step,
		Glyphs:    []rune(c.Shape.Glyphs),
	}, nil
}

// Speed returns the per-frame angle increments
func (c Config) Speed() vmath.Angles {
	return vmath.Angles{X: c.RotateSpeedX, Y: c.RotateSpeedY, Z: c.RotateSpeedZ}
}
