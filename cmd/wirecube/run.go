package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lixenwraith/wirecube/config"
	"github.com/lixenwraith/wirecube/engine"
	"github.com/lixenwraith/wirecube/render"
	"github.com/lixenwraith/wirecube/shape"
	"github.com/lixenwraith/wirecube/status"
	"github.com/lixenwraith/wirecube/terminal"
)

type cliOptions struct {
	preset     string
	configPath string
	shape      string
	bounds     string
}

// resolveConfig layers preset, config file, then flag overrides
func resolveConfig(o cliOptions) (config.Config, error) {
	cfg, err := config.Preset(o.preset)
	if err != nil {
		return cfg, err
	}

	if o.configPath != "" {
		if cfg, err = config.Load(o.configPath, cfg); err != nil {
			return cfg, err
		}
	}

	if o.shape != "" {
		defaults, err := config.ShapeDefaults(o.shape)
		if err != nil {
			return cfg, err
		}
		cfg.Shape = defaults
	}

	if o.bounds != "" {
		cfg.Bounds = o.bounds
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

type runOptions struct {
	output string
	frames int
}

// run wires the pipeline for cfg and drives it until ctx ends
func run(ctx context.Context, cfg config.Config, o runOptions, out io.Writer) error {
	params, err := cfg.ShapeParams()
	if err != nil {
		return err
	}
	src, err := shape.New(params)
	if err != nil {
		return err
	}
	opts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}
	builder := render.NewBuilder(cfg.Projection(), src, opts)

	reg := status.NewRegistry()
	reg.SetLabel("shape.kind", string(params.Kind))
	log.Printf("wirecube: %s, %d samples, grid %dx%d, bounds %s",
		params.Kind, src.Count(), cfg.GridWidth, cfg.GridHeight, opts.Bounds)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var presenter engine.Presenter
	switch o.output {
	case "ansi", "":
		tty := false
		if f, ok := out.(*os.File); ok && terminal.IsTerminal(f) {
			tty = true
			if w, h, ok := terminal.Size(f); ok && (w < cfg.GridWidth || h < cfg.GridHeight) {
				log.Printf("wirecube: terminal %dx%d is smaller than grid %dx%d", w, h, cfg.GridWidth, cfg.GridHeight)
			}
		}
		presenter = terminal.NewStream(out, terminal.StreamOptions{Clear: tty, HideCursor: tty})

	case "tcell":
		sc, err := terminal.NewScreen(cancel)
		if err != nil {
			return err
		}
		presenter = sc

	default:
		return fmt.Errorf("unknown output %q", o.output)
	}

	d := engine.NewDriver(builder, presenter, engine.Options{
		Speed:     cfg.Speed(),
		Interval:  cfg.FrameInterval.Duration,
		MaxFrames: o.frames,
		Status:    reg,
	})
	return d.Run(ctx)
}
