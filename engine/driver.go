package engine

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/wirecube/render"
	"github.com/lixenwraith/wirecube/status"
	"github.com/lixenwraith/wirecube/vmath"
)

// FrameBuilder renders one frame for an angle triple
type FrameBuilder interface {
	Build(a vmath.Angles) (string, error)
	Stats() render.FrameStats
}

// Presenter owns the output device for the duration of a run
type Presenter interface {
	// Begin is called once before the first frame
	Begin() error
	// Present displays one complete frame
	Present(frame string) error
	// End is called once when the loop exits, including on error
	End() error
}

// Options configures the animation loop
type Options struct {
	Start     vmath.Angles  // initial angle triple
	Speed     vmath.Angles  // per-frame increments
	Interval  time.Duration // wait between frames
	MaxFrames int           // 0 runs until cancelled
	Status    *status.Registry
}

// Driver advances the angles and pushes built frames to a presenter
// Single goroutine; the inter-frame wait is the only suspension point
type Driver struct {
	builder   FrameBuilder
	presenter Presenter
	opts      Options

	angles vmath.Angles
	frames int

	// Cached metric pointers
	statFrames   *atomic.Int64
	statPlotted  *atomic.Int64
	statOccluded *atomic.Int64
	statClipped  *atomic.Int64
	statBuildMs  *status.AtomicFloat
	statPeakMs   *status.AtomicFloat
}

// NewDriver creates a driver; a nil Status gets a private registry
func NewDriver(b FrameBuilder, p Presenter, opts Options) *Driver {
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}
	reg := opts.Status
	return &Driver{
		builder:      b,
		presenter:    p,
		opts:         opts,
		angles:       opts.Start,
		statFrames:   reg.Ints.Get("frames"),
		statPlotted:  reg.Ints.Get("samples.plotted"),
		statOccluded: reg.Ints.Get("samples.occluded"),
		statClipped:  reg.Ints.Get("samples.clipped"),
		statBuildMs:  reg.Floats.Get("frame.build_ms"),
		statPeakMs:   reg.Floats.Get("frame.build_ms_peak"),
	}
}

// Angles returns the triple the next frame will use
func (d *Driver) Angles() vmath.Angles {
	return d.angles
}

// Frames returns the number of frames presented so far
func (d *Driver) Frames() int {
	return d.frames
}

// Run loops until ctx is cancelled, MaxFrames is reached, or a frame fails
// Cancellation is a clean exit and returns nil
func (d *Driver) Run(ctx context.Context) (err error) {
	if err := d.presenter.Begin(); err != nil {
		return fmt.Errorf("presenter begin: %w", err)
	}
	defer func() {
		if endErr := d.presenter.End(); endErr != nil && err == nil {
			err = fmt.Errorf("presenter end: %w", endErr)
		}
		log.Printf("driver: stopped after %d frames: %s", d.frames, d.opts.Status.Summary())
	}()

	log.Printf("driver: start interval=%s max_frames=%d speed=%+v", d.opts.Interval, d.opts.MaxFrames, d.opts.Speed)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		if ctx.Err() != nil {
			return nil
		}

		start := time.Now()
		frame, err := d.builder.Build(d.angles)
		if err != nil {
			return fmt.Errorf("build frame %d: %w", d.frames, err)
		}
		elapsed := time.Since(start)

		if err := d.presenter.Present(frame); err != nil {
			return fmt.Errorf("present frame %d: %w", d.frames, err)
		}
		d.record(elapsed)
		d.frames++
		d.angles = d.angles.Advance(d.opts.Speed)

		if d.opts.MaxFrames > 0 && d.frames >= d.opts.MaxFrames {
			return nil
		}
		if !d.wait(ctx, timer) {
			return nil
		}
	}
}

// wait blocks for the frame interval; false means ctx was cancelled
func (d *Driver) wait(ctx context.Context, timer *time.Timer) bool {
	if d.opts.Interval <= 0 {
		return ctx.Err() == nil
	}
	timer.Reset(d.opts.Interval)
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (d *Driver) record(elapsed time.Duration) {
	st := d.builder.Stats()
	d.statFrames.Add(1)
	d.statPlotted.Add(int64(st.Plotted))
	d.statOccluded.Add(int64(st.Occluded))
	d.statClipped.Add(int64(st.Clipped))

	ms := float64(elapsed.Microseconds()) / 1000
	d.statBuildMs.Set(ms)
	d.statPeakMs.Max(ms)
}
