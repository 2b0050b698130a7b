package engine

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/wirecube/render"
	"github.com/lixenwraith/wirecube/shape"
	"github.com/lixenwraith/wirecube/status"
	"github.com/lixenwraith/wirecube/terminal"
	"github.com/lixenwraith/wirecube/vmath"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type fakeBuilder struct {
	angles []vmath.Angles
	err    error
	failAt int
}

func (f *fakeBuilder) Build(a vmath.Angles) (string, error) {
	if f.err != nil && len(f.angles) == f.failAt {
		return "", f.err
	}
	f.angles = append(f.angles, a)
	return "frame", nil
}

func (f *fakeBuilder) Stats() render.FrameStats {
	return render.FrameStats{Samples: 10, Plotted: 6, Occluded: 3, Clipped: 1}
}

type fakePresenter struct {
	began, ended int
	frames       []string
	beginErr     error
	presentErr   error
	onPresent    func(n int)
}

func (p *fakePresenter) Begin() error {
	p.began++
	return p.beginErr
}

func (p *fakePresenter) Present(frame string) error {
	if p.presentErr != nil {
		return p.presentErr
	}
	p.frames = append(p.frames, frame)
	if p.onPresent != nil {
		p.onPresent(len(p.frames))
	}
	return nil
}

func (p *fakePresenter) End() error {
	p.ended++
	return nil
}

func TestDriver_MaxFramesAdvancesAnglesOncePerFrame(t *testing.T) {
	b := &fakeBuilder{}
	p := &fakePresenter{}
	speed := vmath.Angles{X: 0.05, Y: 0.04, Z: 0.03}

	d := NewDriver(b, p, Options{Speed: speed, MaxFrames: 4})
	require.NoError(t, d.Run(context.Background()))

	assert.Equal(t, 4, d.Frames())
	assert.Len(t, p.frames, 4)
	assert.Equal(t, 1, p.began)
	assert.Equal(t, 1, p.ended)

	require.Len(t, b.angles, 4)
	assert.Equal(t, vmath.Angles{}, b.angles[0])
	for i := 1; i < 4; i++ {
		want := b.angles[i-1].Advance(speed)
		assert.Equal(t, want, b.angles[i], "frame %d", i)
	}
	assert.Equal(t, b.angles[3].Advance(speed), d.Angles())
}

func TestDriver_StartAngles(t *testing.T) {
	b := &fakeBuilder{}
	start := vmath.Angles{X: 1, Y: 2, Z: 3}
	d := NewDriver(b, &fakePresenter{}, Options{Start: start, MaxFrames: 1})
	require.NoError(t, d.Run(context.Background()))
	assert.Equal(t, []vmath.Angles{start}, b.angles)
}

func TestDriver_CancellationIsCleanExit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := &fakePresenter{onPresent: func(n int) {
		if n == 1 {
			cancel()
		}
	}}
	d := NewDriver(&fakeBuilder{}, p, Options{Interval: time.Hour})

	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("driver did not stop on cancellation")
	}
	// cancellation must interrupt the hour-long wait after the first frame
	assert.Equal(t, 1, d.Frames())
	assert.Equal(t, 1, p.ended)
}

func TestDriver_CancelDuringZeroInterval(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := &fakePresenter{onPresent: func(n int) {
		if n == 3 {
			cancel()
		}
	}}
	d := NewDriver(&fakeBuilder{}, p, Options{})
	require.NoError(t, d.Run(ctx))
	assert.Equal(t, 3, d.Frames())
}

func TestDriver_AlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &fakePresenter{}
	d := NewDriver(&fakeBuilder{}, p, Options{MaxFrames: 5})
	require.NoError(t, d.Run(ctx))
	assert.Zero(t, d.Frames())
	assert.Equal(t, 1, p.began)
	assert.Equal(t, 1, p.ended)
}

func TestDriver_Errors(t *testing.T) {
	errBoom := errors.New("boom")

	t.Run("build", func(t *testing.T) {
		p := &fakePresenter{}
		d := NewDriver(&fakeBuilder{err: errBoom, failAt: 2}, p, Options{MaxFrames: 10})
		err := d.Run(context.Background())
		assert.ErrorIs(t, err, errBoom)
		assert.Contains(t, err.Error(), "build frame 2")
		assert.Equal(t, 2, d.Frames())
		assert.Equal(t, 1, p.ended)
	})

	t.Run("present", func(t *testing.T) {
		p := &fakePresenter{presentErr: errBoom}
		d := NewDriver(&fakeBuilder{}, p, Options{MaxFrames: 10})
		err := d.Run(context.Background())
		assert.ErrorIs(t, err, errBoom)
		assert.Zero(t, d.Frames())
		assert.Equal(t, 1, p.ended)
	})

	t.Run("begin", func(t *testing.T) {
		p := &fakePresenter{beginErr: errBoom}
		d := NewDriver(&fakeBuilder{}, p, Options{MaxFrames: 10})
		assert.ErrorIs(t, d.Run(context.Background()), errBoom)
		assert.Zero(t, p.ended)
	})
}

func TestDriver_FailedPresentNotRecorded(t *testing.T) {
	reg := status.NewRegistry()
	p := &fakePresenter{presentErr: errors.New("broken pipe")}
	d := NewDriver(&fakeBuilder{}, p, Options{MaxFrames: 3, Status: reg})
	require.Error(t, d.Run(context.Background()))

	assert.Zero(t, reg.Ints.Get("frames").Load())
	assert.Zero(t, reg.Ints.Get("samples.plotted").Load())
}

func TestDriver_IntervalPacing(t *testing.T) {
	d := NewDriver(&fakeBuilder{}, &fakePresenter{}, Options{Interval: 10 * time.Millisecond, MaxFrames: 4})

	start := time.Now()
	require.NoError(t, d.Run(context.Background()))
	// three waits between four frames
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestDriver_RecordsMetrics(t *testing.T) {
	reg := status.NewRegistry()
	d := NewDriver(&fakeBuilder{}, &fakePresenter{}, Options{MaxFrames: 3, Status: reg})
	require.NoError(t, d.Run(context.Background()))

	assert.Equal(t, int64(3), reg.Ints.Get("frames").Load())
	assert.Equal(t, int64(18), reg.Ints.Get("samples.plotted").Load())
	assert.Equal(t, int64(9), reg.Ints.Get("samples.occluded").Load())
	assert.Equal(t, int64(3), reg.Ints.Get("samples.clipped").Load())
	assert.GreaterOrEqual(t, reg.Floats.Get("frame.build_ms_peak").Get(), reg.Floats.Get("frame.build_ms").Get())
}

func TestDriver_EndToEndStream(t *testing.T) {
	proj := render.Projection{Width: 99, Height: 31, Near: -30, Far: -300, CameraDistance: 100, GlyphAspect: 0.5}
	cube := shape.Cube{HalfWidth: 30, Step: 2, Glyphs: shape.DefaultCubeGlyphs}
	b := render.NewBuilder(proj, cube, render.DefaultOptions())

	var out bytes.Buffer
	s := terminal.NewStream(&out, terminal.StreamOptions{Clear: true})
	d := NewDriver(b, s, Options{Speed: vmath.Angles{X: 0.05, Y: 0.04, Z: 0.03}, MaxFrames: 5})
	require.NoError(t, d.Run(context.Background()))

	text := out.String()
	require.True(t, strings.HasPrefix(text, "\x1b[2J\x1b[H"))
	body := strings.TrimPrefix(text, "\x1b[2J\x1b[H")

	frames := strings.Split(body, "\x1b[H")[1:]
	require.Len(t, frames, 5)
	for i, f := range frames {
		f = strings.TrimSuffix(f, "\x1b[0m\n")
		assert.Len(t, strings.Split(f, "\n"), 31, "frame %d", i)
	}
	assert.NotEqual(t, frames[0], frames[4])
}
