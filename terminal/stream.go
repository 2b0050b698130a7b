package terminal

import (
	"bufio"
	"io"
)

// StreamOptions controls the one-time setup and teardown sequences
type StreamOptions struct {
	// Clear erases the screen once before the first frame
	Clear bool
	// HideCursor hides the cursor and disables auto-wrap while running; use only on a tty
	HideCursor bool
}

// Stream writes each frame as cursor-home followed by the frame text
type Stream struct {
	w    *bufio.Writer
	opts StreamOptions
}

// NewStream wraps w in a buffered writer; each Present is one flush
func NewStream(w io.Writer, opts StreamOptions) *Stream {
	return &Stream{
		w:    bufio.NewWriterSize(w, 16*1024),
		opts: opts,
	}
}

// Begin emits the setup sequences
func (s *Stream) Begin() error {
	if s.opts.Clear {
		s.w.Write(csiClear)
	}
	if s.opts.HideCursor {
		s.w.Write(csiCursorHide)
		s.w.Write(csiAutoWrapOff)
	}
	return s.w.Flush()
}

// Present repositions to the top-left and writes the frame
func (s *Stream) Present(frame string) error {
	s.w.Write(csiHome)
	s.w.WriteString(frame)
	return s.w.Flush()
}

// End restores the cursor and leaves the shell prompt below the last frame
func (s *Stream) End() error {
	if s.opts.HideCursor {
		s.w.Write(csiAutoWrapOn)
		s.w.Write(csiCursorShow)
	}
	s.w.Write(csiSGR0)
	s.w.WriteByte('\n')
	return s.w.Flush()
}
