package terminal

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// surface is the subset of tcell.Screen the Screen presenter drives
type surface interface {
	Init() error
	Fini()
	Clear()
	HideCursor()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
	PollEvent() tcell.Event
}

// Screen presents frames through tcell
// Esc, Ctrl-C and 'q' call the cancel function given at construction
type Screen struct {
	s      surface
	style  tcell.Style
	cancel context.CancelFunc

	done     chan struct{}
	finiOnce sync.Once
}

// NewScreen creates a tcell screen for the controlling terminal
func NewScreen(cancel context.CancelFunc) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	return newScreen(s, cancel), nil
}

func newScreen(s surface, cancel context.CancelFunc) *Screen {
	return &Screen{
		s:      s,
		style:  tcell.StyleDefault,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Begin initializes the screen and starts the quit-key watcher
func (sc *Screen) Begin() error {
	if err := sc.s.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	sc.s.HideCursor()
	sc.s.Clear()

	go sc.watch()
	return nil
}

// watch exits when PollEvent returns nil after Fini
func (sc *Screen) watch() {
	defer close(sc.done)
	for {
		ev := sc.s.PollEvent()
		if ev == nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok && isQuitKey(key) {
			sc.cancel()
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// Present draws the frame from the top-left, one rune per cell
func (sc *Screen) Present(frame string) error {
	x, y := 0, 0
	for _, r := range frame {
		if r == '\n' {
			x, y = 0, y+1
			continue
		}
		sc.s.SetContent(x, y, r, nil, sc.style)
		x++
	}
	sc.s.Show()
	return nil
}

// End restores the terminal and waits for the watcher to exit
func (sc *Screen) End() error {
	sc.finiOnce.Do(func() {
		sc.s.Fini()
		<-sc.done
	})
	return nil
}
