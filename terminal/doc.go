// @focus: #sys { term }
// Package terminal presents rendered frames on a terminal.
//
// Two presenters are provided:
//   - Stream writes raw ANSI sequences and frame text to any io.Writer
//   - Screen draws frames through a tcell screen and turns quit keys into cancellation
//
// Stream bypasses terminfo entirely, emitting direct ANSI sequences for
// xterm-compatible terminals. It works equally when stdout is a pipe or file.
package terminal
