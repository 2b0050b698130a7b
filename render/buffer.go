// @focus: #render { depth }
package render

import (
	"strings"
	"unicode/utf8"
)

// Buffer pairs a glyph grid with a depth buffer of identical dimensions
// Cells are row-major: idx = y*width + x
// A glyph is only ever written together with its depth
type Buffer struct {
	glyphs     []rune
	depth      []float64
	width      int
	height     int
	background rune
}

// NewBuffer creates a buffer with the specified dimensions
// Depth starts at zero; call Reset before the first frame
func NewBuffer(width, height int, background rune) *Buffer {
	size := width * height
	return &Buffer{
		glyphs:     make([]rune, size),
		depth:      make([]float64, size),
		width:      width,
		height:     height,
		background: background,
	}
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Reset fills every cell with the background glyph and the far sentinel using exponential copy
func (b *Buffer) Reset(sentinel float64) {
	if len(b.glyphs) == 0 {
		return
	}
	b.glyphs[0] = b.background
	b.depth[0] = sentinel
	for filled := 1; filled < len(b.glyphs); filled *= 2 {
		copy(b.glyphs[filled:], b.glyphs[:filled])
		copy(b.depth[filled:], b.depth[:filled])
	}
}

// inBounds returns true if in grid bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Plot writes glyph at (x, y) if depth is strictly nearer than the stored depth
// Returns true when the cell was written; out-of-bounds cells are never written
func (b *Buffer) Plot(x, y int, depth float64, glyph rune) bool {
	if !b.inBounds(x, y) {
		return false
	}
	idx := y*b.width + x
	if !(depth < b.depth[idx]) {
		return false
	}
	b.depth[idx] = depth
	b.glyphs[idx] = glyph
	return true
}

// At returns the glyph and depth stored at (x, y)
func (b *Buffer) At(x, y int) (rune, float64) {
	if !b.inBounds(x, y) {
		return b.background, 0
	}
	idx := y*b.width + x
	return b.glyphs[idx], b.depth[idx]
}

// String serializes the grid row by row, rows separated by '\n' with no trailing break
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow(b.width*b.height + b.height)

	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := b.glyphs[y*b.width : (y+1)*b.width]
		for _, r := range row {
			if r < utf8.RuneSelf {
				sb.WriteByte(byte(r))
			} else {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}
