package tui

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/paulmach/orb"
)

// brailleBuf is a 2x4 microgrid per terminal cell with one foreground color
// per cell.
type brailleBuf struct {
	w, h int                // in cells
	m    [][]uint8          // per-cell 8-bit mask
	c    [][]lipgloss.Color // last color written to the cell
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	c := make([][]lipgloss.Color, h)
	for i := range m {
		m[i] = make([]uint8, w)
		c[i] = make([]lipgloss.Color, w)
	}
	return &brailleBuf{w: w, h: h, m: m, c: c}
}

// dot layout of U+2800: columns left/right, rows top to bottom
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func (b *brailleBuf) cell(mx, my int) (cx, cy int, bit uint8, ok bool) {
	if mx < 0 || my < 0 {
		return 0, 0, 0, false
	}
	cx, cy = mx/2, my/4
	if cy >= b.h || cx >= b.w {
		return 0, 0, 0, false
	}
	return cx, cy, brailleBits[mx%2][my%4], true
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, col lipgloss.Color) {
	cx, cy, bit, ok := b.cell(mx, my)
	if !ok {
		return
	}
	b.m[cy][cx] |= bit
	b.c[cy][cx] = col
}

func (b *brailleBuf) clearPixel(mx, my int) {
	if cx, cy, bit, ok := b.cell(mx, my); ok {
		b.m[cy][cx] &^= bit
	}
}

// drawLineMicro walks a line on the microgrid using Bresenham
func drawLineMicro(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillPolygon fills rings with the even-odd rule, sampling each micro row
// at its center. Holes are rings like any other.
func (b *brailleBuf) fillPolygon(rings []orb.Ring, col lipgloss.Color) {
	var bound orb.Bound
	for i, r := range rings {
		if i == 0 {
			bound = r.Bound()
		} else {
			bound = bound.Union(r.Bound())
		}
	}
	wMic, hMic := b.w*2, b.h*4
	y0 := max(0, int(math.Floor(bound.Min[1])))
	y1 := min(hMic-1, int(math.Ceil(bound.Max[1])))
	var xs []float64
	for y := y0; y <= y1; y++ {
		sy := float64(y) + 0.5
		xs = xs[:0]
		for _, r := range rings {
			for i := range r {
				a, c := r[i], r[(i+1)%len(r)]
				if (a[1] <= sy) == (c[1] <= sy) {
					continue
				}
				xs = append(xs, a[0]+(sy-a[1])*(c[0]-a[0])/(c[1]-a[1]))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			from := max(0, int(math.Ceil(xs[i]-0.5)))
			to := min(wMic-1, int(math.Floor(xs[i+1]-0.5)))
			for x := from; x <= to; x++ {
				b.setPixel(x, y, col)
			}
		}
	}
}

// strokeRings traces ring edges through plot.
func (b *brailleBuf) strokeRings(rings []orb.Ring, plot func(x, y int)) {
	for _, r := range rings {
		for i := range r {
			a, c := r[i], r[(i+1)%len(r)]
			drawLineMicro(round(a[0]), round(a[1]), round(c[0]), round(c[1]), plot)
		}
	}
}

// toLines renders the buffer, styling runs of equally colored cells together.
func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	var sb, run strings.Builder
	for y := 0; y < b.h; y++ {
		sb.Reset()
		run.Reset()
		var runCol lipgloss.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runCol == "" {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(lipgloss.NewStyle().Foreground(runCol).Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			col := b.c[y][x]
			if mask == 0 {
				col = ""
			}
			if col != runCol {
				flush()
				runCol = col
			}
			if mask == 0 {
				run.WriteRune(' ')
			} else {
				run.WriteRune(rune(0x2800 + int(mask)))
			}
		}
		flush()
		out[y] = sb.String()
	}
	return out
}

func round(v float64) int {
	return int(math.Round(v))
}
