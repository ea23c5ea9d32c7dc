package viz

import "strings"

// Braille patterns pack 2x4 dots per character cell (unicode 0x2800).
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille-dot drawing surface with a world-coordinate
// window, so orbit positions can be plotted directly.
type Canvas struct {
	Width, Height int
	grid          [][]rune
	// world window mapped onto the canvas
	xmin, xmax, ymin, ymax float64
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		grid:   make([][]rune, h),
		xmin:   -1, xmax: 1, ymin: -1, ymax: 1,
	}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
		}
	}
	return c
}

// SetWindow fixes the world rectangle mapped onto the canvas. Degenerate
// windows are widened slightly so a single point still renders.
func (c *Canvas) SetWindow(xmin, xmax, ymin, ymax float64) {
	if xmax <= xmin {
		xmin, xmax = xmin-0.5, xmin+0.5
	}
	if ymax <= ymin {
		ymin, ymax = ymin-0.5, ymin+0.5
	}
	c.xmin, c.xmax, c.ymin, c.ymax = xmin, xmax, ymin, ymax
}

// Plot sets the dot nearest the world point (x, y). Points outside the
// window are dropped.
func (c *Canvas) Plot(x, y float64) {
	px := int((x - c.xmin) / (c.xmax - c.xmin) * float64(c.Width*2))
	// world y grows upward, canvas rows grow downward
	py := int((c.ymax - y) / (c.ymax - c.ymin) * float64(c.Height*4))
	c.set(px, py)
}

func (c *Canvas) set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}
