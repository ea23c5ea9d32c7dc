package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/rokroskar/galpy/internal/orbit"
)

// TrajectoryPlots renders component plots (x, y, R, Lz vs sample) for a
// sampled orbit.
func TrajectoryPlots(states []orbit.State, times []float64) string {
	if len(states) == 0 {
		return "no data to plot\n"
	}

	series := []struct {
		caption string
		value   func(orbit.State) float64
	}{
		{"x vs time", func(s orbit.State) float64 { return s[0] }},
		{"y vs time", func(s orbit.State) float64 { return s[1] }},
		{"R vs time", orbit.State.R},
		{"Lz vs time", orbit.State.Lz},
	}

	var b strings.Builder
	for _, sp := range series {
		data := make([]float64, len(states))
		for i, s := range states {
			data[i] = sp.value(s)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(sp.caption),
		)
		b.WriteString(graph)
		b.WriteString("\n\n")
	}

	b.WriteString(OrbitPlane(states, 60, 20))
	return b.String()
}

// OrbitPlane draws the (x, y) trajectory on a braille canvas spanning
// the orbit's bounding box.
func OrbitPlane(states []orbit.State, w, h int) string {
	if len(states) == 0 {
		return ""
	}
	xmin, xmax := states[0][0], states[0][0]
	ymin, ymax := states[0][1], states[0][1]
	for _, s := range states {
		if s[0] < xmin {
			xmin = s[0]
		}
		if s[0] > xmax {
			xmax = s[0]
		}
		if s[1] < ymin {
			ymin = s[1]
		}
		if s[1] > ymax {
			ymax = s[1]
		}
	}

	canvas := NewCanvas(w, h)
	canvas.SetWindow(xmin, xmax, ymin, ymax)
	for _, s := range states {
		canvas.Plot(s[0], s[1])
	}
	return fmt.Sprintf("orbit plane (x: %.2f..%.2f, y: %.2f..%.2f)\n%s",
		xmin, xmax, ymin, ymax, canvas.String())
}
