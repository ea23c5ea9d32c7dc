// Package export renders sampled orbits to standalone SVG files.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/rokroskar/galpy/internal/orbit"
)

// OrbitSVG renders the (x, y) trajectory as an SVG polyline, scaled to
// fit the requested pixel size with a small margin.
func OrbitSVG(states []orbit.State, width, height int) string {
	if len(states) < 2 {
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
	if xmax == xmin {
		xmax = xmin + 1
	}
	if ymax == ymin {
		ymax = ymin + 1
	}

	const margin = 20.0
	sx := (float64(width) - 2*margin) / (xmax - xmin)
	sy := (float64(height) - 2*margin) / (ymax - ymin)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<polyline fill="none" stroke="#00ff00" stroke-width="1" points="`, width, height))

	for i, s := range states {
		px := margin + (s[0]-xmin)*sx
		// svg y grows downward
		py := float64(height) - margin - (s[1]-ymin)*sy
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
	}
	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// WriteOrbitSVG writes the rendered orbit to path.
func WriteOrbitSVG(path string, states []orbit.State, width, height int) error {
	svg := OrbitSVG(states, width, height)
	if svg == "" {
		return fmt.Errorf("export: not enough samples to render")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
