package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rokroskar/galpy/internal/orbit"
)

const (
	liveWidth  = 60
	liveHeight = 22
	trailLen   = 200
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	canvasStyle = lipgloss.NewStyle().Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(8)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type tickMsg time.Time

// Live replays an integrated orbit frame by frame on a braille canvas.
type Live struct {
	states  []orbit.State
	times   []float64
	metrics map[string]float64
	idx     int
	running bool
	canvas  *Canvas
}

// NewLive builds the replay model over a finished run.
func NewLive(result *orbit.Result) Live {
	canvas := NewCanvas(liveWidth, liveHeight)

	xmin, xmax, ymin, ymax := -1.0, 1.0, -1.0, 1.0
	for _, s := range result.States {
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
	canvas.SetWindow(xmin, xmax, ymin, ymax)

	return Live{
		states:  result.States,
		times:   result.Times,
		metrics: result.Metrics,
		running: true,
		canvas:  canvas,
	}
}

func (m Live) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.idx = 0
			m.canvas.Clear()
		}
	case tickMsg:
		if m.running && m.idx < len(m.states)-1 {
			m.idx++
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return tickMsg(t) })
	}
	return m, nil
}

func (m Live) View() string {
	m.canvas.Clear()
	start := m.idx - trailLen
	if start < 0 {
		start = 0
	}
	for _, s := range m.states[start : m.idx+1] {
		m.canvas.Plot(s[0], s[1])
	}

	s := m.states[m.idx]
	stats := fmt.Sprintf("%s%s\n%s%s\n%s%s\n%s%s",
		labelStyle.Render("t"), valueStyle.Render(fmt.Sprintf("%.3f", m.times[m.idx])),
		labelStyle.Render("x, y"), valueStyle.Render(fmt.Sprintf("%.3f, %.3f", s[0], s[1])),
		labelStyle.Render("R"), valueStyle.Render(fmt.Sprintf("%.3f", s.R())),
		labelStyle.Render("Lz"), valueStyle.Render(fmt.Sprintf("%.4f", s.Lz())),
	)
	if drift, ok := m.metrics["energy_drift"]; ok {
		stats += fmt.Sprintf("\n%s%s",
			labelStyle.Render("dE/E"), valueStyle.Render(fmt.Sprintf("%.2e", drift)))
	}

	return headerStyle.Render("orbit replay") + "\n" +
		canvasStyle.Render(m.canvas.String()) + "\n" +
		stats +
		helpStyle.Render("\nspace pause  r restart  q quit")
}
