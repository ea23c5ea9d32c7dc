// Package config loads and saves yaml descriptions of integration
// requests: initial state, output time grid, potential superposition,
// and engine tolerances.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rokroskar/galpy/internal/orbit"
	"github.com/rokroskar/galpy/internal/sim"
)

const (
	DefaultRtol  = 1e-8
	DefaultAtol  = 1e-8
	DefaultStop  = 10.0
	DefaultSteps = 100
)

type Config struct {
	State      StateConfig       `yaml:"state"`
	Times      TimesConfig       `yaml:"times"`
	Potentials []PotentialConfig `yaml:"potentials"`
	Rtol       float64           `yaml:"rtol"`
	Atol       float64           `yaml:"atol"`
}

type StateConfig struct {
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	VX float64 `yaml:"vx"`
	VY float64 `yaml:"vy"`
}

// TimesConfig is either an explicit list of output times or a uniform
// grid from start to stop with steps intervals. List wins when set.
type TimesConfig struct {
	Start float64   `yaml:"start"`
	Stop  float64   `yaml:"stop"`
	Steps int       `yaml:"steps"`
	List  []float64 `yaml:"list"`
}

type PotentialConfig struct {
	Type   int       `yaml:"type"`
	Params []float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		State: StateConfig{X: 1, VY: 1},
		Times: TimesConfig{Stop: DefaultStop, Steps: DefaultSteps},
		Potentials: []PotentialConfig{
			{Type: 0, Params: []float64{1.0, 0.0}},
		},
		Rtol: DefaultRtol,
		Atol: DefaultAtol,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Grid materializes the output time grid.
func (t TimesConfig) Grid() ([]float64, error) {
	if len(t.List) > 0 {
		return append([]float64(nil), t.List...), nil
	}
	if t.Steps < 1 || t.Stop < t.Start {
		return nil, fmt.Errorf("times start=%g stop=%g steps=%d: %w",
			t.Start, t.Stop, t.Steps, orbit.ErrTimeGrid)
	}
	grid := make([]float64, t.Steps+1)
	h := (t.Stop - t.Start) / float64(t.Steps)
	for i := range grid {
		grid[i] = t.Start + float64(i)*h
	}
	return grid, nil
}

// Request assembles the integration request described by the config.
func (c *Config) Request() (sim.Request, error) {
	times, err := c.Times.Grid()
	if err != nil {
		return sim.Request{}, err
	}
	codes := make([]int, 0, len(c.Potentials))
	params := make([]float64, 0, 2*len(c.Potentials))
	for _, p := range c.Potentials {
		codes = append(codes, p.Type)
		params = append(params, p.Params...)
	}
	return sim.Request{
		State:  orbit.State{c.State.X, c.State.Y, c.State.VX, c.State.VY},
		Times:  times,
		Codes:  codes,
		Params: params,
		Rtol:   c.Rtol,
		Atol:   c.Atol,
	}, nil
}
