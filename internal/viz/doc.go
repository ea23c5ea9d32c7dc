// Package viz renders sampled orbits in the terminal.
//
//   - [Canvas]: braille-dot canvas with world-coordinate projection
//   - [TrajectoryPlots]: asciigraph component plots of a run
//   - [NewLive]: bubbletea replay of an integrated orbit
package viz
