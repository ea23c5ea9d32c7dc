// Package orbit provides the core types for planar orbit integration.
//
// The package defines the phase-space representation shared by the rest
// of the toolkit:
//
//   - [State]: flat (x, y, vx, vy) phase-space vector
//   - [Result]: sampled trajectory with conserved-quantity metrics
//   - [ToPolar]: rectangular to polar position transform
//
// Positions and velocities are rectangular at every package boundary;
// polar coordinates appear only inside force evaluation.
//
// # Thread Safety
//
// States and Results are plain data and safe to share once built. The
// sentinel errors are read-only.
package orbit
