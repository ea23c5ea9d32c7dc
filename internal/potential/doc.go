// Package potential maps potential type codes to analytic planar force
// laws and binds them to concrete parameter values.
//
//   - [Descriptor]: one potential family (radial force, angular force,
//     potential value, expected parameter count)
//   - [Lookup]/[Register]: the process-wide descriptor table
//   - [BuildTerms]: decode (type codes, flat params) into bound [Terms]
//   - [Terms.RectForce]: net rectangular force at a phase-space point
//
// Force laws follow the galactic-dynamics sign convention: the radial
// force is -dPhi/dR and the angular force is -dPhi/dphi, both per unit
// mass.
//
// # Thread Safety
//
// The descriptor table is read-only after init; Register is intended for
// startup-time extension only. Each Terms value is exclusively owned by
// one integration call.
package potential
