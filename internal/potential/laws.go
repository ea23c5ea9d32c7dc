package potential

import "math"

// zeroForce is the shared angular provider for axisymmetric potentials.
func zeroForce(r, phi float64, args []float64) float64 {
	return 0
}

// Logarithmic halo: Phi = (amp/2) ln(R^2 + c^2), args = (amp, c^2).
func logHaloRForce(r, phi float64, args []float64) float64 {
	amp, core2 := args[0], args[1]
	return -amp * r / (r*r + core2)
}

func logHaloValue(r, phi float64, args []float64) float64 {
	amp, core2 := args[0], args[1]
	return 0.5 * amp * math.Log(r*r+core2)
}

// Kepler point mass: Phi = -amp/R, args = (amp).
func keplerRForce(r, phi float64, args []float64) float64 {
	return -args[0] / (r * r)
}

func keplerValue(r, phi float64, args []float64) float64 {
	return -args[0] / r
}

// Hernquist sphere: Phi = -amp/(R + a), args = (amp, a).
func hernquistRForce(r, phi float64, args []float64) float64 {
	amp, a := args[0], args[1]
	d := r + a
	return -amp / (d * d)
}

func hernquistValue(r, phi float64, args []float64) float64 {
	return -args[0] / (r + args[1])
}

// Isochrone: Phi = -amp/(b + sqrt(b^2 + R^2)), args = (amp, b).
func isochroneRForce(r, phi float64, args []float64) float64 {
	amp, b := args[0], args[1]
	s := math.Sqrt(b*b + r*r)
	d := b + s
	return -amp * r / (s * d * d)
}

func isochroneValue(r, phi float64, args []float64) float64 {
	amp, b := args[0], args[1]
	return -amp / (b + math.Sqrt(b*b+r*r))
}

// Cosmphi disk: Phi = amp R^p cos(m (phi - phi0)), args = (amp, m, p, phi0).
// The only built-in family with a nonzero angular force.
func cosmphiRForce(r, phi float64, args []float64) float64 {
	amp, m, p, phi0 := args[0], args[1], args[2], args[3]
	return -amp * p * math.Pow(r, p-1) * math.Cos(m*(phi-phi0))
}

func cosmphiPhiForce(r, phi float64, args []float64) float64 {
	amp, m, p, phi0 := args[0], args[1], args[2], args[3]
	return amp * m * math.Pow(r, p) * math.Sin(m*(phi-phi0))
}

func cosmphiValue(r, phi float64, args []float64) float64 {
	amp, m, p, phi0 := args[0], args[1], args[2], args[3]
	return amp * math.Pow(r, p) * math.Cos(m*(phi-phi0))
}
