package orbit

import "math"

// ToPolar converts a rectangular position to (R, phi) with phi in [0, 2pi).
// The two-valued inverse cosine is resolved with the sign of y. R = 0 has
// no defined azimuth and returns ErrOriginSingularity.
func ToPolar(x, y float64) (r, phi float64, err error) {
	r = math.Sqrt(x*x + y*y)
	if r == 0 {
		return 0, 0, ErrOriginSingularity
	}
	phi = math.Acos(x / r)
	if y < 0 {
		phi = 2*math.Pi - phi
	}
	return r, phi, nil
}

// FromPolar converts (R, phi) back to a rectangular position.
func FromPolar(r, phi float64) (x, y float64) {
	return r * math.Cos(phi), r * math.Sin(phi)
}
