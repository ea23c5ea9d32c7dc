// Package analysis extracts orbital frequencies from sampled
// trajectories via a radix-2 FFT of the radial and azimuthal motion.
package analysis

import (
	"math"
	"math/cmplx"

	"github.com/rokroskar/galpy/internal/orbit"
)

func fft(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := fft(even)
	fodd := fft(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}
	return result
}

// PowerSpectrum returns the amplitude spectrum of data, zero-padded to
// the next power of two. The mean is removed first so the DC bin does
// not swamp the orbital peaks.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	for i, v := range data {
		padded[i] = v - mean
	}

	out := fft(padded)
	ps := make([]float64, len(out)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(out[i])
	}
	return ps
}

// RadialSpectrum returns the power spectrum of R(t) over the samples.
func RadialSpectrum(states []orbit.State) []float64 {
	data := make([]float64, len(states))
	for i, s := range states {
		data[i] = s.R()
	}
	return PowerSpectrum(data)
}

// DominantFrequency locates the strongest nonzero bin of a spectrum and
// returns its frequency. rate is the sampling rate of the analyzed
// signal; bin i of a spectrum with padded length 2*len(ps) sits at
// i*rate/(2*len(ps)). A zero return means no oscillation was found.
func DominantFrequency(ps []float64, rate float64) float64 {
	if rate <= 0 || len(ps) < 2 {
		return 0
	}
	maxPower := 0.0
	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}
	if maxIdx == 0 {
		return 0
	}
	return float64(maxIdx) * rate / float64(2*len(ps))
}
