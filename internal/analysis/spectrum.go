package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns |X_k|^2 / N for k in [0, N/2].
func PowerSpectrum(series []float64) []float64 {
	n := len(series)
	if n == 0 {
		return nil
	}

	// remove the mean so the DC bin does not dominate
	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(n)
	centered := make([]float64, n)
	for i, v := range series {
		centered[i] = v - mean
	}

	coeffs := fft.FFTReal(centered)
	ps := make([]float64, n/2+1)
	for k := range ps {
		a := cmplx.Abs(coeffs[k])
		ps[k] = a * a / float64(n)
	}
	return ps
}

// Frequencies returns the frequency of each PowerSpectrum bin for a series
// of n samples taken every dt.
func Frequencies(n int, dt float64) []float64 {
	if n == 0 || dt <= 0 {
		return nil
	}
	freqs := make([]float64, n/2+1)
	for k := range freqs {
		freqs[k] = float64(k) / (float64(n) * dt)
	}
	return freqs
}

// DominantFrequency finds the strongest non-DC frequency in the series.
func DominantFrequency(series []float64, dt float64) (freq, power float64) {
	ps := PowerSpectrum(series)
	if len(ps) < 2 || dt <= 0 {
		return 0, 0
	}
	best := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[best] {
			best = k
		}
	}
	return float64(best) / (float64(len(series)) * dt), ps[best]
}
