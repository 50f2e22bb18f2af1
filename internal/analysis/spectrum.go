package analysis

import (
	"math"
	"math/cmplx"
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

// Spectrum computes the power spectrum of a voltage trace sampled at
// dt (ms), with the mean removed. The trace is truncated to the
// largest power-of-two length. Frequencies are in Hz.
func Spectrum(trace []float64, dt float64) (freqs, power []float64) {
	n := 1
	for n*2 <= len(trace) {
		n *= 2
	}
	if n < 2 || dt <= 0 {
		return nil, nil
	}

	mean := 0.0
	for _, v := range trace[:n] {
		mean += v
	}
	mean /= float64(n)

	centered := make([]float64, n)
	for i, v := range trace[:n] {
		centered[i] = v - mean
	}

	spectrum := fft(centered)
	power = make([]float64, n/2)
	for i := range power {
		power[i] = cmplx.Abs(spectrum[i])
	}

	// Sample rate in Hz: dt is in ms.
	rate := 1000.0 / dt
	freqs = make([]float64, n/2)
	for i := range freqs {
		freqs[i] = float64(i) * rate / float64(n)
	}
	return freqs, power
}

// PeakFrequency returns the frequency with the most power, ignoring
// the DC bin.
func PeakFrequency(freqs, power []float64) float64 {
	if len(power) < 2 {
		return 0
	}
	best := 1
	for i := 2; i < len(power); i++ {
		if power[i] > power[best] {
			best = i
		}
	}
	return freqs[best]
}
