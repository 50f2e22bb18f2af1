package analysis

import "math"

// SpikeTimes extracts the times of the set spike flags from a recorded
// spike trace sampled at dt.
func SpikeTimes(trace []float64, dt float64) []float64 {
	times := make([]float64, 0)
	for i, s := range trace {
		if s > 0 {
			times = append(times, float64(i)*dt)
		}
	}
	return times
}

// ISIStats summarizes the inter-spike intervals of one spike train.
// CV is the coefficient of variation; near 0 for clock-like firing,
// near 1 for Poisson-like firing.
type ISIStats struct {
	Count int
	Mean  float64
	Std   float64
	CV    float64
	Min   float64
	Max   float64
}

// IntervalStats computes ISI statistics from spike times. Fewer than
// two spikes yield a zero-valued result.
func IntervalStats(spikeTimes []float64) ISIStats {
	if len(spikeTimes) < 2 {
		return ISIStats{Count: len(spikeTimes)}
	}

	isis := make([]float64, len(spikeTimes)-1)
	for i := 1; i < len(spikeTimes); i++ {
		isis[i-1] = spikeTimes[i] - spikeTimes[i-1]
	}

	stats := ISIStats{Count: len(spikeTimes), Min: isis[0], Max: isis[0]}
	for _, isi := range isis {
		stats.Mean += isi
		stats.Min = math.Min(stats.Min, isi)
		stats.Max = math.Max(stats.Max, isi)
	}
	stats.Mean /= float64(len(isis))

	for _, isi := range isis {
		d := isi - stats.Mean
		stats.Std += d * d
	}
	stats.Std = math.Sqrt(stats.Std / float64(len(isis)))
	if stats.Mean > 0 {
		stats.CV = stats.Std / stats.Mean
	}
	return stats
}

// RateHistogram bins a spike trace into firing rates (Hz), binWidth in
// the trace's time unit (ms). The trailing partial bin is dropped.
func RateHistogram(trace []float64, dt, binWidth float64) []float64 {
	if dt <= 0 || binWidth <= 0 {
		return nil
	}
	perBin := int(binWidth / dt)
	if perBin < 1 {
		return nil
	}

	bins := make([]float64, 0, len(trace)/perBin)
	for start := 0; start+perBin <= len(trace); start += perBin {
		count := 0.0
		for _, s := range trace[start : start+perBin] {
			if s > 0 {
				count++
			}
		}
		bins = append(bins, count/binWidth*1000.0)
	}
	return bins
}
