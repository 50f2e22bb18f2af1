// Package analysis summarizes recorded spike trains and voltage
// traces.
//
//   - [SpikeTimes] and [IntervalStats]: inter-spike interval
//     statistics, including the CV used to distinguish regular from
//     irregular firing
//   - [RateHistogram]: time-binned firing rate
//   - [Spectrum] and [PeakFrequency]: power spectrum of a voltage
//     trace, for locating the dominant oscillation
package analysis
