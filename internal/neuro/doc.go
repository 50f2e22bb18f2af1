// Package neuro provides the core types for fixed-step spiking network
// simulation.
//
// A simulation is a set of unit groups advanced in lockstep by a
// [Network]. Each group owns its state as named per-unit vectors and
// implements [Group]; neuron groups additionally implement [Neuron],
// exposing spike flags, membrane voltage and an input accumulator that
// synapse groups write into.
//
//   - [ConnectionMap]: immutable pre-to-post edge relation
//   - [DelayLine]: fixed-capacity ring buffer for transmission delay
//   - [Recorder]: copies named state fields into time-indexed traces
//
// # Update ordering
//
// Within one step the network updates all synapse groups, then all
// neuron groups. A synapse therefore always observes the spike flags
// produced on the previous step, while the current it injects is
// consumed by the neuron update of the same step. This one-step
// coupling delay is part of the contract, not an artifact; models are
// calibrated against it.
//
// # Usage
//
//	net := neuro.NewNetwork()
//	net.Add("exc", hh)
//	net.Add("exc2exc", syn)
//	result, err := net.Run(ctx, neuro.Config{Dt: 0.01, Duration: 100})
package neuro
