// Package neurons provides neuron group models.
//
// Each model keeps its state as one [neuro.Vector] per named variable
// (all of length equal to the unit count) and implements
// [neuro.Neuron]:
//
//   - [HodgkinHuxley]: four-variable conductance model (V, m, h, n)
//   - [Izhikevich]: two-variable model with hard reset and an
//     explicit refractory period
//   - [HindmarshRose]: three-variable burster with no reset
//
// Spike flags are set for exactly the step on which the membrane
// potential crosses threshold; crossing is edge-triggered for the
// continuous models and reset-based for Izhikevich. The input
// accumulator is consumed and zeroed on every update, so drivers and
// synapses must re-inject current each step.
package neurons
