// Package synapses provides synapse group models transforming discrete
// presynaptic spikes into postsynaptic input.
//
//   - [Exponential]: single exponential decay, current-based
//   - [Alpha]: double-exponential kernel, current- or conductance-based
//   - [NMDA]: saturating rise/decay pair with magnesium-block gating
//   - [VoltageJump]: instantaneous jump added to the postsynaptic
//     membrane potential
//
// Every model updates in two phases: event intake (each presynaptic
// spike additively increments the jump variable on every edge sourced
// from that unit, so near-simultaneous spikes sum) and kernel
// integration. Per-target aggregates are then delivered through a
// [neuro.DelayLine], or immediately when the delay is zero.
//
// Because the network updates synapse groups before neuron groups, a
// synapse always reads the spike flags of the previous step.
package synapses
