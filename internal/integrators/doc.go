// Package integrators provides fixed-step schemes for advancing
// per-unit state arrays.
//
// A [Stepper] is an explicit strategy value: a scheme plus a fixed dt,
// constructed once and held by the group that uses it.
//
//   - [Euler]: explicit first-order stepping
//   - [ExpEuler]: exact solution of the linear part dy/dt = a*y + b,
//     removing the stiffness error of fast decay time constants
//
// Nonlinear equations always step with explicit Euler; the scheme
// choice affects only [Stepper.ApplyLinear].
//
// The steppers never clip: bounding gating variables to valid ranges
// is the owning group's job, applied after integration. A non-finite
// result is returned as a [neuro.NumericalError] naming the unit.
//
// [ExpRatio] guards the removable singularity x/(1-exp(-x/s)) common
// to Hodgkin-Huxley rate equations.
package integrators
