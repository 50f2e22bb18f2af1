// Package experiment assembles simulations from run configurations
// and drives parameter sweeps over them.
//
// [Build] wires the neuron group, optional synaptic projection,
// stimulus, recorder, and metrics described by a [config.Config] into
// a runnable [Simulation]. [Sweep] repeats that run across the values
// of one parameter, which is how frequency-current curves are
// produced:
//
//	sweep := &experiment.Sweep{
//	    Base:   config.DefaultConfig(),
//	    Param:  "current",
//	    Values: experiment.Range(0, 20, 11),
//	}
//	points, err := sweep.Run(ctx)
package experiment
