package neuro

import (
	"context"
	"fmt"
	"math"
)

type namedGroup struct {
	name  string
	group Group
}

// Network advances a set of groups in lockstep. All synapse groups
// are updated before any neuron group, so a synapse always observes
// the spike flags produced on the previous step and the current it
// injects is consumed by the neuron update of the same step.
type Network struct {
	neurons   []namedGroup
	synapses  []namedGroup
	stimuli   []func(t float64)
	observers []Observer
	metrics   []Metric
}

func NewNetwork() *Network {
	return &Network{}
}

// Add registers a group under a unique name. Synapse groups are
// scheduled before neuron groups regardless of insertion order.
func (n *Network) Add(name string, g Group) error {
	for _, ng := range n.neurons {
		if ng.name == name {
			return Configf("network", "duplicate group name %q", name)
		}
	}
	for _, sg := range n.synapses {
		if sg.name == name {
			return Configf("network", "duplicate group name %q", name)
		}
	}
	if _, ok := g.(Neuron); ok {
		n.neurons = append(n.neurons, namedGroup{name, g})
	} else {
		n.synapses = append(n.synapses, namedGroup{name, g})
	}
	return nil
}

// AddStimulus registers a function run before the group updates of
// every step, typically injecting external current.
func (n *Network) AddStimulus(fn func(t float64)) {
	n.stimuli = append(n.stimuli, fn)
}

func (n *Network) AddObserver(o Observer) { n.observers = append(n.observers, o) }
func (n *Network) AddMetric(m Metric)     { n.metrics = append(n.metrics, m) }

// Run executes the fixed number of steps implied by cfg. It stops on
// context cancellation or on the first numerical error; the network
// must not be stepped again after an error.
func (n *Network) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Dt <= 0 {
		return nil, Configf("network", "dt must be positive, got %g", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return nil, Configf("network", "duration must be positive, got %g", cfg.Duration)
	}

	// Round so durations that are exact multiples of dt in decimal do
	// not lose a step to binary representation.
	steps := int(math.Round(cfg.Duration / cfg.Dt))
	result := &Result{
		Times:   make([]float64, 0, steps),
		Metrics: make(map[string]float64),
	}

	for _, m := range n.metrics {
		m.Reset()
	}

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		t := float64(i) * cfg.Dt

		for _, fn := range n.stimuli {
			fn(t)
		}

		for _, sg := range n.synapses {
			if err := sg.group.Update(t); err != nil {
				return result, fmt.Errorf("group %s: %w", sg.name, err)
			}
		}
		for _, ng := range n.neurons {
			if err := ng.group.Update(t); err != nil {
				return result, fmt.Errorf("group %s: %w", ng.name, err)
			}
		}

		for _, m := range n.metrics {
			m.Observe(t)
		}
		for _, obs := range n.observers {
			obs.OnStep(t)
		}

		result.Steps++
		result.Times = append(result.Times, t)
	}

	for _, m := range n.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
