package experiment

import (
	"fmt"

	"github.com/san-kum/spikesim/internal/config"
	"github.com/san-kum/spikesim/internal/integrators"
	"github.com/san-kum/spikesim/internal/metrics"
	"github.com/san-kum/spikesim/internal/neuro"
	"github.com/san-kum/spikesim/internal/neurons"
	"github.com/san-kum/spikesim/internal/synapses"
)

// Simulation is a fully wired network plus the recorder watching it.
type Simulation struct {
	Net *neuro.Network
	Rec *neuro.Recorder
	Src neuro.Neuron
	Dst neuro.Neuron
}

func buildNeuron(model string, size int, params map[string]float64, step *integrators.Stepper) (neuro.Neuron, error) {
	switch model {
	case "hh":
		p := neurons.DefaultHHParams()
		if err := p.ApplyOverrides(params); err != nil {
			return nil, err
		}
		return neurons.NewHodgkinHuxley(size, p, step)
	case "izhikevich":
		p := neurons.DefaultIzhikevichParams()
		if err := p.ApplyOverrides(params); err != nil {
			return nil, err
		}
		return neurons.NewIzhikevich(size, p, step)
	case "hindmarsh_rose":
		p := neurons.DefaultHindmarshRoseParams()
		if err := p.ApplyOverrides(params); err != nil {
			return nil, err
		}
		return neurons.NewHindmarshRose(size, p, step)
	default:
		return nil, fmt.Errorf("unknown model: %s (have hh, izhikevich, hindmarsh_rose)", model)
	}
}

func buildSynapse(sc config.SynapseConfig, pre, post neuro.Neuron, conn *neuro.ConnectionMap, step *integrators.Stepper) (neuro.Group, error) {
	switch sc.Model {
	case "exponential":
		p := synapses.DefaultExponentialParams()
		if sc.Tau > 0 {
			p.Tau = sc.Tau
		}
		if sc.Weight != 0 {
			p.Weight = sc.Weight
		}
		p.Delay = sc.Delay
		return synapses.NewExponential(pre, post, conn, p, step)
	case "alpha":
		p := synapses.DefaultAlphaParams()
		if sc.Tau > 0 {
			p.Tau = sc.Tau
		}
		if sc.Weight != 0 {
			p.Weight = sc.Weight
		}
		p.Delay = sc.Delay
		p.Conductance = sc.Conductance
		return synapses.NewAlpha(pre, post, conn, p, step)
	case "nmda":
		p := synapses.DefaultNMDAParams()
		if sc.Weight != 0 {
			p.GMax = sc.Weight
		}
		p.Delay = sc.Delay
		return synapses.NewNMDA(pre, post, conn, p, step)
	case "voltage_jump":
		p := synapses.DefaultVoltageJumpParams()
		if sc.Weight != 0 {
			p.Weight = sc.Weight
		}
		p.Delay = sc.Delay
		return synapses.NewVoltageJump(pre, post, conn, p, step.Dt())
	default:
		return nil, fmt.Errorf("unknown synapse: %s (have exponential, alpha, nmda, voltage_jump)", sc.Model)
	}
}

// Build assembles the run described by cfg: a driven neuron group,
// and when a synapse model is configured, an all-to-all projection
// onto a second undriven group of the same model.
func Build(cfg *config.Config) (*Simulation, error) {
	scheme, err := integrators.ParseScheme(cfg.Integrator)
	if err != nil {
		return nil, err
	}
	step, err := integrators.New(scheme, cfg.Dt)
	if err != nil {
		return nil, err
	}
	step.Seed(cfg.Seed)

	src, err := buildNeuron(cfg.Model, cfg.Size, cfg.Params, step)
	if err != nil {
		return nil, err
	}

	net := neuro.NewNetwork()
	if err := net.Add("src", src); err != nil {
		return nil, err
	}

	sim := &Simulation{Net: net, Rec: neuro.NewRecorder(), Src: src}

	if cfg.Synapse.Model != "" {
		dst, err := buildNeuron(cfg.Model, cfg.Size, cfg.Params, step)
		if err != nil {
			return nil, err
		}
		conn, err := neuro.ConnectAll(src.Size(), dst.Size())
		if err != nil {
			return nil, err
		}
		syn, err := buildSynapse(cfg.Synapse, src, dst, conn, step)
		if err != nil {
			return nil, err
		}
		if err := net.Add("dst", dst); err != nil {
			return nil, err
		}
		if err := net.Add("src2dst", syn); err != nil {
			return nil, err
		}
		sim.Dst = dst
	}

	current := cfg.Current
	net.AddStimulus(func(t float64) {
		for i := 0; i < src.Size(); i++ {
			src.Inject(i, current)
		}
	})

	if err := sim.Rec.Watch("src", src, cfg.Record...); err != nil {
		return nil, err
	}
	if sim.Dst != nil {
		if err := sim.Rec.Watch("dst", sim.Dst, "V", "spike"); err != nil {
			return nil, err
		}
	}
	net.AddObserver(sim.Rec)

	net.AddMetric(metrics.NewSpikeCount(src))
	net.AddMetric(metrics.NewFiringRate(src, cfg.Dt))
	net.AddMetric(metrics.NewStability(src, 200.0))

	return sim, nil
}
