package synapses

import (
	"github.com/san-kum/spikesim/internal/integrators"
	"github.com/san-kum/spikesim/internal/neuro"
)

// ExponentialParams: Tau is the decay time constant (ms), Weight the
// per-edge synaptic weight, Delay the transmission delay (ms).
type ExponentialParams struct {
	Tau    float64
	Weight float64
	Delay  float64
}

func DefaultExponentialParams() ExponentialParams {
	return ExponentialParams{Tau: 8.0, Weight: 0.1}
}

// Exponential is a current-based single-exponential synapse group:
// ds/dt = -s/tau, with s jumping by one per presynaptic spike. The
// decay is linear, so the exponential-Euler scheme solves it exactly.
type Exponential struct {
	projection
	p    ExponentialParams
	step *integrators.Stepper
	s    neuro.Vector
}

func NewExponential(pre, post neuro.Neuron, conn *neuro.ConnectionMap, p ExponentialParams, step *integrators.Stepper) (*Exponential, error) {
	if p.Tau <= 0 {
		return nil, neuro.Configf("exponential", "tau must be positive, got %g", p.Tau)
	}
	proj, err := newProjection("exponential", pre, post, conn, p.Weight, p.Delay, step.Dt())
	if err != nil {
		return nil, err
	}
	return &Exponential{
		projection: proj,
		p:          p,
		step:       step,
		s:          make(neuro.Vector, conn.NumEdges()),
	}, nil
}

func (g *Exponential) Update(t float64) error {
	g.intake(g.s)
	decay := func(i int, t float64) (float64, float64) { return -1 / g.p.Tau, 0 }
	if err := g.step.ApplyLinear("s", g.s, t, decay); err != nil {
		return err
	}
	g.aggregate(g.s)
	due := g.deliver()
	for i, v := range due {
		g.post.Inject(i, v)
	}
	return nil
}

func (g *Exponential) Size() int { return g.conn.NumEdges() }

func (g *Exponential) Fields() []string { return []string{"s"} }

func (g *Exponential) Field(name string) (neuro.Vector, bool) {
	if name == "s" {
		return g.s, true
	}
	return nil, false
}
