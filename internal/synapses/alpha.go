package synapses

import (
	"github.com/san-kum/spikesim/internal/integrators"
	"github.com/san-kum/spikesim/internal/neuro"
)

// AlphaParams: Tau is the kernel time constant (ms); the kernel peaks
// at t = Tau after a spike. With Conductance set, delivery multiplies
// by (V_post - E); otherwise the aggregate is injected as current.
type AlphaParams struct {
	Tau         float64
	Weight      float64
	Delay       float64
	E           float64
	Conductance bool
}

func DefaultAlphaParams() AlphaParams {
	return AlphaParams{Tau: 2.0, Weight: 0.2}
}

// Alpha is a double-exponential synapse group:
//
//	ds/dt = x
//	dx/dt = (-2*tau*x - s) / tau^2
//
// with x jumping by one per presynaptic spike.
type Alpha struct {
	projection
	p    AlphaParams
	step *integrators.Stepper
	s    neuro.Vector
	x    neuro.Vector
}

func NewAlpha(pre, post neuro.Neuron, conn *neuro.ConnectionMap, p AlphaParams, step *integrators.Stepper) (*Alpha, error) {
	if p.Tau <= 0 {
		return nil, neuro.Configf("alpha", "tau must be positive, got %g", p.Tau)
	}
	proj, err := newProjection("alpha", pre, post, conn, p.Weight, p.Delay, step.Dt())
	if err != nil {
		return nil, err
	}
	return &Alpha{
		projection: proj,
		p:          p,
		step:       step,
		s:          make(neuro.Vector, conn.NumEdges()),
		x:          make(neuro.Vector, conn.NumEdges()),
	}, nil
}

func (g *Alpha) Update(t float64) error {
	g.intake(g.x)
	f := func(i int, s, x, t float64) (float64, float64) {
		return x, (-2*g.p.Tau*x - s) / (g.p.Tau * g.p.Tau)
	}
	if err := g.step.ApplyPair("s", "x", g.s, g.x, t, f); err != nil {
		return err
	}
	g.aggregate(g.s)
	due := g.deliver()
	if g.p.Conductance {
		postV := g.post.Voltage()
		for i, v := range due {
			g.post.Inject(i, -v*(postV[i]-g.p.E))
		}
	} else {
		for i, v := range due {
			g.post.Inject(i, v)
		}
	}
	return nil
}

func (g *Alpha) Size() int { return g.conn.NumEdges() }

func (g *Alpha) Fields() []string { return []string{"s", "x"} }

func (g *Alpha) Field(name string) (neuro.Vector, bool) {
	switch name {
	case "s":
		return g.s, true
	case "x":
		return g.x, true
	default:
		return nil, false
	}
}
