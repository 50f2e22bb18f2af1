package synapses

import (
	"math"

	"github.com/san-kum/spikesim/internal/integrators"
	"github.com/san-kum/spikesim/internal/neuro"
)

// NMDAParams: GMax is the per-edge maximum conductance, E the reversal
// potential (mV), Alpha and Beta the magnesium binding and unbinding
// constants, CcMg the extracellular magnesium concentration (mM),
// TauDecay and TauRise the kernel time constants (ms), A the rise
// coupling rate (1/ms).
type NMDAParams struct {
	GMax     float64
	E        float64
	Alpha    float64
	Beta     float64
	CcMg     float64
	TauDecay float64
	TauRise  float64
	A        float64
	Delay    float64
}

func DefaultNMDAParams() NMDAParams {
	return NMDAParams{
		GMax:     0.15,
		E:        0.0,
		Alpha:    0.062,
		Beta:     3.57,
		CcMg:     1.2,
		TauDecay: 100.0,
		TauRise:  2.0,
		A:        0.5,
	}
}

func (p NMDAParams) validate() error {
	if p.TauDecay <= 0 || p.TauRise <= 0 {
		return neuro.Configf("nmda", "time constants must be positive, got decay %g rise %g", p.TauDecay, p.TauRise)
	}
	if p.CcMg < 0 {
		return neuro.Configf("nmda", "magnesium concentration must be non-negative, got %g", p.CcMg)
	}
	return nil
}

// NMDA is a conductance-based synapse group with a saturating
// rise/decay kernel:
//
//	dx/dt = -x/tauRise
//	ds/dt = -s/tauDecay + a*x*(1-s)
//
// x jumps by one per presynaptic spike. Delivery multiplies the
// aggregated conductance by the magnesium-block sigmoid of the
// postsynaptic voltage and by (V_post - E).
type NMDA struct {
	projection
	p    NMDAParams
	step *integrators.Stepper
	x    neuro.Vector
	s    neuro.Vector
}

func NewNMDA(pre, post neuro.Neuron, conn *neuro.ConnectionMap, p NMDAParams, step *integrators.Stepper) (*NMDA, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	proj, err := newProjection("nmda", pre, post, conn, p.GMax, p.Delay, step.Dt())
	if err != nil {
		return nil, err
	}
	return &NMDA{
		projection: proj,
		p:          p,
		step:       step,
		x:          make(neuro.Vector, conn.NumEdges()),
		s:          make(neuro.Vector, conn.NumEdges()),
	}, nil
}

// mgBlock is the voltage-dependent magnesium unblock fraction,
// 1 / (1 + ccMg/beta * exp(-alpha*V)).
func (g *NMDA) mgBlock(v float64) float64 {
	return 1 / (1 + g.p.CcMg/g.p.Beta*math.Exp(-g.p.Alpha*v))
}

func (g *NMDA) Update(t float64) error {
	g.intake(g.x)
	rise := func(i int, t float64) (float64, float64) { return -1 / g.p.TauRise, 0 }
	if err := g.step.ApplyLinear("x", g.x, t, rise); err != nil {
		return err
	}
	// ds/dt = -s/tauDecay + a*x*(1-s) is linear in s for the x of this
	// step.
	sat := func(i int, t float64) (float64, float64) {
		ax := g.p.A * g.x[i]
		return -(1/g.p.TauDecay + ax), ax
	}
	if err := g.step.ApplyLinear("s", g.s, t, sat); err != nil {
		return err
	}
	g.aggregate(g.s)
	due := g.deliver()
	postV := g.post.Voltage()
	for i, cond := range due {
		v := postV[i]
		g.post.Inject(i, -cond*g.mgBlock(v)*(v-g.p.E))
	}
	return nil
}

func (g *NMDA) Size() int { return g.conn.NumEdges() }

func (g *NMDA) Fields() []string { return []string{"s", "x"} }

func (g *NMDA) Field(name string) (neuro.Vector, bool) {
	switch name {
	case "s":
		return g.s, true
	case "x":
		return g.x, true
	default:
		return nil, false
	}
}
