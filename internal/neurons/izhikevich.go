package neurons

import (
	"github.com/san-kum/spikesim/internal/integrators"
	"github.com/san-kum/spikesim/internal/neuro"
)

// IzhikevichParams follow Izhikevich (2003): A scales the recovery
// variable's time course, B its sensitivity to V, C is the post-spike
// reset potential (mV), D the post-spike recovery increment.
// TRefractory (ms) holds a unit's state frozen after each spike.
type IzhikevichParams struct {
	A           float64
	B           float64
	C           float64
	D           float64
	TRefractory float64
	VThreshold  float64
}

func DefaultIzhikevichParams() IzhikevichParams {
	return IzhikevichParams{
		A:          0.02,
		B:          0.20,
		C:          -65.0,
		D:          8.0,
		VThreshold: 30.0,
	}
}

func (p IzhikevichParams) validate() error {
	if p.TRefractory < 0 {
		return neuro.Configf("izhikevich", "refractory period must be non-negative, got %g", p.TRefractory)
	}
	return nil
}

// Izhikevich is a group of Izhikevich neurons. A unit whose voltage
// reaches threshold is hard-reset to C with u incremented by D, and is
// then held refractory for TRefractory: the integrator still runs but
// its output is discarded and the pre-step values are retained.
type Izhikevich struct {
	p    IzhikevichParams
	step *integrators.Stepper

	v          neuro.Vector
	u          neuro.Vector
	spike      neuro.Vector
	input      neuro.Vector
	refractory neuro.Vector
	tLastSpike neuro.Vector

	vPrev neuro.Vector
	uPrev neuro.Vector
}

func NewIzhikevich(size int, p IzhikevichParams, step *integrators.Stepper) (*Izhikevich, error) {
	if size <= 0 {
		return nil, neuro.Configf("izhikevich", "size must be positive, got %d", size)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Izhikevich{
		p:          p,
		step:       step,
		v:          neuro.Full(size, -65.0),
		u:          neuro.Full(size, 1.0),
		spike:      make(neuro.Vector, size),
		input:      make(neuro.Vector, size),
		refractory: make(neuro.Vector, size),
		tLastSpike: neuro.Full(size, -1e7),
		vPrev:      make(neuro.Vector, size),
		uPrev:      make(neuro.Vector, size),
	}, nil
}

func (g *Izhikevich) Update(t float64) error {
	copy(g.vPrev, g.v)
	copy(g.uPrev, g.u)

	f := func(i int, v, u, t float64) (float64, float64) {
		dv := 0.04*v*v + 5*v + 140 - u + g.input[i]
		du := g.p.A * (g.p.B*v - u)
		return dv, du
	}
	if err := g.step.ApplyPair("V", "u", g.v, g.u, t, f); err != nil {
		return err
	}

	for i := range g.v {
		// Refractory gating uses the spike time recorded on an earlier
		// step, so the unit that spikes below is held from the next
		// step onward.
		if t-g.tLastSpike[i] <= g.p.TRefractory {
			g.v[i] = g.vPrev[i]
			g.u[i] = g.uPrev[i]
			g.refractory[i] = 1
		} else {
			g.refractory[i] = 0
		}

		if g.v[i] >= g.p.VThreshold {
			g.spike[i] = 1
			g.tLastSpike[i] = t
			g.v[i] = g.p.C
			g.u[i] += g.p.D
			g.refractory[i] = 1
		} else {
			g.spike[i] = 0
		}
	}
	g.input.Zero()
	return nil
}

func (g *Izhikevich) Size() int                { return len(g.v) }
func (g *Izhikevich) Spikes() neuro.Vector     { return g.spike }
func (g *Izhikevich) Voltage() neuro.Vector    { return g.v }
func (g *Izhikevich) Refractory() neuro.Vector { return g.refractory }

func (g *Izhikevich) Inject(id int, current float64) { g.input[id] += current }

func (g *Izhikevich) Fields() []string {
	return []string{"V", "u", "spike", "input", "refractory", "t_last_spike"}
}

func (g *Izhikevich) Field(name string) (neuro.Vector, bool) {
	switch name {
	case "V":
		return g.v, true
	case "u":
		return g.u, true
	case "spike":
		return g.spike, true
	case "input":
		return g.input, true
	case "refractory":
		return g.refractory, true
	case "t_last_spike":
		return g.tLastSpike, true
	default:
		return nil, false
	}
}
