package neurons

import (
	"github.com/san-kum/spikesim/internal/integrators"
	"github.com/san-kum/spikesim/internal/neuro"
)

// HHParams are the Hodgkin-Huxley constants: reversal potentials (mV),
// maximum conductances (mS/cm2), membrane capacitance (uF/cm2) and the
// spike detection threshold (mV).
type HHParams struct {
	ENa        float64
	EK         float64
	ELeak      float64
	GNa        float64
	GK         float64
	GLeak      float64
	C          float64
	VThreshold float64
	Noise      float64
}

func DefaultHHParams() HHParams {
	return HHParams{
		ENa:        50.0,
		EK:         -77.0,
		ELeak:      -54.387,
		GNa:        120.0,
		GK:         36.0,
		GLeak:      0.03,
		C:          1.0,
		VThreshold: 20.0,
	}
}

func (p HHParams) validate() error {
	if p.C <= 0 {
		return neuro.Configf("hh", "capacitance must be positive, got %g", p.C)
	}
	if p.GNa < 0 || p.GK < 0 || p.GLeak < 0 {
		return neuro.Configf("hh", "conductances must be non-negative")
	}
	if p.Noise < 0 {
		return neuro.Configf("hh", "noise amplitude must be non-negative, got %g", p.Noise)
	}
	return nil
}

// HodgkinHuxley is a group of Hodgkin-Huxley neurons. Gating variables
// are clipped to [0,1] after integration; clipping never masks a
// non-finite result, which is reported before it applies.
type HodgkinHuxley struct {
	p    HHParams
	step *integrators.Stepper

	v     neuro.Vector
	m     neuro.Vector
	h     neuro.Vector
	n     neuro.Vector
	spike neuro.Vector
	input neuro.Vector

	vPrev neuro.Vector
}

func NewHodgkinHuxley(size int, p HHParams, step *integrators.Stepper) (*HodgkinHuxley, error) {
	if size <= 0 {
		return nil, neuro.Configf("hh", "size must be positive, got %d", size)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &HodgkinHuxley{
		p:     p,
		step:  step,
		v:     neuro.Full(size, -65.0),
		m:     neuro.Full(size, 0.05),
		h:     neuro.Full(size, 0.60),
		n:     neuro.Full(size, 0.32),
		spike: make(neuro.Vector, size),
		input: make(neuro.Vector, size),
		vPrev: make(neuro.Vector, size),
	}, nil
}

func alphaM(v float64) float64 { return 0.1 * integrators.ExpRatio(v+40, 10) }
func betaM(v float64) float64  { return integrators.ExpDecay(4.0, v+65, 18) }
func alphaH(v float64) float64 { return integrators.ExpDecay(0.07, v+65, 20) }
func betaH(v float64) float64  { return integrators.Sigmoid(v+35, 10) }
func alphaN(v float64) float64 { return 0.01 * integrators.ExpRatio(v+55, 10) }
func betaN(v float64) float64  { return integrators.ExpDecay(0.125, v+65, 80) }

func (g *HodgkinHuxley) Update(t float64) error {
	copy(g.vPrev, g.v)

	// dx/dt = alpha*(1-x) - beta*x, linear in x with the voltage held
	// at its pre-step value.
	gate := func(alpha, beta func(float64) float64) integrators.LinearDeriv {
		return func(i int, t float64) (float64, float64) {
			a, b := alpha(g.vPrev[i]), beta(g.vPrev[i])
			return -(a + b), a
		}
	}
	if err := g.step.ApplyLinear("m", g.m, t, gate(alphaM, betaM)); err != nil {
		return err
	}
	if err := g.step.ApplyLinear("h", g.h, t, gate(alphaH, betaH)); err != nil {
		return err
	}
	if err := g.step.ApplyLinear("n", g.n, t, gate(alphaN, betaN)); err != nil {
		return err
	}
	g.m.Clip(0, 1)
	g.h.Clip(0, 1)
	g.n.Clip(0, 1)

	dv := func(i int, v, t float64) float64 {
		iNa := g.p.GNa * g.m[i] * g.m[i] * g.m[i] * g.h[i] * (v - g.p.ENa)
		iK := g.p.GK * g.n[i] * g.n[i] * g.n[i] * g.n[i] * (v - g.p.EK)
		iLeak := g.p.GLeak * (v - g.p.ELeak)
		return (-iNa - iK - iLeak + g.input[i]) / g.p.C
	}
	if err := g.step.ApplyNoise("V", g.v, t, g.p.Noise/g.p.C, dv); err != nil {
		return err
	}

	for i := range g.spike {
		if g.vPrev[i] < g.p.VThreshold && g.v[i] >= g.p.VThreshold {
			g.spike[i] = 1
		} else {
			g.spike[i] = 0
		}
	}
	g.input.Zero()
	return nil
}

func (g *HodgkinHuxley) Size() int             { return len(g.v) }
func (g *HodgkinHuxley) Spikes() neuro.Vector  { return g.spike }
func (g *HodgkinHuxley) Voltage() neuro.Vector { return g.v }

func (g *HodgkinHuxley) Inject(id int, current float64) { g.input[id] += current }

func (g *HodgkinHuxley) Fields() []string {
	return []string{"V", "m", "h", "n", "spike", "input"}
}

func (g *HodgkinHuxley) Field(name string) (neuro.Vector, bool) {
	switch name {
	case "V":
		return g.v, true
	case "m":
		return g.m, true
	case "h":
		return g.h, true
	case "n":
		return g.n, true
	case "spike":
		return g.spike, true
	case "input":
		return g.input, true
	default:
		return nil, false
	}
}
