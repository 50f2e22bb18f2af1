package neurons

import (
	"github.com/san-kum/spikesim/internal/integrators"
	"github.com/san-kum/spikesim/internal/neuro"
)

// HindmarshRoseParams follow Hindmarsh & Rose (1984). B switches the
// model between spiking and bursting, R sets the slow variable's time
// scale, S governs adaptation.
type HindmarshRoseParams struct {
	A          float64
	B          float64
	C          float64
	D          float64
	R          float64
	S          float64
	VRest      float64
	VThreshold float64
}

func DefaultHindmarshRoseParams() HindmarshRoseParams {
	return HindmarshRoseParams{
		A:          1.0,
		B:          3.0,
		C:          1.0,
		D:          5.0,
		R:          0.01,
		S:          4.0,
		VRest:      -1.6,
		VThreshold: 1.0,
	}
}

func (p HindmarshRoseParams) validate() error {
	if p.R <= 0 {
		return neuro.Configf("hindmarshrose", "time-scale parameter R must be positive, got %g", p.R)
	}
	return nil
}

// HindmarshRose is a group of Hindmarsh-Rose bursters. The model is
// continuous: spikes are detected by threshold crossing but nothing is
// reset, and there is no refractory state.
type HindmarshRose struct {
	p    HindmarshRoseParams
	step *integrators.Stepper

	v     neuro.Vector
	y     neuro.Vector
	z     neuro.Vector
	spike neuro.Vector
	input neuro.Vector

	vPrev neuro.Vector
}

func NewHindmarshRose(size int, p HindmarshRoseParams, step *integrators.Stepper) (*HindmarshRose, error) {
	if size <= 0 {
		return nil, neuro.Configf("hindmarshrose", "size must be positive, got %d", size)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &HindmarshRose{
		p:     p,
		step:  step,
		v:     neuro.Full(size, -1.6),
		y:     neuro.Full(size, -10.0),
		z:     make(neuro.Vector, size),
		spike: make(neuro.Vector, size),
		input: make(neuro.Vector, size),
		vPrev: make(neuro.Vector, size),
	}, nil
}

func (g *HindmarshRose) Update(t float64) error {
	copy(g.vPrev, g.v)

	f := func(i int, v, y, z, t float64) (float64, float64, float64) {
		dv := y - g.p.A*v*v*v + g.p.B*v*v - z + g.input[i]
		dy := g.p.C - g.p.D*v*v - y
		dz := g.p.R * (g.p.S*(v-g.p.VRest) - z)
		return dv, dy, dz
	}
	if err := g.step.ApplyTriple("V", "y", "z", g.v, g.y, g.z, t, f); err != nil {
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

func (g *HindmarshRose) Size() int             { return len(g.v) }
func (g *HindmarshRose) Spikes() neuro.Vector  { return g.spike }
func (g *HindmarshRose) Voltage() neuro.Vector { return g.v }

func (g *HindmarshRose) Inject(id int, current float64) { g.input[id] += current }

func (g *HindmarshRose) Fields() []string {
	return []string{"V", "y", "z", "spike", "input"}
}

func (g *HindmarshRose) Field(name string) (neuro.Vector, bool) {
	switch name {
	case "V":
		return g.v, true
	case "y":
		return g.y, true
	case "z":
		return g.z, true
	case "spike":
		return g.spike, true
	case "input":
		return g.input, true
	default:
		return nil, false
	}
}
