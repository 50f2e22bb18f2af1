package synapses

import "github.com/san-kum/spikesim/internal/neuro"

// VoltageJumpParams: Weight is the jump height (mV) per spike. With
// PostRefractory set, jumps are suppressed on units currently held
// refractory; the postsynaptic group must then expose a refractory
// state.
type VoltageJumpParams struct {
	Weight         float64
	Delay          float64
	PostRefractory bool
}

func DefaultVoltageJumpParams() VoltageJumpParams {
	return VoltageJumpParams{Weight: 1.0}
}

// VoltageJump adds a fixed jump directly to the postsynaptic membrane
// potential for every delivered presynaptic spike. There is no kernel
// state to integrate.
type VoltageJump struct {
	projection
	p   VoltageJumpParams
	ref neuro.Refractor
	s   neuro.Vector
}

func NewVoltageJump(pre, post neuro.Neuron, conn *neuro.ConnectionMap, p VoltageJumpParams, dt float64) (*VoltageJump, error) {
	proj, err := newProjection("voltagejump", pre, post, conn, p.Weight, p.Delay, dt)
	if err != nil {
		return nil, err
	}
	g := &VoltageJump{
		projection: proj,
		p:          p,
		s:          make(neuro.Vector, conn.NumEdges()),
	}
	if p.PostRefractory {
		ref, ok := post.(neuro.Refractor)
		if !ok {
			return nil, neuro.Configf("voltagejump", "postsynaptic group has no refractory state")
		}
		g.ref = ref
	}
	return g, nil
}

func (g *VoltageJump) Update(t float64) error {
	spikes := g.pre.Spikes()
	for e := range g.s {
		g.s[e] = spikes[g.conn.Pre(e)]
	}
	g.aggregate(g.s)
	due := g.deliver()
	postV := g.post.Voltage()
	if g.ref != nil {
		held := g.ref.Refractory()
		for i, v := range due {
			postV[i] += v * (1 - held[i])
		}
	} else {
		for i, v := range due {
			postV[i] += v
		}
	}
	return nil
}

func (g *VoltageJump) Size() int { return g.conn.NumEdges() }

func (g *VoltageJump) Fields() []string { return []string{"s"} }

func (g *VoltageJump) Field(name string) (neuro.Vector, bool) {
	if name == "s" {
		return g.s, true
	}
	return nil, false
}
