package synapses

import "github.com/san-kum/spikesim/internal/neuro"

// projection holds what every synapse group shares: the pre and post
// groups, the immutable edge relation, per-edge weights, and the
// optional delay line carrying per-target aggregates.
type projection struct {
	pre  neuro.Neuron
	post neuro.Neuron
	conn *neuro.ConnectionMap
	w    neuro.Vector
	line *neuro.DelayLine
	out  neuro.Vector
	due  neuro.Vector
}

func newProjection(name string, pre, post neuro.Neuron, conn *neuro.ConnectionMap, weight, delay, dt float64) (projection, error) {
	if conn == nil {
		return projection{}, neuro.Configf(name, "connection map is required")
	}
	if conn.PreSize() != pre.Size() {
		return projection{}, neuro.Configf(name, "connection pre size %d does not match group size %d", conn.PreSize(), pre.Size())
	}
	if conn.PostSize() != post.Size() {
		return projection{}, neuro.Configf(name, "connection post size %d does not match group size %d", conn.PostSize(), post.Size())
	}
	if delay < 0 {
		return projection{}, neuro.Configf(name, "delay must be non-negative, got %g", delay)
	}
	p := projection{
		pre:  pre,
		post: post,
		conn: conn,
		w:    neuro.Full(conn.NumEdges(), weight),
		out:  make(neuro.Vector, post.Size()),
	}
	if delay > 0 {
		line, err := neuro.NewDelayLine(post.Size(), delay, dt)
		if err != nil {
			return projection{}, err
		}
		p.line = line
		p.due = make(neuro.Vector, post.Size())
	}
	return p, nil
}

// intake adds one jump per presynaptic spike onto every edge sourced
// from the spiking unit.
func (p *projection) intake(jump neuro.Vector) {
	spikes := p.pre.Spikes()
	for preID, sp := range spikes {
		if sp > 0 {
			for _, e := range p.conn.EdgesFrom(preID) {
				jump[e] += 1
			}
		}
	}
}

// aggregate sums w*vals over incoming edges per target unit into out.
func (p *projection) aggregate(vals neuro.Vector) {
	p.out.Zero()
	for e := 0; e < p.conn.NumEdges(); e++ {
		p.out[p.conn.Post(e)] += p.w[e] * vals[e]
	}
}

// deliver routes out through the delay line and returns the values due
// this step. Delay 0 passes out straight through.
func (p *projection) deliver() neuro.Vector {
	if p.line == nil {
		return p.out
	}
	copy(p.due, p.line.Pull())
	p.line.Push(p.out)
	p.line.Advance()
	return p.due
}

// Weights exposes the per-edge weight vector for adjustment before a
// run starts.
func (p *projection) Weights() neuro.Vector { return p.w }
