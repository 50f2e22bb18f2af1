package synapses

import (
	"testing"

	"github.com/san-kum/spikesim/internal/integrators"
	"github.com/san-kum/spikesim/internal/neuro"
)

// stubNeuron lets tests script presynaptic spikes and observe what a
// synapse injects into the target.
type stubNeuron struct {
	v     neuro.Vector
	spike neuro.Vector
	input neuro.Vector
}

func newStubNeuron(size int, v float64) *stubNeuron {
	return &stubNeuron{
		v:     neuro.Full(size, v),
		spike: make(neuro.Vector, size),
		input: make(neuro.Vector, size),
	}
}

func (s *stubNeuron) Size() int                      { return len(s.v) }
func (s *stubNeuron) Update(t float64) error         { return nil }
func (s *stubNeuron) Spikes() neuro.Vector           { return s.spike }
func (s *stubNeuron) Voltage() neuro.Vector          { return s.v }
func (s *stubNeuron) Inject(id int, current float64) { s.input[id] += current }
func (s *stubNeuron) Fields() []string               { return []string{"V", "spike"} }

func (s *stubNeuron) Field(name string) (neuro.Vector, bool) {
	switch name {
	case "V":
		return s.v, true
	case "spike":
		return s.spike, true
	default:
		return nil, false
	}
}

// refractoryNeuron adds a scriptable refractory state.
type refractoryNeuron struct {
	*stubNeuron
	refr neuro.Vector
}

func newRefractoryNeuron(size int, v float64) *refractoryNeuron {
	return &refractoryNeuron{
		stubNeuron: newStubNeuron(size, v),
		refr:       make(neuro.Vector, size),
	}
}

func (r *refractoryNeuron) Refractory() neuro.Vector { return r.refr }

func newSynStepper(t *testing.T, dt float64) *integrators.Stepper {
	t.Helper()
	step, err := integrators.New(integrators.ExpEuler, dt)
	if err != nil {
		t.Fatal(err)
	}
	return step
}

func oneToOne(t *testing.T, n int) *neuro.ConnectionMap {
	t.Helper()
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{i, i}
	}
	conn, err := neuro.Connect(n, n, pairs)
	if err != nil {
		t.Fatal(err)
	}
	return conn
}

func allToOne(t *testing.T, n int) *neuro.ConnectionMap {
	t.Helper()
	conn, err := neuro.ConnectAll(n, 1)
	if err != nil {
		t.Fatal(err)
	}
	return conn
}
