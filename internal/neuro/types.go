package neuro

import "math"

// Vector holds one value per unit in a group.
type Vector []float64

func Full(n int, x float64) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = x
	}
	return v
}

func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

func (v Vector) Fill(x float64) {
	for i := range v {
		v[i] = x
	}
}

func (v Vector) Zero() {
	v.Fill(0)
}

func (v Vector) IsValid() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Clip limits every element to [lo, hi].
func (v Vector) Clip(lo, hi float64) {
	for i, x := range v {
		if x < lo {
			v[i] = lo
		} else if x > hi {
			v[i] = hi
		}
	}
}

func (v Vector) Sum() float64 {
	s := 0.0
	for _, x := range v {
		s += x
	}
	return s
}

// Group is a collection of units of one model type, updated together
// each step. Update mutates only the group's own state and the input
// accumulators of groups it targets.
type Group interface {
	Size() int
	Update(t float64) error
	Field(name string) (Vector, bool)
	Fields() []string
}

// Neuron is a group with membrane dynamics. Spikes and Voltage expose
// the live per-unit arrays; peers read them, and voltage-jump synapses
// write Voltage directly. Inject adds external or synaptic current
// into the input accumulator, which the group consumes and zeroes on
// its next Update.
type Neuron interface {
	Group
	Spikes() Vector
	Voltage() Vector
	Inject(id int, current float64)
}

// Refractor is implemented by neuron groups with an explicit
// refractory period. The returned vector holds 1 for units currently
// held refractory.
type Refractor interface {
	Refractory() Vector
}

// Observer is notified after every completed step.
type Observer interface {
	OnStep(t float64)
}

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(t float64)
	Value() float64
	Reset()
}

type Config struct {
	Dt       float64
	Duration float64
	Seed     int64
}

func DefaultConfig() Config {
	return Config{Dt: 0.01, Duration: 100.0}
}

type Result struct {
	Steps   int
	Times   []float64
	Metrics map[string]float64
}
