package integrators

import (
	"math"
	"math/rand"

	"github.com/san-kum/spikesim/internal/neuro"
)

type Scheme int

const (
	Euler Scheme = iota
	ExpEuler
)

func (s Scheme) String() string {
	switch s {
	case Euler:
		return "euler"
	case ExpEuler:
		return "expeuler"
	default:
		return "unknown"
	}
}

func ParseScheme(name string) (Scheme, error) {
	switch name {
	case "euler":
		return Euler, nil
	case "expeuler", "exponential_euler":
		return ExpEuler, nil
	default:
		return 0, neuro.Configf("integrators", "unknown scheme %q", name)
	}
}

// Deriv evaluates dy/dt for unit i given its current value.
type Deriv func(i int, y, t float64) float64

// PairDeriv evaluates the coupled derivatives of two state variables
// for unit i, both at the pre-step values.
type PairDeriv func(i int, a, b, t float64) (da, db float64)

// TripleDeriv is PairDeriv for three coupled variables.
type TripleDeriv func(i int, a, b, c, t float64) (da, db, dc float64)

// LinearDeriv returns the coefficients of dy/dt = a*y + b for unit i.
type LinearDeriv func(i int, t float64) (a, b float64)

// Stepper advances per-unit arrays by one fixed timestep.
type Stepper struct {
	scheme Scheme
	dt     float64
	rng    *rand.Rand
}

func New(scheme Scheme, dt float64) (*Stepper, error) {
	if dt <= 0 {
		return nil, neuro.Configf("integrators", "dt must be positive, got %g", dt)
	}
	return &Stepper{scheme: scheme, dt: dt}, nil
}

func (s *Stepper) Scheme() Scheme { return s.scheme }
func (s *Stepper) Dt() float64    { return s.dt }

// Seed installs the noise source. Runs with the same seed reproduce
// exactly.
func (s *Stepper) Seed(seed int64) *Stepper {
	s.rng = rand.New(rand.NewSource(seed))
	return s
}

// Apply advances y in place with an explicit Euler step.
func (s *Stepper) Apply(name string, y neuro.Vector, t float64, f Deriv) error {
	for i := range y {
		y[i] += s.dt * f(i, y[i], t)
	}
	return s.check(name, y, t)
}

// ApplyNoise is Apply plus an additive noise term of the given
// amplitude, scaled by sqrt(dt).
func (s *Stepper) ApplyNoise(name string, y neuro.Vector, t float64, amp float64, f Deriv) error {
	if amp == 0 {
		return s.Apply(name, y, t, f)
	}
	if s.rng == nil {
		s.Seed(1)
	}
	sqdt := math.Sqrt(s.dt)
	for i := range y {
		y[i] += s.dt*f(i, y[i], t) + amp*sqdt*s.rng.NormFloat64()
	}
	return s.check(name, y, t)
}

// ApplyPair advances two coupled arrays in place, evaluating both
// derivatives at the pre-step values.
func (s *Stepper) ApplyPair(nameA, nameB string, ya, yb neuro.Vector, t float64, f PairDeriv) error {
	for i := range ya {
		da, db := f(i, ya[i], yb[i], t)
		ya[i] += s.dt * da
		yb[i] += s.dt * db
	}
	if err := s.check(nameA, ya, t); err != nil {
		return err
	}
	return s.check(nameB, yb, t)
}

// ApplyTriple advances three coupled arrays in place.
func (s *Stepper) ApplyTriple(nameA, nameB, nameC string, ya, yb, yc neuro.Vector, t float64, f TripleDeriv) error {
	for i := range ya {
		da, db, dc := f(i, ya[i], yb[i], yc[i], t)
		ya[i] += s.dt * da
		yb[i] += s.dt * db
		yc[i] += s.dt * dc
	}
	if err := s.check(nameA, ya, t); err != nil {
		return err
	}
	if err := s.check(nameB, yb, t); err != nil {
		return err
	}
	return s.check(nameC, yc, t)
}

// ApplyLinear advances dy/dt = a*y + b. Under ExpEuler the linear part
// is solved exactly within the step; under Euler it is first-order.
func (s *Stepper) ApplyLinear(name string, y neuro.Vector, t float64, f LinearDeriv) error {
	switch s.scheme {
	case ExpEuler:
		for i := range y {
			a, b := f(i, t)
			if math.Abs(a) < 1e-12 {
				y[i] += s.dt * b
				continue
			}
			e := math.Expm1(a * s.dt)
			y[i] += e*y[i] + b/a*e
		}
	default:
		for i := range y {
			a, b := f(i, t)
			y[i] += s.dt * (a*y[i] + b)
		}
	}
	return s.check(name, y, t)
}

func (s *Stepper) check(name string, y neuro.Vector, t float64) error {
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &neuro.NumericalError{Field: name, Unit: i, Time: t}
		}
	}
	return nil
}
