package integrators

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/spikesim/internal/neuro"
)

func TestParseScheme(t *testing.T) {
	tests := []struct {
		name    string
		want    Scheme
		wantErr bool
	}{
		{"euler", Euler, false},
		{"expeuler", ExpEuler, false},
		{"exponential_euler", ExpEuler, false},
		{"rk4", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseScheme(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseScheme(%q): expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseScheme(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseScheme(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNew_InvalidDt(t *testing.T) {
	for _, dt := range []float64{0, -0.01} {
		if _, err := New(Euler, dt); err == nil {
			t.Errorf("New with dt=%f: expected error", dt)
		}
	}
}

func TestStepper_EulerDecay(t *testing.T) {
	step, err := New(Euler, 0.001)
	if err != nil {
		t.Fatal(err)
	}

	// dy/dt = -y, y(0) = 1, so y(1) = exp(-1).
	y := neuro.Vector{1.0}
	for i := 0; i < 1000; i++ {
		tNow := float64(i) * 0.001
		if err := step.Apply("y", y, tNow, func(i int, yi, t float64) float64 {
			return -yi
		}); err != nil {
			t.Fatal(err)
		}
	}

	want := math.Exp(-1)
	if math.Abs(y[0]-want) > 1e-3 {
		t.Errorf("y(1) = %f, want %f", y[0], want)
	}
}

func TestStepper_ExpEulerExactOnLinear(t *testing.T) {
	// Exponential Euler is exact for dy/dt = a*y + b regardless of dt.
	step, err := New(ExpEuler, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	a, b := -2.0, 3.0
	y := neuro.Vector{1.0}
	for i := 0; i < 20; i++ {
		tNow := float64(i) * 0.5
		if err := step.ApplyLinear("y", y, tNow, func(i int, t float64) (float64, float64) {
			return a, b
		}); err != nil {
			t.Fatal(err)
		}
	}

	// Analytic solution at t=10.
	want := (1.0+b/a)*math.Exp(a*10) - b/a
	if math.Abs(y[0]-want) > 1e-9 {
		t.Errorf("y(10) = %v, want %v", y[0], want)
	}
}

func TestStepper_ExpEulerZeroRate(t *testing.T) {
	step, err := New(ExpEuler, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	// a = 0 reduces to dy/dt = b; the integrator must not divide by a.
	y := neuro.Vector{0.0}
	for i := 0; i < 10; i++ {
		if err := step.ApplyLinear("y", y, 0, func(i int, t float64) (float64, float64) {
			return 0, 2.0
		}); err != nil {
			t.Fatal(err)
		}
	}
	if math.Abs(y[0]-2.0) > 1e-9 {
		t.Errorf("y = %f, want 2.0", y[0])
	}
}

func TestStepper_NonFiniteState(t *testing.T) {
	step, err := New(Euler, 0.01)
	if err != nil {
		t.Fatal(err)
	}

	y := neuro.Vector{1.0, 1.0}
	err = step.Apply("V", y, 0.5, func(i int, yi, t float64) float64 {
		if i == 1 {
			return math.NaN()
		}
		return 0
	})
	if err == nil {
		t.Fatal("expected error on NaN derivative")
	}

	var numErr *neuro.NumericalError
	if !errors.As(err, &numErr) {
		t.Fatalf("expected NumericalError, got %T", err)
	}
	if numErr.Field != "V" || numErr.Unit != 1 {
		t.Errorf("error identifies %s unit %d, want V unit 1", numErr.Field, numErr.Unit)
	}
	if numErr.Time != 0.5 {
		t.Errorf("error time %f, want 0.5", numErr.Time)
	}
}

func TestStepper_ApplyPair(t *testing.T) {
	step, err := New(Euler, 0.01)
	if err != nil {
		t.Fatal(err)
	}

	// Both derivatives must see the pre-step values.
	ya := neuro.Vector{1.0}
	yb := neuro.Vector{2.0}
	err = step.ApplyPair("a", "b", ya, yb, 0, func(i int, a, b, _ float64) (float64, float64) {
		if a != 1.0 || b != 2.0 {
			t.Errorf("derivative saw (%f, %f), want pre-step (1, 2)", a, b)
		}
		return b, -a
	})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(ya[0]-1.02) > 1e-12 || math.Abs(yb[0]-1.99) > 1e-12 {
		t.Errorf("got (%f, %f), want (1.02, 1.99)", ya[0], yb[0])
	}
}

func TestStepper_NoiseReproducible(t *testing.T) {
	run := func(seed int64) neuro.Vector {
		step, err := New(Euler, 0.01)
		if err != nil {
			t.Fatal(err)
		}
		step.Seed(seed)

		y := neuro.Vector{0, 0, 0}
		for i := 0; i < 100; i++ {
			if err := step.ApplyNoise("y", y, 0, 1.0, func(i int, yi, t float64) float64 {
				return 0
			}); err != nil {
				t.Fatal(err)
			}
		}
		return y
	}

	a, b := run(42), run(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged: %v vs %v", a, b)
		}
	}

	c := run(7)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical noise")
	}
}

func TestStepper_NoiseZeroAmp(t *testing.T) {
	step, err := New(Euler, 0.01)
	if err != nil {
		t.Fatal(err)
	}

	y := neuro.Vector{1.0}
	if err := step.ApplyNoise("y", y, 0, 0, func(i int, yi, t float64) float64 {
		return -yi
	}); err != nil {
		t.Fatal(err)
	}
	if math.Abs(y[0]-0.99) > 1e-12 {
		t.Errorf("y = %f, want deterministic 0.99", y[0])
	}
}
