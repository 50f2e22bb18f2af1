package neuro

import (
	"context"
	"errors"
	"testing"
)

// fakeNeuron flips its spike flag on every update and appends to a
// shared call log.
type fakeNeuron struct {
	v     Vector
	spike Vector
	input Vector
	log   *[]string
	name  string
	fail  error
}

func newFakeNeuron(name string, log *[]string) *fakeNeuron {
	return &fakeNeuron{
		v:     Full(1, -65),
		spike: make(Vector, 1),
		input: make(Vector, 1),
		log:   log,
		name:  name,
	}
}

func (f *fakeNeuron) Size() int       { return 1 }
func (f *fakeNeuron) Spikes() Vector  { return f.spike }
func (f *fakeNeuron) Voltage() Vector { return f.v }

func (f *fakeNeuron) Inject(id int, current float64) { f.input[id] += current }

func (f *fakeNeuron) Update(t float64) error {
	if f.fail != nil {
		return f.fail
	}
	*f.log = append(*f.log, f.name)
	f.spike[0] = 1
	f.input.Zero()
	return nil
}

func (f *fakeNeuron) Fields() []string { return []string{"V", "spike"} }

func (f *fakeNeuron) Field(name string) (Vector, bool) {
	switch name {
	case "V":
		return f.v, true
	case "spike":
		return f.spike, true
	default:
		return nil, false
	}
}

// fakeSynapse records the presynaptic spike value it observed on each
// update.
type fakeSynapse struct {
	pre      *fakeNeuron
	log      *[]string
	name     string
	observed []float64
}

func (f *fakeSynapse) Size() int { return 1 }

func (f *fakeSynapse) Update(t float64) error {
	*f.log = append(*f.log, f.name)
	f.observed = append(f.observed, f.pre.spike[0])
	return nil
}

func (f *fakeSynapse) Fields() []string            { return nil }
func (f *fakeSynapse) Field(string) (Vector, bool) { return nil, false }

func TestNetwork_SynapsesUpdateFirst(t *testing.T) {
	log := []string{}
	nrn := newFakeNeuron("nrn", &log)
	syn := &fakeSynapse{pre: nrn, log: &log, name: "syn"}

	net := NewNetwork()
	// Insertion order is neuron first; scheduling must still run the
	// synapse first.
	if err := net.Add("nrn", nrn); err != nil {
		t.Fatal(err)
	}
	if err := net.Add("syn", syn); err != nil {
		t.Fatal(err)
	}

	_, err := net.Run(context.Background(), Config{Dt: 0.1, Duration: 0.3})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := []string{"syn", "nrn", "syn", "nrn", "syn", "nrn"}
	if len(log) != len(want) {
		t.Fatalf("expected %d updates, got %d: %v", len(want), len(log), log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("update order %v, want %v", log, want)
		}
	}
}

func TestNetwork_SynapseSeesPreviousStepSpikes(t *testing.T) {
	log := []string{}
	nrn := newFakeNeuron("nrn", &log)
	syn := &fakeSynapse{pre: nrn, log: &log, name: "syn"}

	net := NewNetwork()
	if err := net.Add("nrn", nrn); err != nil {
		t.Fatal(err)
	}
	if err := net.Add("syn", syn); err != nil {
		t.Fatal(err)
	}

	if _, err := net.Run(context.Background(), Config{Dt: 0.1, Duration: 0.2}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// The neuron spikes on its first update; the synapse must not see
	// that flag until the following step.
	if syn.observed[0] != 0 {
		t.Errorf("step 0: synapse observed %f, want 0", syn.observed[0])
	}
	if syn.observed[1] != 1 {
		t.Errorf("step 1: synapse observed %f, want 1", syn.observed[1])
	}
}

func TestNetwork_DuplicateName(t *testing.T) {
	log := []string{}
	net := NewNetwork()
	if err := net.Add("a", newFakeNeuron("a", &log)); err != nil {
		t.Fatal(err)
	}
	if err := net.Add("a", newFakeNeuron("a", &log)); err == nil {
		t.Error("expected error for duplicate name")
	}
}

func TestNetwork_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dt", Config{Dt: 0, Duration: 1.0}},
		{"negative dt", Config{Dt: -0.1, Duration: 1.0}},
		{"zero duration", Config{Dt: 0.1, Duration: 0}},
		{"negative duration", Config{Dt: 0.1, Duration: -1.0}},
	}

	net := NewNetwork()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := net.Run(context.Background(), tt.cfg)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("expected ConfigError, got %T", err)
			}
		})
	}
}

func TestNetwork_HaltsOnNumericalError(t *testing.T) {
	log := []string{}
	nrn := newFakeNeuron("nrn", &log)
	nrn.fail = &NumericalError{Field: "V", Unit: 0, Time: 0}

	net := NewNetwork()
	if err := net.Add("nrn", nrn); err != nil {
		t.Fatal(err)
	}

	result, err := net.Run(context.Background(), Config{Dt: 0.1, Duration: 1.0})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var numErr *NumericalError
	if !errors.As(err, &numErr) {
		t.Errorf("expected NumericalError, got %T", err)
	}
	if result.Steps != 0 {
		t.Errorf("expected halt on first step, completed %d", result.Steps)
	}
}

func TestNetwork_ContextCancellation(t *testing.T) {
	log := []string{}
	net := NewNetwork()
	if err := net.Add("nrn", newFakeNeuron("nrn", &log)); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := net.Run(ctx, Config{Dt: 0.1, Duration: 1.0})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestNetwork_Stimulus(t *testing.T) {
	log := []string{}
	nrn := newFakeNeuron("nrn", &log)

	net := NewNetwork()
	if err := net.Add("nrn", nrn); err != nil {
		t.Fatal(err)
	}

	injected := 0
	net.AddStimulus(func(t float64) {
		nrn.Inject(0, 5.0)
		injected++
	})

	result, err := net.Run(context.Background(), Config{Dt: 0.1, Duration: 0.5})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if injected != result.Steps {
		t.Errorf("stimulus ran %d times over %d steps", injected, result.Steps)
	}
}

func TestRecorder(t *testing.T) {
	log := []string{}
	nrn := newFakeNeuron("nrn", &log)

	rec := NewRecorder()
	if err := rec.Watch("nrn", nrn, "V", "spike"); err != nil {
		t.Fatalf("watch failed: %v", err)
	}
	if err := rec.Watch("nrn", nrn, "missing"); err == nil {
		t.Error("expected error for unknown field")
	}

	net := NewNetwork()
	if err := net.Add("nrn", nrn); err != nil {
		t.Fatal(err)
	}
	net.AddObserver(rec)

	if _, err := net.Run(context.Background(), Config{Dt: 0.1, Duration: 0.5}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	tr := rec.Trace("nrn", "V")
	if tr == nil {
		t.Fatal("missing V trace")
	}
	if len(tr.Data) != 5 {
		t.Errorf("expected 5 recorded steps, got %d", len(tr.Data))
	}
	if len(rec.Times()) != 5 {
		t.Errorf("expected 5 times, got %d", len(rec.Times()))
	}

	unit := tr.Unit(0)
	if len(unit) != 5 || unit[0] != -65 {
		t.Errorf("unexpected unit trace: %v", unit)
	}

	if rec.Trace("nrn", "nope") != nil {
		t.Error("expected nil for unknown trace")
	}
}
