package neuro

// Recorder copies named state fields out of watched groups after every
// step. It is a read-only observer: recording has no influence on the
// dynamics.
type Recorder struct {
	traces []*Trace
	times  []float64
}

// Trace is the time-indexed history of one field of one group. Rows
// are steps, columns are units.
type Trace struct {
	Group string
	Field string
	src   Vector
	Data  []Vector
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Watch starts recording the given fields of a group. Unknown field
// names fail immediately.
func (r *Recorder) Watch(name string, g Group, fields ...string) error {
	for _, f := range fields {
		src, ok := g.Field(f)
		if !ok {
			return Configf("recorder", "group %s has no field %q (have %v)", name, f, g.Fields())
		}
		r.traces = append(r.traces, &Trace{Group: name, Field: f, src: src})
	}
	return nil
}

func (r *Recorder) OnStep(t float64) {
	r.times = append(r.times, t)
	for _, tr := range r.traces {
		tr.Data = append(tr.Data, tr.src.Clone())
	}
}

func (r *Recorder) Times() []float64 { return r.times }

func (r *Recorder) Traces() []*Trace { return r.traces }

// Trace returns the recorded history for one group field, or nil.
func (r *Recorder) Trace(group, field string) *Trace {
	for _, tr := range r.traces {
		if tr.Group == group && tr.Field == field {
			return tr
		}
	}
	return nil
}

// Unit extracts the single-unit time series from a trace.
func (tr *Trace) Unit(id int) []float64 {
	out := make([]float64, len(tr.Data))
	for i, row := range tr.Data {
		out[i] = row[id]
	}
	return out
}
