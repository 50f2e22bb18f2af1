// Package metrics provides run-level observers implementing
// [neuro.Metric]. Metrics read group state after each step and reduce
// it to a single value reported with the run result.
package metrics

import (
	"math"

	"github.com/san-kum/spikesim/internal/neuro"
)

// SpikeCount totals the spike flags of a group over the run.
type SpikeCount struct {
	name  string
	group neuro.Neuron
	total float64
}

func NewSpikeCount(group neuro.Neuron) *SpikeCount {
	return &SpikeCount{name: "spike_count", group: group}
}

func (m *SpikeCount) Name() string { return m.name }

func (m *SpikeCount) Observe(t float64) {
	m.total += m.group.Spikes().Sum()
}

func (m *SpikeCount) Value() float64 { return m.total }

func (m *SpikeCount) Reset() { m.total = 0 }

// FiringRate reports the mean rate in Hz, assuming the simulation
// time unit is milliseconds.
type FiringRate struct {
	name    string
	group   neuro.Neuron
	dt      float64
	total   float64
	samples int
}

func NewFiringRate(group neuro.Neuron, dt float64) *FiringRate {
	return &FiringRate{name: "firing_rate_hz", group: group, dt: dt}
}

func (m *FiringRate) Name() string { return m.name }

func (m *FiringRate) Observe(t float64) {
	m.total += m.group.Spikes().Sum()
	m.samples++
}

func (m *FiringRate) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	elapsed := float64(m.samples) * m.dt
	return m.total / float64(m.group.Size()) / elapsed * 1000.0
}

func (m *FiringRate) Reset() {
	m.total = 0
	m.samples = 0
}

// Stability reports the fraction of steps on which every membrane
// potential stayed within the threshold magnitude.
type Stability struct {
	name       string
	group      neuro.Neuron
	threshold  float64
	violations int
	samples    int
}

func NewStability(group neuro.Neuron, threshold float64) *Stability {
	return &Stability{name: "stability", group: group, threshold: threshold}
}

func (m *Stability) Name() string { return m.name }

func (m *Stability) Observe(t float64) {
	m.samples++
	for _, v := range m.group.Voltage() {
		if math.Abs(v) > m.threshold {
			m.violations++
			break
		}
	}
}

func (m *Stability) Value() float64 {
	if m.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(m.violations)/float64(m.samples)
}

func (m *Stability) Reset() {
	m.violations = 0
	m.samples = 0
}
