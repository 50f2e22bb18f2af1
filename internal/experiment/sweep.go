package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/spikesim/internal/config"
	"github.com/san-kum/spikesim/internal/neuro"
)

// Sweep runs the same simulation once per value of one parameter and
// collects the run metrics at each point. Param is either "current" or
// a model parameter name accepted by the model's override table.
type Sweep struct {
	Base   *config.Config
	Param  string
	Values []float64
}

// Point holds the metrics of one sweep run.
type Point struct {
	Value   float64
	Metrics map[string]float64
}

func (s *Sweep) configFor(value float64) *config.Config {
	cfg := *s.Base
	if s.Param == "current" {
		cfg.Current = value
		return &cfg
	}
	params := make(map[string]float64, len(s.Base.Params)+1)
	for k, v := range s.Base.Params {
		params[k] = v
	}
	params[s.Param] = value
	cfg.Params = params
	return &cfg
}

// Run executes the sweep sequentially. A build or run failure aborts
// the sweep and reports which value failed.
func (s *Sweep) Run(ctx context.Context) ([]Point, error) {
	if len(s.Values) == 0 {
		return nil, neuro.Configf("sweep", "no values to sweep")
	}

	points := make([]Point, 0, len(s.Values))
	for _, value := range s.Values {
		cfg := s.configFor(value)

		sim, err := Build(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s=%g: %w", s.Param, value, err)
		}

		result, err := sim.Net.Run(ctx, neuro.Config{
			Dt:       cfg.Dt,
			Duration: cfg.Duration,
			Seed:     cfg.Seed,
		})
		if err != nil {
			return nil, fmt.Errorf("%s=%g: %w", s.Param, value, err)
		}

		points = append(points, Point{Value: value, Metrics: result.Metrics})
	}
	return points, nil
}

// Range builds n evenly spaced sweep values from lo to hi inclusive.
func Range(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	vals := make([]float64, n)
	stride := (hi - lo) / float64(n-1)
	for i := range vals {
		vals[i] = lo + float64(i)*stride
	}
	return vals
}
