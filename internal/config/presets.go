package config

var Presets = map[string]map[string]*Config{
	"hh": {
		"resting": {
			Model: "hh", Integrator: "expeuler", Size: 1, Dt: 0.01, Duration: 100.0,
			Current: 0.0, Record: []string{"V", "spike"},
		},
		"tonic": {
			Model: "hh", Integrator: "expeuler", Size: 1, Dt: 0.01, Duration: 100.0,
			Current: 10.0, Record: []string{"V", "m", "h", "n", "spike"},
		},
		"noisy": {
			Model: "hh", Integrator: "expeuler", Size: 10, Dt: 0.01, Duration: 200.0,
			Current: 6.0, Seed: 42, Params: map[string]float64{"noise": 1.0},
			Record: []string{"V", "spike"},
		},
	},
	"izhikevich": {
		// Izhikevich (2003) firing regimes.
		"regular": {
			Model: "izhikevich", Integrator: "euler", Size: 1, Dt: 0.01, Duration: 200.0,
			Current: 10.0, Record: []string{"V", "u", "spike"},
		},
		"chattering": {
			Model: "izhikevich", Integrator: "euler", Size: 1, Dt: 0.01, Duration: 200.0,
			Current: 10.0, Params: map[string]float64{"c": -50.0, "d": 2.0},
			Record: []string{"V", "u", "spike"},
		},
		"fast": {
			Model: "izhikevich", Integrator: "euler", Size: 1, Dt: 0.01, Duration: 200.0,
			Current: 10.0, Params: map[string]float64{"a": 0.1, "d": 2.0},
			Record: []string{"V", "u", "spike"},
		},
		"refractory": {
			Model: "izhikevich", Integrator: "euler", Size: 1, Dt: 0.01, Duration: 200.0,
			Current: 10.0, Params: map[string]float64{"t_refractory": 5.0},
			Record: []string{"V", "spike", "refractory"},
		},
	},
	"hindmarsh_rose": {
		"bursting": {
			Model: "hindmarsh_rose", Integrator: "euler", Size: 1, Dt: 0.01, Duration: 1000.0,
			Current: 2.0, Record: []string{"V", "y", "z", "spike"},
		},
		"quiet": {
			Model: "hindmarsh_rose", Integrator: "euler", Size: 1, Dt: 0.01, Duration: 500.0,
			Current: 0.0, Record: []string{"V", "spike"},
		},
	},
}

func GetPreset(model, name string) *Config {
	byName, ok := Presets[model]
	if !ok {
		return nil
	}
	return byName[name]
}

func ListPresets(model string) []string {
	byName, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	return names
}
