package neurons

import "github.com/san-kum/spikesim/internal/neuro"

// ApplyOverrides sets parameters by their conventional names. Unknown
// names fail at construction time, not during the run.
func (p *HHParams) ApplyOverrides(ov map[string]float64) error {
	for k, v := range ov {
		switch k {
		case "E_Na":
			p.ENa = v
		case "E_K":
			p.EK = v
		case "E_leak":
			p.ELeak = v
		case "g_Na":
			p.GNa = v
		case "g_K":
			p.GK = v
		case "g_leak":
			p.GLeak = v
		case "C":
			p.C = v
		case "V_th":
			p.VThreshold = v
		case "noise":
			p.Noise = v
		default:
			return neuro.Configf("hh", "unknown parameter %q", k)
		}
	}
	return nil
}

func (p *IzhikevichParams) ApplyOverrides(ov map[string]float64) error {
	for k, v := range ov {
		switch k {
		case "a":
			p.A = v
		case "b":
			p.B = v
		case "c":
			p.C = v
		case "d":
			p.D = v
		case "t_refractory":
			p.TRefractory = v
		case "V_th":
			p.VThreshold = v
		default:
			return neuro.Configf("izhikevich", "unknown parameter %q", k)
		}
	}
	return nil
}

func (p *HindmarshRoseParams) ApplyOverrides(ov map[string]float64) error {
	for k, v := range ov {
		switch k {
		case "a":
			p.A = v
		case "b":
			p.B = v
		case "c":
			p.C = v
		case "d":
			p.D = v
		case "r":
			p.R = v
		case "s":
			p.S = v
		case "V_rest":
			p.VRest = v
		case "V_th":
			p.VThreshold = v
		default:
			return neuro.Configf("hindmarshrose", "unknown parameter %q", k)
		}
	}
	return nil
}
