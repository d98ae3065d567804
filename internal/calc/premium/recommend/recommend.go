package recommend

import (
	"fmt"

	"Caudal/internal/calc/friction"
	"Caudal/internal/calc/pipe"
	"Caudal/internal/fluid"
)

type CorrelationInput struct {
	Reynolds float64 `json:"reynolds"`
	// Alternative to Reynolds: reference diameter and velocity, from
	// which Re is derived with the given (or default) fluid.
	DiameterM  float64          `json:"diameter_m"`
	VelocityMs float64          `json:"velocity_ms"`
	Fluid      fluid.Properties `json:"fluid"`
}

type CorrelationResult struct {
	Reynolds float64         `json:"reynolds"`
	Regime   friction.Regime `json:"regime"`
	Method   friction.Method `json:"method"`
	Notes    string          `json:"notes"`
}

// Correlation suggests the turbulent correlation for a reference
// Reynolds number: Blasius inside its classic smooth-pipe range
// (turbulent, Re <= 1e5), Haaland everywhere else.
func Correlation(in CorrelationInput) (CorrelationResult, error) {
	re := in.Reynolds
	if re == 0 && in.DiameterM > 0 && in.VelocityMs > 0 {
		p := fluid.ApplyDefaults(in.Fluid)
		var err error
		re, err = pipe.Reynolds(in.VelocityMs, in.DiameterM, p.Rho, p.Mu)
		if err != nil {
			return CorrelationResult{}, err
		}
	}
	if re <= 0 {
		return CorrelationResult{}, fmt.Errorf("%w: reynolds number must be > 0", friction.ErrInvalidInput)
	}

	regime := friction.ClassifyRegime(re)
	if regime == friction.RegimeTurbulent && re <= friction.BlasiusReMax {
		return CorrelationResult{
			Reynolds: re,
			Regime:   regime,
			Method:   friction.MethodBlasius,
			Notes:    "Smooth pipe in the classic Blasius validity range.",
		}, nil
	}
	return CorrelationResult{
		Reynolds: re,
		Regime:   regime,
		Method:   friction.MethodHaaland,
		Notes:    "Haaland covers rough and smooth pipes at any turbulent Re.",
	}, nil
}
