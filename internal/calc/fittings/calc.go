package fittings

import (
	"fmt"

	"Caudal/internal/calc/friction"
	"Caudal/internal/calc/pipe"
	"Caudal/internal/fluid"
)

// Elbow is one entry of the fixed local-loss table.
type Elbow struct {
	Code  string  `json:"code"`
	K     float64 `json:"k"`
	Label string  `json:"label"`
}

// K coefficients per the reference table: SR ≈ 1D, LR ≈ 1.5D.
var elbows = []Elbow{
	{Code: "elbow_90_SR", K: 0.75, Label: "90° elbow, short radius (≈1D)"},
	{Code: "elbow_90_LR", K: 0.25, Label: "90° elbow, long radius (≈1.5D)"},
	{Code: "elbow_45_SR", K: 0.35, Label: "45° elbow, short radius (≈1D)"},
	{Code: "elbow_45_LR", K: 0.20, Label: "45° elbow, long radius (≈1.5D)"},
}

// List returns the elbow table in its reference order.
func List() []Elbow {
	out := make([]Elbow, len(elbows))
	copy(out, elbows)
	return out
}

func lookup(code string) (Elbow, error) {
	for _, e := range elbows {
		if e.Code == code {
			return e, nil
		}
	}
	return Elbow{}, fmt.Errorf("%w: unknown elbow code: %s", friction.ErrInvalidInput, code)
}

// ElbowK returns the K coefficient for an elbow code.
func ElbowK(code string) (float64, error) {
	e, err := lookup(code)
	if err != nil {
		return 0, err
	}
	return e.K, nil
}

// ElbowLabel returns the display label for an elbow code.
func ElbowLabel(code string) (string, error) {
	e, err := lookup(code)
	if err != nil {
		return "", err
	}
	return e.Label, nil
}

// Input describes a straight run split by one elbow: L1 of pipe, the
// elbow, then L2, all at the same diameter and roughness.
type Input struct {
	QM3s       float64          `json:"q_m3s"`
	DiameterM  float64          `json:"diameter_m"`
	Length1M   float64          `json:"length_1_m"`
	Length2M   float64          `json:"length_2_m"`
	RoughnessM float64          `json:"roughness_m"`
	ElbowCode  string           `json:"elbow_code"`
	Fluid      fluid.Properties `json:"fluid"`
	Method     friction.Method  `json:"method"`
}

// ElbowLoss is the localized loss contributed by the fitting alone.
type ElbowLoss struct {
	Code      string  `json:"code"`
	Label     string  `json:"label"`
	K         float64 `json:"k"`
	HfM       float64 `json:"hf_m"`
	DeltaPPa  float64 `json:"delta_p_pa"`
	DeltaPBar float64 `json:"delta_p_bar"`
}

type Result struct {
	Friction       pipe.Result `json:"friction"`
	Elbow          ElbowLoss   `json:"elbow"`
	HfTotalM       float64     `json:"hf_total_m"`
	DeltaPTotalPa  float64     `json:"delta_p_total_pa"`
	DeltaPTotalBar float64     `json:"delta_p_total_bar"`
}

// Calculate combines the friction loss of the full-length equivalent
// straight run (L1+L2) with the elbow's local loss K·v²/(2g). The two
// are additive; the friction factor itself is never modified by the
// fitting.
func Calculate(in Input) (Result, error) {
	if in.Length1M <= 0 {
		return Result{}, fmt.Errorf("%w: length before the elbow must be > 0", friction.ErrInvalidInput)
	}
	if in.Length2M <= 0 {
		return Result{}, fmt.Errorf("%w: length after the elbow must be > 0", friction.ErrInvalidInput)
	}
	elbow, err := lookup(in.ElbowCode)
	if err != nil {
		return Result{}, err
	}

	fric, err := pipe.Calculate(pipe.Input{
		QM3s: in.QM3s,
		Segment: pipe.Segment{
			Name:       fmt.Sprintf("pipe with %s", elbow.Label),
			LengthM:    in.Length1M + in.Length2M,
			DiameterM:  in.DiameterM,
			RoughnessM: in.RoughnessM,
		},
		Fluid:  in.Fluid,
		Method: in.Method,
	})
	if err != nil {
		return Result{}, err
	}

	// Same flow rate and diameter, so the elbow sees the velocity
	// already computed for the straight run.
	headVelocity := fric.VelocityMs * fric.VelocityMs / (2.0 * in.Fluid.G)
	hfElbow := elbow.K * headVelocity
	dpElbowPa := in.Fluid.Rho * in.Fluid.G * hfElbow

	dpTotalPa := fric.DeltaPPa + dpElbowPa
	return Result{
		Friction: fric,
		Elbow: ElbowLoss{
			Code:      elbow.Code,
			Label:     elbow.Label,
			K:         elbow.K,
			HfM:       hfElbow,
			DeltaPPa:  dpElbowPa,
			DeltaPBar: dpElbowPa / 1.0e5,
		},
		HfTotalM:       fric.HfM + hfElbow,
		DeltaPTotalPa:  dpTotalPa,
		DeltaPTotalBar: dpTotalPa / 1.0e5,
	}, nil
}
