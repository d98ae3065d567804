package sizing

import (
	"fmt"

	"Caudal/internal/calc/friction"
	"Caudal/internal/calc/pipe"
	"Caudal/internal/fluid"
)

// Inner diameters [m] of common HDPE PE100 PN10 sizes, ascending.
var standardDiametersM = []float64{
	0.0204, 0.0260, 0.0326, 0.0408, 0.0514, 0.0644, 0.0736,
	0.0902, 0.1022, 0.1302, 0.1636, 0.2046, 0.2578, 0.3270,
	0.4092, 0.5108,
}

type Input struct {
	QM3s       float64          `json:"q_m3s"`
	LengthM    float64          `json:"length_m"`
	RoughnessM float64          `json:"roughness_m"`
	MaxHfM     float64          `json:"max_hf_m"`
	Fluid      fluid.Properties `json:"fluid"`
	Method     friction.Method  `json:"method"`
}

type Result struct {
	DiameterM  float64 `json:"diameter_m"`
	VelocityMs float64 `json:"velocity_ms"`
	HfM        float64 `json:"hf_m"`
	DeltaPPa   float64 `json:"delta_p_pa"`
	Notes      string  `json:"notes"`
}

// Diameter picks the smallest standard inner diameter whose friction
// head loss over the given length stays within the target. Head loss
// decreases monotonically with diameter at fixed Q, so the first
// candidate that passes is the answer.
func Diameter(in Input) (Result, error) {
	if in.MaxHfM <= 0 {
		return Result{}, fmt.Errorf("%w: head loss target must be > 0", friction.ErrInvalidInput)
	}
	for _, d := range standardDiametersM {
		res, err := pipe.Calculate(pipe.Input{
			QM3s: in.QM3s,
			Segment: pipe.Segment{
				LengthM:    in.LengthM,
				DiameterM:  d,
				RoughnessM: in.RoughnessM,
			},
			Fluid:  in.Fluid,
			Method: in.Method,
		})
		if err != nil {
			return Result{}, err
		}
		if res.HfM <= in.MaxHfM {
			return Result{
				DiameterM:  d,
				VelocityMs: res.VelocityMs,
				HfM:        res.HfM,
				DeltaPPa:   res.DeltaPPa,
				Notes:      "Smallest standard HDPE inner diameter meeting the head-loss target.",
			}, nil
		}
	}
	return Result{}, fmt.Errorf("no standard diameter keeps head loss under %.4f m", in.MaxHfM)
}
