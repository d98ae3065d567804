package pipe

import (
	"fmt"
	"math"

	"Caudal/internal/calc/friction"
	"Caudal/internal/fluid"
)

// Segment is one straight circular pipe run. Value semantics; callers
// build one per request and discard it.
type Segment struct {
	Name       string  `json:"name,omitempty"`
	LengthM    float64 `json:"length_m"`
	DiameterM  float64 `json:"diameter_m"`
	RoughnessM float64 `json:"roughness_m"`
}

func (s Segment) Validate() error {
	if s.LengthM <= 0 {
		return fmt.Errorf("%w: segment length must be > 0", friction.ErrInvalidInput)
	}
	if s.DiameterM <= 0 {
		return fmt.Errorf("%w: segment diameter must be > 0", friction.ErrInvalidInput)
	}
	if s.RoughnessM < 0 {
		return fmt.Errorf("%w: segment roughness must be >= 0", friction.ErrInvalidInput)
	}
	return nil
}

// Area returns the internal cross-section area [m²] of a circular pipe.
func Area(diameterM float64) float64 {
	return math.Pi * diameterM * diameterM / 4.0
}

// FlowRate converts a mean velocity [m/s] in a pipe of the given
// diameter to a volumetric flow rate [m³/s].
func FlowRate(diameterM, velocityMs float64) float64 {
	return velocityMs * Area(diameterM)
}

// Reynolds computes Re = ρ·v·D/μ.
func Reynolds(velocityMs, diameterM, rho, mu float64) (float64, error) {
	if rho <= 0 {
		return 0, fmt.Errorf("%w: rho must be > 0", friction.ErrInvalidInput)
	}
	if mu <= 0 {
		return 0, fmt.Errorf("%w: mu must be > 0", friction.ErrInvalidInput)
	}
	if diameterM <= 0 {
		return 0, fmt.Errorf("%w: diameter must be > 0", friction.ErrInvalidInput)
	}
	return rho * velocityMs * diameterM / mu, nil
}

type Input struct {
	QM3s    float64          `json:"q_m3s"`
	Segment Segment          `json:"segment"`
	Fluid   fluid.Properties `json:"fluid"`
	Method  friction.Method  `json:"method"`
}

type Result struct {
	AreaM2         float64         `json:"area_m2"`
	VelocityMs     float64         `json:"velocity_ms"`
	Reynolds       float64         `json:"reynolds"`
	Regime         friction.Regime `json:"regime"`
	FrictionFactor float64         `json:"friction_factor"`
	HfM            float64         `json:"hf_m"`
	DeltaPPa       float64         `json:"delta_p_pa"`
	DeltaPBar      float64         `json:"delta_p_bar"`
}

// Calculate computes the Darcy–Weisbach friction head loss for a single
// segment at the given flow rate. Pure; the result is a fresh value.
func Calculate(in Input) (Result, error) {
	if in.QM3s <= 0 {
		return Result{}, fmt.Errorf("%w: flow rate must be > 0", friction.ErrInvalidInput)
	}
	if in.Fluid.Rho <= 0 {
		return Result{}, fmt.Errorf("%w: rho must be > 0", friction.ErrInvalidInput)
	}
	if in.Fluid.Mu <= 0 {
		return Result{}, fmt.Errorf("%w: mu must be > 0", friction.ErrInvalidInput)
	}
	if in.Fluid.G <= 0 {
		return Result{}, fmt.Errorf("%w: g must be > 0", friction.ErrInvalidInput)
	}
	if err := in.Segment.Validate(); err != nil {
		return Result{}, err
	}
	if in.Method == "" {
		in.Method = friction.MethodHaaland
	}

	area := Area(in.Segment.DiameterM)
	// Unreachable for a valid segment, but the division demands it.
	if area <= 0 {
		return Result{}, fmt.Errorf("%w: area must be > 0", friction.ErrInvalidInput)
	}
	velocity := in.QM3s / area

	re, err := Reynolds(velocity, in.Segment.DiameterM, in.Fluid.Rho, in.Fluid.Mu)
	if err != nil {
		return Result{}, err
	}
	f, err := friction.FrictionFactor(re, in.Segment.DiameterM, in.Segment.RoughnessM, in.Method)
	if err != nil {
		return Result{}, err
	}

	headVelocity := velocity * velocity / (2.0 * in.Fluid.G)
	hf := f * (in.Segment.LengthM / in.Segment.DiameterM) * headVelocity
	deltaPPa := in.Fluid.Rho * in.Fluid.G * hf

	return Result{
		AreaM2:         area,
		VelocityMs:     velocity,
		Reynolds:       re,
		Regime:         friction.ClassifyRegime(re),
		FrictionFactor: f,
		HfM:            hf,
		DeltaPPa:       deltaPPa,
		DeltaPBar:      deltaPPa / 1.0e5,
	}, nil
}

type SeriesInput struct {
	QM3s     float64          `json:"q_m3s"`
	Segments []Segment        `json:"segments"`
	Fluid    fluid.Properties `json:"fluid"`
	Method   friction.Method  `json:"method"`
}

// SegmentResult is one segment's geometry together with its computed
// losses, in the order the segments were given.
type SegmentResult struct {
	Segment
	Result
}

type SeriesResult struct {
	Segments       []SegmentResult `json:"segments_results"`
	HfTotalM       float64         `json:"hf_total_m"`
	DeltaPTotalPa  float64         `json:"delta_p_total_pa"`
	DeltaPTotalBar float64         `json:"delta_p_total_bar"`
}

// CalculateSeries applies Calculate to every segment in order with the
// same flow rate and sums the losses. The bar total is derived from the
// Pa total rather than summed per segment.
func CalculateSeries(in SeriesInput) (SeriesResult, error) {
	if len(in.Segments) == 0 {
		return SeriesResult{}, fmt.Errorf("%w: at least one segment is required", friction.ErrInvalidInput)
	}

	out := SeriesResult{Segments: make([]SegmentResult, 0, len(in.Segments))}
	for _, seg := range in.Segments {
		res, err := Calculate(Input{
			QM3s:    in.QM3s,
			Segment: seg,
			Fluid:   in.Fluid,
			Method:  in.Method,
		})
		if err != nil {
			return SeriesResult{}, err
		}
		out.Segments = append(out.Segments, SegmentResult{Segment: seg, Result: res})
		out.HfTotalM += res.HfM
		out.DeltaPTotalPa += res.DeltaPPa
	}
	out.DeltaPTotalBar = out.DeltaPTotalPa / 1.0e5
	return out, nil
}
