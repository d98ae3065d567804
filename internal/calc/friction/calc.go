package friction

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput marks a precondition violation in the hydraulic core.
// Every validation failure wraps it together with the offending
// quantity, so callers can match with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Method selects the turbulent-regime correlation.
type Method string

const (
	MethodBlasius Method = "blasius"
	MethodHaaland Method = "haaland"
)

// Regime is the flow regime derived from the Reynolds number.
type Regime string

const (
	RegimeLaminar      Regime = "laminar"
	RegimeTransitional Regime = "transitional"
	RegimeTurbulent    Regime = "turbulent"
)

// Regime thresholds on the Reynolds number.
const (
	ReLaminarMax   = 2000.0
	ReTurbulentMin = 4000.0
)

// BlasiusReMax is the upper end of the classic Blasius validity range.
// It is not enforced by FrictionFactor; callers decide.
const BlasiusReMax = 1.0e5

// ClassifyRegime maps a Reynolds number to its flow regime. The
// thresholds are identical to the dispatch in FrictionFactor so the two
// never disagree.
func ClassifyRegime(re float64) Regime {
	switch {
	case re < ReLaminarMax:
		return RegimeLaminar
	case re <= ReTurbulentMin:
		return RegimeTransitional
	default:
		return RegimeTurbulent
	}
}

// Laminar returns the Darcy friction factor for laminar flow, f = 64/Re.
func Laminar(re float64) (float64, error) {
	if re <= 0 {
		return 0, fmt.Errorf("%w: reynolds number must be > 0", ErrInvalidInput)
	}
	return 64.0 / re, nil
}

// Blasius returns the smooth-pipe turbulent friction factor,
// f = 0.3164·Re^-0.25, valid roughly for 4e3 < Re < 1e5.
func Blasius(re float64) (float64, error) {
	if re <= 0 {
		return 0, fmt.Errorf("%w: reynolds number must be > 0", ErrInvalidInput)
	}
	return 0.3164 * math.Pow(re, -0.25), nil
}

// Haaland returns the turbulent friction factor from the explicit
// Haaland equation:
//
//	1/sqrt(f) = -1.8 · log10( ((ε/D)/3.7)^1.11 + 6.9/Re )
func Haaland(re, diameterM, roughnessM float64) (float64, error) {
	if re <= 0 {
		return 0, fmt.Errorf("%w: reynolds number must be > 0", ErrInvalidInput)
	}
	if diameterM <= 0 {
		return 0, fmt.Errorf("%w: diameter must be > 0", ErrInvalidInput)
	}
	if roughnessM < 0 {
		return 0, fmt.Errorf("%w: roughness must be >= 0", ErrInvalidInput)
	}

	relRoughness := roughnessM / diameterM
	term := math.Pow(relRoughness/3.7, 1.11) + 6.9/re
	// Cannot go non-positive for valid inputs, but the log demands it.
	if term <= 0 {
		return 0, fmt.Errorf("%w: haaland log argument must be > 0", ErrInvalidInput)
	}

	invSqrtF := -1.8 * math.Log10(term)
	return 1.0 / (invSqrtF * invSqrtF), nil
}

// FrictionFactor computes the Darcy–Weisbach friction factor for the
// regime implied by Re:
//
//   - Re < 2000: laminar, 64/Re, method-independent
//   - Re > 4000: turbulent, dispatched on method
//   - 2000 <= Re <= 4000: linear blend between the laminar factor at
//     the actual Re and the turbulent factor at Re = 4000
//
// The transitional blend only guarantees continuity across the band,
// not transitional-flow physics. The laminar endpoint tracks the actual
// Re while the turbulent endpoint is pinned at 4000; that asymmetry is
// kept as-is because changing it would shift results.
func FrictionFactor(re, diameterM, roughnessM float64, method Method) (float64, error) {
	if re <= 0 {
		return 0, fmt.Errorf("%w: reynolds number must be > 0", ErrInvalidInput)
	}

	if re < ReLaminarMax {
		return Laminar(re)
	}

	if re > ReTurbulentMin {
		return turbulent(re, diameterM, roughnessM, method)
	}

	fLam, err := Laminar(re)
	if err != nil {
		return 0, err
	}
	fTurb, err := turbulent(ReTurbulentMin, diameterM, roughnessM, method)
	if err != nil {
		return 0, err
	}
	w := (re - ReLaminarMax) / (ReTurbulentMin - ReLaminarMax)
	return (1.0-w)*fLam + w*fTurb, nil
}

func turbulent(re, diameterM, roughnessM float64, method Method) (float64, error) {
	switch method {
	case MethodBlasius:
		return Blasius(re)
	case MethodHaaland:
		return Haaland(re, diameterM, roughnessM)
	default:
		return 0, fmt.Errorf("%w: unknown correlation method: %s", ErrInvalidInput, method)
	}
}
