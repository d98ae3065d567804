package fluid

import "fmt"

// Reference values for water at 20 °C and standard gravity.
const (
	RhoWater20C = 998.0    // kg/m³
	MuWater20C  = 1.002e-3 // Pa·s
	GDefault    = 9.81     // m/s²
)

// RoughnessHDPE is the typical absolute roughness of HDPE pipe (≈0.01 mm).
const RoughnessHDPE = 1.0e-5 // m

// Properties holds the fluid constants shared by every calculation in a
// run: density, dynamic viscosity and gravitational acceleration.
type Properties struct {
	Rho float64 `json:"rho"`
	Mu  float64 `json:"mu"`
	G   float64 `json:"g"`
}

// Water20C returns the default working fluid, water at 20 °C.
func Water20C() Properties {
	return Properties{Rho: RhoWater20C, Mu: MuWater20C, G: GDefault}
}

// ApplyDefaults fills zero-valued properties with water at 20 °C and
// standard gravity. Negative values are left as-is for the calculators
// to reject.
func ApplyDefaults(p Properties) Properties {
	if p.Rho == 0 {
		p.Rho = RhoWater20C
	}
	if p.Mu == 0 {
		p.Mu = MuWater20C
	}
	if p.G == 0 {
		p.G = GDefault
	}
	return p
}

var materialRoughness = map[string]float64{
	"HDPE": RoughnessHDPE,
}

// MaterialRoughness returns the absolute roughness [m] for a known pipe
// material.
func MaterialRoughness(material string) (float64, error) {
	eps, ok := materialRoughness[material]
	if !ok {
		return 0, fmt.Errorf("unknown pipe material: %s", material)
	}
	return eps, nil
}
