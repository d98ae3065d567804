package friction

import (
	"encoding/json"
	"net/http"
)

type Input struct {
	Reynolds   float64 `json:"reynolds"`
	DiameterM  float64 `json:"diameter_m"`
	RoughnessM float64 `json:"roughness_m"`
	Method     Method  `json:"method"`
}

type Result struct {
	Regime         Regime  `json:"regime"`
	FrictionFactor float64 `json:"friction_factor"`
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Method == "" {
		input.Method = MethodHaaland
	}
	f, err := FrictionFactor(input.Reynolds, input.DiameterM, input.RoughnessM, input.Method)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Result{
		Regime:         ClassifyRegime(input.Reynolds),
		FrictionFactor: f,
	})
}
