package sizing

import (
	"encoding/json"
	"net/http"

	"Caudal/internal/fluid"
)

type Handler struct{}

func (h *Handler) Diameter(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	input.Fluid = fluid.ApplyDefaults(input.Fluid)
	res, err := Diameter(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
