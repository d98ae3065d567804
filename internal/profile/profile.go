package profile

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"Caudal/internal/auth"
	"Caudal/internal/calc/friction"
	"Caudal/internal/repo"
)

type ProfileHandler struct {
	Repo repo.Repository
}

// GetProfile returns the caller's profile, or another user's when an id
// path variable is present.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if idStr, ok := vars["id"]; ok && idStr != "" {
		targetID, err := strconv.Atoi(idStr)
		if err != nil {
			http.Error(w, "Invalid id", http.StatusBadRequest)
			return
		}
		prof, err := h.Repo.GetProfileByID(r.Context(), targetID)
		if err != nil {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(prof)
		return
	}

	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	prof, err := h.Repo.GetProfileByID(r.Context(), userID)
	if err != nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(prof)
}

// UpdatePreferences stores the caller's calculation defaults. Method
// must be a known correlation or empty; numeric defaults must not be
// negative (zero means "no preference").
func (h *ProfileHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var prefs repo.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	switch friction.Method(prefs.Method) {
	case "", friction.MethodBlasius, friction.MethodHaaland:
	default:
		http.Error(w, "Unknown correlation method", http.StatusBadRequest)
		return
	}
	if prefs.Rho < 0 || prefs.Mu < 0 || prefs.G < 0 || prefs.RoughnessM < 0 {
		http.Error(w, "Preferences must not be negative", http.StatusBadRequest)
		return
	}

	if err := h.Repo.UpdatePreferences(r.Context(), userID, prefs); err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
