package views

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pet-adoption-service/internal/domain/applications"
	"pet-adoption-service/internal/domain/matching"
	"pet-adoption-service/internal/domain/pets"
	"pet-adoption-service/internal/domain/profiles"
	"pet-adoption-service/internal/domain/reconcile"
	"pet-adoption-service/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// Services agrupa las dependencias de los read-models; el handler de views
// solo lee, nunca muta.
type Services struct {
	Pets     *pets.Service
	Apps     *applications.Service
	Profiles *profiles.Service
	Rec      *reconcile.Reconciler
}

func RegisterRoutes(r chi.Router, s Services) {
	// Listado principal de adopción (status efectivo + match de preferencias)
	r.Get("/pets", listPetsHandler(s))

	// Contadores del dashboard de inventario
	r.Get("/pets/stats", statsHandler(s))

	// Bandeja de solicitudes ordenada por prioridad
	r.Get("/applications", listRequestsHandler(s))

	// Solicitudes del usuario actual
	r.Get("/me/applications", listMyApplicationsHandler(s))
}

type petListItem struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Species   pets.Species `json:"species"`
	Breed     string       `json:"breed"`
	Sex       pets.Sex     `json:"sex"`
	AgeYears  int          `json:"age_years"`
	WeightKg  *float64     `json:"weight_kg,omitempty"`
	Status    pets.Status  `json:"status"` // efectivo
	ImageURL  string       `json:"image_url,omitempty"`
	IsMatch   bool         `json:"is_match"` // resaltado "soulmate"
	CreatedAt time.Time    `json:"created_at"`
}

type statsResponse struct {
	Total     int            `json:"total"`
	BySpecies map[string]int `json:"by_species"`
	ByStatus  map[string]int `json:"by_status"`
}

type requestListItem struct {
	ID                string              `json:"id"`
	PetID             string              `json:"pet_id,omitempty"`
	PetName           string              `json:"pet_name"`
	ApplicantName     string              `json:"applicant_name"`
	Email             string              `json:"email,omitempty"`
	Status            applications.Status `json:"status"`
	VerificationNotes string              `json:"verification_notes,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
}

func listPetsHandler(s Services) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petList, err := s.Pets.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		apps, err := s.Apps.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// Preferencias del usuario actual para el resaltado.
		// Si el perfil no carga, degradamos a sin-match: el listado no se cae.
		prefs, err := s.Profiles.GetPreferences(r.Context(), claims.UserID)
		if err != nil {
			prefs = nil
		}

		if r.URL.Query().Get("status") == string(pets.StatusAvailable) {
			petList = AvailablePets(s.Rec, petList, apps)
		}
		if r.URL.Query().Get("match") == "true" {
			petList = MatchingPets(petList, prefs)
		}

		out := make([]petListItem, 0, len(petList))
		for _, p := range petList {
			out = append(out, toPetListItem(p, s.Rec.EffectiveStatus(p, apps), prefs))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func statsHandler(s Services) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petList, err := s.Pets.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		apps, err := s.Apps.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		st := Stats(s.Rec, petList, apps)

		resp := statsResponse{
			Total:     st.Total,
			BySpecies: make(map[string]int, len(st.BySpecies)),
			ByStatus:  make(map[string]int, len(st.ByStatus)),
		}
		for k, v := range st.BySpecies {
			resp.BySpecies[string(k)] = v
		}
		for k, v := range st.ByStatus {
			resp.ByStatus[string(k)] = v
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func listRequestsHandler(s Services) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		apps, err := s.Apps.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		sorted := RequestsSortedByPriority(apps)

		out := make([]requestListItem, 0, len(sorted))
		for _, a := range sorted {
			out = append(out, requestListItem{
				ID:                a.ID,
				PetID:             a.PetID,
				PetName:           a.PetName,
				ApplicantName:     a.ApplicantName,
				Email:             a.Email,
				Status:            a.Status,
				VerificationNotes: a.VerificationNotes,
				CreatedAt:         a.CreatedAt,
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func listMyApplicationsHandler(s Services) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		apps, err := s.Apps.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		mine := ApplicationsForUser(apps, claims.UserID)

		out := make([]requestListItem, 0, len(mine))
		for _, a := range mine {
			out = append(out, requestListItem{
				ID:                a.ID,
				PetID:             a.PetID,
				PetName:           a.PetName,
				ApplicantName:     a.ApplicantName,
				Email:             a.Email,
				Status:            a.Status,
				VerificationNotes: a.VerificationNotes,
				CreatedAt:         a.CreatedAt,
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func toPetListItem(p pets.Pet, eff pets.Status, prefs []string) petListItem {
	return petListItem{
		ID:        p.ID,
		Name:      p.Name,
		Species:   p.Species,
		Breed:     p.Breed,
		Sex:       p.Sex,
		AgeYears:  p.AgeYears,
		WeightKg:  p.WeightKg,
		Status:    eff,
		ImageURL:  p.ImageURL,
		IsMatch:   matching.Matches(p, prefs),
		CreatedAt: p.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
