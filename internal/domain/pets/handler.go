package pets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-adoption-service/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// StatusDeriver evita importar el paquete views/reconcile (rompe ciclos).
// Devuelve el status efectivo por petID para el set dado.
type StatusDeriver interface {
	EffectiveStatuses(ctx context.Context, petList []Pet) (map[string]Status, error)
}

// RegisterRoutes usa rutas planas (no un subrouter montado) porque el GET
// de listado de /pets vive en el paquete views y comparte el prefijo.
func RegisterRoutes(r chi.Router, svc *Service, statuses StatusDeriver) {
	r.Post("/pets", createPetHandler(svc))

	// Ficha individual (lectura pública autenticada, con status efectivo)
	r.Get("/pets/{petID}", getPetHandler(svc, statuses))

	// Ediciones de ficha, incluido raw_status (solo el foster que listó)
	r.Patch("/pets/{petID}", updatePetHandler(svc))

	// Mascotas listadas por el foster actual
	r.Get("/me/pets", listMyPetsHandler(svc, statuses))
}

type createPetRequest struct {
	Name     string   `json:"name"`
	Species  string   `json:"species"`
	Breed    string   `json:"breed"`
	Sex      string   `json:"sex"`
	AgeYears int      `json:"age_years"`
	WeightKg *float64 `json:"weight_kg"`
	ImageURL string   `json:"image_url"`
}

type updatePetRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name      *string  `json:"name"`
	Breed     *string  `json:"breed"`
	Sex       *string  `json:"sex"`
	AgeYears  *int     `json:"age_years"`
	WeightKg  *float64 `json:"weight_kg"`
	ImageURL  *string  `json:"image_url"`
	RawStatus *string  `json:"raw_status"`
}

type petResponse struct {
	ID           string    `json:"id"`
	FosterUserID string    `json:"foster_user_id"`
	Name         string    `json:"name"`
	Species      Species   `json:"species"`
	Breed        string    `json:"breed"`
	Sex          Sex       `json:"sex"`
	AgeYears     int       `json:"age_years"`
	WeightKg     *float64  `json:"weight_kg,omitempty"`
	RawStatus    Status    `json:"raw_status"`
	Status       Status    `json:"status"` // efectivo, derivado en lectura
	ImageURL     string    `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:     req.Name,
			Species:  req.Species,
			Breed:    req.Breed,
			Sex:      req.Sex,
			AgeYears: req.AgeYears,
			WeightKg: req.WeightKg,
			ImageURL: req.ImageURL,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		// Recién creada: sin aplicaciones, efectivo == crudo.
		writeJSON(w, http.StatusCreated, toPetResponse(p, p.RawStatus))
	}
}

func getPetHandler(svc *Service, statuses StatusDeriver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		eff, err := statuses.EffectiveStatuses(r.Context(), []Pet{p})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p, eff[p.ID]))
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")

		current, err := svc.GetByID(r.Context(), petID)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		if current.FosterUserID != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var req updatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), petID, UpdateInput{
			Name:      req.Name,
			Breed:     req.Breed,
			Sex:       req.Sex,
			AgeYears:  req.AgeYears,
			WeightKg:  req.WeightKg,
			ImageURL:  req.ImageURL,
			RawStatus: req.RawStatus,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "pet not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		// El PATCH devuelve el crudo como efectivo; el caller relee el
		// listado si necesita la vista reconciliada.
		writeJSON(w, http.StatusOK, toPetResponse(updated, updated.RawStatus))
	}
}

func listMyPetsHandler(svc *Service, statuses StatusDeriver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByFoster(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		eff, err := statuses.EffectiveStatuses(r.Context(), items)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p, eff[p.ID]))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func toPetResponse(p Pet, effective Status) petResponse {
	return petResponse{
		ID:           p.ID,
		FosterUserID: p.FosterUserID,
		Name:         p.Name,
		Species:      p.Species,
		Breed:        p.Breed,
		Sex:          p.Sex,
		AgeYears:     p.AgeYears,
		WeightKg:     p.WeightKg,
		RawStatus:    p.RawStatus,
		Status:       effective,
		ImageURL:     p.ImageURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
