package applications

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-adoption-service/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes usa rutas planas: el GET de la bandeja de /applications
// vive en el paquete views y comparte el prefijo.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/applications", createApplicationHandler(svc))

	// Transiciones del workflow (admin/foster)
	r.Post("/applications/{applicationID}/verification", requestVerificationHandler(svc))
	r.Post("/applications/{applicationID}/approve", approveHandler(svc))
	r.Post("/applications/{applicationID}/reject", rejectHandler(svc))

	// Retiro por el applicant (solo pending)
	r.Delete("/applications/{applicationID}", withdrawHandler(svc))

	// GET /applications y /me/applications viven en views: son read-models.
}

type createApplicationRequest struct {
	PetID         string `json:"pet_id"`
	PetName       string `json:"pet_name"` // legacy: solo si no hay pet_id
	ApplicantName string `json:"applicant_name"`
	Email         string `json:"email"`
}

type decisionRequest struct {
	Notes string `json:"notes"`
}

type applicationResponse struct {
	ID                string    `json:"id"`
	PetID             string    `json:"pet_id,omitempty"`
	PetName           string    `json:"pet_name"`
	ApplicantID       string    `json:"applicant_id"`
	ApplicantName     string    `json:"applicant_name"`
	Email             string    `json:"email,omitempty"`
	Status            Status    `json:"status"`
	VerificationNotes string    `json:"verification_notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func createApplicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createApplicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			PetID:         req.PetID,
			PetName:       req.PetName,
			ApplicantName: req.ApplicantName,
			Email:         req.Email,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrDuplicateActive):
				http.Error(w, err.Error(), http.StatusConflict)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toApplicationResponse(a))
	}
}

func requestVerificationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		a, err := svc.RequestVerification(r.Context(), chi.URLParam(r, "applicationID"))
		if err != nil {
			writeTransitionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toApplicationResponse(a))
	}
}

func approveHandler(svc *Service) http.HandlerFunc {
	return decisionHandler(func(r *http.Request, id, notes string) (Application, error) {
		return svc.Approve(r.Context(), id, notes)
	})
}

func rejectHandler(svc *Service) http.HandlerFunc {
	return decisionHandler(func(r *http.Request, id, notes string) (Application, error) {
		return svc.Reject(r.Context(), id, notes)
	})
}

func decisionHandler(decide func(r *http.Request, id, notes string) (Application, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req decisionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := decide(r, chi.URLParam(r, "applicationID"), req.Notes)
		if err != nil {
			writeTransitionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toApplicationResponse(a))
	}
}

func withdrawHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		err := svc.Withdraw(r.Context(), chi.URLParam(r, "applicationID"), claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "application not found", http.StatusNotFound)
			case errors.Is(err, ErrForbidden):
				http.Error(w, "forbidden", http.StatusForbidden)
			case errors.Is(err, ErrWithdrawalNotAllowed):
				http.Error(w, err.Error(), http.StatusConflict)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeTransitionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "application not found", http.StatusNotFound)
	case errors.Is(err, ErrMissingEvidence):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrStaleTransition):
		// El caller refresca y decide de nuevo.
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toApplicationResponse(a Application) applicationResponse {
	return applicationResponse{
		ID:                a.ID,
		PetID:             a.PetID,
		PetName:           a.PetName,
		ApplicantID:       a.ApplicantID,
		ApplicantName:     a.ApplicantName,
		Email:             a.Email,
		Status:            a.Status,
		VerificationNotes: a.VerificationNotes,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
