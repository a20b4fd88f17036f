package profiles

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pet-adoption-service/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/me/preferences", func(pr chi.Router) {
		pr.Get("/", getPreferencesHandler(svc))
		pr.Put("/", setPreferencesHandler(svc))
	})

	r.Route("/me/favorites", func(fr chi.Router) {
		fr.Get("/", getFavoritesHandler(svc))
		fr.Post("/toggle", toggleFavoriteHandler(svc))
	})
}

type setPreferencesRequest struct {
	Preferences []string `json:"preferences"`
}

type toggleFavoriteRequest struct {
	PetID string `json:"pet_id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type favoriteResponse struct {
	PetID string `json:"pet_id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

func getPreferencesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		tags, err := svc.GetPreferences(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string][]string{"preferences": tags})
	}
}

func setPreferencesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req setPreferencesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.SetPreferences(r.Context(), claims.UserID, req.Preferences)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string][]string{"preferences": p.Preferences})
	}
}

func getFavoritesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		favs, err := svc.GetFavorites(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toFavoriteResponses(favs))
	}
}

func toggleFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req toggleFavoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		favs, err := svc.ToggleFavorite(r.Context(), claims.UserID, FavoriteEntry{
			PetID: req.PetID,
			Name:  req.Name,
			Image: req.Image,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toFavoriteResponses(favs))
	}
}

func toFavoriteResponses(favs []FavoriteEntry) []favoriteResponse {
	out := make([]favoriteResponse, 0, len(favs))
	for _, f := range favs {
		out = append(out, favoriteResponse{PetID: f.PetID, Name: f.Name, Image: f.Image})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
