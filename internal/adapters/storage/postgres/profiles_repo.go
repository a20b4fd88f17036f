package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"pet-adoption-service/internal/domain/profiles"
)

type ProfilesRepo struct {
	db *sql.DB
}

func NewProfilesRepo(db *sql.DB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

// Preferencias y favoritos van como jsonb: son listas chicas que siempre se
// leen/escriben enteras, no ameritan tablas propias.
func (r *ProfilesRepo) Get(ctx context.Context, userID string) (profiles.Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return profiles.Profile{}, profiles.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT user_id, preferences, favorites, created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`, userID)

	var p profiles.Profile
	var prefsRaw, favsRaw []byte

	if err := row.Scan(&p.UserID, &prefsRaw, &favsRaw, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return profiles.Profile{}, profiles.ErrNotFound
		}
		return profiles.Profile{}, err
	}

	if len(prefsRaw) > 0 {
		if err := json.Unmarshal(prefsRaw, &p.Preferences); err != nil {
			return profiles.Profile{}, err
		}
	}
	if len(favsRaw) > 0 {
		var favs []favoriteRow
		if err := json.Unmarshal(favsRaw, &favs); err != nil {
			return profiles.Profile{}, err
		}
		p.Favorites = make([]profiles.FavoriteEntry, 0, len(favs))
		for _, f := range favs {
			p.Favorites = append(p.Favorites, profiles.FavoriteEntry{
				PetID: f.PetID,
				Name:  f.Name,
				Image: f.Image,
			})
		}
	}

	return p, nil
}

func (r *ProfilesRepo) Upsert(ctx context.Context, p profiles.Profile) error {
	prefsRaw, err := json.Marshal(p.Preferences)
	if err != nil {
		return err
	}

	favs := make([]favoriteRow, 0, len(p.Favorites))
	for _, f := range p.Favorites {
		favs = append(favs, favoriteRow{PetID: f.PetID, Name: f.Name, Image: f.Image})
	}
	favsRaw, err := json.Marshal(favs)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO user_profiles (user_id, preferences, favorites, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET preferences = EXCLUDED.preferences,
		    favorites   = EXCLUDED.favorites,
		    updated_at  = EXCLUDED.updated_at
	`,
		p.UserID,
		prefsRaw,
		favsRaw,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

type favoriteRow struct {
	PetID string `json:"pet_id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}
