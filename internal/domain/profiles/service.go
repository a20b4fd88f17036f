package profiles

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-adoption-service/internal/domain/matching"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Get devuelve el perfil, o uno vacío si el usuario todavía no guardó nada
// (el perfil se materializa recién en el primer write). Solo ErrNotFound
// degrada al perfil vacío: cualquier otro error de lectura se propaga, porque
// los writes parten de este perfil y un vacío espurio pisaría lo guardado.
func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Profile{}, ErrInvalidInput
	}

	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Profile{
				UserID:      userID,
				Preferences: []string{},
				Favorites:   []FavoriteEntry{},
			}, nil
		}
		return Profile{}, err
	}
	return p, nil
}

func (s *Service) GetPreferences(ctx context.Context, userID string) ([]string, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return p.Preferences, nil
}

// SetPreferences normaliza (trim, dedup) y reemplaza los tags completos.
// Tags fuera del vocabulario canónico se aceptan como texto libre (razas).
func (s *Service) SetPreferences(ctx context.Context, userID string, tags []string) (Profile, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	p.Preferences = matching.NormalizeTags(tags)
	return s.save(ctx, p)
}

func (s *Service) GetFavorites(ctx context.Context, userID string) ([]FavoriteEntry, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return p.Favorites, nil
}

// ToggleFavorite aplica el ledger puro y persiste el resultado.
func (s *Service) ToggleFavorite(ctx context.Context, userID string, entry FavoriteEntry) ([]FavoriteEntry, error) {
	entry.PetID = strings.TrimSpace(entry.PetID)
	if entry.PetID == "" {
		return nil, ErrInvalidInput
	}

	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	p.Favorites = Toggle(p.Favorites, entry)

	saved, err := s.save(ctx, p)
	if err != nil {
		return nil, err
	}
	return saved.Favorites, nil
}

func (s *Service) save(ctx context.Context, p Profile) (Profile, error) {
	now := s.now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	if err := s.repo.Upsert(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}
