package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

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

type CreateInput struct {
	Name     string
	Species  string
	Breed    string
	Sex      string
	AgeYears int
	WeightKg *float64
	ImageURL string
}

// Create valida en el borde: enums y rangos numéricos se rechazan acá,
// nunca aguas abajo (reconcile/matching asumen fichas bien formadas).
func (s *Service) Create(ctx context.Context, fosterUserID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(fosterUserID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}

	species, ok := ParseSpecies(in.Species)
	if !ok {
		return Pet{}, ErrInvalidInput
	}
	sex, ok := ParseSex(in.Sex)
	if !ok {
		return Pet{}, ErrInvalidInput
	}
	if in.AgeYears < 0 {
		return Pet{}, ErrInvalidInput
	}
	if in.WeightKg != nil && *in.WeightKg <= 0 {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:           uuid.NewString(),
		FosterUserID: strings.TrimSpace(fosterUserID),
		Name:         strings.TrimSpace(in.Name),
		Species:      species,
		Breed:        strings.TrimSpace(in.Breed),
		Sex:          sex,
		AgeYears:     in.AgeYears,
		WeightKg:     in.WeightKg,
		RawStatus:    StatusAvailable,
		ImageURL:     strings.TrimSpace(in.ImageURL),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name      *string
	Breed     *string
	Sex       *string
	AgeYears  *int
	WeightKg  *float64
	ImageURL  *string
	RawStatus *string // solo ediciones explícitas de foster/admin
}

// Update aplica un PATCH sobre la ficha. Cambiar RawStatus por acá es la ÚNICA
// vía por la que el status crudo se mueve (available→pending→adopted o la
// reversa pending→available); nunca pasa implícitamente al crear aplicaciones.
func (s *Service) Update(ctx context.Context, petID string, in UpdateInput) (Pet, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return Pet{}, ErrInvalidInput
	}

	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, ErrNotFound
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Name = name
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Sex != nil {
		sex, ok := ParseSex(*in.Sex)
		if !ok {
			return Pet{}, ErrInvalidInput
		}
		p.Sex = sex
	}
	if in.AgeYears != nil {
		if *in.AgeYears < 0 {
			return Pet{}, ErrInvalidInput
		}
		p.AgeYears = *in.AgeYears
	}
	if in.WeightKg != nil {
		if *in.WeightKg <= 0 {
			return Pet{}, ErrInvalidInput
		}
		p.WeightKg = in.WeightKg
	}
	if in.ImageURL != nil {
		p.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
	if in.RawStatus != nil {
		st, ok := ParseStatus(*in.RawStatus)
		if !ok {
			return Pet{}, ErrInvalidInput
		}
		p.RawStatus = st
	}

	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// UpdateStatus es el atajo que usan las ediciones admin/foster de disponibilidad.
func (s *Service) UpdateStatus(ctx context.Context, petID, status string) (Pet, error) {
	return s.Update(ctx, petID, UpdateInput{RawStatus: &status})
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	p, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByFoster(ctx context.Context, fosterUserID string) ([]Pet, error) {
	fosterUserID = strings.TrimSpace(fosterUserID)
	if fosterUserID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByFoster(ctx, fosterUserID)
}
