package applications

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")

	// ErrDuplicateActive: ya existe una solicitud viva para ese (pet, applicant).
	ErrDuplicateActive = errors.New("active application already exists")
)

// PetNameLookup evita importar el paquete pets (rompe ciclos).
// Se usa para snapshotear pet_name al crear.
type PetNameLookup interface {
	NameOf(ctx context.Context, petID string) (string, error)
}

type Service struct {
	repo     Repository
	petNames PetNameLookup // puede ser nil (filas legacy solo con pet_name)
	now      func() time.Time
}

func NewService(repo Repository, petNames PetNameLookup) *Service {
	return &Service{
		repo:     repo,
		petNames: petNames,
		now:      time.Now,
	}
}

type CreateInput struct {
	PetID         string
	PetName       string // opcional si PetID viene; se snapshotea desde la ficha
	ApplicantName string
	Email         string
}

// Create registra una solicitud nueva (status=pending, notas vacías).
// Hace cumplir el invariante de UNA sola solicitud activa por (pet, applicant);
// las rechazadas históricas no estorban.
func (s *Service) Create(ctx context.Context, applicantID string, in CreateInput) (Application, error) {
	applicantID = strings.TrimSpace(applicantID)
	petID := strings.TrimSpace(in.PetID)
	petName := strings.TrimSpace(in.PetName)

	if applicantID == "" || strings.TrimSpace(in.ApplicantName) == "" {
		return Application{}, ErrInvalidInput
	}
	if petID == "" && petName == "" {
		return Application{}, ErrInvalidInput
	}

	if petID != "" && s.petNames != nil {
		name, err := s.petNames.NameOf(ctx, petID)
		if err != nil {
			return Application{}, ErrInvalidInput
		}
		petName = name
	}

	existing, err := s.repo.ListByApplicant(ctx, applicantID)
	if err != nil {
		return Application{}, err
	}
	for _, a := range existing {
		if a.PetID == petID && petID != "" && a.Status.IsActive() {
			return Application{}, ErrDuplicateActive
		}
	}

	now := s.now()
	a := Application{
		ID:            uuid.NewString(),
		PetID:         petID,
		PetName:       petName,
		ApplicantID:   applicantID,
		ApplicantName: strings.TrimSpace(in.ApplicantName),
		Email:         strings.TrimSpace(in.Email),
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Application{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Application, error) {
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}

func (s *Service) List(ctx context.Context) ([]Application, error) {
	return s.repo.List(ctx)
}

// RequestVerification mueve la solicitud a verification.
func (s *Service) RequestVerification(ctx context.Context, id string) (Application, error) {
	return s.transition(ctx, id, StatusVerification, "")
}

// Approve cierra la solicitud como aprobada (exige notas).
func (s *Service) Approve(ctx context.Context, id, notes string) (Application, error) {
	return s.transition(ctx, id, StatusApproved, notes)
}

// Reject cierra la solicitud como rechazada.
func (s *Service) Reject(ctx context.Context, id, notes string) (Application, error) {
	return s.transition(ctx, id, StatusRejected, notes)
}

// transition lee, aplica el workflow puro y persiste con CAS sobre el status
// observado: si dos admins deciden a la vez, gana el primero y el segundo
// recibe ErrStaleTransition.
func (s *Service) transition(ctx context.Context, id string, to Status, notes string) (Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Application{}, ErrInvalidInput
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Application{}, ErrNotFound
	}

	updated, err := Transition(a, to, notes, s.now())
	if err != nil {
		return Application{}, err
	}

	if err := s.repo.Update(ctx, updated, a.Status); err != nil {
		return Application{}, err
	}
	return updated, nil
}

// Withdraw borra la solicitud propia, solo mientras siga en pending.
func (s *Service) Withdraw(ctx context.Context, id, applicantID string) error {
	id = strings.TrimSpace(id)
	applicantID = strings.TrimSpace(applicantID)
	if id == "" || applicantID == "" {
		return ErrInvalidInput
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	if a.ApplicantID != applicantID {
		return ErrForbidden
	}
	if err := CanWithdraw(a); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
