package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-adoption-service/internal/domain/applications"
)

type applicationRepo struct {
	mu   sync.RWMutex
	byID map[string]applications.Application
}

func NewApplicationRepo() applications.Repository {
	return &applicationRepo{byID: make(map[string]applications.Application)}
}

func (r *applicationRepo) Create(ctx context.Context, a applications.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("application id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("application already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (applications.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return applications.Application{}, applications.ErrNotFound
	}
	return a, nil
}

func (r *applicationRepo) List(ctx context.Context) ([]applications.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]applications.Application, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	sortApplications(out)
	return out, nil
}

func (r *applicationRepo) ListByApplicant(ctx context.Context, applicantID string) ([]applications.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]applications.Application, 0)
	for _, a := range r.byID {
		if a.ApplicantID == applicantID {
			out = append(out, a)
		}
	}
	sortApplications(out)
	return out, nil
}

// Update hace el compare-and-swap sobre el status bajo el lock del repo:
// primer escritor gana, el segundo recibe ErrStaleTransition.
func (r *applicationRepo) Update(ctx context.Context, a applications.Application, expected applications.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[a.ID]
	if !ok {
		return applications.ErrNotFound
	}
	if current.Status != expected {
		return applications.ErrStaleTransition
	}
	r.byID[a.ID] = a
	return nil
}

func (r *applicationRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return applications.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// Orden de llegada por created_at asc: el sort por prioridad de la bandeja
// depende de este orden secundario estable.
func sortApplications(out []applications.Application) {
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
}
