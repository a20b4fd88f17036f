package views

import (
	"context"

	"pet-adoption-service/internal/domain/applications"
	"pet-adoption-service/internal/domain/pets"
	"pet-adoption-service/internal/domain/reconcile"
)

// ApplicationLister es lo mínimo que necesitamos del módulo applications.
type ApplicationLister interface {
	List(ctx context.Context) ([]applications.Application, error)
}

// StatusService implementa pets.StatusDeriver: trae el snapshot de
// solicitudes una vez y reconcilia cada ficha contra él.
type StatusService struct {
	apps ApplicationLister
	rec  *reconcile.Reconciler
}

func NewStatusService(apps ApplicationLister, rec *reconcile.Reconciler) *StatusService {
	return &StatusService{apps: apps, rec: rec}
}

func (s *StatusService) EffectiveStatuses(ctx context.Context, petList []pets.Pet) (map[string]pets.Status, error) {
	apps, err := s.apps.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]pets.Status, len(petList))
	for _, p := range petList {
		out[p.ID] = s.rec.EffectiveStatus(p, apps)
	}
	return out, nil
}
