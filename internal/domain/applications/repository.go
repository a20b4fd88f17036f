package applications

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("application not found")

type Repository interface {
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id string) (Application, error)
	List(ctx context.Context) ([]Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]Application, error)

	// Update persiste una transición con compare-and-swap sobre el status:
	// solo escribe si el status almacenado sigue siendo expected. Si otro
	// escritor ganó, devuelve ErrStaleTransition; si la fila no existe,
	// ErrNotFound.
	Update(ctx context.Context, a Application, expected Status) error

	Delete(ctx context.Context, id string) error
}
