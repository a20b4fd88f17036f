// Package reconcile deriva el status efectivo de una mascota a partir de dos
// registros que se mutan por separado: la ficha (raw status) y las
// solicitudes de adopción que la referencian. Antes esta lógica vivía
// re-implementada en cada pantalla; acá hay UNA sola versión que todos los
// read-paths llaman.
package reconcile

import (
	"pet-adoption-service/internal/domain/applications"
	"pet-adoption-service/internal/domain/pets"
	"pet-adoption-service/internal/platform/logger"
)

type Reconciler struct {
	matchers []PetApplicationMatcher
	log      logger.Logger
}

// New arma el reconciler con la cadena de matching por defecto:
// pet_id primero, nombre como fallback legacy. log puede ser nil.
func New(log logger.Logger) *Reconciler {
	return &Reconciler{
		matchers: []PetApplicationMatcher{ByIDMatcher{}, ByNameMatcher{}},
		log:      log,
	}
}

// EffectiveStatus computa la disponibilidad efectiva. Puro y total:
// nunca falla, nunca muta sus argumentos. Prioridad (gana el primero):
//
//  1. alguna solicitud approved para esta mascota → adopted
//     (una aprobación pesa más que un raw status desactualizado)
//  2. raw status adopted → adopted
//  3. alguna solicitud viva (pending/verification) → pending
//  4. el raw status tal cual
//
// Un raw status malformado degrada a available con un warning: un read-path
// derivado jamás tumba una vista de listado.
func (r *Reconciler) EffectiveStatus(p pets.Pet, apps []applications.Application) pets.Status {
	anyApproved := false
	anyActive := false

	for _, a := range apps {
		if !r.references(p, a) {
			continue
		}
		switch {
		case a.Status == applications.StatusApproved:
			anyApproved = true
		case a.Status.IsActive():
			anyActive = true
		}
		// Status desconocidos o rejected no aportan señal.
	}

	if anyApproved {
		return pets.StatusAdopted
	}

	raw, ok := pets.ParseStatus(string(p.RawStatus))
	if !ok {
		if r.log != nil {
			r.log.Warn("pet with malformed raw status, defaulting to available", map[string]any{
				"pet_id":     p.ID,
				"raw_status": string(p.RawStatus),
			})
		}
		raw = pets.StatusAvailable
	}

	if raw == pets.StatusAdopted {
		return pets.StatusAdopted
	}
	if anyActive {
		return pets.StatusPending
	}
	return raw
}

func (r *Reconciler) references(p pets.Pet, a applications.Application) bool {
	for _, m := range r.matchers {
		if m.Matches(p, a) {
			return true
		}
	}
	return false
}
