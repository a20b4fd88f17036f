// Package views compone los read-models de cada pantalla sobre el
// reconciler, el matcher y los listados crudos. No tiene estado propio:
// funciones planas sobre snapshots que trae el caller.
package views

import (
	"sort"

	"pet-adoption-service/internal/domain/applications"
	"pet-adoption-service/internal/domain/matching"
	"pet-adoption-service/internal/domain/pets"
	"pet-adoption-service/internal/domain/reconcile"
)

// AvailablePets filtra las mascotas cuyo status EFECTIVO es available.
func AvailablePets(r *reconcile.Reconciler, petList []pets.Pet, apps []applications.Application) []pets.Pet {
	out := make([]pets.Pet, 0, len(petList))
	for _, p := range petList {
		if r.EffectiveStatus(p, apps) == pets.StatusAvailable {
			out = append(out, p)
		}
	}
	return out
}

// statusPriority: el orden en que un admin quiere trabajar la bandeja.
// Valores desconocidos van al final.
var statusPriority = map[applications.Status]int{
	applications.StatusPending:      1,
	applications.StatusVerification: 2,
	applications.StatusApproved:     3,
	applications.StatusRejected:     4,
}

func priorityOf(s applications.Status) int {
	if p, ok := statusPriority[s]; ok {
		return p
	}
	return len(statusPriority) + 1
}

// RequestsSortedByPriority ordena la bandeja de solicitudes:
// pending < verification < approved < rejected. El sort DEBE ser estable:
// los empates conservan el orden de llegada. Devuelve una copia.
func RequestsSortedByPriority(apps []applications.Application) []applications.Application {
	out := make([]applications.Application, len(apps))
	copy(out, apps)

	sort.SliceStable(out, func(i, j int) bool {
		return priorityOf(out[i].Status) < priorityOf(out[j].Status)
	})
	return out
}

// ApplicationsForUser filtra por applicant explícito; el userID SIEMPRE
// viene por parámetro, nunca de estado ambiente de sesión.
func ApplicationsForUser(apps []applications.Application, applicantID string) []applications.Application {
	out := make([]applications.Application, 0)
	for _, a := range apps {
		if a.ApplicantID == applicantID {
			out = append(out, a)
		}
	}
	return out
}

// MatchingPets filtra las mascotas que calzan con los tags de preferencia.
func MatchingPets(petList []pets.Pet, preferenceTags []string) []pets.Pet {
	out := make([]pets.Pet, 0, len(petList))
	for _, p := range petList {
		if matching.Matches(p, preferenceTags) {
			out = append(out, p)
		}
	}
	return out
}

// InventoryStats son los contadores del dashboard de inventario.
type InventoryStats struct {
	Total     int
	BySpecies map[pets.Species]int
	ByStatus  map[pets.Status]int
}

// Stats cuenta por especie y por status EFECTIVO (no el crudo: el dashboard
// debe coincidir con lo que ven las demás pantallas).
func Stats(r *reconcile.Reconciler, petList []pets.Pet, apps []applications.Application) InventoryStats {
	st := InventoryStats{
		Total:     len(petList),
		BySpecies: make(map[pets.Species]int),
		ByStatus:  make(map[pets.Status]int),
	}
	for _, p := range petList {
		st.BySpecies[p.Species]++
		st.ByStatus[r.EffectiveStatus(p, apps)]++
	}
	return st
}
