package reconcile

import (
	"strings"

	"pet-adoption-service/internal/domain/applications"
	"pet-adoption-service/internal/domain/pets"
)

// PetApplicationMatcher decide si una solicitud referencia a una mascota.
// Existe como interfaz para poder retirar el matching legacy por nombre sin
// tocar la lógica de reconciliación.
type PetApplicationMatcher interface {
	Matches(p pets.Pet, a applications.Application) bool
}

// ByIDMatcher es el enlace preferido: igualdad estricta de pet_id.
type ByIDMatcher struct{}

func (ByIDMatcher) Matches(p pets.Pet, a applications.Application) bool {
	return a.PetID != "" && a.PetID == p.ID
}

// ByNameMatcher es el fallback para filas legacy SIN pet_id: busca el nombre
// de la mascota contenido (case-insensitive) en el pet_name desnormalizado
// de la solicitud.
//
// Conocido y asumido: el containment es ambiguo con nombres parecidos
// ("Max" matchea "Maxine"). Se mantiene tal cual para poder leer datos
// viejos; cuando pet_id esté siempre poblado, este tipo se borra entero.
type ByNameMatcher struct{}

func (ByNameMatcher) Matches(p pets.Pet, a applications.Application) bool {
	if a.PetID != "" {
		// Filas con pet_id usan ByIDMatcher; acá no opinamos.
		return false
	}
	name := strings.ToLower(strings.TrimSpace(p.Name))
	if name == "" {
		return false
	}
	return strings.Contains(strings.ToLower(a.PetName), name)
}
