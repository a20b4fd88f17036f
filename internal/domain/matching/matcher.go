package matching

import (
	"strings"

	"pet-adoption-service/internal/domain/pets"
)

// Matches decide si la mascota calza con los tags de preferencia.
// Booleano, gana el primer hit; sin scoring parcial.
//
// Sin preferencias NO hay match (no es un wildcard: nadie quiere que todo
// el listado salga resaltado). Con tags, en orden:
//
//  1. match directo: el tag igual a species/sex/breed, o su primera palabra
//     igual a species/sex
//  2. bucket de edad del tag == bucket de edad de la mascota
//  3. bucket de peso del tag == bucket de peso (si la ficha trae peso)
func Matches(p pets.Pet, preferenceTags []string) bool {
	if len(preferenceTags) == 0 {
		return false
	}

	species := strings.ToLower(string(p.Species))
	sex := strings.ToLower(string(p.Sex))
	breed := strings.ToLower(strings.TrimSpace(p.Breed))

	petAge := AgeBucketOf(p.AgeYears)

	petWeight := WeightNone
	if p.WeightKg != nil {
		petWeight = WeightBucketOf(*p.WeightKg)
	}

	for _, raw := range preferenceTags {
		t := ParseTag(raw)
		if t.Norm == "" {
			continue
		}

		if t.Norm == species || t.Norm == sex || (breed != "" && t.Norm == breed) {
			return true
		}
		if t.FirstWord == species || t.FirstWord == sex {
			return true
		}
		if t.Age != "" && t.Age == petAge {
			return true
		}
		if t.Weight != WeightNone && t.Weight == petWeight {
			return true
		}
	}

	return false
}
