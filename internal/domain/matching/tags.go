// Package matching implementa el resaltado de "soulmate": decide si una
// mascota calza con los tags de preferencia guardados en el perfil del
// usuario. Los buckets de edad y peso son un vocabulario cerrado compartido
// con la UI; los literales viven solo acá.
package matching

import "strings"

// AgeBucket agrupa la edad en tres rangos fijos.
type AgeBucket string

const (
	AgeYoung  AgeBucket = "young"  // 0-2
	AgeAdult  AgeBucket = "adult"  // 3-8
	AgeSenior AgeBucket = "senior" // 9+
)

func AgeBucketOf(ageYears int) AgeBucket {
	switch {
	case ageYears <= 2:
		return AgeYoung
	case ageYears >= 9:
		return AgeSenior
	default:
		return AgeAdult
	}
}

// WeightBucket agrupa el peso en los cuatro rangos que ofrece la UI.
// Los bordes son inclusivos tal como están rotulados, así que pesos
// fraccionarios entre 15 y 16 kg quedan sin bucket (comportamiento heredado).
type WeightBucket string

const (
	WeightUnder5 WeightBucket = "under 5 kg"
	Weight5To15  WeightBucket = "5 - 15 kg"
	Weight16To30 WeightBucket = "16 - 30 kg"
	WeightOver30 WeightBucket = "over 30 kg"
	WeightNone   WeightBucket = ""
)

func WeightBucketOf(kg float64) WeightBucket {
	switch {
	case kg < 5:
		return WeightUnder5
	case kg <= 15:
		return Weight5To15
	case kg >= 16 && kg <= 30:
		return Weight16To30
	case kg > 30:
		return WeightOver30
	default:
		return WeightNone
	}
}

// TagGroup describe una categoría del modal de preferencias.
type TagGroup struct {
	Category string
	Options  []string
}

// Vocabulary son los tags canónicos que ofrece la UI. Texto libre adicional
// (razas) también se acepta; se compara contra breed tal cual.
var Vocabulary = []TagGroup{
	{Category: "Type", Options: []string{"Dog", "Cat", "Other"}},
	{Category: "Gender", Options: []string{"Male", "Female"}},
	{Category: "Weight (kg)", Options: []string{"Under 5 kg", "5 - 15 kg", "16 - 30 kg", "Over 30 kg"}},
	{Category: "Age", Options: []string{"Young (0-2)", "Adult (3-8)", "Senior (9+)"}},
}

// Tag es la forma tipada de un tag de preferencia: se parsea UNA vez y
// después se compara estructuralmente, nada de substrings mágicos repartidos.
type Tag struct {
	Raw  string
	Norm string // lowercase, trimmed

	FirstWord string // primer token separado por espacios

	Age    AgeBucket    // "" si el tag no habla de edad
	Weight WeightBucket // "" si el tag no habla de peso
}

// ParseTag clasifica un tag libre. Los rótulos compuestos de edad
// ("Senior (9+)") se reconocen por la palabra del bucket contenida en el
// texto; los de peso exigen el rótulo canónico exacto.
func ParseTag(raw string) Tag {
	norm := strings.ToLower(strings.TrimSpace(raw))

	t := Tag{Raw: raw, Norm: norm}
	if norm == "" {
		return t
	}

	if fields := strings.Fields(norm); len(fields) > 0 {
		t.FirstWord = fields[0]
	}

	switch {
	case strings.Contains(norm, string(AgeYoung)):
		t.Age = AgeYoung
	case strings.Contains(norm, string(AgeSenior)):
		t.Age = AgeSenior
	case strings.Contains(norm, string(AgeAdult)):
		t.Age = AgeAdult
	}

	switch WeightBucket(norm) {
	case WeightUnder5:
		t.Weight = WeightUnder5
	case Weight5To15:
		t.Weight = Weight5To15
	case Weight16To30:
		t.Weight = Weight16To30
	case WeightOver30:
		t.Weight = WeightOver30
	}

	return t
}

// NormalizeTags limpia una lista de tags para guardar en el perfil:
// trim, descarta vacíos y deduplica conservando el orden.
func NormalizeTags(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))

	for _, raw := range in {
		tag := strings.TrimSpace(raw)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out
}
