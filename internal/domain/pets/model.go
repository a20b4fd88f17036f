package pets

import (
	"strings"
	"time"
)

// Species define las especies soportadas en el inventario de adopción.
// @Enum dog, cat, other
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

// Sex define el sexo de la mascota.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// Status es el valor de disponibilidad, tanto el crudo (almacenado en la ficha,
// lo edita el foster/admin) como el efectivo (derivado por reconciliación).
// El crudo NUNCA se auto-actualiza cuando alguien aplica: por eso existe reconcile.
// @Enum available, pending, adopted
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusAdopted   Status = "adopted"
)

// Pet representa la ficha de una mascota listada para adopción.
type Pet struct {
	ID           string
	FosterUserID string // quien la listó

	Name    string
	Species Species
	Breed   string // texto libre
	Sex     Sex

	AgeYears int
	WeightKg *float64 // opcional; > 0 si viene

	// RawStatus puede traer valores sucios desde datos legacy; el lector
	// (reconcile) decide qué hacer con valores desconocidos.
	RawStatus Status

	ImageURL string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func ParseSpecies(s string) (Species, bool) {
	switch Species(strings.ToLower(strings.TrimSpace(s))) {
	case SpeciesDog:
		return SpeciesDog, true
	case SpeciesCat:
		return SpeciesCat, true
	case SpeciesOther:
		return SpeciesOther, true
	}
	return "", false
}

func ParseSex(s string) (Sex, bool) {
	switch Sex(strings.ToLower(strings.TrimSpace(s))) {
	case SexMale:
		return SexMale, true
	case SexFemale:
		return SexFemale, true
	case SexUnknown:
		return SexUnknown, true
	}
	return "", false
}

func ParseStatus(s string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusAvailable:
		return StatusAvailable, true
	case StatusPending:
		return StatusPending, true
	case StatusAdopted:
		return StatusAdopted, true
	}
	return "", false
}
