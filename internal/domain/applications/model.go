package applications

import (
	"strings"
	"time"
)

// Status define el ciclo de vida de una solicitud de adopción.
//
//	pending ──► verification ──► approved
//	    │             │
//	    └─────────────┴────────► rejected
//
// approved y rejected son terminales.
// @Enum pending, verification, approved, rejected
type Status string

const (
	StatusPending      Status = "pending"
	StatusVerification Status = "verification"
	StatusApproved     Status = "approved"
	StatusRejected     Status = "rejected"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, true
	case StatusVerification:
		return StatusVerification, true
	case StatusApproved:
		return StatusApproved, true
	case StatusRejected:
		return StatusRejected, true
	}
	return "", false
}

// IsActive indica si la solicitud sigue viva (cuenta para reconciliación
// como "pending" y para el invariante de una sola solicitud activa por
// (pet, applicant)).
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusVerification
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Application es una solicitud de adopción. Pet y Application son agregados
// separados que se actualizan de forma independiente: crear o aprobar una
// solicitud NO toca la ficha de la mascota.
type Application struct {
	ID string

	// PetID puede venir vacío en filas legacy; en ese caso el único enlace
	// con la mascota es PetName (snapshot desnormalizado al crear).
	PetID   string
	PetName string

	ApplicantID   string
	ApplicantName string
	Email         string

	Status Status

	// VerificationNotes es la evidencia de la llamada de verificación.
	// Obligatoria para cerrar (aprobar/rechazar) desde verification.
	VerificationNotes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
