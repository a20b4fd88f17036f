package applications

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrInvalidTransition: la transición pedida no existe en la tabla
	// (incluye cualquier intento de salir de approved/rejected).
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrMissingEvidence: cerrar desde verification exige notas no vacías.
	ErrMissingEvidence = errors.New("verification notes required")

	// ErrWithdrawalNotAllowed: el applicant solo puede retirar en pending.
	ErrWithdrawalNotAllowed = errors.New("withdrawal not allowed")

	// ErrStaleTransition: otro escritor movió el status primero (CAS perdido).
	// El caller debe refrescar y reintentar o mostrar el conflicto.
	ErrStaleTransition = errors.New("stale transition")
)

// validTransitions lista cada par (from → to) permitido.
// approved y rejected no aparecen como origen: son terminales.
var validTransitions = map[Status][]Status{
	StatusPending:      {StatusVerification, StatusRejected},
	StatusVerification: {StatusApproved, StatusRejected},
}

func CanTransition(from, to Status) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// needsEvidence: decisiones tomadas después de la llamada de verificación
// deben quedar respaldadas por notas; evita cierres silenciosos.
func needsEvidence(from, to Status) bool {
	return from == StatusVerification && (to == StatusApproved || to == StatusRejected)
}

// Transition es el núcleo puro del workflow: devuelve una copia actualizada
// o un error tipado, sin tocar jamás el valor recibido.
func Transition(a Application, to Status, notes string, now time.Time) (Application, error) {
	if !CanTransition(a.Status, to) {
		return Application{}, ErrInvalidTransition
	}

	notes = strings.TrimSpace(notes)
	if needsEvidence(a.Status, to) && notes == "" {
		return Application{}, ErrMissingEvidence
	}

	a.Status = to
	if notes != "" {
		a.VerificationNotes = notes
	}
	a.UpdatedAt = now
	return a, nil
}

// RequestVerification mueve pending → verification. Sin guardas.
func RequestVerification(a Application, now time.Time) (Application, error) {
	return Transition(a, StatusVerification, "", now)
}

// Approve cierra verification → approved. Exige evidencia.
// Ojo: aprobar NO muta la ficha de la mascota; los lectores vuelven a
// correr reconciliación y ahí la mascota pasa a verse adoptada.
func Approve(a Application, notes string, now time.Time) (Application, error) {
	return Transition(a, StatusApproved, notes, now)
}

// Reject cierra hacia rejected, desde pending (atajo, sin guarda) o desde
// verification (exige evidencia).
func Reject(a Application, notes string, now time.Time) (Application, error) {
	return Transition(a, StatusRejected, notes, now)
}

// CanWithdraw valida el retiro por parte del applicant.
func CanWithdraw(a Application) error {
	if a.Status != StatusPending {
		return ErrWithdrawalNotAllowed
	}
	return nil
}
