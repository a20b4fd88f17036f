package applications

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

func appInStatus(status Status) Application {
	return Application{
		ID:            "app-1",
		PetID:         "pet-1",
		PetName:       "Luna",
		ApplicantID:   "user-1",
		ApplicantName: "Alice Johnson",
		Status:        status,
		CreatedAt:     testNow.Add(-time.Hour),
		UpdatedAt:     testNow.Add(-time.Hour),
	}
}

func TestRequestVerification_FromPending(t *testing.T) {
	got, err := RequestVerification(appInStatus(StatusPending), testNow)
	if err != nil {
		t.Fatalf("RequestVerification error: %v", err)
	}
	if got.Status != StatusVerification {
		t.Fatalf("expected verification, got %s", got.Status)
	}
	if got.UpdatedAt != testNow {
		t.Fatalf("expected UpdatedAt bumped to now")
	}
}

func TestReject_FromPending_NoEvidenceNeeded(t *testing.T) {
	// Atajo pending → rejected: sin guarda de notas.
	got, err := Reject(appInStatus(StatusPending), "", testNow)
	if err != nil {
		t.Fatalf("Reject error: %v", err)
	}
	if got.Status != StatusRejected {
		t.Fatalf("expected rejected, got %s", got.Status)
	}
}

func TestApprove_FromVerification_RequiresEvidence(t *testing.T) {
	a := appInStatus(StatusVerification)

	if _, err := Approve(a, "", testNow); !errors.Is(err, ErrMissingEvidence) {
		t.Fatalf("expected ErrMissingEvidence, got %v", err)
	}
	// Solo whitespace tampoco sirve como evidencia.
	if _, err := Approve(a, "   \t", testNow); !errors.Is(err, ErrMissingEvidence) {
		t.Fatalf("expected ErrMissingEvidence for blank notes, got %v", err)
	}

	got, err := Approve(a, "Successful call. Landlord permission confirmed.", testNow)
	if err != nil {
		t.Fatalf("Approve error: %v", err)
	}
	if got.Status != StatusApproved {
		t.Fatalf("expected approved, got %s", got.Status)
	}
	if got.VerificationNotes == "" {
		t.Fatalf("expected notes recorded")
	}
}

func TestReject_FromVerification_RequiresEvidence(t *testing.T) {
	a := appInStatus(StatusVerification)

	if _, err := Reject(a, "", testNow); !errors.Is(err, ErrMissingEvidence) {
		t.Fatalf("expected ErrMissingEvidence, got %v", err)
	}

	got, err := Reject(a, "Not a good fit", testNow)
	if err != nil {
		t.Fatalf("Reject error: %v", err)
	}
	if got.Status != StatusRejected {
		t.Fatalf("expected rejected, got %s", got.Status)
	}
	if got.VerificationNotes != "Not a good fit" {
		t.Fatalf("expected notes recorded, got %q", got.VerificationNotes)
	}
}

func TestApprove_DirectlyFromPending_Invalid(t *testing.T) {
	// No hay atajo pending → approved: siempre pasa por verificación.
	if _, err := Approve(appInStatus(StatusPending), "notes", testNow); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestTerminalStates_NoOutgoingTransitions(t *testing.T) {
	targets := []Status{StatusPending, StatusVerification, StatusApproved, StatusRejected}

	for _, terminal := range []Status{StatusApproved, StatusRejected} {
		for _, to := range targets {
			_, err := Transition(appInStatus(terminal), to, "notes", testNow)
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("from %s to %s: expected ErrInvalidTransition, got %v", terminal, to, err)
			}
		}
	}
}

func TestTransition_FailureLeavesInputUntouched(t *testing.T) {
	a := appInStatus(StatusVerification)

	_, err := Approve(a, "", testNow)
	if err == nil {
		t.Fatalf("expected error")
	}
	if a.Status != StatusVerification || a.UpdatedAt != testNow.Add(-time.Hour) {
		t.Fatalf("failed transition must not mutate the input, got %+v", a)
	}
}

func TestCanWithdraw_OnlyWhilePending(t *testing.T) {
	if err := CanWithdraw(appInStatus(StatusPending)); err != nil {
		t.Fatalf("expected withdrawal allowed while pending, got %v", err)
	}

	for _, st := range []Status{StatusVerification, StatusApproved, StatusRejected} {
		if err := CanWithdraw(appInStatus(st)); !errors.Is(err, ErrWithdrawalNotAllowed) {
			t.Fatalf("status %s: expected ErrWithdrawalNotAllowed, got %v", st, err)
		}
	}
}
