package reconcile

import (
	"testing"

	"pet-adoption-service/internal/domain/applications"
	"pet-adoption-service/internal/domain/pets"
)

func petFixture(id string, raw pets.Status) pets.Pet {
	return pets.Pet{
		ID:        id,
		Name:      "Max",
		Species:   pets.SpeciesDog,
		Sex:       pets.SexMale,
		RawStatus: raw,
	}
}

func appFor(petID string, status applications.Status) applications.Application {
	return applications.Application{
		ID:          "app-" + petID + "-" + string(status),
		PetID:       petID,
		PetName:     "Max",
		ApplicantID: "user-1",
		Status:      status,
	}
}

func TestEffectiveStatus_ApprovedWins_OverRawStatus(t *testing.T) {
	r := New(nil)

	// Una aprobación pesa más que cualquier raw status, incluso available.
	for _, raw := range []pets.Status{pets.StatusAvailable, pets.StatusPending, pets.StatusAdopted} {
		p := petFixture("pet-1", raw)
		apps := []applications.Application{appFor("pet-1", applications.StatusApproved)}

		if got := r.EffectiveStatus(p, apps); got != pets.StatusAdopted {
			t.Fatalf("raw=%s: expected adopted, got %s", raw, got)
		}
	}
}

func TestEffectiveStatus_PendingApplication_MakesPetPending(t *testing.T) {
	r := New(nil)

	p := petFixture("pet-1", pets.StatusAvailable)
	apps := []applications.Application{appFor("pet-1", applications.StatusPending)}

	if got := r.EffectiveStatus(p, apps); got != pets.StatusPending {
		t.Fatalf("expected pending, got %s", got)
	}
}

func TestEffectiveStatus_VerificationCountsAsActive(t *testing.T) {
	r := New(nil)

	p := petFixture("pet-1", pets.StatusAvailable)
	apps := []applications.Application{appFor("pet-1", applications.StatusVerification)}

	if got := r.EffectiveStatus(p, apps); got != pets.StatusPending {
		t.Fatalf("expected pending, got %s", got)
	}
}

func TestEffectiveStatus_NoApplications_Passthrough(t *testing.T) {
	r := New(nil)

	for _, raw := range []pets.Status{pets.StatusAvailable, pets.StatusPending, pets.StatusAdopted} {
		p := petFixture("pet-1", raw)
		if got := r.EffectiveStatus(p, nil); got != raw {
			t.Fatalf("raw=%s: expected passthrough, got %s", raw, got)
		}
	}
}

func TestEffectiveStatus_RawAdopted_BeatsActiveApplications(t *testing.T) {
	r := New(nil)

	p := petFixture("pet-1", pets.StatusAdopted)
	apps := []applications.Application{appFor("pet-1", applications.StatusPending)}

	if got := r.EffectiveStatus(p, apps); got != pets.StatusAdopted {
		t.Fatalf("expected adopted, got %s", got)
	}
}

func TestEffectiveStatus_RejectedApplications_NoSignal(t *testing.T) {
	r := New(nil)

	p := petFixture("pet-1", pets.StatusAvailable)
	apps := []applications.Application{appFor("pet-1", applications.StatusRejected)}

	if got := r.EffectiveStatus(p, apps); got != pets.StatusAvailable {
		t.Fatalf("expected available, got %s", got)
	}
}

func TestEffectiveStatus_OtherPetsApplications_Ignored(t *testing.T) {
	r := New(nil)

	p := petFixture("pet-1", pets.StatusAvailable)
	apps := []applications.Application{appFor("pet-2", applications.StatusApproved)}

	if got := r.EffectiveStatus(p, apps); got != pets.StatusAvailable {
		t.Fatalf("expected available, got %s", got)
	}
}

func TestEffectiveStatus_MalformedRawStatus_DefaultsToAvailable(t *testing.T) {
	// Datos legacy sucios: jamás tumbar la vista, degradar a available.
	r := New(nil)

	p := petFixture("pet-1", pets.Status("ADOPTABLE???"))

	if got := r.EffectiveStatus(p, nil); got != pets.StatusAvailable {
		t.Fatalf("expected available for malformed raw status, got %s", got)
	}
}

func TestByNameMatcher_LegacyFallback(t *testing.T) {
	m := ByNameMatcher{}

	p := petFixture("pet-1", pets.StatusAvailable)

	// Fila legacy sin pet_id: matchea por containment case-insensitive.
	legacy := applications.Application{PetName: "max (Dog)", Status: applications.StatusPending}
	if !m.Matches(p, legacy) {
		t.Fatalf("expected legacy row to match by name containment")
	}

	// Fila con pet_id: el fallback no opina, decide ByIDMatcher.
	withID := applications.Application{PetID: "pet-2", PetName: "Max (Dog)"}
	if m.Matches(p, withID) {
		t.Fatalf("name fallback must ignore rows that carry a pet_id")
	}
}

func TestByNameMatcher_ContainmentAmbiguity(t *testing.T) {
	// Comportamiento heredado y conocido: "Max" matchea "Maxine".
	// Documentado en el tipo; este test fija el status quo.
	m := ByNameMatcher{}

	p := petFixture("pet-1", pets.StatusAvailable)
	a := applications.Application{PetName: "Maxine (Dog)"}

	if !m.Matches(p, a) {
		t.Fatalf("containment matching is expected to produce this false positive")
	}
}

func TestEffectiveStatus_LegacyNameRow_DrivesPending(t *testing.T) {
	r := New(nil)

	p := petFixture("pet-1", pets.StatusAvailable)
	apps := []applications.Application{
		{ID: "legacy-1", PetName: "Max (Dog)", Status: applications.StatusPending},
	}

	if got := r.EffectiveStatus(p, apps); got != pets.StatusPending {
		t.Fatalf("expected pending via legacy name match, got %s", got)
	}
}
