package views

import (
	"testing"

	"pet-adoption-service/internal/domain/applications"
	"pet-adoption-service/internal/domain/pets"
	"pet-adoption-service/internal/domain/reconcile"
)

func TestAvailablePets_FiltersByEffectiveStatus(t *testing.T) {
	rec := reconcile.New(nil)

	petList := []pets.Pet{
		{ID: "pet-1", Name: "Max", RawStatus: pets.StatusAvailable},
		{ID: "pet-2", Name: "Luna", RawStatus: pets.StatusAvailable},
		{ID: "pet-3", Name: "Rocky", RawStatus: pets.StatusAdopted},
	}
	apps := []applications.Application{
		// pet-2 tiene solicitud viva: efectivo pending aunque el crudo diga available.
		{ID: "a1", PetID: "pet-2", Status: applications.StatusPending},
	}

	got := AvailablePets(rec, petList, apps)

	if len(got) != 1 || got[0].ID != "pet-1" {
		t.Fatalf("expected only pet-1 available, got %+v", got)
	}
}

func TestRequestsSortedByPriority_Order(t *testing.T) {
	apps := []applications.Application{
		{ID: "a1", Status: applications.StatusRejected},
		{ID: "a2", Status: applications.StatusApproved},
		{ID: "a3", Status: applications.StatusPending},
		{ID: "a4", Status: applications.StatusVerification},
	}

	got := RequestsSortedByPriority(apps)

	want := []string{"a3", "a4", "a2", "a1"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestRequestsSortedByPriority_StableTieBreak(t *testing.T) {
	// Empates conservan el orden de llegada: la bandeja depende de eso.
	apps := []applications.Application{
		{ID: "first", Status: applications.StatusPending},
		{ID: "second", Status: applications.StatusPending},
		{ID: "third", Status: applications.StatusPending},
	}

	got := RequestsSortedByPriority(apps)

	for i, id := range []string{"first", "second", "third"} {
		if got[i].ID != id {
			t.Fatalf("stable sort broken at %d: got %s", i, got[i].ID)
		}
	}
}

func TestRequestsSortedByPriority_DoesNotMutateInput(t *testing.T) {
	apps := []applications.Application{
		{ID: "a1", Status: applications.StatusRejected},
		{ID: "a2", Status: applications.StatusPending},
	}

	_ = RequestsSortedByPriority(apps)

	if apps[0].ID != "a1" || apps[1].ID != "a2" {
		t.Fatalf("input slice was reordered: %+v", apps)
	}
}

func TestApplicationsForUser_ExplicitUserID(t *testing.T) {
	apps := []applications.Application{
		{ID: "a1", ApplicantID: "user-1"},
		{ID: "a2", ApplicantID: "user-2"},
		{ID: "a3", ApplicantID: "user-1"},
	}

	got := ApplicationsForUser(apps, "user-1")

	if len(got) != 2 || got[0].ID != "a1" || got[1].ID != "a3" {
		t.Fatalf("expected a1,a3 got %+v", got)
	}
}

func TestStats_CountsByEffectiveStatus(t *testing.T) {
	rec := reconcile.New(nil)

	petList := []pets.Pet{
		{ID: "pet-1", Species: pets.SpeciesDog, RawStatus: pets.StatusAvailable},
		{ID: "pet-2", Species: pets.SpeciesCat, RawStatus: pets.StatusAvailable},
	}
	apps := []applications.Application{
		{ID: "a1", PetID: "pet-2", Status: applications.StatusApproved},
	}

	st := Stats(rec, petList, apps)

	if st.Total != 2 {
		t.Fatalf("expected total 2, got %d", st.Total)
	}
	if st.BySpecies[pets.SpeciesDog] != 1 || st.BySpecies[pets.SpeciesCat] != 1 {
		t.Fatalf("unexpected species counts: %+v", st.BySpecies)
	}
	// El dashboard cuenta el status EFECTIVO: pet-2 sale adoptado.
	if st.ByStatus[pets.StatusAvailable] != 1 || st.ByStatus[pets.StatusAdopted] != 1 {
		t.Fatalf("unexpected status counts: %+v", st.ByStatus)
	}
}
