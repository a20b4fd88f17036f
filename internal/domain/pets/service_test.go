package pets

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	if p.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return errors.New("repo: not found")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, errors.New("repo: not found")
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) ListByFoster(ctx context.Context, fosterUserID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if p.FosterUserID == fosterUserID {
			out = append(out, p)
		}
	}
	return out, nil
}

func kg(v float64) *float64 { return &v }

func TestService_Create_DefaultsToAvailable(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	p, err := svc.Create(context.Background(), "foster-1", CreateInput{
		Name:     " Max ",
		Species:  "Dog",
		Breed:    "labrador",
		Sex:      "male",
		AgeYears: 3,
		WeightKg: kg(22),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.RawStatus != StatusAvailable {
		t.Fatalf("expected raw status available, got %s", p.RawStatus)
	}
	if p.Name != "Max" {
		t.Fatalf("expected trimmed name, got %q", p.Name)
	}
	if p.Species != SpeciesDog {
		t.Fatalf("expected normalized species, got %s", p.Species)
	}
	if p.CreatedAt != now || p.UpdatedAt != now {
		t.Fatalf("expected timestamps set to now")
	}
}

func TestService_Create_RejectsInvalidFieldsAtBoundary(t *testing.T) {
	svc := NewService(newTestRepo())

	valid := CreateInput{Name: "Max", Species: "dog", Sex: "male", AgeYears: 3}

	cases := []struct {
		name   string
		mutate func(in *CreateInput)
	}{
		{"empty name", func(in *CreateInput) { in.Name = "  " }},
		{"bad species", func(in *CreateInput) { in.Species = "bird" }},
		{"bad sex", func(in *CreateInput) { in.Sex = "robot" }},
		{"negative age", func(in *CreateInput) { in.AgeYears = -1 }},
		{"zero weight", func(in *CreateInput) { in.WeightKg = kg(0) }},
		{"negative weight", func(in *CreateInput) { in.WeightKg = kg(-2) }},
	}

	for _, c := range cases {
		in := valid
		c.mutate(&in)
		if _, err := svc.Create(context.Background(), "foster-1", in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", c.name, err)
		}
	}
}

func TestService_UpdateStatus_MovesRawStatusExplicitly(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), "foster-1", CreateInput{
		Name: "Max", Species: "dog", Sex: "male", AgeYears: 3,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), p.ID, "pending")
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if updated.RawStatus != StatusPending {
		t.Fatalf("expected pending, got %s", updated.RawStatus)
	}

	// Reversa explícita pending → available también es edición válida.
	updated, err = svc.UpdateStatus(context.Background(), p.ID, "available")
	if err != nil {
		t.Fatalf("UpdateStatus revert error: %v", err)
	}
	if updated.RawStatus != StatusAvailable {
		t.Fatalf("expected available, got %s", updated.RawStatus)
	}

	if _, err := svc.UpdateStatus(context.Background(), p.ID, "lost"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}
}

func TestService_Update_PatchSemantics(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), "foster-1", CreateInput{
		Name: "Max", Species: "dog", Breed: "labrador", Sex: "male", AgeYears: 3,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	newAge := 4
	updated, err := svc.Update(context.Background(), p.ID, UpdateInput{AgeYears: &newAge})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.AgeYears != 4 {
		t.Fatalf("expected age updated, got %d", updated.AgeYears)
	}
	// Campos no enviados quedan intactos.
	if updated.Name != "Max" || updated.Breed != "labrador" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}
