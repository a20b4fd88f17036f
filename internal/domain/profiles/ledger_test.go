package profiles

import (
	"reflect"
	"testing"
)

func TestToggle_AddsWhenAbsent(t *testing.T) {
	list := []FavoriteEntry{{PetID: "pet-1", Name: "Max"}}

	got := Toggle(list, FavoriteEntry{PetID: "pet-2", Name: "Luna", Image: "luna.jpg"})

	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	// Se agrega al final, el orden existente se conserva.
	if got[0].PetID != "pet-1" || got[1].PetID != "pet-2" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestToggle_RemovesWhenPresent(t *testing.T) {
	list := []FavoriteEntry{
		{PetID: "pet-1", Name: "Max"},
		{PetID: "pet-2", Name: "Luna"},
	}

	got := Toggle(list, FavoriteEntry{PetID: "pet-1"})

	if len(got) != 1 || got[0].PetID != "pet-2" {
		t.Fatalf("expected only pet-2 left, got %+v", got)
	}
}

func TestToggle_RoundTrip(t *testing.T) {
	list := []FavoriteEntry{
		{PetID: "pet-1", Name: "Max"},
		{PetID: "pet-2", Name: "Luna"},
	}
	entry := FavoriteEntry{PetID: "pet-3", Name: "Mittens", Image: "mittens.jpg"}

	got := Toggle(Toggle(list, entry), entry)

	if !reflect.DeepEqual(got, list) {
		t.Fatalf("double toggle must compose to original list, got %+v", got)
	}
}

func TestToggle_NeverMutatesInput(t *testing.T) {
	list := []FavoriteEntry{{PetID: "pet-1", Name: "Max"}}

	_ = Toggle(list, FavoriteEntry{PetID: "pet-2"})
	_ = Toggle(list, FavoriteEntry{PetID: "pet-1"})

	if len(list) != 1 || list[0].PetID != "pet-1" {
		t.Fatalf("input list was mutated: %+v", list)
	}
}

func TestToggle_KeepsSnapshotFieldsAsGiven(t *testing.T) {
	// El favorito guarda lo que el usuario vio al favoritear; acá no se
	// re-joinea nada contra la ficha viva.
	entry := FavoriteEntry{PetID: "pet-1", Name: "Max (old name)", Image: "old.jpg"}

	got := Toggle(nil, entry)

	if len(got) != 1 || got[0] != entry {
		t.Fatalf("expected snapshot stored verbatim, got %+v", got)
	}
}

func TestIsFavorite(t *testing.T) {
	list := []FavoriteEntry{{PetID: "pet-1"}}

	if !IsFavorite(list, "pet-1") {
		t.Fatalf("expected pet-1 favorited")
	}
	if IsFavorite(list, "pet-2") {
		t.Fatalf("expected pet-2 not favorited")
	}
}
