package matching

import (
	"testing"

	"pet-adoption-service/internal/domain/pets"
)

func kg(v float64) *float64 { return &v }

func dog(age int, weight *float64) pets.Pet {
	return pets.Pet{
		ID:       "pet-1",
		Name:     "Max",
		Species:  pets.SpeciesDog,
		Breed:    "labrador",
		Sex:      pets.SexMale,
		AgeYears: age,
		WeightKg: weight,
	}
}

func TestMatches_EmptyPreferences_NeverMatch(t *testing.T) {
	// Sin preferencias no hay wildcard: nada se resalta.
	if Matches(dog(3, kg(20)), nil) {
		t.Fatalf("expected no match with nil tags")
	}
	if Matches(dog(3, kg(20)), []string{}) {
		t.Fatalf("expected no match with empty tags")
	}
}

func TestMatches_DirectSpeciesAndSex(t *testing.T) {
	p := dog(3, nil)

	if !Matches(p, []string{"Dog"}) {
		t.Fatalf("expected species match")
	}
	if !Matches(p, []string{"MALE"}) {
		t.Fatalf("expected sex match, case-insensitive")
	}
	if Matches(p, []string{"Cat", "Female"}) {
		t.Fatalf("expected no match for wrong species/sex")
	}
}

func TestMatches_BreedVerbatim(t *testing.T) {
	p := dog(3, nil)

	if !Matches(p, []string{"Labrador"}) {
		t.Fatalf("expected breed match")
	}
	if Matches(p, []string{"Poodle"}) {
		t.Fatalf("expected no match for other breed")
	}
}

func TestMatches_FirstWordOfCompoundTag(t *testing.T) {
	// "female cats preferred" matchea por la primera palabra contra sex.
	p := pets.Pet{Species: pets.SpeciesCat, Sex: pets.SexFemale, AgeYears: 4}

	if !Matches(p, []string{"female cats preferred"}) {
		t.Fatalf("expected first-word sex match")
	}
}

func TestMatches_AgeBuckets(t *testing.T) {
	// Rótulos compuestos: el bucket se reconoce dentro del tag.
	if !Matches(dog(10, nil), []string{"Senior (9+)"}) {
		t.Fatalf("expected senior match for age 10")
	}
	if !Matches(dog(1, nil), []string{"Young (0-2)"}) {
		t.Fatalf("expected young match for age 1")
	}
	if !Matches(dog(5, nil), []string{"Adult (3-8)"}) {
		t.Fatalf("expected adult match for age 5")
	}
	if Matches(dog(5, nil), []string{"Senior (9+)", "Young (0-2)"}) {
		t.Fatalf("adult pet must not match young/senior tags")
	}
}

func TestAgeBucketOf_Boundaries(t *testing.T) {
	cases := []struct {
		age  int
		want AgeBucket
	}{
		{0, AgeYoung}, {2, AgeYoung},
		{3, AgeAdult}, {8, AgeAdult},
		{9, AgeSenior}, {15, AgeSenior},
	}
	for _, c := range cases {
		if got := AgeBucketOf(c.age); got != c.want {
			t.Fatalf("age %d: expected %s, got %s", c.age, c.want, got)
		}
	}
}

func TestMatches_WeightBuckets(t *testing.T) {
	if !Matches(dog(5, kg(4.5)), []string{"Under 5 kg"}) {
		t.Fatalf("expected under-5 match")
	}
	if !Matches(dog(5, kg(15)), []string{"5 - 15 kg"}) {
		t.Fatalf("expected 5-15 match at inclusive upper bound")
	}
	if !Matches(dog(5, kg(16)), []string{"16 - 30 kg"}) {
		t.Fatalf("expected 16-30 match at inclusive lower bound")
	}
	if !Matches(dog(5, kg(31)), []string{"Over 30 kg"}) {
		t.Fatalf("expected over-30 match")
	}
	if Matches(dog(5, nil), []string{"5 - 15 kg"}) {
		t.Fatalf("pet without weight must not match weight tags")
	}
}

func TestWeightBucketOf_GapBetween15And16(t *testing.T) {
	// Bordes inclusivos tal como están rotulados: 15.5 kg queda sin bucket
	// (comportamiento heredado de la UI).
	if got := WeightBucketOf(15.5); got != WeightNone {
		t.Fatalf("expected no bucket for 15.5 kg, got %s", got)
	}
}

func TestParseTag_Classification(t *testing.T) {
	senior := ParseTag("  Senior (9+) ")
	if senior.Age != AgeSenior {
		t.Fatalf("expected senior age bucket, got %q", senior.Age)
	}
	if senior.Weight != WeightNone {
		t.Fatalf("age tag must not carry a weight bucket")
	}

	w := ParseTag("5 - 15 kg")
	if w.Weight != Weight5To15 {
		t.Fatalf("expected 5-15 weight bucket, got %q", w.Weight)
	}

	free := ParseTag("Golden Retriever")
	if free.Age != "" || free.Weight != WeightNone {
		t.Fatalf("freeform tag must not classify, got %+v", free)
	}
	if free.FirstWord != "golden" {
		t.Fatalf("expected first word, got %q", free.FirstWord)
	}
}

func TestNormalizeTags_TrimDedup(t *testing.T) {
	got := NormalizeTags([]string{" Dog ", "", "dog", "Senior (9+)", "Senior (9+)"})

	if len(got) != 2 {
		t.Fatalf("expected 2 tags, got %v", got)
	}
	if got[0] != "Dog" || got[1] != "Senior (9+)" {
		t.Fatalf("expected order preserved with first spelling, got %v", got)
	}
}
