package region

import (
	"reflect"
	"testing"
)

func TestGenerateDeterministicForSeed(t *testing.T) {
	cfg := GenConfig{Name: "Testlands", Seed: 7, Settlements: 10}
	a := Generate(cfg)
	b := Generate(cfg)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different regions")
	}
}

func TestGenerateProducesValidSettlements(t *testing.T) {
	cfg := GenConfig{Name: "Testlands", Seed: 99, Settlements: 20}
	settlements := Generate(cfg)
	if len(settlements) != 20 {
		t.Fatalf("generated %d settlements, want 20", len(settlements))
	}

	seen := make(map[string]bool)
	for _, s := range settlements {
		if err := s.Validate(); err != nil {
			t.Fatalf("%s invalid: %v", s.Name, err)
		}
		if s.Region != "Testlands" {
			t.Fatalf("%s region = %q", s.Name, s.Region)
		}
		if len(s.Production) == 0 {
			t.Fatalf("%s has no production tags", s.Name)
		}
		if seen[s.Name] {
			t.Fatalf("duplicate settlement name %q", s.Name)
		}
		seen[s.Name] = true
	}
}

func TestGenerateMinimumCount(t *testing.T) {
	out := Generate(GenConfig{Name: "X", Seed: 1, Settlements: 0})
	if len(out) != 1 {
		t.Fatalf("generated %d settlements, want floor of 1", len(out))
	}
}
