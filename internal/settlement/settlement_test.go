package settlement

import (
	"errors"
	"testing"

	"github.com/talgya/tradewinds/internal/cargo"
)

func TestValidate(t *testing.T) {
	good := Settlement{Name: "Ashford", Size: 3, Wealth: 2, Population: 900}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid settlement: %v", err)
	}

	cases := []Settlement{
		{Size: 3, Wealth: 2},                                        // no name
		{Name: "X", Size: 0, Wealth: 2},                             // size low
		{Name: "X", Size: 6, Wealth: 2},                             // size high
		{Name: "X", Size: 3, Wealth: 0},                             // wealth low
		{Name: "X", Size: 3, Wealth: 2, Population: -1},             // negative pop
		{Name: "X", Size: 3, Wealth: 2, Flags: []Flag{"harborage"}}, // unknown flag
	}
	for i, s := range cases {
		if err := s.Validate(); !errors.Is(err, cargo.ErrConfigurationMissing) {
			t.Fatalf("case %d: err = %v, want ErrConfigurationMissing", i, err)
		}
	}
}

func TestTradeCenterAndTags(t *testing.T) {
	s := Settlement{
		Name: "Crosswick", Size: 4, Wealth: 3,
		Production: []string{"Trade", "Agriculture", "Mining"},
		Demand:     []string{"Luxury"},
	}
	if !s.IsTradeCenter() {
		t.Fatal("expected trade center")
	}
	if !s.Produces("Agriculture") || s.Produces("Luxury") {
		t.Fatal("production tag matching wrong")
	}
	if !s.Demands("Luxury") {
		t.Fatal("demand tag matching wrong")
	}
	goods := s.SpecificGoods()
	if len(goods) != 2 || goods[0] != "Agriculture" || goods[1] != "Mining" {
		t.Fatalf("specific goods = %v", goods)
	}
}

func TestSizeCodes(t *testing.T) {
	cases := []struct {
		code string
		want int
	}{
		{"V", 1}, {"st", 2}, {"T", 3}, {"C", 4}, {"CS", 4},
	}
	for _, tc := range cases {
		got, err := ParseSizeCode(tc.code)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.code, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q = %d, want %d", tc.code, got, tc.want)
		}
	}
	if _, err := ParseSizeCode("XL"); !errors.Is(err, cargo.ErrInvalidArgument) {
		t.Fatalf("unknown code error = %v, want ErrInvalidArgument", err)
	}
	if SizeCode(5) != "CS" {
		t.Fatalf("SizeCode(5) = %q, want CS", SizeCode(5))
	}
}

func TestSortedFlags(t *testing.T) {
	s := Settlement{Flags: []Flag{FlagTrade, FlagAgriculture, FlagSmuggling}}
	sorted := s.SortedFlags()
	want := []Flag{FlagAgriculture, FlagSmuggling, FlagTrade}
	for i := range want {
		if sorted[i] != want[i] {
			t.Fatalf("sorted flags = %v, want %v", sorted, want)
		}
	}
	// Original order untouched.
	if s.Flags[0] != FlagTrade {
		t.Fatal("SortedFlags mutated the settlement")
	}
}

func TestParseFlag(t *testing.T) {
	f, err := ParseFlag(" Trade ")
	if err != nil || f != FlagTrade {
		t.Fatalf("parse Trade = %v, %v", f, err)
	}
	if _, err := ParseFlag("piracy"); !errors.Is(err, cargo.ErrInvalidArgument) {
		t.Fatalf("unknown flag error = %v, want ErrInvalidArgument", err)
	}
}

func TestAllFlagsValidAndOrdered(t *testing.T) {
	for i, f := range AllFlags {
		if !f.Valid() {
			t.Fatalf("flag %q listed but not valid", f)
		}
		if i > 0 && AllFlags[i-1] >= f {
			t.Fatalf("AllFlags out of name order at %q", f)
		}
	}
	if Flag("piracy").Valid() {
		t.Fatal("undefined flag must not be valid")
	}
}
