package bot

import (
	"strings"
	"testing"

	"github.com/lunchmates/restaurant-picker/internal/entity"
)

func TestEscapeMarkdown(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Mama's Pizza-Place", `Mama's Pizza\-Place`},
		{"4.5", `4\.5`},
		{"(votes)", `\(votes\)`},
		{"plain", "plain"},
	}

	for _, tc := range cases {
		if got := EscapeMarkdown(tc.input); got != tc.want {
			t.Fatalf("EscapeMarkdown(%q)=%q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFormatRestaurant(t *testing.T) {
	r := sampleRestaurant()
	text := FormatRestaurant(&r)

	for _, want := range []string{
		"*Pizza Palace*",
		"Cuisines: Pizza",
		"Delivery: 40min",
		`4\.5⭐ \(100 votes\)`,
		`Luisenplatz 5 \(Darmstadt\)`,
		"[Google Maps](",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in:\n%s", want, text)
		}
	}
}

func TestFormatRestaurant_NoNamedCuisines(t *testing.T) {
	r := sampleRestaurant()
	r.CuisineTypes = r.CuisineTypes[:0]

	if !strings.Contains(FormatRestaurant(&r), "Cuisines: /") {
		t.Fatalf("expected the placeholder for missing cuisines")
	}
}

func TestFormatRestaurants_Separator(t *testing.T) {
	first := sampleRestaurant()
	second := sampleRestaurant()
	second.Brand.Name = "Burger Barn"

	text := FormatRestaurants([]entity.Restaurant{first, second})

	if !strings.Contains(text, "*Pizza Palace*") || !strings.Contains(text, "*Burger Barn*") {
		t.Fatalf("expected both restaurants in:\n%s", text)
	}
	if !strings.Contains(text, `\=\=\=`) {
		t.Fatalf("expected an escaped separator between blocks:\n%s", text)
	}
}
