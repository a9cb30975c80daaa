package domain

import (
	"strings"
	"testing"
	"time"
)

func TestFavoritesToggle(t *testing.T) {
	var f Favorites
	f, on := f.Toggle(3)
	if !on || !f.Contains(3) {
		t.Fatalf("expected 3 added, got %v", f)
	}
	f, _ = f.Toggle(5)
	f, on = f.Toggle(3)
	if on || f.Contains(3) || len(f) != 1 || f[0] != 5 {
		t.Fatalf("expected only 5 left, got %v", f)
	}
	if got := f.Add(5); len(got) != 1 {
		t.Fatalf("expected Add to keep set semantics, got %v", got)
	}
}

func TestCategoryLabelsAndParse(t *testing.T) {
	if CategoryHistorico.Label() != "Histórico" || CategoryGastronomico.Label() != "Gastronómico" {
		t.Fatalf("unexpected labels")
	}
	if Category("playa").Label() != "playa" {
		t.Fatalf("unknown category should label as itself")
	}
	c, err := ParseCategory(" Natural ")
	if err != nil || c != CategoryNatural {
		t.Fatalf("ParseCategory = %q, %v", c, err)
	}
	if _, err := ParseCategory("playa"); err == nil {
		t.Fatalf("expected error for unknown category")
	}
	related := CategoryCultural.Related()
	if len(related) != 2 || related[0] != CategoryHistorico || related[1] != CategoryEducativo {
		t.Fatalf("unexpected related categories %v", related)
	}
}

func TestClassifyQuadrant(t *testing.T) {
	cases := []struct {
		important, urgent bool
		want              Quadrant
	}{
		{true, true, QuadrantImportantUrgent},
		{true, false, QuadrantImportantNotUrgent},
		{false, true, QuadrantNotImportantUrgent},
		{false, false, QuadrantNotImportantNotUrgent},
	}
	for _, tc := range cases {
		if got := ClassifyQuadrant(tc.important, tc.urgent); got != tc.want {
			t.Fatalf("ClassifyQuadrant(%v, %v) = %s, want %s", tc.important, tc.urgent, got, tc.want)
		}
	}
	if QuadrantNotImportantUrgent.Emoji() != "⚡" {
		t.Fatalf("unexpected emoji")
	}
	if _, err := ParseAnswerType("URGENT"); err != nil {
		t.Fatalf("ParseAnswerType returned error: %v", err)
	}
	if _, err := ParseAnswerType("soon"); err == nil {
		t.Fatalf("expected error for unknown answer type")
	}
}

func TestDestinationEventTimeAndPreview(t *testing.T) {
	date := "2027-03-01T09:30:00"
	d := Destination{EventDate: &date, Description: strings.Repeat("á", 120)}
	loc := time.FixedZone("COT", -5*60*60)

	at, ok := d.EventTime(loc)
	if !ok {
		t.Fatalf("expected event date to parse")
	}
	if at.Location() != loc || at.Hour() != 9 {
		t.Fatalf("unexpected event time %v", at)
	}

	preview := d.Preview()
	if !strings.HasSuffix(preview, "...") || len([]rune(preview)) != 103 {
		t.Fatalf("unexpected preview length %d", len([]rune(preview)))
	}
	if (Destination{Description: "corto"}).Preview() != "corto..." {
		t.Fatalf("short descriptions still get an ellipsis")
	}
}
