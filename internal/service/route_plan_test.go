package service

import (
	"testing"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
)

func TestBuildRoutePlan(t *testing.T) {
	prefs := domain.RoutePreferences{
		1: {Important: boolPtr(false), Urgent: boolPtr(false)},
		2: {Important: boolPtr(true), Urgent: boolPtr(false)},
		3: {Important: boolPtr(true), Urgent: boolPtr(true)},
		4: {Important: boolPtr(false), Urgent: boolPtr(true)},
		5: {Important: boolPtr(true)},
		6: {Important: boolPtr(true), Urgent: boolPtr(true)},
	}
	favorites := domain.Favorites{6, 5, 4, 3, 2, 1, 99}

	plan := BuildRoutePlan(favorites, sampleDestinations(), prefs)

	wantOrder := []domain.Quadrant{
		domain.QuadrantImportantUrgent,
		domain.QuadrantImportantNotUrgent,
		domain.QuadrantNotImportantUrgent,
		domain.QuadrantNotImportantNotUrgent,
	}
	if len(plan.Sections) != len(wantOrder) {
		t.Fatalf("expected %d sections, got %d", len(wantOrder), len(plan.Sections))
	}
	for i, q := range wantOrder {
		if plan.Sections[i].Quadrant != q {
			t.Fatalf("section %d = %s, want %s", i, plan.Sections[i].Quadrant, q)
		}
	}
	if got := destinationIDs(plan.Sections[0].Destinations); !equalInts(got, []int{6, 3}) {
		t.Fatalf("IU = %v, want [6 3]", got)
	}
	if plan.Sections[0].Title != "Do It Now! (Important & Urgent)" || plan.Sections[0].Emoji != "🔥" {
		t.Fatalf("unexpected IU heading %q %q", plan.Sections[0].Title, plan.Sections[0].Emoji)
	}
	if got := destinationIDs(plan.Prioritized); !equalInts(got, []int{6, 3, 2}) {
		t.Fatalf("prioritized = %v, want [6 3 2]", got)
	}
}

func TestBuildRoutePlanOmitsEmptySections(t *testing.T) {
	prefs := domain.RoutePreferences{
		2: {Important: boolPtr(false), Urgent: boolPtr(false)},
	}
	plan := BuildRoutePlan(domain.Favorites{2}, sampleDestinations(), prefs)
	if len(plan.Sections) != 1 || plan.Sections[0].Quadrant != domain.QuadrantNotImportantNotUrgent {
		t.Fatalf("unexpected sections %+v", plan.Sections)
	}
	if len(plan.Prioritized) != 0 {
		t.Fatalf("expected no prioritized items, got %v", destinationIDs(plan.Prioritized))
	}

	if !BuildRoutePlan(nil, sampleDestinations(), prefs).Empty() {
		t.Fatalf("expected empty plan without favorites")
	}
}
