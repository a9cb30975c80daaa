package service

import "github.com/njprem/FocoTour_APP_BackEnd/internal/domain"

// BuildRoutePlan groups fully answered favorites into the four urgency and
// importance quadrants. Favorites without a destination or with a missing
// answer are skipped, empty sections are omitted and each section keeps
// favorites order. Prioritized is the IU section followed by INU.
func BuildRoutePlan(favorites domain.Favorites, destinations []domain.Destination, prefs domain.RoutePreferences) domain.RoutePlan {
	grouped := make(map[domain.Quadrant][]domain.Destination, len(domain.QuadrantOrder))
	for _, id := range favorites {
		dest, ok := domain.FindDestination(destinations, id)
		if !ok {
			continue
		}
		pref, ok := prefs[id]
		if !ok || !pref.Answered() {
			continue
		}
		q := domain.ClassifyQuadrant(*pref.Important, *pref.Urgent)
		grouped[q] = append(grouped[q], dest)
	}

	plan := domain.RoutePlan{
		Sections:    []domain.RouteSection{},
		Prioritized: []domain.Destination{},
	}
	for _, q := range domain.QuadrantOrder {
		items := grouped[q]
		if len(items) == 0 {
			continue
		}
		plan.Sections = append(plan.Sections, domain.RouteSection{
			Quadrant:     q,
			Title:        q.Title(),
			Emoji:        q.Emoji(),
			Destinations: items,
		})
	}
	plan.Prioritized = append(plan.Prioritized, grouped[domain.QuadrantImportantUrgent]...)
	plan.Prioritized = append(plan.Prioritized, grouped[domain.QuadrantImportantNotUrgent]...)
	return plan
}
