package service

import "github.com/njprem/FocoTour_APP_BackEnd/internal/domain"

// BuildDashboardMatrix splits destinations into the four dashboard groups:
// direct interest matches, matches through the related-category table, then
// the remainder halved into suggested (rounded up) and others. Source order
// is kept and an id is placed at most once.
func BuildDashboardMatrix(destinations []domain.Destination, interests []domain.Category) domain.DashboardMatrix {
	matrix := domain.DashboardMatrix{
		Preferences: []domain.Destination{},
		Related:     []domain.Destination{},
		Suggested:   []domain.Destination{},
		Others:      []domain.Destination{},
	}

	interested := make(map[domain.Category]struct{}, len(interests))
	related := make(map[domain.Category]struct{})
	for _, c := range interests {
		interested[c] = struct{}{}
		for _, r := range c.Related() {
			related[r] = struct{}{}
		}
	}

	placed := make(map[int]struct{}, len(destinations))
	for _, d := range destinations {
		if _, seen := placed[d.ID]; seen {
			continue
		}
		if _, ok := interested[d.Category]; ok {
			matrix.Preferences = append(matrix.Preferences, d)
			placed[d.ID] = struct{}{}
		}
	}
	for _, d := range destinations {
		if _, seen := placed[d.ID]; seen {
			continue
		}
		if _, ok := related[d.Category]; ok {
			matrix.Related = append(matrix.Related, d)
			placed[d.ID] = struct{}{}
		}
	}

	remaining := make([]domain.Destination, 0, len(destinations)-len(placed))
	for _, d := range destinations {
		if _, seen := placed[d.ID]; seen {
			continue
		}
		remaining = append(remaining, d)
		placed[d.ID] = struct{}{}
	}
	half := (len(remaining) + 1) / 2
	matrix.Suggested = append(matrix.Suggested, remaining[:half]...)
	matrix.Others = append(matrix.Others, remaining[half:]...)
	return matrix
}
