package service

import (
	"context"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
)

type DestinationCard struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Category      domain.Category `json:"category"`
	CategoryLabel string          `json:"category_label"`
	Preview       string          `json:"preview"`
	ImageURL      string          `json:"imageUrl"`
	Location      string          `json:"location"`
	IsFavorite    bool            `json:"is_favorite"`
}

type DashboardSection struct {
	Bucket       domain.MatrixBucket `json:"bucket"`
	Title        string              `json:"title"`
	Destinations []DestinationCard   `json:"destinations"`
}

type Dashboard struct {
	Interests    []domain.Category  `json:"interests"`
	HasInterests bool               `json:"has_interests"`
	Sections     []DashboardSection `json:"sections"`
}

type DashboardService struct {
	destinations *DestinationService
	state        *UserStateService
}

func NewDashboardService(destinations *DestinationService, state *UserStateService) *DashboardService {
	return &DashboardService{destinations: destinations, state: state}
}

func NewDestinationCard(d domain.Destination, favorites domain.Favorites) DestinationCard {
	return DestinationCard{
		ID:            d.ID,
		Name:          d.Name,
		Category:      d.Category,
		CategoryLabel: d.Category.Label(),
		Preview:       d.Preview(),
		ImageURL:      d.ImageURL,
		Location:      d.Location,
		IsFavorite:    favorites.Contains(d.ID),
	}
}

func (s *DashboardService) Interests(ctx context.Context, userID int64) ([]domain.Category, bool, error) {
	return s.state.Interests(ctx, userID)
}

// SaveInterests stores the selection in order with duplicates dropped. An
// empty selection is valid and still marks the interests as chosen.
func (s *DashboardService) SaveInterests(ctx context.Context, userID int64, raw []string) ([]domain.Category, error) {
	interests := make([]domain.Category, 0, len(raw))
	seen := make(map[domain.Category]struct{}, len(raw))
	for _, value := range raw {
		c, err := domain.ParseCategory(value)
		if err != nil {
			return nil, newValidationError(err.Error(), map[string]string{"interests": msgUnknownCategory})
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		interests = append(interests, c)
	}

	unlock := s.state.Lock(userID)
	defer unlock()
	if err := s.state.SaveInterests(ctx, userID, interests); err != nil {
		return nil, err
	}
	return interests, nil
}

func (s *DashboardService) Build(ctx context.Context, userID int64) (*Dashboard, error) {
	list, err := s.destinations.List(ctx)
	if err != nil {
		return nil, err
	}
	state, err := s.state.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	matrix := BuildDashboardMatrix(list, state.Interests)
	dashboard := &Dashboard{
		Interests:    state.Interests,
		HasInterests: state.InterestsSet,
		Sections:     make([]DashboardSection, 0, len(domain.MatrixBucketOrder)),
	}
	for _, bucket := range domain.MatrixBucketOrder {
		items := matrix.Bucket(bucket)
		cards := make([]DestinationCard, 0, len(items))
		for _, d := range items {
			cards = append(cards, NewDestinationCard(d, state.Favorites))
		}
		dashboard.Sections = append(dashboard.Sections, DashboardSection{
			Bucket:       bucket,
			Title:        bucket.Title(),
			Destinations: cards,
		})
	}
	return dashboard, nil
}
