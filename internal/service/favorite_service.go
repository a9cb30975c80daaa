package service

import (
	"context"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
)

const MsgNoFavorites = "You have no favorite destinations yet."

type FavoriteService struct {
	destinations *DestinationService
	state        *UserStateService
}

type FavoriteList struct {
	Items   []DestinationCard `json:"items"`
	Message string            `json:"message,omitempty"`
}

type FavoriteToggleResult struct {
	DestinationID int   `json:"destination_id"`
	IsFavorite    bool  `json:"is_favorite"`
	Favorites     []int `json:"favorites"`
}

func NewFavoriteService(destinations *DestinationService, state *UserStateService) *FavoriteService {
	return &FavoriteService{destinations: destinations, state: state}
}

// Toggle flips membership of id. Ids are not checked against the catalog.
func (s *FavoriteService) Toggle(ctx context.Context, userID int64, destinationID int) (*FavoriteToggleResult, error) {
	return s.update(ctx, userID, destinationID, func(f domain.Favorites) (domain.Favorites, bool) {
		return f.Toggle(destinationID)
	})
}

func (s *FavoriteService) Add(ctx context.Context, userID int64, destinationID int) (*FavoriteToggleResult, error) {
	return s.update(ctx, userID, destinationID, func(f domain.Favorites) (domain.Favorites, bool) {
		return f.Add(destinationID), true
	})
}

func (s *FavoriteService) Remove(ctx context.Context, userID int64, destinationID int) (*FavoriteToggleResult, error) {
	return s.update(ctx, userID, destinationID, func(f domain.Favorites) (domain.Favorites, bool) {
		return f.Remove(destinationID), false
	})
}

func (s *FavoriteService) update(ctx context.Context, userID int64, destinationID int, apply func(domain.Favorites) (domain.Favorites, bool)) (*FavoriteToggleResult, error) {
	unlock := s.state.Lock(userID)
	defer unlock()

	favorites, err := s.state.Favorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	next, isFavorite := apply(favorites)
	if err := s.state.SaveFavorites(ctx, userID, next); err != nil {
		return nil, err
	}
	return &FavoriteToggleResult{
		DestinationID: destinationID,
		IsFavorite:    isFavorite,
		Favorites:     append([]int{}, next...),
	}, nil
}

// List returns favorited destinations in catalog order.
func (s *FavoriteService) List(ctx context.Context, userID int64) (*FavoriteList, error) {
	list, err := s.destinations.List(ctx)
	if err != nil {
		return nil, err
	}
	favorites, err := s.state.Favorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := &FavoriteList{Items: []DestinationCard{}}
	for _, d := range list {
		if favorites.Contains(d.ID) {
			result.Items = append(result.Items, NewDestinationCard(d, favorites))
		}
	}
	if len(result.Items) == 0 {
		result.Message = MsgNoFavorites
	}
	return result, nil
}
