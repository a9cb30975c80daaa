package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
)

const (
	MsgEmptyRoute      = "Add places to your favorites from the Dashboard to start building your route!"
	MsgNotSpecified    = "Not specified"
	MsgProsRequired    = "Please enter at least one benefit."
	MsgConsRequired    = "Please enter at least one drawback."
	MsgPreferenceSaved = "Information saved successfully!"
)

// ReminderPlanner arms and cancels visit reminders.
type ReminderPlanner interface {
	Schedule(user domain.User, dest domain.Destination) (time.Time, bool)
	Cancel(userID int64, destinationID int) bool
}

type RouteQuestion struct {
	Destination   domain.Destination `json:"destination"`
	EventDateText string             `json:"event_date_text"`
	Urgent        *bool              `json:"urgent"`
	Important     *bool              `json:"important"`
	Pros          string             `json:"pros,omitempty"`
	Cons          string             `json:"cons,omitempty"`
}

type RouteOverview struct {
	Questions []RouteQuestion  `json:"questions"`
	Plan      domain.RoutePlan `json:"plan"`
	Message   string           `json:"message,omitempty"`
}

type AnswerResult struct {
	DestinationID int                    `json:"destination_id"`
	Preference    domain.RoutePreference `json:"preference"`
	// NeedsProsCons is true once both questions are answered.
	NeedsProsCons bool `json:"needs_pros_cons"`
}

type ConsResult struct {
	Preference domain.RoutePreference `json:"preference"`
	Message    string                 `json:"message"`
	ReminderAt *time.Time             `json:"reminder_at,omitempty"`
}

type VisitDetails struct {
	Destination domain.Destination `json:"destination"`
	Pros        string             `json:"pros"`
	Cons        string             `json:"cons"`
}

type RoutePlannerService struct {
	destinations *DestinationService
	state        *UserStateService
	reminders    ReminderPlanner
	loc          *time.Location
}

func NewRoutePlannerService(destinations *DestinationService, state *UserStateService, reminders ReminderPlanner, loc *time.Location) *RoutePlannerService {
	return &RoutePlannerService{destinations: destinations, state: state, reminders: reminders, loc: loc}
}

func (s *RoutePlannerService) Overview(ctx context.Context, userID int64) (*RouteOverview, error) {
	list, err := s.destinations.List(ctx)
	if err != nil {
		return nil, err
	}
	state, err := s.state.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	overview := &RouteOverview{
		Questions: []RouteQuestion{},
		Plan:      BuildRoutePlan(state.Favorites, list, state.RoutePreferences),
	}
	if len(state.Favorites) == 0 {
		overview.Message = MsgEmptyRoute
		return overview, nil
	}
	for _, id := range state.Favorites {
		dest, ok := domain.FindDestination(list, id)
		if !ok {
			continue
		}
		pref := state.RoutePreferences[id]
		overview.Questions = append(overview.Questions, RouteQuestion{
			Destination:   dest,
			EventDateText: FormatEventDate(dest, s.loc),
			Urgent:        pref.Urgent,
			Important:     pref.Important,
			Pros:          pref.Pros,
			Cons:          pref.Cons,
		})
	}
	return overview, nil
}

func (s *RoutePlannerService) Answer(ctx context.Context, userID int64, destinationID int, answer domain.AnswerType, value bool) (*AnswerResult, error) {
	if _, err := s.destinations.Get(ctx, destinationID); err != nil {
		return nil, err
	}

	unlock := s.state.Lock(userID)
	defer unlock()
	prefs, err := s.state.RoutePreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	pref := prefs[destinationID]
	v := value
	switch answer {
	case domain.AnswerUrgent:
		pref.Urgent = &v
	case domain.AnswerImportant:
		pref.Important = &v
	default:
		return nil, newValidationError("Unknown question.", map[string]string{"type": "must be urgent or important"})
	}
	prefs[destinationID] = pref
	if err := s.state.SaveRoutePreferences(ctx, userID, prefs); err != nil {
		return nil, err
	}
	return &AnswerResult{
		DestinationID: destinationID,
		Preference:    pref,
		NeedsProsCons: pref.Answered(),
	}, nil
}

func (s *RoutePlannerService) SavePros(ctx context.Context, userID int64, destinationID int, text string) (*domain.RoutePreference, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, newValidationError(MsgProsRequired, map[string]string{"pros": MsgProsRequired})
	}
	if _, err := s.destinations.Get(ctx, destinationID); err != nil {
		return nil, err
	}

	unlock := s.state.Lock(userID)
	defer unlock()
	prefs, err := s.state.RoutePreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	pref, ok := prefs[destinationID]
	if !ok || !pref.Answered() {
		return nil, ErrPreferenceIncomplete
	}
	pref.Pros = text
	prefs[destinationID] = pref
	if err := s.state.SaveRoutePreferences(ctx, userID, prefs); err != nil {
		return nil, err
	}
	return &pref, nil
}

// SaveCons completes the pros/cons flow and arms a reminder when the
// destination has an event date.
func (s *RoutePlannerService) SaveCons(ctx context.Context, user domain.User, destinationID int, text string) (*ConsResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, newValidationError(MsgConsRequired, map[string]string{"cons": MsgConsRequired})
	}
	dest, err := s.destinations.Get(ctx, destinationID)
	if err != nil {
		return nil, err
	}

	unlock := s.state.Lock(user.ID)
	prefs, err := s.state.RoutePreferences(ctx, user.ID)
	if err != nil {
		unlock()
		return nil, err
	}
	pref, ok := prefs[destinationID]
	if !ok || !pref.Answered() {
		unlock()
		return nil, ErrPreferenceIncomplete
	}
	pref.Cons = text
	prefs[destinationID] = pref
	err = s.state.SaveRoutePreferences(ctx, user.ID, prefs)
	unlock()
	if err != nil {
		return nil, err
	}

	result := &ConsResult{Preference: pref, Message: MsgPreferenceSaved}
	if s.reminders != nil && dest.EventDate != nil {
		if at, scheduled := s.reminders.Schedule(user, *dest); scheduled {
			result.ReminderAt = &at
		}
	}
	return result, nil
}

func (s *RoutePlannerService) VisitDetails(ctx context.Context, userID int64, destinationID int) (*VisitDetails, error) {
	dest, err := s.destinations.Get(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	prefs, err := s.state.RoutePreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	pref, ok := prefs[destinationID]
	if !ok {
		return nil, ErrPreferenceIncomplete
	}
	details := &VisitDetails{Destination: *dest, Pros: pref.Pros, Cons: pref.Cons}
	if details.Pros == "" {
		details.Pros = MsgNotSpecified
	}
	if details.Cons == "" {
		details.Cons = MsgNotSpecified
	}
	return details, nil
}

func (s *RoutePlannerService) ConfirmVisit(ctx context.Context, userID int64, destinationID int) (string, error) {
	dest, err := s.destinations.Get(ctx, destinationID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Visit to %s confirmed!", dest.Name), nil
}

// CancelVisit drops the pending reminder, the favorite and its preference.
func (s *RoutePlannerService) CancelVisit(ctx context.Context, userID int64, destinationID int) (string, error) {
	dest, err := s.destinations.Get(ctx, destinationID)
	if err != nil {
		return "", err
	}
	if s.reminders != nil {
		s.reminders.Cancel(userID, destinationID)
	}

	unlock := s.state.Lock(userID)
	defer unlock()
	favorites, err := s.state.Favorites(ctx, userID)
	if err != nil {
		return "", err
	}
	if err := s.state.SaveFavorites(ctx, userID, favorites.Remove(destinationID)); err != nil {
		return "", err
	}
	prefs, err := s.state.RoutePreferences(ctx, userID)
	if err != nil {
		return "", err
	}
	delete(prefs, destinationID)
	if err := s.state.SaveRoutePreferences(ctx, userID, prefs); err != nil {
		return "", err
	}
	return fmt.Sprintf("Visit to %s has been cancelled.", dest.Name), nil
}
