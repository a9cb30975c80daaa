package domain

import (
	"fmt"
	"strings"
)

// RoutePreference is the user's classification of one favorite. Urgent and
// Important stay nil until answered.
type RoutePreference struct {
	Urgent    *bool  `json:"urgent,omitempty"`
	Important *bool  `json:"important,omitempty"`
	Pros      string `json:"pros,omitempty"`
	Cons      string `json:"cons,omitempty"`
}

func (p RoutePreference) Answered() bool {
	return p.Urgent != nil && p.Important != nil
}

// RoutePreferences is keyed by destination id; encoding/json writes the keys
// as strings, matching the stored object.
type RoutePreferences map[int]RoutePreference

type AnswerType string

const (
	AnswerUrgent    AnswerType = "urgent"
	AnswerImportant AnswerType = "important"
)

func ParseAnswerType(raw string) (AnswerType, error) {
	switch AnswerType(strings.ToLower(strings.TrimSpace(raw))) {
	case AnswerUrgent:
		return AnswerUrgent, nil
	case AnswerImportant:
		return AnswerImportant, nil
	default:
		return "", fmt.Errorf("type must be %q or %q", AnswerUrgent, AnswerImportant)
	}
}

type Quadrant string

const (
	QuadrantImportantUrgent       Quadrant = "IU"
	QuadrantImportantNotUrgent    Quadrant = "INU"
	QuadrantNotImportantUrgent    Quadrant = "NIU"
	QuadrantNotImportantNotUrgent Quadrant = "NINU"
)

// QuadrantOrder is the order sections are rendered in.
var QuadrantOrder = []Quadrant{
	QuadrantImportantUrgent,
	QuadrantImportantNotUrgent,
	QuadrantNotImportantUrgent,
	QuadrantNotImportantNotUrgent,
}

var quadrantDetails = map[Quadrant]struct{ title, emoji string }{
	QuadrantImportantUrgent:       {"Do It Now! (Important & Urgent)", "🔥"},
	QuadrantImportantNotUrgent:    {"Plan (Important, Not Urgent)", "🗓️"},
	QuadrantNotImportantUrgent:    {"Delegate or Do It Quick (Not Important, Urgent)", "⚡"},
	QuadrantNotImportantNotUrgent: {"Consider Omitting (Not Important, Not Urgent)", "🗑️"},
}

func ClassifyQuadrant(important, urgent bool) Quadrant {
	switch {
	case important && urgent:
		return QuadrantImportantUrgent
	case important:
		return QuadrantImportantNotUrgent
	case urgent:
		return QuadrantNotImportantUrgent
	default:
		return QuadrantNotImportantNotUrgent
	}
}

func (q Quadrant) Title() string { return quadrantDetails[q].title }
func (q Quadrant) Emoji() string { return quadrantDetails[q].emoji }

type RouteSection struct {
	Quadrant     Quadrant      `json:"quadrant"`
	Title        string        `json:"title"`
	Emoji        string        `json:"emoji"`
	Destinations []Destination `json:"destinations"`
}

type RoutePlan struct {
	Sections    []RouteSection `json:"sections"`
	Prioritized []Destination  `json:"prioritized"`
}

func (p RoutePlan) Empty() bool {
	return len(p.Sections) == 0
}
