package domain

import (
	"strings"
	"time"
)

// Destination mirrors one entry of the static catalog document. JSON names
// follow the catalog file so it can be decoded and served unchanged.
type Destination struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Location    string   `json:"location"`
	Coordinates string   `json:"coordinates"`
	EventDate   *string  `json:"eventDate,omitempty"`
}

// DestinationFields are the admin-editable columns of a destination.
type DestinationFields struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Location    string `json:"location"`
	Coordinates string `json:"coordinates"`
}

var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// EventTime parses EventDate. Values without an offset are read in loc.
func (d Destination) EventTime(loc *time.Location) (time.Time, bool) {
	if d.EventDate == nil {
		return time.Time{}, false
	}
	raw := strings.TrimSpace(*d.EventDate)
	if raw == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range eventDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Preview returns the card teaser: the first 100 characters plus an ellipsis.
func (d Destination) Preview() string {
	const limit = 100
	runes := []rune(d.Description)
	if len(runes) > limit {
		runes = runes[:limit]
	}
	return string(runes) + "..."
}

func FindDestination(destinations []Destination, id int) (Destination, bool) {
	for _, d := range destinations {
		if d.ID == id {
			return d, true
		}
	}
	return Destination{}, false
}
