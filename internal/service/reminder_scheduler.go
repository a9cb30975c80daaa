package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
)

const (
	DefaultReminderLead = time.Hour
	DefaultReminderIcon = "/js/logo.png"
	notifyTimeout       = 10 * time.Second
)

// Notifier delivers a fired reminder somewhere the user will see it.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

type NotifierFunc func(ctx context.Context, n domain.Notification) error

func (f NotifierFunc) Notify(ctx context.Context, n domain.Notification) error {
	return f(ctx, n)
}

type ReminderConfig struct {
	Lead        time.Duration
	DefaultIcon string
	Location    *time.Location
}

type reminderKey struct {
	userID        int64
	destinationID int
}

type pendingReminder struct {
	timer *time.Timer
	seq   uint64
	at    time.Time
}

// ReminderScheduler keeps one in-process timer per (user, destination). Timers
// are never persisted and are lost on restart.
type ReminderScheduler struct {
	notifiers []Notifier
	lead      time.Duration
	icon      string
	loc       *time.Location
	now       func() time.Time

	mu      sync.Mutex
	pending map[reminderKey]pendingReminder
	seq     uint64
	stopped bool
}

func NewReminderScheduler(cfg ReminderConfig, notifiers ...Notifier) *ReminderScheduler {
	if cfg.Lead <= 0 {
		cfg.Lead = DefaultReminderLead
	}
	if strings.TrimSpace(cfg.DefaultIcon) == "" {
		cfg.DefaultIcon = DefaultReminderIcon
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &ReminderScheduler{
		notifiers: notifiers,
		lead:      cfg.Lead,
		icon:      cfg.DefaultIcon,
		loc:       cfg.Location,
		now:       time.Now,
		pending:   make(map[reminderKey]pendingReminder),
	}
}

// AddNotifier registers another delivery target. Call before scheduling.
func (s *ReminderScheduler) AddNotifier(n Notifier) {
	if n == nil {
		return
	}
	s.mu.Lock()
	s.notifiers = append(s.notifiers, n)
	s.mu.Unlock()
}

// Schedule arms a reminder lead before the destination's event date. It
// replaces any pending reminder for the same pair and reports the fire time.
// Nothing is scheduled when the event has no date or the fire time is past.
func (s *ReminderScheduler) Schedule(user domain.User, dest domain.Destination) (time.Time, bool) {
	eventAt, ok := dest.EventTime(s.loc)
	if !ok {
		return time.Time{}, false
	}
	fireAt := eventAt.Add(-s.lead)
	delay := fireAt.Sub(s.now())
	if delay <= 0 {
		return time.Time{}, false
	}

	key := reminderKey{userID: user.ID, destinationID: dest.ID}
	notification := s.buildNotification(user, dest)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return time.Time{}, false
	}
	if existing, ok := s.pending[key]; ok {
		existing.timer.Stop()
	}
	s.seq++
	seq := s.seq
	timer := time.AfterFunc(delay, func() { s.fire(key, seq, notification) })
	s.pending[key] = pendingReminder{timer: timer, seq: seq, at: fireAt}
	return fireAt, true
}

func (s *ReminderScheduler) buildNotification(user domain.User, dest domain.Destination) domain.Notification {
	icon := strings.TrimSpace(dest.ImageURL)
	if icon == "" {
		icon = s.icon
	}
	return domain.Notification{
		UserID:        user.ID,
		Email:         user.Email,
		DestinationID: dest.ID,
		Title:         fmt.Sprintf("Time to visit %s!", dest.Name),
		Body:          "Click here for details.",
		Icon:          icon,
	}
}

func (s *ReminderScheduler) fire(key reminderKey, seq uint64, n domain.Notification) {
	s.mu.Lock()
	current, ok := s.pending[key]
	if !ok || current.seq != seq {
		s.mu.Unlock()
		return
	}
	delete(s.pending, key)
	notifiers := append([]Notifier(nil), s.notifiers...)
	s.mu.Unlock()

	n.ID = uuid.New()
	n.CreatedAt = s.now()

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()
	for _, notifier := range notifiers {
		if err := notifier.Notify(ctx, n); err != nil {
			log.Printf("reminder: deliver %q to user %d: %v", n.Title, n.UserID, err)
		}
	}
}

func (s *ReminderScheduler) Cancel(userID int64, destinationID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := reminderKey{userID: userID, destinationID: destinationID}
	existing, ok := s.pending[key]
	if !ok {
		return false
	}
	existing.timer.Stop()
	delete(s.pending, key)
	return true
}

func (s *ReminderScheduler) CancelUser(userID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cancelled := 0
	for key, existing := range s.pending {
		if key.userID != userID {
			continue
		}
		existing.timer.Stop()
		delete(s.pending, key)
		cancelled++
	}
	return cancelled
}

// Pending returns the fire time of a scheduled reminder.
func (s *ReminderScheduler) Pending(userID int64, destinationID int) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.pending[reminderKey{userID: userID, destinationID: destinationID}]
	return existing.at, ok
}

// Stop cancels every pending reminder and refuses new ones.
func (s *ReminderScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, existing := range s.pending {
		existing.timer.Stop()
		delete(s.pending, key)
	}
	s.stopped = true
}
