// Package attendance turns an accepted match into a deduplicated
// attendance event: at most one per identity per calendar day.
package attendance

import (
	"context"
	"time"
)

// Event is one recorded attendance. Events are append-only.
type Event struct {
	IdentityID string    `json:"identity_id"`
	Timestamp  time.Time `json:"timestamp"`
	Confidence float64   `json:"confidence"`
	Device     string    `json:"device"`
}

// Store is the persistence the decision needs. Uniqueness per day is
// enforced here, not by the store.
type Store interface {
	Insert(ctx context.Context, event Event) error
	FindByIdentityBetween(ctx context.Context, identityID string, start, end time.Time) (*Event, error)
}

// DayPolicy defines where the calendar-day boundary falls. The rollover
// hour supports sites whose working day does not start at midnight.
type DayPolicy struct {
	Location     *time.Location
	RolloverHour int
}

// DefaultDayPolicy rolls the day over at local midnight.
func DefaultDayPolicy() DayPolicy {
	return DayPolicy{Location: time.Local}
}

// Window returns the calendar-day window containing t.
func (p DayPolicy) Window(t time.Time) (start, end time.Time) {
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	start = time.Date(local.Year(), local.Month(), local.Day(), p.RolloverHour, 0, 0, 0, loc)
	if local.Before(start) {
		start = start.AddDate(0, 0, -1)
	}
	return start, start.AddDate(0, 0, 1)
}

// Status reports how a decision came out.
type Status string

const (
	// StatusRecorded means a new event was created.
	StatusRecorded Status = "recorded"
	// StatusAlreadyRecorded means attendance already existed for the day.
	// This is informational, not an error.
	StatusAlreadyRecorded Status = "already_recorded"
)

// Outcome carries the decision status and the event it refers to: the
// freshly created one, or the pre-existing one for duplicates.
type Outcome struct {
	Status Status `json:"status"`
	Event  Event  `json:"event"`
}

// Decision applies the dedup policy on top of the store.
type Decision struct {
	store  Store
	policy DayPolicy
}

// NewDecision creates a decision bound to a store and day policy.
func NewDecision(store Store, policy DayPolicy) *Decision {
	return &Decision{store: store, policy: policy}
}

// Record looks up the identity's most recent event inside the current day
// window. If one exists it is returned with StatusAlreadyRecorded and
// nothing is created; otherwise a new event is inserted.
func (d *Decision) Record(ctx context.Context, identityID string, confidence float64, device string, now time.Time) (Outcome, error) {
	start, end := d.policy.Window(now)

	existing, err := d.store.FindByIdentityBetween(ctx, identityID, start, end)
	if err != nil {
		return Outcome{}, err
	}
	if existing != nil {
		return Outcome{Status: StatusAlreadyRecorded, Event: *existing}, nil
	}

	event := Event{
		IdentityID: identityID,
		Timestamp:  now,
		Confidence: confidence,
		Device:     device,
	}
	if err := d.store.Insert(ctx, event); err != nil {
		return Outcome{}, err
	}
	return Outcome{Status: StatusRecorded, Event: event}, nil
}
