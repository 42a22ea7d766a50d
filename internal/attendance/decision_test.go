package attendance

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubStore struct {
	events    []Event
	insertErr error
	findErr   error
}

func (s *stubStore) Insert(ctx context.Context, event Event) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.events = append(s.events, event)
	return nil
}

func (s *stubStore) FindByIdentityBetween(ctx context.Context, identityID string, start, end time.Time) (*Event, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	for i := len(s.events) - 1; i >= 0; i-- {
		e := s.events[i]
		if e.IdentityID == identityID && !e.Timestamp.Before(start) && e.Timestamp.Before(end) {
			return &e, nil
		}
	}
	return nil, nil
}

func TestRecordOncePerDay(t *testing.T) {
	store := &stubStore{}
	d := NewDecision(store, DayPolicy{Location: time.UTC})

	now := time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)
	first, err := d.Record(context.Background(), "alice", 0.92, "gate-1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Status != StatusRecorded {
		t.Fatalf("expected recorded, got %s", first.Status)
	}

	second, err := d.Record(context.Background(), "alice", 0.88, "gate-1", now.Add(4*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Status != StatusAlreadyRecorded {
		t.Fatalf("expected already recorded, got %s", second.Status)
	}
	if len(store.events) != 1 {
		t.Fatalf("expected exactly one stored event, got %d", len(store.events))
	}
	if second.Event.Confidence != 0.92 {
		t.Fatalf("expected the original event back, got confidence %f", second.Event.Confidence)
	}
}

func TestRecordNextDayCreatesNewEvent(t *testing.T) {
	store := &stubStore{}
	d := NewDecision(store, DayPolicy{Location: time.UTC})

	day1 := time.Date(2024, 3, 14, 23, 30, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 15, 0, 30, 0, 0, time.UTC)

	if _, err := d.Record(context.Background(), "alice", 0.9, "gate-1", day1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := d.Record(context.Background(), "alice", 0.9, "gate-1", day2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != StatusRecorded {
		t.Fatalf("expected new day to record, got %s", out.Status)
	}
	if len(store.events) != 2 {
		t.Fatalf("expected two events, got %d", len(store.events))
	}
}

func TestRolloverHourShiftsBoundary(t *testing.T) {
	store := &stubStore{}
	// Day rolls over at 05:00: 23:30 and 01:30 are the same working day.
	d := NewDecision(store, DayPolicy{Location: time.UTC, RolloverHour: 5})

	night := time.Date(2024, 3, 14, 23, 30, 0, 0, time.UTC)
	morning := time.Date(2024, 3, 15, 1, 30, 0, 0, time.UTC)

	if _, err := d.Record(context.Background(), "bob", 0.9, "gate-2", night); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := d.Record(context.Background(), "bob", 0.9, "gate-2", morning)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != StatusAlreadyRecorded {
		t.Fatalf("expected same working day to dedup, got %s", out.Status)
	}
}

func TestDistinctIdentitiesIndependent(t *testing.T) {
	store := &stubStore{}
	d := NewDecision(store, DayPolicy{Location: time.UTC})

	now := time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)
	d.Record(context.Background(), "alice", 0.9, "gate-1", now)
	out, err := d.Record(context.Background(), "bob", 0.9, "gate-1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != StatusRecorded {
		t.Fatalf("expected bob to record, got %s", out.Status)
	}
}

func TestInsertFailurePropagates(t *testing.T) {
	store := &stubStore{insertErr: errors.New("db down")}
	d := NewDecision(store, DayPolicy{Location: time.UTC})

	_, err := d.Record(context.Background(), "alice", 0.9, "gate-1", time.Now())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestWindowBeforeRollover(t *testing.T) {
	p := DayPolicy{Location: time.UTC, RolloverHour: 5}

	start, end := p.Window(time.Date(2024, 3, 15, 2, 0, 0, 0, time.UTC))
	wantStart := time.Date(2024, 3, 14, 5, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Fatalf("expected window start %v, got %v", wantStart, start)
	}
	if !end.Equal(wantStart.AddDate(0, 0, 1)) {
		t.Fatalf("unexpected window end %v", end)
	}
}
