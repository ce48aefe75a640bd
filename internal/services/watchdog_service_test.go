package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/domain/event"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.DevelopmentMode)
}

func seedEvent(repo *fakeEventRepo, scheduledAt time.Time, notify bool, contact string) event.ScheduledEvent {
	e := event.ScheduledEvent{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		Title:        "Quarterly recap",
		ScheduledAt:  scheduledAt,
		Platform:     event.PlatformLinkedIn,
		Notify:       notify,
		OwnerContact: contact,
		Status:       event.StatusPending,
		CreatedAt:    time.Now(),
	}
	repo.events[e.ID] = &e
	return e
}

func TestRunNothingDue(t *testing.T) {
	repo := newFakeEventRepo()
	m := newFakeMailer()
	svc := NewWatchdogService(repo, m, testLogger(), "UTC")

	now := time.Now()
	seedEvent(repo, now.Add(time.Hour), true, "owner@example.com")

	summary, err := svc.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Due != 0 || summary.Processed != 0 {
		t.Errorf("summary = %+v, want zero due and processed", summary)
	}
	if len(m.sent) != 0 {
		t.Errorf("expected no dispatch, got %d", len(m.sent))
	}
	for _, e := range repo.events {
		if e.Status != event.StatusPending {
			t.Errorf("future event mutated to %q", e.Status)
		}
	}
}

func TestRunNotifiesDueEvent(t *testing.T) {
	repo := newFakeEventRepo()
	m := newFakeMailer()
	svc := NewWatchdogService(repo, m, testLogger(), "UTC")

	now := time.Now()
	e := seedEvent(repo, now.Add(-time.Minute), true, "owner@example.com")

	summary, err := svc.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Due != 1 || summary.Processed != 1 {
		t.Errorf("summary = %+v, want 1 due and 1 processed", summary)
	}
	if len(m.sent) != 1 {
		t.Fatalf("expected exactly one dispatch, got %d", len(m.sent))
	}
	if m.sent[0].To != "owner@example.com" {
		t.Errorf("dispatched to %q", m.sent[0].To)
	}
	if !strings.Contains(m.sent[0].Subject, event.PlatformLinkedIn) {
		t.Errorf("subject %q should reference the platform", m.sent[0].Subject)
	}
	if !strings.Contains(m.sent[0].Body, "Quarterly recap") {
		t.Errorf("body should reference the title, got %q", m.sent[0].Body)
	}

	got, _ := repo.get(e.ID)
	if got.Status != event.StatusNotified {
		t.Errorf("status = %q, want notified", got.Status)
	}
}

func TestRunSkipsDispatchWithoutContact(t *testing.T) {
	repo := newFakeEventRepo()
	m := newFakeMailer()
	svc := NewWatchdogService(repo, m, testLogger(), "UTC")

	now := time.Now()
	e := seedEvent(repo, now.Add(-time.Minute), true, "")

	summary, err := svc.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(m.sent) != 0 {
		t.Errorf("expected no dispatch without a contact, got %d", len(m.sent))
	}
	got, _ := repo.get(e.ID)
	if got.Status != event.StatusNotified {
		t.Errorf("status = %q, want notified even without dispatch", got.Status)
	}
	if summary.Processed != 1 {
		t.Errorf("processed = %d, want 1", summary.Processed)
	}
}

func TestRunSkipsDispatchWhenOptedOut(t *testing.T) {
	repo := newFakeEventRepo()
	m := newFakeMailer()
	svc := NewWatchdogService(repo, m, testLogger(), "UTC")

	now := time.Now()
	// notify=false rows are still swept by the due scan; the flag only gates
	// the dispatch call.
	e := seedEvent(repo, now.Add(-time.Minute), false, "owner@example.com")

	summary, err := svc.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(m.sent) != 0 {
		t.Errorf("expected no dispatch for opted-out event, got %d", len(m.sent))
	}
	got, _ := repo.get(e.ID)
	if got.Status != event.StatusNotified {
		t.Errorf("status = %q, want notified", got.Status)
	}
	if summary.Processed != 1 {
		t.Errorf("processed = %d, want 1", summary.Processed)
	}
}

func TestRunAbsorbsDispatchFailure(t *testing.T) {
	repo := newFakeEventRepo()
	m := newFakeMailer()
	svc := NewWatchdogService(repo, m, testLogger(), "UTC")

	now := time.Now()
	failing := seedEvent(repo, now.Add(-time.Minute), true, "broken@example.com")
	healthy := seedEvent(repo, now.Add(-time.Minute), true, "fine@example.com")
	m.failFor["broken@example.com"] = true

	summary, err := svc.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Dispatch failure is absorbed: both rows still transition and count.
	for _, id := range []uuid.UUID{failing.ID, healthy.ID} {
		got, _ := repo.get(id)
		if got.Status != event.StatusNotified {
			t.Errorf("event %s status = %q, want notified", id, got.Status)
		}
	}
	if summary.Processed != 2 {
		t.Errorf("processed = %d, want 2", summary.Processed)
	}
}

func TestRunIsolatesUpdateFailure(t *testing.T) {
	repo := newFakeEventRepo()
	m := newFakeMailer()
	svc := NewWatchdogService(repo, m, testLogger(), "UTC")

	now := time.Now()
	stuck := seedEvent(repo, now.Add(-time.Minute), true, "stuck@example.com")
	healthy := seedEvent(repo, now.Add(-time.Minute), true, "fine@example.com")
	repo.failMark[stuck.ID] = true

	summary, err := svc.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("one event's update failure must not fail the run: %v", err)
	}

	if summary.Processed != 1 {
		t.Errorf("processed = %d, want only the successful update counted", summary.Processed)
	}
	got, _ := repo.get(stuck.ID)
	if got.Status != event.StatusPending {
		t.Errorf("failed update should leave the row pending, got %q", got.Status)
	}
	gotHealthy, _ := repo.get(healthy.ID)
	if gotHealthy.Status != event.StatusNotified {
		t.Errorf("healthy event should still transition, got %q", gotHealthy.Status)
	}
}

func TestRunTwiceDoesNotRenotify(t *testing.T) {
	repo := newFakeEventRepo()
	m := newFakeMailer()
	svc := NewWatchdogService(repo, m, testLogger(), "UTC")

	now := time.Now()
	seedEvent(repo, now.Add(-time.Minute), true, "owner@example.com")

	if _, err := svc.Run(context.Background(), now); err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	summary, err := svc.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}

	if summary.Due != 0 || summary.Processed != 0 {
		t.Errorf("second run summary = %+v, want nothing due", summary)
	}
	if len(m.sent) != 1 {
		t.Errorf("expected a single dispatch across both runs, got %d", len(m.sent))
	}
}

func TestRunDueQueryFailureIsFatal(t *testing.T) {
	repo := newFakeEventRepo()
	repo.failDue = true
	svc := NewWatchdogService(repo, newFakeMailer(), testLogger(), "UTC")

	if _, err := svc.Run(context.Background(), time.Now()); err == nil {
		t.Error("expected error when the due-set query fails")
	}
}

func TestReminderBodyUsesDisplayTimezone(t *testing.T) {
	repo := newFakeEventRepo()
	m := newFakeMailer()
	svc := NewWatchdogService(repo, m, testLogger(), "America/New_York")

	// 18:00 UTC renders as 2:00 PM eastern daylight time.
	when := time.Date(2026, 7, 10, 18, 0, 0, 0, time.UTC)
	seedEvent(repo, when, true, "owner@example.com")

	if _, err := svc.Run(context.Background(), when.Add(time.Minute)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(m.sent) != 1 {
		t.Fatalf("expected one dispatch, got %d", len(m.sent))
	}
	if !strings.Contains(m.sent[0].Body, "2:00 PM") {
		t.Errorf("body should render the scheduled time in the display timezone, got %q", m.sent[0].Body)
	}
}
