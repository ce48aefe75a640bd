package services

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/domain/event"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/mailer"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/repository"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/pkg/logger"
)

const dispatchTimeout = 15 * time.Second

// WatchdogService scans for due pending events and advances them to
// notified, sending a best-effort reminder email for events that opted in.
// Each invocation is independent; all state lives in the event store.
type WatchdogService struct {
	repo       repository.EventRepository
	mailer     mailer.Mailer
	log        *logger.Logger
	displayLoc *time.Location
}

// WatchdogSummary reports one invocation: how many events were due and how
// many this run transitioned to notified.
type WatchdogSummary struct {
	Due       int `json:"due"`
	Processed int `json:"processed"`
}

func NewWatchdogService(repo repository.EventRepository, m mailer.Mailer, log *logger.Logger, displayTimezone string) *WatchdogService {
	loc, err := time.LoadLocation(displayTimezone)
	if err != nil {
		if log != nil {
			log.Warnf("unknown display timezone %q, falling back to UTC", displayTimezone)
		}
		loc = time.UTC
	}
	return &WatchdogService{repo: repo, mailer: m, log: log, displayLoc: loc}
}

// Run performs one watchdog pass. A failure to fetch the due set is fatal
// for the invocation; per-event failures are isolated and only reduce the
// processed count.
func (s *WatchdogService) Run(ctx context.Context, now time.Time) (WatchdogSummary, error) {
	due, err := s.repo.ListDueUnscoped(ctx, now)
	if err != nil {
		return WatchdogSummary{}, err
	}

	summary := WatchdogSummary{Due: len(due)}
	for _, ev := range due {
		if s.process(ctx, ev) {
			summary.Processed++
		}
	}
	return summary, nil
}

func (s *WatchdogService) process(ctx context.Context, ev event.ScheduledEvent) bool {
	// Dispatch first, then flip status. A dispatch failure is absorbed: the
	// event is still marked notified and will not be retried. The reverse
	// failure mode (dispatched but the update fails) leaves the row pending,
	// so delivery is at-least-once.
	if ev.Notify && ev.OwnerContact != "" {
		dctx, cancel := context.WithTimeout(ctx, dispatchTimeout)
		err := s.mailer.Send(dctx, ev.OwnerContact, s.subject(ev), s.body(ev))
		cancel()
		if err != nil {
			s.log.Errorf("reminder dispatch failed for event %s: %s", ev.ID, err)
		}
	}

	claimed, err := s.repo.MarkNotified(ctx, ev.ID)
	if err != nil {
		s.log.Errorf("status update failed for event %s: %s", ev.ID, err)
		return false
	}
	if !claimed {
		// A concurrent run got there first; nothing left to do.
		return false
	}
	return true
}

func (s *WatchdogService) subject(ev event.ScheduledEvent) string {
	return fmt.Sprintf("Reminder: your %s content is scheduled", ev.Platform)
}

func (s *WatchdogService) body(ev event.ScheduledEvent) string {
	when := ev.ScheduledAt.In(s.displayLoc).Format("Mon, Jan 2 2006 at 3:04 PM MST")
	return fmt.Sprintf(
		"<html><body><p>Hi there,</p><p>This is a reminder that <b>%s</b> is scheduled for %s on %s.</p><p>Time to get posting!</p></body></html>",
		html.EscapeString(ev.Title), when, html.EscapeString(ev.Platform))
}
