package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/domain/event"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/repository"
	apperrors "github.com/RedPanda-08/AI-Content-Generator-sub000/pkg/errors"
)

// CalendarService owns the lifecycle of scheduled events: owner-scoped
// create, list and delete. The watchdog is the only mutator of event status.
type CalendarService struct {
	repo repository.EventRepository
}

func NewCalendarService(repo repository.EventRepository) *CalendarService {
	return &CalendarService{repo: repo}
}

type CreateEventInput struct {
	Title        string
	ScheduledAt  time.Time
	Platform     string
	Notify       bool
	OwnerContact string
}

func (s *CalendarService) List(ctx context.Context, ownerID uuid.UUID) ([]event.ScheduledEvent, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *CalendarService) Create(ctx context.Context, ownerID uuid.UUID, in CreateEventInput) (event.ScheduledEvent, error) {
	if strings.TrimSpace(in.Title) == "" || in.ScheduledAt.IsZero() {
		return event.ScheduledEvent{}, apperrors.ErrInvalidInput
	}

	platform := strings.TrimSpace(in.Platform)
	if platform == "" {
		platform = event.PlatformOther
	}

	e := event.ScheduledEvent{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Title:        strings.TrimSpace(in.Title),
		ScheduledAt:  in.ScheduledAt.UTC(),
		Platform:     platform,
		Notify:       in.Notify,
		OwnerContact: strings.TrimSpace(in.OwnerContact),
		Status:       event.StatusPending,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, &e); err != nil {
		return event.ScheduledEvent{}, err
	}
	return e, nil
}

// Delete removes the event only when it belongs to the owner. A miss (wrong
// owner or unknown id) is a silent no-op so callers cannot probe for other
// owners' events.
func (s *CalendarService) Delete(ctx context.Context, ownerID, eventID uuid.UUID) error {
	if eventID == uuid.Nil {
		return apperrors.ErrInvalidInput
	}
	return s.repo.DeleteByOwner(ctx, ownerID, eventID)
}
