package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/domain/billing"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/domain/content"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/domain/event"
)

// EventRepository persists scheduled calendar events. Owner-scoped methods
// never cross owner boundaries; ListDueUnscoped and MarkNotified are the
// elevated capabilities reserved for the watchdog and are kept separate from
// the owner-scoped surface on purpose.
type EventRepository interface {
	Create(ctx context.Context, e *event.ScheduledEvent) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]event.ScheduledEvent, error)
	DeleteByOwner(ctx context.Context, ownerID, eventID uuid.UUID) error

	ListDueUnscoped(ctx context.Context, now time.Time) ([]event.ScheduledEvent, error)
	// MarkNotified flips status pending -> notified and reports whether this
	// call performed the transition. A false return means the row was gone or
	// already notified by a concurrent run.
	MarkNotified(ctx context.Context, eventID uuid.UUID) (bool, error)
}

type ContentRepository interface {
	CreateContent(ctx context.Context, c *content.GeneratedContent) error
	ListContentByOwner(ctx context.Context, ownerID uuid.UUID) ([]content.GeneratedContent, error)

	GetBrandProfile(ctx context.Context, ownerID uuid.UUID) (content.BrandProfile, error)
	UpsertBrandProfile(ctx context.Context, p *content.BrandProfile) error
}

type CreditRepository interface {
	GetOrSeed(ctx context.Context, ownerID uuid.UUID, seed int) (billing.CreditAccount, error)
	// Decrement spends one credit and reports whether a credit was available.
	Decrement(ctx context.Context, ownerID uuid.UUID) (bool, error)
	Refund(ctx context.Context, ownerID uuid.UUID) error
}
