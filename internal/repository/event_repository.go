package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/domain/event"
)

type PostgresEventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &PostgresEventRepository{db: db}
}

func (r *PostgresEventRepository) Create(ctx context.Context, e *event.ScheduledEvent) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *PostgresEventRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]event.ScheduledEvent, error) {
	var events []event.ScheduledEvent
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("scheduled_at ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// DeleteByOwner conjoins id and owner in one predicate so a caller can never
// distinguish "not found" from "not yours". Zero rows matched is success.
func (r *PostgresEventRepository) DeleteByOwner(ctx context.Context, ownerID, eventID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", eventID, ownerID).
		Delete(&event.ScheduledEvent{}).Error
}

func (r *PostgresEventRepository) ListDueUnscoped(ctx context.Context, now time.Time) ([]event.ScheduledEvent, error) {
	var events []event.ScheduledEvent
	err := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_at <= ?", event.StatusPending, now).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *PostgresEventRepository) MarkNotified(ctx context.Context, eventID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&event.ScheduledEvent{}).
		Where("id = ? AND status = ?", eventID, event.StatusPending).
		Update("status", event.StatusNotified)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
