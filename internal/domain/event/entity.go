package event

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the notification state of a scheduled event
type Status string

const (
	StatusPending  Status = "pending"
	StatusNotified Status = "notified"
)

// Known target platforms. The set is advisory only; any string is accepted
// and unknown values are carried through as-is.
const (
	PlatformTwitter   = "twitter"
	PlatformLinkedIn  = "linkedin"
	PlatformInstagram = "instagram"
	PlatformFacebook  = "facebook"
	PlatformOther     = "other"
)

// ScheduledEvent is a calendar entry for planned content. Once the scheduled
// time passes, the watchdog moves it from pending to notified; the transition
// is one-way.
type ScheduledEvent struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:text;not null"`
	ScheduledAt  time.Time `gorm:"not null;index"`
	Platform     string    `gorm:"type:varchar(50);default:'other'"`
	Notify       bool      `gorm:"not null;default:false"`
	OwnerContact string    `gorm:"type:varchar(255)"`
	Status       Status    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt    time.Time `gorm:"not null;default:now()"`
}

// TableName returns the database table name
func (ScheduledEvent) TableName() string {
	return "scheduled_events"
}
