package billing

import (
	"time"

	"github.com/google/uuid"
)

// CreditAccount is a per-owner generation counter. Purchases and plan
// management live with the external billing provider; this table only tracks
// the remaining allowance.
type CreditAccount struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Remaining int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (CreditAccount) TableName() string {
	return "credit_accounts"
}
