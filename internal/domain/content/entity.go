package content

import (
	"time"

	"github.com/google/uuid"
)

// GeneratedContent is one completion result produced for an owner.
type GeneratedContent struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	Topic     string    `gorm:"type:text;not null"`
	Tone      string    `gorm:"type:varchar(50)"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
}

func (GeneratedContent) TableName() string {
	return "generated_contents"
}

// BrandProfile holds the owner's voice preferences embedded into every
// generation prompt. One row per owner.
type BrandProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Voice     string    `gorm:"type:text"`
	Audience  string    `gorm:"type:text"`
	Hashtags  string    `gorm:"type:text"`
	Signature string    `gorm:"type:text"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (BrandProfile) TableName() string {
	return "brand_profiles"
}
