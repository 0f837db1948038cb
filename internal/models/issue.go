package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Issue records an eBay warning or error attached to a listing, preserving
// eBay's own code and messages for display.
type Issue struct {
	ID           string     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ListingID    string     `json:"listing_id" gorm:"not null"`
	Code         string     `json:"code" gorm:"not null"`
	Severity     string     `json:"severity" gorm:"not null"`
	ShortMessage string     `json:"short_message"`
	LongMessage  string     `json:"long_message"`
	IsResolved   bool       `json:"is_resolved" gorm:"default:false"`
	ResolvedAt   *time.Time `json:"resolved_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (i *Issue) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
