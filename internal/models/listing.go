package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListingStatus string

const (
	ListingStatusDraft     ListingStatus = "DRAFT"
	ListingStatusPublished ListingStatus = "PUBLISHED"
	ListingStatusEnded     ListingStatus = "ENDED"
	ListingStatusFailed    ListingStatus = "FAILED"
)

// Listing stores a canonical listing together with its remote state. Item is
// the marketplace-agnostic description the transformer consumes; EbayItemID
// is set once the listing has been published.
type Listing struct {
	ID         string             `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AccountID  string             `json:"account_id" gorm:"not null"`
	SKU        string             `json:"sku"`
	EbayItemID *string            `json:"ebay_item_id"`
	Status     ListingStatus      `json:"status" gorm:"default:DRAFT"`
	Item       TradingListingItem `json:"item" gorm:"serializer:json"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.SKU == "" {
		l.SKU = l.Item.SKU
	}
	return nil
}
