package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account is a connected eBay seller account.
type Account struct {
	ID          string    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EbayUserID  string    `json:"ebay_user_id" gorm:"unique;not null"`
	Email       string    `json:"email"`
	Marketplace string    `json:"marketplace" gorm:"default:EBAY_US"`
	Status      string    `json:"status" gorm:"default:ACTIVE"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EbayToken is the persisted OAuth token pair for an account. The access
// token is refreshed in place when it nears expiry.
type EbayToken struct {
	ID           string    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AccountID    string    `json:"account_id" gorm:"unique;not null"`
	AccessToken  string    `json:"-" gorm:"not null"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`
	Scopes       string    `json:"scopes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

func (t *EbayToken) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
