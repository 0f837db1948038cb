package sync

import (
	"context"
	"fmt"

	"sellerhub/internal/config"
	"sellerhub/internal/logger"
	"sellerhub/internal/models"
	"sellerhub/internal/services/ebay"

	"gorm.io/gorm"
)

// Syncer refreshes the stored state of an account's published listings from
// eBay via GetItem.
type Syncer struct {
	config *config.Config
	logger *logger.Logger
	db     *gorm.DB
	auth   *ebay.AuthManager
}

func New(cfg *config.Config, logger *logger.Logger, db *gorm.DB) *Syncer {
	auth := ebay.NewAuthManager(ebay.AuthConfig{
		ClientID:     cfg.EbayClientID,
		ClientSecret: cfg.EbayClientSecret,
		RedirectURI:  cfg.EbayRedirectURI,
		Sandbox:      cfg.EbaySandbox,
	})
	return &Syncer{
		config: cfg,
		logger: logger,
		db:     db,
		auth:   auth,
	}
}

// SyncAccount walks the account's published listings one at a time and
// updates their status from the live item state. A single failed listing is
// logged and skipped rather than aborting the rest.
func (s *Syncer) SyncAccount(ctx context.Context, accountID string) error {
	var listings []models.Listing
	err := s.db.Where("account_id = ? AND ebay_item_id IS NOT NULL", accountID).Find(&listings).Error
	if err != nil {
		return fmt.Errorf("loading listings for account %s: %w", accountID, err)
	}

	client := ebay.NewClient(s.auth.TokenSource(s.db, accountID), s.config.EbaySandbox, s.logger)

	for i := range listings {
		listing := &listings[i]
		resp, err := client.GetItem(ctx, *listing.EbayItemID, listing.Item.Marketplace)
		if err != nil {
			s.logger.Error("Failed to fetch item %s: %v", *listing.EbayItemID, err)
			continue
		}
		if resp.Item == nil || resp.Item.SellingStatus == nil {
			continue
		}

		status := listing.Status
		switch resp.Item.SellingStatus.ListingStatus {
		case "Active":
			status = models.ListingStatusPublished
		case "Completed", "Ended":
			status = models.ListingStatusEnded
		}

		if status != listing.Status {
			listing.Status = status
			if err := s.db.Save(listing).Error; err != nil {
				s.logger.Error("Failed to update listing %s: %v", listing.ID, err)
			}
		}
	}

	s.logger.Info("Synced %d listings for account %s", len(listings), accountID)
	return nil
}
