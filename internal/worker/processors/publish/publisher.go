package publish

import (
	"context"
	"errors"
	"fmt"

	"sellerhub/internal/config"
	"sellerhub/internal/logger"
	"sellerhub/internal/models"
	"sellerhub/internal/services/ebay"

	"gorm.io/gorm"
)

// Publisher executes queued publish/end events against the Trading API and
// writes the outcome back to the listing.
type Publisher struct {
	config *config.Config
	logger *logger.Logger
	db     *gorm.DB
	auth   *ebay.AuthManager
}

func New(cfg *config.Config, logger *logger.Logger, db *gorm.DB) *Publisher {
	auth := ebay.NewAuthManager(ebay.AuthConfig{
		ClientID:     cfg.EbayClientID,
		ClientSecret: cfg.EbayClientSecret,
		RedirectURI:  cfg.EbayRedirectURI,
		Sandbox:      cfg.EbaySandbox,
	})
	return &Publisher{
		config: cfg,
		logger: logger,
		db:     db,
		auth:   auth,
	}
}

// Publish sends a stored listing to eBay and records the assigned item ID.
func (p *Publisher) Publish(ctx context.Context, listingID string) error {
	var listing models.Listing
	if err := p.db.First(&listing, "id = ?", listingID).Error; err != nil {
		return fmt.Errorf("loading listing %s: %w", listingID, err)
	}

	client := p.client(listing.AccountID)
	resp, err := client.AddFixedPriceItem(ctx, &listing.Item)
	if err != nil {
		p.recordFailure(&listing, err)
		return err
	}

	if !listing.Item.VerifyOnly {
		listing.EbayItemID = &resp.ItemID
		listing.Status = models.ListingStatusPublished
		if err := p.db.Save(&listing).Error; err != nil {
			return fmt.Errorf("saving listing %s: %w", listingID, err)
		}
	}

	p.recordIssues(listing.ID, resp.Warnings)
	p.logger.Info("Published listing %s as eBay item %s", listing.ID, resp.ItemID)
	return nil
}

// End ends the live eBay listing behind a stored listing.
func (p *Publisher) End(ctx context.Context, listingID, reason string) error {
	var listing models.Listing
	if err := p.db.First(&listing, "id = ?", listingID).Error; err != nil {
		return fmt.Errorf("loading listing %s: %w", listingID, err)
	}
	if listing.EbayItemID == nil {
		return fmt.Errorf("listing %s has not been published", listingID)
	}

	client := p.client(listing.AccountID)
	resp, err := client.EndFixedPriceItem(ctx, *listing.EbayItemID, reason, listing.Item.Marketplace)
	if err != nil {
		p.recordFailure(&listing, err)
		return err
	}

	listing.Status = models.ListingStatusEnded
	if err := p.db.Save(&listing).Error; err != nil {
		return fmt.Errorf("saving listing %s: %w", listingID, err)
	}

	p.recordIssues(listing.ID, resp.Warnings)
	return nil
}

func (p *Publisher) client(accountID string) *ebay.Client {
	return ebay.NewClient(p.auth.TokenSource(p.db, accountID), p.config.EbaySandbox, p.logger)
}

func (p *Publisher) recordFailure(listing *models.Listing, err error) {
	var apiErr *ebay.APIError
	if errors.As(err, &apiErr) {
		p.recordIssues(listing.ID, apiErr.Errors)
		listing.Status = models.ListingStatusFailed
		if err := p.db.Save(listing).Error; err != nil {
			p.logger.Error("Failed to mark listing %s failed: %v", listing.ID, err)
		}
	}
}

func (p *Publisher) recordIssues(listingID string, details []ebay.ErrorDetail) {
	for _, detail := range details {
		issue := models.Issue{
			ListingID:    listingID,
			Code:         detail.ErrorCode,
			Severity:     detail.SeverityCode,
			ShortMessage: detail.ShortMessage,
			LongMessage:  detail.LongMessage,
		}
		if err := p.db.Create(&issue).Error; err != nil {
			p.logger.Error("Failed to record issue for listing %s: %v", listingID, err)
		}
	}
}
