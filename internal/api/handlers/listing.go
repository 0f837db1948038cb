package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"sellerhub/internal/config"
	"sellerhub/internal/logger"
	"sellerhub/internal/models"
	"sellerhub/internal/services/ebay"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ListingHandler struct {
	db     *gorm.DB
	logger *logger.Logger
	config *config.Config
	auth   *ebay.AuthManager
}

func NewListingHandler(db *gorm.DB, logger *logger.Logger, cfg *config.Config, auth *ebay.AuthManager) *ListingHandler {
	return &ListingHandler{
		db:     db,
		logger: logger,
		config: cfg,
		auth:   auth,
	}
}

func (h *ListingHandler) List(c *gin.Context) {
	var listings []models.Listing

	// Pagination
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset := (page - 1) * limit

	// Filters
	status := c.Query("status")
	accountID := c.Query("account_id")

	query := h.db.Model(&models.Listing{})

	if status != "" {
		query = query.Where("status = ?", status)
	}

	if accountID != "" {
		query = query.Where("account_id = ?", accountID)
	}

	var total int64
	query.Count(&total)

	if err := query.Offset(offset).Limit(limit).Find(&listings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch listings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": listings,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

func (h *ListingHandler) Get(c *gin.Context) {
	listing, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": listing})
}

func (h *ListingHandler) Create(c *gin.Context) {
	var listing models.Listing
	if err := c.ShouldBindJSON(&listing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if listing.Item.Marketplace == "" {
		listing.Item.Marketplace = h.config.DefaultMarketplace
	}

	if err := h.db.Create(&listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create listing"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": listing})
}

func (h *ListingHandler) Update(c *gin.Context) {
	listing, ok := h.load(c)
	if !ok {
		return
	}

	if err := c.ShouldBindJSON(listing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.db.Save(listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update listing"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": listing})
}

func (h *ListingHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.db.Delete(&models.Listing{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete listing"})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// Publish sends the listing to eBay via AddFixedPriceItem (or the verify
// variant when the item is flagged verifyOnly).
func (h *ListingHandler) Publish(c *gin.Context) {
	listing, ok := h.load(c)
	if !ok {
		return
	}

	client := h.client(listing.AccountID)
	resp, err := client.AddFixedPriceItem(c.Request.Context(), &listing.Item)
	if err != nil {
		h.fail(c, listing, err)
		return
	}

	if !listing.Item.VerifyOnly {
		listing.EbayItemID = &resp.ItemID
		listing.Status = models.ListingStatusPublished
		if err := h.db.Save(listing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update listing"})
			return
		}
	}

	h.recordWarnings(listing.ID, resp.Warnings)
	c.JSON(http.StatusOK, gin.H{"data": listing, "response": resp})
}

// Revise pushes the stored listing state to the live eBay item.
func (h *ListingHandler) Revise(c *gin.Context) {
	listing, ok := h.load(c)
	if !ok {
		return
	}
	if listing.EbayItemID == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Listing has not been published"})
		return
	}

	client := h.client(listing.AccountID)
	resp, err := client.ReviseFixedPriceItem(c.Request.Context(), *listing.EbayItemID, &listing.Item)
	if err != nil {
		h.fail(c, listing, err)
		return
	}

	h.recordWarnings(listing.ID, resp.Warnings)
	c.JSON(http.StatusOK, gin.H{"data": listing, "response": resp})
}

// Relist recreates an ended listing; eBay assigns a new item ID.
func (h *ListingHandler) Relist(c *gin.Context) {
	listing, ok := h.load(c)
	if !ok {
		return
	}
	if listing.EbayItemID == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Listing has not been published"})
		return
	}

	client := h.client(listing.AccountID)
	resp, err := client.RelistFixedPriceItem(c.Request.Context(), *listing.EbayItemID, &listing.Item)
	if err != nil {
		h.fail(c, listing, err)
		return
	}

	listing.EbayItemID = &resp.ItemID
	listing.Status = models.ListingStatusPublished
	if err := h.db.Save(listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update listing"})
		return
	}

	h.recordWarnings(listing.ID, resp.Warnings)
	c.JSON(http.StatusOK, gin.H{"data": listing, "response": resp})
}

// End ends the live eBay listing.
func (h *ListingHandler) End(c *gin.Context) {
	listing, ok := h.load(c)
	if !ok {
		return
	}
	if listing.EbayItemID == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Listing has not been published"})
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	c.ShouldBindJSON(&body)

	client := h.client(listing.AccountID)
	resp, err := client.EndFixedPriceItem(c.Request.Context(), *listing.EbayItemID, body.Reason, listing.Item.Marketplace)
	if err != nil {
		h.fail(c, listing, err)
		return
	}

	listing.Status = models.ListingStatusEnded
	if err := h.db.Save(listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update listing"})
		return
	}

	h.recordWarnings(listing.ID, resp.Warnings)
	c.JSON(http.StatusOK, gin.H{"data": listing, "response": resp})
}

// Remote fetches the listing's current state from eBay.
func (h *ListingHandler) Remote(c *gin.Context) {
	listing, ok := h.load(c)
	if !ok {
		return
	}
	if listing.EbayItemID == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Listing has not been published"})
		return
	}

	client := h.client(listing.AccountID)
	resp, err := client.GetItem(c.Request.Context(), *listing.EbayItemID, listing.Item.Marketplace)
	if err != nil {
		h.fail(c, listing, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (h *ListingHandler) load(c *gin.Context) (*models.Listing, bool) {
	id := c.Param("id")

	var listing models.Listing
	if err := h.db.First(&listing, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch listing"})
		return nil, false
	}
	return &listing, true
}

func (h *ListingHandler) client(accountID string) *ebay.Client {
	return ebay.NewClient(h.auth.TokenSource(h.db, accountID), h.config.EbaySandbox, h.logger)
}

// fail translates an eBay failure into the API response, preserving eBay's
// error codes, and records the error entries as listing issues.
func (h *ListingHandler) fail(c *gin.Context, listing *models.Listing, err error) {
	var apiErr *ebay.APIError
	if errors.As(err, &apiErr) {
		for _, detail := range apiErr.Errors {
			issue := models.Issue{
				ListingID:    listing.ID,
				Code:         detail.ErrorCode,
				Severity:     detail.SeverityCode,
				ShortMessage: detail.ShortMessage,
				LongMessage:  detail.LongMessage,
			}
			if err := h.db.Create(&issue).Error; err != nil {
				h.logger.Error("Failed to record issue for listing %s: %v", listing.ID, err)
			}
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "eBay rejected the request",
			"ack":    apiErr.Ack,
			"errors": apiErr.Errors,
		})
		return
	}

	h.logger.Error("Trading call failed for listing %s: %v", listing.ID, err)
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}

func (h *ListingHandler) recordWarnings(listingID string, warnings []ebay.ErrorDetail) {
	for _, warning := range warnings {
		issue := models.Issue{
			ListingID:    listingID,
			Code:         warning.ErrorCode,
			Severity:     warning.SeverityCode,
			ShortMessage: warning.ShortMessage,
			LongMessage:  warning.LongMessage,
		}
		if err := h.db.Create(&issue).Error; err != nil {
			h.logger.Error("Failed to record warning for listing %s: %v", listingID, err)
		}
	}
}
