package handlers

import (
	"net/http"

	"sellerhub/internal/connectors/ebay"
	"sellerhub/internal/logger"
	"sellerhub/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SyncHandler puts listing work onto the event stream for the worker to
// pick up, instead of calling eBay inline.
type SyncHandler struct {
	db        *gorm.DB
	logger    *logger.Logger
	connector *ebay.Connector
}

func NewSyncHandler(db *gorm.DB, logger *logger.Logger, connector *ebay.Connector) *SyncHandler {
	return &SyncHandler{
		db:        db,
		logger:    logger,
		connector: connector,
	}
}

// SyncAccount requests a background refresh of an account's published
// listings from eBay.
func (h *SyncHandler) SyncAccount(c *gin.Context) {
	id := c.Param("id")

	var account models.Account
	if err := h.db.First(&account, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch account"})
		return
	}

	if err := h.connector.RequestSync(c.Request.Context(), account.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to queue sync"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"data": gin.H{"account_id": account.ID, "status": "queued"}})
}

// EnqueuePublish requests a background publish of a draft listing.
func (h *SyncHandler) EnqueuePublish(c *gin.Context) {
	id := c.Param("id")

	var listing models.Listing
	if err := h.db.First(&listing, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch listing"})
		return
	}

	if err := h.connector.RequestPublish(c.Request.Context(), listing.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to queue publish"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"data": gin.H{"listing_id": listing.ID, "status": "queued"}})
}
