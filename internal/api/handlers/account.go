package handlers

import (
	"net/http"
	"time"

	"sellerhub/internal/logger"
	"sellerhub/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AccountHandler struct {
	db     *gorm.DB
	logger *logger.Logger
}

func NewAccountHandler(db *gorm.DB, logger *logger.Logger) *AccountHandler {
	return &AccountHandler{
		db:     db,
		logger: logger,
	}
}

func (h *AccountHandler) List(c *gin.Context) {
	var accounts []models.Account
	if err := h.db.Find(&accounts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch accounts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": accounts})
}

func (h *AccountHandler) Get(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"data": account})
}

func (h *AccountHandler) Create(c *gin.Context) {
	var account models.Account
	if err := c.ShouldBindJSON(&account); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.db.Create(&account).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": account})
}

func (h *AccountHandler) Update(c *gin.Context) {
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

	if err := c.ShouldBindJSON(&account); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.db.Save(&account).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": account})
}

func (h *AccountHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.db.Delete(&models.Account{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// UpsertToken stores or replaces the OAuth token pair for an account. The
// refresh flow itself runs against eBay from the ebay service; this endpoint
// just persists what the OAuth callback handed over.
func (h *AccountHandler) UpsertToken(c *gin.Context) {
	accountID := c.Param("id")

	var body struct {
		AccessToken  string    `json:"access_token" binding:"required"`
		RefreshToken string    `json:"refresh_token"`
		ExpiresAt    time.Time `json:"expires_at"`
		Scopes       string    `json:"scopes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var token models.EbayToken
	err := h.db.First(&token, "account_id = ?", accountID).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		token = models.EbayToken{AccountID: accountID}
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch token"})
		return
	}

	token.AccessToken = body.AccessToken
	if body.RefreshToken != "" {
		token.RefreshToken = body.RefreshToken
	}
	token.ExpiresAt = body.ExpiresAt
	token.Scopes = body.Scopes

	if err := h.db.Save(&token).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"account_id": accountID, "expires_at": token.ExpiresAt}})
}
