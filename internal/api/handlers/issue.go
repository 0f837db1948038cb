package handlers

import (
	"net/http"
	"time"

	"sellerhub/internal/logger"
	"sellerhub/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type IssueHandler struct {
	db     *gorm.DB
	logger *logger.Logger
}

func NewIssueHandler(db *gorm.DB, logger *logger.Logger) *IssueHandler {
	return &IssueHandler{
		db:     db,
		logger: logger,
	}
}

func (h *IssueHandler) List(c *gin.Context) {
	var issues []models.Issue

	query := h.db.Model(&models.Issue{})

	if listingID := c.Query("listing_id"); listingID != "" {
		query = query.Where("listing_id = ?", listingID)
	}
	if c.Query("unresolved") == "true" {
		query = query.Where("is_resolved = ?", false)
	}

	if err := query.Order("created_at DESC").Find(&issues).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch issues"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": issues})
}

func (h *IssueHandler) Resolve(c *gin.Context) {
	id := c.Param("id")

	var issue models.Issue
	if err := h.db.First(&issue, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch issue"})
		return
	}

	now := time.Now()
	issue.IsResolved = true
	issue.ResolvedAt = &now

	if err := h.db.Save(&issue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve issue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": issue})
}
