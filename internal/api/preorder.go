package api

import (
	"net/http" // HTTP status codes

	"babyshower_backend/internal/domain"     // Importing domain models
	"babyshower_backend/internal/middleware" // Request-scoped logging

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// PreorderCountHandler returns the running pre-order tally. A storage failure
// soft-fails to zero so the landing page still renders.
func PreorderCountHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var count int64
		if err := db.Model(&domain.Preorder{}).Count(&count).Error; err != nil {
			middleware.Logger(c).WithField("error", err.Error()).Error("Preorder count failed")
			c.JSON(http.StatusOK, gin.H{"count": 0}) // Safe fallback
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}

// AddPreorderHandler records one pre-order click and returns the new tally
func AddPreorderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Create(&domain.Preorder{}).Error; err != nil {
			middleware.Logger(c).WithField("error", err.Error()).Error("Preorder insert failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to pre-order"})
			return
		}
		var count int64
		if err := db.Model(&domain.Preorder{}).Count(&count).Error; err != nil {
			middleware.Logger(c).WithField("error", err.Error()).Error("Preorder count failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to pre-order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}
