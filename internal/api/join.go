package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"babyshower_backend/internal/domain"     // Importing domain models
	"babyshower_backend/internal/middleware" // Request-scoped logging

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// JoinRequest represents a join request
type JoinRequest struct {
	Name     string `json:"name"`     // Display name, trimmed server-side
	Relation string `json:"relation"` // Relation to the baby, trimmed server-side
}

// JoinHandler registers a new participant. The returned participantId is the
// token the client stores locally and replays on predict/sticker calls; it is
// revalidated against the participants table on every such call, never
// trusted as a credential.
func JoinHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name and relation are required"})
			return
		}
		cleanName := strings.TrimSpace(req.Name)         // Trimmed display name
		cleanRelation := strings.TrimSpace(req.Relation) // Trimmed relation
		// Reject empty values after trimming
		if cleanName == "" || cleanRelation == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name and relation cannot be empty"})
			return
		}
		// Friendly fast path: check whether the name is already taken
		var existing domain.Participant
		if err := db.Where("name = ?", cleanName).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"message": `That name is already taken! Please use a unique name (e.g., "Alex K." or "Uncle Alex").`})
			return
		}
		// Insert the new participant
		participant := domain.Participant{Name: cleanName, Relation: cleanRelation}
		if err := db.Create(&participant).Error; err != nil {
			// Two simultaneous joins can both pass the lookup above; the unique
			// index on name is the authoritative check, so a duplicate-key error
			// here is still a conflict, not a server fault.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"message": `That name is already taken! Please use a unique name (e.g., "Alex K." or "Uncle Alex").`})
				return
			}
			middleware.Logger(c).WithField("error", err.Error()).Error("Join failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to join. Please try again."})
			return
		}
		// Log successful join
		middleware.Logger(c).WithFields(logrus.Fields{
			"participant_id": participant.ID, // New participant ID
			"name":           cleanName,      // Display name
		}).Info("Participant joined")
		// Return the new identifier
		c.JSON(http.StatusCreated, gin.H{"participantId": participant.ID})
	}
}
