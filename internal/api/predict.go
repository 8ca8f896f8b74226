package api

import (
	"context"  // Context for Redis operations
	"errors"   // Error inspection
	"math"     // Finite-number check
	"net/http" // HTTP status codes
	"time"     // Due date parsing

	"babyshower_backend/internal/domain"     // Importing domain models
	"babyshower_backend/internal/middleware" // Request-scoped logging
	"babyshower_backend/internal/utils"      // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// PredictRequest represents a prediction submission. Pointers distinguish
// absent fields from zero values so "missing fields" fires before the
// range checks.
type PredictRequest struct {
	ParticipantID *uint    `json:"participantId"` // Client-held token from the join step
	Gender        string   `json:"gender"`        // "boy" or "girl"
	WeightLbs     *float64 `json:"weightLbs"`     // Predicted weight in pounds
	DueDate       string   `json:"dueDate"`       // ISO calendar date
	BetAmount     int      `json:"betAmount"`     // Token wager, defaults to 100
}

// Cache keys invalidated whenever a prediction lands
const (
	chartCacheKey = "chartdata"
	adminCacheKey = "admin:submissions"
)

// PredictHandler stores a participant's one and only prediction. Validation
// runs in a fixed order so each failure mode gets its own distinct rejection:
// missing fields, invalid gender, weight out of range, unknown participant,
// duplicate prediction.
func PredictHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PredictRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}
		// 1. All required fields present
		if req.ParticipantID == nil || req.Gender == "" || req.WeightLbs == nil || req.DueDate == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}
		// 2. Gender is exactly boy or girl
		if req.Gender != "boy" && req.Gender != "girl" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid gender"})
			return
		}
		// 3. Weight is a finite number within the authoritative server bounds.
		// These are looser than the client slider's kg range on the high side
		// and tighter on the low side: 1.8 kg converts to ~3.97 lbs and is
		// rejected here even though the slider allows it.
		weight := *req.WeightLbs
		if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < domain.MinWeightLbs || weight > domain.MaxWeightLbs {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Weight must be between 4 and 10 lbs"})
			return
		}
		// Normalize the due date to a plain ISO calendar date
		dueDate, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}
		// 4. Participant identifier must resolve to an existing participant
		var participant domain.Participant
		if err := db.First(&participant, *req.ParticipantID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Participant not found"})
			return
		}
		// 5. Friendly fast path: reject if a prediction already exists
		var existing domain.Prediction
		if err := db.Where("participant_id = ?", participant.ID).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"message": "You have already submitted a prediction!"})
			return
		}
		// Default the wager when the client sends none
		bet := req.BetAmount
		if bet <= 0 {
			bet = 100
		}
		// Insert the prediction
		prediction := domain.Prediction{
			ParticipantID: participant.ID,                // Owning participant
			Gender:        req.Gender,                    // Predicted gender
			WeightLbs:     weight,                        // Predicted weight in pounds
			DueDate:       dueDate.Format("2006-01-02"),  // ISO date string
			BetAmount:     bet,                           // Token wager
		}
		if err := db.Create(&prediction).Error; err != nil {
			// The unique index on participant_id closes the check-then-insert
			// race; a duplicate-key error here is a replayed submission.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"message": "You have already submitted a prediction!"})
				return
			}
			middleware.Logger(c).WithFields(logrus.Fields{
				"participant_id": participant.ID, // Participant ID
				"error":          err.Error(),    // Error message
			}).Error("Prediction insert failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		// Log successful prediction
		middleware.Logger(c).WithFields(logrus.Fields{
			"participant_id": participant.ID,     // Participant ID
			"gender":         prediction.Gender,  // Predicted gender
			"weight_lbs":     prediction.WeightLbs,
			"due_date":       prediction.DueDate,
			"bet_amount":     prediction.BetAmount,
		}).Info("Prediction stored")
		// Invalidate the aggregate caches so the charts pick up the new bet
		_ = utils.DeleteCache(context.Background(), rdb, chartCacheKey, adminCacheKey)
		// Return success acknowledgment
		c.JSON(http.StatusCreated, gin.H{"success": true})
	}
}
