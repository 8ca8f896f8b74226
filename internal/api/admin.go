package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strings"  // String manipulation
	"time"     // Cache TTL

	"babyshower_backend/internal/domain"     // Importing domain models
	"babyshower_backend/internal/middleware" // Request-scoped logging
	"babyshower_backend/internal/utils"      // Cache and JWT helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"golang.org/x/crypto/bcrypt"   // Passphrase comparison
	"gorm.io/gorm"                 // GORM ORM library
)

// AdminLoginRequest carries the shared admin passphrase
type AdminLoginRequest struct {
	Code string `json:"code" binding:"required"` // Shared secret code
}

// AuthResponse carries the minted admin token
type AuthResponse struct {
	Token string `json:"token"` // JWT token
}

// SubmissionRow is one leaderboard entry, grouped by participant
type SubmissionRow struct {
	Name      string  `json:"name"`       // Participant name
	Relation  string  `json:"relation"`   // Relation to the baby
	TotalBet  int     `json:"total_bet"`  // Summed wager for the group
	Gender    string  `json:"gender"`     // Predicted gender
	WeightLbs float64 `json:"weight_lbs"` // Predicted weight in pounds
	DueDate   string  `json:"due_date"`   // Predicted due date
}

// HashAdminCode bcrypt-hashes the configured passphrase once at startup so
// the raw code never sits in handler state.
func HashAdminCode(code string) []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		// Only possible for absurd cost/length values; fail loudly at boot
		panic(err)
	}
	return hash
}

// AdminLoginHandler exchanges the shared passphrase for a short-lived admin
// token. The gate used to live in the page itself; serving it here keeps the
// submissions endpoint off-limits to anyone replaying URLs.
func AdminLoginHandler(codeHash []byte, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdminLoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Code is required"})
			return
		}
		// Compare the trimmed code against the startup hash
		if err := bcrypt.CompareHashAndPassword(codeHash, []byte(strings.TrimSpace(req.Code))); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect code"})
			return
		}
		token, err := utils.GenerateAdminJWT(jwtSecret)
		if err != nil {
			middleware.Logger(c).WithField("error", err.Error()).Error("Admin token generation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		middleware.Logger(c).Info("Admin logged in")
		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}

// AdminSubmissionsHandler lists predictions grouped by participant, summed
// bet first. The top bettor is simply the first row.
func AdminSubmissionsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		// Try the cache first
		var cached []SubmissionRow
		if found, err := utils.GetCache(ctx, rdb, adminCacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		var rows []SubmissionRow
		// Group by name + relation, sum bets, surface the latest values for display
		err := db.Model(&domain.Prediction{}).
			Select("participants.name AS name, participants.relation AS relation, SUM(predictions.bet_amount) AS total_bet, MAX(predictions.gender) AS gender, MAX(predictions.weight_lbs) AS weight_lbs, MAX(predictions.due_date) AS due_date").
			Joins("JOIN participants ON participants.id = predictions.participant_id").
			Group("participants.name, participants.relation").
			Order("total_bet DESC").
			Scan(&rows).Error
		if err != nil {
			middleware.Logger(c).WithField("error", err.Error()).Error("Admin submissions query failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load"})
			return
		}
		if rows == nil {
			rows = []SubmissionRow{} // Always serialize an array
		}
		// Cache the result for 30 seconds
		_ = utils.SetCache(ctx, rdb, adminCacheKey, rows, 30*time.Second)
		c.JSON(http.StatusOK, rows)
	}
}
