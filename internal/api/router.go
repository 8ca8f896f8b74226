package api

import (
	"math"     // Ceiling for the day count
	"net/http" // HTTP status codes
	"time"     // Countdown arithmetic

	"babyshower_backend/internal/config"     // Application configuration
	"babyshower_backend/internal/middleware" // Request-id and admin middleware

	"github.com/gin-contrib/cors"  // CORS middleware
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// NewRouter wires the full HTTP surface. cmd/server and the test suites share
// this so routes cannot drift between them. rdb may be nil (tests, degraded
// mode); the cache helpers treat that as a permanent miss.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *gin.Engine {
	r := gin.Default() // Gin router instance

	// The frontend is served separately, so allow any origin
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
	}))
	r.Use(middleware.RequestIDMiddleware())

	adminHash := HashAdminCode(cfg.AdminCode) // Hash the passphrase once at boot

	apiGroup := r.Group("/api")
	apiGroup.POST("/join", JoinHandler(db))                       // Participant registry
	apiGroup.POST("/predict", PredictHandler(db, rdb))            // Prediction submission
	apiGroup.GET("/chart-data", ChartDataHandler(db, rdb))        // Aggregate charts
	apiGroup.GET("/preorder", PreorderCountHandler(db))           // Pre-order tally
	apiGroup.POST("/preorder", AddPreorderHandler(db))            // Pre-order click
	apiGroup.GET("/countdown", CountdownHandler(cfg))             // Days until launch
	apiGroup.GET("/stickers", ListStickersHandler(db))            // Sticker wall
	apiGroup.POST("/stickers", CreateStickerHandler(db))          // Add sticker
	apiGroup.PATCH("/stickers/:id", RepositionStickerHandler(db)) // Drag save

	// Admin routes: passphrase login, then token-gated submissions
	adminGroup := apiGroup.Group("/admin")
	adminGroup.POST("/login", AdminLoginHandler(adminHash, cfg.JWTSecret))
	adminGroup.GET("/submissions", middleware.AdminAuthMiddleware(cfg.JWTSecret), AdminSubmissionsHandler(db, rdb))

	return r
}

// CountdownHandler reports whole days left until the expected due date. The
// original computed this client-side; serving it keeps the date configured in
// exactly one place.
func CountdownHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		diff := time.Until(cfg.ExpectedDueDate)
		daysLeft := int(math.Ceil(diff.Hours() / 24))
		if daysLeft < 0 {
			daysLeft = 0
		}
		c.JSON(http.StatusOK, gin.H{"daysLeft": daysLeft})
	}
}
