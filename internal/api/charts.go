package api

import (
	"context"  // Context for Redis operations
	"math"     // Rounding to one decimal
	"net/http" // HTTP status codes
	"time"     // Cache TTL

	"babyshower_backend/internal/domain"     // Importing domain models
	"babyshower_backend/internal/middleware" // Request-scoped logging
	"babyshower_backend/internal/utils"      // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// GenderSplit is the boy/girl tally
type GenderSplit struct {
	Boys  int64 `json:"boys"`  // Predictions saying boy
	Girls int64 `json:"girls"` // Predictions saying girl
}

// DueDateCount is one chronological histogram bucket
type DueDateCount struct {
	Date  string `json:"date"`  // ISO due date
	Count int64  `json:"count"` // Predictions on that date
}

// ChartData is the aggregate payload behind the consensus charts
type ChartData struct {
	Gender   GenderSplit    `json:"gender"`   // Gender split
	Weights  []float64      `json:"weights"`  // Predicted weights in kg, 1 decimal
	DueDates []DueDateCount `json:"dueDates"` // Due date histogram, chronological
	Total    int64          `json:"total"`    // Total gendered predictions
}

// ChartDataResponse wraps the payload with the empty/success status. "empty"
// means zero gendered predictions exist, which the frontend renders as a
// call-to-action rather than a 0/0 chart.
type ChartDataResponse struct {
	Status string     `json:"status"`         // empty | success | error
	Data   *ChartData `json:"data,omitempty"` // Present only on success
}

// ChartDataHandler returns the aggregate prediction data, cached briefly in
// Redis and invalidated whenever a new prediction lands.
func ChartDataHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		// Try the cache first
		var cached ChartDataResponse
		if found, err := utils.GetCache(ctx, rdb, chartCacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		resp, err := buildChartData(db)
		if err != nil {
			middleware.Logger(c).WithField("error", err.Error()).Error("Chart data query failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to load chart data"})
			return
		}
		// Cache the result for 30 seconds
		_ = utils.SetCache(ctx, rdb, chartCacheKey, resp, 30*time.Second)
		c.JSON(http.StatusOK, resp)
	}
}

// buildChartData runs the three aggregate queries behind the charts
func buildChartData(db *gorm.DB) (*ChartDataResponse, error) {
	// Distinguish "nobody has predicted yet" from a zero/zero split
	var total int64
	if err := db.Model(&domain.Prediction{}).Where("gender IN ?", []string{"boy", "girl"}).Count(&total).Error; err != nil {
		return nil, err
	}
	if total == 0 {
		return &ChartDataResponse{Status: "empty"}, nil
	}
	// 1. Gender distribution
	var split GenderSplit
	if err := db.Model(&domain.Prediction{}).
		Select("COALESCE(SUM(CASE WHEN gender = 'boy' THEN 1 ELSE 0 END), 0) AS boys, COALESCE(SUM(CASE WHEN gender = 'girl' THEN 1 ELSE 0 END), 0) AS girls").
		Where("gender IN ?", []string{"boy", "girl"}).
		Scan(&split).Error; err != nil {
		return nil, err
	}
	// 2. Weight distribution, converted from stored pounds to display kg
	var weightsLbs []float64
	if err := db.Model(&domain.Prediction{}).Order("id").Pluck("weight_lbs", &weightsLbs).Error; err != nil {
		return nil, err
	}
	weights := make([]float64, len(weightsLbs))
	for i, lbs := range weightsLbs {
		weights[i] = math.Round(lbs*domain.KgPerLb*10) / 10 // kg rounded to 1 decimal
	}
	// 3. Due date distribution, chronological (ISO strings sort that way)
	var dueDates []DueDateCount
	if err := db.Model(&domain.Prediction{}).
		Select("due_date AS date, COUNT(*) AS count").
		Group("due_date").
		Order("due_date").
		Scan(&dueDates).Error; err != nil {
		return nil, err
	}
	return &ChartDataResponse{
		Status: "success",
		Data: &ChartData{
			Gender:   split,    // Gender split
			Weights:  weights,  // Weights in kg
			DueDates: dueDates, // Due date histogram
			Total:    total,    // Total predictions
		},
	}, nil
}
