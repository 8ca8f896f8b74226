package api

import (
	"math/rand" // Random palette pick
	"net/http"  // HTTP status codes
	"strconv"   // Path id parsing
	"strings"   // String manipulation

	"babyshower_backend/internal/domain"     // Importing domain models
	"babyshower_backend/internal/middleware" // Request-scoped logging

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// StickerResponse is the wire shape of a sticker
type StickerResponse struct {
	ID    uint   `json:"id"`    // Sticker identifier
	Name  string `json:"name"`  // Suggested baby name
	X     int    `json:"x"`     // Canvas x coordinate
	Y     int    `json:"y"`     // Canvas y coordinate
	Color string `json:"color"` // Pastel hex color
}

// CreateStickerRequest represents a new sticker. Coordinate pointers
// distinguish a missing field from a legitimate 0.
type CreateStickerRequest struct {
	ParticipantID *uint  `json:"participantId"` // Optional owner
	BabyName      string `json:"babyName"`      // Suggested name
	X             *int   `json:"x"`             // Canvas x coordinate
	Y             *int   `json:"y"`             // Canvas y coordinate
	Color         string `json:"color"`         // Optional; random palette pick when omitted
}

// RepositionRequest carries the new sticker coordinates
type RepositionRequest struct {
	X int `json:"x"` // New x coordinate
	Y int `json:"y"` // New y coordinate
}

// toResponse maps a sticker row to its wire shape
func toResponse(s domain.Sticker) StickerResponse {
	return StickerResponse{ID: s.ID, Name: s.BabyName, X: s.X, Y: s.Y, Color: s.Color}
}

// ListStickersHandler returns all stickers, newest first. A storage failure
// soft-fails to an empty list so the wall page still renders.
func ListStickersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var stickers []domain.Sticker
		// id breaks created_at ties within the same millisecond
		if err := db.Order("created_at DESC, id DESC").Find(&stickers).Error; err != nil {
			middleware.Logger(c).WithField("error", err.Error()).Error("Sticker list failed")
			c.JSON(http.StatusOK, []StickerResponse{}) // Safe fallback
			return
		}
		resp := make([]StickerResponse, len(stickers))
		for i, s := range stickers {
			resp[i] = toResponse(s)
		}
		c.JSON(http.StatusOK, resp)
	}
}

// CreateStickerHandler adds a name suggestion to the wall. Position comes
// from the client (already clamped to the canvas there); the color is drawn
// uniformly from the pastel palette when the client does not choose one.
func CreateStickerHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateStickerRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
			return
		}
		name := strings.TrimSpace(req.BabyName)
		// Name and both coordinates are required
		if name == "" || req.X == nil || req.Y == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
			return
		}
		color := req.Color
		if color == "" {
			color = domain.PastelPalette[rand.Intn(len(domain.PastelPalette))] // Random palette pick
		}
		sticker := domain.Sticker{
			ParticipantID: req.ParticipantID, // Optional owner
			BabyName:      name,              // Trimmed suggestion
			X:             *req.X,            // Canvas x coordinate
			Y:             *req.Y,            // Canvas y coordinate
			Color:         color,             // Pastel color
		}
		if err := db.Create(&sticker).Error; err != nil {
			middleware.Logger(c).WithField("error", err.Error()).Error("Sticker insert failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add sticker"})
			return
		}
		middleware.Logger(c).WithFields(logrus.Fields{
			"sticker_id": sticker.ID,       // New sticker ID
			"baby_name":  sticker.BabyName, // Suggested name
		}).Info("Sticker added")
		c.JSON(http.StatusCreated, toResponse(sticker))
	}
}

// RepositionStickerHandler updates only a sticker's position. Last write
// wins; bounds are the client's problem.
func RepositionStickerHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse the path id
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
			return
		}
		var req RepositionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
			return
		}
		// The sticker must exist; repositioning to the same spot is still a success
		var sticker domain.Sticker
		if err := db.First(&sticker, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sticker not found"})
			return
		}
		// Update position only; anything else on the row stays untouched
		if err := db.Model(&sticker).Updates(map[string]any{"x": req.X, "y": req.Y}).Error; err != nil {
			middleware.Logger(c).WithField("error", err.Error()).Error("Sticker reposition failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
