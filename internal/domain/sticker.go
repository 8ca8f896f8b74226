package domain

// PastelPalette is the fixed 8-color set stickers are painted with when the
// client does not pick a color itself.
var PastelPalette = []string{
	"#ffadad", "#ffd6a5", "#fdffb6", "#caffbf",
	"#9bf6ff", "#a0c4ff", "#bdb2ff", "#ffc6ff",
}

// Sticker Model
type Sticker struct {
	ID            uint   `gorm:"primaryKey"`           // Primary key
	ParticipantID *uint  // Optional owner, nullable since later revisions dropped the requirement
	BabyName      string `gorm:"not null"`             // Suggested baby name (trimmed)
	X             int    `gorm:"not null"`             // Canvas x coordinate
	Y             int    `gorm:"not null"`             // Canvas y coordinate
	Color         string `gorm:"size:7;not null"`      // Hex color from the pastel palette
	CreatedAt     int64  `gorm:"autoCreateTime:milli"` // Timestamp of creation in milliseconds
}
