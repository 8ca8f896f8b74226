package domain

// Conversion factors between the client slider unit (kg) and the stored unit (lbs).
// The asymmetry is deliberate: the original client multiplied by 2.20462 while
// the chart endpoint converted back with the exact SI factor.
const (
	LbsPerKg = 2.20462    // kg -> lbs, used on the submitting side
	KgPerLb  = 0.45359237 // lbs -> kg, used on the reporting side
)

// Server-side authoritative weight bounds in pounds. Looser than the client
// slider's 1.8-4.5 kg range; the slider constrains UX, this gate constrains data.
const (
	MinWeightLbs = 4.0
	MaxWeightLbs = 10.0
)

// Prediction Model
type Prediction struct {
	ID            uint    `gorm:"primaryKey"`           // Primary key
	ParticipantID uint    `gorm:"uniqueIndex;not null"` // One prediction per participant
	Gender        string  `gorm:"size:8;not null"`      // "boy" or "girl"
	WeightLbs     float64 `gorm:"not null"`             // Predicted weight in pounds
	DueDate       string  `gorm:"size:10;not null"`     // ISO date (YYYY-MM-DD), sorts chronologically
	BetAmount     int     `gorm:"not null;default:100"` // Token wager, summed for the leaderboard
	CreatedAt     int64   `gorm:"autoCreateTime:milli"` // Timestamp of creation in milliseconds
}
