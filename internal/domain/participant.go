package domain

// Participant Model
type Participant struct {
	ID        uint   `gorm:"primaryKey"`           // Primary key, doubles as the client-held token
	Name      string `gorm:"uniqueIndex;not null"` // Unique display name (trimmed before insert)
	Relation  string `gorm:"not null"`             // Relation to the baby, free text
	CreatedAt int64  `gorm:"autoCreateTime:milli"` // Timestamp of creation in milliseconds
}
