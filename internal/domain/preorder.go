package domain

// Preorder Model. Each row is one click of the joke "Pre-order Now!" button;
// the endpoint only ever reports the row count.
type Preorder struct {
	ID        uint  `gorm:"primaryKey"`           // Primary key
	CreatedAt int64 `gorm:"autoCreateTime:milli"` // Timestamp of creation in milliseconds
}
