package wizard

import (
	"testing"

	"babyshower_backend/internal/domain"
)

func TestFormatWeightKg(t *testing.T) {
	tests := []struct {
		kg   float64
		want string
	}{
		{3.2, "3 kg 200 g"},
		{3.0, "3 kg"},
		{1.8, "1 kg 800 g"},
		{4.5, "4 kg 500 g"},
		{2.0, "2 kg"},
		{3.25, "3 kg 250 g"},
	}

	for _, tt := range tests {
		if got := FormatWeightKg(tt.kg); got != tt.want {
			t.Errorf("FormatWeightKg(%v) = %q, want %q", tt.kg, got, tt.want)
		}
	}
}

func TestKgToLbsAgainstServerBounds(t *testing.T) {
	// The server accepts a converted weight iff it lies in [4, 10] lbs.
	// The slider's bottom end converts below the floor with the exact
	// client factor; most of the range converts inside it.
	tests := []struct {
		kg       float64
		accepted bool
	}{
		{1.8, false}, // ~3.968 lbs
		{1.9, true},  // ~4.189 lbs
		{3.2, true},  // ~7.055 lbs
		{4.5, true},  // ~9.921 lbs
	}

	for _, tt := range tests {
		lbs := KgToLbs(tt.kg)
		inBounds := lbs >= domain.MinWeightLbs && lbs <= domain.MaxWeightLbs
		if inBounds != tt.accepted {
			t.Errorf("KgToLbs(%v) = %v lbs, accepted=%v, want %v", tt.kg, lbs, inBounds, tt.accepted)
		}
	}
}
