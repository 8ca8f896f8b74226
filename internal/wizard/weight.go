package wizard

import (
	"fmt"
	"math"

	"babyshower_backend/internal/domain"
)

// KgToLbs converts the slider's kg value to the pounds the server stores.
// Same truncated factor the original client used, which is why 1.8 kg lands
// at ~3.97 lbs and trips the server's 4 lb floor.
func KgToLbs(kg float64) float64 {
	return kg * domain.LbsPerKg
}

// FormatWeightKg renders a kg value as "3 kg 200 g", dropping the grams term
// when it is zero.
func FormatWeightKg(kg float64) string {
	whole := int(math.Floor(kg))
	grams := int(math.Round((kg - float64(whole)) * 1000))
	if grams == 0 {
		return fmt.Sprintf("%d kg", whole)
	}
	return fmt.Sprintf("%d kg %d g", whole, grams)
}

// snapToStep rounds a slider value to the nearest 0.1 kg step
func snapToStep(kg float64) float64 {
	return math.Round(kg/WeightStepKg) * WeightStepKg
}
