package service

import "github.com/Allison0802/NutriWise-AI-PWA/internal/model"

var kcalPerMinute = map[model.Intensity]float64{
	model.IntensityLow:    4,
	model.IntensityMedium: 7,
	model.IntensityHigh:   10,
}

// OfflineExerciseCalories is the degraded-mode burn estimate used when the
// remote estimator is unreachable: a flat kcal/min rate per intensity.
func OfflineExerciseCalories(durationMinutes int, intensity model.Intensity) float64 {
	if durationMinutes <= 0 {
		return 0
	}
	rate, ok := kcalPerMinute[intensity]
	if !ok {
		rate = kcalPerMinute[model.IntensityMedium]
	}
	return float64(durationMinutes) * rate
}
