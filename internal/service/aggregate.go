package service

import (
	"math"
	"time"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/model"
)

// Totals are per-day sums. Accumulation stays in floating point; rounding is
// applied only at display time.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Burned   float64 `json:"burned"`
}

func beginningOfDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

func sameDay(a, b time.Time) bool {
	return beginningOfDay(a).Equal(beginningOfDay(b))
}

// DailyTotals reduces the log list to the totals for one calendar day (local
// midnight boundary). A day with no entries yields zero totals.
func DailyTotals(logs []model.LogEntry, day time.Time) Totals {
	var totals Totals
	for _, entry := range logs {
		if !sameDay(entry.Time(), day) {
			continue
		}
		switch entry.Type {
		case model.EntryFood:
			for _, item := range entry.Items {
				totals.Calories += item.Calories
				totals.Protein += item.Protein
				totals.Carbs += item.Carbs
				totals.Fat += item.Fat
			}
		case model.EntryExercise:
			if entry.Exercise != nil {
				totals.Burned += entry.Exercise.CaloriesBurned
			}
		}
	}
	return totals
}

// RoundCalories rounds a calorie amount to the nearest integer for display.
func RoundCalories(v float64) int {
	return int(math.Round(v))
}
