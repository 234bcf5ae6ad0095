package service

import (
	"time"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/model"
)

type TrendPoint struct {
	Label    string  `json:"label"`
	Calories float64 `json:"calories"`
}

// WeeklyTrend returns exactly 7 points, oldest first, covering the 6 days
// before today through today. Only food-entry calories count; exercise is
// excluded from this view. Recomputed in full on every call.
func WeeklyTrend(logs []model.LogEntry, today time.Time) []TrendPoint {
	points := make([]TrendPoint, 0, 7)
	start := beginningOfDay(today).AddDate(0, 0, -6)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		var calories float64
		for _, entry := range logs {
			if entry.Type != model.EntryFood || !sameDay(entry.Time(), day) {
				continue
			}
			for _, item := range entry.Items {
				calories += item.Calories
			}
		}
		points = append(points, TrendPoint{
			Label:    day.Format("Mon"),
			Calories: calories,
		})
	}
	return points
}
