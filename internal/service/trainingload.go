package service

import (
	"strings"
	"time"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/model"
)

var strengthKeywords = []string{"weight", "strength", "lift"}

// HighTrainingLoad reports whether any exercise entry on the given day looks
// like high-intensity or strength work: intensity high, or a name containing
// one of the strength keywords. The substring match is a heuristic and can
// misfire on names like "light weight training".
func HighTrainingLoad(logs []model.LogEntry, day time.Time) bool {
	for _, entry := range logs {
		if entry.Type != model.EntryExercise || entry.Exercise == nil {
			continue
		}
		if !sameDay(entry.Time(), day) {
			continue
		}
		if entry.Exercise.Intensity == model.IntensityHigh {
			return true
		}
		name := strings.ToLower(entry.Exercise.Name)
		for _, kw := range strengthKeywords {
			if strings.Contains(name, kw) {
				return true
			}
		}
	}
	return false
}
