package service

import (
	"math"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/model"
)

type DoctorReport struct {
	UnknownTypeEntries   int `json:"unknown_type_entries"`
	DuplicateIDs         int `json:"duplicate_ids"`
	NonPositiveQuantity  int `json:"non_positive_quantity_items"`
	NegativeMacroItems   int `json:"negative_macro_items"`
	NonFiniteValues      int `json:"non_finite_values"`
	InvalidExerciseRows  int `json:"invalid_exercise_entries"`
	FixedItems           int `json:"fixed_items"`
	FixedExerciseEntries int `json:"fixed_exercise_entries"`
}

func (r DoctorReport) HasIssues() bool {
	return r.UnknownTypeEntries > 0 ||
		r.DuplicateIDs > 0 ||
		r.NonPositiveQuantity > 0 ||
		r.NegativeMacroItems > 0 ||
		r.NonFiniteValues > 0 ||
		r.InvalidExerciseRows > 0
}

// RunDoctor scans the log list for integrity problems. With fix set it also
// applies the safe coercions (quantity defaults to 1, negative and non-finite
// numbers to 0) and returns the repaired list; unknown entry types and
// duplicate ids are reported but never auto-fixed.
func RunDoctor(logs []model.LogEntry, fix bool) (DoctorReport, []model.LogEntry) {
	var report DoctorReport
	seen := make(map[string]bool, len(logs))
	out := make([]model.LogEntry, len(logs))
	copy(out, logs)
	for i := range out {
		if len(out[i].Items) > 0 {
			items := make([]model.FoodItem, len(out[i].Items))
			copy(items, out[i].Items)
			out[i].Items = items
		}
		if out[i].Exercise != nil {
			ex := *out[i].Exercise
			out[i].Exercise = &ex
		}
	}

	for i := range out {
		entry := &out[i]
		if seen[entry.ID] {
			report.DuplicateIDs++
		}
		seen[entry.ID] = true

		switch entry.Type {
		case model.EntryFood, model.EntryExercise, model.EntryNote:
		default:
			report.UnknownTypeEntries++
		}

		dirty := false
		for j := range entry.Items {
			item := &entry.Items[j]
			if item.Quantity <= 0 || !isFinite(item.Quantity) {
				report.NonPositiveQuantity++
				dirty = true
			}
			for _, v := range []float64{
				item.Calories, item.Protein, item.Carbs, item.Fat,
				item.BaseCalories, item.BaseProtein, item.BaseCarbs, item.BaseFat,
			} {
				if !isFinite(v) {
					report.NonFiniteValues++
					dirty = true
					break
				}
				if v < 0 {
					report.NegativeMacroItems++
					dirty = true
					break
				}
			}
		}
		if entry.Exercise != nil {
			if entry.Exercise.DurationMinutes <= 0 ||
				entry.Exercise.CaloriesBurned < 0 ||
				!isFinite(entry.Exercise.CaloriesBurned) ||
				!entry.Exercise.Intensity.Valid() {
				report.InvalidExerciseRows++
				dirty = true
			}
		}

		if fix && dirty {
			SanitizeEntry(entry)
			if entry.Exercise != nil {
				if entry.Exercise.DurationMinutes <= 0 {
					entry.Exercise.DurationMinutes = 1
				}
				report.FixedExerciseEntries++
			}
			if len(entry.Items) > 0 {
				report.FixedItems++
			}
		}
	}

	return report, out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
