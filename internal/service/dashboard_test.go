package service_test

import (
	"testing"
	"time"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/model"
	"github.com/Allison0802/NutriWise-AI-PWA/internal/service"
)

func TestDashboardFor(t *testing.T) {
	t.Parallel()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	profile := baseProfile()
	profile.Goal = model.GoalLoseFat

	logs := []model.LogEntry{
		foodEntry(day.Add(12*time.Hour), model.FoodItem{Name: "Chicken bowl", Quantity: 1, Calories: 550, Protein: 45, Carbs: 40, Fat: 18}),
		exerciseEntry(day.Add(18*time.Hour), "Strength training", 45, 280, model.IntensityMedium),
	}

	d := service.DashboardFor(logs, profile, day.Add(20*time.Hour))
	if d.Date != "2026-03-10" {
		t.Fatalf("unexpected dashboard date %q", d.Date)
	}
	if !d.TrainingLoad {
		t.Fatalf("expected training load detected")
	}
	if d.IntakeCalories != 550 || d.BurnedCalories != 280 || d.NetCalories != 270 {
		t.Fatalf("unexpected energy numbers: %+v", d)
	}
	// lose_fat + training load: reduced deficit.
	if d.TargetCalories != 2375 {
		t.Fatalf("expected 2375 kcal target, got %d", d.TargetCalories)
	}
	if d.RemainingCalories != 2375-270 {
		t.Fatalf("unexpected remaining calories %d", d.RemainingCalories)
	}
	if d.Advice == "" {
		t.Fatalf("expected advice message on workout day")
	}
}

func TestDashboardForEmptyDay(t *testing.T) {
	t.Parallel()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	d := service.DashboardFor(nil, baseProfile(), day)
	if d.IntakeCalories != 0 || d.BurnedCalories != 0 || d.NetCalories != 0 {
		t.Fatalf("expected zero totals, got %+v", d)
	}
	if d.TargetCalories != 2625 {
		t.Fatalf("targets must still be computed for an empty day, got %d", d.TargetCalories)
	}
	if d.RemainingCalories != 2625 {
		t.Fatalf("expected full target remaining, got %d", d.RemainingCalories)
	}
}

func TestOfflineExerciseCalories(t *testing.T) {
	t.Parallel()
	if got := service.OfflineExerciseCalories(30, model.IntensityLow); got != 120 {
		t.Fatalf("expected 120 kcal, got %v", got)
	}
	if got := service.OfflineExerciseCalories(30, model.IntensityMedium); got != 210 {
		t.Fatalf("expected 210 kcal, got %v", got)
	}
	if got := service.OfflineExerciseCalories(30, model.IntensityHigh); got != 300 {
		t.Fatalf("expected 300 kcal, got %v", got)
	}
	if got := service.OfflineExerciseCalories(0, model.IntensityHigh); got != 0 {
		t.Fatalf("expected 0 kcal for zero duration, got %v", got)
	}
	if got := service.OfflineExerciseCalories(10, model.Intensity("unknown")); got != 70 {
		t.Fatalf("expected medium fallback 70 kcal, got %v", got)
	}
}
