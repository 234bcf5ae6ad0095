package model_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/model"
)

func TestFoodItemRescale(t *testing.T) {
	t.Parallel()
	item := model.FoodItem{
		Name:     "Oatmeal",
		Quantity: 1,
		Unit:     "bowl",
		Calories: 150,
		Protein:  5,
		Carbs:    27,
		Fat:      3,
	}
	item.DeriveBase()
	item.Rescale(2.5)

	if item.Calories != 375 {
		t.Fatalf("expected 375 kcal, got %v", item.Calories)
	}
	if item.Protein != 12.5 || item.Carbs != 67.5 || item.Fat != 7.5 {
		t.Fatalf("unexpected macros after rescale: %+v", item)
	}

	// Back to the original quantity restores the original values.
	item.Rescale(1)
	if item.Calories != 150 || item.Protein != 5 || item.Carbs != 27 || item.Fat != 3 {
		t.Fatalf("rescale back to 1 did not restore values: %+v", item)
	}
}

func TestFoodItemRescaleRounding(t *testing.T) {
	t.Parallel()
	item := model.FoodItem{Quantity: 1, Calories: 100, Protein: 3.33, Carbs: 6.67, Fat: 1.11}
	item.DeriveBase()
	item.Rescale(3)

	if item.Calories != 300 {
		t.Fatalf("expected integer calorie rounding, got %v", item.Calories)
	}
	if item.Protein != 10.0 {
		t.Fatalf("expected protein 10.0, got %v", item.Protein)
	}
	if item.Carbs != 20.0 {
		t.Fatalf("expected carbs 20.0, got %v", item.Carbs)
	}
	if item.Fat != 3.3 {
		t.Fatalf("expected fat 3.3, got %v", item.Fat)
	}
}

func TestDeriveBaseDefaultsZeroQuantity(t *testing.T) {
	t.Parallel()
	item := model.FoodItem{Calories: 200, Protein: 10}
	item.DeriveBase()
	if item.Quantity != 1 {
		t.Fatalf("expected quantity defaulted to 1, got %v", item.Quantity)
	}
	if item.BaseCalories != 200 || item.BaseProtein != 10 {
		t.Fatalf("unexpected base values: %+v", item)
	}
}

func TestDeriveBaseDefaultsNegativeQuantity(t *testing.T) {
	t.Parallel()
	item := model.FoodItem{Quantity: -2, Calories: 500, Protein: 40}
	item.DeriveBase()
	if item.Quantity != 1 {
		t.Fatalf("expected negative quantity defaulted to 1, got %v", item.Quantity)
	}
	if item.BaseCalories != 500 || item.BaseProtein != 40 {
		t.Fatalf("base values must stay non-negative: %+v", item)
	}

	// A later rescale keeps the current values non-negative too.
	item.Rescale(2)
	if item.Calories != 1000 || item.Protein != 80 {
		t.Fatalf("unexpected values after rescale: %+v", item)
	}
}

func TestProfileValidate(t *testing.T) {
	t.Parallel()
	p := model.DefaultProfile()
	if err := p.Validate(); err != nil {
		t.Fatalf("default profile should validate: %v", err)
	}

	p.Age = 0
	if err := p.Validate(); err == nil || !strings.Contains(err.Error(), "age") {
		t.Fatalf("expected age error, got %v", err)
	}

	p = model.DefaultProfile()
	p.Goal = "bulk"
	if err := p.Validate(); err == nil || !strings.Contains(err.Error(), "goal") {
		t.Fatalf("expected goal error, got %v", err)
	}

	p = model.DefaultProfile()
	p.WeightKg = -1
	if err := p.Validate(); err == nil {
		t.Fatalf("expected weight error")
	}
}

func TestEntryDayBucketsAtLocalMidnight(t *testing.T) {
	t.Parallel()
	late := time.Date(2026, 3, 14, 23, 59, 0, 0, time.Local)
	entry := model.LogEntry{ID: model.NewEntryID(late), Timestamp: late.UnixMilli(), Type: model.EntryNote}

	day := entry.Day()
	if day.Hour() != 0 || day.Minute() != 0 {
		t.Fatalf("expected midnight bucket, got %v", day)
	}
	if day.Day() != 14 || day.Month() != time.March {
		t.Fatalf("entry bucketed into wrong day: %v", day)
	}
}
