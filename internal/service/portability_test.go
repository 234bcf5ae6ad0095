package service_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/model"
	"github.com/Allison0802/NutriWise-AI-PWA/internal/service"
)

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	profile := baseProfile()
	logs := []model.LogEntry{
		foodEntry(day.Add(8*time.Hour), model.FoodItem{
			Name: "Eggs", Quantity: 2, Unit: "piece",
			Calories: 156, Protein: 12.6, Carbs: 1.2, Fat: 10.6,
			BaseCalories: 78, BaseProtein: 6.3, BaseCarbs: 0.6, BaseFat: 5.3,
			Confidence: model.ConfidenceHigh,
		}),
		exerciseEntry(day.Add(18*time.Hour), "Running", 40, 400, model.IntensityMedium),
		{ID: "n1", Timestamp: day.Add(20 * time.Hour).UnixMilli(), Type: model.EntryNote, Content: "slept well"},
	}
	chat := []model.ChatMessage{{ID: "c1", Role: model.RoleModel, Text: "hello", Timestamp: day.UnixMilli()}}

	doc := service.BuildExport(profile, logs, chat)
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal export: %v", err)
	}

	parsed, err := service.ParseImport(raw)
	if err != nil {
		t.Fatalf("parse import: %v", err)
	}

	again, err := json.Marshal(service.BuildExport(parsed.Profile, parsed.Logs, parsed.ChatHistory))
	if err != nil {
		t.Fatalf("marshal re-export: %v", err)
	}
	if !bytes.Equal(raw, again) {
		t.Fatalf("round trip is not byte-equivalent:\n%s\nvs\n%s", raw, again)
	}
}

func TestParseImportRejectsUnrecognizableDocuments(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"not json", `{oops`, "not valid JSON"},
		{"missing profile", `{"logs":[]}`, "missing a profile"},
		{"missing logs", `{"profile":{"name":"x","age":30,"heightCm":170,"weightKg":70,"gender":"male","activityLevel":"light","goal":"maintain"}}`, "missing a logs array"},
		{"profile not an object", `{"profile":"x","logs":[]}`, "missing a profile"},
		{"logs not an array", `{"profile":{"age":30},"logs":{}}`, "missing a logs array"},
		{"invalid profile values", `{"profile":{"name":"x","age":0,"gender":"male","activityLevel":"light","goal":"maintain"},"logs":[]}`, "invalid"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := service.ParseImport([]byte(tc.raw))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestParseImportChatHistoryOptional(t *testing.T) {
	t.Parallel()
	raw := `{
  "profile": {"name":"x","age":28,"heightCm":165,"weightKg":60,"gender":"female","activityLevel":"active","goal":"gain_muscle"},
  "logs": []
}`
	doc, err := service.ParseImport([]byte(raw))
	if err != nil {
		t.Fatalf("parse import: %v", err)
	}
	if doc.ChatHistory != nil {
		t.Fatalf("expected absent chat history to stay nil, got %+v", doc.ChatHistory)
	}
	if doc.Profile.Goal != model.GoalGainMuscle {
		t.Fatalf("unexpected profile: %+v", doc.Profile)
	}
}

func TestParseImportSanitizesNumbers(t *testing.T) {
	t.Parallel()
	raw := `{
  "profile": {"name":"x","age":30,"heightCm":170,"weightKg":70,"gender":"male","activityLevel":"light","goal":"maintain"},
  "logs": [
    {"id":"1","timestamp":1767996000000,"type":"food","items":[
      {"name":"Mystery","quantity":0,"unit":"serving","calories":250,"protein":-5,"carbs":30,"fat":8}
    ]},
    {"id":"2","timestamp":1767996100000,"type":"exercise","exercise":{"name":"Run","durationMinutes":-10,"caloriesBurned":-50,"intensity":"extreme"}}
  ]
}`
	doc, err := service.ParseImport([]byte(raw))
	if err != nil {
		t.Fatalf("parse import: %v", err)
	}

	item := doc.Logs[0].Items[0]
	if item.Quantity != 1 {
		t.Fatalf("expected zero quantity defaulted to 1, got %v", item.Quantity)
	}
	if item.Protein != 0 {
		t.Fatalf("expected negative protein coerced to 0, got %v", item.Protein)
	}
	if item.BaseCalories != 250 {
		t.Fatalf("expected base values derived, got %v", item.BaseCalories)
	}

	ex := doc.Logs[1].Exercise
	if ex.CaloriesBurned != 0 || ex.DurationMinutes != 0 {
		t.Fatalf("expected exercise numbers coerced to 0, got %+v", ex)
	}
	if ex.Intensity != model.IntensityMedium {
		t.Fatalf("expected unknown intensity coerced to medium, got %q", ex.Intensity)
	}
}
