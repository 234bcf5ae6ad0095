package service

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/model"
)

// ExportDocument is the single-file backup shape: profile and logs are
// always present, the chat transcript is optional.
type ExportDocument struct {
	Profile     model.Profile       `json:"profile"`
	Logs        []model.LogEntry    `json:"logs"`
	ChatHistory []model.ChatMessage `json:"chatHistory,omitempty"`
}

// BuildExport assembles the backup document from a state snapshot.
func BuildExport(profile model.Profile, logs []model.LogEntry, chat []model.ChatMessage) ExportDocument {
	if logs == nil {
		logs = []model.LogEntry{}
	}
	return ExportDocument{Profile: profile, Logs: logs, ChatHistory: chat}
}

// ParseImport validates a backup document. It rejects anything without a
// recognizable profile object and logs array so a bad file never touches
// state. Imported entries pass through the same numeric sanitization as
// estimator responses.
func ParseImport(raw []byte) (ExportDocument, error) {
	var probe struct {
		Profile *json.RawMessage `json:"profile"`
		Logs    *json.RawMessage `json:"logs"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ExportDocument{}, fmt.Errorf("parse backup file: not valid JSON")
	}
	if probe.Profile == nil || len(*probe.Profile) == 0 || (*probe.Profile)[0] != '{' {
		return ExportDocument{}, fmt.Errorf("backup file is missing a profile object")
	}
	if probe.Logs == nil || len(*probe.Logs) == 0 || (*probe.Logs)[0] != '[' {
		return ExportDocument{}, fmt.Errorf("backup file is missing a logs array")
	}

	var doc ExportDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ExportDocument{}, fmt.Errorf("parse backup file: %v", err)
	}
	if err := doc.Profile.Validate(); err != nil {
		return ExportDocument{}, fmt.Errorf("backup profile is invalid: %v", err)
	}
	if doc.Logs == nil {
		doc.Logs = []model.LogEntry{}
	}
	for i := range doc.Logs {
		SanitizeEntry(&doc.Logs[i])
	}
	return doc, nil
}

// SanitizeEntry coerces every numeric field to a finite non-negative value so
// NaN or negative numbers from an external document never enter the log store.
func SanitizeEntry(entry *model.LogEntry) {
	for i := range entry.Items {
		item := &entry.Items[i]
		item.Quantity = sanitizeNumber(item.Quantity)
		if item.Quantity == 0 {
			item.Quantity = 1
		}
		item.Calories = sanitizeNumber(item.Calories)
		item.Protein = sanitizeNumber(item.Protein)
		item.Carbs = sanitizeNumber(item.Carbs)
		item.Fat = sanitizeNumber(item.Fat)
		item.BaseCalories = sanitizeNumber(item.BaseCalories)
		item.BaseProtein = sanitizeNumber(item.BaseProtein)
		item.BaseCarbs = sanitizeNumber(item.BaseCarbs)
		item.BaseFat = sanitizeNumber(item.BaseFat)
		if item.BaseCalories == 0 && item.Calories > 0 {
			item.DeriveBase()
		}
	}
	if entry.Exercise != nil {
		entry.Exercise.CaloriesBurned = sanitizeNumber(entry.Exercise.CaloriesBurned)
		if entry.Exercise.DurationMinutes < 0 {
			entry.Exercise.DurationMinutes = 0
		}
		if !entry.Exercise.Intensity.Valid() {
			entry.Exercise.Intensity = model.IntensityMedium
		}
	}
}

func sanitizeNumber(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
