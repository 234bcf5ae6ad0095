package estimator

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/model"
)

// NormalizeFoodItem coerces a raw remote item into a well-formed FoodItem:
// every numeric field becomes a finite non-negative number (anything else
// defaults to 0), quantity defaults to 1, confidence falls back to medium,
// and base per-unit values are derived so the rounding invariant holds on
// the persisted values.
func NormalizeFoodItem(raw json.RawMessage) model.FoodItem {
	var shape struct {
		Name       string `json:"name"`
		Quantity   any    `json:"quantity"`
		Unit       string `json:"unit"`
		Calories   any    `json:"calories"`
		Protein    any    `json:"protein"`
		Carbs      any    `json:"carbs"`
		Fat        any    `json:"fat"`
		Confidence string `json:"confidence"`
		Notes      string `json:"notes"`
	}
	_ = json.Unmarshal(raw, &shape)

	item := model.FoodItem{
		Name:       strings.TrimSpace(shape.Name),
		Quantity:   coerceNumber(shape.Quantity),
		Unit:       strings.TrimSpace(shape.Unit),
		Calories:   coerceNumber(shape.Calories),
		Protein:    coerceNumber(shape.Protein),
		Carbs:      coerceNumber(shape.Carbs),
		Fat:        coerceNumber(shape.Fat),
		Confidence: coerceConfidence(shape.Confidence),
		Notes:      strings.TrimSpace(shape.Notes),
	}
	if item.Name == "" {
		item.Name = "Unknown item"
	}
	if item.Unit == "" {
		item.Unit = "serving"
	}
	item.DeriveBase()
	item.Rescale(item.Quantity)
	return item
}

// coerceNumber turns a remote JSON value into a finite non-negative float64.
func coerceNumber(v any) float64 {
	var f float64
	switch value := v.(type) {
	case float64:
		f = value
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0
		}
		f = parsed
	case json.Number:
		parsed, err := value.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

func coerceConfidence(v string) model.Confidence {
	switch model.Confidence(strings.ToLower(strings.TrimSpace(v))) {
	case model.ConfidenceHigh:
		return model.ConfidenceHigh
	case model.ConfidenceLow:
		return model.ConfidenceLow
	default:
		return model.ConfidenceMedium
	}
}
