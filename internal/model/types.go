package model

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
	ActivityAthlete   ActivityLevel = "athlete"
)

type Goal string

const (
	GoalLoseFat    Goal = "lose_fat"
	GoalMaintain   Goal = "maintain"
	GoalGainMuscle Goal = "gain_muscle"
)

type Profile struct {
	Name               string        `json:"name"`
	Age                int           `json:"age"`
	HeightCm           float64       `json:"heightCm"`
	WeightKg           float64       `json:"weightKg"`
	Gender             Gender        `json:"gender"`
	ActivityLevel      ActivityLevel `json:"activityLevel"`
	Goal               Goal          `json:"goal"`
	DietaryPreferences string        `json:"dietaryPreferences"`
}

// DefaultProfile supplies placeholder physiological values for first run.
func DefaultProfile() Profile {
	return Profile{
		Name:          "User",
		Age:           30,
		HeightCm:      170,
		WeightKg:      70,
		Gender:        GenderOther,
		ActivityLevel: ActivityModerate,
		Goal:          GoalMaintain,
	}
}

func (p Profile) Validate() error {
	if p.Age <= 0 {
		return fmt.Errorf("age must be > 0")
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"height", p.HeightCm},
		{"weight", p.WeightKg},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s must be a finite number", f.name)
		}
		if f.value < 0 {
			return fmt.Errorf("%s must be >= 0", f.name)
		}
	}
	if !p.Gender.Valid() {
		return fmt.Errorf("invalid gender %q (use male, female, or other)", p.Gender)
	}
	if !p.ActivityLevel.Valid() {
		return fmt.Errorf("invalid activity level %q (use sedentary, light, moderate, active, or athlete)", p.ActivityLevel)
	}
	if !p.Goal.Valid() {
		return fmt.Errorf("invalid goal %q (use lose_fat, maintain, or gain_muscle)", p.Goal)
	}
	return nil
}

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityAthlete:
		return true
	}
	return false
}

func (g Goal) Valid() bool {
	switch g {
	case GoalLoseFat, GoalMaintain, GoalGainMuscle:
		return true
	}
	return false
}

type EntryType string

const (
	EntryFood     EntryType = "food"
	EntryExercise EntryType = "exercise"
	EntryNote     EntryType = "note"
)

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

func (i Intensity) Valid() bool {
	switch i {
	case IntensityLow, IntensityMedium, IntensityHigh:
		return true
	}
	return false
}

// FoodItem carries the current macro values for the logged quantity and the
// base per-unit values used to rescale them when the quantity changes.
type FoodItem struct {
	Name         string     `json:"name"`
	Quantity     float64    `json:"quantity"`
	Unit         string     `json:"unit"`
	Calories     float64    `json:"calories"`
	Protein      float64    `json:"protein"`
	Carbs        float64    `json:"carbs"`
	Fat          float64    `json:"fat"`
	BaseCalories float64    `json:"baseCalories"`
	BaseProtein  float64    `json:"baseProtein"`
	BaseCarbs    float64    `json:"baseCarbs"`
	BaseFat      float64    `json:"baseFat"`
	Confidence   Confidence `json:"confidence"`
	Notes        string     `json:"notes,omitempty"`
}

// DeriveBase computes per-unit macro values from the current values. A
// missing, zero, or negative quantity is treated as 1 so the division is
// always safe and base values stay non-negative.
func (f *FoodItem) DeriveBase() {
	q := f.Quantity
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		q = 1
		f.Quantity = 1
	}
	f.BaseCalories = f.Calories / q
	f.BaseProtein = f.Protein / q
	f.BaseCarbs = f.Carbs / q
	f.BaseFat = f.Fat / q
}

// Rescale re-derives the current macro values from the base per-unit values
// for a new quantity. Calories round to the nearest integer, grams to one
// decimal place.
func (f *FoodItem) Rescale(quantity float64) {
	if quantity <= 0 {
		quantity = 1
	}
	f.Quantity = quantity
	f.Calories = math.Round(f.BaseCalories * quantity)
	f.Protein = RoundGrams(f.BaseProtein * quantity)
	f.Carbs = RoundGrams(f.BaseCarbs * quantity)
	f.Fat = RoundGrams(f.BaseFat * quantity)
}

// RoundGrams rounds a gram amount to one decimal place.
func RoundGrams(v float64) float64 {
	return math.Round(v*10) / 10
}

type ExerciseDetails struct {
	Name            string    `json:"name"`
	DurationMinutes int       `json:"durationMinutes"`
	CaloriesBurned  float64   `json:"caloriesBurned"`
	Intensity       Intensity `json:"intensity"`
}

// LogEntry is the tagged log variant: food entries carry Items (and
// optionally an Image data URL), exercise entries carry Exercise, note
// entries carry Content.
type LogEntry struct {
	ID        string           `json:"id"`
	Timestamp int64            `json:"timestamp"`
	Type      EntryType        `json:"type"`
	Items     []FoodItem       `json:"items,omitempty"`
	Exercise  *ExerciseDetails `json:"exercise,omitempty"`
	Content   string           `json:"content,omitempty"`
	Image     string           `json:"image,omitempty"`
}

// NewEntryID derives an entry id from a creation time, millisecond precision.
func NewEntryID(at time.Time) string {
	return strconv.FormatInt(at.UnixMilli(), 10)
}

// Time converts the entry's millisecond timestamp to local time.
func (e LogEntry) Time() time.Time {
	return time.UnixMilli(e.Timestamp).Local()
}

// Day returns the local midnight that buckets this entry.
func (e LogEntry) Day() time.Time {
	t := e.Time()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

type ChatMessage struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}
