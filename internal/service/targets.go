package service

import (
	"math"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/model"
)

// Targets is the daily calorie target and macro targets in grams, plus an
// optional advice message when a workout shifted the numbers.
type Targets struct {
	Calories int    `json:"calorieTarget"`
	Protein  int    `json:"targetProtein"`
	Carbs    int    `json:"targetCarbs"`
	Fat      int    `json:"targetFat"`
	Advice   string `json:"adviceMessage,omitempty"`
}

var activityMultipliers = map[model.ActivityLevel]float64{
	model.ActivitySedentary: 1.2,
	model.ActivityLight:     1.375,
	model.ActivityModerate:  1.55,
	model.ActivityActive:    1.725,
	model.ActivityAthlete:   1.9,
}

const (
	adviceDeficitReduced = "Workout detected: Deficit reduced & Protein bumped for recovery."
	adviceFuelUp         = "Great work! Fuel up for growth."
)

// ComputeTargets derives the daily calorie and macro targets from the profile
// and the day's training-load signal. Pure function: same inputs, same output.
//
// BMR uses Mifflin-St Jeor; "other" follows the female offset. TDEE scales
// BMR by the activity multiplier, then the goal adjustment sets the calorie
// target and protein factor (grams per kg bodyweight). Fat is pinned at 25%
// of target calories (9 kcal/g); carbs take the remainder (4 kcal/g), floored
// at zero.
func ComputeTargets(p model.Profile, trainingLoad bool) Targets {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == model.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	multiplier, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		multiplier = activityMultipliers[model.ActivityModerate]
	}
	tdee := math.Round(bmr * multiplier)

	target := tdee
	proteinFactor := 1.4
	advice := ""
	switch p.Goal {
	case model.GoalLoseFat:
		if trainingLoad {
			target = tdee - 250
			proteinFactor = 2.0
			advice = adviceDeficitReduced
		} else {
			target = tdee - 500
			proteinFactor = 1.8
		}
	case model.GoalGainMuscle:
		target = tdee + 300
		proteinFactor = 2.0
		if trainingLoad {
			proteinFactor = 2.2
			advice = adviceFuelUp
		}
	default: // maintain
		if trainingLoad {
			proteinFactor = 1.6
		}
	}

	protein := math.Round(p.WeightKg * proteinFactor)
	fat := math.Round(target * 0.25 / 9)
	carbs := math.Max(0, math.Round((target-protein*4-fat*9)/4))

	return Targets{
		Calories: int(target),
		Protein:  int(protein),
		Carbs:    int(carbs),
		Fat:      int(fat),
		Advice:   advice,
	}
}
