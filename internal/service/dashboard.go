package service

import (
	"time"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/model"
)

type Dashboard struct {
	Date              string  `json:"date"`
	IntakeCalories    int     `json:"intake_calories"`
	BurnedCalories    int     `json:"burned_calories"`
	NetCalories       int     `json:"net_calories"`
	ProteinG          float64 `json:"protein_g"`
	CarbsG            float64 `json:"carbs_g"`
	FatG              float64 `json:"fat_g"`
	TrainingLoad      bool    `json:"training_load"`
	TargetCalories    int     `json:"target_calories"`
	TargetProteinG    int     `json:"target_protein_g"`
	TargetCarbsG      int     `json:"target_carbs_g"`
	TargetFatG        int     `json:"target_fat_g"`
	RemainingCalories int     `json:"remaining_calories"`
	Advice            string  `json:"advice,omitempty"`
}

// DashboardFor recomputes the day's totals, training-load signal, and dynamic
// targets from the current log snapshot. Purely local and synchronous; never
// waits on the remote estimator.
func DashboardFor(logs []model.LogEntry, profile model.Profile, day time.Time) Dashboard {
	totals := DailyTotals(logs, day)
	load := HighTrainingLoad(logs, day)
	targets := ComputeTargets(profile, load)

	d := Dashboard{
		Date:           beginningOfDay(day).Format("2006-01-02"),
		IntakeCalories: RoundCalories(totals.Calories),
		BurnedCalories: RoundCalories(totals.Burned),
		ProteinG:       model.RoundGrams(totals.Protein),
		CarbsG:         model.RoundGrams(totals.Carbs),
		FatG:           model.RoundGrams(totals.Fat),
		TrainingLoad:   load,
		TargetCalories: targets.Calories,
		TargetProteinG: targets.Protein,
		TargetCarbsG:   targets.Carbs,
		TargetFatG:     targets.Fat,
		Advice:         targets.Advice,
	}
	d.NetCalories = d.IntakeCalories - d.BurnedCalories
	d.RemainingCalories = d.TargetCalories - d.NetCalories
	return d
}
