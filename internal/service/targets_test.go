package service_test

import (
	"testing"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/model"
	"github.com/Allison0802/NutriWise-AI-PWA/internal/service"
)

func baseProfile() model.Profile {
	return model.Profile{
		Name:          "Test",
		Age:           30,
		HeightCm:      175,
		WeightKg:      70,
		Gender:        model.GenderMale,
		ActivityLevel: model.ActivityModerate,
		Goal:          model.GoalMaintain,
	}
}

func TestComputeTargetsMaintain(t *testing.T) {
	t.Parallel()
	got := service.ComputeTargets(baseProfile(), false)

	// bmr = 10*70 + 6.25*175 - 5*30 + 5 = 1693.75; tdee = round(1693.75*1.55) = 2625
	if got.Calories != 2625 {
		t.Fatalf("expected 2625 kcal target, got %d", got.Calories)
	}
	if got.Protein != 98 {
		t.Fatalf("expected 98g protein, got %d", got.Protein)
	}
	if got.Fat != 73 {
		t.Fatalf("expected 73g fat, got %d", got.Fat)
	}
	if got.Carbs != 394 {
		t.Fatalf("expected 394g carbs, got %d", got.Carbs)
	}
	if got.Advice != "" {
		t.Fatalf("expected no advice for plain maintain, got %q", got.Advice)
	}
}

func TestComputeTargetsLoseFatWithTrainingLoad(t *testing.T) {
	t.Parallel()
	p := baseProfile()
	p.Goal = model.GoalLoseFat

	got := service.ComputeTargets(p, true)
	if got.Calories != 2375 {
		t.Fatalf("expected reduced deficit 2375 kcal, got %d", got.Calories)
	}
	if got.Protein != 140 {
		t.Fatalf("expected 140g protein, got %d", got.Protein)
	}
	if got.Fat != 66 {
		t.Fatalf("expected 66g fat, got %d", got.Fat)
	}
	if got.Carbs != 305 {
		t.Fatalf("expected 305g carbs, got %d", got.Carbs)
	}
	if got.Advice == "" {
		t.Fatalf("expected advice message on workout day")
	}

	rest := service.ComputeTargets(p, false)
	if rest.Calories != 2625-500 {
		t.Fatalf("expected full deficit %d kcal, got %d", 2625-500, rest.Calories)
	}
	if rest.Protein != 126 { // 70 * 1.8
		t.Fatalf("expected 126g protein, got %d", rest.Protein)
	}
	if rest.Advice != "" {
		t.Fatalf("expected no advice on rest day, got %q", rest.Advice)
	}
}

func TestComputeTargetsGainMuscle(t *testing.T) {
	t.Parallel()
	p := baseProfile()
	p.Goal = model.GoalGainMuscle

	rest := service.ComputeTargets(p, false)
	if rest.Calories != 2625+300 {
		t.Fatalf("expected surplus %d kcal, got %d", 2625+300, rest.Calories)
	}
	if rest.Protein != 140 { // 70 * 2.0
		t.Fatalf("expected 140g protein, got %d", rest.Protein)
	}
	if rest.Advice != "" {
		t.Fatalf("expected no advice on rest day, got %q", rest.Advice)
	}

	loaded := service.ComputeTargets(p, true)
	if loaded.Protein != 154 { // 70 * 2.2
		t.Fatalf("expected 154g protein on workout day, got %d", loaded.Protein)
	}
	if loaded.Advice == "" {
		t.Fatalf("expected advice message on workout day")
	}
}

func TestComputeTargetsMaintainTrainingLoadBumpsProtein(t *testing.T) {
	t.Parallel()
	got := service.ComputeTargets(baseProfile(), true)
	if got.Protein != 112 { // 70 * 1.6
		t.Fatalf("expected 112g protein, got %d", got.Protein)
	}
	if got.Calories != 2625 {
		t.Fatalf("maintain target should be unchanged, got %d", got.Calories)
	}
	if got.Advice != "" {
		t.Fatalf("maintain never carries advice, got %q", got.Advice)
	}
}

func TestComputeTargetsGenderOffsets(t *testing.T) {
	t.Parallel()
	male := service.ComputeTargets(baseProfile(), false)

	p := baseProfile()
	p.Gender = model.GenderFemale
	female := service.ComputeTargets(p, false)
	if female.Calories >= male.Calories {
		t.Fatalf("female BMR offset should lower target: male=%d female=%d", male.Calories, female.Calories)
	}

	p.Gender = model.GenderOther
	other := service.ComputeTargets(p, false)
	if other != female {
		t.Fatalf("gender other must follow the female branch: other=%+v female=%+v", other, female)
	}
}

func TestComputeTargetsIsPure(t *testing.T) {
	t.Parallel()
	p := baseProfile()
	p.Goal = model.GoalLoseFat
	first := service.ComputeTargets(p, true)
	second := service.ComputeTargets(p, true)
	if first != second {
		t.Fatalf("identical inputs must yield identical targets: %+v vs %+v", first, second)
	}
}

func TestComputeTargetsCarbsFloorAtZero(t *testing.T) {
	t.Parallel()
	p := baseProfile()
	p.WeightKg = 200
	p.HeightCm = 120
	p.Age = 90
	p.ActivityLevel = model.ActivitySedentary
	p.Goal = model.GoalLoseFat

	got := service.ComputeTargets(p, false)
	if got.Carbs < 0 {
		t.Fatalf("carb target must never go negative, got %d", got.Carbs)
	}
}
