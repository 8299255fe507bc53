package nutrition

import (
	model "github.com/MassBabyGeek/NutriPlan-backend/internal/models"
)

// DayProfile est un profil journalier du cyclage calorique
type DayProfile struct {
	Calories       int                     `json:"calories"`
	Description    string                  `json:"description"`
	CarbsBoost     int                     `json:"carbsBoost,omitempty"`     // g
	CarbsReduction int                     `json:"carbsReduction,omitempty"` // g
	Sessions       []model.TrainingSession `json:"sessions,omitempty"`
}

// CalorieCycling fait varier les calories selon l'intensité des jours.
// Deux profils sans planning (entraînement/repos), quatre avec
// (haute/modérée/basse intensité + repos).
type CalorieCycling struct {
	TrainingDay   *DayProfile `json:"trainingDay,omitempty"`
	HighDay       *DayProfile `json:"highDay,omitempty"`
	ModerateDay   *DayProfile `json:"moderateDay,omitempty"`
	LowDay        *DayProfile `json:"lowDay,omitempty"`
	RestDay       *DayProfile `json:"restDay,omitempty"`
	WeeklyAverage int         `json:"weeklyAverage"`
}

// Répartition des catégories de séance par intensité
var (
	highIntensityCategories = map[model.TrainingCategory]bool{
		model.CategoryCrossfit:  true,
		model.CategoryHIIT:      true,
		model.CategoryCardio:    true,
		model.CategoryEndurance: true,
	}
	moderateIntensityCategories = map[model.TrainingCategory]bool{
		model.CategoryStrength:  true,
		model.CategoryTeamSport: true,
	}
)

// PlanCalorieCycling construit les profils journaliers depuis le TDEE de
// base. Sans planning : jour d'entraînement TDEE+200 / jour de repos
// TDEE×0.88, moyenne sur une semaine type 4 entraînements / 3 repos.
// Avec planning : quatre paliers, les séances étant rattachées à leur
// palier d'intensité.
func PlanCalorieCycling(baseTDEE int, plan *model.WeeklyTrainingPlan) CalorieCycling {
	if plan.IsEmpty() {
		training := &DayProfile{
			Calories:    round(float64(baseTDEE) + 200),
			Description: "Jour d'entraînement",
			CarbsBoost:  50,
		}
		rest := &DayProfile{
			Calories:       round(float64(baseTDEE) * 0.88),
			Description:    "Jour de repos",
			CarbsReduction: 50,
		}
		return CalorieCycling{
			TrainingDay:   training,
			RestDay:       rest,
			WeeklyAverage: round(float64(training.Calories*4+rest.Calories*3) / 7),
		}
	}

	high, moderate, low := categorizeSessions(plan.Sessions)

	highDay := &DayProfile{
		Calories:    round(float64(baseTDEE) + 400),
		Description: "Jour haute intensité",
		CarbsBoost:  100,
		Sessions:    high,
	}
	moderateDay := &DayProfile{
		Calories:    round(float64(baseTDEE) + 150),
		Description: "Jour intensité modérée",
		CarbsBoost:  40,
		Sessions:    moderate,
	}
	lowDay := &DayProfile{
		Calories:    baseTDEE,
		Description: "Jour récupération active",
		Sessions:    low,
	}
	restDay := &DayProfile{
		Calories:       round(float64(baseTDEE) * 0.85),
		Description:    "Jour de repos complet",
		CarbsReduction: 80,
	}

	// Le nombre de jours de repos est borné à 0 : un planning à plus de
	// 7 séances/semaine ne doit pas produire un compte négatif
	restDays := 7 - len(plan.Sessions)
	if restDays < 0 {
		restDays = 0
	}

	weeklyTotal := highDay.Calories*len(high) +
		moderateDay.Calories*len(moderate) +
		lowDay.Calories*len(low) +
		restDay.Calories*restDays

	return CalorieCycling{
		HighDay:       highDay,
		ModerateDay:   moderateDay,
		LowDay:        lowDay,
		RestDay:       restDay,
		WeeklyAverage: round(float64(weeklyTotal) / 7),
	}
}

func categorizeSessions(sessions []model.TrainingSession) (high, moderate, low []model.TrainingSession) {
	for _, s := range sessions {
		switch {
		case highIntensityCategories[s.Category]:
			high = append(high, s)
		case moderateIntensityCategories[s.Category]:
			moderate = append(moderate, s)
		default:
			low = append(low, s)
		}
	}
	return high, moderate, low
}
