package nutrition

import (
	"time"

	model "github.com/MassBabyGeek/NutriPlan-backend/internal/models"
)

// MacroTarget est la cible d'un macronutriment : grammes, calories
// (4 kcal/g pour protéines et glucides, 9 kcal/g pour lipides) et part des
// calories totales
type MacroTarget struct {
	Grams      int `json:"grams"`
	Calories   int `json:"calories"`
	Percentage int `json:"percentage"`
}

// MacroSet regroupe les trois macronutriments d'une journée
type MacroSet struct {
	Protein MacroTarget `json:"protein"`
	Carbs   MacroTarget `json:"carbs"`
	Fats    MacroTarget `json:"fats"`
}

// SessionBurn est le coût énergétique estimé d'une séance
type SessionBurn struct {
	Category model.TrainingCategory `json:"category"`
	Duration int                    `json:"duration"`
	Calories int                    `json:"calories"`
}

// TrainingSummary résume la dépense du planning hebdomadaire quand le TDEE
// a été calculé à partir des séances
type TrainingSummary struct {
	SessionsPerWeek int           `json:"sessionsPerWeek"`
	TotalWeeklyBurn int           `json:"totalWeeklyBurn"`
	AvgDailyBurn    int           `json:"avgDailyBurn"`
	Sessions        []SessionBurn `json:"sessions"`
}

// MacroPlan est le résultat complet de l'estimation métabolique
type MacroPlan struct {
	BMR            int              `json:"bmr"`
	TDEE           int              `json:"tdee"`
	TargetCalories int              `json:"targetCalories"`
	Macros         MacroSet         `json:"macros"`
	Training       *TrainingSummary `json:"training,omitempty"`
	Objective      ObjectivePolicy  `json:"objective"`
}

// Multiplicateurs TDEE par niveau d'activité (Harris/Mifflin standard).
// Niveau inconnu : modéré.
var activityMultipliers = map[model.ActivityLevel]float64{
	model.ActivitySedentary:  1.2,
	model.ActivityLight:      1.375,
	model.ActivityModerate:   1.55,
	model.ActivityActive:     1.725,
	model.ActivityVeryActive: 1.9,
}

const defaultActivityMultiplier = 1.55

// Dépense horaire par catégorie de séance (équivalents MET, kcal/kg/h).
// Catégorie inconnue : 7.0.
var sessionBurnRates = map[model.TrainingCategory]float64{
	model.CategoryStrength:  6.0,
	model.CategoryCardio:    10.0,
	model.CategoryHIIT:      12.0,
	model.CategoryEndurance: 8.0,
	model.CategoryCrossfit:  11.0,
	model.CategoryGymnastic: 5.0,
	model.CategoryRecovery:  3.0,
	model.CategoryMobility:  2.5,
	model.CategoryTeamSport: 8.0,
}

const defaultSessionBurnRate = 7.0

// AgeAt calcule l'âge en années révolues à la date de référence
func AgeAt(birthdate, at time.Time) int {
	if birthdate.IsZero() {
		return 0
	}
	age := at.Year() - birthdate.Year()
	if at.Month() < birthdate.Month() ||
		(at.Month() == birthdate.Month() && at.Day() < birthdate.Day()) {
		age--
	}
	return age
}

// CalculateBMR calcule le métabolisme de base (formule Mifflin-St Jeor).
// Hommes : 10×poids + 6.25×taille − 5×âge + 5
// Femmes : 10×poids + 6.25×taille − 5×âge − 161
// Autre : valeur médiane (−78)
func CalculateBMR(weight, height float64, age int, gender model.Gender) (int, error) {
	if weight <= 0 {
		return 0, missingData("weight")
	}
	if height <= 0 {
		return 0, missingData("height")
	}
	if age <= 0 {
		return 0, missingData("age")
	}

	base := 10*weight + 6.25*height - 5*float64(age)

	switch gender {
	case model.GenderMale:
		return round(base + 5), nil
	case model.GenderFemale:
		return round(base - 161), nil
	default:
		return round(base - 78), nil
	}
}

// CalculateTDEE applique le multiplicateur d'activité au BMR
func CalculateTDEE(bmr int, level model.ActivityLevel) int {
	multiplier, ok := activityMultipliers[level]
	if !ok {
		multiplier = defaultActivityMultiplier
	}
	return round(float64(bmr) * multiplier)
}

// SessionCalories estime la dépense d'une séance : taux MET × poids × durée
func SessionCalories(category model.TrainingCategory, durationMinutes int, weight float64) int {
	rate, ok := sessionBurnRates[category]
	if !ok {
		rate = defaultSessionBurnRate
	}
	return round(rate * weight * float64(durationMinutes) / 60)
}

// CalculateAdvancedTDEE calcule le TDEE à partir du planning hebdomadaire :
// base hors entraînement (BMR × 1.3) + moyenne journalière des séances.
// Sans planning, retombe sur le TDEE catégoriel modéré — les deux méthodes
// ne se combinent jamais.
func CalculateAdvancedTDEE(bmr int, plan *model.WeeklyTrainingPlan, weight float64) int {
	if plan.IsEmpty() {
		return CalculateTDEE(bmr, model.ActivityModerate)
	}

	weeklyBurn := 0
	for _, session := range plan.Sessions {
		weeklyBurn += SessionCalories(session.Category, sessionDuration(session), weight)
	}

	baseTDEE := round(float64(bmr) * 1.3)
	return baseTDEE + round(float64(weeklyBurn)/7)
}

// Durée par défaut d'une séance sans durée renseignée
func sessionDuration(s model.TrainingSession) int {
	if s.Duration <= 0 {
		return 60
	}
	return s.Duration
}

// CalculateMacros calcule le plan macro complet d'un membre pour un
// objectif donné, avec l'instant courant comme référence d'âge
func CalculateMacros(member model.MemberProfile, objective string, level model.ActivityLevel, plan *model.WeeklyTrainingPlan) (*MacroPlan, error) {
	return CalculateMacrosAt(member, objective, level, plan, time.Now())
}

// CalculateMacrosAt est la variante déterministe de CalculateMacros : la
// date de référence est explicite pour que les résultats soient
// reproductibles (rapports PDF, tests).
//
// Les protéines sont calculées en premier (g/kg) et restent fixes ; les
// lipides prennent leur part calorique ; les glucides absorbent tout le
// budget restant.
func CalculateMacrosAt(member model.MemberProfile, objective string, level model.ActivityLevel, plan *model.WeeklyTrainingPlan, now time.Time) (*MacroPlan, error) {
	policy, err := LookupObjective(objective)
	if err != nil {
		return nil, err
	}

	if member.Birthdate.IsZero() {
		return nil, missingData("birthdate")
	}
	age := AgeAt(member.Birthdate, now)

	bmr, err := CalculateBMR(member.Weight, member.Height, age, member.Gender)
	if err != nil {
		return nil, err
	}

	var tdee int
	var training *TrainingSummary
	if !plan.IsEmpty() {
		tdee = CalculateAdvancedTDEE(bmr, plan, member.Weight)
		training = summarizeTraining(plan, member.Weight)
	} else {
		tdee = CalculateTDEE(bmr, level)
	}

	targetCalories := round(float64(tdee) + float64(policy.CalorieDelta))

	proteinGrams := round(member.Weight * policy.ProteinMultiplier)
	proteinCal := proteinGrams * 4

	fatsCal := round(float64(targetCalories) * policy.FatsRatio)
	fatsGrams := round(float64(fatsCal) / 9)

	carbsCal := targetCalories - proteinCal - fatsCal
	carbsGrams := round(float64(carbsCal) / 4)

	return &MacroPlan{
		BMR:            bmr,
		TDEE:           tdee,
		TargetCalories: targetCalories,
		Macros: MacroSet{
			Protein: MacroTarget{
				Grams:      proteinGrams,
				Calories:   proteinCal,
				Percentage: percentOf(proteinCal, targetCalories),
			},
			Carbs: MacroTarget{
				Grams:      carbsGrams,
				Calories:   carbsCal,
				Percentage: percentOf(carbsCal, targetCalories),
			},
			Fats: MacroTarget{
				Grams:      fatsGrams,
				Calories:   fatsCal,
				Percentage: percentOf(fatsCal, targetCalories),
			},
		},
		Training:  training,
		Objective: policy,
	}, nil
}

func summarizeTraining(plan *model.WeeklyTrainingPlan, weight float64) *TrainingSummary {
	summary := &TrainingSummary{
		SessionsPerWeek: len(plan.Sessions),
		Sessions:        make([]SessionBurn, 0, len(plan.Sessions)),
	}
	for _, session := range plan.Sessions {
		duration := sessionDuration(session)
		calories := SessionCalories(session.Category, duration, weight)
		summary.TotalWeeklyBurn += calories
		summary.Sessions = append(summary.Sessions, SessionBurn{
			Category: session.Category,
			Duration: duration,
			Calories: calories,
		})
	}
	summary.AvgDailyBurn = round(float64(summary.TotalWeeklyBurn) / 7)
	return summary
}

func percentOf(part, total int) int {
	if total == 0 {
		return 0
	}
	return round(float64(part) / float64(total) * 100)
}
