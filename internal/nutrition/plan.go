package nutrition

import (
	"time"

	model "github.com/MassBabyGeek/NutriPlan-backend/internal/models"
)

// MemberSummary est le rappel d'identité en tête de plan
type MemberSummary struct {
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
}

// CompletePlan est le plan nutritionnel complet d'un membre, assemblé par
// GenerateCompletePlan et consommé tel quel par l'affichage et le PDF
type CompletePlan struct {
	Member          MemberSummary     `json:"member"`
	Objective       ObjectivePolicy   `json:"objective"`
	BodyComposition *BodyComposition  `json:"bodyComposition"`
	Morphotype      *MorphotypeResult `json:"morphotype"`
	BaseMacros      *MacroPlan        `json:"baseMacros"`
	AdjustedMacros  AdjustedMacros    `json:"adjustedMacros"`
	CalorieCycling  CalorieCycling    `json:"calorieCycling"`
	Meals           []Meal            `json:"mealsDistribution"`
	Hydration       Hydration         `json:"hydration"`
	Micronutrients  *Micronutrients   `json:"micronutrients"`
	Supplements     SupplementPlan    `json:"supplements"`
	Refeed          *Refeed           `json:"refeed,omitempty"`
}

// Durée de séance de référence pour l'hydratation du plan complet
const defaultSessionMinutes = 60

// GenerateCompletePlan génère le plan complet à l'instant courant
func GenerateCompletePlan(member model.MemberProfile, objective string, training *model.WeeklyTrainingPlan, prefs model.Preferences) (*CompletePlan, error) {
	return GenerateCompletePlanAt(member, objective, training, prefs, time.Now())
}

// GenerateCompletePlanAt enchaîne tous les calculateurs : macros de base,
// composition corporelle, morphotype et ajustement, cyclage calorique,
// répartition des repas, hydratation, micronutriments, suppléments, et
// refeed pour les objectifs en déficit. Pure composition : toute erreur
// d'un calculateur abandonne le plan entier, jamais de plan partiel.
func GenerateCompletePlanAt(member model.MemberProfile, objective string, training *model.WeeklyTrainingPlan, prefs model.Preferences, now time.Time) (*CompletePlan, error) {
	activity := prefs.ActivityLevel
	if activity == "" {
		activity = model.ActivityActive
	}

	// 1. Calculs de base
	baseMacros, err := CalculateMacrosAt(member, objective, activity, training, now)
	if err != nil {
		return nil, err
	}

	// 2. Composition corporelle
	bodyComp, err := CalculateBodyCompositionAt(member, now)
	if err != nil {
		return nil, err
	}

	// 3. Morphotype
	morphotype, err := ClassifyMorphotypeAt(member, prefs.MorphotypeAnswers, now)
	if err != nil {
		return nil, err
	}

	// 4. Ajustement morphotype
	adjusted := AdjustForMorphotype(baseMacros.TargetCalories, baseMacros.Macros, morphotype.Dominant)

	// 5. Cyclage calorique
	cycling := PlanCalorieCycling(baseMacros.TDEE, training)

	// 6. Distribution des repas
	mealsPerDay := prefs.MealsPerDay
	if mealsPerDay == 0 {
		mealsPerDay = 4
	}
	meals := DistributeMacrosOverDay(adjusted.Macros, mealsPerDay, prefs.TrainingTime)

	// 7. Hydratation
	hydration := CalculateHydration(member.Weight, activity, prefs.Climate, defaultSessionMinutes)

	// 8. Micronutriments
	micronutrients, err := CalculateMicronutrientsAt(member, objective, activity, now)
	if err != nil {
		return nil, err
	}

	// 9. Suppléments
	supplements := RecommendSupplements(baseMacros.Objective.Key, prefs.Diet, prefs.Budget)

	// 10. Refeed, uniquement en déficit calorique
	var refeed *Refeed
	if baseMacros.Objective.IsDeficit() {
		r := CalculateRefeed(baseMacros.TDEE, baseMacros.Objective.CalorieDelta)
		refeed = &r
	}

	return &CompletePlan{
		Member: MemberSummary{
			Name:   member.Name,
			Age:    AgeAt(member.Birthdate, now),
			Weight: member.Weight,
			Height: member.Height,
		},
		Objective:       baseMacros.Objective,
		BodyComposition: bodyComp,
		Morphotype:      morphotype,
		BaseMacros:      baseMacros,
		AdjustedMacros:  adjusted,
		CalorieCycling:  cycling,
		Meals:           meals,
		Hydration:       hydration,
		Micronutrients:  micronutrients,
		Supplements:     supplements,
		Refeed:          refeed,
	}, nil
}
