package nutrition

import (
	"time"

	model "github.com/MassBabyGeek/NutriPlan-backend/internal/models"
)

// Archetype est un morphotype au sens de la classification de Sheldon
type Archetype string

const (
	Ectomorph Archetype = "ectomorph"
	Mesomorph Archetype = "mesomorph"
	Endomorph Archetype = "endomorph"
)

// ArchetypeProfile porte la politique nutritionnelle d'un morphotype
type ArchetypeProfile struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Characteristics   []string `json:"characteristics"`
	CalorieAdjustment float64  `json:"calorieAdjustment"`
	ProteinMultiplier float64  `json:"proteinMultiplier"`
	CarbsRatio        float64  `json:"carbsRatio"`
	FatsRatio         float64  `json:"fatsRatio"`
	MealFrequency     int      `json:"mealFrequency"`
}

// MorphotypeResult est le résultat du classement : archétype dominant,
// détail des scores et politique associée
type MorphotypeResult struct {
	Dominant Archetype         `json:"dominant"`
	Scores   map[Archetype]int `json:"scores"`
	IsMixed  bool              `json:"isMixed"`
	Profile  ArchetypeProfile  `json:"profile"`
}

// AdjustedMacros sont les macros recalculées selon le morphotype : les
// protéines restent celles du plan de base, glucides et lipides sont
// recalculés depuis les ratios de l'archétype
type AdjustedMacros struct {
	Calories      int       `json:"calories"`
	Macros        MacroSet  `json:"macros"`
	MealFrequency int       `json:"mealFrequency"`
	Morphotype    Archetype `json:"morphotype"`
}

// Table des morphotypes, constante au démarrage
var archetypeProfiles = map[Archetype]ArchetypeProfile{
	Ectomorph: {
		Name:        "Ectomorphe",
		Description: "Métabolisme rapide, difficultés à prendre du poids",
		Characteristics: []string{
			"Ossature fine",
			"Peu de masse musculaire naturelle",
			"Peu de graisse",
		},
		CalorieAdjustment: 1.15,
		ProteinMultiplier: 1.8,
		CarbsRatio:        0.50,
		FatsRatio:         0.20,
		MealFrequency:     6,
	},
	Mesomorph: {
		Name:        "Mésomorphe",
		Description: "Génétique favorable, gains musculaires faciles",
		Characteristics: []string{
			"Ossature moyenne à large",
			"Masse musculaire naturelle",
			"Métabolisme équilibré",
		},
		CalorieAdjustment: 1.0,
		ProteinMultiplier: 2.0,
		CarbsRatio:        0.40,
		FatsRatio:         0.25,
		MealFrequency:     4,
	},
	Endomorph: {
		Name:        "Endomorphe",
		Description: "Métabolisme lent, stockage facilité",
		Characteristics: []string{
			"Ossature large",
			"Gains musculaires ET graisse faciles",
			"Rétention d'eau",
		},
		CalorieAdjustment: 0.90,
		ProteinMultiplier: 2.2,
		CarbsRatio:        0.30,
		FatsRatio:         0.30,
		MealFrequency:     4,
	},
}

// Ordre de priorité en cas d'égalité parfaite des scores
var archetypePriority = []Archetype{Ectomorph, Mesomorph, Endomorph}

// ArchetypeByKey retourne la politique d'un morphotype. Clé inconnue :
// mésomorphe (profil neutre).
func ArchetypeByKey(key Archetype) ArchetypeProfile {
	if profile, ok := archetypeProfiles[key]; ok {
		return profile
	}
	return archetypeProfiles[Mesomorph]
}

// ClassifyMorphotype classe un membre à l'instant courant
func ClassifyMorphotype(member model.MemberProfile, answers *model.MorphotypeAnswers) (*MorphotypeResult, error) {
	return ClassifyMorphotypeAt(member, answers, time.Now())
}

// ClassifyMorphotypeAt score les trois archétypes à partir de l'IMC, du
// taux de masse grasse et des réponses optionnelles au questionnaire, puis
// désigne le dominant. Le résultat est mixte quand les scores extrêmes
// sont séparés de moins de 3 points.
func ClassifyMorphotypeAt(member model.MemberProfile, answers *model.MorphotypeAnswers, now time.Time) (*MorphotypeResult, error) {
	if member.Weight <= 0 {
		return nil, missingData("weight")
	}
	if member.Height <= 0 {
		return nil, missingData("height")
	}
	if member.Birthdate.IsZero() {
		return nil, missingData("birthdate")
	}

	scores := map[Archetype]int{
		Ectomorph: 0,
		Mesomorph: 0,
		Endomorph: 0,
	}

	// 1. Analyse physique : IMC (3 points) et masse grasse (2 points)
	heightM := member.Height / 100
	bmi := member.Weight / (heightM * heightM)

	bodyFat := EstimateBodyFatAt(member, now)
	if member.BodyFatPercentage != nil && *member.BodyFatPercentage > 0 {
		bodyFat = *member.BodyFatPercentage
	}

	switch {
	case bmi < 20:
		scores[Ectomorph] += 3
	case bmi < 25:
		scores[Mesomorph] += 3
	default:
		scores[Endomorph] += 3
	}

	switch {
	case bodyFat < 12:
		scores[Ectomorph] += 2
	case bodyFat < 18:
		scores[Mesomorph] += 2
	default:
		scores[Endomorph] += 2
	}

	// 2. Questionnaire. L'absence de réponse sur la prise de poids vaut
	// "normale" et crédite le mésomorphe, comme le faisait le portail.
	var q model.MorphotypeAnswers
	if answers != nil {
		q = *answers
	}

	switch q.WeightGainDifficulty {
	case "very_hard":
		scores[Ectomorph] += 3
	case "easy":
		scores[Endomorph] += 3
	default:
		scores[Mesomorph] += 2
	}

	switch q.MuscleGains {
	case "fast":
		scores[Mesomorph] += 3
	case "slow":
		scores[Ectomorph] += 2
	}

	switch q.FatStorage {
	case "easy":
		scores[Endomorph] += 3
	case "hard":
		scores[Ectomorph] += 2
	}

	// 3. Archétype dominant, départagé par ordre de priorité fixe
	dominant := archetypePriority[0]
	best := scores[dominant]
	minScore := best
	for _, a := range archetypePriority[1:] {
		if scores[a] > best {
			dominant = a
			best = scores[a]
		}
		if scores[a] < minScore {
			minScore = scores[a]
		}
	}

	return &MorphotypeResult{
		Dominant: dominant,
		Scores:   scores,
		IsMixed:  best-minScore < 3,
		Profile:  archetypeProfiles[dominant],
	}, nil
}

// AdjustForMorphotype ajuste les calories cibles selon le morphotype et
// recalcule glucides/lipides depuis ses ratios. Les protéines du plan de
// base sont conservées telles quelles ; leur part n'est pas soustraite du
// partage glucides/lipides, donc les pourcentages peuvent dépasser 100 —
// comportement historique du portail, conservé volontairement.
func AdjustForMorphotype(baseCalories int, baseMacros MacroSet, archetype Archetype) AdjustedMacros {
	profile := ArchetypeByKey(archetype)

	adjustedCalories := round(float64(baseCalories) * profile.CalorieAdjustment)

	carbsCal := round(float64(adjustedCalories) * profile.CarbsRatio)
	fatsCal := round(float64(adjustedCalories) * profile.FatsRatio)

	return AdjustedMacros{
		Calories: adjustedCalories,
		Macros: MacroSet{
			Protein: baseMacros.Protein,
			Carbs: MacroTarget{
				Grams:      round(float64(carbsCal) / 4),
				Calories:   carbsCal,
				Percentage: percentOf(carbsCal, adjustedCalories),
			},
			Fats: MacroTarget{
				Grams:      round(float64(fatsCal) / 9),
				Calories:   fatsCal,
				Percentage: percentOf(fatsCal, adjustedCalories),
			},
		},
		MealFrequency: profile.MealFrequency,
		Morphotype:    archetype,
	}
}
