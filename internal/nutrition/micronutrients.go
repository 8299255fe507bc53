package nutrition

import (
	"time"

	model "github.com/MassBabyGeek/NutriPlan-backend/internal/models"
)

// Micronutrients sont les apports journaliers recommandés ajustés au
// profil, à l'activité et à l'objectif. Les valeurs reprennent l'unité des
// RDA usuelles (µg, mg ou g selon le nutriment).
type Micronutrients struct {
	Daily map[string]float64 `json:"daily"`
	Notes []string           `json:"notes"`
}

var micronutrientActivityMultipliers = map[model.ActivityLevel]float64{
	model.ActivitySedentary:  1.0,
	model.ActivityLight:      1.1,
	model.ActivityModerate:   1.2,
	model.ActivityActive:     1.3,
	model.ActivityVeryActive: 1.5,
}

// Ajustements par nutriment selon la famille d'objectifs
var micronutrientObjectiveAdjustments = map[string]map[string]float64{
	"mass_gain": {
		"vitaminD":  1.5, // testostérone
		"zinc":      1.3,
		"magnesium": 1.3,
		"vitaminB6": 1.2,
	},
	"weight_loss": {
		"vitaminD":  1.2,
		"calcium":   1.2,
		"magnesium": 1.2,
		"iron":      1.1,
	},
	"performance": {
		"vitaminC":  1.5, // antioxydant
		"vitaminE":  1.4,
		"magnesium": 1.5,
		"sodium":    1.3, // pertes sudation
		"potassium": 1.3,
	},
}

// RDA de base selon sexe et âge
func baseRDA(gender model.Gender, age int) map[string]float64 {
	male := gender != model.GenderFemale

	rda := map[string]float64{
		// Vitamines
		"vitaminA":   700, // µg
		"vitaminD":   15,  // µg (600 UI)
		"vitaminE":   15,  // mg
		"vitaminK":   90,  // µg
		"vitaminC":   75,  // mg
		"vitaminB1":  1.1, // mg
		"vitaminB2":  1.1, // mg
		"vitaminB3":  14,  // mg
		"vitaminB6":  1.3, // mg
		"vitaminB9":  400, // µg (folate)
		"vitaminB12": 2.4, // µg

		// Minéraux
		"calcium":    1000, // mg
		"iron":       8,    // mg
		"magnesium":  310,  // mg
		"zinc":       8,    // mg
		"selenium":   55,   // µg
		"phosphorus": 700,  // mg
		"potassium":  3400, // mg
		"sodium":     1500, // mg (minimum, max 2300)

		// Acides gras essentiels
		"omega3": 1.6, // g (ALA)
		"omega6": 17,  // g (LA)
	}

	if male {
		rda["vitaminA"] = 900
		rda["vitaminK"] = 120
		rda["vitaminC"] = 90
		rda["vitaminB1"] = 1.2
		rda["vitaminB2"] = 1.3
		rda["vitaminB3"] = 16
		rda["magnesium"] = 400
		rda["zinc"] = 11
	}
	if age > 50 {
		rda["calcium"] = 1200
	}
	if gender == model.GenderFemale && age < 50 {
		rda["iron"] = 18
	}

	return rda
}

// Famille d'ajustement micronutriments d'un objectif canonique
func objectiveAdjustmentGroup(objective string) string {
	switch objective {
	case "mass_gain":
		return "mass_gain"
	case "weight_loss", "cutting":
		return "weight_loss"
	case "performance_endurance", "performance_strength", "performance_crossfit", "performance_ultra":
		return "performance"
	default:
		return ""
	}
}

// CalculateMicronutrients calcule les besoins à l'instant courant
func CalculateMicronutrients(member model.MemberProfile, objective string, level model.ActivityLevel) (*Micronutrients, error) {
	return CalculateMicronutrientsAt(member, objective, level, time.Now())
}

// CalculateMicronutrientsAt part des RDA sexe/âge, applique le
// multiplicateur d'activité (1.0 à 1.5) puis les sur-besoins propres à la
// famille d'objectifs
func CalculateMicronutrientsAt(member model.MemberProfile, objective string, level model.ActivityLevel, now time.Time) (*Micronutrients, error) {
	policy, err := LookupObjective(objective)
	if err != nil {
		return nil, err
	}
	if member.Birthdate.IsZero() {
		return nil, missingData("birthdate")
	}

	age := AgeAt(member.Birthdate, now)

	multiplier, ok := micronutrientActivityMultipliers[level]
	if !ok {
		multiplier = 1.2
	}

	objAdj := micronutrientObjectiveAdjustments[objectiveAdjustmentGroup(policy.Key)]

	daily := map[string]float64{}
	for nutrient, value := range baseRDA(member.Gender, age) {
		objMult := 1.0
		if m, ok := objAdj[nutrient]; ok {
			objMult = m
		}
		daily[nutrient] = round1(value * multiplier * objMult)
	}

	return &Micronutrients{
		Daily: daily,
		Notes: micronutrientNotes(policy.Key, member.Gender, age),
	}, nil
}

func micronutrientNotes(objective string, gender model.Gender, age int) []string {
	notes := []string{}

	switch objectiveAdjustmentGroup(objective) {
	case "mass_gain":
		notes = append(notes,
			"Vitamine D : Essentielle pour testostérone et force",
			"Zinc : Croissance et réparation musculaire",
			"Magnésium : Synthèse protéique et récupération")
	case "weight_loss":
		notes = append(notes,
			"Calcium : Peut favoriser l'oxydation des graisses",
			"Magnésium : Prévient les crampes en déficit",
			"Fer : Attention aux carences (fatigue)")
	case "performance":
		notes = append(notes,
			"Vitamine C + E : Protection stress oxydatif",
			"Sodium/Potassium : Compensation pertes sudation",
			"Magnésium : Contraction musculaire et énergie")
	}

	if gender == model.GenderFemale && age < 50 {
		notes = append(notes,
			"Fer : Besoins élevés (menstruations)",
			"Calcium : Important pour densité osseuse")
	}

	if age > 40 {
		notes = append(notes,
			"Vitamine D : Production naturelle réduite avec l'âge",
			"Calcium : Prévention ostéoporose",
			"B12 : Absorption réduite après 50 ans")
	}

	return notes
}
