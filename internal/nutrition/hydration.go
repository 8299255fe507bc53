package nutrition

import (
	"fmt"

	model "github.com/MassBabyGeek/NutriPlan-backend/internal/models"
)

// HydrationBreakdown ventile l'apport hydrique sur la journée
// (25% matin, 40% après-midi, 25% soir, le reste pendant la séance)
type HydrationBreakdown struct {
	Morning   float64 `json:"morning"`
	Afternoon float64 `json:"afternoon"`
	Evening   float64 `json:"evening"`
	Session   float64 `json:"session"`
}

// Hydration est le besoin hydrique quotidien en litres
type Hydration struct {
	Daily        float64            `json:"daily"`
	WithTraining float64            `json:"withTraining"`
	PerSession   float64            `json:"perSession"`
	Breakdown    HydrationBreakdown `json:"breakdown"`
	Tips         []string           `json:"tips"`
}

// Intensity qualifie l'effort pour l'estimation des pertes en sueur
type Intensity string

const (
	IntensityLight    Intensity = "light"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
	IntensityExtreme  Intensity = "extreme"
)

// Electrolytes sont les pertes estimées à compenser après une séance
type Electrolytes struct {
	Sodium          int      `json:"sodium"`    // mg
	Potassium       int      `json:"potassium"` // mg
	SweatLoss       float64  `json:"sweatLoss"` // L
	Recommendations []string `json:"recommendations"`
}

var hydrationActivityMultipliers = map[model.ActivityLevel]float64{
	model.ActivitySedentary:  1.0,
	model.ActivityLight:      1.1,
	model.ActivityModerate:   1.25,
	model.ActivityActive:     1.4,
	model.ActivityVeryActive: 1.6,
}

var climateMultipliers = map[model.Climate]float64{
	model.ClimateCold:      0.95,
	model.ClimateTemperate: 1.0,
	model.ClimateWarm:      1.15,
	model.ClimateHot:       1.3,
}

// Taux de sudation par intensité (L/h)
var sweatRates = map[Intensity]float64{
	IntensityLight:    0.5,
	IntensityModerate: 1.0,
	IntensityHigh:     1.5,
	IntensityExtreme:  2.0,
}

// CalculateHydration estime le besoin hydrique : base 35 mL/kg, modulée
// par l'activité et le climat, plus 0.5 L par heure de séance
func CalculateHydration(weight float64, level model.ActivityLevel, climate model.Climate, sessionMinutes int) Hydration {
	base := weight * 0.035

	activityMult, ok := hydrationActivityMultipliers[level]
	if !ok {
		activityMult = 1.25
	}
	base *= activityMult

	climateMult, ok := climateMultipliers[climate]
	if !ok {
		climateMult = 1.0
	}
	base *= climateMult

	sessionWater := float64(sessionMinutes) / 60 * 0.5
	total := base + sessionWater

	return Hydration{
		Daily:        round1(base),
		WithTraining: round1(total),
		PerSession:   round1(sessionWater),
		Breakdown: HydrationBreakdown{
			Morning:   round1(total * 0.25),
			Afternoon: round1(total * 0.40),
			Evening:   round1(total * 0.25),
			Session:   round1(sessionWater),
		},
		Tips: []string{
			"Boire 500ml au réveil (réhydratation)",
			"Siroter régulièrement (pas tout d'un coup)",
			fmt.Sprintf("%dml pendant l'entraînement", round(sessionWater*500)),
			"Urine claire = bonne hydratation",
		},
	}
}

// CalculateElectrolytes estime les pertes en sodium et potassium d'une
// séance : taux de sudation × facteur climat chaud × durée, puis
// concentrations moyennes dans la sueur (Na 1000 mg/L, K 200 mg/L)
func CalculateElectrolytes(sessionMinutes int, intensity Intensity, climate model.Climate) Electrolytes {
	rate, ok := sweatRates[intensity]
	if !ok {
		rate = 1.0
	}

	climateFactor := 1.0
	if climate == model.ClimateHot {
		climateFactor = 1.4
	}

	sweatLoss := float64(sessionMinutes) / 60 * rate * climateFactor

	return Electrolytes{
		Sodium:    round(sweatLoss * 1000),
		Potassium: round(sweatLoss * 200),
		SweatLoss: round1(sweatLoss),
		Recommendations: []string{
			"Boisson isotonique si >90min",
			"Sel alimentaire après entraînement",
			"Banane (potassium) post-workout",
			"Eau de coco (électrolytes naturels)",
		},
	}
}
