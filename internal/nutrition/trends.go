package nutrition

import (
	"math"
	"sort"

	model "github.com/MassBabyGeek/NutriPlan-backend/internal/models"
)

// Trend classe l'évolution corporelle d'un membre sur son historique de
// mesures
type Trend struct {
	Type  string `json:"type"`
	Label string `json:"label"`
}

// TrendAnalysis résume l'évolution entre la première et la dernière mesure
type TrendAnalysis struct {
	TimeSpanDays        int      `json:"timeSpanDays"`
	WeightChange        float64  `json:"weightChange"`
	WeightChangePerWeek float64  `json:"weightChangePerWeek"`
	FatChange           float64  `json:"fatChange"`
	MuscleChange        float64  `json:"muscleChange"`
	Trend               Trend    `json:"trend"`
	DataPoints          int      `json:"dataPoints"`
	Recommendations     []string `json:"recommendations"`
}

// AnalyzeTrends compare la première et la dernière mesure de l'historique.
// Retourne nil avec moins de deux mesures : pas de tendance calculable.
func AnalyzeTrends(measurements []model.Measurement) *TrendAnalysis {
	if len(measurements) < 2 {
		return nil
	}

	sorted := make([]model.Measurement, len(measurements))
	copy(sorted, measurements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MeasuredAt.Before(sorted[j].MeasuredAt)
	})

	first := sorted[0]
	last := sorted[len(sorted)-1]
	timeSpan := last.MeasuredAt.Sub(first.MeasuredAt).Hours() / 24

	weightChange := last.WeightKg - first.WeightKg
	weightChangePerWeek := 0.0
	if timeSpan > 0 {
		weightChangePerWeek = weightChange / timeSpan * 7
	}

	fatChange := optionalDelta(last.BodyFatPercentage, first.BodyFatPercentage)
	muscleChange := optionalDelta(last.MuscleMassKg, first.MuscleMassKg)

	analysis := &TrendAnalysis{
		TimeSpanDays:        round(timeSpan),
		WeightChange:        round1(weightChange),
		WeightChangePerWeek: math.Round(weightChangePerWeek*100) / 100,
		FatChange:           round1(fatChange),
		MuscleChange:        round1(muscleChange),
		Trend:               classifyTrend(weightChange, fatChange, muscleChange),
		DataPoints:          len(sorted),
	}
	analysis.Recommendations = trendRecommendations(analysis)

	return analysis
}

func optionalDelta(last, first *float64) float64 {
	l, f := 0.0, 0.0
	if last != nil {
		l = *last
	}
	if first != nil {
		f = *first
	}
	return l - f
}

func classifyTrend(weightChange, fatChange, muscleChange float64) Trend {
	if math.Abs(weightChange) < 0.5 {
		return Trend{Type: "stable", Label: "Poids stable"}
	}

	if weightChange > 0 {
		switch {
		case fatChange > 1 && muscleChange < 1:
			return Trend{Type: "fat_gain", Label: "Prise de gras"}
		case muscleChange > 0.5 && fatChange < 1:
			return Trend{Type: "lean_gain", Label: "Prise de masse sèche"}
		default:
			return Trend{Type: "weight_gain", Label: "Prise de poids mixte"}
		}
	}

	switch {
	case fatChange < -1 && muscleChange > -0.5:
		return Trend{Type: "fat_loss", Label: "Perte de gras"}
	case muscleChange < -1:
		return Trend{Type: "muscle_loss", Label: "Perte musculaire"}
	default:
		return Trend{Type: "weight_loss", Label: "Perte de poids"}
	}
}

func trendRecommendations(analysis *TrendAnalysis) []string {
	recs := []string{}
	perWeek := analysis.WeightChangePerWeek

	switch analysis.Trend.Type {
	case "fat_gain":
		recs = append(recs,
			"Réduire les calories de 200-300 kcal/jour",
			"Augmenter l'activité cardio",
			"Vérifier le tracking alimentaire")
	case "lean_gain":
		switch {
		case perWeek > 0.7:
			recs = append(recs, "Gain rapide - Risque de gras. Réduire légèrement")
		case perWeek > 0.5:
			recs = append(recs, "Excellent ! Maintenir le cap")
		default:
			recs = append(recs, "Progression optimale pour prise de masse")
		}
	case "fat_loss":
		if math.Abs(perWeek) < 0.5 {
			recs = append(recs, "Perte progressive idéale - Maintenir")
		} else if math.Abs(perWeek) > 1.0 {
			recs = append(recs,
				"Perte trop rapide - Risque catabolisme",
				"Augmenter les calories de 100-200 kcal")
		}
	case "muscle_loss":
		recs = append(recs,
			"ALERTE : Perte musculaire détectée",
			"Augmenter calories et protéines immédiatement",
			"Vérifier volume d'entraînement (surentraînement?)")
	case "stable":
		recs = append(recs, "Poids stable - Maintenance réussie")
	}

	return recs
}
