package nutrition

import (
	"testing"

	model "github.com/MassBabyGeek/NutriPlan-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func measurement(day int, weight float64, bodyFat, muscle *float64) model.Measurement {
	return model.Measurement{
		WeightKg:          weight,
		BodyFatPercentage: bodyFat,
		MuscleMassKg:      muscle,
		MeasuredAt:        testNow.AddDate(0, 0, day),
	}
}

func TestAnalyzeTrendsRequiresTwoMeasurements(t *testing.T) {
	assert.Nil(t, AnalyzeTrends(nil))
	assert.Nil(t, AnalyzeTrends([]model.Measurement{measurement(0, 80, nil, nil)}))
}

func TestAnalyzeTrendsFatLoss(t *testing.T) {
	analysis := AnalyzeTrends([]model.Measurement{
		measurement(0, 80, floatPtr(20), floatPtr(30)),
		measurement(28, 77, floatPtr(17.5), floatPtr(30)),
	})
	require.NotNil(t, analysis)

	assert.Equal(t, 28, analysis.TimeSpanDays)
	assert.Equal(t, -3.0, analysis.WeightChange)
	assert.Equal(t, -0.75, analysis.WeightChangePerWeek)
	assert.Equal(t, -2.5, analysis.FatChange)
	assert.Equal(t, 0.0, analysis.MuscleChange)
	assert.Equal(t, "fat_loss", analysis.Trend.Type)
	assert.Equal(t, 2, analysis.DataPoints)
}

func TestAnalyzeTrendsFatLossTooFast(t *testing.T) {
	analysis := AnalyzeTrends([]model.Measurement{
		measurement(0, 80, floatPtr(20), nil),
		measurement(14, 77, floatPtr(17.5), nil),
	})
	require.NotNil(t, analysis)

	assert.Equal(t, "fat_loss", analysis.Trend.Type)
	assert.Contains(t, analysis.Recommendations[0], "Perte trop rapide")
}

func TestAnalyzeTrendsStable(t *testing.T) {
	analysis := AnalyzeTrends([]model.Measurement{
		measurement(0, 80, nil, nil),
		measurement(30, 80.3, nil, nil),
	})
	require.NotNil(t, analysis)

	assert.Equal(t, "stable", analysis.Trend.Type)
	assert.Contains(t, analysis.Recommendations[0], "Poids stable")
}

func TestAnalyzeTrendsLeanGain(t *testing.T) {
	// +2kg sur 3 semaines dont +1.5 de muscle : prise de masse sèche à
	// bon rythme
	analysis := AnalyzeTrends([]model.Measurement{
		measurement(0, 80, floatPtr(15), floatPtr(30)),
		measurement(21, 82, floatPtr(15.5), floatPtr(31.5)),
	})
	require.NotNil(t, analysis)

	assert.Equal(t, "lean_gain", analysis.Trend.Type)
	assert.Equal(t, 0.67, analysis.WeightChangePerWeek)
	assert.Contains(t, analysis.Recommendations[0], "Excellent")
}

func TestAnalyzeTrendsLeanGainTooFast(t *testing.T) {
	analysis := AnalyzeTrends([]model.Measurement{
		measurement(0, 80, floatPtr(15), floatPtr(30)),
		measurement(21, 83, floatPtr(15.5), floatPtr(32)),
	})
	require.NotNil(t, analysis)

	assert.Equal(t, "lean_gain", analysis.Trend.Type)
	assert.Contains(t, analysis.Recommendations[0], "Gain rapide")
}

func TestAnalyzeTrendsMuscleLoss(t *testing.T) {
	analysis := AnalyzeTrends([]model.Measurement{
		measurement(0, 80, floatPtr(15), floatPtr(32)),
		measurement(28, 77, floatPtr(15.5), floatPtr(29.5)),
	})
	require.NotNil(t, analysis)

	assert.Equal(t, "muscle_loss", analysis.Trend.Type)
	assert.Contains(t, analysis.Recommendations[0], "ALERTE")
}

func TestAnalyzeTrendsSortsByDate(t *testing.T) {
	ordered := []model.Measurement{
		measurement(0, 80, nil, nil),
		measurement(14, 78, nil, nil),
		measurement(28, 76, nil, nil),
	}
	reversed := []model.Measurement{ordered[2], ordered[0], ordered[1]}

	a := AnalyzeTrends(ordered)
	b := AnalyzeTrends(reversed)
	require.NotNil(t, a)
	require.NotNil(t, b)

	assert.Equal(t, a, b)
	assert.Equal(t, 3, a.DataPoints)
	assert.Equal(t, -4.0, a.WeightChange)
}

func TestAnalyzeTrendsZeroTimeSpan(t *testing.T) {
	same := testNow
	analysis := AnalyzeTrends([]model.Measurement{
		{WeightKg: 80, MeasuredAt: same},
		{WeightKg: 78, MeasuredAt: same},
	})
	require.NotNil(t, analysis)

	// même date : pas de vitesse hebdomadaire calculable
	assert.Equal(t, 0.0, analysis.WeightChangePerWeek)
}
