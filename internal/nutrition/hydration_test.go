package nutrition

import (
	"testing"

	model "github.com/MassBabyGeek/NutriPlan-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCalculateHydration(t *testing.T) {
	h := CalculateHydration(70, model.ActivityModerate, model.ClimateTemperate, 60)

	assert.Equal(t, 3.1, h.Daily)        // 70×0.035×1.25
	assert.Equal(t, 3.6, h.WithTraining) // +0.5L pour 60min
	assert.Equal(t, 0.5, h.PerSession)

	assert.Equal(t, 0.9, h.Breakdown.Morning)
	assert.Equal(t, 1.4, h.Breakdown.Afternoon)
	assert.Equal(t, 0.9, h.Breakdown.Evening)
	assert.Equal(t, 0.5, h.Breakdown.Session)

	assert.Contains(t, h.Tips[2], "250ml")
}

func TestCalculateHydrationClimate(t *testing.T) {
	temperate := CalculateHydration(70, model.ActivityModerate, model.ClimateTemperate, 0)
	hot := CalculateHydration(70, model.ActivityModerate, model.ClimateHot, 0)
	cold := CalculateHydration(70, model.ActivityModerate, model.ClimateCold, 0)

	assert.Greater(t, hot.Daily, temperate.Daily)
	assert.Less(t, cold.Daily, temperate.Daily)

	// climat inconnu : neutre
	unknown := CalculateHydration(70, model.ActivityModerate, model.Climate("tropical_humide"), 0)
	assert.Equal(t, temperate.Daily, unknown.Daily)
}

func TestCalculateHydrationDefaultActivity(t *testing.T) {
	moderate := CalculateHydration(70, model.ActivityModerate, model.ClimateTemperate, 0)
	unknown := CalculateHydration(70, model.ActivityLevel(""), model.ClimateTemperate, 0)
	assert.Equal(t, moderate.Daily, unknown.Daily)
}

func TestCalculateElectrolytes(t *testing.T) {
	e := CalculateElectrolytes(60, IntensityModerate, model.ClimateTemperate)

	assert.Equal(t, 1.0, e.SweatLoss)
	assert.Equal(t, 1000, e.Sodium)
	assert.Equal(t, 200, e.Potassium)
	assert.NotEmpty(t, e.Recommendations)
}

func TestCalculateElectrolytesHotClimate(t *testing.T) {
	e := CalculateElectrolytes(60, IntensityModerate, model.ClimateHot)

	// facteur 1.4 en climat chaud
	assert.Equal(t, 1.4, e.SweatLoss)
	assert.Equal(t, 1400, e.Sodium)
	assert.Equal(t, 280, e.Potassium)
}

func TestCalculateElectrolytesUnknownIntensity(t *testing.T) {
	moderate := CalculateElectrolytes(90, IntensityModerate, model.ClimateTemperate)
	unknown := CalculateElectrolytes(90, Intensity("cosmique"), model.ClimateTemperate)
	assert.Equal(t, moderate.Sodium, unknown.Sodium)
}
