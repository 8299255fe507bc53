package nutrition

import (
	"testing"

	model "github.com/MassBabyGeek/NutriPlan-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanCalorieCyclingWithoutPlan(t *testing.T) {
	cycling := PlanCalorieCycling(2700, nil)

	require.NotNil(t, cycling.TrainingDay)
	require.NotNil(t, cycling.RestDay)
	assert.Nil(t, cycling.HighDay)
	assert.Nil(t, cycling.ModerateDay)
	assert.Nil(t, cycling.LowDay)

	assert.Equal(t, 2900, cycling.TrainingDay.Calories)
	assert.Equal(t, 50, cycling.TrainingDay.CarbsBoost)
	assert.Equal(t, 2376, cycling.RestDay.Calories)
	assert.Equal(t, 50, cycling.RestDay.CarbsReduction)

	// semaine type 4 entraînements / 3 repos
	assert.Equal(t, 2675, cycling.WeeklyAverage)
}

func TestPlanCalorieCyclingWithPlan(t *testing.T) {
	plan := &model.WeeklyTrainingPlan{Sessions: []model.TrainingSession{
		{Category: model.CategoryHIIT, Duration: 45},
		{Category: model.CategoryStrength, Duration: 60},
		{Category: model.CategoryRecovery, Duration: 30},
	}}

	cycling := PlanCalorieCycling(2700, plan)

	require.NotNil(t, cycling.HighDay)
	require.NotNil(t, cycling.ModerateDay)
	require.NotNil(t, cycling.LowDay)
	require.NotNil(t, cycling.RestDay)
	assert.Nil(t, cycling.TrainingDay)

	assert.Equal(t, 3100, cycling.HighDay.Calories)
	assert.Equal(t, 100, cycling.HighDay.CarbsBoost)
	assert.Len(t, cycling.HighDay.Sessions, 1)

	assert.Equal(t, 2850, cycling.ModerateDay.Calories)
	assert.Len(t, cycling.ModerateDay.Sessions, 1)

	assert.Equal(t, 2700, cycling.LowDay.Calories)
	assert.Len(t, cycling.LowDay.Sessions, 1)

	assert.Equal(t, 2295, cycling.RestDay.Calories)
	assert.Equal(t, 80, cycling.RestDay.CarbsReduction)

	// 3 séances + 4 jours de repos
	assert.Equal(t, 2547, cycling.WeeklyAverage)
}

func TestPlanCalorieCyclingUnknownCategoryGoesLow(t *testing.T) {
	plan := &model.WeeklyTrainingPlan{Sessions: []model.TrainingSession{
		{Category: model.TrainingCategory("aquaponey"), Duration: 60},
	}}

	cycling := PlanCalorieCycling(2700, plan)
	require.NotNil(t, cycling.LowDay)
	assert.Len(t, cycling.LowDay.Sessions, 1)
	assert.Empty(t, cycling.HighDay.Sessions)
	assert.Empty(t, cycling.ModerateDay.Sessions)
}

func TestPlanCalorieCyclingRestDaysClamped(t *testing.T) {
	// 9 séances hebdo : le compte de jours de repos est borné à 0, jamais
	// négatif
	sessions := make([]model.TrainingSession, 9)
	for i := range sessions {
		sessions[i] = model.TrainingSession{Category: model.CategoryHIIT, Duration: 60}
	}

	cycling := PlanCalorieCycling(2700, &model.WeeklyTrainingPlan{Sessions: sessions})

	// 9 jours haute intensité / 7 : la moyenne dépasse le jour haut,
	// mais reste positive et sans contribution négative du repos
	assert.Equal(t, round(float64(3100*9)/7), cycling.WeeklyAverage)
	assert.Greater(t, cycling.WeeklyAverage, 2700)
}

func TestPlanCalorieCyclingAverageBounded(t *testing.T) {
	plan := &model.WeeklyTrainingPlan{Sessions: []model.TrainingSession{
		{Category: model.CategoryHIIT, Duration: 45},
		{Category: model.CategoryStrength, Duration: 60},
	}}

	cycling := PlanCalorieCycling(2700, plan)

	// la moyenne hebdo se situe entre le jour le plus bas et le plus haut
	assert.GreaterOrEqual(t, cycling.WeeklyAverage, cycling.RestDay.Calories)
	assert.LessOrEqual(t, cycling.WeeklyAverage, cycling.HighDay.Calories)
}
