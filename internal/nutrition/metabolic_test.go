package nutrition

import (
	"testing"
	"time"

	model "github.com/MassBabyGeek/NutriPlan-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMR(t *testing.T) {
	tests := []struct {
		name    string
		weight  float64
		height  float64
		age     int
		gender  model.Gender
		want    int
		wantErr string
	}{
		{name: "male", weight: 80, height: 180, age: 35, gender: model.GenderMale, want: 1755},
		{name: "female", weight: 80, height: 180, age: 35, gender: model.GenderFemale, want: 1589},
		{name: "other gender uses median offset", weight: 80, height: 180, age: 35, gender: model.GenderOther, want: 1672},
		{name: "missing weight", height: 180, age: 35, gender: model.GenderMale, wantErr: "weight"},
		{name: "missing height", weight: 80, age: 35, gender: model.GenderMale, wantErr: "height"},
		{name: "missing age", weight: 80, height: 180, gender: model.GenderMale, wantErr: "age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateBMR(tt.weight, tt.height, tt.age, tt.gender)
			if tt.wantErr != "" {
				var missing *MissingDataError
				require.ErrorAs(t, err, &missing)
				assert.Equal(t, tt.wantErr, missing.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateTDEE(t *testing.T) {
	assert.Equal(t, 2106, CalculateTDEE(1755, model.ActivitySedentary))
	assert.Equal(t, 2720, CalculateTDEE(1755, model.ActivityModerate))
	assert.Equal(t, 3027, CalculateTDEE(1755, model.ActivityActive))
	assert.Equal(t, 3335, CalculateTDEE(1755, model.ActivityVeryActive))

	// niveau inconnu : modéré
	assert.Equal(t, 2720, CalculateTDEE(1755, model.ActivityLevel("couch")))
}

func TestCalculateTDEEOrdering(t *testing.T) {
	levels := []model.ActivityLevel{
		model.ActivitySedentary,
		model.ActivityLight,
		model.ActivityModerate,
		model.ActivityActive,
		model.ActivityVeryActive,
	}
	prev := 0
	for _, level := range levels {
		tdee := CalculateTDEE(1755, level)
		assert.Greater(t, tdee, prev, "TDEE should increase with activity level %s", level)
		prev = tdee
	}
}

func TestSessionCalories(t *testing.T) {
	assert.Equal(t, 480, SessionCalories(model.CategoryStrength, 60, 80))
	assert.Equal(t, 800, SessionCalories(model.CategoryCardio, 60, 80))
	assert.Equal(t, 480, SessionCalories(model.CategoryHIIT, 30, 80))

	// catégorie inconnue : taux par défaut 7 kcal/kg/h
	assert.Equal(t, 560, SessionCalories(model.TrainingCategory("yoga_aerien"), 60, 80))
}

func TestCalculateAdvancedTDEE(t *testing.T) {
	plan := &model.WeeklyTrainingPlan{Sessions: []model.TrainingSession{
		{Category: model.CategoryStrength, Duration: 60},
		{Category: model.CategoryCardio, Duration: 60},
		{Category: model.CategoryHIIT, Duration: 30},
	}}

	// base BMR×1.3 = 2282, volume hebdo 1760 kcal -> 251/jour
	assert.Equal(t, 2533, CalculateAdvancedTDEE(1755, plan, 80))

	// planning vide : retombe sur le TDEE catégoriel modéré
	assert.Equal(t, 2720, CalculateAdvancedTDEE(1755, nil, 80))
	assert.Equal(t, 2720, CalculateAdvancedTDEE(1755, &model.WeeklyTrainingPlan{}, 80))
}

func TestCalculateAdvancedTDEEDefaultDuration(t *testing.T) {
	// séance sans durée : 60 minutes
	withDuration := &model.WeeklyTrainingPlan{Sessions: []model.TrainingSession{
		{Category: model.CategoryStrength, Duration: 60},
	}}
	withoutDuration := &model.WeeklyTrainingPlan{Sessions: []model.TrainingSession{
		{Category: model.CategoryStrength},
	}}
	assert.Equal(t,
		CalculateAdvancedTDEE(1755, withDuration, 80),
		CalculateAdvancedTDEE(1755, withoutDuration, 80))
}

func TestCalculateMacrosMaintenance(t *testing.T) {
	plan, err := CalculateMacrosAt(testMember(), "maintenance", model.ActivityActive, nil, testNow)
	require.NoError(t, err)

	assert.Equal(t, 1755, plan.BMR)
	assert.Equal(t, 3027, plan.TDEE)
	assert.Equal(t, 3027, plan.TargetCalories)
	assert.Nil(t, plan.Training)

	assert.Equal(t, 144, plan.Macros.Protein.Grams)
	assert.Equal(t, 576, plan.Macros.Protein.Calories)
	assert.Equal(t, 101, plan.Macros.Fats.Grams)
	assert.Equal(t, 908, plan.Macros.Fats.Calories)
	assert.Equal(t, 386, plan.Macros.Carbs.Grams)
	assert.Equal(t, 1543, plan.Macros.Carbs.Calories)
}

func TestCalculateMacrosCutting(t *testing.T) {
	plan, err := CalculateMacrosAt(testMember(), "cutting", model.ActivityActive, nil, testNow)
	require.NoError(t, err)

	assert.Equal(t, 2327, plan.TargetCalories)
	assert.Equal(t, 200, plan.Macros.Protein.Grams)
	assert.Equal(t, 65, plan.Macros.Fats.Grams)
	assert.Equal(t, 236, plan.Macros.Carbs.Grams)
}

func TestCalculateMacrosCalorieIdentity(t *testing.T) {
	// Les glucides absorbent le reste du budget : les calories des trois
	// macros doivent retomber exactement sur la cible
	for _, objective := range ObjectiveKeys() {
		plan, err := CalculateMacrosAt(testMember(), objective, model.ActivityModerate, nil, testNow)
		require.NoError(t, err, objective)

		sum := plan.Macros.Protein.Calories + plan.Macros.Carbs.Calories + plan.Macros.Fats.Calories
		assert.Equal(t, plan.TargetCalories, sum, objective)
	}
}

func TestCalculateMacrosWithTraining(t *testing.T) {
	plan := &model.WeeklyTrainingPlan{Sessions: []model.TrainingSession{
		{Category: model.CategoryStrength, Duration: 60},
		{Category: model.CategoryCardio, Duration: 60},
		{Category: model.CategoryHIIT, Duration: 30},
	}}

	result, err := CalculateMacrosAt(testMember(), "maintenance", model.ActivityActive, plan, testNow)
	require.NoError(t, err)

	require.NotNil(t, result.Training)
	assert.Equal(t, 3, result.Training.SessionsPerWeek)
	assert.Equal(t, 1760, result.Training.TotalWeeklyBurn)
	assert.Equal(t, 251, result.Training.AvgDailyBurn)
	assert.Len(t, result.Training.Sessions, 3)

	// le TDEE planifié remplace le TDEE catégoriel, jamais les deux
	assert.Equal(t, 2533, result.TDEE)
}

func TestCalculateMacrosErrors(t *testing.T) {
	member := testMember()

	_, err := CalculateMacrosAt(member, "devenir_hulk", model.ActivityActive, nil, testNow)
	assert.ErrorIs(t, err, ErrUnknownObjective)

	member.Birthdate = time.Time{}
	_, err = CalculateMacrosAt(member, "maintenance", model.ActivityActive, nil, testNow)
	var missing *MissingDataError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "birthdate", missing.Field)
}

func TestAgeAt(t *testing.T) {
	birthdate := time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 35, AgeAt(birthdate, testNow))
	assert.Equal(t, 34, AgeAt(birthdate, time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 35, AgeAt(birthdate, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, AgeAt(time.Time{}, testNow))
}
