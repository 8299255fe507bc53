package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MassBabyGeek/NutriPlan-backend/internal/api"
	"github.com/MassBabyGeek/NutriPlan-backend/internal/nutrition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

func doRequest(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	api.SetupRouter().ServeHTTP(rec, req)

	var resp apiResponse
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestHealthCheck(t *testing.T) {
	rec, resp := doRequest(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "ok", resp.Message)
}

func TestGetObjectives(t *testing.T) {
	rec, resp := doRequest(t, http.MethodGet, "/calculator/objectives", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Success)

	var policies []nutrition.ObjectivePolicy
	require.NoError(t, json.Unmarshal(resp.Data, &policies))
	assert.Len(t, policies, 9)
	for _, p := range policies {
		assert.NotEmpty(t, p.Key)
		assert.NotEmpty(t, p.Name)
	}
}

func TestCalculateRefeedEndpoint(t *testing.T) {
	rec, resp := doRequest(t, http.MethodPost, "/calculator/refeed", map[string]interface{}{
		"tdee":    2500,
		"deficit": -500,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Success)

	var refeed nutrition.Refeed
	require.NoError(t, json.Unmarshal(resp.Data, &refeed))
	assert.Equal(t, 2700, refeed.Calories)
	assert.Equal(t, "weekly", refeed.Frequency)
}

func TestCalculateRefeedRejectsMissingTDEE(t *testing.T) {
	rec, resp := doRequest(t, http.MethodPost, "/calculator/refeed", map[string]interface{}{
		"deficit": -500,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "tdee must be positive", resp.Error)
}

func TestPlanCyclingEndpoint(t *testing.T) {
	rec, resp := doRequest(t, http.MethodPost, "/calculator/cycling", map[string]interface{}{
		"tdee": 2700,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var cycling nutrition.CalorieCycling
	require.NoError(t, json.Unmarshal(resp.Data, &cycling))
	require.NotNil(t, cycling.TrainingDay)
	require.NotNil(t, cycling.RestDay)
	assert.Equal(t, 2900, cycling.TrainingDay.Calories)
	assert.Equal(t, 2376, cycling.RestDay.Calories)
	assert.Equal(t, 2675, cycling.WeeklyAverage)
}

func TestDistributeMealsEndpoint(t *testing.T) {
	macros := nutrition.MacroSet{
		Protein: nutrition.MacroTarget{Grams: 160},
		Carbs:   nutrition.MacroTarget{Grams: 300},
		Fats:    nutrition.MacroTarget{Grams: 80},
	}
	rec, resp := doRequest(t, http.MethodPost, "/calculator/meals", map[string]interface{}{
		"macros":      macros,
		"mealsPerDay": 5,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var meals []nutrition.Meal
	require.NoError(t, json.Unmarshal(resp.Data, &meals))
	require.Len(t, meals, 5)

	var protein int
	for _, m := range meals {
		protein += m.Macros.Protein
	}
	assert.Equal(t, 160, protein)
}

func TestRecommendSupplementsUnknownObjective(t *testing.T) {
	rec, resp := doRequest(t, http.MethodPost, "/calculator/supplements", map[string]interface{}{
		"objective": "devenir_enorme",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "devenir_enorme")
}

func TestCalculateHydrationEndpoint(t *testing.T) {
	rec, resp := doRequest(t, http.MethodPost, "/calculator/hydration", map[string]interface{}{
		"weight":         70,
		"activityLevel":  "moderate",
		"climate":        "temperate",
		"sessionMinutes": 60,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Hydration    nutrition.Hydration    `json:"hydration"`
		Electrolytes nutrition.Electrolytes `json:"electrolytes"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &payload))
	assert.Equal(t, 3.1, payload.Hydration.Daily)
	assert.Positive(t, payload.Electrolytes.Sodium)
}

func TestCalculateHydrationRejectsMissingWeight(t *testing.T) {
	rec, resp := doRequest(t, http.MethodPost, "/calculator/hydration", map[string]interface{}{
		"sessionMinutes": 60,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "weight must be positive", resp.Error)
}

func TestPreviewPlanEndpoint(t *testing.T) {
	rec, resp := doRequest(t, http.MethodPost, "/calculator/plan", map[string]interface{}{
		"member": map[string]interface{}{
			"name":      "Julien Moreau",
			"birthdate": "1990-06-15T00:00:00Z",
			"gender":    "male",
			"weight":    80,
			"height":    180,
		},
		"objective": "weight_loss",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Success)

	var plan nutrition.CompletePlan
	require.NoError(t, json.Unmarshal(resp.Data, &plan))
	assert.Equal(t, "Julien Moreau", plan.Member.Name)
	assert.Equal(t, "weight_loss", plan.Objective.Key)
	assert.Len(t, plan.Meals, 4)
	require.NotNil(t, plan.Refeed)
	assert.Equal(t, "weekly", plan.Refeed.Frequency)
}

func TestPreviewPlanMissingBiometrics(t *testing.T) {
	rec, resp := doRequest(t, http.MethodPost, "/calculator/plan", map[string]interface{}{
		"member": map[string]interface{}{
			"name":      "Julien Moreau",
			"birthdate": "1990-06-15T00:00:00Z",
			"gender":    "male",
		},
		"objective": "weight_loss",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, resp.Error, "weight")
}

func TestCalculatorRejectsUnknownFields(t *testing.T) {
	rec, resp := doRequest(t, http.MethodPost, "/calculator/refeed", map[string]interface{}{
		"tdee":     2500,
		"surprise": true,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid JSON body", resp.Error)
}

func TestUnknownRouteReturns404(t *testing.T) {
	rec, _ := doRequest(t, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
