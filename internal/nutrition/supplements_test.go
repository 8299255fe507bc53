package nutrition

import (
	"sort"
	"testing"

	model "github.com/MassBabyGeek/NutriPlan-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func supplementNames(list []Supplement) []string {
	names := make([]string, len(list))
	for i, s := range list {
		names[i] = s.Name
	}
	return names
}

func TestRecommendSupplementsEssentials(t *testing.T) {
	// Vitamine D3 et oméga-3 quel que soit l'objectif
	for _, objective := range ObjectiveKeys() {
		plan := RecommendSupplements(objective, "", model.BudgetHigh)
		require.Len(t, plan.Essential, 2, objective)
		assert.Equal(t, "Vitamine D3", plan.Essential[0].Name)
		assert.Equal(t, "Omega-3 (EPA/DHA)", plan.Essential[1].Name)
	}
}

func TestRecommendSupplementsMassGain(t *testing.T) {
	plan := RecommendSupplements("mass_gain", "", model.BudgetHigh)

	names := supplementNames(plan.Beneficial)
	assert.Equal(t, []string{
		"Creatine monohydrate",
		"Whey Proteine",
		"Beta-Alanine",
		"Magnesium (bisglycinate)",
		"Citrulline Malate",
	}, names)
}

func TestRecommendSupplementsSortedByPriority(t *testing.T) {
	for _, objective := range ObjectiveKeys() {
		plan := RecommendSupplements(objective, "", model.BudgetHigh)
		sorted := sort.SliceIsSorted(plan.Beneficial, func(i, j int) bool {
			return plan.Beneficial[i].Priority > plan.Beneficial[j].Priority
		})
		assert.True(t, sorted, objective)
	}
}

func TestRecommendSupplementsBudgetFilter(t *testing.T) {
	// budget bas : uniquement les suppléments à coût bas, 3 maximum
	low := RecommendSupplements("mass_gain", "", model.BudgetLow)
	assert.LessOrEqual(t, len(low.Beneficial), 3)
	for _, s := range low.Beneficial {
		assert.Equal(t, model.BudgetLow, s.Cost, s.Name)
	}
	assert.Equal(t, "Creatine monohydrate", low.Beneficial[0].Name)

	// budget moyen : top 5
	medium := RecommendSupplements("performance_endurance", "", model.BudgetMedium)
	assert.LessOrEqual(t, len(medium.Beneficial), 5)

	// budget absent : comportement budget moyen
	implicit := RecommendSupplements("performance_endurance", "", "")
	assert.Equal(t, medium.Beneficial, implicit.Beneficial)
}

func TestRecommendSupplementsUniversalFallbacks(t *testing.T) {
	// performance_ultra n'a pas de liste dédiée : uniquement les
	// compléments universels
	plan := RecommendSupplements("performance_ultra", "", model.BudgetHigh)
	assert.Equal(t, []string{"Whey Proteine", "Magnesium (bisglycinate)"},
		supplementNames(plan.Beneficial))

	// la whey n'est pas poussée pour la santé générale
	health := RecommendSupplements("general_health", "", model.BudgetHigh)
	assert.NotContains(t, supplementNames(health.Beneficial), "Whey Proteine")
	assert.Contains(t, supplementNames(health.Beneficial), "Magnesium (bisglycinate)")
}

func TestRecommendSupplementsNoDuplicateUniversals(t *testing.T) {
	// cutting contient déjà la whey : le complément universel ne doit pas
	// la dupliquer
	plan := RecommendSupplements("cutting", "", model.BudgetHigh)
	count := 0
	for _, s := range plan.Beneficial {
		if s.Name == "Whey Proteine" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRecommendSupplementsCrossfit(t *testing.T) {
	plan := RecommendSupplements("performance_crossfit", "", model.BudgetHigh)

	names := supplementNames(plan.Beneficial)
	assert.Contains(t, names, "Creatine monohydrate")
	assert.Contains(t, names, "Beta-Alanine")
	assert.Equal(t, "Creatine monohydrate", names[0])
}
