package nutrition

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupObjective(t *testing.T) {
	policy, err := LookupObjective("weight_loss")
	require.NoError(t, err)
	assert.Equal(t, -500, policy.CalorieDelta)
	assert.Equal(t, 2.2, policy.ProteinMultiplier)
	assert.True(t, policy.IsDeficit())

	policy, err = LookupObjective("mass_gain")
	require.NoError(t, err)
	assert.Equal(t, 300, policy.CalorieDelta)
	assert.False(t, policy.IsDeficit())
}

func TestLookupObjectiveNormalizesInput(t *testing.T) {
	policy, err := LookupObjective("  Maintenance ")
	require.NoError(t, err)
	assert.Equal(t, "maintenance", policy.Key)
}

func TestLookupObjectiveAliases(t *testing.T) {
	aliases := map[string]string{
		"perte_poids":       "weight_loss",
		"prise_masse":       "mass_gain",
		"maintien":          "maintenance",
		"seche":             "cutting",
		"performance_force": "performance_strength",
		"sante_generale":    "general_health",
	}

	for alias, canonical := range aliases {
		policy, err := LookupObjective(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, canonical, policy.Key, alias)
	}
}

func TestLookupObjectiveUnknown(t *testing.T) {
	_, err := LookupObjective("objectif_lune")
	assert.ErrorIs(t, err, ErrUnknownObjective)

	_, err = LookupObjective("")
	assert.ErrorIs(t, err, ErrUnknownObjective)
}

func TestObjectiveKeys(t *testing.T) {
	keys := ObjectiveKeys()

	assert.Len(t, keys, 9)
	assert.True(t, sort.StringsAreSorted(keys))
	assert.Contains(t, keys, "weight_loss")
	assert.Contains(t, keys, "performance_ultra")
}

func TestObjectiveRatiosPlausible(t *testing.T) {
	for _, key := range ObjectiveKeys() {
		policy, err := LookupObjective(key)
		require.NoError(t, err)

		assert.Greater(t, policy.ProteinMultiplier, 1.0, key)
		assert.Less(t, policy.CarbsRatio+policy.FatsRatio, 1.0, key)
	}
}
