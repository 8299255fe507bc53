package nutrition

import (
	"fmt"
	"sort"
	"strings"
)

// ObjectivePolicy est la politique nutritionnelle d'un objectif : décalage
// calorique par rapport au TDEE, protéines en g/kg de poids de corps, et
// parts caloriques cibles pour glucides et lipides.
type ObjectivePolicy struct {
	Key               string  `json:"key"`
	Name              string  `json:"name"`
	CalorieDelta      int     `json:"calorieDelta"` // kcal/jour, signé
	ProteinMultiplier float64 `json:"proteinMultiplier"`
	CarbsRatio        float64 `json:"carbsRatio"`
	FatsRatio         float64 `json:"fatsRatio"`
}

// IsDeficit indique si l'objectif implique un déficit calorique (et donc
// un jour de refeed hebdomadaire dans le plan complet)
func (p ObjectivePolicy) IsDeficit() bool {
	return p.CalorieDelta < 0
}

// Table des objectifs. Constante au démarrage du process, jamais modifiée.
var objectivePolicies = map[string]ObjectivePolicy{
	"weight_loss": {
		Key:               "weight_loss",
		Name:              "Perte de poids",
		CalorieDelta:      -500,
		ProteinMultiplier: 2.2,
		CarbsRatio:        0.30,
		FatsRatio:         0.25,
	},
	"mass_gain": {
		Key:               "mass_gain",
		Name:              "Prise de masse",
		CalorieDelta:      300,
		ProteinMultiplier: 2.0,
		CarbsRatio:        0.45,
		FatsRatio:         0.25,
	},
	"maintenance": {
		Key:               "maintenance",
		Name:              "Maintien",
		CalorieDelta:      0,
		ProteinMultiplier: 1.8,
		CarbsRatio:        0.40,
		FatsRatio:         0.30,
	},
	"cutting": {
		Key:               "cutting",
		Name:              "Sèche",
		CalorieDelta:      -700,
		ProteinMultiplier: 2.5,
		CarbsRatio:        0.25,
		FatsRatio:         0.25,
	},
	"performance_endurance": {
		Key:               "performance_endurance",
		Name:              "Performance - Endurance",
		CalorieDelta:      200,
		ProteinMultiplier: 1.6,
		CarbsRatio:        0.55,
		FatsRatio:         0.20,
	},
	"performance_strength": {
		Key:               "performance_strength",
		Name:              "Performance - Force",
		CalorieDelta:      200,
		ProteinMultiplier: 2.2,
		CarbsRatio:        0.40,
		FatsRatio:         0.25,
	},
	"performance_crossfit": {
		Key:               "performance_crossfit",
		Name:              "Performance - CrossFit",
		CalorieDelta:      100,
		ProteinMultiplier: 2.0,
		CarbsRatio:        0.45,
		FatsRatio:         0.25,
	},
	"performance_ultra": {
		Key:               "performance_ultra",
		Name:              "Performance - Ultra",
		CalorieDelta:      300,
		ProteinMultiplier: 1.8,
		CarbsRatio:        0.60,
		FatsRatio:         0.20,
	},
	"general_health": {
		Key:               "general_health",
		Name:              "Santé générale",
		CalorieDelta:      0,
		ProteinMultiplier: 1.6,
		CarbsRatio:        0.40,
		FatsRatio:         0.30,
	},
}

// Alias historiques de l'interface (clés françaises de l'ancien portail)
var objectiveAliases = map[string]string{
	"perte_poids":       "weight_loss",
	"prise_masse":       "mass_gain",
	"maintien":          "maintenance",
	"seche":             "cutting",
	"performance_force": "performance_strength",
	"sante_generale":    "general_health",
}

// LookupObjective résout une clé d'objectif (canonique ou alias) vers sa
// politique. Clé inconnue = erreur dure, jamais de valeur par défaut.
func LookupObjective(key string) (ObjectivePolicy, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	if canonical, ok := objectiveAliases[k]; ok {
		k = canonical
	}
	policy, ok := objectivePolicies[k]
	if !ok {
		return ObjectivePolicy{}, fmt.Errorf("%w: %q", ErrUnknownObjective, key)
	}
	return policy, nil
}

// ObjectiveKeys liste les clés canoniques disponibles (pour l'API)
func ObjectiveKeys() []string {
	keys := make([]string, 0, len(objectivePolicies))
	for k := range objectivePolicies {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
