package nutrition

import (
	"time"

	model "github.com/MassBabyGeek/NutriPlan-backend/internal/models"
)

// Date de référence fixe pour tous les tests : les calculs dépendant de
// l'âge doivent être reproductibles.
var testNow = time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

func testMember() model.MemberProfile {
	return model.MemberProfile{
		Name:      "Julien Moreau",
		Birthdate: time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC),
		Gender:    model.GenderMale,
		Weight:    80,
		Height:    180,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
