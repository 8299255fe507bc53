package model

// ActivityLevel est le niveau d'activité catégoriel utilisé quand aucun
// planning d'entraînement précis n'est fourni
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Climate influence les besoins hydriques et électrolytiques
type Climate string

const (
	ClimateCold      Climate = "cold"
	ClimateTemperate Climate = "temperate"
	ClimateWarm      Climate = "warm"
	ClimateHot       Climate = "hot"
)

// BudgetTier filtre la liste des suppléments recommandés
type BudgetTier string

const (
	BudgetLow    BudgetTier = "low"
	BudgetMedium BudgetTier = "medium"
	BudgetHigh   BudgetTier = "high"
)

// MorphotypeAnswers sont les réponses optionnelles au questionnaire
// morphotype (auto-évaluation du membre)
type MorphotypeAnswers struct {
	WeightGainDifficulty string `json:"weightGainDifficulty,omitempty"` // very_hard, normal, easy
	MuscleGains          string `json:"muscleGains,omitempty"`          // fast, normal, slow
	FatStorage           string `json:"fatStorage,omitempty"`           // easy, normal, hard
}

// Preferences regroupe les choix du membre pour la génération de plan
type Preferences struct {
	MealsPerDay       int                `json:"mealsPerDay,omitempty"` // 3 à 6, défaut 4
	TrainingTime      string             `json:"trainingTime,omitempty"`
	ActivityLevel     ActivityLevel      `json:"activityLevel,omitempty"`
	Climate           Climate            `json:"climate,omitempty"`
	Budget            BudgetTier         `json:"budget,omitempty"`
	Diet              string             `json:"diet,omitempty"`
	MorphotypeAnswers *MorphotypeAnswers `json:"morphotypeAnswers,omitempty"`
}
