package model

// TrainingCategory est le type d'une séance planifiée. Les catégories
// inconnues ne sont pas des erreurs : les calculs retombent sur un coût
// énergétique par défaut.
type TrainingCategory string

const (
	CategoryStrength  TrainingCategory = "strength"
	CategoryCardio    TrainingCategory = "cardio"
	CategoryHIIT      TrainingCategory = "hiit"
	CategoryEndurance TrainingCategory = "endurance"
	CategoryCrossfit  TrainingCategory = "crossfit"
	CategoryGymnastic TrainingCategory = "gymnastic"
	CategoryRecovery  TrainingCategory = "recovery"
	CategoryMobility  TrainingCategory = "mobility"
	CategoryTeamSport TrainingCategory = "team_sport"
)

// TrainingSession est une séance planifiée dans la semaine
type TrainingSession struct {
	Category TrainingCategory `json:"category"`
	Duration int              `json:"duration"` // minutes
	Day      string           `json:"day,omitempty"`
}

// WeeklyTrainingPlan est le planning hebdomadaire d'un membre. L'ordre des
// séances n'a pas d'importance pour les calculs, et plusieurs séances le
// même jour sont autorisées.
type WeeklyTrainingPlan struct {
	Sessions []TrainingSession `json:"sessions"`
}

// IsEmpty indique si le planning ne contient aucune séance
func (p *WeeklyTrainingPlan) IsEmpty() bool {
	return p == nil || len(p.Sessions) == 0
}
