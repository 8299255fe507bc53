package model

import (
	"encoding/json"
	"time"
)

// PlanRecord est un plan nutritionnel généré puis archivé en base. Le
// payload est le CompletePlan sérialisé, consommé tel quel par le
// générateur de PDF.
type PlanRecord struct {
	ID        string          `json:"id"`
	MemberID  string          `json:"memberId"`
	Objective string          `json:"objective"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
	CreatedBy *string         `json:"createdBy,omitempty"`
}

// PlanRequest est le corps de la requête de génération de plan
type PlanRequest struct {
	Objective   string              `json:"objective"`
	Training    *WeeklyTrainingPlan `json:"training,omitempty"`
	Preferences Preferences         `json:"preferences"`
}
