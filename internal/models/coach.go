package model

import (
	"time"
)

// CoachAccount est un compte coach/admin de la salle, utilisé pour
// authentifier les opérations d'écriture (création de membres, plans)
type CoachAccount struct {
	ID       string    `json:"id,omitempty"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	IsAdmin  bool      `json:"isAdmin"`
	JoinDate time.Time `json:"joinDate,omitempty"`
	DateFields
}
