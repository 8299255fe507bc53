package model

import (
	"time"
)

// Gender du membre, utilisé par les formules métaboliques
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// DateFields contient les champs d'audit standard pour toutes les entités
type DateFields struct {
	CreatedBy *string   `json:"createdBy,omitempty"`
	UpdatedBy *string   `json:"updatedBy,omitempty"`
	DeletedAt time.Time `json:"deletedAt,omitempty"`
	DeletedBy *string   `json:"deletedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// MemberProfile est l'instantané biométrique d'un membre de la salle.
// C'est l'entrée immuable de tous les calculs nutritionnels : le moteur
// ne modifie jamais ces champs.
type MemberProfile struct {
	ID                  string     `json:"id,omitempty"`
	Name                string     `json:"name"`
	Email               string     `json:"email,omitempty"`
	Birthdate           time.Time  `json:"birthdate"`
	Gender              Gender     `json:"gender"`
	Weight              float64    `json:"weight"` // kg
	Height              float64    `json:"height"` // cm
	BodyFatPercentage   *float64   `json:"bodyFatPercentage,omitempty"`
	MuscleMassKg        *float64   `json:"muscleMassKg,omitempty"`
	DietaryRestrictions []string   `json:"dietaryRestrictions,omitempty"`
	JoinDate            time.Time  `json:"joinDate,omitempty"`
	DateFields
}

// Measurement est un relevé corporel historisé d'un membre, utilisé pour
// l'analyse de tendances.
type Measurement struct {
	ID                string    `json:"id"`
	MemberID          string    `json:"memberId"`
	WeightKg          float64   `json:"weightKg"`
	BodyFatPercentage *float64  `json:"bodyFatPercentage,omitempty"`
	MuscleMassKg      *float64  `json:"muscleMassKg,omitempty"`
	MeasuredAt        time.Time `json:"measuredAt"`
	CreatedAt         time.Time `json:"createdAt,omitempty"`
}
