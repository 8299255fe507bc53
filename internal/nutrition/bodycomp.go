package nutrition

import (
	"math"
	"time"

	model "github.com/MassBabyGeek/NutriPlan-backend/internal/models"
)

// BMREstimates confronte les deux formules de métabolisme de base :
// Mifflin-St Jeor (poids total) et Katch-McArdle (masse maigre)
type BMREstimates struct {
	Mifflin      int `json:"mifflin"`
	KatchMcArdle int `json:"katchMcArdle"`
}

// FFMICategory est la classification du développement musculaire
type FFMICategory struct {
	Level string `json:"level"`
	Label string `json:"label"`
}

// HealthAssessment signale les extrêmes de masse grasse et les associe à
// des recommandations qualitatives. Status "good" uniquement sans warning.
type HealthAssessment struct {
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
	OverallStatus   string   `json:"overallStatus"`
}

// BodyComposition est l'analyse corporelle complète d'un membre
type BodyComposition struct {
	Weight          float64          `json:"weight"`
	BodyFat         float64          `json:"bodyFat"`
	FatMass         float64          `json:"fatMass"`
	LeanMass        float64          `json:"leanMass"`
	MuscleMass      float64          `json:"muscleMass"`
	BoneMass        float64          `json:"boneMass"`
	WaterMass       float64          `json:"waterMass"`
	WaterPercentage float64          `json:"waterPercentage"`
	BMR             BMREstimates     `json:"bmr"`
	FFMI            float64          `json:"ffmi"`
	FFMICategory    FFMICategory     `json:"ffmiCategory"`
	HealthStatus    HealthAssessment `json:"healthStatus"`
}

type ffmiThreshold struct {
	max   float64
	level string
	label string
}

// Seuils FFMI ascendants, le premier seuil atteint gagne
var ffmiThresholdsMale = []ffmiThreshold{
	{18, "beginner", "Débutant"},
	{20, "intermediate", "Intermédiaire"},
	{22, "advanced", "Avancé"},
	{25, "elite", "Élite naturel"},
	{math.MaxFloat64, "exceptional", "Exceptionnel"},
}

var ffmiThresholdsFemale = []ffmiThreshold{
	{15, "beginner", "Débutant"},
	{17, "intermediate", "Intermédiaire"},
	{19, "advanced", "Avancé"},
	{21, "elite", "Élite naturel"},
	{math.MaxFloat64, "exceptional", "Exceptionnel"},
}

// CalculateBodyComposition analyse la composition corporelle à l'instant
// courant
func CalculateBodyComposition(member model.MemberProfile) (*BodyComposition, error) {
	return CalculateBodyCompositionAt(member, time.Now())
}

// CalculateBodyCompositionAt dérive masses grasse/maigre/musculaire/
// osseuse/hydrique, BMR alternatif et FFMI depuis la fiche du membre. Le
// taux de masse grasse fourni est utilisé tel quel, sinon il est estimé
// (Deurenberg).
func CalculateBodyCompositionAt(member model.MemberProfile, now time.Time) (*BodyComposition, error) {
	if member.Weight <= 0 {
		return nil, missingData("weight")
	}
	if member.Height <= 0 {
		return nil, missingData("height")
	}
	if member.Birthdate.IsZero() {
		return nil, missingData("birthdate")
	}

	age := AgeAt(member.Birthdate, now)
	weight := member.Weight
	height := member.Height

	bodyFat := EstimateBodyFatAt(member, now)
	if member.BodyFatPercentage != nil && *member.BodyFatPercentage > 0 {
		bodyFat = *member.BodyFatPercentage
	}

	fatMass := weight * bodyFat / 100
	leanMass := weight - fatMass

	muscleMass := estimateMuscleMass(leanMass, member.Gender)
	if member.MuscleMassKg != nil && *member.MuscleMassKg > 0 {
		muscleMass = *member.MuscleMassKg
	}

	boneMass := estimateBoneMass(weight, height, member.Gender)

	// Eau corporelle : base 60% (homme) / 55% (femme), réduite par la
	// masse grasse
	waterBase := 60.0
	if member.Gender == model.GenderFemale {
		waterBase = 55.0
	}
	waterPercentage := waterBase - 0.3*bodyFat
	waterMass := weight * waterPercentage / 100

	mifflin, err := CalculateBMR(weight, height, age, member.Gender)
	if err != nil {
		return nil, err
	}
	katch := round(370 + 21.6*leanMass)

	ffmi := calculateFFMI(leanMass, height)

	return &BodyComposition{
		Weight:          round1(weight),
		BodyFat:         round1(bodyFat),
		FatMass:         round1(fatMass),
		LeanMass:        round1(leanMass),
		MuscleMass:      round1(muscleMass),
		BoneMass:        round1(boneMass),
		WaterMass:       round1(waterMass),
		WaterPercentage: round1(waterPercentage),
		BMR:             BMREstimates{Mifflin: mifflin, KatchMcArdle: katch},
		FFMI:            round1(ffmi),
		FFMICategory:    getFFMICategory(ffmi, member.Gender),
		HealthStatus:    assessHealthStatus(bodyFat, ffmi, member.Gender),
	}, nil
}

// EstimateBodyFatAt estime le taux de masse grasse via la formule de
// Deurenberg (1.20×IMC + 0.23×âge − 16.2, +5.4 pour les femmes), borné aux
// valeurs physiologiquement plausibles [5, 50]
func EstimateBodyFatAt(member model.MemberProfile, now time.Time) float64 {
	age := AgeAt(member.Birthdate, now)
	heightM := member.Height / 100
	bmi := member.Weight / (heightM * heightM)

	estimated := 1.20*bmi + 0.23*float64(age) - 16.2
	if member.Gender == model.GenderFemale {
		estimated += 5.4
	}

	return math.Max(5, math.Min(50, round1(estimated)))
}

// La masse maigre inclut muscles, os, organes et eau ; la part musculaire
// est d'environ 42% (homme) / 36% (femme)
func estimateMuscleMass(leanMass float64, gender model.Gender) float64 {
	ratio := 0.42
	if gender == model.GenderFemale {
		ratio = 0.36
	}
	return leanMass * ratio
}

// Formules empiriques de masse osseuse
func estimateBoneMass(weight, height float64, gender model.Gender) float64 {
	if gender == model.GenderFemale {
		return 0.12*weight + 0.01*height - 4.5
	}
	return 0.15*weight + 0.01*height - 5.5
}

// FFMI = masse maigre / taille², normalisé pour 1.80m
func calculateFFMI(leanMass, height float64) float64 {
	heightM := height / 100
	ffmi := leanMass / (heightM * heightM)
	return ffmi + 6.1*(1.8-heightM)
}

func getFFMICategory(ffmi float64, gender model.Gender) FFMICategory {
	thresholds := ffmiThresholdsMale
	if gender == model.GenderFemale {
		thresholds = ffmiThresholdsFemale
	}
	for _, t := range thresholds {
		if ffmi <= t.max {
			return FFMICategory{Level: t.level, Label: t.label}
		}
	}
	last := thresholds[len(thresholds)-1]
	return FFMICategory{Level: last.level, Label: last.label}
}

func assessHealthStatus(bodyFat, ffmi float64, gender model.Gender) HealthAssessment {
	warnings := []string{}
	recommendations := []string{}

	if gender == model.GenderFemale {
		switch {
		case bodyFat < 12:
			warnings = append(warnings, "Masse grasse très basse - Risque hormonal et menstruel")
			recommendations = append(recommendations, "Augmenter les lipides et calories")
		case bodyFat < 18:
			recommendations = append(recommendations, "Masse grasse optimale pour la performance")
		case bodyFat > 32:
			warnings = append(warnings, "Masse grasse élevée - Risque métabolique")
			recommendations = append(recommendations, "Déficit calorique progressif recommandé")
		}
	} else {
		switch {
		case bodyFat < 6:
			warnings = append(warnings, "Masse grasse très basse - Risque hormonal")
			recommendations = append(recommendations, "Augmenter légèrement les lipides")
		case bodyFat < 10:
			recommendations = append(recommendations, "Masse grasse optimale pour la performance")
		case bodyFat > 25:
			warnings = append(warnings, "Masse grasse élevée - Risque métabolique")
			recommendations = append(recommendations, "Déficit calorique progressif recommandé")
		}
	}

	switch getFFMICategory(ffmi, gender).Level {
	case "beginner":
		recommendations = append(recommendations,
			"Potentiel important de développement musculaire",
			"Surplus calorique et progression linéaire conseillés")
	case "elite", "exceptional":
		recommendations = append(recommendations,
			"Niveau musculaire avancé atteint",
			"Progression plus lente attendue - Patience requise")
	}

	status := "good"
	if len(warnings) > 0 {
		status = "attention"
	}

	return HealthAssessment{
		Warnings:        warnings,
		Recommendations: recommendations,
		OverallStatus:   status,
	}
}
