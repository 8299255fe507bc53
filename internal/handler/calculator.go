package handler

import (
	"net/http"

	model "github.com/MassBabyGeek/NutriPlan-backend/internal/models"
	"github.com/MassBabyGeek/NutriPlan-backend/internal/nutrition"
	"github.com/MassBabyGeek/NutriPlan-backend/internal/utils"
)

// Les endpoints calculateur sont sans état : ils exposent le moteur
// nutritionnel sur des profils ad hoc, sans toucher à la base. Le portail
// les utilise pour les simulations avant création de la fiche membre.

type macroCalcRequest struct {
	Member        model.MemberProfile       `json:"member"`
	Objective     string                    `json:"objective"`
	ActivityLevel model.ActivityLevel       `json:"activityLevel,omitempty"`
	Training      *model.WeeklyTrainingPlan `json:"training,omitempty"`
}

type bodyCompRequest struct {
	Member model.MemberProfile `json:"member"`
}

type morphotypeRequest struct {
	Member  model.MemberProfile      `json:"member"`
	Answers *model.MorphotypeAnswers `json:"answers,omitempty"`
}

type cyclingRequest struct {
	TDEE     int                       `json:"tdee"`
	Training *model.WeeklyTrainingPlan `json:"training,omitempty"`
}

type refeedRequest struct {
	TDEE    int `json:"tdee"`
	Deficit int `json:"deficit"`
}

type mealsRequest struct {
	Macros       nutrition.MacroSet `json:"macros"`
	MealsPerDay  int                `json:"mealsPerDay"`
	TrainingTime string             `json:"trainingTime,omitempty"`
}

type hydrationRequest struct {
	Weight         float64             `json:"weight"`
	ActivityLevel  model.ActivityLevel `json:"activityLevel,omitempty"`
	Climate        model.Climate       `json:"climate,omitempty"`
	SessionMinutes int                 `json:"sessionMinutes"`
	Intensity      nutrition.Intensity `json:"intensity,omitempty"`
}

type micronutrientsRequest struct {
	Member        model.MemberProfile `json:"member"`
	Objective     string              `json:"objective"`
	ActivityLevel model.ActivityLevel `json:"activityLevel,omitempty"`
}

type supplementsRequest struct {
	Objective string           `json:"objective"`
	Diet      string           `json:"diet,omitempty"`
	Budget    model.BudgetTier `json:"budget,omitempty"`
}

type planPreviewRequest struct {
	Member      model.MemberProfile       `json:"member"`
	Objective   string                    `json:"objective"`
	Training    *model.WeeklyTrainingPlan `json:"training,omitempty"`
	Preferences model.Preferences         `json:"preferences"`
}

// GetObjectives liste les objectifs disponibles avec leur politique
func GetObjectives(w http.ResponseWriter, r *http.Request) {
	policies := []nutrition.ObjectivePolicy{}
	for _, key := range nutrition.ObjectiveKeys() {
		policy, err := nutrition.LookupObjective(key)
		if err != nil {
			continue
		}
		policies = append(policies, policy)
	}
	utils.Success(w, policies)
}

// CalculateMacros calcule BMR, TDEE et macros pour un profil ad hoc
func CalculateMacros(w http.ResponseWriter, r *http.Request) {
	var req macroCalcRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	plan, err := nutrition.CalculateMacros(req.Member, req.Objective, req.ActivityLevel, req.Training)
	if err != nil {
		nutritionError(w, err)
		return
	}

	utils.Success(w, plan)
}

// CalculateBodyComposition analyse la composition corporelle d'un profil
func CalculateBodyComposition(w http.ResponseWriter, r *http.Request) {
	var req bodyCompRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	comp, err := nutrition.CalculateBodyComposition(req.Member)
	if err != nil {
		nutritionError(w, err)
		return
	}

	utils.Success(w, comp)
}

// ClassifyMorphotype classifie le morphotype d'un profil
func ClassifyMorphotype(w http.ResponseWriter, r *http.Request) {
	var req morphotypeRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := nutrition.ClassifyMorphotype(req.Member, req.Answers)
	if err != nil {
		nutritionError(w, err)
		return
	}

	utils.Success(w, result)
}

// PlanCycling construit le cyclage calorique hebdomadaire autour d'un TDEE
func PlanCycling(w http.ResponseWriter, r *http.Request) {
	var req cyclingRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.TDEE <= 0 {
		utils.Error(w, http.StatusBadRequest, "tdee must be positive")
		return
	}

	utils.Success(w, nutrition.PlanCalorieCycling(req.TDEE, req.Training))
}

// CalculateRefeed calcule la journée de recharge glucidique
func CalculateRefeed(w http.ResponseWriter, r *http.Request) {
	var req refeedRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.TDEE <= 0 {
		utils.Error(w, http.StatusBadRequest, "tdee must be positive")
		return
	}

	utils.Success(w, nutrition.CalculateRefeed(req.TDEE, req.Deficit))
}

// DistributeMeals répartit un total de macros sur les repas de la journée
func DistributeMeals(w http.ResponseWriter, r *http.Request) {
	var req mealsRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	utils.Success(w, nutrition.DistributeMacrosOverDay(req.Macros, req.MealsPerDay, req.TrainingTime))
}

// CalculateHydration calcule hydratation et électrolytes pour un profil
func CalculateHydration(w http.ResponseWriter, r *http.Request) {
	var req hydrationRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Weight <= 0 {
		utils.Error(w, http.StatusBadRequest, "weight must be positive")
		return
	}

	intensity := req.Intensity
	if intensity == "" {
		intensity = nutrition.IntensityModerate
	}

	utils.Success(w, map[string]interface{}{
		"hydration":    nutrition.CalculateHydration(req.Weight, req.ActivityLevel, req.Climate, req.SessionMinutes),
		"electrolytes": nutrition.CalculateElectrolytes(req.SessionMinutes, intensity, req.Climate),
	})
}

// CalculateMicronutrients calcule les apports recommandés en micronutriments
func CalculateMicronutrients(w http.ResponseWriter, r *http.Request) {
	var req micronutrientsRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	micros, err := nutrition.CalculateMicronutrients(req.Member, req.Objective, req.ActivityLevel)
	if err != nil {
		nutritionError(w, err)
		return
	}

	utils.Success(w, micros)
}

// PreviewPlan génère un plan complet sur un profil ad hoc, sans le
// rattacher à une fiche membre ni l'archiver. Utilisé par le portail pour
// la simulation avant inscription.
func PreviewPlan(w http.ResponseWriter, r *http.Request) {
	var req planPreviewRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	plan, err := nutrition.GenerateCompletePlan(req.Member, req.Objective, req.Training, req.Preferences)
	if err != nil {
		nutritionError(w, err)
		return
	}

	utils.Success(w, plan)
}

// RecommendSupplements recommande des suppléments selon objectif, régime
// et budget
func RecommendSupplements(w http.ResponseWriter, r *http.Request) {
	var req supplementsRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if _, err := nutrition.LookupObjective(req.Objective); err != nil {
		nutritionError(w, err)
		return
	}

	utils.Success(w, nutrition.RecommendSupplements(req.Objective, req.Diet, req.Budget))
}
