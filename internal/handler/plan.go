package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MassBabyGeek/NutriPlan-backend/internal/database"
	"github.com/MassBabyGeek/NutriPlan-backend/internal/logger"
	"github.com/MassBabyGeek/NutriPlan-backend/internal/middleware"
	model "github.com/MassBabyGeek/NutriPlan-backend/internal/models"
	"github.com/MassBabyGeek/NutriPlan-backend/internal/nutrition"
	"github.com/MassBabyGeek/NutriPlan-backend/internal/scanner"
	"github.com/MassBabyGeek/NutriPlan-backend/internal/services"
	"github.com/MassBabyGeek/NutriPlan-backend/internal/utils"
	"github.com/gorilla/mux"
)

var planCache = services.NewPlanCache()

// GeneratePlan génère un plan nutritionnel complet pour un membre et
// l'archive en base. Les requêtes identiques sur un profil inchangé
// sont servies depuis le cache.
func GeneratePlan(w http.ResponseWriter, r *http.Request) {
	memberID := mux.Vars(r)["id"]

	var req model.PlanRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	coach, err := middleware.GetCoachFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx := context.Background()
	member, err := loadMember(ctx, memberID)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "member not found")
		return
	}

	key := planCache.Key(member, &req)
	plan, cached := planCache.Get(key)
	if !cached {
		plan, err = nutrition.GenerateCompletePlan(*member, req.Objective, req.Training, req.Preferences)
		if err != nil {
			nutritionError(w, err)
			return
		}
		planCache.Set(key, plan)
	} else {
		logger.Debug("plan servi depuis le cache pour le membre %s", memberID)
	}

	payload, err := json.Marshal(plan)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not serialize plan")
		return
	}

	row := database.DB.QueryRow(ctx,
		`INSERT INTO nutrition_plans(member_id,objective,payload,created_at,created_by)
		 VALUES($1,$2,$3,NOW(),$4)
		 RETURNING id, member_id, objective, payload, created_at, created_by`,
		memberID, plan.Objective.Key, payload, coach.ID,
	)

	record, err := scanner.ScanPlanRecord(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not archive plan: "+err.Error())
		return
	}

	utils.Success(w, record)
}

// GetMemberPlans liste les plans archivés d'un membre, du plus récent
// au plus ancien
func GetMemberPlans(w http.ResponseWriter, r *http.Request) {
	memberID := mux.Vars(r)["id"]

	ctx := context.Background()
	rows, err := database.DB.Query(ctx,
		`SELECT id, member_id, objective, payload, created_at, created_by
		 FROM nutrition_plans WHERE member_id=$1 ORDER BY created_at DESC`,
		memberID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query plans: "+err.Error())
		return
	}
	defer rows.Close()

	plans := []model.PlanRecord{}
	for rows.Next() {
		p, err := scanner.ScanPlanRecord(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan plan: "+err.Error())
			return
		}
		plans = append(plans, *p)
	}

	utils.Success(w, plans)
}

func GetPlan(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx := context.Background()
	row := database.DB.QueryRow(ctx,
		`SELECT id, member_id, objective, payload, created_at, created_by
		 FROM nutrition_plans WHERE id=$1`, id)

	record, err := scanner.ScanPlanRecord(row)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "plan not found")
		return
	}

	utils.Success(w, record)
}

// DeletePlan supprime un plan archivé. Réservé aux admins : un plan
// archivé a pu être remis au membre, sa suppression est définitive.
func DeletePlan(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	coach, err := middleware.RequireAdmin(r)
	if err != nil {
		utils.Error(w, http.StatusForbidden, "admin rights required")
		return
	}

	res, err := database.DB.Exec(context.Background(),
		`DELETE FROM nutrition_plans WHERE id=$1`, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not delete plan: "+err.Error())
		return
	}
	if res.RowsAffected() == 0 {
		utils.Error(w, http.StatusNotFound, "plan not found")
		return
	}

	logger.Info("plan %s supprimé par %s", id, coach.Name)
	utils.Message(w, "plan deleted")
}

// nutritionError mappe les erreurs du moteur vers un status HTTP :
// objectif inconnu -> 400, données biométriques manquantes -> 422
func nutritionError(w http.ResponseWriter, err error) {
	var missing *nutrition.MissingDataError
	switch {
	case errors.Is(err, nutrition.ErrUnknownObjective):
		utils.Error(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &missing):
		utils.Error(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.Error(w, http.StatusInternalServerError, err.Error())
	}
}
