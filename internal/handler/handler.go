package handler

import (
	"net/http"

	"github.com/MassBabyGeek/NutriPlan-backend/internal/utils"
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
