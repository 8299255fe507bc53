package api

import (
	"net/http"

	"github.com/MassBabyGeek/NutriPlan-backend/internal/handler"
	"github.com/MassBabyGeek/NutriPlan-backend/internal/logger"
	"github.com/MassBabyGeek/NutriPlan-backend/internal/middleware"
	"github.com/gorilla/mux"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)

	// Members
	r.HandleFunc("/members", handler.GetMembers).Methods(http.MethodGet)
	r.HandleFunc("/members/{id}", handler.GetMember).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/members", handler.CreateMember).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/members/{id}", handler.UpdateMember).Methods(http.MethodPut, http.MethodPatch)
	authenticatedRoutes.HandleFunc("/members/{id}", handler.DeleteMember).Methods(http.MethodDelete)

	// Measurements & trends
	authenticatedRoutes.HandleFunc("/members/{id}/measurements", handler.AddMeasurement).Methods(http.MethodPost)
	r.HandleFunc("/members/{id}/measurements", handler.GetMeasurements).Methods(http.MethodGet)
	r.HandleFunc("/members/{id}/trends", handler.GetMemberTrends).Methods(http.MethodGet)

	// Nutrition plans
	authenticatedRoutes.HandleFunc("/members/{id}/plans", handler.GeneratePlan).Methods(http.MethodPost)
	r.HandleFunc("/members/{id}/plans", handler.GetMemberPlans).Methods(http.MethodGet)
	r.HandleFunc("/plans/{id}", handler.GetPlan).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/plans/{id}", handler.DeletePlan).Methods(http.MethodDelete)

	// Calculator (sans état, pour les simulations du portail)
	r.HandleFunc("/calculator/objectives", handler.GetObjectives).Methods(http.MethodGet)
	r.HandleFunc("/calculator/macros", handler.CalculateMacros).Methods(http.MethodPost)
	r.HandleFunc("/calculator/body-composition", handler.CalculateBodyComposition).Methods(http.MethodPost)
	r.HandleFunc("/calculator/morphotype", handler.ClassifyMorphotype).Methods(http.MethodPost)
	r.HandleFunc("/calculator/cycling", handler.PlanCycling).Methods(http.MethodPost)
	r.HandleFunc("/calculator/refeed", handler.CalculateRefeed).Methods(http.MethodPost)
	r.HandleFunc("/calculator/meals", handler.DistributeMeals).Methods(http.MethodPost)
	r.HandleFunc("/calculator/hydration", handler.CalculateHydration).Methods(http.MethodPost)
	r.HandleFunc("/calculator/micronutrients", handler.CalculateMicronutrients).Methods(http.MethodPost)
	r.HandleFunc("/calculator/supplements", handler.RecommendSupplements).Methods(http.MethodPost)
	r.HandleFunc("/calculator/plan", handler.PreviewPlan).Methods(http.MethodPost)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Warning("404 Not Found: %s %s", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
