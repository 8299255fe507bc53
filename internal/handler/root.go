package handler

import (
	"net/http"

	"github.com/MassBabyGeek/NutriPlan-backend/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "NutriPlan API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"auth": []map[string]string{
				{"method": "POST", "path": "/auth/login", "description": "Connexion coach"},
				{"method": "POST", "path": "/auth/logout", "description": "Déconnexion coach"},
				{"method": "POST", "path": "/auth/register", "description": "Inscription coach"},
			},
			"members": []map[string]string{
				{"method": "GET", "path": "/members", "description": "Récupérer tous les membres"},
				{"method": "GET", "path": "/members/{id}", "description": "Récupérer un membre par ID"},
				{"method": "POST", "path": "/members", "description": "Créer un membre"},
				{"method": "PUT", "path": "/members/{id}", "description": "Mettre à jour un membre"},
				{"method": "DELETE", "path": "/members/{id}", "description": "Supprimer un membre (soft delete)"},
				{"method": "POST", "path": "/members/{id}/measurements", "description": "Enregistrer un relevé corporel"},
				{"method": "GET", "path": "/members/{id}/measurements", "description": "Historique des relevés"},
				{"method": "GET", "path": "/members/{id}/trends", "description": "Analyse de tendances (poids, masse grasse)"},
			},
			"plans": []map[string]string{
				{"method": "POST", "path": "/members/{id}/plans", "description": "Générer et archiver un plan nutritionnel complet"},
				{"method": "GET", "path": "/members/{id}/plans", "description": "Plans archivés d'un membre"},
				{"method": "GET", "path": "/plans/{id}", "description": "Récupérer un plan archivé par ID"},
				{"method": "DELETE", "path": "/plans/{id}", "description": "Supprimer un plan archivé (admin)"},
			},
			"calculator": []map[string]string{
				{"method": "GET", "path": "/calculator/objectives", "description": "Objectifs nutritionnels disponibles"},
				{"method": "POST", "path": "/calculator/macros", "description": "BMR, TDEE et macros pour un profil"},
				{"method": "POST", "path": "/calculator/body-composition", "description": "Analyse de composition corporelle"},
				{"method": "POST", "path": "/calculator/morphotype", "description": "Classification morphotype"},
				{"method": "POST", "path": "/calculator/cycling", "description": "Cyclage calorique hebdomadaire"},
				{"method": "POST", "path": "/calculator/refeed", "description": "Journée de recharge glucidique"},
				{"method": "POST", "path": "/calculator/meals", "description": "Répartition des macros par repas"},
				{"method": "POST", "path": "/calculator/hydration", "description": "Hydratation et électrolytes"},
				{"method": "POST", "path": "/calculator/micronutrients", "description": "Apports recommandés en micronutriments"},
				{"method": "POST", "path": "/calculator/supplements", "description": "Recommandations de suppléments"},
				{"method": "POST", "path": "/calculator/plan", "description": "Simulation de plan complet sur un profil ad hoc"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check de l'API"},
			},
		},
		"documentation": map[string]string{
			"description": "API REST pour NutriPlan - Plans nutritionnels pour salles de sport",
			"contact":     "support@nutriplan.fr",
		},
	}

	utils.Success(w, routes)
}
