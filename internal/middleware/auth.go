package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MassBabyGeek/NutriPlan-backend/internal/database"
	"github.com/MassBabyGeek/NutriPlan-backend/internal/logger"
	model "github.com/MassBabyGeek/NutriPlan-backend/internal/models"
	"github.com/MassBabyGeek/NutriPlan-backend/internal/utils"
	"github.com/jackc/pgx/v5"
)

// Context keys
type contextKey string

const (
	coachContextKey = contextKey("coach")
	tokenContextKey = contextKey("token")
)

// AuthMiddleware valide le token de session et injecte le coach dans le contexte
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			utils.Error(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		coach, err := validateTokenAndGetCoach(r.Context(), token)
		if err != nil {
			utils.Error(w, http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
			return
		}

		logger.Debug("coach authentifié: %s (ID: %s)", coach.Name, coach.ID)

		ctx := context.WithValue(r.Context(), coachContextKey, *coach)
		ctx = context.WithValue(ctx, tokenContextKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// validateTokenAndGetCoach valide le token et retourne le coach associé
func validateTokenAndGetCoach(ctx context.Context, token string) (*model.CoachAccount, error) {
	var coach model.CoachAccount
	var isActive bool

	query := `
	SELECT
		c.id, c.name, c.email, c.is_admin,
		c.join_date, c.created_at, c.updated_at,
		s.is_active
	FROM coaches c
	JOIN sessions s ON c.id = s.coach_id
	WHERE s.token = $1
		AND s.is_active = true
		AND s.expires_at > NOW()
		AND c.deleted_at IS NULL
		AND s.deleted_at IS NULL`

	err := database.DB.QueryRow(ctx, query, token).Scan(
		&coach.ID, &coach.Name, &coach.Email, &coach.IsAdmin,
		&coach.JoinDate, &coach.CreatedAt, &coach.UpdatedAt,
		&isActive,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("token not found or expired")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &coach, nil
}

// GetCoachFromContext récupère le coach depuis le contexte de la requête
func GetCoachFromContext(r *http.Request) (model.CoachAccount, error) {
	coach, ok := r.Context().Value(coachContextKey).(model.CoachAccount)
	if !ok {
		return model.CoachAccount{}, fmt.Errorf("coach not found in context")
	}
	return coach, nil
}

// GetTokenFromContext récupère le token depuis le contexte de la requête
func GetTokenFromContext(r *http.Request) (string, error) {
	token, ok := r.Context().Value(tokenContextKey).(string)
	if !ok || token == "" {
		return "", fmt.Errorf("token not found in context")
	}
	return token, nil
}

// RequireAdmin vérifie que le coach du contexte a les droits admin
func RequireAdmin(r *http.Request) (model.CoachAccount, error) {
	coach, err := GetCoachFromContext(r)
	if err != nil {
		return model.CoachAccount{}, err
	}
	if !coach.IsAdmin {
		return model.CoachAccount{}, fmt.Errorf("admin rights required")
	}
	return coach, nil
}
