package handler

import (
	"context"
	"net/http"

	"github.com/MassBabyGeek/NutriPlan-backend/internal/database"
	"github.com/MassBabyGeek/NutriPlan-backend/internal/middleware"
	model "github.com/MassBabyGeek/NutriPlan-backend/internal/models"
	"github.com/MassBabyGeek/NutriPlan-backend/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx := context.Background()
	var coach model.CoachAccount
	var hashedPassword string

	err := database.DB.QueryRow(ctx,
		`SELECT id, name, email, is_admin, join_date, created_at, updated_at, password_hash
		 FROM coaches WHERE email=$1 AND deleted_at IS NULL`,
		req.Email,
	).Scan(&coach.ID, &coach.Name, &coach.Email, &coach.IsAdmin,
		&coach.JoinDate, &coach.CreatedAt, &coach.UpdatedAt, &hashedPassword)

	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(req.Password)); err != nil {
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	ip, userAgent := utils.ExtractIPAndUserAgent(r)
	token, err := utils.CreateSession(ctx, coach.ID, ip, userAgent)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session: "+err.Error())
		return
	}

	utils.Success(w, map[string]interface{}{
		"coach": coach,
		"token": token,
	})
}

func Logout(w http.ResponseWriter, r *http.Request) {
	token, err := middleware.GetTokenFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "missing token")
		return
	}

	if err := utils.InvalidateSession(context.Background(), token); err != nil {
		utils.Error(w, http.StatusNotFound, "session not found or already logged out")
		return
	}

	utils.Message(w, "logged out")
}

func Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Name == "" || req.Email == "" || len(req.Password) < 8 {
		utils.Error(w, http.StatusBadRequest, "name, email and a password of 8+ characters are required")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not hash password")
		return
	}

	ctx := context.Background()
	var coach model.CoachAccount
	err = database.DB.QueryRow(ctx,
		`INSERT INTO coaches(name,email,password_hash,is_admin,join_date,created_at,updated_at)
		 VALUES($1,$2,$3,false,NOW(),NOW(),NOW())
		 RETURNING id, name, email, is_admin, join_date, created_at, updated_at`,
		req.Name, req.Email, string(hashed),
	).Scan(&coach.ID, &coach.Name, &coach.Email, &coach.IsAdmin,
		&coach.JoinDate, &coach.CreatedAt, &coach.UpdatedAt)

	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create coach: "+err.Error())
		return
	}

	utils.Success(w, coach)
}
