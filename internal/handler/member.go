package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/MassBabyGeek/NutriPlan-backend/internal/database"
	"github.com/MassBabyGeek/NutriPlan-backend/internal/middleware"
	model "github.com/MassBabyGeek/NutriPlan-backend/internal/models"
	"github.com/MassBabyGeek/NutriPlan-backend/internal/nutrition"
	"github.com/MassBabyGeek/NutriPlan-backend/internal/scanner"
	"github.com/MassBabyGeek/NutriPlan-backend/internal/utils"
	"github.com/gorilla/mux"
	"github.com/lib/pq"
)

const memberColumns = `
	id, name, email, birthdate, gender, weight, height,
	body_fat_percentage, muscle_mass_kg, dietary_restrictions,
	join_date, created_at, updated_at, created_by, updated_by`

func CreateMember(w http.ResponseWriter, r *http.Request) {
	var member model.MemberProfile
	if err := utils.DecodeJSON(r, &member); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if member.Name == "" || member.Birthdate.IsZero() {
		utils.Error(w, http.StatusBadRequest, "name and birthdate are required")
		return
	}

	coach, err := middleware.GetCoachFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx := context.Background()
	row := database.DB.QueryRow(ctx,
		`INSERT INTO members(name,email,birthdate,gender,weight,height,
		 body_fat_percentage,muscle_mass_kg,dietary_restrictions,
		 join_date,created_at,updated_at,created_by)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW(),NOW(),NOW(),$10)
		 RETURNING `+memberColumns,
		member.Name, member.Email, member.Birthdate, member.Gender,
		member.Weight, member.Height,
		member.BodyFatPercentage, member.MuscleMassKg,
		pq.Array(member.DietaryRestrictions), coach.ID,
	)

	created, err := scanner.ScanMemberProfile(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create member: "+err.Error())
		return
	}

	utils.Success(w, created)
}

func GetMembers(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()
	rows, err := database.DB.Query(ctx,
		`SELECT `+memberColumns+` FROM members WHERE deleted_at IS NULL ORDER BY name`)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query members: "+err.Error())
		return
	}
	defer rows.Close()

	members := []model.MemberProfile{}
	for rows.Next() {
		m, err := scanner.ScanMemberProfile(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan member: "+err.Error())
			return
		}
		members = append(members, *m)
	}

	utils.Success(w, members)
}

func GetMember(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	member, err := loadMember(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "member not found")
		return
	}

	utils.Success(w, member)
}

func UpdateMember(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var member model.MemberProfile
	if err := utils.DecodeJSON(r, &member); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	coach, err := middleware.GetCoachFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx := context.Background()
	row := database.DB.QueryRow(ctx,
		`UPDATE members SET name=$1, email=$2, birthdate=$3, gender=$4,
		 weight=$5, height=$6, body_fat_percentage=$7, muscle_mass_kg=$8,
		 dietary_restrictions=$9, updated_at=NOW(), updated_by=$10
		 WHERE id=$11 AND deleted_at IS NULL
		 RETURNING `+memberColumns,
		member.Name, member.Email, member.Birthdate, member.Gender,
		member.Weight, member.Height,
		member.BodyFatPercentage, member.MuscleMassKg,
		pq.Array(member.DietaryRestrictions), coach.ID, id,
	)

	updated, err := scanner.ScanMemberProfile(row)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "member not found or could not be updated")
		return
	}

	utils.Success(w, updated)
}

func DeleteMember(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	coach, err := middleware.GetCoachFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx := context.Background()
	res, err := database.DB.Exec(ctx,
		`UPDATE members SET deleted_at=NOW(), deleted_by=$2
		 WHERE id=$1 AND deleted_at IS NULL`,
		id, coach.ID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not delete member: "+err.Error())
		return
	}
	if res.RowsAffected() == 0 {
		utils.Error(w, http.StatusNotFound, "member not found")
		return
	}

	utils.Message(w, "member deleted")
}

// AddMeasurement enregistre un relevé corporel pour un membre. Le poids
// du profil est synchronisé avec le relevé le plus récent.
func AddMeasurement(w http.ResponseWriter, r *http.Request) {
	memberID := mux.Vars(r)["id"]

	var m model.Measurement
	if err := utils.DecodeJSON(r, &m); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if m.WeightKg <= 0 {
		utils.Error(w, http.StatusBadRequest, "weightKg must be positive")
		return
	}

	ctx := context.Background()
	if _, err := loadMember(ctx, memberID); err != nil {
		utils.Error(w, http.StatusNotFound, "member not found")
		return
	}

	row := database.DB.QueryRow(ctx,
		`INSERT INTO measurements(member_id,weight_kg,body_fat_percentage,muscle_mass_kg,measured_at,created_at)
		 VALUES($1,$2,$3,$4,COALESCE($5,NOW()),NOW())
		 RETURNING id, member_id, weight_kg, body_fat_percentage, muscle_mass_kg, measured_at, created_at`,
		memberID, m.WeightKg, m.BodyFatPercentage, m.MuscleMassKg, nullableTime(m.MeasuredAt),
	)

	saved, err := scanner.ScanMeasurement(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save measurement: "+err.Error())
		return
	}

	// Synchroniser le profil avec le dernier relevé en date
	_, err = database.DB.Exec(ctx,
		`UPDATE members SET weight=$2,
		 body_fat_percentage=COALESCE($3, body_fat_percentage),
		 muscle_mass_kg=COALESCE($4, muscle_mass_kg),
		 updated_at=NOW()
		 WHERE id=$1 AND deleted_at IS NULL
		   AND NOT EXISTS (
		     SELECT 1 FROM measurements
		     WHERE member_id=$1 AND measured_at > $5)`,
		memberID, saved.WeightKg, saved.BodyFatPercentage, saved.MuscleMassKg, saved.MeasuredAt,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not sync member profile: "+err.Error())
		return
	}

	utils.Success(w, saved)
}

func GetMeasurements(w http.ResponseWriter, r *http.Request) {
	memberID := mux.Vars(r)["id"]

	measurements, err := loadMeasurements(r.Context(), memberID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query measurements: "+err.Error())
		return
	}

	utils.Success(w, measurements)
}

// GetMemberTrends analyse l'évolution du poids et de la masse grasse
// d'un membre sur l'historique de ses relevés
func GetMemberTrends(w http.ResponseWriter, r *http.Request) {
	memberID := mux.Vars(r)["id"]

	measurements, err := loadMeasurements(r.Context(), memberID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query measurements: "+err.Error())
		return
	}

	analysis := nutrition.AnalyzeTrends(measurements)
	if analysis == nil {
		utils.Error(w, http.StatusUnprocessableEntity, "at least two measurements are required for trend analysis")
		return
	}

	utils.Success(w, analysis)
}

func loadMember(ctx context.Context, id string) (*model.MemberProfile, error) {
	row := database.DB.QueryRow(ctx,
		`SELECT `+memberColumns+` FROM members WHERE id=$1 AND deleted_at IS NULL`, id)
	return scanner.ScanMemberProfile(row)
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func loadMeasurements(ctx context.Context, memberID string) ([]model.Measurement, error) {
	rows, err := database.DB.Query(ctx,
		`SELECT id, member_id, weight_kg, body_fat_percentage, muscle_mass_kg, measured_at, created_at
		 FROM measurements WHERE member_id=$1 ORDER BY measured_at`, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	measurements := []model.Measurement{}
	for rows.Next() {
		m, err := scanner.ScanMeasurement(rows)
		if err != nil {
			return nil, err
		}
		measurements = append(measurements, *m)
	}
	return measurements, rows.Err()
}
