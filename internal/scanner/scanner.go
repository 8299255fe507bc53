package scanner

import (
	"database/sql"

	model "github.com/MassBabyGeek/NutriPlan-backend/internal/models"
	"github.com/MassBabyGeek/NutriPlan-backend/internal/utils"
	"github.com/lib/pq"
)

// ScanMemberProfile scanne une ligne SQL vers un MemberProfile
// Utilise les types sql.Null* et les convertit automatiquement
func ScanMemberProfile(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.MemberProfile, error) {
	var member model.MemberProfile
	var bodyFat, muscleMass sql.NullFloat64
	var restrictions []string
	var updatedBy sql.NullString

	err := scanner.Scan(
		&member.ID, &member.Name, &member.Email,
		&member.Birthdate, &member.Gender,
		&member.Weight, &member.Height,
		&bodyFat, &muscleMass, pq.Array(&restrictions),
		&member.JoinDate, &member.CreatedAt, &member.UpdatedAt,
		&member.CreatedBy, &updatedBy,
	)
	if err != nil {
		return nil, err
	}

	// Conversions
	member.BodyFatPercentage = utils.NullFloat64ToPointer(bodyFat)
	member.MuscleMassKg = utils.NullFloat64ToPointer(muscleMass)
	member.DietaryRestrictions = restrictions
	member.UpdatedBy = utils.NullStringToPointer(updatedBy)

	return &member, nil
}

// ScanMeasurement scanne une ligne SQL vers un Measurement
func ScanMeasurement(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.Measurement, error) {
	var m model.Measurement
	var bodyFat, muscleMass sql.NullFloat64

	err := scanner.Scan(
		&m.ID, &m.MemberID, &m.WeightKg,
		&bodyFat, &muscleMass,
		&m.MeasuredAt, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.BodyFatPercentage = utils.NullFloat64ToPointer(bodyFat)
	m.MuscleMassKg = utils.NullFloat64ToPointer(muscleMass)

	return &m, nil
}

// ScanPlanRecord scanne une ligne SQL vers un PlanRecord
func ScanPlanRecord(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.PlanRecord, error) {
	var p model.PlanRecord
	var createdBy sql.NullString

	err := scanner.Scan(
		&p.ID, &p.MemberID, &p.Objective, &p.Payload,
		&p.CreatedAt, &createdBy,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedBy = utils.NullStringToPointer(createdBy)

	return &p, nil
}
