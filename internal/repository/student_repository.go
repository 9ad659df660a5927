package repository

import (
	"context"

	"github.com/spec-kit/scholar-portal/internal/domain"
)

// StudentRepository persists scholarship profiles, one per user.
type StudentRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.StudentProfile, error)
	Upsert(ctx context.Context, profile *domain.StudentProfile) error
}

type studentRepository struct {
	db DB
}

// NewStudentRepository returns a Postgres-backed implementation.
func NewStudentRepository(db DB) StudentRepository {
	return &studentRepository{db: db}
}

const studentColumns = `
        user_id, name, email, phone, gender, category, aadhaar, college_name,
        course, year_of_study, cgpa, dbt_status, family_income, bank_account,
        ifsc_code, district, state, updated_at`

func (r *studentRepository) GetByUserID(ctx context.Context, userID string) (*domain.StudentProfile, error) {
	const query = `SELECT` + studentColumns + ` FROM students WHERE user_id=$1`

	var p domain.StudentProfile
	if err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID,
		&p.Name,
		&p.Email,
		&p.Phone,
		&p.Gender,
		&p.Category,
		&p.Aadhaar,
		&p.CollegeName,
		&p.Course,
		&p.YearOfStudy,
		&p.CGPA,
		&p.DBTStatus,
		&p.FamilyIncome,
		&p.BankAccount,
		&p.IFSCCode,
		&p.District,
		&p.State,
		&p.UpdatedAt,
	); err != nil {
		return nil, classify(err)
	}
	return &p, nil
}

// Upsert writes the whole profile, inserting on first save and replacing on
// subsequent ones. user_id is the conflict key, mirroring the update-then-
// insert dance the old portal did in two round trips.
func (r *studentRepository) Upsert(ctx context.Context, profile *domain.StudentProfile) error {
	const query = `
        INSERT INTO students (
            user_id, name, email, phone, gender, category, aadhaar,
            college_name, course, year_of_study, cgpa, dbt_status,
            family_income, bank_account, ifsc_code, district, state
        )
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
        ON CONFLICT (user_id) DO UPDATE SET
            name=EXCLUDED.name, email=EXCLUDED.email, phone=EXCLUDED.phone,
            gender=EXCLUDED.gender, category=EXCLUDED.category,
            aadhaar=EXCLUDED.aadhaar, college_name=EXCLUDED.college_name,
            course=EXCLUDED.course, year_of_study=EXCLUDED.year_of_study,
            cgpa=EXCLUDED.cgpa, dbt_status=EXCLUDED.dbt_status,
            family_income=EXCLUDED.family_income,
            bank_account=EXCLUDED.bank_account, ifsc_code=EXCLUDED.ifsc_code,
            district=EXCLUDED.district, state=EXCLUDED.state,
            updated_at=NOW()
        RETURNING updated_at`

	err := r.db.QueryRow(ctx, query,
		profile.UserID,
		profile.Name,
		profile.Email,
		profile.Phone,
		profile.Gender,
		profile.Category,
		profile.Aadhaar,
		profile.CollegeName,
		profile.Course,
		profile.YearOfStudy,
		profile.CGPA,
		profile.DBTStatus,
		profile.FamilyIncome,
		profile.BankAccount,
		profile.IFSCCode,
		profile.District,
		profile.State,
	).Scan(&profile.UpdatedAt)
	if err != nil {
		return classify(err)
	}
	return nil
}
