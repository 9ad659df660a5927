package repository

import (
	"context"

	"github.com/spec-kit/scholar-portal/internal/domain"
)

// InstitutionRepository persists registered institutions.
type InstitutionRepository interface {
	Create(ctx context.Context, inst *domain.Institution) error
	Update(ctx context.Context, inst *domain.Institution) error
	GetByID(ctx context.Context, id string) (*domain.Institution, error)
	List(ctx context.Context) ([]*domain.Institution, error)
}

type institutionRepository struct {
	db DB
}

// NewInstitutionRepository returns a Postgres-backed implementation.
func NewInstitutionRepository(db DB) InstitutionRepository {
	return &institutionRepository{db: db}
}

func (r *institutionRepository) Create(ctx context.Context, inst *domain.Institution) error {
	const query = `
        INSERT INTO institutions (
            name, code, district, panchayat, contact_person_name,
            contact_person_mobile, contact_person_email, total_students
        )
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		inst.Name,
		inst.Code,
		inst.District,
		inst.Panchayat,
		inst.ContactPersonName,
		inst.ContactPersonMobile,
		inst.ContactPersonEmail,
		inst.TotalStudents,
	).Scan(&inst.ID, &inst.CreatedAt, &inst.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateCode
		}
		return classify(err)
	}
	return nil
}

func (r *institutionRepository) Update(ctx context.Context, inst *domain.Institution) error {
	const query = `
        UPDATE institutions SET
            name=$1, code=$2, district=$3, panchayat=$4,
            contact_person_name=$5, contact_person_mobile=$6,
            contact_person_email=$7, total_students=$8, updated_at=NOW()
        WHERE id=$9
        RETURNING updated_at`

	err := r.db.QueryRow(ctx, query,
		inst.Name,
		inst.Code,
		inst.District,
		inst.Panchayat,
		inst.ContactPersonName,
		inst.ContactPersonMobile,
		inst.ContactPersonEmail,
		inst.TotalStudents,
		inst.ID,
	).Scan(&inst.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateCode
		}
		return classify(err)
	}
	return nil
}

func (r *institutionRepository) GetByID(ctx context.Context, id string) (*domain.Institution, error) {
	const query = `
        SELECT id, name, code, district, panchayat, contact_person_name,
               contact_person_mobile, contact_person_email, total_students,
               created_at, updated_at
        FROM institutions WHERE id=$1`

	var inst domain.Institution
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&inst.ID,
		&inst.Name,
		&inst.Code,
		&inst.District,
		&inst.Panchayat,
		&inst.ContactPersonName,
		&inst.ContactPersonMobile,
		&inst.ContactPersonEmail,
		&inst.TotalStudents,
		&inst.CreatedAt,
		&inst.UpdatedAt,
	); err != nil {
		return nil, classify(err)
	}
	return &inst, nil
}

func (r *institutionRepository) List(ctx context.Context) ([]*domain.Institution, error) {
	const query = `
        SELECT id, name, code, district, panchayat, contact_person_name,
               contact_person_mobile, contact_person_email, total_students,
               created_at, updated_at
        FROM institutions ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var institutions []*domain.Institution
	for rows.Next() {
		var inst domain.Institution
		if err := rows.Scan(
			&inst.ID,
			&inst.Name,
			&inst.Code,
			&inst.District,
			&inst.Panchayat,
			&inst.ContactPersonName,
			&inst.ContactPersonMobile,
			&inst.ContactPersonEmail,
			&inst.TotalStudents,
			&inst.CreatedAt,
			&inst.UpdatedAt,
		); err != nil {
			return nil, classify(err)
		}
		institutions = append(institutions, &inst)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return institutions, nil
}
