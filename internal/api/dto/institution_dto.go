package dto

import "github.com/spec-kit/scholar-portal/internal/domain"

// InstitutionRequest payload for creating or replacing an institution.
type InstitutionRequest struct {
	Name                string  `json:"name"`
	Code                string  `json:"code"`
	District            *string `json:"district"`
	Panchayat           *string `json:"panchayat"`
	ContactPersonName   string  `json:"contact_person_name"`
	ContactPersonMobile string  `json:"contact_person_mobile"`
	ContactPersonEmail  string  `json:"contact_person_email"`
	TotalStudents       int     `json:"total_students"`
}

// ToDomain converts the request to the domain model.
func (r InstitutionRequest) ToDomain() *domain.Institution {
	return &domain.Institution{
		Name:                r.Name,
		Code:                r.Code,
		District:            r.District,
		Panchayat:           r.Panchayat,
		ContactPersonName:   r.ContactPersonName,
		ContactPersonMobile: r.ContactPersonMobile,
		ContactPersonEmail:  r.ContactPersonEmail,
		TotalStudents:       r.TotalStudents,
	}
}
