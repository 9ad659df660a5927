package domain

import "time"

// Institution is a registered college/institute participating in the portal.
type Institution struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Code                string    `json:"code"`
	District            *string   `json:"district,omitempty"`
	Panchayat           *string   `json:"panchayat,omitempty"`
	ContactPersonName   string    `json:"contact_person_name"`
	ContactPersonMobile string    `json:"contact_person_mobile"`
	ContactPersonEmail  string    `json:"contact_person_email"`
	TotalStudents       int       `json:"total_students"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
