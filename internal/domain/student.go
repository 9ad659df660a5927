package domain

import "time"

// StudentProfile holds the scholarship-eligibility details a student fills in
// after registering. Keyed one-to-one by the owning user's id.
type StudentProfile struct {
	UserID       string   `json:"user_id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Gender       *string  `json:"gender,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Aadhaar      *string  `json:"aadhaar,omitempty"`
	CollegeName  *string  `json:"college_name,omitempty"`
	Course       *string  `json:"course,omitempty"`
	YearOfStudy  *string  `json:"year_of_study,omitempty"`
	CGPA         *float64 `json:"cgpa,omitempty"`
	DBTStatus    *string  `json:"dbt_status,omitempty"`
	FamilyIncome *float64 `json:"family_income,omitempty"`
	BankAccount  *string  `json:"bank_account,omitempty"`
	IFSCCode     *string  `json:"ifsc_code,omitempty"`
	District     *string  `json:"district,omitempty"`
	State        *string  `json:"state,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}
