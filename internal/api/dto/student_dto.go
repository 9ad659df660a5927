package dto

import "github.com/spec-kit/scholar-portal/internal/domain"

// StudentProfileRequest payload for profile upserts. Name, email, and phone
// are required; everything else may be filled in over time.
type StudentProfileRequest struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Gender       *string  `json:"gender"`
	Category     *string  `json:"category"`
	Aadhaar      *string  `json:"aadhaar"`
	CollegeName  *string  `json:"college_name"`
	Course       *string  `json:"course"`
	YearOfStudy  *string  `json:"year_of_study"`
	CGPA         *float64 `json:"cgpa"`
	DBTStatus    *string  `json:"dbt_status"`
	FamilyIncome *float64 `json:"family_income"`
	BankAccount  *string  `json:"bank_account"`
	IFSCCode     *string  `json:"ifsc_code"`
	District     *string  `json:"district"`
	State        *string  `json:"state"`
}

// ToDomain converts the request to the domain model.
func (r StudentProfileRequest) ToDomain() *domain.StudentProfile {
	return &domain.StudentProfile{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Gender:       r.Gender,
		Category:     r.Category,
		Aadhaar:      r.Aadhaar,
		CollegeName:  r.CollegeName,
		Course:       r.Course,
		YearOfStudy:  r.YearOfStudy,
		CGPA:         r.CGPA,
		DBTStatus:    r.DBTStatus,
		FamilyIncome: r.FamilyIncome,
		BankAccount:  r.BankAccount,
		IFSCCode:     r.IFSCCode,
		District:     r.District,
		State:        r.State,
	}
}
