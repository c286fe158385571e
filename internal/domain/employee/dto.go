package employee

import (
	"strings"

	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/validator"
)

type RegisterEmployeeRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Gender string `json:"gender"`
}

func (r *RegisterEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if errs.Required("name", r.Name) {
		errs.MaxLength("name", strings.TrimSpace(r.Name), 255)
	}
	if errs.Required("email", r.Email) && !validator.IsValidEmail(strings.TrimSpace(r.Email)) {
		errs.Add("email", "email must be a valid email address")
	}
	if _, ok := ParseGender(r.Gender); !ok {
		errs.Add("gender", ErrInvalidGender.Error())
	}

	return errs.Err()
}

type EmployeeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Gender      string `json:"gender"`
	JoiningDate string `json:"joining_date"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		Gender:      string(e.Gender),
		JoiningDate: calendar.FormatDate(e.JoiningDate),
	}
}
