package application

import (
	"time"

	domain "loanintake-backend/internal/domain/application"
)

type SubmitInput struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Tel         string  `json:"tel"`
	Occupation  string  `json:"occupation"`
	Salary      float64 `json:"salary"`
	PaysheetURI *string `json:"paysheetUri"`
}

// UpdateInput carries only the fields a manager may change. There is no id
// or submittedAt here, so a payload naming them simply has those fields
// dropped at bind time.
type UpdateInput struct {
	Name        *string  `json:"name"`
	Email       *string  `json:"email"`
	Tel         *string  `json:"tel"`
	Occupation  *string  `json:"occupation"`
	Salary      *float64 `json:"salary"`
	PaysheetURI *string  `json:"paysheetUri"`
	Status      *string  `json:"status"`
}

type ApplicationDTO struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Tel         string    `json:"tel"`
	Occupation  string    `json:"occupation"`
	Salary      float64   `json:"salary"`
	PaysheetURI *string   `json:"paysheetUri"`
	SubmittedAt time.Time `json:"submittedAt"`
	Status      string    `json:"status"`
}

func toDTO(a *domain.LoanApplication) *ApplicationDTO {
	return &ApplicationDTO{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Tel:         a.Tel,
		Occupation:  a.Occupation,
		Salary:      a.Salary,
		PaysheetURI: a.PaysheetURI,
		SubmittedAt: a.SubmittedAt,
		Status:      string(a.Status),
	}
}
