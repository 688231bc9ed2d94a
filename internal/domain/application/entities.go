package application

import (
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// LoanApplication is the sole persisted entity. JSON names stay camelCase so
// the document backend serializes the same shape the clients expect; SQL
// columns follow gorm's snake_case.
type LoanApplication struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Email       string    `gorm:"type:text;not null" json:"email"`
	Tel         string    `gorm:"type:text;not null" json:"tel"`
	Occupation  string    `gorm:"type:text;not null" json:"occupation"`
	Salary      float64   `gorm:"not null" json:"salary"`
	PaysheetURI *string   `gorm:"column:paysheet_uri" json:"paysheetUri"`
	SubmittedAt time.Time `gorm:"column:submitted_at" json:"submittedAt"`
	Status      Status    `gorm:"type:text;default:'pending'" json:"status"`
}

func (LoanApplication) TableName() string { return "applications" }

// Patch is a partial update: nil fields keep their stored values.
// ID and SubmittedAt are deliberately not representable here; they are
// immutable once assigned by the store.
type Patch struct {
	Name        *string  `json:"name"`
	Email       *string  `json:"email"`
	Tel         *string  `json:"tel"`
	Occupation  *string  `json:"occupation"`
	Salary      *float64 `json:"salary"`
	PaysheetURI *string  `json:"paysheetUri"`
	Status      *Status  `json:"status"`
}

// Apply merges the patch onto a record in place.
func (p Patch) Apply(a *LoanApplication) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.Tel != nil {
		a.Tel = *p.Tel
	}
	if p.Occupation != nil {
		a.Occupation = *p.Occupation
	}
	if p.Salary != nil {
		a.Salary = *p.Salary
	}
	if p.PaysheetURI != nil {
		uri := *p.PaysheetURI
		a.PaysheetURI = &uri
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
}
