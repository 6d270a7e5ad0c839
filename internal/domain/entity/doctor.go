package entity

import (
	"github.com/shopspring/decimal"

	"github.com/dentastore/backoffice-client/internal/domain/enum"
)

// Doctor represents a clinic doctor together with the dependent collections
// the aggregator attaches.
type Doctor struct {
	ID         int64           `json:"id"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Phone      string          `json:"phone"`
	SalaryType enum.SalaryType `json:"salaryType"`
	BaseSalary decimal.Decimal `json:"baseSalary"`

	Specialties []Specialty        `json:"specialties"`
	Commissions *CommissionSummary `json:"commissions,omitempty"`
}

// FullName returns the doctor's display name.
func (d *Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}

// Specialty represents a clinical specialty a doctor can be assigned to.
type Specialty struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CommissionSummary is the reconciled pending/paid split of a doctor's
// commissions across all active quotations.
type CommissionSummary struct {
	TotalEarned decimal.Decimal `json:"totalEarned"`
	TotalPaid   decimal.Decimal `json:"totalPaid"`
	Pending     decimal.Decimal `json:"pending"`
}
