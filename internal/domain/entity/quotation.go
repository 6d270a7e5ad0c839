package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dentastore/backoffice-client/internal/domain/enum"
	"github.com/dentastore/backoffice-client/pkg/apperror"
	"github.com/dentastore/backoffice-client/pkg/money"
)

// Quotation represents a treatment quotation assembled from its dependent
// collections. Total and PendingAmount are authoritative backend values; the
// client never recomputes them locally.
type Quotation struct {
	ID            int64                `json:"id"`
	Date          time.Time            `json:"date"`
	ClientName    string               `json:"clientName"`
	Phone         string               `json:"phone"`
	Status        enum.QuotationStatus `json:"status"`
	Total         decimal.Decimal      `json:"total"`
	PendingAmount decimal.Decimal      `json:"pendingAmount"`
	UserID        int64                `json:"userId"`

	// Dependents, in backend-returned order.
	Services []QuotationService `json:"services"`
	Payments []QuotationPayment `json:"payments"`
}

// IsActive reports whether the quotation should appear in active listings.
func (q *Quotation) IsActive() bool {
	return !q.Status.IsDeleted()
}

// ServiceTotal sums the prices of the attached services.
func (q *Quotation) ServiceTotal() decimal.Decimal {
	total := decimal.Zero
	for _, s := range q.Services {
		total = total.Add(s.Price)
	}
	return total
}

// QuotationService represents a quoted service line with its per-doctor
// commission assignments.
type QuotationService struct {
	ID          int64           `json:"id"`
	ServiceID   int64           `json:"serviceId"`
	SpecialtyID int64           `json:"specialtyId"`
	Price       decimal.Decimal `json:"price"`

	Commissions []ServiceCommission `json:"commissions"`
}

// ServiceCommission represents one doctor's percentage share of a quoted
// service. Amount is fixed at creation time (price × percentage / 100, rounded
// half-up to cents); PendingAmount shrinks as commission payments are applied.
type ServiceCommission struct {
	DoctorID      int64           `json:"doctorId"`
	Percentage    decimal.Decimal `json:"percentage"`
	Amount        decimal.Decimal `json:"amount"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
}

// QuotationPayment represents a payment registered against a quotation.
// DoctorCommissions maps doctor ID to the commission amount settled inside
// this transaction.
type QuotationPayment struct {
	ID     int64              `json:"id"`
	Date   time.Time          `json:"date"`
	Amount decimal.Decimal    `json:"amount"`
	Method enum.PaymentMethod `json:"paymentMethod"`

	// Set only when Method is Mixto.
	CashAmount decimal.Decimal `json:"cashAmount"`
	QRAmount   decimal.Decimal `json:"qrAmount"`

	DoctorCommissions map[int64]decimal.Decimal `json:"doctorCommissions,omitempty"`
}

// Validate checks the invariants a payment must satisfy before it is
// submitted. Mixed payments must split exactly into their cash and QR parts.
func (p *QuotationPayment) Validate() error {
	if p.Amount.IsNegative() || p.Amount.IsZero() {
		return apperror.NewValidationError("payment amount must be greater than zero")
	}
	if p.Method == enum.PaymentMixed {
		split := p.CashAmount.Add(p.QRAmount)
		if !split.Equal(p.Amount) {
			return apperror.NewValidationError(
				"mixed payment parts " + money.Format(split) + " do not add up to " + money.Format(p.Amount))
		}
	}
	return nil
}
