package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/internal/domain/enum"
)

// QuotationRepository defines the resource client for quotations. Mutations
// return only the bare parent; callers that need the composite re-fetch it
// through the aggregator so pending amounts stay authoritative.
type QuotationRepository interface {
	FindAll(ctx context.Context) ([]entity.Quotation, error)
	FindByID(ctx context.Context, id int64) (*entity.Quotation, error)
	Create(ctx context.Context, input *CreateQuotationInput) (*entity.Quotation, error)
	Update(ctx context.Context, id int64, input *UpdateQuotationInput) (*entity.Quotation, error)
	// SoftDelete transitions the quotation's status to eliminado. The record
	// stays retrievable by ID.
	SoftDelete(ctx context.Context, id int64) error
}

// QuotationServiceRepository fetches the service lines of one quotation.
type QuotationServiceRepository interface {
	ListByQuotation(ctx context.Context, quotationID int64) ([]entity.QuotationService, error)
}

// QuotationPaymentRepository fetches and registers payments of one quotation.
type QuotationPaymentRepository interface {
	ListByQuotation(ctx context.Context, quotationID int64) ([]entity.QuotationPayment, error)
	Create(ctx context.Context, quotationID int64, input *RegisterPaymentInput) error
}

// CommissionRepository fetches the per-doctor commission assignments of one
// quoted service line.
type CommissionRepository interface {
	ListByService(ctx context.Context, quotationServiceID int64) ([]entity.ServiceCommission, error)
}

// CreateQuotationInput carries the fields for a new quotation. Total is
// computed by the backend as the sum of service prices.
type CreateQuotationInput struct {
	Date       time.Time
	ClientName string
	Phone      string
	Services   []QuotationServiceInput
}

// UpdateQuotationInput carries the editable header fields of a quotation.
type UpdateQuotationInput struct {
	Date       time.Time
	ClientName string
	Phone      string
}

// QuotationServiceInput is one service line of a new quotation.
type QuotationServiceInput struct {
	ServiceID   int64
	SpecialtyID int64
	Price       decimal.Decimal
	Commissions []CommissionInput
}

// CommissionInput assigns a doctor a percentage share of a service line.
type CommissionInput struct {
	DoctorID   int64
	Percentage decimal.Decimal
}

// RegisterPaymentInput carries a payment to be registered against a
// quotation. DoctorCommissions maps doctor ID to the commission amount settled
// in this transaction.
type RegisterPaymentInput struct {
	Date              time.Time
	Amount            decimal.Decimal
	Method            enum.PaymentMethod
	CashAmount        decimal.Decimal
	QRAmount          decimal.Decimal
	DoctorCommissions map[int64]decimal.Decimal
}
