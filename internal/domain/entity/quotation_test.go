package entity

import (
	"testing"

	"github.com/dentastore/backoffice-client/internal/domain/enum"
	"github.com/dentastore/backoffice-client/pkg/money"
)

func TestQuotationIsActive(t *testing.T) {
	q := Quotation{Status: enum.QuotationPending}
	if !q.IsActive() {
		t.Error("pending quotation not active")
	}
	q.Status = enum.QuotationCompleted
	if !q.IsActive() {
		t.Error("completed quotation not active")
	}
	q.Status = enum.QuotationDeleted
	if q.IsActive() {
		t.Error("deleted quotation reported active")
	}
}

func TestQuotationServiceTotal(t *testing.T) {
	q := Quotation{Services: []QuotationService{
		{Price: money.MustParse("150.00")},
		{Price: money.MustParse("99.50")},
	}}
	if got := money.Format(q.ServiceTotal()); got != "249.50" {
		t.Errorf("ServiceTotal = %s, want 249.50", got)
	}
}

func TestPaymentValidate(t *testing.T) {
	tests := []struct {
		name    string
		payment QuotationPayment
		wantErr bool
	}{
		{
			name:    "cash payment",
			payment: QuotationPayment{Amount: money.MustParse("50.00"), Method: enum.PaymentCash},
		},
		{
			name:    "zero amount",
			payment: QuotationPayment{Amount: money.Zero, Method: enum.PaymentCash},
			wantErr: true,
		},
		{
			name:    "negative amount",
			payment: QuotationPayment{Amount: money.MustParse("-10.00"), Method: enum.PaymentQR},
			wantErr: true,
		},
		{
			name: "mixed split adds up",
			payment: QuotationPayment{
				Amount:     money.MustParse("100.00"),
				Method:     enum.PaymentMixed,
				CashAmount: money.MustParse("60.00"),
				QRAmount:   money.MustParse("40.00"),
			},
		},
		{
			name: "mixed split short",
			payment: QuotationPayment{
				Amount:     money.MustParse("100.00"),
				Method:     enum.PaymentMixed,
				CashAmount: money.MustParse("60.00"),
				QRAmount:   money.MustParse("30.00"),
			},
			wantErr: true,
		},
		{
			name: "mixed split over",
			payment: QuotationPayment{
				Amount:     money.MustParse("100.00"),
				Method:     enum.PaymentMixed,
				CashAmount: money.MustParse("70.00"),
				QRAmount:   money.MustParse("40.00"),
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payment.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
