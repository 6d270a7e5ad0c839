package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/internal/domain/enum"
	domainRepo "github.com/dentastore/backoffice-client/internal/domain/repository"
	"github.com/dentastore/backoffice-client/pkg/money"
)

type fakeSaleRepo struct {
	sales []entity.Sale
}

func (f *fakeSaleRepo) FindAll(ctx context.Context) ([]entity.Sale, error) {
	out := make([]entity.Sale, len(f.sales))
	copy(out, f.sales)
	return out, nil
}

func (f *fakeSaleRepo) FindByID(ctx context.Context, id int64) (*entity.Sale, error) {
	for _, s := range f.sales {
		if s.ID == id {
			copied := s
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeSaleRepo) Create(ctx context.Context, input *domainRepo.SaleInput) (*entity.Sale, error) {
	return nil, nil
}

func (f *fakeSaleRepo) SoftDelete(ctx context.Context, id int64) error {
	return nil
}

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func newReportFixture() *ReportService {
	quotationRepo := &fakeQuotationRepo{quotations: []entity.Quotation{
		{ID: 1, ClientName: "Maria Lopez", Status: enum.QuotationPending},
		{ID: 2, ClientName: "Rosa Quispe", Status: enum.QuotationDeleted},
	}}
	paymentRepo := &fakePaymentRepo{
		byQuotation: map[int64][]entity.QuotationPayment{
			1: {
				{ID: 1, Date: day(10), Amount: money.MustParse("100.00"), Method: enum.PaymentCash},
				{ID: 2, Date: day(12), Amount: money.MustParse("90.00"), Method: enum.PaymentMixed,
					CashAmount: money.MustParse("50.00"), QRAmount: money.MustParse("40.00")},
				{ID: 3, Date: day(25), Amount: money.MustParse("999.00"), Method: enum.PaymentCash},
			},
			// Payments on the deleted quotation must never be counted.
			2: {{ID: 4, Date: day(11), Amount: money.MustParse("500.00"), Method: enum.PaymentCash}},
		},
		errFor: map[int64]error{},
	}
	saleRepo := &fakeSaleRepo{sales: []entity.Sale{
		{ID: 1, Date: day(11), Total: money.MustParse("60.00"), Method: enum.PaymentQR},
		{ID: 2, Date: day(2), Total: money.MustParse("75.00"), Method: enum.PaymentCash},
	}}
	cashBoxRepo := &fakeCashBoxRepo{boxes: []entity.CashBox{{ID: 1, Status: enum.CashBoxClosed}}}
	expenseRepo := &fakeExpenseRepo{
		byBox: map[int64][]entity.Expense{1: {
			{ID: 1, CashBoxID: 1, Date: day(13), Amount: money.MustParse("30.00"), Description: "insumos"},
		}},
		errFor: map[int64]error{},
	}
	return NewReportService(quotationRepo, paymentRepo, saleRepo, cashBoxRepo, expenseRepo, zerolog.Nop())
}

func TestIncomeReportRejectsInvertedPeriod(t *testing.T) {
	svc := newReportFixture()
	if _, err := svc.IncomeReport(context.Background(), day(20), day(10)); err == nil {
		t.Error("inverted period accepted")
	}
}

func TestIncomeReportAggregates(t *testing.T) {
	svc := newReportFixture()

	report, err := svc.IncomeReport(context.Background(), day(10), day(15))
	if err != nil {
		t.Fatalf("IncomeReport: %v", err)
	}

	// Payments: 100 cash + 90 mixed inside the window. The day-25 payment and
	// the deleted quotation's payment stay out.
	if money.Format(report.ClinicIncome) != "190.00" {
		t.Errorf("clinic income = %s, want 190.00", report.ClinicIncome)
	}
	// Sales: only the day-11 QR sale is inside the window.
	if money.Format(report.StoreIncome) != "60.00" {
		t.Errorf("store income = %s, want 60.00", report.StoreIncome)
	}
	// Cash: 100 + mixed cash part 50. QR: mixed qr part 40 + sale 60.
	if money.Format(report.CashIncome) != "150.00" {
		t.Errorf("cash income = %s, want 150.00", report.CashIncome)
	}
	if money.Format(report.QRIncome) != "100.00" {
		t.Errorf("qr income = %s, want 100.00", report.QRIncome)
	}
	if money.Format(report.Expenses) != "30.00" {
		t.Errorf("expenses = %s, want 30.00", report.Expenses)
	}
	// Net = 190 + 60 - 30.
	if money.Format(report.Net) != "220.00" {
		t.Errorf("net = %s, want 220.00", report.Net)
	}

	if len(report.Rows) != 4 {
		t.Fatalf("got %d detail rows, want 4", len(report.Rows))
	}
	for i := 1; i < len(report.Rows); i++ {
		if report.Rows[i].Date.Before(report.Rows[i-1].Date) {
			t.Errorf("detail rows not date-ordered at %d", i)
		}
	}
	for _, row := range report.Rows {
		if row.Origin == "expense" && !row.Amount.IsNegative() {
			t.Errorf("expense row amount %s not negated", row.Amount)
		}
	}
}

func TestIncomeReportDegradesBrokenSources(t *testing.T) {
	svc := newReportFixture()
	svc.quotationRepo = &fakeQuotationRepo{findAllErr: errors.New("backend down")}

	report, err := svc.IncomeReport(context.Background(), day(1), day(31))
	if err != nil {
		t.Fatalf("IncomeReport failed instead of degrading: %v", err)
	}
	if !report.ClinicIncome.IsZero() {
		t.Errorf("clinic income from a broken source: %s", report.ClinicIncome)
	}
	// The other sources still contribute.
	if money.Format(report.StoreIncome) != "135.00" {
		t.Errorf("store income = %s, want 135.00", report.StoreIncome)
	}
	if money.Format(report.Expenses) != "30.00" {
		t.Errorf("expenses = %s, want 30.00", report.Expenses)
	}
}
