package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/internal/domain/enum"
	"github.com/dentastore/backoffice-client/internal/domain/repository"
	"github.com/dentastore/backoffice-client/pkg/apperror"
)

// ReportService assembles the period income report from quotation payments,
// store sales and cash box expenses. Every source is fetched best-effort: a
// broken source shrinks the report, it never fails it.
type ReportService struct {
	quotationRepo repository.QuotationRepository
	paymentRepo   repository.QuotationPaymentRepository
	saleRepo      repository.SaleRepository
	cashBoxRepo   repository.CashBoxRepository
	expenseRepo   repository.ExpenseRepository
	log           zerolog.Logger
}

// NewReportService creates a new report service
func NewReportService(
	quotationRepo repository.QuotationRepository,
	paymentRepo repository.QuotationPaymentRepository,
	saleRepo repository.SaleRepository,
	cashBoxRepo repository.CashBoxRepository,
	expenseRepo repository.ExpenseRepository,
	log zerolog.Logger,
) *ReportService {
	return &ReportService{
		quotationRepo: quotationRepo,
		paymentRepo:   paymentRepo,
		saleRepo:      saleRepo,
		cashBoxRepo:   cashBoxRepo,
		expenseRepo:   expenseRepo,
		log:           log,
	}
}

// IncomeReport builds the income picture for [from, to] inclusive.
func (s *ReportService) IncomeReport(ctx context.Context, from, to time.Time) (*entity.IncomeReport, error) {
	if to.Before(from) {
		return nil, apperror.NewValidationError("report period end precedes its start")
	}

	var (
		payments []paymentRow
		sales    []entity.Sale
		expenses []entity.Expense
	)
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		payments = s.collectPayments(ctx)
	}()
	go func() {
		defer wg.Done()
		sales = fetchOrEmpty(s.log, "sales", func() ([]entity.Sale, error) {
			return s.saleRepo.FindAll(ctx)
		})
	}()
	go func() {
		defer wg.Done()
		expenses = s.collectExpenses(ctx)
	}()
	wg.Wait()

	report := &entity.IncomeReport{
		From:         from,
		To:           to,
		ClinicIncome: decimal.Zero,
		StoreIncome:  decimal.Zero,
		CashIncome:   decimal.Zero,
		QRIncome:     decimal.Zero,
		Expenses:     decimal.Zero,
		Net:          decimal.Zero,
	}

	for _, p := range payments {
		if !within(p.payment.Date, from, to) {
			continue
		}
		report.ClinicIncome = report.ClinicIncome.Add(p.payment.Amount)
		s.addByMethod(report, p.payment.Method, p.payment.Amount, p.payment.CashAmount, p.payment.QRAmount)
		report.Rows = append(report.Rows, entity.IncomeReportRow{
			Date:        p.payment.Date,
			Origin:      "clinic",
			Description: "Payment on quotation for " + p.clientName,
			Method:      p.payment.Method.String(),
			Amount:      p.payment.Amount,
		})
	}

	for _, sale := range sales {
		if !within(sale.Date, from, to) {
			continue
		}
		report.StoreIncome = report.StoreIncome.Add(sale.Total)
		// Store sales settle through one channel; the POS does not split.
		s.addByMethod(report, sale.Method, sale.Total, decimal.Zero, decimal.Zero)
		report.Rows = append(report.Rows, entity.IncomeReportRow{
			Date:        sale.Date,
			Origin:      "store",
			Description: "Store sale",
			Method:      sale.Method.String(),
			Amount:      sale.Total,
		})
	}

	for _, expense := range expenses {
		if !within(expense.Date, from, to) {
			continue
		}
		report.Expenses = report.Expenses.Add(expense.Amount)
		report.Rows = append(report.Rows, entity.IncomeReportRow{
			Date:        expense.Date,
			Origin:      "expense",
			Description: expense.Description,
			Method:      enum.PaymentCash.String(),
			Amount:      expense.Amount.Neg(),
		})
	}

	report.Net = report.ClinicIncome.Add(report.StoreIncome).Sub(report.Expenses)

	sort.SliceStable(report.Rows, func(i, j int) bool {
		return report.Rows[i].Date.Before(report.Rows[j].Date)
	})
	return report, nil
}

type paymentRow struct {
	clientName string
	payment    entity.QuotationPayment
}

// collectPayments fans out over all non-deleted quotations and gathers their
// payments.
func (s *ReportService) collectPayments(ctx context.Context) []paymentRow {
	quotations := fetchOrEmpty(s.log, "quotations", func() ([]entity.Quotation, error) {
		return s.quotationRepo.FindAll(ctx)
	})

	var mu sync.Mutex
	var rows []paymentRow
	var wg sync.WaitGroup
	for _, quotation := range quotations {
		if quotation.Status.IsDeleted() {
			continue
		}
		wg.Add(1)
		go func(quotationID int64, clientName string) {
			defer wg.Done()
			payments := fetchOrEmpty(s.log, "payments", func() ([]entity.QuotationPayment, error) {
				return s.paymentRepo.ListByQuotation(ctx, quotationID)
			})
			mu.Lock()
			for _, p := range payments {
				rows = append(rows, paymentRow{clientName: clientName, payment: p})
			}
			mu.Unlock()
		}(quotation.ID, quotation.ClientName)
	}
	wg.Wait()
	return rows
}

// collectExpenses fans out over all cash boxes and gathers their expenses.
func (s *ReportService) collectExpenses(ctx context.Context) []entity.Expense {
	boxes := fetchOrEmpty(s.log, "cash boxes", func() ([]entity.CashBox, error) {
		return s.cashBoxRepo.FindAll(ctx)
	})

	var mu sync.Mutex
	var all []entity.Expense
	var wg sync.WaitGroup
	for _, box := range boxes {
		wg.Add(1)
		go func(boxID int64) {
			defer wg.Done()
			expenses := fetchOrEmpty(s.log, "expenses", func() ([]entity.Expense, error) {
				return s.expenseRepo.ListByCashBox(ctx, boxID)
			})
			mu.Lock()
			all = append(all, expenses...)
			mu.Unlock()
		}(box.ID)
	}
	wg.Wait()
	return all
}

func (s *ReportService) addByMethod(report *entity.IncomeReport, method enum.PaymentMethod, amount, cash, qr decimal.Decimal) {
	switch method {
	case enum.PaymentQR:
		report.QRIncome = report.QRIncome.Add(amount)
	case enum.PaymentMixed:
		report.CashIncome = report.CashIncome.Add(cash)
		report.QRIncome = report.QRIncome.Add(qr)
	default:
		report.CashIncome = report.CashIncome.Add(amount)
	}
}

func within(date, from, to time.Time) bool {
	return !date.Before(from) && !date.After(to)
}
