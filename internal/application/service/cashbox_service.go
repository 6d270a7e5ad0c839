package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/internal/domain/enum"
	"github.com/dentastore/backoffice-client/internal/domain/repository"
	"github.com/dentastore/backoffice-client/pkg/apperror"
)

// CashBoxService assembles cash register sessions with their ledger and
// expenses, and reconciles the backend's running totals against them.
type CashBoxService struct {
	cashBoxRepo  repository.CashBoxRepository
	movementRepo repository.MovementRepository
	expenseRepo  repository.ExpenseRepository
	log          zerolog.Logger
}

// NewCashBoxService creates a new cash box service
func NewCashBoxService(
	cashBoxRepo repository.CashBoxRepository,
	movementRepo repository.MovementRepository,
	expenseRepo repository.ExpenseRepository,
	log zerolog.Logger,
) *CashBoxService {
	return &CashBoxService{
		cashBoxRepo:  cashBoxRepo,
		movementRepo: movementRepo,
		expenseRepo:  expenseRepo,
		log:          log,
	}
}

// Reconciliation compares a box's backend totals against what its ledger
// implies. Drift is backend total minus ledger-derived total; nonzero drift
// is reported, never corrected client-side.
type Reconciliation struct {
	ExpectedCash decimal.Decimal `json:"expectedCash"`
	ExpectedQR   decimal.Decimal `json:"expectedQr"`
	CashDrift    decimal.Decimal `json:"cashDrift"`
	QRDrift      decimal.Decimal `json:"qrDrift"`
}

// Balanced reports whether the backend totals match the ledger.
func (r Reconciliation) Balanced() bool {
	return r.CashDrift.IsZero() && r.QRDrift.IsZero()
}

// Get returns a box with movements and expenses attached in parallel.
func (s *CashBoxService) Get(ctx context.Context, id int64) (*entity.CashBox, error) {
	box, err := s.cashBoxRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.assemble(ctx, box)
	return box, nil
}

// Current returns the open box fully assembled, or nil when no box is open.
func (s *CashBoxService) Current(ctx context.Context) (*entity.CashBox, error) {
	box, err := s.cashBoxRepo.Current(ctx)
	if err != nil || box == nil {
		return box, err
	}
	s.assemble(ctx, box)
	return box, nil
}

// List returns all boxes assembled, each independently and in parallel.
func (s *CashBoxService) List(ctx context.Context) ([]entity.CashBox, error) {
	boxes, err := s.cashBoxRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var wg sync.WaitGroup
	for i := range boxes {
		wg.Add(1)
		go func(box *entity.CashBox) {
			defer wg.Done()
			s.assemble(ctx, box)
		}(&boxes[i])
	}
	wg.Wait()
	return boxes, nil
}

func (s *CashBoxService) assemble(ctx context.Context, box *entity.CashBox) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		box.Movements = fetchOrEmpty(s.log, "movements", func() ([]entity.Movement, error) {
			return s.movementRepo.ListByCashBox(ctx, box.ID)
		})
	}()
	go func() {
		defer wg.Done()
		box.Expenses = fetchOrEmpty(s.log, "expenses", func() ([]entity.Expense, error) {
			return s.expenseRepo.ListByCashBox(ctx, box.ID)
		})
	}()
	wg.Wait()
}

// Reconcile derives the expected cash and QR totals from the box's ledger and
// compares them with the backend's running totals. Expenses always settle in
// cash.
func (s *CashBoxService) Reconcile(box *entity.CashBox) Reconciliation {
	expectedCash := box.InitialAmount
	expectedQR := decimal.Zero

	for _, m := range box.Movements {
		amount := m.Amount
		if m.Kind == enum.MovementExpense {
			amount = amount.Neg()
		}
		switch m.Method {
		case enum.PaymentQR:
			expectedQR = expectedQR.Add(amount)
		default:
			expectedCash = expectedCash.Add(amount)
		}
	}
	for _, e := range box.Expenses {
		expectedCash = expectedCash.Sub(e.Amount)
	}

	return Reconciliation{
		ExpectedCash: expectedCash,
		ExpectedQR:   expectedQR,
		CashDrift:    box.CashTotal.Sub(expectedCash),
		QRDrift:      box.QRTotal.Sub(expectedQR),
	}
}

// Open starts a new cash register session.
func (s *CashBoxService) Open(ctx context.Context, initialAmount decimal.Decimal) (*entity.CashBox, error) {
	if initialAmount.IsNegative() {
		return nil, apperror.NewValidationError("initial amount cannot be negative")
	}
	box, err := s.cashBoxRepo.Open(ctx, initialAmount)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, box.ID)
}

// Close ends a session, then re-fetches it so closing totals come from the
// backend.
func (s *CashBoxService) Close(ctx context.Context, id int64) (*entity.CashBox, error) {
	if err := s.cashBoxRepo.Close(ctx, id); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// AddMovement records a manual ledger entry and re-fetches the box.
func (s *CashBoxService) AddMovement(ctx context.Context, input *repository.MovementInput) (*entity.CashBox, error) {
	if input.Amount.IsNegative() || input.Amount.IsZero() {
		return nil, apperror.NewValidationError("movement amount must be greater than zero")
	}
	if _, err := s.movementRepo.Create(ctx, input); err != nil {
		return nil, err
	}
	return s.Get(ctx, input.CashBoxID)
}

// AddExpense records an expense and re-fetches the box.
func (s *CashBoxService) AddExpense(ctx context.Context, input *repository.ExpenseInput) (*entity.CashBox, error) {
	if input.Amount.IsNegative() || input.Amount.IsZero() {
		return nil, apperror.NewValidationError("expense amount must be greater than zero")
	}
	if _, err := s.expenseRepo.Create(ctx, input); err != nil {
		return nil, err
	}
	return s.Get(ctx, input.CashBoxID)
}
