package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/internal/domain/enum"
)

// CashBoxRepository defines the resource client for cash register sessions.
type CashBoxRepository interface {
	FindAll(ctx context.Context) ([]entity.CashBox, error)
	FindByID(ctx context.Context, id int64) (*entity.CashBox, error)
	// Current returns the open box, or nil when none is open.
	Current(ctx context.Context) (*entity.CashBox, error)
	Open(ctx context.Context, initialAmount decimal.Decimal) (*entity.CashBox, error)
	Close(ctx context.Context, id int64) error
}

// MovementRepository fetches and records ledger entries of one cash box.
type MovementRepository interface {
	ListByCashBox(ctx context.Context, cashBoxID int64) ([]entity.Movement, error)
	Create(ctx context.Context, input *MovementInput) (*entity.Movement, error)
}

// ExpenseRepository fetches and records expenses of one cash box.
type ExpenseRepository interface {
	ListByCashBox(ctx context.Context, cashBoxID int64) ([]entity.Expense, error)
	Create(ctx context.Context, input *ExpenseInput) (*entity.Expense, error)
}

// MovementInput carries a manual ledger entry.
type MovementInput struct {
	CashBoxID   int64
	Kind        enum.MovementKind
	Method      enum.PaymentMethod
	Amount      decimal.Decimal
	Description string
}

// ExpenseInput carries a new expense.
type ExpenseInput struct {
	CashBoxID   int64
	Amount      decimal.Decimal
	Description string
}
