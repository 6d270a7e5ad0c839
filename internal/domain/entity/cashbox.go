package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dentastore/backoffice-client/internal/domain/enum"
)

// CashBox represents a cash register session. CashTotal and QRTotal are the
// backend's running totals; Reconcile in the cash box service checks them
// against the movement ledger without mutating them.
type CashBox struct {
	ID            int64              `json:"id"`
	OpenedAt      time.Time          `json:"openedAt"`
	ClosedAt      *time.Time         `json:"closedAt,omitempty"`
	InitialAmount decimal.Decimal    `json:"initialAmount"`
	CashTotal     decimal.Decimal    `json:"cashTotal"`
	QRTotal       decimal.Decimal    `json:"qrTotal"`
	Status        enum.CashBoxStatus `json:"status"`

	Movements []Movement `json:"movements"`
	Expenses  []Expense  `json:"expenses"`
}

// IsOpen reports whether the box is still accepting movements.
func (c *CashBox) IsOpen() bool {
	return c.Status == enum.CashBoxOpen
}

// Movement is one entry in a cash box's ledger.
type Movement struct {
	ID          int64              `json:"id"`
	CashBoxID   int64              `json:"cashBoxId"`
	Kind        enum.MovementKind  `json:"kind"`
	Method      enum.PaymentMethod `json:"paymentMethod"`
	Amount      decimal.Decimal    `json:"amount"`
	Description string             `json:"description"`
	Date        time.Time          `json:"date"`
}

// Expense is a cash outflow recorded against a box outside the sale flow.
type Expense struct {
	ID          int64           `json:"id"`
	CashBoxID   int64           `json:"cashBoxId"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}
