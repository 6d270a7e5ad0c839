package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dentastore/backoffice-client/internal/domain/enum"
)

// Sale represents a store point-of-sale transaction.
type Sale struct {
	ID     int64              `json:"id"`
	Date   time.Time          `json:"date"`
	Total  decimal.Decimal    `json:"total"`
	Method enum.PaymentMethod `json:"paymentMethod"`
	UserID int64              `json:"userId"`

	Items []SaleItem `json:"items"`
}

// SaleItem is one product line in a sale.
type SaleItem struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}
