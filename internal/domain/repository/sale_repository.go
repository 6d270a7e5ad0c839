package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/internal/domain/enum"
)

// SaleRepository defines the resource client for store sales.
type SaleRepository interface {
	FindAll(ctx context.Context) ([]entity.Sale, error)
	FindByID(ctx context.Context, id int64) (*entity.Sale, error)
	Create(ctx context.Context, input *SaleInput) (*entity.Sale, error)
	SoftDelete(ctx context.Context, id int64) error
}

// SaleItemRepository fetches the product lines of one sale.
type SaleItemRepository interface {
	ListBySale(ctx context.Context, saleID int64) ([]entity.SaleItem, error)
}

// SaleInput carries a new point-of-sale transaction.
type SaleInput struct {
	Date   time.Time
	Method enum.PaymentMethod
	Items  []SaleItemInput
}

// SaleItemInput is one product line of a new sale.
type SaleItemInput struct {
	ProductID int64
	Quantity  int
	Price     decimal.Decimal
}
