package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
)

// ServiceRepository defines the resource client for the clinical service
// catalog.
type ServiceRepository interface {
	FindAll(ctx context.Context) ([]entity.Service, error)
	FindByID(ctx context.Context, id int64) (*entity.Service, error)
	Create(ctx context.Context, input *ServiceInput) (*entity.Service, error)
	Update(ctx context.Context, id int64, input *ServiceInput) (*entity.Service, error)
	Delete(ctx context.Context, id int64) error
}

// ProductRepository defines the resource client for the apparel catalog.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]entity.Product, error)
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, input *ProductInput) (*entity.Product, error)
	Update(ctx context.Context, id int64, input *ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}

// ServiceInput carries the fields for a clinical service catalog entry.
type ServiceInput struct {
	Name        string
	SpecialtyID int64
	Price       decimal.Decimal
}

// ProductInput carries the fields for an apparel catalog entry.
type ProductInput struct {
	Name          string
	Code          string
	SalePrice     decimal.Decimal
	PurchasePrice decimal.Decimal
	Stock         int
	Size          string
	Color         string
}
