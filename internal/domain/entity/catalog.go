package entity

import (
	"github.com/shopspring/decimal"
)

// Service represents a catalog entry for a clinical service.
type Service struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	SpecialtyID int64           `json:"specialtyId"`
	Price       decimal.Decimal `json:"price"`
}

// Product represents an apparel item in the store catalog.
type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	Stock         int             `json:"stock"`
	Size          string          `json:"size,omitempty"`
	Color         string          `json:"color,omitempty"`
}
