package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/internal/domain/repository"
	"github.com/dentastore/backoffice-client/pkg/apperror"
)

// SaleService assembles store sales with their product lines.
type SaleService struct {
	saleRepo repository.SaleRepository
	itemRepo repository.SaleItemRepository
	log      zerolog.Logger
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, itemRepo repository.SaleItemRepository, log zerolog.Logger) *SaleService {
	return &SaleService{saleRepo: saleRepo, itemRepo: itemRepo, log: log}
}

// Get returns a sale with its items attached.
func (s *SaleService) Get(ctx context.Context, id int64) (*entity.Sale, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sale.Items = fetchOrEmpty(s.log, "items", func() ([]entity.SaleItem, error) {
		return s.itemRepo.ListBySale(ctx, sale.ID)
	})
	return sale, nil
}

// List returns all sales, items attached independently in parallel.
func (s *SaleService) List(ctx context.Context) ([]entity.Sale, error) {
	sales, err := s.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var wg sync.WaitGroup
	for i := range sales {
		wg.Add(1)
		go func(sale *entity.Sale) {
			defer wg.Done()
			sale.Items = fetchOrEmpty(s.log, "items", func() ([]entity.SaleItem, error) {
				return s.itemRepo.ListBySale(ctx, sale.ID)
			})
		}(&sales[i])
	}
	wg.Wait()
	return sales, nil
}

// Create validates and submits a sale, then re-fetches it so the total comes
// from the backend.
func (s *SaleService) Create(ctx context.Context, input *repository.SaleInput) (*entity.Sale, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewValidationError("a sale needs at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewValidationError("item quantity must be greater than zero")
		}
		if item.Price.IsNegative() {
			return nil, apperror.NewValidationError("item price cannot be negative")
		}
	}
	created, err := s.saleRepo.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, created.ID)
}

// Delete soft-deletes a sale.
func (s *SaleService) Delete(ctx context.Context, id int64) error {
	return s.saleRepo.SoftDelete(ctx, id)
}
