package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/internal/domain/repository"
)

// DashboardService fans out over independent resources to build the landing
// summary. Every branch is best-effort; a broken resource shows up as zero.
type DashboardService struct {
	quotationRepo repository.QuotationRepository
	doctorRepo    repository.DoctorRepository
	productRepo   repository.ProductRepository
	saleRepo      repository.SaleRepository
	log           zerolog.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	quotationRepo repository.QuotationRepository,
	doctorRepo repository.DoctorRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		quotationRepo: quotationRepo,
		doctorRepo:    doctorRepo,
		productRepo:   productRepo,
		saleRepo:      saleRepo,
		log:           log,
	}
}

// DashboardStats represents the landing summary numbers.
type DashboardStats struct {
	ActiveQuotations int             `json:"activeQuotations"`
	PendingTotal     decimal.Decimal `json:"pendingTotal"`
	TotalDoctors     int             `json:"totalDoctors"`
	TotalProducts    int             `json:"totalProducts"`
	TotalSales       int             `json:"totalSales"`
	SalesTotal       decimal.Decimal `json:"salesTotal"`
}

// Stats gathers the summary. It always returns a value; unavailable sources
// contribute zeros.
func (s *DashboardService) Stats(ctx context.Context) *DashboardStats {
	stats := &DashboardStats{
		PendingTotal: decimal.Zero,
		SalesTotal:   decimal.Zero,
	}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		quotations := fetchOrEmpty(s.log, "quotations", func() ([]entity.Quotation, error) {
			return s.quotationRepo.FindAll(ctx)
		})
		for _, q := range quotations {
			if !q.IsActive() {
				continue
			}
			stats.ActiveQuotations++
			stats.PendingTotal = stats.PendingTotal.Add(q.PendingAmount)
		}
	}()
	go func() {
		defer wg.Done()
		stats.TotalDoctors = len(fetchOrEmpty(s.log, "doctors", func() ([]entity.Doctor, error) {
			return s.doctorRepo.FindAll(ctx)
		}))
	}()
	go func() {
		defer wg.Done()
		stats.TotalProducts = len(fetchOrEmpty(s.log, "products", func() ([]entity.Product, error) {
			return s.productRepo.FindAll(ctx)
		}))
	}()
	go func() {
		defer wg.Done()
		sales := fetchOrEmpty(s.log, "sales", func() ([]entity.Sale, error) {
			return s.saleRepo.FindAll(ctx)
		})
		stats.TotalSales = len(sales)
		for _, sale := range sales {
			stats.SalesTotal = stats.SalesTotal.Add(sale.Total)
		}
	}()
	wg.Wait()
	return stats
}
