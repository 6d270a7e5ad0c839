package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/internal/domain/enum"
	domainRepo "github.com/dentastore/backoffice-client/internal/domain/repository"
	"github.com/dentastore/backoffice-client/pkg/money"
)

type fakeProductRepo struct {
	products []entity.Product
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]entity.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	return nil, errors.New("not found")
}

func (f *fakeProductRepo) Create(ctx context.Context, input *domainRepo.ProductInput) (*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, id int64, input *domainRepo.ProductInput) (*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

func TestDashboardStats(t *testing.T) {
	quotationRepo := &fakeQuotationRepo{quotations: []entity.Quotation{
		{ID: 1, Status: enum.QuotationPending, PendingAmount: money.MustParse("300.00")},
		{ID: 2, Status: enum.QuotationCompleted, PendingAmount: money.MustParse("0.00")},
		{ID: 3, Status: enum.QuotationDeleted, PendingAmount: money.MustParse("80.00")},
	}}
	doctorRepo := &fakeDoctorRepo{doctors: []entity.Doctor{{ID: 3}, {ID: 4}}}
	productRepo := &fakeProductRepo{products: []entity.Product{{ID: 1}, {ID: 2}, {ID: 3}}}
	saleRepo := &fakeSaleRepo{sales: []entity.Sale{
		{ID: 1, Total: money.MustParse("60.00")},
		{ID: 2, Total: money.MustParse("75.00")},
	}}
	svc := NewDashboardService(quotationRepo, doctorRepo, productRepo, saleRepo, zerolog.Nop())

	stats := svc.Stats(context.Background())
	if stats.ActiveQuotations != 2 {
		t.Errorf("active quotations = %d, want 2", stats.ActiveQuotations)
	}
	// The deleted quotation's pending amount stays out.
	if money.Format(stats.PendingTotal) != "300.00" {
		t.Errorf("pending total = %s, want 300.00", stats.PendingTotal)
	}
	if stats.TotalDoctors != 2 || stats.TotalProducts != 3 {
		t.Errorf("counts = %d doctors, %d products", stats.TotalDoctors, stats.TotalProducts)
	}
	if stats.TotalSales != 2 || money.Format(stats.SalesTotal) != "135.00" {
		t.Errorf("sales = %d for %s", stats.TotalSales, stats.SalesTotal)
	}
}

func TestDashboardStatsDegrades(t *testing.T) {
	quotationRepo := &fakeQuotationRepo{findAllErr: errors.New("backend down")}
	doctorRepo := &fakeDoctorRepo{doctors: []entity.Doctor{{ID: 3}}}
	productRepo := &fakeProductRepo{}
	saleRepo := &fakeSaleRepo{}
	svc := NewDashboardService(quotationRepo, doctorRepo, productRepo, saleRepo, zerolog.Nop())

	stats := svc.Stats(context.Background())
	if stats == nil {
		t.Fatal("Stats returned nil")
	}
	if stats.ActiveQuotations != 0 || !stats.PendingTotal.IsZero() {
		t.Errorf("broken source contributed: %+v", stats)
	}
	if stats.TotalDoctors != 1 {
		t.Errorf("healthy source lost: %d doctors", stats.TotalDoctors)
	}
}
