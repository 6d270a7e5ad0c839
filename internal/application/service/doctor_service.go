package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/internal/domain/repository"
)

// DoctorService assembles doctors with their specialties and the reconciled
// pending/paid split of their commissions across active quotations.
type DoctorService struct {
	doctorRepo     repository.DoctorRepository
	specialtyRepo  repository.SpecialtyRepository
	quotationRepo  repository.QuotationRepository
	serviceRepo    repository.QuotationServiceRepository
	commissionRepo repository.CommissionRepository
	log            zerolog.Logger
}

// NewDoctorService creates a new doctor service
func NewDoctorService(
	doctorRepo repository.DoctorRepository,
	specialtyRepo repository.SpecialtyRepository,
	quotationRepo repository.QuotationRepository,
	serviceRepo repository.QuotationServiceRepository,
	commissionRepo repository.CommissionRepository,
	log zerolog.Logger,
) *DoctorService {
	return &DoctorService{
		doctorRepo:     doctorRepo,
		specialtyRepo:  specialtyRepo,
		quotationRepo:  quotationRepo,
		serviceRepo:    serviceRepo,
		commissionRepo: commissionRepo,
		log:            log,
	}
}

// Get returns a doctor with specialties and commission summary attached.
// Both enrichments are best-effort.
func (s *DoctorService) Get(ctx context.Context, id int64) (*entity.Doctor, error) {
	doctor, err := s.doctorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		doctor.Specialties = fetchOrEmpty(s.log, "specialties", func() ([]entity.Specialty, error) {
			return s.specialtyRepo.ListByDoctor(ctx, doctor.ID)
		})
	}()
	go func() {
		defer wg.Done()
		summaries := s.commissionSummaries(ctx)
		if summary, ok := summaries[doctor.ID]; ok {
			doctor.Commissions = summary
		}
	}()
	wg.Wait()
	return doctor, nil
}

// List returns all doctors, each with specialties attached in parallel and
// commission summaries merged by doctor ID. One doctor's failed enrichment
// never affects the others.
func (s *DoctorService) List(ctx context.Context) ([]entity.Doctor, error) {
	doctors, err := s.doctorRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var summaries map[int64]*entity.CommissionSummary
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		summaries = s.commissionSummaries(ctx)
	}()
	for i := range doctors {
		wg.Add(1)
		go func(d *entity.Doctor) {
			defer wg.Done()
			d.Specialties = fetchOrEmpty(s.log, "specialties", func() ([]entity.Specialty, error) {
				return s.specialtyRepo.ListByDoctor(ctx, d.ID)
			})
		}(&doctors[i])
	}
	wg.Wait()

	for i := range doctors {
		if summary, ok := summaries[doctors[i].ID]; ok {
			doctors[i].Commissions = summary
		}
	}
	return doctors, nil
}

// commissionSummaries walks every active quotation's service lines and folds
// their commissions into per-doctor totals. The walk is best-effort at every
// level: a failed fetch contributes nothing instead of aborting the summary.
func (s *DoctorService) commissionSummaries(ctx context.Context) map[int64]*entity.CommissionSummary {
	quotations := fetchOrEmpty(s.log, "quotations", func() ([]entity.Quotation, error) {
		return s.quotationRepo.FindAll(ctx)
	})

	var mu sync.Mutex
	summaries := make(map[int64]*entity.CommissionSummary)

	var wg sync.WaitGroup
	for _, quotation := range quotations {
		if quotation.Status.IsDeleted() {
			continue
		}
		wg.Add(1)
		go func(quotationID int64) {
			defer wg.Done()
			lines := fetchOrEmpty(s.log, "services", func() ([]entity.QuotationService, error) {
				return s.serviceRepo.ListByQuotation(ctx, quotationID)
			})
			for _, line := range lines {
				commissions := fetchOrEmpty(s.log, "commissions", func() ([]entity.ServiceCommission, error) {
					return s.commissionRepo.ListByService(ctx, line.ID)
				})
				mu.Lock()
				for _, c := range commissions {
					summary, ok := summaries[c.DoctorID]
					if !ok {
						summary = &entity.CommissionSummary{
							TotalEarned: decimal.Zero,
							TotalPaid:   decimal.Zero,
							Pending:     decimal.Zero,
						}
						summaries[c.DoctorID] = summary
					}
					summary.TotalEarned = summary.TotalEarned.Add(c.Amount)
					summary.Pending = summary.Pending.Add(c.PendingAmount)
					summary.TotalPaid = summary.TotalPaid.Add(c.Amount.Sub(c.PendingAmount))
				}
				mu.Unlock()
			}
		}(quotation.ID)
	}
	wg.Wait()
	return summaries
}

// Create adds a doctor to the catalog.
func (s *DoctorService) Create(ctx context.Context, input *repository.DoctorInput) (*entity.Doctor, error) {
	doctor, err := s.doctorRepo.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, doctor.ID)
}

// Update edits a doctor and re-fetches the assembled record.
func (s *DoctorService) Update(ctx context.Context, id int64, input *repository.DoctorInput) (*entity.Doctor, error) {
	if _, err := s.doctorRepo.Update(ctx, id, input); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes a doctor from the catalog. Doctors are deleted physically,
// not soft-deleted.
func (s *DoctorService) Delete(ctx context.Context, id int64) error {
	return s.doctorRepo.Delete(ctx, id)
}
