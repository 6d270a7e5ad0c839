package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/internal/domain/repository"
	"github.com/dentastore/backoffice-client/pkg/apperror"
)

// ConsultationService assembles clinic visit records with their detail lines.
type ConsultationService struct {
	consultationRepo repository.ConsultationRepository
	detailRepo       repository.ConsultationDetailRepository
	log              zerolog.Logger
}

// NewConsultationService creates a new consultation service
func NewConsultationService(
	consultationRepo repository.ConsultationRepository,
	detailRepo repository.ConsultationDetailRepository,
	log zerolog.Logger,
) *ConsultationService {
	return &ConsultationService{
		consultationRepo: consultationRepo,
		detailRepo:       detailRepo,
		log:              log,
	}
}

// Get returns a consultation with its detail lines attached.
func (s *ConsultationService) Get(ctx context.Context, id int64) (*entity.Consultation, error) {
	consultation, err := s.consultationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	consultation.Details = fetchOrEmpty(s.log, "details", func() ([]entity.ConsultationDetail, error) {
		return s.detailRepo.ListByConsultation(ctx, consultation.ID)
	})
	return consultation, nil
}

// List returns all consultations, details attached independently in
// parallel.
func (s *ConsultationService) List(ctx context.Context) ([]entity.Consultation, error) {
	consultations, err := s.consultationRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var wg sync.WaitGroup
	for i := range consultations {
		wg.Add(1)
		go func(c *entity.Consultation) {
			defer wg.Done()
			c.Details = fetchOrEmpty(s.log, "details", func() ([]entity.ConsultationDetail, error) {
				return s.detailRepo.ListByConsultation(ctx, c.ID)
			})
		}(&consultations[i])
	}
	wg.Wait()
	return consultations, nil
}

// Create validates and submits a new consultation, then re-fetches it with
// details.
func (s *ConsultationService) Create(ctx context.Context, input *repository.ConsultationInput) (*entity.Consultation, error) {
	if input.PatientName == "" {
		return nil, apperror.NewValidationError("patient name is required")
	}
	created, err := s.consultationRepo.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, created.ID)
}

// Delete soft-deletes a consultation.
func (s *ConsultationService) Delete(ctx context.Context, id int64) error {
	return s.consultationRepo.SoftDelete(ctx, id)
}
