package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/internal/domain/repository"
	"github.com/dentastore/backoffice-client/pkg/apperror"
	"github.com/dentastore/backoffice-client/pkg/money"
)

// QuotationService assembles composite quotations from their dependent
// fetches and owns the payment registration flow.
type QuotationService struct {
	quotationRepo  repository.QuotationRepository
	serviceRepo    repository.QuotationServiceRepository
	paymentRepo    repository.QuotationPaymentRepository
	commissionRepo repository.CommissionRepository
	log            zerolog.Logger
}

// NewQuotationService creates a new quotation service
func NewQuotationService(
	quotationRepo repository.QuotationRepository,
	serviceRepo repository.QuotationServiceRepository,
	paymentRepo repository.QuotationPaymentRepository,
	commissionRepo repository.CommissionRepository,
	log zerolog.Logger,
) *QuotationService {
	return &QuotationService{
		quotationRepo:  quotationRepo,
		serviceRepo:    serviceRepo,
		paymentRepo:    paymentRepo,
		commissionRepo: commissionRepo,
		log:            log,
	}
}

// Get returns the quotation with its services, payments and per-service
// commissions attached. Dependent fetch failures degrade to empty collections
// rather than failing the composite.
func (s *QuotationService) Get(ctx context.Context, id int64) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.assemble(ctx, quotation)
	return quotation, nil
}

// List returns all quotations fully assembled. Each parent's assembly runs
// independently; one parent's dependent failures never abort the list.
func (s *QuotationService) List(ctx context.Context) ([]entity.Quotation, error) {
	quotations, err := s.quotationRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	for i := range quotations {
		wg.Add(1)
		go func(q *entity.Quotation) {
			defer wg.Done()
			s.assemble(ctx, q)
		}(&quotations[i])
	}
	wg.Wait()
	return quotations, nil
}

// ListActive returns assembled quotations excluding soft-deleted ones.
func (s *QuotationService) ListActive(ctx context.Context) ([]entity.Quotation, error) {
	quotations, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]entity.Quotation, 0, len(quotations))
	for _, q := range quotations {
		if q.IsActive() {
			active = append(active, q)
		}
	}
	return active, nil
}

// assemble attaches the dependent collections to a quotation in place.
// Services and payments are fetched in parallel, then commissions are fetched
// in parallel across all service lines and merged back by line ID. A failed
// commission fetch leaves that line's prior commission list untouched.
func (s *QuotationService) assemble(ctx context.Context, quotation *entity.Quotation) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		quotation.Services = fetchOrEmpty(s.log, "services", func() ([]entity.QuotationService, error) {
			return s.serviceRepo.ListByQuotation(ctx, quotation.ID)
		})
	}()
	go func() {
		defer wg.Done()
		quotation.Payments = fetchOrEmpty(s.log, "payments", func() ([]entity.QuotationPayment, error) {
			return s.paymentRepo.ListByQuotation(ctx, quotation.ID)
		})
	}()
	wg.Wait()

	s.enrichCommissions(ctx, quotation.Services)
}

// enrichCommissions fetches every service line's commission set in parallel
// and merges results back by line ID. Enrichment is non-destructive: a failed
// fetch preserves the line as it was instead of wiping it.
func (s *QuotationService) enrichCommissions(ctx context.Context, services []entity.QuotationService) {
	type result struct {
		serviceID   int64
		commissions []entity.ServiceCommission
	}

	results := make(chan result, len(services))
	var wg sync.WaitGroup
	for _, svc := range services {
		wg.Add(1)
		go func(serviceID int64) {
			defer wg.Done()
			commissions, err := s.commissionRepo.ListByService(ctx, serviceID)
			if err != nil {
				s.log.Warn().Err(err).Int64("service_id", serviceID).
					Msg("commission fetch failed, line kept as provided")
				return
			}
			results <- result{serviceID: serviceID, commissions: commissions}
		}(svc.ID)
	}
	wg.Wait()
	close(results)

	byID := make(map[int64][]entity.ServiceCommission, len(services))
	for res := range results {
		byID[res.serviceID] = res.commissions
	}
	for i := range services {
		if commissions, ok := byID[services[i].ID]; ok {
			services[i].Commissions = commissions
		}
	}
}

// Create validates a new quotation and submits it, then re-fetches the
// composite so totals and pending amounts come from the backend.
func (s *QuotationService) Create(ctx context.Context, input *repository.CreateQuotationInput) (*entity.Quotation, error) {
	if len(input.Services) == 0 {
		return nil, apperror.NewValidationError("a quotation needs at least one service")
	}
	for _, svc := range input.Services {
		if svc.Price.IsNegative() || svc.Price.IsZero() {
			return nil, apperror.NewValidationError("service price must be greater than zero")
		}
		total := decimal.Zero
		for _, c := range svc.Commissions {
			if c.Percentage.IsNegative() || c.Percentage.IsZero() {
				return nil, apperror.NewValidationError("commission percentage must be greater than zero")
			}
			total = total.Add(c.Percentage)
		}
		if total.GreaterThan(decimal.NewFromInt(100)) {
			return nil, apperror.NewValidationError("commission percentages for a service cannot exceed 100")
		}
	}

	created, err := s.quotationRepo.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, created.ID)
}

// RegisterPayment validates and submits a payment, then re-fetches the
// composite. Pending amounts are never decremented locally; the backend's
// post-mutation values are authoritative.
func (s *QuotationService) RegisterPayment(ctx context.Context, quotationID int64, input *repository.RegisterPaymentInput) (*entity.Quotation, error) {
	payment := entity.QuotationPayment{
		Amount:     input.Amount,
		Method:     input.Method,
		CashAmount: input.CashAmount,
		QRAmount:   input.QRAmount,
	}
	if err := payment.Validate(); err != nil {
		return nil, err
	}

	current, err := s.quotationRepo.FindByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if current.Status.IsDeleted() {
		return nil, apperror.NewValidationError("cannot register a payment on a deleted quotation")
	}
	if input.Amount.GreaterThan(current.PendingAmount) {
		return nil, apperror.NewValidationError(
			"payment " + money.Format(input.Amount) + " exceeds pending amount " + money.Format(current.PendingAmount))
	}

	if err := s.paymentRepo.Create(ctx, quotationID, input); err != nil {
		return nil, err
	}
	return s.Get(ctx, quotationID)
}

// Delete soft-deletes a quotation. The record stays retrievable by ID.
func (s *QuotationService) Delete(ctx context.Context, id int64) error {
	return s.quotationRepo.SoftDelete(ctx, id)
}

// PreviewCommissions computes the commission amounts a set of assignments
// would fix at creation time: price × percentage / 100, rounded half-up to
// cents.
func PreviewCommissions(price decimal.Decimal, assignments []repository.CommissionInput) []entity.ServiceCommission {
	preview := make([]entity.ServiceCommission, 0, len(assignments))
	for _, a := range assignments {
		amount := money.Percentage(price, a.Percentage)
		preview = append(preview, entity.ServiceCommission{
			DoctorID:      a.DoctorID,
			Percentage:    a.Percentage,
			Amount:        amount,
			PendingAmount: amount,
		})
	}
	return preview
}
