package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	domainRepo "github.com/dentastore/backoffice-client/internal/domain/repository"
	"github.com/dentastore/backoffice-client/internal/infrastructure/rest"
)

const (
	quotationServiceResource = "quotation services"
	commissionResource       = "commissions"
)

type quotationServiceRepository struct {
	client *rest.Client
	log    zerolog.Logger
}

// NewQuotationServiceRepository creates the sub-resource fetcher for a
// quotation's service lines.
func NewQuotationServiceRepository(client *rest.Client, log zerolog.Logger) domainRepo.QuotationServiceRepository {
	return &quotationServiceRepository{client: client, log: log}
}

// quotationServiceWire is the backend shape of a quoted service line.
type quotationServiceWire struct {
	ID             int64  `json:"id"`
	ServicioID     int64  `json:"servicio_id"`
	EspecialidadID int64  `json:"especialidad_id"`
	Precio         string `json:"precio"`
}

func (r *quotationServiceRepository) ListByQuotation(ctx context.Context, quotationID int64) ([]entity.QuotationService, error) {
	var rows []quotationServiceWire
	if err := r.client.Get(ctx, fmt.Sprintf("/cotizaciones/%d/servicios", quotationID), &rows); err != nil {
		return nil, rest.FetchError(err, quotationServiceResource)
	}
	services := make([]entity.QuotationService, 0, len(rows))
	for _, row := range rows {
		services = append(services, entity.QuotationService{
			ID:          row.ID,
			ServiceID:   row.ServicioID,
			SpecialtyID: row.EspecialidadID,
			Price:       rest.Amount(r.log, quotationServiceResource, "precio", row.Precio),
			Commissions: []entity.ServiceCommission{},
		})
	}
	return services, nil
}

type commissionRepository struct {
	client *rest.Client
	log    zerolog.Logger
}

// NewCommissionRepository creates the sub-resource fetcher for a service
// line's per-doctor commissions.
func NewCommissionRepository(client *rest.Client, log zerolog.Logger) domainRepo.CommissionRepository {
	return &commissionRepository{client: client, log: log}
}

// commissionWire is the backend shape of one doctor's commission assignment.
type commissionWire struct {
	DoctorID       int64  `json:"doctor_id"`
	Porcentaje     string `json:"porcentaje"`
	Monto          string `json:"monto"`
	MontoPendiente string `json:"monto_pendiente"`
}

func (r *commissionRepository) ListByService(ctx context.Context, quotationServiceID int64) ([]entity.ServiceCommission, error) {
	var rows []commissionWire
	if err := r.client.Get(ctx, fmt.Sprintf("/servicios-cotizacion/%d/comisiones", quotationServiceID), &rows); err != nil {
		return nil, rest.FetchError(err, commissionResource)
	}
	commissions := make([]entity.ServiceCommission, 0, len(rows))
	for _, row := range rows {
		commissions = append(commissions, entity.ServiceCommission{
			DoctorID:      row.DoctorID,
			Percentage:    rest.Amount(r.log, commissionResource, "porcentaje", row.Porcentaje),
			Amount:        rest.Amount(r.log, commissionResource, "monto", row.Monto),
			PendingAmount: rest.Amount(r.log, commissionResource, "monto_pendiente", row.MontoPendiente),
		})
	}
	return commissions, nil
}
