package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/internal/domain/enum"
	domainRepo "github.com/dentastore/backoffice-client/internal/domain/repository"
	"github.com/dentastore/backoffice-client/internal/infrastructure/rest"
	"github.com/dentastore/backoffice-client/pkg/money"
)

const quotationResource = "quotations"

type quotationRepository struct {
	client *rest.Client
	log    zerolog.Logger
}

// NewQuotationRepository creates the REST-backed quotation resource client.
func NewQuotationRepository(client *rest.Client, log zerolog.Logger) domainRepo.QuotationRepository {
	return &quotationRepository{client: client, log: log}
}

// quotationWire is the backend shape of a quotation header.
type quotationWire struct {
	ID             int64     `json:"id"`
	Fecha          rest.Date `json:"fecha"`
	NombreCliente  string    `json:"nombre_cliente"`
	Telefono       string    `json:"telefono"`
	Estado         string    `json:"estado"`
	Total          string    `json:"total"`
	MontoPendiente string    `json:"monto_pendiente"`
	UsuarioID      int64     `json:"usuario_id"`
}

type createQuotationWire struct {
	Fecha         rest.Date                    `json:"fecha"`
	NombreCliente string                       `json:"nombre_cliente"`
	Telefono      string                       `json:"telefono"`
	Servicios     []createQuotationServiceWire `json:"servicios"`
}

type createQuotationServiceWire struct {
	ServicioID     int64                  `json:"servicio_id"`
	EspecialidadID int64                  `json:"especialidad_id"`
	Precio         string                 `json:"precio"`
	Comisiones     []createCommissionWire `json:"comisiones,omitempty"`
}

type createCommissionWire struct {
	DoctorID   int64  `json:"doctor_id"`
	Porcentaje string `json:"porcentaje"`
}

type updateQuotationWire struct {
	Fecha         rest.Date `json:"fecha"`
	NombreCliente string    `json:"nombre_cliente"`
	Telefono      string    `json:"telefono"`
}

func (r *quotationRepository) FindAll(ctx context.Context) ([]entity.Quotation, error) {
	var rows []quotationWire
	if err := r.client.Get(ctx, "/cotizaciones", &rows); err != nil {
		return nil, rest.FetchError(err, quotationResource)
	}
	quotations := make([]entity.Quotation, 0, len(rows))
	for _, row := range rows {
		quotations = append(quotations, r.toEntity(row))
	}
	return quotations, nil
}

func (r *quotationRepository) FindByID(ctx context.Context, id int64) (*entity.Quotation, error) {
	var row quotationWire
	if err := r.client.Get(ctx, fmt.Sprintf("/cotizaciones/%d", id), &row); err != nil {
		return nil, rest.FetchError(err, quotationResource)
	}
	quotation := r.toEntity(row)
	return &quotation, nil
}

func (r *quotationRepository) Create(ctx context.Context, input *domainRepo.CreateQuotationInput) (*entity.Quotation, error) {
	body := createQuotationWire{
		Fecha:         rest.Date{Time: input.Date},
		NombreCliente: input.ClientName,
		Telefono:      input.Phone,
		Servicios:     make([]createQuotationServiceWire, 0, len(input.Services)),
	}
	for _, svc := range input.Services {
		line := createQuotationServiceWire{
			ServicioID:     svc.ServiceID,
			EspecialidadID: svc.SpecialtyID,
			Precio:         money.Format(svc.Price),
		}
		for _, c := range svc.Commissions {
			line.Comisiones = append(line.Comisiones, createCommissionWire{
				DoctorID:   c.DoctorID,
				Porcentaje: money.Format(c.Percentage),
			})
		}
		body.Servicios = append(body.Servicios, line)
	}

	var row quotationWire
	if err := r.client.Post(ctx, "/cotizaciones", body, &row); err != nil {
		return nil, rest.FetchError(err, quotationResource)
	}
	quotation := r.toEntity(row)
	return &quotation, nil
}

func (r *quotationRepository) Update(ctx context.Context, id int64, input *domainRepo.UpdateQuotationInput) (*entity.Quotation, error) {
	body := updateQuotationWire{
		Fecha:         rest.Date{Time: input.Date},
		NombreCliente: input.ClientName,
		Telefono:      input.Phone,
	}
	var row quotationWire
	if err := r.client.Put(ctx, fmt.Sprintf("/cotizaciones/%d", id), body, &row); err != nil {
		return nil, rest.FetchError(err, quotationResource)
	}
	quotation := r.toEntity(row)
	return &quotation, nil
}

func (r *quotationRepository) SoftDelete(ctx context.Context, id int64) error {
	body := map[string]string{"estado": string(enum.QuotationDeleted)}
	if err := r.client.Patch(ctx, fmt.Sprintf("/cotizaciones/%d", id), body, nil); err != nil {
		return rest.FetchError(err, quotationResource)
	}
	return nil
}

func (r *quotationRepository) toEntity(row quotationWire) entity.Quotation {
	status, ok := enum.ParseQuotationStatus(row.Estado)
	if !ok {
		rest.CoercedEnum(r.log, quotationResource, "estado", row.Estado)
	}
	return entity.Quotation{
		ID:            row.ID,
		Date:          row.Fecha.Time,
		ClientName:    row.NombreCliente,
		Phone:         row.Telefono,
		Status:        status,
		Total:         rest.Amount(r.log, quotationResource, "total", row.Total),
		PendingAmount: rest.Amount(r.log, quotationResource, "monto_pendiente", row.MontoPendiente),
		UserID:        row.UsuarioID,
		Services:      []entity.QuotationService{},
		Payments:      []entity.QuotationPayment{},
	}
}
