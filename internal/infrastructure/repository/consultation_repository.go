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
	consultationResource       = "consultations"
	consultationDetailResource = "consultation details"
)

type consultationRepository struct {
	client *rest.Client
	log    zerolog.Logger
}

// NewConsultationRepository creates the REST-backed consultation resource
// client.
func NewConsultationRepository(client *rest.Client, log zerolog.Logger) domainRepo.ConsultationRepository {
	return &consultationRepository{client: client, log: log}
}

// consultationWire is the backend shape of a clinic visit record.
type consultationWire struct {
	ID       int64     `json:"id"`
	Paciente string    `json:"paciente"`
	Fecha    rest.Date `json:"fecha"`
	Motivo   string    `json:"motivo"`
}

type consultationInputWire struct {
	Paciente string                        `json:"paciente"`
	Fecha    rest.Date                     `json:"fecha"`
	Motivo   string                        `json:"motivo"`
	Detalles []consultationDetailInputWire `json:"detalles,omitempty"`
}

type consultationDetailInputWire struct {
	Pieza       string `json:"pieza,omitempty"`
	Descripcion string `json:"descripcion"`
}

func (r *consultationRepository) FindAll(ctx context.Context) ([]entity.Consultation, error) {
	var rows []consultationWire
	if err := r.client.Get(ctx, "/consultas", &rows); err != nil {
		return nil, rest.FetchError(err, consultationResource)
	}
	consultations := make([]entity.Consultation, 0, len(rows))
	for _, row := range rows {
		consultations = append(consultations, toConsultation(row))
	}
	return consultations, nil
}

func (r *consultationRepository) FindByID(ctx context.Context, id int64) (*entity.Consultation, error) {
	var row consultationWire
	if err := r.client.Get(ctx, fmt.Sprintf("/consultas/%d", id), &row); err != nil {
		return nil, rest.FetchError(err, consultationResource)
	}
	consultation := toConsultation(row)
	return &consultation, nil
}

func (r *consultationRepository) Create(ctx context.Context, input *domainRepo.ConsultationInput) (*entity.Consultation, error) {
	body := consultationInputWire{
		Paciente: input.PatientName,
		Fecha:    rest.Date{Time: input.Date},
		Motivo:   input.Reason,
	}
	for _, d := range input.Details {
		body.Detalles = append(body.Detalles, consultationDetailInputWire{
			Pieza:       d.Tooth,
			Descripcion: d.Description,
		})
	}
	var row consultationWire
	if err := r.client.Post(ctx, "/consultas", body, &row); err != nil {
		return nil, rest.FetchError(err, consultationResource)
	}
	consultation := toConsultation(row)
	return &consultation, nil
}

func (r *consultationRepository) SoftDelete(ctx context.Context, id int64) error {
	body := map[string]string{"estado": "eliminado"}
	if err := r.client.Patch(ctx, fmt.Sprintf("/consultas/%d", id), body, nil); err != nil {
		return rest.FetchError(err, consultationResource)
	}
	return nil
}

func toConsultation(row consultationWire) entity.Consultation {
	return entity.Consultation{
		ID:          row.ID,
		PatientName: row.Paciente,
		Date:        row.Fecha.Time,
		Reason:      row.Motivo,
		Details:     []entity.ConsultationDetail{},
	}
}

type consultationDetailRepository struct {
	client *rest.Client
	log    zerolog.Logger
}

// NewConsultationDetailRepository creates the sub-resource fetcher for a
// consultation's detail lines.
func NewConsultationDetailRepository(client *rest.Client, log zerolog.Logger) domainRepo.ConsultationDetailRepository {
	return &consultationDetailRepository{client: client, log: log}
}

// consultationDetailWire is the backend shape of a detail line.
type consultationDetailWire struct {
	ID          int64  `json:"id"`
	ConsultaID  int64  `json:"consulta_id"`
	Pieza       string `json:"pieza"`
	Descripcion string `json:"descripcion"`
}

func (r *consultationDetailRepository) ListByConsultation(ctx context.Context, consultationID int64) ([]entity.ConsultationDetail, error) {
	var rows []consultationDetailWire
	if err := r.client.Get(ctx, fmt.Sprintf("/consultas/%d/detalles", consultationID), &rows); err != nil {
		return nil, rest.FetchError(err, consultationDetailResource)
	}
	details := make([]entity.ConsultationDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, entity.ConsultationDetail{
			ID:             row.ID,
			ConsultationID: row.ConsultaID,
			Tooth:          row.Pieza,
			Description:    row.Descripcion,
		})
	}
	return details, nil
}
