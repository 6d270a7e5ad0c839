package repository

import (
	"context"
	"time"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
)

// ConsultationRepository defines the resource client for clinic visit
// records. Consultations are a financial-record resource: deletion is a
// status PATCH, not a physical DELETE.
type ConsultationRepository interface {
	FindAll(ctx context.Context) ([]entity.Consultation, error)
	FindByID(ctx context.Context, id int64) (*entity.Consultation, error)
	Create(ctx context.Context, input *ConsultationInput) (*entity.Consultation, error)
	SoftDelete(ctx context.Context, id int64) error
}

// ConsultationDetailRepository fetches the detail lines of one consultation.
type ConsultationDetailRepository interface {
	ListByConsultation(ctx context.Context, consultationID int64) ([]entity.ConsultationDetail, error)
}

// ConsultationInput carries the fields for a new consultation.
type ConsultationInput struct {
	PatientName string
	Date        time.Time
	Reason      string
	Details     []ConsultationDetailInput
}

// ConsultationDetailInput is one detail line of a new consultation.
type ConsultationDetailInput struct {
	Tooth       string
	Description string
}
