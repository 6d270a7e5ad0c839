package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/internal/domain/enum"
)

// DoctorRepository defines the resource client for doctors. Doctors are a
// catalog resource: deletion is physical, not a status transition.
type DoctorRepository interface {
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	FindByID(ctx context.Context, id int64) (*entity.Doctor, error)
	Create(ctx context.Context, input *DoctorInput) (*entity.Doctor, error)
	Update(ctx context.Context, id int64, input *DoctorInput) (*entity.Doctor, error)
	Delete(ctx context.Context, id int64) error
}

// SpecialtyRepository defines the resource client for specialties plus the
// per-doctor sub-fetch.
type SpecialtyRepository interface {
	FindAll(ctx context.Context) ([]entity.Specialty, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]entity.Specialty, error)
}

// DoctorInput carries the fields for creating or updating a doctor.
type DoctorInput struct {
	FirstName    string
	LastName     string
	Phone        string
	SalaryType   enum.SalaryType
	BaseSalary   decimal.Decimal
	SpecialtyIDs []int64
}
