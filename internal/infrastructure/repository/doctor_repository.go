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

const (
	doctorResource    = "doctors"
	specialtyResource = "specialties"
)

type doctorRepository struct {
	client *rest.Client
	log    zerolog.Logger
}

// NewDoctorRepository creates the REST-backed doctor resource client.
func NewDoctorRepository(client *rest.Client, log zerolog.Logger) domainRepo.DoctorRepository {
	return &doctorRepository{client: client, log: log}
}

// doctorWire is the backend shape of a doctor.
type doctorWire struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Apellido    string `json:"apellido"`
	Telefono    string `json:"telefono"`
	TipoSalario string `json:"tipo_salario"`
	SueldoBase  string `json:"sueldo_base"`
}

type doctorInputWire struct {
	Nombre         string  `json:"nombre"`
	Apellido       string  `json:"apellido"`
	Telefono       string  `json:"telefono"`
	TipoSalario    string  `json:"tipo_salario"`
	SueldoBase     string  `json:"sueldo_base"`
	Especialidades []int64 `json:"especialidades,omitempty"`
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	var rows []doctorWire
	if err := r.client.Get(ctx, "/doctores", &rows); err != nil {
		return nil, rest.FetchError(err, doctorResource)
	}
	doctors := make([]entity.Doctor, 0, len(rows))
	for _, row := range rows {
		doctors = append(doctors, r.toEntity(row))
	}
	return doctors, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id int64) (*entity.Doctor, error) {
	var row doctorWire
	if err := r.client.Get(ctx, fmt.Sprintf("/doctores/%d", id), &row); err != nil {
		return nil, rest.FetchError(err, doctorResource)
	}
	doctor := r.toEntity(row)
	return &doctor, nil
}

func (r *doctorRepository) Create(ctx context.Context, input *domainRepo.DoctorInput) (*entity.Doctor, error) {
	var row doctorWire
	if err := r.client.Post(ctx, "/doctores", toDoctorWire(input), &row); err != nil {
		return nil, rest.FetchError(err, doctorResource)
	}
	doctor := r.toEntity(row)
	return &doctor, nil
}

func (r *doctorRepository) Update(ctx context.Context, id int64, input *domainRepo.DoctorInput) (*entity.Doctor, error) {
	var row doctorWire
	if err := r.client.Put(ctx, fmt.Sprintf("/doctores/%d", id), toDoctorWire(input), &row); err != nil {
		return nil, rest.FetchError(err, doctorResource)
	}
	doctor := r.toEntity(row)
	return &doctor, nil
}

func (r *doctorRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, fmt.Sprintf("/doctores/%d", id)); err != nil {
		return rest.FetchError(err, doctorResource)
	}
	return nil
}

func toDoctorWire(input *domainRepo.DoctorInput) doctorInputWire {
	return doctorInputWire{
		Nombre:         input.FirstName,
		Apellido:       input.LastName,
		Telefono:       input.Phone,
		TipoSalario:    string(input.SalaryType),
		SueldoBase:     money.Format(input.BaseSalary),
		Especialidades: input.SpecialtyIDs,
	}
}

func (r *doctorRepository) toEntity(row doctorWire) entity.Doctor {
	salaryType, ok := enum.ParseSalaryType(row.TipoSalario)
	if !ok {
		rest.CoercedEnum(r.log, doctorResource, "tipo_salario", row.TipoSalario)
	}
	return entity.Doctor{
		ID:          row.ID,
		FirstName:   row.Nombre,
		LastName:    row.Apellido,
		Phone:       row.Telefono,
		SalaryType:  salaryType,
		BaseSalary:  rest.Amount(r.log, doctorResource, "sueldo_base", row.SueldoBase),
		Specialties: []entity.Specialty{},
	}
}

type specialtyRepository struct {
	client *rest.Client
	log    zerolog.Logger
}

// NewSpecialtyRepository creates the REST-backed specialty resource client.
func NewSpecialtyRepository(client *rest.Client, log zerolog.Logger) domainRepo.SpecialtyRepository {
	return &specialtyRepository{client: client, log: log}
}

// specialtyWire is the backend shape of a specialty.
type specialtyWire struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

func (r *specialtyRepository) FindAll(ctx context.Context) ([]entity.Specialty, error) {
	var rows []specialtyWire
	if err := r.client.Get(ctx, "/especialidades", &rows); err != nil {
		return nil, rest.FetchError(err, specialtyResource)
	}
	return toSpecialties(rows), nil
}

func (r *specialtyRepository) ListByDoctor(ctx context.Context, doctorID int64) ([]entity.Specialty, error) {
	var rows []specialtyWire
	if err := r.client.Get(ctx, fmt.Sprintf("/doctores/%d/especialidades", doctorID), &rows); err != nil {
		return nil, rest.FetchError(err, specialtyResource)
	}
	return toSpecialties(rows), nil
}

func toSpecialties(rows []specialtyWire) []entity.Specialty {
	specialties := make([]entity.Specialty, 0, len(rows))
	for _, row := range rows {
		specialties = append(specialties, entity.Specialty{ID: row.ID, Name: row.Nombre})
	}
	return specialties
}
