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

type fakeDoctorRepo struct {
	doctors []entity.Doctor
	deleted []int64
}

func (f *fakeDoctorRepo) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	out := make([]entity.Doctor, len(f.doctors))
	copy(out, f.doctors)
	return out, nil
}

func (f *fakeDoctorRepo) FindByID(ctx context.Context, id int64) (*entity.Doctor, error) {
	for _, d := range f.doctors {
		if d.ID == id {
			copied := d
			return &copied, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeDoctorRepo) Create(ctx context.Context, input *domainRepo.DoctorInput) (*entity.Doctor, error) {
	doctor := entity.Doctor{ID: int64(len(f.doctors) + 1), FirstName: input.FirstName, LastName: input.LastName}
	f.doctors = append(f.doctors, doctor)
	return &doctor, nil
}

func (f *fakeDoctorRepo) Update(ctx context.Context, id int64, input *domainRepo.DoctorInput) (*entity.Doctor, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeDoctorRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeSpecialtyRepo struct {
	byDoctor map[int64][]entity.Specialty
	errFor   map[int64]error
}

func (f *fakeSpecialtyRepo) FindAll(ctx context.Context) ([]entity.Specialty, error) {
	return nil, nil
}

func (f *fakeSpecialtyRepo) ListByDoctor(ctx context.Context, doctorID int64) ([]entity.Specialty, error) {
	if err := f.errFor[doctorID]; err != nil {
		return nil, err
	}
	return f.byDoctor[doctorID], nil
}

func newDoctorFixture() (*fakeDoctorRepo, *fakeSpecialtyRepo, *DoctorService) {
	doctorRepo := &fakeDoctorRepo{doctors: []entity.Doctor{
		{ID: 3, FirstName: "Carla", LastName: "Mendez", SalaryType: enum.SalaryCommission},
		{ID: 4, FirstName: "Hugo", LastName: "Vargas", SalaryType: enum.SalarySalaried},
		{ID: 5, FirstName: "Ines", LastName: "Paz", SalaryType: enum.SalaryCommission},
	}}
	specialtyRepo := &fakeSpecialtyRepo{
		byDoctor: map[int64][]entity.Specialty{
			3: {{ID: 2, Name: "Ortodoncia"}},
		},
		errFor: map[int64]error{},
	}
	// Quotation 1 is active and carries commissions for doctors 3 and 4;
	// quotation 3 is deleted and must not count.
	quotationRepo := &fakeQuotationRepo{quotations: []entity.Quotation{
		{ID: 1, Status: enum.QuotationPending},
		{ID: 3, Status: enum.QuotationDeleted},
	}}
	serviceRepo := &fakeServiceRepo{
		byQuotation: map[int64][]entity.QuotationService{
			1: {{ID: 11}, {ID: 12}},
			3: {{ID: 31}},
		},
		errFor: map[int64]error{},
	}
	commissionRepo := &fakeCommissionRepo{
		byService: map[int64][]entity.ServiceCommission{
			11: {{DoctorID: 3, Amount: money.MustParse("120.00"), PendingAmount: money.MustParse("60.00")}},
			12: {
				{DoctorID: 3, Amount: money.MustParse("75.00"), PendingAmount: money.MustParse("75.00")},
				{DoctorID: 4, Amount: money.MustParse("50.00"), PendingAmount: money.MustParse("0.00")},
			},
			31: {{DoctorID: 3, Amount: money.MustParse("999.00"), PendingAmount: money.MustParse("999.00")}},
		},
		errFor: map[int64]error{},
	}
	svc := NewDoctorService(doctorRepo, specialtyRepo, quotationRepo, serviceRepo, commissionRepo, zerolog.Nop())
	return doctorRepo, specialtyRepo, svc
}

func TestDoctorGetAttachesSummary(t *testing.T) {
	_, _, svc := newDoctorFixture()

	doctor, err := svc.Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(doctor.Specialties) != 1 || doctor.Specialties[0].Name != "Ortodoncia" {
		t.Errorf("specialties = %+v", doctor.Specialties)
	}
	if doctor.Commissions == nil {
		t.Fatal("commission summary missing")
	}
	// 120 + 75 earned across active quotations; the deleted quotation's 999
	// stays out.
	if money.Format(doctor.Commissions.TotalEarned) != "195.00" {
		t.Errorf("earned = %s, want 195.00", doctor.Commissions.TotalEarned)
	}
	if money.Format(doctor.Commissions.Pending) != "135.00" {
		t.Errorf("pending = %s, want 135.00", doctor.Commissions.Pending)
	}
	if money.Format(doctor.Commissions.TotalPaid) != "60.00" {
		t.Errorf("paid = %s, want 60.00", doctor.Commissions.TotalPaid)
	}
}

func TestDoctorListMergesByID(t *testing.T) {
	_, specialtyRepo, svc := newDoctorFixture()
	specialtyRepo.errFor[4] = errors.New("backend down")

	doctors, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(doctors) != 3 {
		t.Fatalf("got %d doctors", len(doctors))
	}

	byID := map[int64]entity.Doctor{}
	for _, d := range doctors {
		byID[d.ID] = d
	}
	if byID[3].Commissions == nil || money.Format(byID[3].Commissions.TotalEarned) != "195.00" {
		t.Errorf("doctor 3 summary: %+v", byID[3].Commissions)
	}
	if byID[4].Commissions == nil || money.Format(byID[4].Commissions.TotalPaid) != "50.00" {
		t.Errorf("doctor 4 summary: %+v", byID[4].Commissions)
	}
	// No commissions anywhere: no summary rather than a zero one.
	if byID[5].Commissions != nil {
		t.Errorf("doctor 5 summary = %+v, want nil", byID[5].Commissions)
	}
	// The failed specialty fetch degrades to empty for that doctor only.
	if len(byID[4].Specialties) != 0 {
		t.Errorf("doctor 4 specialties = %+v", byID[4].Specialties)
	}
	if len(byID[3].Specialties) != 1 {
		t.Errorf("doctor 3 specialties = %+v", byID[3].Specialties)
	}
}

func TestDoctorDeleteIsPhysical(t *testing.T) {
	doctorRepo, _, svc := newDoctorFixture()
	if err := svc.Delete(context.Background(), 4); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(doctorRepo.deleted) != 1 || doctorRepo.deleted[0] != 4 {
		t.Errorf("deleted = %+v", doctorRepo.deleted)
	}
}
