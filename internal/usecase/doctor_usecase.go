package usecase

import (
	"context"
	"time"

	"medical-tracker/internal/delivery/dto"
	"medical-tracker/internal/domain/entity"
	"medical-tracker/internal/domain/repository"
	"medical-tracker/internal/service"

	"github.com/sirupsen/logrus"
)

type DoctorUsecase interface {
	GetAllDoctors(ctx context.Context) ([]*entity.Doctor, error)
	GetUserDoctors(ctx context.Context) ([]*entity.Doctor, error)
	GetDoctorByID(ctx context.Context, id string) (*entity.Doctor, error)
	AddDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*entity.Doctor, error)
	UpdateDoctor(ctx context.Context, id string, req *dto.UpdateDoctorRequest) (*entity.Doctor, error)
	DeleteDoctor(ctx context.Context, id string) error
	FilterDoctors(ctx context.Context, filter entity.ListFilter) ([]*entity.Doctor, error)
	GetDoctorName(ctx context.Context, doctorID string) string
	GetDoctorNames(ctx context.Context) (map[string]string, error)
}

type doctorUsecase struct {
	doctors *recordStore[*entity.Doctor]
}

func NewDoctorUsecase(
	storage repository.Storage,
	log *logrus.Logger,
	session service.SessionService,
	doctorRepo repository.DoctorRepository,
) DoctorUsecase {
	return &doctorUsecase{
		doctors: newRecordStore(storage, log, session, doctorRepo, ErrDoctorNotFound, "doctors"),
	}
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) ([]*entity.Doctor, error) {
	return u.doctors.all(ctx)
}

func (u *doctorUsecase) GetUserDoctors(ctx context.Context) ([]*entity.Doctor, error) {
	return u.doctors.owned(ctx)
}

func (u *doctorUsecase) GetDoctorByID(ctx context.Context, id string) (*entity.Doctor, error) {
	return u.doctors.byID(ctx, id)
}

func (u *doctorUsecase) AddDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*entity.Doctor, error) {
	doctor := &entity.Doctor{
		Name:      req.Name,
		Specialty: req.Specialty,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		Hours:     req.Hours,
		Contact:   req.Contact,
		Notes:     req.Notes,
	}

	return u.doctors.add(ctx, doctor)
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id string, req *dto.UpdateDoctorRequest) (*entity.Doctor, error) {
	return u.doctors.update(ctx, id, func(d *entity.Doctor) {
		if req.Name != nil {
			d.Name = *req.Name
		}
		if req.Specialty != nil {
			d.Specialty = *req.Specialty
		}
		if req.Phone != nil {
			d.Phone = *req.Phone
		}
		if req.Email != nil {
			d.Email = *req.Email
		}
		if req.Address != nil {
			d.Address = *req.Address
		}
		if req.Hours != nil {
			d.Hours = *req.Hours
		}
		if req.Contact != nil {
			d.Contact = *req.Contact
		}
		if req.Notes != nil {
			d.Notes = *req.Notes
		}
	})
}

// DeleteDoctor removes the doctor only. Records pointing at it keep the dangling id.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, id string) error {
	return u.doctors.remove(ctx, id)
}

func (u *doctorUsecase) FilterDoctors(ctx context.Context, filter entity.ListFilter) ([]*entity.Doctor, error) {
	doctors, err := u.doctors.owned(ctx)
	if err != nil {
		return doctors, err
	}

	filtered := keep(doctors, func(d *entity.Doctor) bool {
		return filter.MatchSearch(d.Name, d.Specialty, d.Phone, d.Email, d.Address, d.Notes)
	})

	sortByFilter(filtered, filter, func(d *entity.Doctor) time.Time { return d.CreatedAt }, doctorName)
	return filtered, nil
}

// GetDoctorName resolves a doctor reference, "" when dangling.
func (u *doctorUsecase) GetDoctorName(ctx context.Context, doctorID string) string {
	return u.doctors.label(ctx, doctorID, doctorName)
}

func (u *doctorUsecase) GetDoctorNames(ctx context.Context) (map[string]string, error) {
	return u.doctors.labels(ctx, doctorName)
}

func doctorName(d *entity.Doctor) string {
	return d.Name
}
