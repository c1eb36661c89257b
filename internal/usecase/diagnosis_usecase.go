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

type DiagnosisUsecase interface {
	GetAllDiagnoses(ctx context.Context) ([]*entity.Diagnosis, error)
	GetUserDiagnoses(ctx context.Context) ([]*entity.Diagnosis, error)
	GetDiagnosisByID(ctx context.Context, id string) (*entity.Diagnosis, error)
	AddDiagnosis(ctx context.Context, req *dto.CreateDiagnosisRequest) (*entity.Diagnosis, error)
	UpdateDiagnosis(ctx context.Context, id string, req *dto.UpdateDiagnosisRequest) (*entity.Diagnosis, error)
	DeleteDiagnosis(ctx context.Context, id string) error
	GetActiveDiagnoses(ctx context.Context) ([]*entity.Diagnosis, error)
	FilterDiagnoses(ctx context.Context, filter entity.ListFilter) ([]*entity.Diagnosis, error)
}

type diagnosisUsecase struct {
	diagnoses *recordStore[*entity.Diagnosis]
	doctors   *recordStore[*entity.Doctor]
}

func NewDiagnosisUsecase(
	storage repository.Storage,
	log *logrus.Logger,
	session service.SessionService,
	diagnosisRepo repository.DiagnosisRepository,
	doctorRepo repository.DoctorRepository,
) DiagnosisUsecase {
	return &diagnosisUsecase{
		diagnoses: newRecordStore(storage, log, session, diagnosisRepo, ErrDiagnosisNotFound, "diagnoses"),
		doctors:   newRecordStore(storage, log, session, doctorRepo, ErrDoctorNotFound, "doctors"),
	}
}

func (u *diagnosisUsecase) GetAllDiagnoses(ctx context.Context) ([]*entity.Diagnosis, error) {
	return u.diagnoses.all(ctx)
}

func (u *diagnosisUsecase) GetUserDiagnoses(ctx context.Context) ([]*entity.Diagnosis, error) {
	return u.diagnoses.owned(ctx)
}

func (u *diagnosisUsecase) GetDiagnosisByID(ctx context.Context, id string) (*entity.Diagnosis, error) {
	return u.diagnoses.byID(ctx, id)
}

func (u *diagnosisUsecase) AddDiagnosis(ctx context.Context, req *dto.CreateDiagnosisRequest) (*entity.Diagnosis, error) {
	status := entity.ActiveStatus(req.Status)
	if status == "" {
		status = entity.StatusActive
	}

	diagnosis := &entity.Diagnosis{
		Condition:     req.Condition,
		DiagnosisDate: req.DiagnosisDate,
		DoctorID:      req.DoctorID,
		Status:        status,
		Severity:      entity.Severity(req.Severity),
		Notes:         req.Notes,
	}

	return u.diagnoses.add(ctx, diagnosis)
}

func (u *diagnosisUsecase) UpdateDiagnosis(ctx context.Context, id string, req *dto.UpdateDiagnosisRequest) (*entity.Diagnosis, error) {
	return u.diagnoses.update(ctx, id, func(d *entity.Diagnosis) {
		if req.Condition != nil {
			d.Condition = *req.Condition
		}
		if req.DiagnosisDate != nil {
			d.DiagnosisDate = *req.DiagnosisDate
		}
		if req.DoctorID != nil {
			d.DoctorID = *req.DoctorID
		}
		if req.Status != nil {
			d.Status = entity.ActiveStatus(*req.Status)
		}
		if req.Severity != nil {
			d.Severity = entity.Severity(*req.Severity)
		}
		if req.Notes != nil {
			d.Notes = *req.Notes
		}
	})
}

func (u *diagnosisUsecase) DeleteDiagnosis(ctx context.Context, id string) error {
	return u.diagnoses.remove(ctx, id)
}

func (u *diagnosisUsecase) GetActiveDiagnoses(ctx context.Context) ([]*entity.Diagnosis, error) {
	diagnoses, err := u.diagnoses.owned(ctx)
	if err != nil {
		return diagnoses, err
	}
	return keep(diagnoses, (*entity.Diagnosis).IsActive), nil
}

func (u *diagnosisUsecase) FilterDiagnoses(ctx context.Context, filter entity.ListFilter) ([]*entity.Diagnosis, error) {
	diagnoses, err := u.diagnoses.owned(ctx)
	if err != nil {
		return diagnoses, err
	}

	doctorNames, err := u.doctors.labels(ctx, doctorName)
	if err != nil {
		return []*entity.Diagnosis{}, err
	}

	filtered := keep(diagnoses, func(d *entity.Diagnosis) bool {
		return filter.MatchStatus(string(d.Status)) &&
			filter.MatchSearch(d.Condition, d.Notes, doctorNames[d.DoctorID])
	})

	sortByFilter(filtered, filter, diagnosisDate, func(d *entity.Diagnosis) string { return d.Condition })
	return filtered, nil
}

func diagnosisDate(d *entity.Diagnosis) time.Time {
	return entity.DateOr(d.DiagnosisDate, d.CreatedAt)
}
