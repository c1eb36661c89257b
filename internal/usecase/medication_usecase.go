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

type MedicationUsecase interface {
	GetAllMedications(ctx context.Context) ([]*entity.Medication, error)
	GetUserMedications(ctx context.Context) ([]*entity.Medication, error)
	GetMedicationByID(ctx context.Context, id string) (*entity.Medication, error)
	AddMedication(ctx context.Context, req *dto.CreateMedicationRequest) (*entity.Medication, error)
	UpdateMedication(ctx context.Context, id string, req *dto.UpdateMedicationRequest) (*entity.Medication, error)
	DeleteMedication(ctx context.Context, id string) error
	GetActiveMedications(ctx context.Context) ([]*entity.Medication, error)
	FilterMedications(ctx context.Context, filter entity.ListFilter) ([]*entity.Medication, error)
}

type medicationUsecase struct {
	medications *recordStore[*entity.Medication]
}

func NewMedicationUsecase(
	storage repository.Storage,
	log *logrus.Logger,
	session service.SessionService,
	medicationRepo repository.MedicationRepository,
) MedicationUsecase {
	return &medicationUsecase{
		medications: newRecordStore(storage, log, session, medicationRepo, ErrMedicationNotFound, "medications"),
	}
}

func (u *medicationUsecase) GetAllMedications(ctx context.Context) ([]*entity.Medication, error) {
	return u.medications.all(ctx)
}

func (u *medicationUsecase) GetUserMedications(ctx context.Context) ([]*entity.Medication, error) {
	return u.medications.owned(ctx)
}

func (u *medicationUsecase) GetMedicationByID(ctx context.Context, id string) (*entity.Medication, error) {
	return u.medications.byID(ctx, id)
}

func (u *medicationUsecase) AddMedication(ctx context.Context, req *dto.CreateMedicationRequest) (*entity.Medication, error) {
	status := entity.ActiveStatus(req.Status)
	if status == "" {
		status = entity.StatusActive
	}

	medication := &entity.Medication{
		Name:      req.Name,
		Dosage:    req.Dosage,
		Frequency: req.Frequency,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    status,
		Notes:     req.Notes,
	}

	return u.medications.add(ctx, medication)
}

func (u *medicationUsecase) UpdateMedication(ctx context.Context, id string, req *dto.UpdateMedicationRequest) (*entity.Medication, error) {
	return u.medications.update(ctx, id, func(m *entity.Medication) {
		if req.Name != nil {
			m.Name = *req.Name
		}
		if req.Dosage != nil {
			m.Dosage = *req.Dosage
		}
		if req.Frequency != nil {
			m.Frequency = *req.Frequency
		}
		if req.StartDate != nil {
			m.StartDate = *req.StartDate
		}
		if req.EndDate != nil {
			m.EndDate = *req.EndDate
		}
		if req.Status != nil {
			m.Status = entity.ActiveStatus(*req.Status)
		}
		if req.Notes != nil {
			m.Notes = *req.Notes
		}
	})
}

func (u *medicationUsecase) DeleteMedication(ctx context.Context, id string) error {
	return u.medications.remove(ctx, id)
}

func (u *medicationUsecase) GetActiveMedications(ctx context.Context) ([]*entity.Medication, error) {
	medications, err := u.medications.owned(ctx)
	if err != nil {
		return medications, err
	}
	return keep(medications, (*entity.Medication).IsActive), nil
}

func (u *medicationUsecase) FilterMedications(ctx context.Context, filter entity.ListFilter) ([]*entity.Medication, error) {
	medications, err := u.medications.owned(ctx)
	if err != nil {
		return medications, err
	}

	filtered := keep(medications, func(m *entity.Medication) bool {
		return filter.MatchStatus(string(m.Status)) &&
			filter.MatchSearch(m.Name, m.Dosage, m.Frequency, m.Notes)
	})

	sortByFilter(filtered, filter, medicationDate, func(m *entity.Medication) string { return m.Name })
	return filtered, nil
}

func medicationDate(m *entity.Medication) time.Time {
	return entity.DateOr(m.StartDate, m.CreatedAt)
}
