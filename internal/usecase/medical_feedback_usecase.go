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

type MedicalFeedbackUsecase interface {
	GetAllMedicalFeedback(ctx context.Context) ([]*entity.MedicalFeedback, error)
	GetUserMedicalFeedback(ctx context.Context) ([]*entity.MedicalFeedback, error)
	GetMedicalFeedbackByID(ctx context.Context, id string) (*entity.MedicalFeedback, error)
	AddMedicalFeedback(ctx context.Context, req *dto.CreateMedicalFeedbackRequest) (*entity.MedicalFeedback, error)
	UpdateMedicalFeedback(ctx context.Context, id string, req *dto.UpdateMedicalFeedbackRequest) (*entity.MedicalFeedback, error)
	DeleteMedicalFeedback(ctx context.Context, id string) error
	GetRecentMedicalFeedback(ctx context.Context, limit int) ([]*entity.MedicalFeedback, error)
	FilterMedicalFeedback(ctx context.Context, filter entity.ListFilter) ([]*entity.MedicalFeedback, error)
}

type medicalFeedbackUsecase struct {
	feedback     *recordStore[*entity.MedicalFeedback]
	appointments *recordStore[*entity.Appointment]
}

func NewMedicalFeedbackUsecase(
	storage repository.Storage,
	log *logrus.Logger,
	session service.SessionService,
	feedbackRepo repository.MedicalFeedbackRepository,
	appointmentRepo repository.AppointmentRepository,
) MedicalFeedbackUsecase {
	return &medicalFeedbackUsecase{
		feedback:     newRecordStore(storage, log, session, feedbackRepo, ErrMedicalFeedbackNotFound, "medical feedback"),
		appointments: newRecordStore(storage, log, session, appointmentRepo, ErrAppointmentNotFound, "appointments"),
	}
}

func (u *medicalFeedbackUsecase) GetAllMedicalFeedback(ctx context.Context) ([]*entity.MedicalFeedback, error) {
	return u.feedback.all(ctx)
}

func (u *medicalFeedbackUsecase) GetUserMedicalFeedback(ctx context.Context) ([]*entity.MedicalFeedback, error) {
	return u.feedback.owned(ctx)
}

func (u *medicalFeedbackUsecase) GetMedicalFeedbackByID(ctx context.Context, id string) (*entity.MedicalFeedback, error) {
	return u.feedback.byID(ctx, id)
}

func (u *medicalFeedbackUsecase) AddMedicalFeedback(ctx context.Context, req *dto.CreateMedicalFeedbackRequest) (*entity.MedicalFeedback, error) {
	feedback := &entity.MedicalFeedback{
		AppointmentID: req.AppointmentID,
		Notes:         req.Notes,
	}

	return u.feedback.add(ctx, feedback)
}

func (u *medicalFeedbackUsecase) UpdateMedicalFeedback(ctx context.Context, id string, req *dto.UpdateMedicalFeedbackRequest) (*entity.MedicalFeedback, error) {
	return u.feedback.update(ctx, id, func(f *entity.MedicalFeedback) {
		if req.AppointmentID != nil {
			f.AppointmentID = *req.AppointmentID
		}
		if req.Notes != nil {
			f.Notes = *req.Notes
		}
	})
}

func (u *medicalFeedbackUsecase) DeleteMedicalFeedback(ctx context.Context, id string) error {
	return u.feedback.remove(ctx, id)
}

func (u *medicalFeedbackUsecase) GetRecentMedicalFeedback(ctx context.Context, limit int) ([]*entity.MedicalFeedback, error) {
	feedback, err := u.feedback.owned(ctx)
	if err != nil {
		return feedback, err
	}
	return mostRecent(feedback, limit, feedbackDate), nil
}

// FilterMedicalFeedback searches notes and the linked appointment title.
func (u *medicalFeedbackUsecase) FilterMedicalFeedback(ctx context.Context, filter entity.ListFilter) ([]*entity.MedicalFeedback, error) {
	feedback, err := u.feedback.owned(ctx)
	if err != nil {
		return feedback, err
	}

	titles, err := u.appointments.labels(ctx, appointmentTitle)
	if err != nil {
		return []*entity.MedicalFeedback{}, err
	}

	filtered := keep(feedback, func(f *entity.MedicalFeedback) bool {
		return filter.MatchSearch(f.Notes, titles[f.AppointmentID])
	})

	sortByFilter(filtered, filter, feedbackDate, func(f *entity.MedicalFeedback) string { return titles[f.AppointmentID] })
	return filtered, nil
}

func feedbackDate(f *entity.MedicalFeedback) time.Time {
	return f.CreatedAt
}
