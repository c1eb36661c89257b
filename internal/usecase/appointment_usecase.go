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

type AppointmentUsecase interface {
	GetAllAppointments(ctx context.Context) ([]*entity.Appointment, error)
	GetUserAppointments(ctx context.Context) ([]*entity.Appointment, error)
	GetAppointmentByID(ctx context.Context, id string) (*entity.Appointment, error)
	AddAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*entity.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, req *dto.UpdateAppointmentRequest) (*entity.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
	GetUpcomingAppointments(ctx context.Context) ([]*entity.Appointment, error)
	FilterAppointments(ctx context.Context, filter entity.ListFilter) ([]*entity.Appointment, error)
	GetAppointmentTitle(ctx context.Context, appointmentID string) string
	GetAppointmentTitles(ctx context.Context) (map[string]string, error)
}

type appointmentUsecase struct {
	appointments *recordStore[*entity.Appointment]
	doctors      *recordStore[*entity.Doctor]
}

func NewAppointmentUsecase(
	storage repository.Storage,
	log *logrus.Logger,
	session service.SessionService,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		appointments: newRecordStore(storage, log, session, appointmentRepo, ErrAppointmentNotFound, "appointments"),
		doctors:      newRecordStore(storage, log, session, doctorRepo, ErrDoctorNotFound, "doctors"),
	}
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) ([]*entity.Appointment, error) {
	return u.appointments.all(ctx)
}

func (u *appointmentUsecase) GetUserAppointments(ctx context.Context) ([]*entity.Appointment, error) {
	return u.appointments.owned(ctx)
}

func (u *appointmentUsecase) GetAppointmentByID(ctx context.Context, id string) (*entity.Appointment, error) {
	return u.appointments.byID(ctx, id)
}

func (u *appointmentUsecase) AddAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*entity.Appointment, error) {
	status := entity.AppointmentStatus(req.Status)
	if status == "" {
		status = entity.AppointmentStatusScheduled
	}

	appointment := &entity.Appointment{
		Title:    req.Title,
		DoctorID: req.DoctorID,
		Date:     req.Date,
		Duration: req.Duration,
		Type:     req.Type,
		Location: req.Location,
		Status:   status,
		Reminder: req.Reminder,
		Notes:    req.Notes,
	}

	return u.appointments.add(ctx, appointment)
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id string, req *dto.UpdateAppointmentRequest) (*entity.Appointment, error) {
	return u.appointments.update(ctx, id, func(a *entity.Appointment) {
		if req.Title != nil {
			a.Title = *req.Title
		}
		if req.DoctorID != nil {
			a.DoctorID = *req.DoctorID
		}
		if req.Date != nil {
			a.Date = *req.Date
		}
		if req.Duration != nil {
			a.Duration = *req.Duration
		}
		if req.Type != nil {
			a.Type = *req.Type
		}
		if req.Location != nil {
			a.Location = *req.Location
		}
		if req.Status != nil {
			a.Status = entity.AppointmentStatus(*req.Status)
		}
		if req.Reminder != nil {
			a.Reminder = *req.Reminder
		}
		if req.Notes != nil {
			a.Notes = *req.Notes
		}
	})
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id string) error {
	return u.appointments.remove(ctx, id)
}

// GetUpcomingAppointments returns scheduled appointments from now on, soonest first.
// Appointments with an unreadable date are never upcoming.
func (u *appointmentUsecase) GetUpcomingAppointments(ctx context.Context) ([]*entity.Appointment, error) {
	appointments, err := u.appointments.owned(ctx)
	if err != nil {
		return appointments, err
	}

	now := timeNow()
	upcoming := keep(appointments, func(a *entity.Appointment) bool {
		date, ok := entity.ParseDate(a.Date)
		return ok && a.IsScheduled() && !date.Before(now)
	})

	sortByFilter(upcoming, entity.ListFilter{Sort: "date-asc"}, appointmentDate, appointmentTitle)
	return upcoming, nil
}

func (u *appointmentUsecase) FilterAppointments(ctx context.Context, filter entity.ListFilter) ([]*entity.Appointment, error) {
	appointments, err := u.appointments.owned(ctx)
	if err != nil {
		return appointments, err
	}

	doctorNames, err := u.doctors.labels(ctx, doctorName)
	if err != nil {
		return []*entity.Appointment{}, err
	}

	filtered := keep(appointments, func(a *entity.Appointment) bool {
		return filter.MatchStatus(string(a.Status)) &&
			filter.MatchSearch(a.Title, a.Location, a.Notes, doctorNames[a.DoctorID])
	})

	sortByFilter(filtered, filter, appointmentDate, appointmentTitle)
	return filtered, nil
}

// GetAppointmentTitle resolves a feedback's appointment reference, "" when dangling.
func (u *appointmentUsecase) GetAppointmentTitle(ctx context.Context, appointmentID string) string {
	return u.appointments.label(ctx, appointmentID, appointmentTitle)
}

func (u *appointmentUsecase) GetAppointmentTitles(ctx context.Context) (map[string]string, error) {
	return u.appointments.labels(ctx, appointmentTitle)
}

func appointmentDate(a *entity.Appointment) time.Time {
	return entity.DateOr(a.Date, time.Time{})
}

func appointmentTitle(a *entity.Appointment) string {
	return a.Title
}
