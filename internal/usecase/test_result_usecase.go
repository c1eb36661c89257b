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

type TestResultUsecase interface {
	GetAllTestResults(ctx context.Context) ([]*entity.TestResult, error)
	GetUserTestResults(ctx context.Context) ([]*entity.TestResult, error)
	GetTestResultByID(ctx context.Context, id string) (*entity.TestResult, error)
	AddTestResult(ctx context.Context, req *dto.CreateTestResultRequest) (*entity.TestResult, error)
	UpdateTestResult(ctx context.Context, id string, req *dto.UpdateTestResultRequest) (*entity.TestResult, error)
	DeleteTestResult(ctx context.Context, id string) error
	GetRecentTestResults(ctx context.Context, limit int) ([]*entity.TestResult, error)
	FilterTestResults(ctx context.Context, filter entity.ListFilter) ([]*entity.TestResult, error)
}

type testResultUsecase struct {
	testResults *recordStore[*entity.TestResult]
	doctors     *recordStore[*entity.Doctor]
}

func NewTestResultUsecase(
	storage repository.Storage,
	log *logrus.Logger,
	session service.SessionService,
	testResultRepo repository.TestResultRepository,
	doctorRepo repository.DoctorRepository,
) TestResultUsecase {
	return &testResultUsecase{
		testResults: newRecordStore(storage, log, session, testResultRepo, ErrTestResultNotFound, "test results"),
		doctors:     newRecordStore(storage, log, session, doctorRepo, ErrDoctorNotFound, "doctors"),
	}
}

func (u *testResultUsecase) GetAllTestResults(ctx context.Context) ([]*entity.TestResult, error) {
	return u.testResults.all(ctx)
}

func (u *testResultUsecase) GetUserTestResults(ctx context.Context) ([]*entity.TestResult, error) {
	return u.testResults.owned(ctx)
}

func (u *testResultUsecase) GetTestResultByID(ctx context.Context, id string) (*entity.TestResult, error) {
	return u.testResults.byID(ctx, id)
}

func (u *testResultUsecase) AddTestResult(ctx context.Context, req *dto.CreateTestResultRequest) (*entity.TestResult, error) {
	status := entity.TestResultStatus(req.Status)
	if status == "" {
		status = entity.TestResultStatusPending
	}

	result := &entity.TestResult{
		TestName: req.TestName,
		TestType: req.TestType,
		TestDate: req.TestDate,
		DoctorID: req.DoctorID,
		Status:   status,
		Results:  req.Results,
	}

	return u.testResults.add(ctx, result)
}

func (u *testResultUsecase) UpdateTestResult(ctx context.Context, id string, req *dto.UpdateTestResultRequest) (*entity.TestResult, error) {
	return u.testResults.update(ctx, id, func(r *entity.TestResult) {
		if req.TestName != nil {
			r.TestName = *req.TestName
		}
		if req.TestType != nil {
			r.TestType = *req.TestType
		}
		if req.TestDate != nil {
			r.TestDate = *req.TestDate
		}
		if req.DoctorID != nil {
			r.DoctorID = *req.DoctorID
		}
		if req.Status != nil {
			r.Status = entity.TestResultStatus(*req.Status)
		}
		if req.Results != nil {
			r.Results = *req.Results
		}
	})
}

func (u *testResultUsecase) DeleteTestResult(ctx context.Context, id string) error {
	return u.testResults.remove(ctx, id)
}

// GetRecentTestResults returns the latest results by test date, falling back
// to creation time. limit <= 0 means the default of 5.
func (u *testResultUsecase) GetRecentTestResults(ctx context.Context, limit int) ([]*entity.TestResult, error) {
	results, err := u.testResults.owned(ctx)
	if err != nil {
		return results, err
	}
	return mostRecent(results, limit, testResultDate), nil
}

func (u *testResultUsecase) FilterTestResults(ctx context.Context, filter entity.ListFilter) ([]*entity.TestResult, error) {
	results, err := u.testResults.owned(ctx)
	if err != nil {
		return results, err
	}

	doctorNames, err := u.doctors.labels(ctx, doctorName)
	if err != nil {
		return []*entity.TestResult{}, err
	}

	filtered := keep(results, func(r *entity.TestResult) bool {
		return filter.MatchType(r.TestType) &&
			filter.MatchStatus(string(r.Status)) &&
			filter.MatchSearch(r.TestName, r.Results, doctorNames[r.DoctorID])
	})

	sortByFilter(filtered, filter, testResultDate, func(r *entity.TestResult) string { return r.TestName })
	return filtered, nil
}

func testResultDate(r *entity.TestResult) time.Time {
	return entity.DateOr(r.TestDate, r.CreatedAt)
}
