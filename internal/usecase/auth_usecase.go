package usecase

import (
	"context"

	"medical-tracker/internal/delivery/dto"
	"medical-tracker/internal/domain/entity"
	"medical-tracker/internal/domain/repository"
	"medical-tracker/internal/service"
	"medical-tracker/pkg/idgen"

	"github.com/sirupsen/logrus"
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*entity.SessionUser, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*entity.SessionUser, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*entity.SessionUser, error)
	ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error
	CurrentUser(ctx context.Context) (*entity.SessionUser, error)
}

type authUsecase struct {
	storage  repository.Storage
	log      *logrus.Logger
	session  service.SessionService
	userRepo repository.UserRepository
}

func NewAuthUsecase(
	storage repository.Storage,
	log *logrus.Logger,
	session service.SessionService,
	userRepo repository.UserRepository,
) AuthUsecase {
	return &authUsecase{
		storage:  storage,
		log:      log,
		session:  session,
		userRepo: userRepo,
	}
}

// Register creates the account and logs it in. Usernames are compared case-sensitively.
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*entity.SessionUser, error) {
	tx, err := u.storage.Begin(ctx)
	if err != nil {
		u.log.Warnf("Failed to begin transaction: %+v", err)
		return nil, err
	}
	defer tx.Rollback()

	users, err := u.userRepo.Load(ctx, tx)
	if err != nil {
		u.log.Warnf("Failed to load users: %+v", err)
		return nil, err
	}

	for _, existing := range users {
		if existing.Username == req.Username {
			return nil, ErrDuplicateUsername
		}
	}

	user := &entity.User{
		ID:        idgen.New(),
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		CreatedAt: timeNow(),
	}

	if err := u.userRepo.Save(ctx, tx, append(users, user)); err != nil {
		u.log.Warnf("Failed to save users: %+v", err)
		return nil, err
	}

	sessionUser := user.ToSession()
	if err := u.session.Persist(ctx, tx, sessionUser); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.session.Set(sessionUser)
	u.log.Infof("Registered user %s", user.Username)

	return sessionUser, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*entity.SessionUser, error) {
	users, err := u.userRepo.Load(ctx, u.storage)
	if err != nil {
		u.log.Warnf("Failed to load users: %+v", err)
		return nil, err
	}

	var user *entity.User
	for _, candidate := range users {
		if candidate.Username == req.Username && candidate.Password == req.Password {
			user = candidate
			break
		}
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	sessionUser := user.ToSession()
	if err := u.switchSession(ctx, sessionUser); err != nil {
		return nil, err
	}

	return sessionUser, nil
}

// Logout is a no-op without a session.
func (u *authUsecase) Logout(ctx context.Context) error {
	if _, ok := u.session.Current(); !ok {
		return nil
	}
	return u.switchSession(ctx, nil)
}

func (u *authUsecase) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*entity.SessionUser, error) {
	current, ok := u.session.Current()
	if !ok {
		return nil, ErrNotAuthenticated
	}

	tx, err := u.storage.Begin(ctx)
	if err != nil {
		u.log.Warnf("Failed to begin transaction: %+v", err)
		return nil, err
	}
	defer tx.Rollback()

	users, err := u.userRepo.Load(ctx, tx)
	if err != nil {
		u.log.Warnf("Failed to load users: %+v", err)
		return nil, err
	}

	user := findUser(users, current.ID)
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}

	if err := u.userRepo.Save(ctx, tx, users); err != nil {
		u.log.Warnf("Failed to save users: %+v", err)
		return nil, err
	}

	sessionUser := user.ToSession()
	if err := u.session.Persist(ctx, tx, sessionUser); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.session.Set(sessionUser)
	return sessionUser, nil
}

// ChangePassword checks the current plaintext password before replacing it.
// The session projection never carries a password, so it is left alone.
func (u *authUsecase) ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error {
	current, ok := u.session.Current()
	if !ok {
		return ErrNotAuthenticated
	}

	tx, err := u.storage.Begin(ctx)
	if err != nil {
		u.log.Warnf("Failed to begin transaction: %+v", err)
		return err
	}
	defer tx.Rollback()

	users, err := u.userRepo.Load(ctx, tx)
	if err != nil {
		u.log.Warnf("Failed to load users: %+v", err)
		return err
	}

	user := findUser(users, current.ID)
	if user == nil {
		return ErrUserNotFound
	}
	if user.Password != req.CurrentPassword {
		return ErrWrongPassword
	}

	user.Password = req.NewPassword
	if err := u.userRepo.Save(ctx, tx, users); err != nil {
		u.log.Warnf("Failed to save users: %+v", err)
		return err
	}

	if err := tx.Commit(); err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *authUsecase) CurrentUser(ctx context.Context) (*entity.SessionUser, error) {
	user, ok := u.session.Current()
	if !ok {
		return nil, ErrNotAuthenticated
	}
	return user, nil
}

// switchSession persists user as the session pointer, or removes it when user is nil.
func (u *authUsecase) switchSession(ctx context.Context, user *entity.SessionUser) error {
	tx, err := u.storage.Begin(ctx)
	if err != nil {
		u.log.Warnf("Failed to begin transaction: %+v", err)
		return err
	}
	defer tx.Rollback()

	if user != nil {
		err = u.session.Persist(ctx, tx, user)
	} else {
		err = u.session.Forget(ctx, tx)
	}
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.session.Set(user)
	return nil
}

func findUser(users []*entity.User, id string) *entity.User {
	for _, user := range users {
		if user.ID == id {
			return user
		}
	}
	return nil
}
