package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"

	"medical-tracker/config"
	"medical-tracker/internal/delivery/cli"
	domainRepo "medical-tracker/internal/domain/repository"
	"medical-tracker/internal/infrastructure/storage"
	"medical-tracker/internal/repository"
	"medical-tracker/internal/service"
	"medical-tracker/internal/usecase"
	"medical-tracker/pkg/validator"

	"github.com/sirupsen/logrus"
)

// ConfigPathEnv names the environment variable holding the .env file path
const ConfigPathEnv = "MEDTRACKER_CONFIG"

const defaultConfigPath = ".env"

// App holds all dependencies for the application
type App struct {
	Config  *config.Config
	Storage domainRepo.Storage
	Router  *cli.Router
}

// New creates a new App instance with all dependencies initialized
func New(ctx context.Context) (*App, error) {
	app := &App{}

	// Setup logger
	log := setupLogger(os.Stderr)

	// Load configuration
	configPath := os.Getenv(ConfigPathEnv)
	if configPath == "" {
		configPath = defaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	if level, err := logrus.ParseLevel(cfg.App.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("Unknown log level %q, keeping %s", cfg.App.LogLevel, log.GetLevel())
	}
	log.Info("Configuration loaded successfully")

	// Initialize storage
	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	app.Storage = store
	log.Infof("Storage %q opened successfully", cfg.Storage.Driver)

	// Initialize all layers
	router, err := Wire(ctx, store, cfg.Storage.KeyPrefix, log)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Router = router

	return app, nil
}

// setupLogger configures the logrus logger. Logs go to w so that command
// output on stdout stays machine readable.
func setupLogger(w io.Writer) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(w)
	log.SetLevel(logrus.WarnLevel)
	return log
}

// Wire builds repositories, the session, usecases and the command router
// over store, restores the persisted session and initializes a fresh store.
func Wire(ctx context.Context, store domainRepo.Storage, keyPrefix string, log *logrus.Logger) (*cli.Router, error) {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	markerRepo := repository.NewMarkerRepository(keyPrefix)
	sessionRepo := repository.NewSessionRepository(keyPrefix)
	userRepo := repository.NewUserRepository(keyPrefix)
	appointmentRepo := repository.NewAppointmentRepository(keyPrefix)
	doctorRepo := repository.NewDoctorRepository(keyPrefix)
	medicationRepo := repository.NewMedicationRepository(keyPrefix)
	diagnosisRepo := repository.NewDiagnosisRepository(keyPrefix)
	testResultRepo := repository.NewTestResultRepository(keyPrefix)
	medicalFeedbackRepo := repository.NewMedicalFeedbackRepository(keyPrefix)

	// Initialize session
	session := service.NewSessionService(store, log, sessionRepo)
	if err := session.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(store, log, session, userRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(store, log, session, appointmentRepo, doctorRepo)
	doctorUsecase := usecase.NewDoctorUsecase(store, log, session, doctorRepo)
	medicationUsecase := usecase.NewMedicationUsecase(store, log, session, medicationRepo)
	diagnosisUsecase := usecase.NewDiagnosisUsecase(store, log, session, diagnosisRepo, doctorRepo)
	testResultUsecase := usecase.NewTestResultUsecase(store, log, session, testResultRepo, doctorRepo)
	medicalFeedbackUsecase := usecase.NewMedicalFeedbackUsecase(store, log, session, medicalFeedbackRepo, appointmentRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(log, authUsecase, appointmentUsecase, doctorUsecase, medicationUsecase, diagnosisUsecase)
	dataUsecase := usecase.NewDataUsecase(store, log, session, markerRepo, userRepo,
		appointmentRepo, doctorRepo, medicationRepo, diagnosisRepo, testResultRepo, medicalFeedbackRepo)

	if err := dataUsecase.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize handlers
	authHandler := cli.NewAuthHandler(authUsecase, customValidator)
	appointmentHandler := cli.NewAppointmentHandler(appointmentUsecase, doctorUsecase, customValidator)
	doctorHandler := cli.NewDoctorHandler(doctorUsecase, customValidator)
	medicationHandler := cli.NewMedicationHandler(medicationUsecase, customValidator)
	diagnosisHandler := cli.NewDiagnosisHandler(diagnosisUsecase, doctorUsecase, customValidator)
	testResultHandler := cli.NewTestResultHandler(testResultUsecase, doctorUsecase, customValidator)
	medicalFeedbackHandler := cli.NewMedicalFeedbackHandler(medicalFeedbackUsecase, appointmentUsecase, customValidator)
	dashboardHandler := cli.NewDashboardHandler(dashboardUsecase)
	dataHandler := cli.NewDataHandler(dataUsecase, log)

	// Initialize router
	return cli.NewRouter(
		authHandler,
		appointmentHandler,
		doctorHandler,
		medicationHandler,
		diagnosisHandler,
		testResultHandler,
		medicalFeedbackHandler,
		dashboardHandler,
		dataHandler,
	), nil
}

// Run executes one command line against the application
func (app *App) Run(ctx context.Context, args []string) error {
	root := app.Router.Setup()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// Close closes the storage connection
func (app *App) Close() {
	if app.Storage != nil {
		if err := app.Storage.Close(); err != nil {
			logrus.Warnf("Failed to close storage: %v", err)
		}
	}
}
