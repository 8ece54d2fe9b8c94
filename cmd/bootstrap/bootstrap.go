package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cycle-booking-service/config"
	deliveryHttp "cycle-booking-service/internal/delivery/http"
	"cycle-booking-service/internal/delivery/http/handler"
	"cycle-booking-service/internal/delivery/http/middleware"
	"cycle-booking-service/internal/infrastructure/cache"
	"cycle-booking-service/internal/infrastructure/database"
	"cycle-booking-service/internal/infrastructure/mail"
	"cycle-booking-service/internal/repository"
	"cycle-booking-service/internal/service"
	"cycle-booking-service/internal/usecase"
	"cycle-booking-service/pkg/jwt"
	"cycle-booking-service/pkg/validator"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	shutdownTimeout = 10 * time.Second
	syncTimeout     = 30 * time.Second
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server

	dispatcher *service.ReminderDispatcher
	slots      *service.SlotReservationService
	digest     *service.ReminderDigestService
	log        *logrus.Logger
}

// New creates a new App instance with all dependencies initialized
func New(configPath string) (*App, error) {
	app := &App{log: setupLogger()}

	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	app.log.Info("Configuration loaded successfully")

	if cfg.DB.AutoMigrate {
		if err := database.MigrateUp(cfg.DB.MigrationURL()); err != nil {
			return nil, err
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env, app.log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	app.log.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis, app.log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	app.log.Info("Redis connected successfully")

	// Initialize all layers
	app.initialize()

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	return logrus.StandardLogger()
}

// initialize wires repositories, services, usecases and the HTTP server
func (app *App) initialize() {
	cfg := app.Config
	log := app.log
	clock := clockwork.NewRealClock()
	loc := cfg.Location()

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(app.DB)
	doctorRepo := repository.NewDoctorRepository(app.DB)
	appointmentRepo := repository.NewAppointmentRepository(app.DB)
	periodLogRepo := repository.NewPeriodLogRepository(app.DB)
	reminderRepo := repository.NewReminderRepository(app.DB)
	auditLogRepo := repository.NewAuditLogRepository(app.DB)
	symptomRepo := repository.NewSymptomRepository(app.DB)
	flowRepo := repository.NewMenstrualFlowRepository(app.DB)

	// Initialize services
	predictor := service.NewCyclePredictor(service.CycleDefaults{
		CycleLength:    cfg.Cycle.DefaultLength,
		PeriodDuration: cfg.Cycle.DefaultPeriodDuration,
	})
	rules := service.NewReminderRules(predictor, loc)
	app.dispatcher = service.NewReminderDispatcher(
		service.DispatcherConfig{Workers: cfg.Reminder.Workers, QueueSize: cfg.Reminder.QueueSize},
		rules, reminderRepo, doctorRepo, clock, log,
	)
	app.slots = service.NewSlotReservationService(app.RedisClient, appointmentRepo, clock, loc, log)

	var notifier service.Notifier
	if cfg.SMTP.Host != "" {
		notifier = mail.NewSMTPNotifier(cfg.SMTP)
	} else {
		log.Warn("SMTP_HOST not set, reminder digests will only be logged")
		notifier = mail.NewLogNotifier(log)
	}
	app.digest = service.NewReminderDigestService(cfg.Reminder.DigestCron, reminderRepo, userRepo, notifier, clock, loc, log)

	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	appointmentUsecase := usecase.NewAppointmentUsecase(log, clock, loc, appointmentRepo, doctorRepo, app.slots, app.dispatcher, auditService)
	cycleUsecase := usecase.NewCycleUsecase(log, clock, userRepo, periodLogRepo, predictor, app.dispatcher, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, userRepo, auditService)
	reminderUsecase := usecase.NewReminderUsecase(log, reminderRepo)
	symptomUsecase := usecase.NewSymptomUsecase(log, clock, loc, userRepo, symptomRepo, flowRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)

	// Initialize handlers
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	cycleHandler := handler.NewCycleHandler(cycleUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	reminderHandler := handler.NewReminderHandler(reminderUsecase)
	symptomHandler := handler.NewSymptomHandler(symptomUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, app.RedisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(appointmentHandler, cycleHandler, doctorHandler, reminderHandler, symptomHandler, auditLogHandler, authMiddleware, corsMiddleware)

	// Create server
	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts background workers and the HTTP server, then blocks until shutdown
func (app *App) Run() error {
	app.dispatcher.Start()

	// Rebuild Redis slot keys before accepting traffic
	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	if err := app.slots.SyncOnStartup(ctx); err != nil {
		app.log.Warnf("Failed to sync slot reservations, relying on database: %+v", err)
	}
	cancel()

	if err := app.digest.Start(); err != nil {
		app.dispatcher.Stop()
		app.Close()
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		app.log.Infof("Server starting on port %s", app.Config.App.Port)
		app.log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	return app.waitForShutdown(serverErr)
}

// waitForShutdown blocks until an interrupt signal or a server failure
func (app *App) waitForShutdown(serverErr <-chan error) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case <-quit:
		app.log.Info("Shutting down server...")
	case runErr = <-serverErr:
		app.log.Errorf("Server stopped unexpectedly: %v", runErr)
	}

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.log.Errorf("Server forced to shutdown: %v", err)
	}

	// Stop background work, draining queued reminder events
	app.digest.Stop()
	app.dispatcher.Stop()

	// Close connections
	app.Close()

	app.log.Info("Server shutdown complete")
	return runErr
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

// Migrate runs schema migrations without starting the server
func Migrate(configPath string, down bool, steps int) error {
	setupLogger()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if down {
		return database.MigrateDown(cfg.DB.MigrationURL(), steps)
	}
	return database.MigrateUp(cfg.DB.MigrationURL())
}
