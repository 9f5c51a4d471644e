package app

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/RubachokBoss/club-meetings/internal/config"
	"github.com/RubachokBoss/club-meetings/internal/delivery/httpd"
	"github.com/RubachokBoss/club-meetings/internal/middleware"
	"github.com/RubachokBoss/club-meetings/internal/repository"
	"github.com/RubachokBoss/club-meetings/internal/service"
	"github.com/RubachokBoss/club-meetings/internal/service/integration"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

type App struct {
	server    *http.Server
	logger    zerolog.Logger
	config    *config.Config
	store     *repository.PostgresRepository
	publisher integration.EventPublisher
}

func New(cfg *config.Config, log zerolog.Logger, db *sql.DB) (*App, error) {
	publisher := NewEventPublisher(cfg.RabbitMQ, log)

	// Репозитории
	store := repository.NewPostgresRepository(db, log)
	studentRepo := repository.NewStudentRepository(db, log)
	meetingRepo := repository.NewMeetingRepository(db, log)
	roomRepo := repository.NewRoomRepository(db, log)
	clubRepo := repository.NewClubRepository(db, log)

	// Сервисы
	studentService := service.NewStudentService(studentRepo, publisher, log)
	meetingService := service.NewMeetingService(meetingRepo, publisher, log)
	reportService := service.NewReportService(meetingRepo, roomRepo, clubRepo, log)
	catalogService := service.NewCatalogService(roomRepo, clubRepo, log)

	handler := httpd.NewHandler(
		studentService,
		meetingService,
		reportService,
		catalogService,
		store,
		log,
	)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      NewRouter(cfg, log, handler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		server:    server,
		logger:    log,
		config:    cfg,
		store:     store,
		publisher: publisher,
	}, nil
}

// NewRouter wires the middleware chain in front of the API routes.
func NewRouter(cfg *config.Config, log zerolog.Logger, handler *httpd.Handler) chi.Router {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
	if cfg.Server.RequestTimeout > 0 {
		router.Use(chimiddleware.Timeout(cfg.Server.RequestTimeout))
	}

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	handler.RegisterRoutes(router)

	return router
}

// NewEventPublisher connects to RabbitMQ when enabled. An unreachable broker
// degrades to a publisher that drops events.
func NewEventPublisher(cfg config.RabbitMQConfig, log zerolog.Logger) integration.EventPublisher {
	if !cfg.Enabled {
		log.Info().Msg("RabbitMQ disabled, domain events will not be published")
		return integration.NewNoopPublisher(log)
	}

	publisher, err := integration.NewRabbitMQClient(
		cfg.URL,
		cfg.Exchange,
		cfg.QueueName,
		cfg.BindingKey,
		log,
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create RabbitMQ client, continuing without domain events")
		return integration.NewNoopPublisher(log)
	}

	return publisher
}

func (a *App) Run() error {
	a.logger.Info().Msgf("Starting club meetings service on %s", a.config.Server.Address)
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down club meetings service...")

	err := a.server.Shutdown(ctx)

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close event publisher")
		}
	}

	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close database connection")
		}
	}

	return err
}
