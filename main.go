package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RubachokBoss/club-meetings/internal/app"
	"github.com/RubachokBoss/club-meetings/internal/config"
	"github.com/RubachokBoss/club-meetings/internal/database"
	"github.com/RubachokBoss/club-meetings/internal/repository"
	"github.com/RubachokBoss/club-meetings/internal/service"
	"github.com/RubachokBoss/club-meetings/pkg/logger"
	"github.com/rs/zerolog"
)

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	migrateDirection := migrateCmd.String("direction", "up", "direction of migration (up/down/force)")
	migrateVersion := migrateCmd.Int("version", -1, "schema version to record when direction is force")

	cfg, err := config.Load()
	if err != nil {
		log := logger.New()
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.NewWithConfig(cfg.Logging.Level, cfg.Logging.Pretty, cfg.Logging.NoColor)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			migrateCmd.Parse(os.Args[2:])
			runMigrations(cfg, log, *migrateDirection, *migrateVersion)
			return
		case "seed":
			runSeed(cfg, log)
			return
		}
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}

	log.Info().Msg("Database connection established")

	application, err := app.New(cfg, log, db)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create application")
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	go func() {
		if err := application.Run(); err != nil {
			log.Fatal().Err(err).Msg("Failed to run application")
		}
	}()

	log.Info().Msgf("Club Meetings Service started on %s", cfg.Server.Address)

	<-ctx.Done()
	log.Info().Msg("Shutting down Club Meetings Service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to shutdown gracefully")
	}

	log.Info().Msg("Club Meetings Service stopped")
}

func runMigrations(cfg *config.Config, log zerolog.Logger, direction string, version int) {
	migrator, err := database.NewMigrator(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create migrator")
	}

	switch direction {
	case "up":
		if err := migrator.Up(); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
		log.Info().Msg("Migrations applied successfully")
	case "down":
		if err := migrator.Down(); err != nil {
			log.Fatal().Err(err).Msg("Failed to rollback migrations")
		}
		log.Info().Msg("Migrations rolled back successfully")
	case "force":
		if version < 0 {
			log.Fatal().Msg("Force requires -version")
		}
		if err := migrator.Force(version); err != nil {
			log.Fatal().Err(err).Msg("Failed to force migration version")
		}
		log.Info().Int("version", version).Msg("Migration version forced")
	default:
		log.Fatal().Msg("Invalid migration direction. Use 'up', 'down' or 'force'")
	}
}

func runSeed(cfg *config.Config, log zerolog.Logger) {
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	catalog := service.NewCatalogService(
		repository.NewRoomRepository(db, log),
		repository.NewClubRepository(db, log),
		log,
	)

	added, err := catalog.Seed(ctx, cfg.Seed.Rooms, cfg.Seed.Clubs)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed rooms and clubs")
	}

	log.Info().Int("added", added).Msg("Rooms and clubs seeded")
}
