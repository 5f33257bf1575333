package app

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/oswinp/curiodb/internal/api"
	"github.com/oswinp/curiodb/internal/config"
	"github.com/oswinp/curiodb/internal/database"
	"github.com/oswinp/curiodb/internal/domain"
	"github.com/oswinp/curiodb/internal/importer"
	"github.com/oswinp/curiodb/internal/logger"
	"github.com/oswinp/curiodb/internal/notification"
	"github.com/oswinp/curiodb/internal/repository"
	"github.com/oswinp/curiodb/internal/tmdb"
)

// App represents the application with all dependencies initialized
type App struct {
	log    zerolog.Logger
	config *domain.Config
	db     *database.DB

	filmRepo domain.FilmRepository
	importer importer.Service
	notifier domain.NotificationService
	server   *api.Server
}

// NewApp loads configuration, opens the database and wires every service.
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewLoggerWithLevel(cfg.LogLevel)

	db, err := database.NewDB(cfg.DataDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	filmRepo := database.NewFilmRepo(log, db)
	bookRepo := database.NewBookRepo(log, db)
	listRepo := database.NewListRepo(log, db)
	reportRepo := repository.NewFileRepository(log)

	notifier := notification.NewService(log, cfg.DiscordWebhookURL)
	metadata := tmdb.NewService(log, cfg)
	importSvc := importer.NewService(log, cfg, filmRepo, metadata, reportRepo, notifier)

	server := api.NewServer(api.Deps{
		Log:    log,
		Config: cfg,
		DB:     db,

		FilmRepo: filmRepo,
		BookRepo: bookRepo,
		ListRepo: listRepo,

		WatchRepo:          database.NewWatchRepo(log, db),
		MusicRepo:          database.NewMusicRepo(log, db),
		FilmCollectionRepo: database.NewFilmCollectionRepo(log, db),
		BookCollectionRepo: database.NewBookCollectionRepo(log, db),
		GameCollectionRepo: database.NewGameCollectionRepo(log, db),
		WardrobeRepo:       database.NewWardrobeRepo(log, db),
		ArtRepo:            database.NewArtRepo(log, db),
		ExtrasCategoryRepo: database.NewExtrasCategoryRepo(log, db),
		ExtraRepo:          database.NewExtraRepo(log, db),
		InstrumentRepo:     database.NewInstrumentRepo(log, db),
		PerformanceRepo:    database.NewPerformanceRepo(log, db),

		Importer: importSvc,
	})

	return &App{
		log:      log,
		config:   cfg,
		db:       db,
		filmRepo: filmRepo,
		importer: importSvc,
		notifier: notifier,
		server:   server,
	}, nil
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.db.Close()
}

// Serve runs the HTTP server until the process is stopped.
func (a *App) Serve() error {
	return a.server.Open()
}

// ImportBatch runs an import over free-text titles and external ids and
// prints the per-entry report.
func (a *App) ImportBatch(entries []string) error {
	ctx := context.Background()

	results, err := a.importer.ImportBatch(ctx, entries)
	if err != nil {
		if notifyErr := a.notifier.SendError(ctx, err); notifyErr != nil {
			a.log.Warn().Err(notifyErr).Msg("failed to send error notification")
		}
		return err
	}

	printResults(results)
	return nil
}

// ImportRatings runs a CSV rating import from a Letterboxd export file and
// prints the per-row report.
func (a *App) ImportRatings(path string) error {
	ctx := context.Background()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open csv file: %w", err)
	}
	defer f.Close()

	results, err := a.importer.ImportRatings(ctx, f)
	if err != nil {
		if notifyErr := a.notifier.SendError(ctx, err); notifyErr != nil {
			a.log.Warn().Err(notifyErr).Msg("failed to send error notification")
		}
		return err
	}

	printResults(results)
	return nil
}

func printResults(results []domain.ImportResult) {
	for _, r := range results {
		if len(r.Errors) > 0 {
			fmt.Printf("%-50s %s %v\n", r.Item, r.Status, r.Errors)
			continue
		}
		fmt.Printf("%-50s %s\n", r.Item, r.Status)
	}
}
