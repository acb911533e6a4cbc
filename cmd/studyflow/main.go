package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexanderramin/studyflow/internal/cli"
	"github.com/alexanderramin/studyflow/internal/config"
	"github.com/alexanderramin/studyflow/internal/db"
	"github.com/alexanderramin/studyflow/internal/httpapi"
	"github.com/alexanderramin/studyflow/internal/repository"
	"github.com/alexanderramin/studyflow/internal/service"
	"github.com/alexanderramin/studyflow/internal/tutor"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewLoader(newLogger(os.Stderr, "warn")).Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := newLogger(os.Stderr, cfg.Log.Level)

	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	extra, err := tutor.LoadDir(cfg.Tutor.TemplatesDir)
	if err != nil {
		return fmt.Errorf("loading tutor templates: %w", err)
	}
	engine := tutor.NewEngine(tutor.BuiltinLibrary().With(extra))

	// Wire repositories
	taskRepo := repository.NewSQLiteTaskRepo(database)
	wellnessRepo := repository.NewSQLiteWellnessRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.Log.UseCases {
		observer = service.NewSlogUseCaseObserver(logger)
	}

	app := &cli.App{
		Tasks:    service.NewTaskService(taskRepo, observer),
		Import:   service.NewImportService(uow, observer),
		Wellness: service.NewWellnessService(wellnessRepo, observer),
		Plan:     service.NewPlanService(taskRepo, wellnessRepo, cfg.Planner.HoursPerDay, observer),
		Tutor:    service.NewTutorService(taskRepo, engine, observer),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	app.Serve = func(ctx context.Context, addr string) error {
		if addr == "" {
			addr = cfg.HTTP.Addr
		}
		srv := httpapi.NewServer(httpapi.Services{
			Tasks:    app.Tasks,
			Import:   app.Import,
			Wellness: app.Wellness,
			Plan:     app.Plan,
			Tutor:    app.Tutor,
		}, httpapi.Options{
			Addr:           addr,
			AllowedOrigins: cfg.HTTP.AllowedOrigins,
			Logger:         logger,
		})
		return srv.Run(ctx)
	}

	return cli.NewRootCmd(app).ExecuteContext(context.Background())
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
