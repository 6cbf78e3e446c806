package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/erca/internal/cli"
	"github.com/alexanderramin/erca/internal/config"
	"github.com/alexanderramin/erca/internal/db"
	"github.com/alexanderramin/erca/internal/repository"
	"github.com/alexanderramin/erca/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Use-case logging goes to stderr so plan text on stdout stays clean.
	logger := service.NewTextLogger(os.Stderr)
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(logger)
	}

	sources := repository.NewSQLiteCatalogSourceRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	store := service.NewCatalogStore(nil)

	catalogs := service.NewCatalogService(sources, uow, store, observer)
	if _, err := catalogs.Reload(context.Background()); err != nil {
		return fmt.Errorf("loading curriculum: %w", err)
	}

	app := &cli.App{
		Catalogs: catalogs,
		Plans:    service.NewPlanService(store, service.NewEngine(cfg), observer),
		Config:   cfg,
		Logger:   logger,
	}

	// Forms only run on an interactive terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(context.Background())
}
