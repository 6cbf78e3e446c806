package cli

import (
	"log/slog"

	"github.com/alexanderramin/erca/internal/config"
	"github.com/alexanderramin/erca/internal/service"
	"github.com/atotto/clipboard"
)

// App holds the services and process-level hooks used by CLI commands.
type App struct {
	Catalogs service.CatalogService
	Plans    service.PlanService
	Config   config.Config
	Logger   *slog.Logger

	// IsInteractive reports whether stdin is a terminal. Forms refuse to run
	// without one.
	IsInteractive func() bool
	// CopyText puts text on the system clipboard.
	CopyText func(text string) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) copyText(text string) error {
	if a.CopyText != nil {
		return a.CopyText(text)
	}
	return clipboard.WriteAll(text)
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return service.NewTextLogger(nil)
}
