// Package cli provides the command-line interface for themectl.
package cli

import (
	"fmt"

	"github.com/avolut/themectl/internal/application/port"
	"github.com/avolut/themectl/internal/application/usecase"
	"github.com/avolut/themectl/internal/infrastructure/backupstore"
	"github.com/avolut/themectl/internal/infrastructure/config"
	"github.com/avolut/themectl/internal/infrastructure/discovery"
	"github.com/avolut/themectl/internal/infrastructure/handlers"
	"github.com/avolut/themectl/internal/infrastructure/xdg"
)

// App wires configuration, infrastructure adapters, and use-cases for the
// CLI commands.
type App struct {
	Config *config.Config

	Discover *usecase.DiscoverThemesUseCase
	Apply    *usecase.ApplyThemeUseCase
	Current  *usecase.CurrentThemeUseCase
	Backups  *usecase.ListBackupsUseCase
	Restore  *usecase.RestoreBackupUseCase
	Prune    *usecase.PruneBackupsUseCase
}

// NewApp builds the full dependency graph.
func NewApp() (*App, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	cfg, err := manager.Load()
	if err != nil {
		return nil, err
	}

	configHome, err := xdg.ConfigHome()
	if err != nil {
		return nil, fmt.Errorf("resolve config home: %w", err)
	}
	dataHome, err := xdg.DataHome()
	if err != nil {
		return nil, fmt.Errorf("resolve data home: %w", err)
	}
	backupsDir, err := xdg.BackupsDir()
	if err != nil {
		return nil, fmt.Errorf("resolve backups dir: %w", err)
	}

	runner := handlers.ExecRunner{}
	allHandlers := []port.Handler{
		handlers.NewGTKHandler(runner, configHome),
		handlers.NewQtHandler(configHome),
		handlers.NewFlatpakHandler(runner, dataHome),
		handlers.NewSnapHandler(runner),
	}

	locator := discovery.New(cfg.ExtraThemeDirs...)
	store := backupstore.New(backupsDir)
	gate := usecase.NewGate()

	return &App{
		Config:   cfg,
		Discover: usecase.NewDiscoverThemesUseCase(locator),
		Apply: usecase.NewApplyThemeUseCase(locator, store, allHandlers, gate,
			usecase.WithHandlerTimeout(cfg.HandlerTimeout()),
			usecase.WithBackupRetention(cfg.BackupRetention),
		),
		Current: usecase.NewCurrentThemeUseCase(allHandlers),
		Backups: usecase.NewListBackupsUseCase(store),
		Restore: usecase.NewRestoreBackupUseCase(store, gate),
		Prune:   usecase.NewPruneBackupsUseCase(store),
	}, nil
}
