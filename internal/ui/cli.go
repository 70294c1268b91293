// Package ui implements the command line interface for the coworkers client.
package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"coworkers/internal/api"
	"coworkers/internal/config"
	"coworkers/internal/db"
	"coworkers/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command

	cache *db.Cache // opened lazily, shared across commands
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "coworkers",
		Short: "A terminal client for the Coworkers team service",
		Long: `Coworkers is a terminal client for the Coworkers team-collaboration
service. It lists the tasks of your task list and creates or edits
tasks, including their recurring schedule.

Running it without a subcommand opens the task editor.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.requireBackend(); err != nil {
				return err
			}
			cache, err := a.openCache()
			if err != nil {
				return err
			}
			return tui.Run(a.config, a.client(), a.revalidator(cache))
		},
	}

	if cfg.UI.NoColor {
		DisableColor()
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.editCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("coworkers %s (commit: %s)\n", Version, Commit)
		},
	}
}

// client builds the API client from the current config.
func (a *App) client() *api.Client {
	timeout := time.Duration(a.config.Server.TimeoutSeconds) * time.Second
	return api.NewClient(a.config.Server.BaseURL, a.config.Token, timeout)
}

// openCache opens the task cache once and reuses it.
func (a *App) openCache() (*db.Cache, error) {
	if a.cache != nil {
		return a.cache, nil
	}
	cache, err := db.New(a.config.Cache.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	a.cache = cache
	return cache, nil
}

// requireBackend fails early when the backend or credentials are not configured.
func (a *App) requireBackend() error {
	if err := a.config.RequireGroup(); err != nil {
		return err
	}
	return a.config.RequireToken()
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases resources held by the application.
func (a *App) Close() error {
	if a.cache != nil {
		return a.cache.Close()
	}
	return nil
}
