package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/chille/showcase/internal/config"
	"github.com/chille/showcase/internal/database"
	"github.com/chille/showcase/internal/logging"
	"github.com/chille/showcase/internal/service"
	"github.com/chille/showcase/internal/transition"
	"github.com/chille/showcase/internal/tui"
)

var (
	configPath string
	logLevel   string

	cfg     config.Config
	logger  *slog.Logger
	closers []io.Closer
	content *service.ContentService
)

func Execute() error {
	err := newRootCmd().ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		_ = teardown()
	}
	return err
}

func newRootCmd() *cobra.Command {
	configPath, logLevel = "", ""
	root := &cobra.Command{
		Use:           "showcase",
		Short:         "Browse the plugin portfolio in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/showcase/config.toml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log.level (debug, info, warn, error)")

	root.AddCommand(listCmd(), exportCmd(), importCmd(), resetCmd())
	return root
}

func setup(ctx context.Context) error {
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	l, lc, err := logging.Open("showcase", cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	logger = l
	closers = append(closers, lc)

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path, cfg.Database.Migrations); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	closers = append(closers, db)

	if err := database.SeedDefaults(ctx, db); err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}
	content = &service.ContentService{DB: db, Logger: logger}

	if cfg.Catalog.File != "" {
		if _, err := content.ImportFile(ctx, cfg.Catalog.File); err != nil {
			return err
		}
	}
	logger.Debug("startup", "db", cfg.Database.Path, "animation", cfg.Animation.Enabled)
	return nil
}

func teardown() error {
	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	closers = nil
	return errors.Join(errs...)
}

func runPage(ctx context.Context) error {
	b, cat, err := content.Load(ctx)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Frame:   cfg.Animation.Frame,
		Stagger: cfg.Animation.Stagger,
		Year:    time.Now().Year(),
	}
	if cfg.Animation.Enabled {
		opts.Timing = transition.Timing{Expand: cfg.Animation.Expand, Collapse: cfg.Animation.Collapse}
	} else {
		opts.Frame = 0
		opts.Stagger = 0
	}

	var progOpts []tea.ProgramOption
	if cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	progOpts = append(progOpts, tea.WithContext(ctx))

	p := tea.NewProgram(tui.New(b.Site, cat, opts, logger), progOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run page: %w", err)
	}
	return nil
}
