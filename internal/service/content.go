package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/chille/showcase/internal/catalog"
	"github.com/chille/showcase/internal/database"
	"github.com/chille/showcase/internal/logging"
)

// ContentService loads and replaces the page content stored in sqlite.
type ContentService struct {
	DB     *sql.DB
	Logger *slog.Logger
}

func (s *ContentService) logger() *slog.Logger {
	if s.Logger == nil {
		return logging.Discard()
	}
	return s.Logger
}

// Load returns the stored bundle and the catalog built from it.
func (s *ContentService) Load(ctx context.Context) (catalog.Bundle, *catalog.Catalog, error) {
	if s.DB == nil {
		return catalog.Bundle{}, nil, fmt.Errorf("content: db not configured")
	}
	b, err := database.LoadBundle(ctx, s.DB)
	if err != nil {
		return catalog.Bundle{}, nil, err
	}
	cat, err := b.Catalog()
	if err != nil {
		return catalog.Bundle{}, nil, err
	}
	s.logger().Debug("content loaded", "items", cat.Len())
	return b, cat, nil
}

// ImportFile replaces stored content with the bundle at path.
func (s *ContentService) ImportFile(ctx context.Context, path string) (int, error) {
	if s.DB == nil {
		return 0, fmt.Errorf("content: db not configured")
	}
	b, err := catalog.LoadFile(path)
	if err != nil {
		return 0, fmt.Errorf("load bundle %s: %w", path, err)
	}
	n, err := database.ImportBundle(ctx, s.DB, b)
	if err != nil {
		return 0, fmt.Errorf("import bundle %s: %w", path, err)
	}
	s.logger().Info("bundle imported", "path", path, "items", len(b.Items), "written", n)
	return n, nil
}

// ExportFile writes the stored content to path in format f.
func (s *ContentService) ExportFile(ctx context.Context, path string, f catalog.Format) error {
	b, _, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if err := catalog.SaveFile(path, b, f); err != nil {
		return fmt.Errorf("export bundle %s: %w", path, err)
	}
	s.logger().Info("bundle exported", "path", path, "format", string(f))
	return nil
}

// Reset wipes stored content and reseeds the shipped defaults. It keeps the
// schema intact.
func (s *ContentService) Reset(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("content: db not configured")
	}
	if err := database.WithTx(s.DB, func(tx *sql.Tx) error {
		for _, t := range []string{"item_features", "items", "site"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
				return fmt.Errorf("reset table %s: %w", t, err)
			}
		}
		return nil
	}); err != nil {
		return err
	}
	s.logger().Info("content reset")
	return database.SeedDefaults(ctx, s.DB)
}
