package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/chille/showcase/internal/catalog"
	"github.com/chille/showcase/internal/database/repository"
)

// SeedDefaults stores the shipped content when the database has no items.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	n, err := repository.NewItemRepo(db).Count(ctx)
	if err != nil {
		return fmt.Errorf("count items: %w", err)
	}
	if n > 0 {
		return nil
	}
	_, err = ImportBundle(ctx, db, catalog.DefaultBundle())
	return err
}

// ImportBundle replaces the stored content with b in one transaction. Items
// missing from b are removed. It returns how many items were written.
func ImportBundle(ctx context.Context, db *sql.DB, b catalog.Bundle) (int, error) {
	// Validate ids before touching the database.
	cat, err := b.Catalog()
	if err != nil {
		return 0, err
	}
	written := 0
	err = WithTx(db, func(tx *sql.Tx) error {
		items := repository.NewItemRepo(tx)
		if _, err := items.DeleteExcept(ctx, cat.IDs()); err != nil {
			return fmt.Errorf("prune items: %w", err)
		}
		for i, it := range cat.Items() {
			changed, err := items.Upsert(ctx, it, i)
			if err != nil {
				return err
			}
			if changed {
				written++
			}
		}
		return repository.NewSiteRepo(tx).Put(ctx, b.Site)
	})
	return written, err
}

// LoadBundle reads the stored content. A database without stored chrome
// gets the default site.
func LoadBundle(ctx context.Context, db *sql.DB) (catalog.Bundle, error) {
	items, err := repository.NewItemRepo(db).List(ctx)
	if err != nil {
		return catalog.Bundle{}, fmt.Errorf("list items: %w", err)
	}
	site, ok, err := repository.NewSiteRepo(db).Get(ctx)
	if err != nil {
		return catalog.Bundle{}, err
	}
	if !ok {
		site = catalog.DefaultSite()
	}
	return catalog.Bundle{Site: site, Items: items}, nil
}
