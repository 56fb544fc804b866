package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/chille/showcase/internal/catalog"
)

const siteKey = "site"

// SiteRepo stores the page chrome as a single msgpack value.
type SiteRepo struct {
	db DBTX
}

func NewSiteRepo(db DBTX) *SiteRepo { return &SiteRepo{db: db} }

func (r *SiteRepo) Put(ctx context.Context, s catalog.Site) error {
	blob, err := msgpack.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode site: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
	INSERT INTO site(key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=CURRENT_TIMESTAMP;
	`, siteKey, blob)
	return err
}

// Get returns the stored site; ok is false when none was stored.
func (r *SiteRepo) Get(ctx context.Context) (catalog.Site, bool, error) {
	var blob []byte
	if err := r.db.QueryRowContext(ctx, `SELECT value FROM site WHERE key = ?`, siteKey).Scan(&blob); err != nil {
		if err == sql.ErrNoRows {
			return catalog.Site{}, false, nil
		}
		return catalog.Site{}, false, err
	}
	var s catalog.Site
	if err := msgpack.Unmarshal(blob, &s); err != nil {
		return catalog.Site{}, false, fmt.Errorf("decode site: %w", err)
	}
	return s, true, nil
}
