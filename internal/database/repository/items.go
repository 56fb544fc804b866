package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/chille/showcase/internal/catalog"
)

// DBTX is satisfied by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// checksumSpace namespaces item content checksums.
var checksumSpace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("showcase:item"))

// Checksum fingerprints an item's content so unchanged rows are skipped.
func Checksum(it catalog.Item) string {
	parts := append([]string{it.Title, it.Description, it.MediaRef}, it.Features...)
	return uuid.NewSHA1(checksumSpace, []byte(strings.Join(parts, "\x1f"))).String()
}

// ItemRepo handles catalog items and their features.
type ItemRepo struct {
	db DBTX
}

func NewItemRepo(db DBTX) *ItemRepo { return &ItemRepo{db: db} }

// Upsert writes item at sortOrder. Features are rewritten only when the
// content checksum changed; the bool reports whether anything was written.
func (r *ItemRepo) Upsert(ctx context.Context, it catalog.Item, sortOrder int) (bool, error) {
	sum := Checksum(it)
	var existing string
	var order int
	err := r.db.QueryRowContext(ctx, `SELECT checksum, sort_order FROM items WHERE id = ?`, it.ID).Scan(&existing, &order)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return false, err
	case existing == sum && order == sortOrder:
		return false, nil
	}

	var media *string
	if it.HasMedia() {
		m := it.MediaRef
		media = &m
	}
	if _, err := r.db.ExecContext(ctx, `
	INSERT INTO items(id, title, description, media_ref, sort_order, checksum, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 title=excluded.title,
	 description=excluded.description,
	 media_ref=excluded.media_ref,
	 sort_order=excluded.sort_order,
	 checksum=excluded.checksum,
	 updated_at=CURRENT_TIMESTAMP;
	`, it.ID, it.Title, it.Description, media, sortOrder, sum); err != nil {
		return false, fmt.Errorf("upsert item %d: %w", it.ID, err)
	}
	if existing == sum {
		return true, nil
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM item_features WHERE item_id = ?`, it.ID); err != nil {
		return false, err
	}
	for pos, f := range it.Features {
		if _, err := r.db.ExecContext(ctx, `INSERT INTO item_features(item_id, position, text) VALUES (?, ?, ?)`, it.ID, pos, f); err != nil {
			return false, fmt.Errorf("insert feature %d/%d: %w", it.ID, pos, err)
		}
	}
	return true, nil
}

// DeleteExcept removes items whose id is not in keep.
func (r *ItemRepo) DeleteExcept(ctx context.Context, keep []catalog.ID) (int64, error) {
	if len(keep) == 0 {
		res, err := r.db.ExecContext(ctx, `DELETE FROM items`)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	}
	args := make([]any, len(keep))
	marks := make([]string, len(keep))
	for i, id := range keep {
		args[i] = id
		marks[i] = "?"
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id NOT IN (`+strings.Join(marks, ",")+`)`, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// List returns items in display order with their features.
func (r *ItemRepo) List(ctx context.Context) ([]catalog.Item, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, description, media_ref FROM items ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []catalog.Item
	index := map[catalog.ID]int{}
	for rows.Next() {
		var it catalog.Item
		var media sql.NullString
		if err := rows.Scan(&it.ID, &it.Title, &it.Description, &media); err != nil {
			return nil, err
		}
		it.MediaRef = media.String
		index[it.ID] = len(out)
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	frows, err := r.db.QueryContext(ctx, `SELECT item_id, text FROM item_features ORDER BY item_id, position`)
	if err != nil {
		return nil, err
	}
	defer frows.Close()
	for frows.Next() {
		var id catalog.ID
		var text string
		if err := frows.Scan(&id, &text); err != nil {
			return nil, err
		}
		if i, ok := index[id]; ok {
			out[i].Features = append(out[i].Features, text)
		}
	}
	return out, frows.Err()
}

func (r *ItemRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&n)
	return n, err
}
