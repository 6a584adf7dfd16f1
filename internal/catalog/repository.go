package catalog

import (
	"context"
	"database/sql"
	"time"

	"threadline-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// Repository owns the write side of the mirrored catalog. Reads live in the
// product package.
type Repository interface {
	UpsertProduct(ctx context.Context, p ExternalProduct, syncedAt time.Time) (string, error)
	UpsertVariant(ctx context.Context, productID string, v ExternalVariant, size, color *string, syncedAt time.Time) error
	UpsertImage(ctx context.Context, productID string, img ExternalImage, syncedAt time.Time) error
	PruneStale(ctx context.Context, syncedBefore time.Time) (int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// UpsertProduct mirrors an upstream product by its external id and stamps it
// with the run's sync time. Re-running with identical data touches the same
// row; it never duplicates.
func (r *repository) UpsertProduct(ctx context.Context, p ExternalProduct, syncedAt time.Time) (string, error) {
	query := `
	INSERT INTO products (
		external_id,
		title,
		description,
		handle,
		product_type,
		vendor,
		tags,
		status,
		synced_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, 'active', $8)
	ON CONFLICT (external_id)
	DO UPDATE SET
		title = EXCLUDED.title,
		description = EXCLUDED.description,
		handle = EXCLUDED.handle,
		product_type = EXCLUDED.product_type,
		vendor = EXCLUDED.vendor,
		tags = EXCLUDED.tags,
		status = 'active',
		updated_at = NOW(),
		synced_at = EXCLUDED.synced_at
	RETURNING id
	`

	var id string
	err := r.db.QueryRowContext(ctx, query,
		p.ID, p.Title, p.Description, p.Handle, p.ProductType, p.Vendor,
		pq.Array(p.Tags), syncedAt,
	).Scan(&id)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to upsert product",
			zap.String("external_id", p.ID),
			zap.Error(err),
		)
		return "", err
	}

	return id, nil
}

// UpsertVariant recomputes availability and inventory from the upstream
// payload every run.
func (r *repository) UpsertVariant(ctx context.Context, productID string, v ExternalVariant, size, color *string, syncedAt time.Time) error {
	query := `
	INSERT INTO product_variants (
		product_id,
		external_id,
		title,
		price,
		compare_at_price,
		sku,
		size,
		color,
		available,
		inventory_quantity,
		synced_at
	)
	VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11)
	ON CONFLICT (external_id)
	DO UPDATE SET
		title = EXCLUDED.title,
		price = EXCLUDED.price,
		compare_at_price = EXCLUDED.compare_at_price,
		sku = EXCLUDED.sku,
		size = EXCLUDED.size,
		color = EXCLUDED.color,
		available = EXCLUDED.available,
		inventory_quantity = EXCLUDED.inventory_quantity,
		synced_at = EXCLUDED.synced_at
	`

	_, err := r.db.ExecContext(ctx, query,
		productID, v.ID, v.Title, v.Price, v.CompareAtPrice, v.SKU,
		size, color, v.Available, v.InventoryQuantity, syncedAt,
	)
	return err
}

// UpsertImage updates in place when the (product, external id) pair exists,
// else inserts at a fixed position.
func (r *repository) UpsertImage(ctx context.Context, productID string, img ExternalImage, syncedAt time.Time) error {
	query := `
	INSERT INTO product_images (
		product_id,
		external_id,
		src,
		alt_text,
		position,
		synced_at
	)
	VALUES ($1, $2, $3, $4, 1, $5)
	ON CONFLICT (product_id, external_id)
	DO UPDATE SET
		src = EXCLUDED.src,
		alt_text = EXCLUDED.alt_text,
		synced_at = EXCLUDED.synced_at
	`

	_, err := r.db.ExecContext(ctx, query,
		productID, img.ID, img.URL, img.AltText, syncedAt,
	)
	return err
}

// PruneStale marks catalog rows the latest run did not touch: variants go
// unavailable, products inactive. Rows are never deleted since cart lines
// may still reference them.
func (r *repository) PruneStale(ctx context.Context, syncedBefore time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE product_variants
		SET available = false
		WHERE synced_at IS NULL OR synced_at < $1
	`, syncedBefore)
	if err != nil {
		return 0, err
	}

	variants, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	res, err = r.db.ExecContext(ctx, `
		UPDATE products
		SET status = 'inactive'
		WHERE synced_at IS NULL OR synced_at < $1
	`, syncedBefore)
	if err != nil {
		return variants, err
	}

	products, err := res.RowsAffected()
	if err != nil {
		return variants, err
	}

	return variants + products, nil
}
