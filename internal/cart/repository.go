package cart

import (
	"context"
	"database/sql"

	"threadline-be/internal/logger"
	"threadline-be/internal/session"

	"go.uber.org/zap"
)

type Repository interface {
	GetOrCreateActiveCart(ctx context.Context, owner session.Owner) (*Cart, error)
	UpsertLine(ctx context.Context, cartID string, params AddLineParams) (*Line, error)
	UpdateLineQuantity(ctx context.Context, lineID string, quantity int) error
	DeleteLine(ctx context.Context, lineID string) error
	TouchCart(ctx context.Context, cartID string) error
	GetCartLines(ctx context.Context, cartID string) ([]lineRow, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// GetOrCreateActiveCart is a single atomic insert-if-absent. The partial
// unique index on carts(owner_key) WHERE status = 'ACTIVE' guarantees that
// concurrent calls for the same new owner converge on one cart; the DO
// UPDATE arm exists only so RETURNING yields the surviving row.
func (r *repository) GetOrCreateActiveCart(ctx context.Context, owner session.Owner) (*Cart, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetOrCreateActiveCart"),
		zap.String("owner_key", owner.Key()),
	)

	query := `
	INSERT INTO carts (owner_key, user_id, session_id, status)
	VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4)
	ON CONFLICT (owner_key) WHERE status = 'ACTIVE'
	DO UPDATE SET updated_at = NOW()
	RETURNING
		id,
		owner_key,
		user_id,
		session_id,
		status,
		created_at,
		updated_at
	`

	c := &Cart{}
	row := r.db.QueryRowContext(ctx, query,
		owner.Key(), owner.UserID, owner.SessionID, StatusActive,
	)
	err := row.Scan(
		&c.ID,
		&c.OwnerKey,
		&c.UserID,
		&c.SessionID,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to locate or create cart", zap.Error(err))
		return nil, err
	}

	return c, nil
}

// UpsertLine merges an add into an existing (cart, variant) line or inserts
// a new one. On merge the quantity accumulates and the originally captured
// price is kept even when the request carries a different one.
func (r *repository) UpsertLine(ctx context.Context, cartID string, params AddLineParams) (*Line, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpsertLine"),
		zap.String("cart_id", cartID),
		zap.String("variant_id", params.VariantID),
	)

	log.Debug("start upsert cart line")

	query := `
	INSERT INTO cart_items (cart_id, variant_id, quantity, price)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (cart_id, variant_id)
	DO UPDATE SET
		quantity = cart_items.quantity + EXCLUDED.quantity,
		updated_at = NOW()
	RETURNING
		id,
		cart_id,
		variant_id,
		quantity,
		price,
		created_at,
		updated_at
	`

	line := &Line{}
	row := r.db.QueryRowContext(ctx, query,
		cartID, params.VariantID, params.Quantity, params.Price,
	)
	err := row.Scan(
		&line.ID,
		&line.CartID,
		&line.VariantID,
		&line.Quantity,
		&line.Price,
		&line.CreatedAt,
		&line.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to upsert cart line", zap.Error(err))
		return nil, err
	}

	log.Info("cart line upserted",
		zap.String("line_id", line.ID),
		zap.Int("quantity", line.Quantity),
	)

	return line, nil
}

func (r *repository) UpdateLineQuantity(ctx context.Context, lineID string, quantity int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cart_items
		SET quantity = $1, updated_at = NOW()
		WHERE id = $2
	`, quantity, lineID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrLineNotFound
	}

	return nil
}

// DeleteLine is idempotent: deleting an already-absent line is a success,
// the same policy as driving a line's quantity to zero.
func (r *repository) DeleteLine(ctx context.Context, lineID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE id = $1
	`, lineID)
	return err
}

func (r *repository) TouchCart(ctx context.Context, cartID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE carts
		SET updated_at = NOW()
		WHERE id = $1
	`, cartID)
	return err
}

func (r *repository) GetCartLines(ctx context.Context, cartID string) ([]lineRow, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetCartLines"),
		zap.String("cart_id", cartID),
	)

	query := `
	SELECT
		ci.id,
		ci.variant_id,
		ci.quantity,
		ci.price,

		p.title,
		p.handle,
		img.src,

		v.title,
		v.size,
		v.color
	FROM cart_items ci
	JOIN product_variants v ON ci.variant_id = v.id
	JOIN products p ON v.product_id = p.id
	LEFT JOIN LATERAL (
		SELECT src FROM product_images
		WHERE product_id = p.id
		ORDER BY position ASC
		LIMIT 1
	) img ON true
	WHERE ci.cart_id = $1
	ORDER BY ci.created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, cartID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []lineRow
	for rows.Next() {
		var row lineRow
		if err := rows.Scan(
			&row.LineID,
			&row.VariantID,
			&row.Quantity,
			&row.Price,
			&row.ProductTitle,
			&row.Handle,
			&row.ImageSrc,
			&row.VariantTitle,
			&row.Size,
			&row.Color,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	return result, nil
}
