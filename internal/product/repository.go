package product

import (
	"context"
	"database/sql"

	"threadline-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	ListActiveWithVariants(ctx context.Context) ([]*Product, error)
	ListActiveImages(ctx context.Context) (map[string][]Image, error)
	GetProductByHandle(ctx context.Context, handle string) (*Product, error)
	GetVariantsByProduct(ctx context.Context, productID string) ([]Variant, error)
	GetImagesByProduct(ctx context.Context, productID string) ([]Image, error)
	GetApprovedReviews(ctx context.Context, productID string) ([]Review, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// ListActiveWithVariants returns active products, newest first, each with
// its available variants ordered by ascending price.
func (r *repository) ListActiveWithVariants(ctx context.Context) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListActiveWithVariants"),
	)

	query := `
	SELECT
		p.id,
		p.title,
		p.description,
		p.handle,
		p.tags,
		p.created_at,

		v.id,
		v.title,
		v.price,
		v.compare_at_price,
		v.size,
		v.color,
		v.inventory_quantity
	FROM products p
	LEFT JOIN product_variants v
		ON v.product_id = p.id AND v.available = true
	WHERE p.status = $1
	ORDER BY p.created_at DESC, v.price ASC
	`

	rows, err := r.db.QueryContext(ctx, query, StatusActive)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var (
		result []*Product
		index  = make(map[string]*Product)
	)

	for rows.Next() {
		var (
			p Product
			// LEFT JOIN: products without available variants carry NULLs.
			variantID    sql.NullString
			variantTitle sql.NullString
			price        sql.NullFloat64
			compareAt    sql.NullFloat64
			size         sql.NullString
			color        sql.NullString
			inventory    sql.NullInt64
		)

		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&p.Handle,
			pq.Array(&p.Tags),
			&p.CreatedAt,
			&variantID,
			&variantTitle,
			&price,
			&compareAt,
			&size,
			&color,
			&inventory,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}

		existing, ok := index[p.ID]
		if !ok {
			existing = &p
			index[p.ID] = existing
			result = append(result, existing)
		}

		if variantID.Valid {
			v := Variant{
				ID:                variantID.String,
				ProductID:         existing.ID,
				Title:             variantTitle.String,
				Price:             price.Float64,
				Available:         true,
				InventoryQuantity: int(inventory.Int64),
			}
			if compareAt.Valid {
				v.CompareAtPrice = &compareAt.Float64
			}
			if size.Valid {
				v.Size = &size.String
			}
			if color.Valid {
				v.Color = &color.String
			}
			existing.Variants = append(existing.Variants, v)
		}
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	return result, nil
}

// ListActiveImages returns the images of all active products keyed by
// product id, each slice ordered by position.
func (r *repository) ListActiveImages(ctx context.Context) (map[string][]Image, error) {
	query := `
	SELECT
		i.id,
		i.product_id,
		i.external_id,
		i.src,
		i.alt_text,
		i.position
	FROM product_images i
	JOIN products p ON i.product_id = p.id
	WHERE p.status = $1
	ORDER BY i.product_id, i.position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := make(map[string][]Image)
	for rows.Next() {
		var img Image
		if err := rows.Scan(
			&img.ID,
			&img.ProductID,
			&img.ExternalID,
			&img.Src,
			&img.AltText,
			&img.Position,
		); err != nil {
			return nil, err
		}
		images[img.ProductID] = append(images[img.ProductID], img)
	}

	return images, rows.Err()
}

func (r *repository) GetProductByHandle(ctx context.Context, handle string) (*Product, error) {
	query := `
	SELECT
		id,
		external_id,
		title,
		description,
		handle,
		product_type,
		vendor,
		tags,
		status,
		created_at,
		updated_at
	FROM products
	WHERE handle = $1
	`

	p := &Product{}
	row := r.db.QueryRowContext(ctx, query, handle)
	err := row.Scan(
		&p.ID,
		&p.ExternalID,
		&p.Title,
		&p.Description,
		&p.Handle,
		&p.ProductType,
		&p.Vendor,
		pq.Array(&p.Tags),
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) GetVariantsByProduct(ctx context.Context, productID string) ([]Variant, error) {
	query := `
	SELECT
		id,
		product_id,
		external_id,
		title,
		price,
		compare_at_price,
		sku,
		size,
		color,
		available,
		inventory_quantity
	FROM product_variants
	WHERE product_id = $1
	ORDER BY price ASC
	`

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var variants []Variant
	for rows.Next() {
		var v Variant
		if err := rows.Scan(
			&v.ID,
			&v.ProductID,
			&v.ExternalID,
			&v.Title,
			&v.Price,
			&v.CompareAtPrice,
			&v.SKU,
			&v.Size,
			&v.Color,
			&v.Available,
			&v.InventoryQuantity,
		); err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}

	return variants, rows.Err()
}

func (r *repository) GetImagesByProduct(ctx context.Context, productID string) ([]Image, error) {
	query := `
	SELECT
		id,
		product_id,
		external_id,
		src,
		alt_text,
		position
	FROM product_images
	WHERE product_id = $1
	ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []Image
	for rows.Next() {
		var img Image
		if err := rows.Scan(
			&img.ID,
			&img.ProductID,
			&img.ExternalID,
			&img.Src,
			&img.AltText,
			&img.Position,
		); err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	return images, rows.Err()
}

func (r *repository) GetApprovedReviews(ctx context.Context, productID string) ([]Review, error) {
	query := `
	SELECT
		id,
		product_id,
		reviewer_name,
		rating,
		title,
		content,
		created_at
	FROM product_reviews
	WHERE product_id = $1 AND status = $2
	ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, productID, ReviewStatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		var rev Review
		if err := rows.Scan(
			&rev.ID,
			&rev.ProductID,
			&rev.ReviewerName,
			&rev.Rating,
			&rev.Title,
			&rev.Content,
			&rev.CreatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}

	return reviews, rows.Err()
}
