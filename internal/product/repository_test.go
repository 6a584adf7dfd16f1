package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_ListActiveWithVariants(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	cols := []string{
		"p_id", "p_title", "p_description", "p_handle", "p_tags", "p_created_at",
		"v_id", "v_title", "v_price", "v_compare_at_price", "v_size", "v_color", "v_inventory_quantity",
	}

	t.Run("Groups variants under products", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows(cols).
			AddRow("prod-1", "Tee", "A tee", "tee", pq.Array([]string{"summer"}), now,
				"var-1", "S", 19.99, nil, "S", "Black", 5).
			AddRow("prod-1", "Tee", "A tee", "tee", pq.Array([]string{"summer"}), now,
				"var-2", "M", 21.99, 24.99, "M", "Black", 2).
			AddRow("prod-2", "Cap", "A cap", "cap", pq.Array([]string{}), now,
				nil, nil, nil, nil, nil, nil, nil)

		mock.ExpectQuery("SELECT(.|\n)*FROM products p").
			WithArgs(StatusActive).
			WillReturnRows(rows)

		products, err := repo.ListActiveWithVariants(context.Background())
		assert.NoError(t, err)
		require.Len(t, products, 2)
		assert.Len(t, products[0].Variants, 2)
		assert.Equal(t, 19.99, products[0].Variants[0].Price)
		require.NotNil(t, products[0].Variants[1].CompareAtPrice)
		assert.Equal(t, 24.99, *products[0].Variants[1].CompareAtPrice)
		// No available variants leaves the product with an empty slice.
		assert.Empty(t, products[1].Variants)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT(.|\n)*FROM products p").
			WillReturnError(errors.New("db error"))

		_, err := repo.ListActiveWithVariants(context.Background())
		assert.Error(t, err)
	})
}

func TestRepository_ListActiveImages(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "product_id", "external_id", "src", "alt_text", "position"}).
		AddRow("img-1", "prod-1", "ext-img-1", "https://cdn.example/1.jpg", "front", 1).
		AddRow("img-2", "prod-1", "ext-img-2", "https://cdn.example/2.jpg", nil, 2)

	mock.ExpectQuery("SELECT(.|\n)*FROM product_images i").
		WithArgs(StatusActive).
		WillReturnRows(rows)

	images, err := repo.ListActiveImages(context.Background())
	assert.NoError(t, err)
	require.Len(t, images["prod-1"], 2)
	assert.Equal(t, "https://cdn.example/1.jpg", images["prod-1"][0].Src)
	assert.Nil(t, images["prod-1"][1].AltText)
}

func TestRepository_GetProductByHandle(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	cols := []string{
		"id", "external_id", "title", "description", "handle",
		"product_type", "vendor", "tags", "status", "created_at", "updated_at",
	}

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows(cols).AddRow(
			"prod-1", "gid://shop/Product/1", "Tee", "A tee", "tee",
			"Apparel", "Threadline", pq.Array([]string{"summer"}), "active", time.Now(), time.Now(),
		)

		mock.ExpectQuery("SELECT(.|\n)*FROM products").
			WithArgs("tee").
			WillReturnRows(rows)

		p, err := repo.GetProductByHandle(context.Background(), "tee")
		assert.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "prod-1", p.ID)
		assert.Equal(t, []string{"summer"}, p.Tags)
	})

	t.Run("Missing returns nil, nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT(.|\n)*FROM products").
			WithArgs("nope").
			WillReturnRows(sqlmock.NewRows(cols))

		p, err := repo.GetProductByHandle(context.Background(), "nope")
		assert.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT(.|\n)*FROM products").
			WillReturnError(errors.New("db error"))

		_, err := repo.GetProductByHandle(context.Background(), "tee")
		assert.Error(t, err)
	})
}

func TestRepository_GetVariantsByProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "product_id", "external_id", "title", "price", "compare_at_price",
		"sku", "size", "color", "available", "inventory_quantity",
	}).AddRow(
		"var-1", "prod-1", "gid://shop/Variant/1", "Black / M", 29.99, nil,
		"TEE-BLK-M", "M", "Black", true, 12,
	)

	mock.ExpectQuery("SELECT(.|\n)*FROM product_variants").
		WithArgs("prod-1").
		WillReturnRows(rows)

	variants, err := repo.GetVariantsByProduct(context.Background(), "prod-1")
	assert.NoError(t, err)
	require.Len(t, variants, 1)
	assert.Equal(t, "TEE-BLK-M", *variants[0].SKU)
	assert.True(t, variants[0].Available)
}

func TestRepository_GetApprovedReviews(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "product_id", "reviewer_name", "rating", "title", "content", "created_at",
	}).AddRow("rev-1", "prod-1", "Ada L", 5, "Great", "Fits well", time.Now())

	mock.ExpectQuery("SELECT(.|\n)*FROM product_reviews").
		WithArgs("prod-1", ReviewStatusApproved).
		WillReturnRows(rows)

	reviews, err := repo.GetApprovedReviews(context.Background(), "prod-1")
	assert.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, "Ada L", reviews[0].ReviewerName)
}
