package product

import (
	"context"

	"threadline-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the catalog read paths.
type Service interface {
	ListProducts(ctx context.Context) ([]*ListView, error)
	GetProductByHandle(ctx context.Context, handle string) (*DetailView, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListProducts(ctx context.Context) ([]*ListView, error) {
	products, err := s.repo.ListActiveWithVariants(ctx)
	if err != nil {
		return nil, err
	}

	images, err := s.repo.ListActiveImages(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*ListView, 0, len(products))
	for _, p := range products {
		p.Images = images[p.ID]
		views = append(views, projectList(p))
	}

	return views, nil
}

func (s *service) GetProductByHandle(ctx context.Context, handle string) (*DetailView, error) {
	log := logger.FromCtx(ctx).With(zap.String("handle", handle))

	p, err := s.repo.GetProductByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}
	if p == nil {
		log.Warn("product not found")
		return nil, ErrProductNotFound
	}

	if p.Variants, err = s.repo.GetVariantsByProduct(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.Images, err = s.repo.GetImagesByProduct(ctx, p.ID); err != nil {
		return nil, err
	}

	reviews, err := s.repo.GetApprovedReviews(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	return projectDetail(p, reviews), nil
}

// projectList maps a product with its available variants into the listing
// shape. The headline price is the cheapest available variant's.
func projectList(p *Product) *ListView {
	view := &ListView{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Handle:      p.Handle,
		Images:      make([]ImageView, 0, len(p.Images)),
		Variants:    make([]VariantView, 0, len(p.Variants)),
		Tags:        p.Tags,
	}
	if view.Tags == nil {
		view.Tags = []string{}
	}

	for _, img := range p.Images {
		view.Images = append(view.Images, ImageView{
			ID:      img.ID,
			Src:     img.Src,
			AltText: img.AltText,
		})
	}

	for _, v := range p.Variants {
		view.Variants = append(view.Variants, VariantView{
			ID:                v.ID,
			Title:             v.Title,
			Price:             v.Price,
			CompareAtPrice:    v.CompareAtPrice,
			SKU:               v.SKU,
			Size:              v.Size,
			Color:             v.Color,
			Available:         v.Available,
			InventoryQuantity: v.InventoryQuantity,
		})
	}

	// Variants arrive price-ascending, so the first one sets the headline.
	if len(p.Variants) > 0 {
		view.Price = p.Variants[0].Price
		view.CompareAtPrice = p.Variants[0].CompareAtPrice
	}

	return view
}

func projectDetail(p *Product, reviews []Review) *DetailView {
	view := &DetailView{
		ListView: *projectList(p),
		Reviews:  make([]ReviewView, 0, len(reviews)),
	}

	var ratingSum int
	for _, rev := range reviews {
		rv := ReviewView{
			ID:        rev.ID,
			Rating:    rev.Rating,
			Title:     rev.Title,
			Content:   rev.Content,
			CreatedAt: rev.CreatedAt,
		}
		rv.User.Name = rev.ReviewerName
		view.Reviews = append(view.Reviews, rv)
		ratingSum += rev.Rating
	}

	view.ReviewCount = len(reviews)
	if view.ReviewCount > 0 {
		view.Rating = float64(ratingSum) / float64(view.ReviewCount)
	}

	return view
}
