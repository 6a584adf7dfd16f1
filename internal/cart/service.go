package cart

import (
	"context"

	"threadline-be/internal/logger"
	"threadline-be/internal/session"

	"go.uber.org/zap"
)

// Service defines the business logic for carts.
type Service interface {
	GetCart(ctx context.Context, owner session.Owner) (*View, error)
	AddLine(ctx context.Context, owner session.Owner, params AddLineParams) error
	SetLineQuantity(ctx context.Context, lineID string, quantity int) error
	RemoveLine(ctx context.Context, lineID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetCart locates or lazily creates the owner's active cart and projects it.
// It never fails on a missing cart; a fresh cart projects as empty.
func (s *service) GetCart(ctx context.Context, owner session.Owner) (*View, error) {
	c, err := s.repo.GetOrCreateActiveCart(ctx, owner)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.GetCartLines(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	return Project(c.ID, rows), nil
}

// AddLine merges the request into the owner's active cart. The caller must
// re-fetch the cart to observe the merged result.
func (s *service) AddLine(ctx context.Context, owner session.Owner, params AddLineParams) error {
	// Quantity 0 counts as missing, same as an absent field.
	if params.VariantID == "" || params.Quantity == 0 || params.Price == 0 {
		return ErrMissingFields
	}
	if params.Quantity < 0 {
		return ErrInvalidQuantity
	}

	log := logger.FromCtx(ctx).With(
		zap.String("variant_id", params.VariantID),
		zap.Int("quantity", params.Quantity),
	)

	c, err := s.repo.GetOrCreateActiveCart(ctx, owner)
	if err != nil {
		return err
	}

	line, err := s.repo.UpsertLine(ctx, c.ID, params)
	if err != nil {
		return err
	}

	log.Info("line added to cart",
		zap.String("cart_id", c.ID),
		zap.String("line_id", line.ID),
		zap.Int("merged_quantity", line.Quantity),
	)

	return s.repo.TouchCart(ctx, c.ID)
}

// SetLineQuantity overwrites the stored quantity. Zero deletes the line;
// negative quantities are input errors.
func (s *service) SetLineQuantity(ctx context.Context, lineID string, quantity int) error {
	if lineID == "" {
		return ErrMissingFields
	}
	if quantity < 0 {
		return ErrInvalidQuantity
	}

	if quantity == 0 {
		return s.repo.DeleteLine(ctx, lineID)
	}

	return s.repo.UpdateLineQuantity(ctx, lineID, quantity)
}

// RemoveLine deletes a line. Removing an already-absent line is a success.
func (s *service) RemoveLine(ctx context.Context, lineID string) error {
	if lineID == "" {
		return ErrMissingFields
	}
	return s.repo.DeleteLine(ctx, lineID)
}
