package order

import (
	"context"

	"threadline-be/internal/logger"

	"go.uber.org/zap"
)

// Service projects a customer's order history for display.
type Service interface {
	OrdersByEmail(ctx context.Context, email string) ([]Order, error)
}

type service struct {
	client Client
}

// NewService builds the order read path. A nil client means no admin API is
// configured and fixture data is served instead.
func NewService(client Client) Service {
	return &service{client: client}
}

func (s *service) OrdersByEmail(ctx context.Context, email string) ([]Order, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}

	if s.client == nil {
		logger.FromCtx(ctx).Debug("admin API not configured, serving fixture orders")
		return fixtureOrders(), nil
	}

	orders, err := s.client.OrdersByEmail(ctx, email)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to fetch orders", zap.Error(err))
		return nil, err
	}

	return orders, nil
}
