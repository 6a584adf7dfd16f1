package catalog

import (
	"context"
	"time"

	"threadline-be/internal/logger"
	"threadline-be/internal/metrics"

	"go.uber.org/zap"
)

// Service mirrors the upstream catalog into the local store.
type Service interface {
	SyncProducts(ctx context.Context) (*SyncResult, error)
}

type service struct {
	client Client
	repo   Repository
	stats  *metrics.SyncMetrics
}

func NewService(client Client, repo Repository, stats *metrics.SyncMetrics) Service {
	if stats == nil {
		stats = &metrics.SyncMetrics{}
	}
	return &service{client: client, repo: repo, stats: stats}
}

// SyncProducts walks the upstream product set and upserts every product,
// variant and image, then marks anything the run did not touch as stale.
// Per-item upserts are not transactional: a failure aborts the loop and
// earlier upserts stand, which is safe because every upsert is corrective.
func (s *service) SyncProducts(ctx context.Context) (*SyncResult, error) {
	log := logger.FromCtx(ctx)
	timer := metrics.StartTimer()

	products, err := s.client.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNoUpstreamData
	}

	syncedAt := time.Now().UTC()
	result := &SyncResult{Count: len(products)}

	for _, p := range products {
		productID, err := s.repo.UpsertProduct(ctx, p, syncedAt)
		if err != nil {
			return nil, err
		}

		for _, v := range p.Variants {
			size := optionValue(v.Options, "size")
			color := optionValue(v.Options, "color")

			if err := s.repo.UpsertVariant(ctx, productID, v, size, color, syncedAt); err != nil {
				return nil, err
			}
			result.VariantsTouched++
		}

		for _, img := range p.Images {
			if err := s.repo.UpsertImage(ctx, productID, img, syncedAt); err != nil {
				return nil, err
			}
		}
	}

	pruned, err := s.repo.PruneStale(ctx, syncedAt)
	if err != nil {
		return nil, err
	}
	result.RowsPruned = pruned

	s.stats.ProductsSynced.Add(uint64(result.Count))
	s.stats.VariantsSynced.Add(uint64(result.VariantsTouched))
	s.stats.RowsPruned.Add(uint64(pruned))
	s.stats.ObserveRun(timer.Duration())

	log.Info("catalog sync completed",
		zap.Int("products", result.Count),
		zap.Int("variants", result.VariantsTouched),
		zap.Int64("pruned", pruned),
		zap.Duration("duration", timer.Duration()),
	)

	return result, nil
}
