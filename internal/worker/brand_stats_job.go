package worker

import (
	"context"
)

//go:generate mockery --name BrandStatsRecomputer --output ../mocks
type BrandStatsRecomputer interface {
	Recompute(ctx context.Context, brandID string) error
	RecomputeAll(ctx context.Context) error
}

// BrandStatsJob is the periodic full recompute; single brands are refreshed
// on demand through the stats queue.
type BrandStatsJob struct {
	stats BrandStatsRecomputer
}

func NewBrandStatsJob(stats BrandStatsRecomputer) *BrandStatsJob {
	return &BrandStatsJob{stats: stats}
}

func (j *BrandStatsJob) Name() string {
	return "brand_stats"
}

func (j *BrandStatsJob) Run(ctx context.Context) error {
	return j.stats.RecomputeAll(ctx)
}
