package services

import (
	"context"
	"fmt"
	"time"

	"minute-planner/config"
	"minute-planner/logger"
)

// TrendingRefresherService periodically refetches trending places for the configured
// regions so reads are served from cache.
type TrendingRefresherService struct {
	placesService *PlacesService
	cfg           config.RefresherConfig
	log           logger.Logger
}

// NewTrendingRefresherService constructs a new refresher with dependencies.
func NewTrendingRefresherService(placesService *PlacesService, cfg config.RefresherConfig, log logger.Logger) *TrendingRefresherService {
	return &TrendingRefresherService{
		placesService: placesService,
		cfg:           cfg,
		log:           log.With(map[string]interface{}{"component": "trending_refresher"}),
	}
}

// StartPeriodicJob refreshes once, then on every interval until ctx is done.
func (tr *TrendingRefresherService) StartPeriodicJob(ctx context.Context) {
	go tr.startPeriodicJob(ctx)
}

func (tr *TrendingRefresherService) startPeriodicJob(ctx context.Context) {
	tr.runOnce(ctx)

	ticker := time.NewTicker(tr.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			tr.log.Info("Stopping trending refresher", nil)
			return
		case <-ticker.C:
			tr.runOnce(ctx)
		}
	}
}

func (tr *TrendingRefresherService) runOnce(ctx context.Context) {
	tr.log.Info("Running trending refresher job", map[string]interface{}{"regions": len(tr.cfg.Regions)})
	if err := tr.RefreshTrendingData(ctx); err != nil {
		tr.log.WithError(err).Warn("Trending refresher job finished with errors", nil)
		return
	}
	tr.log.Info("Trending refresher job completed", nil)
}

// RefreshTrendingData refreshes every region. A failing region is logged and skipped.
func (tr *TrendingRefresherService) RefreshTrendingData(ctx context.Context) error {
	failed := 0
	for _, region := range tr.cfg.Regions {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		places, err := tr.placesService.RefreshTrending(ctx, region, tr.cfg.Limit)
		if err != nil {
			failed++
			tr.log.WithError(err).Warn("Trending refresh failed", map[string]interface{}{"region": region})
			continue
		}
		tr.log.Debug("Trending refreshed", map[string]interface{}{"region": region, "places": len(places)})
	}

	if count, err := tr.placesService.IndexedPlaceCount(ctx); err == nil {
		tr.log.Info("Geo index size", map[string]interface{}{"places": count})
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d regions failed to refresh", failed, len(tr.cfg.Regions))
	}
	return nil
}
