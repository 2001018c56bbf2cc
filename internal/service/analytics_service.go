package service

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/sanjayxseth/mskitchen/internal/domain"
)

type AnalyticsService struct {
	cache AnalyticsCache
	repo  ReportRepository
}

func NewAnalyticsService(cache AnalyticsCache, repo ReportRepository) *AnalyticsService {
	return &AnalyticsService{cache: cache, repo: repo}
}

// TopItemsToday reads today's ranking from Redis and falls back to an
// order_items aggregate when the cache is empty or unreachable.
func (s *AnalyticsService) TopItemsToday(ctx context.Context, limit int) ([]domain.ItemAnalytics, error) {
	if limit <= 0 {
		limit = 10
	}

	date := time.Now().Format("2006-01-02")
	scores, err := s.cache.TopItems(ctx, date, limit)
	if err != nil || len(scores) == 0 {
		if err != nil {
			log.Printf("[analytics] WARNING: redis unavailable, falling back to sql: %v", err)
		}
		return s.repo.TopItemsToday(limit)
	}

	items := make([]domain.ItemAnalytics, 0, len(scores))
	for id, score := range scores {
		name, err := s.repo.ItemName(id)
		if err != nil {
			log.Printf("[analytics] WARNING: failed to resolve item %d: %v", id, err)
			continue
		}
		items = append(items, domain.ItemAnalytics{MenuItemID: id, ItemName: name, Score: score})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Score > items[j].Score })
	return items, nil
}

var _ AnalyticsServiceInterface = (*AnalyticsService)(nil)
