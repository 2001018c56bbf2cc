package service

import (
	"context"
	"fmt"

	"github.com/sanjayxseth/mskitchen/internal/domain"
)

type ReviewService struct {
	repo  ReviewRepository
	rates ReportRepository
	cache ReviewCache
}

func NewReviewService(repo ReviewRepository, rates ReportRepository, cache ReviewCache) *ReviewService {
	return &ReviewService{repo: repo, rates: rates, cache: cache}
}

// Create enforces the one-review-per-order-and-customer rule with a
// Redis marker in front of the database check. The marker is only an
// optimization; the database stays the source of truth.
func (s *ReviewService) Create(ctx context.Context, review *domain.Review) error {
	if review.OrderID <= 0 || review.CustomerID <= 0 {
		return domain.ErrReviewRequired
	}
	if review.Rating < 1 || review.Rating > 5 {
		return domain.ErrInvalidRating
	}

	ok, err := s.repo.OrderBelongsToCustomer(review.OrderID, review.CustomerID)
	if err != nil {
		return fmt.Errorf("failed to validate order: %w", err)
	}
	if !ok {
		return domain.ErrOrderNotFound
	}

	if review.MenuItemID != nil {
		inOrder, err := s.repo.ItemInOrder(*review.MenuItemID, review.OrderID)
		if err != nil {
			return fmt.Errorf("failed to validate menu item: %w", err)
		}
		if !inOrder {
			return domain.ErrItemNotInOrder
		}
	}

	cacheKey := s.cache.ReviewMarkerKey(review.OrderID, review.CustomerID)
	if exists, _ := s.cache.Exists(ctx, cacheKey); exists {
		return domain.ErrDuplicateReview
	}
	if exists, err := s.repo.HasReview(review.OrderID, review.CustomerID); err != nil {
		return err
	} else if exists {
		return domain.ErrDuplicateReview
	}

	if err := s.repo.InsertReview(review); err != nil {
		return err
	}
	_ = s.cache.SetMarker(ctx, cacheKey)
	return nil
}

func (s *ReviewService) Get(id int) (*domain.Review, error) {
	return s.repo.GetReview(id)
}

func (s *ReviewService) List(filter domain.ReviewFilter) ([]domain.Review, error) {
	return s.repo.ListReviews(filter)
}

func (s *ReviewService) ItemRatings(startDate, endDate string) ([]domain.ItemRating, error) {
	return s.rates.ItemRatings(startDate, endDate)
}

var _ ReviewServiceInterface = (*ReviewService)(nil)
