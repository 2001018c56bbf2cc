package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sanjayxseth/mskitchen/internal/domain"
	"github.com/sanjayxseth/mskitchen/internal/mocks"
	"github.com/sanjayxseth/mskitchen/internal/service"
)

func intPtr(v int) *int { return &v }

func TestReviewService_Create(t *testing.T) {
	repository := mocks.NewReviewRepository(t)
	reports := mocks.NewReportRepository(t)
	cache := mocks.NewReviewCache(t)

	svc := service.NewReviewService(repository, reports, cache)

	ctx := context.Background()

	tests := []struct {
		name          string
		review        *domain.Review
		prepareMocks  func()
		expectedError error
	}{
		{
			name: "success",
			review: &domain.Review{
				OrderID: 99, CustomerID: 7, Rating: 5, Comments: "Great!",
			},
			prepareMocks: func() {
				repository.On("OrderBelongsToCustomer", 99, 7).Return(true, nil).Once()
				cache.On("ReviewMarkerKey", 99, 7).Return("review:99:7").Once()
				cache.On("Exists", ctx, "review:99:7").Return(false, nil).Once()
				repository.On("HasReview", 99, 7).Return(false, nil).Once()
				repository.On("InsertReview", mock.Anything).Return(nil).Once()
				cache.On("SetMarker", ctx, "review:99:7").Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name: "success_with_item",
			review: &domain.Review{
				OrderID: 100, CustomerID: 7, MenuItemID: intPtr(3), Rating: 4,
			},
			prepareMocks: func() {
				repository.On("OrderBelongsToCustomer", 100, 7).Return(true, nil).Once()
				repository.On("ItemInOrder", 3, 100).Return(true, nil).Once()
				cache.On("ReviewMarkerKey", 100, 7).Return("review:100:7").Once()
				cache.On("Exists", ctx, "review:100:7").Return(false, nil).Once()
				repository.On("HasReview", 100, 7).Return(false, nil).Once()
				repository.On("InsertReview", mock.Anything).Return(nil).Once()
				cache.On("SetMarker", ctx, "review:100:7").Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name:          "error_missing_ids",
			review:        &domain.Review{Rating: 5},
			prepareMocks:  func() {},
			expectedError: domain.ErrReviewRequired,
		},
		{
			name:          "error_invalid_rating",
			review:        &domain.Review{OrderID: 99, CustomerID: 7, Rating: 6},
			prepareMocks:  func() {},
			expectedError: domain.ErrInvalidRating,
		},
		{
			name:   "error_order_not_owned",
			review: &domain.Review{OrderID: 55, CustomerID: 7, Rating: 3},
			prepareMocks: func() {
				repository.On("OrderBelongsToCustomer", 55, 7).Return(false, nil).Once()
			},
			expectedError: domain.ErrOrderNotFound,
		},
		{
			name:   "error_item_not_in_order",
			review: &domain.Review{OrderID: 56, CustomerID: 7, MenuItemID: intPtr(9), Rating: 3},
			prepareMocks: func() {
				repository.On("OrderBelongsToCustomer", 56, 7).Return(true, nil).Once()
				repository.On("ItemInOrder", 9, 56).Return(false, nil).Once()
			},
			expectedError: domain.ErrItemNotInOrder,
		},
		{
			name:   "error_duplicate_via_cache",
			review: &domain.Review{OrderID: 57, CustomerID: 7, Rating: 4},
			prepareMocks: func() {
				repository.On("OrderBelongsToCustomer", 57, 7).Return(true, nil).Once()
				cache.On("ReviewMarkerKey", 57, 7).Return("review:57:7").Once()
				cache.On("Exists", ctx, "review:57:7").Return(true, nil).Once()
			},
			expectedError: domain.ErrDuplicateReview,
		},
		{
			name:   "error_duplicate_via_database",
			review: &domain.Review{OrderID: 58, CustomerID: 7, Rating: 4},
			prepareMocks: func() {
				repository.On("OrderBelongsToCustomer", 58, 7).Return(true, nil).Once()
				cache.On("ReviewMarkerKey", 58, 7).Return("review:58:7").Once()
				cache.On("Exists", ctx, "review:58:7").Return(false, nil).Once()
				repository.On("HasReview", 58, 7).Return(true, nil).Once()
			},
			expectedError: domain.ErrDuplicateReview,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			err := svc.Create(ctx, testCase.review)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestReviewService_List(t *testing.T) {
	repository := mocks.NewReviewRepository(t)
	reports := mocks.NewReportRepository(t)
	cache := mocks.NewReviewCache(t)

	svc := service.NewReviewService(repository, reports, cache)

	expectedReviews := []domain.Review{
		{ID: 1, OrderID: 99, CustomerID: 7, Rating: 5, CreatedAt: time.Now()},
		{ID: 2, OrderID: 100, CustomerID: 8, Rating: 4, CreatedAt: time.Now()},
	}

	filter := domain.ReviewFilter{MinRating: 4}
	repository.On("ListReviews", filter).Return(expectedReviews, nil).Once()

	reviews, err := svc.List(filter)
	assert.NoError(t, err)
	assert.Equal(t, expectedReviews, reviews)
}

func TestReviewService_ItemRatings(t *testing.T) {
	repository := mocks.NewReviewRepository(t)
	reports := mocks.NewReportRepository(t)
	cache := mocks.NewReviewCache(t)

	svc := service.NewReviewService(repository, reports, cache)

	expected := []domain.ItemRating{
		{MenuItemID: 1, Name: "Paneer Tikka", ReviewCount: 12, AverageRating: 4.5},
	}
	reports.On("ItemRatings", "2026-08-01", "2026-08-31").Return(expected, nil).Once()

	ratings, err := svc.ItemRatings("2026-08-01", "2026-08-31")
	assert.NoError(t, err)
	assert.Equal(t, expected, ratings)
}
