package tests

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sanjayxseth/mskitchen/internal/domain"
	"github.com/sanjayxseth/mskitchen/internal/mocks"
	"github.com/sanjayxseth/mskitchen/internal/service"
)

func TestReportService_CustomerOrderValuesPDF(t *testing.T) {
	repository := mocks.NewReportRepository(t)
	svc := service.NewReportService(repository)

	rows := []domain.CustomerOrderValue{
		{CustomerID: 7, Name: "Asha", WhatsAppNumber: "+911111111111", TotalOrders: 4, TotalValue: decimal.RequireFromString("1400.00")},
		{CustomerID: 8, Name: "Ravi", WhatsAppNumber: "+912222222222", TotalOrders: 2, TotalValue: decimal.RequireFromString("510.00")},
	}
	repository.On("CustomerOrderValues", "2026-08-01", "2026-08-31").Return(rows, nil).Once()

	pdf, err := svc.CustomerOrderValuesPDF("2026-08-01", "2026-08-31")
	assert.NoError(t, err)
	assert.True(t, len(pdf) > 4)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestReportService_ItemRatingsPDF_Empty(t *testing.T) {
	repository := mocks.NewReportRepository(t)
	svc := service.NewReportService(repository)

	repository.On("ItemRatings", "2026-08-01", "2026-08-31").Return([]domain.ItemRating{}, nil).Once()

	pdf, err := svc.ItemRatingsPDF("2026-08-01", "2026-08-31")
	assert.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestReportService_ItemOrderCounts_Passthrough(t *testing.T) {
	repository := mocks.NewReportRepository(t)
	svc := service.NewReportService(repository)

	rows := []domain.ItemOrderCount{
		{MenuItemID: 3, Name: "Dal Makhani", OrderCount: 12, TotalQuantity: 30, TotalRevenue: decimal.RequireFromString("4500.00")},
	}
	repository.On("ItemOrderCounts", "2026-08-01", "2026-08-31").Return(rows, nil).Once()

	got, err := svc.ItemOrderCounts("2026-08-01", "2026-08-31")
	assert.NoError(t, err)
	assert.Equal(t, rows, got)
}
