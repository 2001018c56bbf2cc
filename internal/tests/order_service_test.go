package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sanjayxseth/mskitchen/internal/domain"
	"github.com/sanjayxseth/mskitchen/internal/mocks"
	"github.com/sanjayxseth/mskitchen/internal/service"
)

const operatorNumber = "+919876500000"

func newOrderService(t *testing.T) (*service.OrderService, *mocks.OrderRepository, *mocks.Notifier, *mocks.OrderPublisher) {
	repository := mocks.NewOrderRepository(t)
	notifier := mocks.NewNotifier(t)
	publisher := mocks.NewOrderPublisher(t)
	svc := service.NewOrderService(repository, notifier, publisher, service.DefaultUPIQRGenerator{PayeeName: "Test Kitchen"}, operatorNumber)
	return svc, repository, notifier, publisher
}

func placedOrder() *domain.Order {
	return &domain.Order{
		ID:         42,
		MenuID:     1,
		CustomerID: 7,
		OrderValue: decimal.RequireFromString("350.00"),
		Status:     domain.OrderStatusConfirmed,
		MenuDate:   "2026-08-28",
		Items: []domain.OrderLine{
			{MenuItemID: 3, ItemName: "Dal Makhani", Quantity: 2, Price: decimal.RequireFromString("175.00")},
		},
	}
}

func TestOrderService_Place_Validation(t *testing.T) {
	svc, _, _, _ := newOrderService(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		req           *domain.PlaceOrderRequest
		expectedError error
	}{
		{
			name:          "missing_menu",
			req:           &domain.PlaceOrderRequest{Items: []domain.OrderLineRequest{{MenuItemID: 1, Quantity: 1}}},
			expectedError: domain.ErrEmptyOrder,
		},
		{
			name:          "no_items",
			req:           &domain.PlaceOrderRequest{MenuID: 1},
			expectedError: domain.ErrEmptyOrder,
		},
		{
			name: "zero_quantity",
			req: &domain.PlaceOrderRequest{
				MenuID: 1, CustomerID: 7,
				Items: []domain.OrderLineRequest{{MenuItemID: 1, Quantity: 0}},
			},
			expectedError: domain.ErrInvalidQuantity,
		},
		{
			name: "negative_quantity",
			req: &domain.PlaceOrderRequest{
				MenuID: 1, CustomerID: 7,
				Items: []domain.OrderLineRequest{{MenuItemID: 1, Quantity: -2}},
			},
			expectedError: domain.ErrInvalidQuantity,
		},
		{
			name: "no_customer",
			req: &domain.PlaceOrderRequest{
				MenuID: 1,
				Items:  []domain.OrderLineRequest{{MenuItemID: 1, Quantity: 1}},
			},
			expectedError: domain.ErrCustomerRequired,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			order, err := svc.Place(ctx, testCase.req)
			assert.Nil(t, order)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestOrderService_Place_Success(t *testing.T) {
	svc, repository, notifier, publisher := newOrderService(t)
	ctx := context.Background()

	req := &domain.PlaceOrderRequest{
		MenuID:     1,
		CustomerID: 7,
		Items:      []domain.OrderLineRequest{{MenuItemID: 3, Quantity: 2}},
	}

	repository.On("PlaceOrder", ctx, req).Return(placedOrder(), nil).Once()
	repository.On("GetOrder", 42).Return(placedOrder(), nil).Once()
	notifier.On("Send", operatorNumber, mock.Anything).Return(nil).Once()
	publisher.On("PublishOrder", ctx, mock.MatchedBy(func(event domain.OrderEvent) bool {
		return event.Type == domain.EventOrderPlaced && event.OrderID == 42 && len(event.Items) == 1
	})).Return(nil).Once()

	order, err := svc.Place(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, 42, order.ID)
	assert.True(t, order.Notified)
}

func TestOrderService_Place_NotificationFailureDoesNotFailOrder(t *testing.T) {
	svc, repository, notifier, publisher := newOrderService(t)
	ctx := context.Background()

	req := &domain.PlaceOrderRequest{
		MenuID:         1,
		WhatsAppNumber: "+919876543210",
		Items:          []domain.OrderLineRequest{{MenuItemID: 3, Quantity: 2}},
	}

	repository.On("PlaceOrder", ctx, req).Return(placedOrder(), nil).Once()
	repository.On("GetOrder", 42).Return(placedOrder(), nil).Once()
	notifier.On("Send", operatorNumber, mock.Anything).Return(errors.New("twilio unreachable")).Once()
	publisher.On("PublishOrder", ctx, mock.Anything).Return(nil).Once()

	order, err := svc.Place(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, 42, order.ID)
	assert.False(t, order.Notified)
}

func TestOrderService_Place_StockError(t *testing.T) {
	svc, repository, _, _ := newOrderService(t)
	ctx := context.Background()

	req := &domain.PlaceOrderRequest{
		MenuID:     1,
		CustomerID: 7,
		Items:      []domain.OrderLineRequest{{MenuItemID: 3, Quantity: 500}},
	}

	lineErr := &domain.LineError{MenuItemID: 3, Err: domain.ErrInsufficientStock}
	repository.On("PlaceOrder", ctx, req).Return(nil, lineErr).Once()

	order, err := svc.Place(ctx, req)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var le *domain.LineError
	assert.ErrorAs(t, err, &le)
	assert.Equal(t, 3, le.MenuItemID)
}

func TestOrderService_UpdatePayment(t *testing.T) {
	svc, repository, _, _ := newOrderService(t)

	_, err := svc.UpdatePayment(42, "refunded")
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentStatus)

	updated := placedOrder()
	updated.PaymentStatus = domain.PaymentPaid
	repository.On("UpdatePaymentStatus", 42, "paid").Return(updated, nil).Once()

	order, err := svc.UpdatePayment(42, "paid")
	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, order.PaymentStatus)
}

func TestOrderService_NotifyPendingPayments(t *testing.T) {
	svc, repository, notifier, _ := newOrderService(t)

	payments := []domain.PendingPayment{
		{OrderID: 42, OrderValue: decimal.RequireFromString("350.00"), CustomerName: "Asha"},
		{OrderID: 43, OrderValue: decimal.RequireFromString("120.00"), CustomerName: "Ravi"},
	}
	repository.On("PendingPayments", "2026-08-28").Return(payments, nil).Once()
	notifier.On("Send", operatorNumber, mock.Anything).Return(nil).Times(3)

	sent, err := svc.NotifyPendingPayments("2026-08-28")
	assert.NoError(t, err)
	assert.Equal(t, 3, sent)
}

func TestOrderService_PaymentQRCode(t *testing.T) {
	svc, repository, _, _ := newOrderService(t)

	repository.On("OrderUPIDetails", 42).Return("9876543210@upi", decimal.RequireFromString("350.00"), nil).Once()

	png, err := svc.PaymentQRCode(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, png)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
