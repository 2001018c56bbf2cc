package notify

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sanjayxseth/mskitchen/internal/domain"
)

func TestMenuMessage(t *testing.T) {
	menu := &domain.Menu{
		ID:                  5,
		Date:                time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		DeliveryWindowStart: "12:00",
		DeliveryWindowEnd:   "14:00",
		UPIPhoneNumber:      "9876543210@upi",
		Items: []domain.MenuItem{
			{Name: "Paneer Tikka", Price: decimal.RequireFromString("180.00"), QuantityAvailable: 20},
			{Name: "Dal Makhani", Price: decimal.RequireFromString("150.00"), QuantityAvailable: 15},
		},
	}

	message := MenuMessage(menu, "http://localhost:3000")

	assert.Contains(t, message, "Date: 2026-08-28")
	assert.Contains(t, message, "Delivery: 12:00 - 14:00")
	assert.Contains(t, message, "1. *Paneer Tikka*")
	assert.Contains(t, message, "₹180.00")
	assert.Contains(t, message, "2. *Dal Makhani*")
	assert.Contains(t, message, "Available: 15 plates")
	assert.Contains(t, message, "UPI: 9876543210@upi")
	assert.Contains(t, message, "http://localhost:3000/order/5")
}

func TestOrderConfirmation(t *testing.T) {
	order := &domain.Order{
		ID:               42,
		OrderValue:       decimal.RequireFromString("480.00"),
		CustomerName:     "Asha",
		CustomerWhatsApp: "+919876543210",
		CustomerAddress:  "12 MG Road",
		CreatedAt:        time.Date(2026, 8, 28, 13, 30, 0, 0, time.UTC),
		Items: []domain.OrderLine{
			{ItemName: "Paneer Tikka", Quantity: 2},
			{ItemName: "Dal Makhani", Quantity: 1},
		},
	}

	message := OrderConfirmation(order)

	assert.Contains(t, message, "Order ID: #42")
	assert.Contains(t, message, "Customer: Asha")
	assert.Contains(t, message, "₹480.00")
	assert.Contains(t, message, "Paneer Tikka x2, Dal Makhani x1")
}

func TestOrderConfirmation_MissingName(t *testing.T) {
	order := &domain.Order{ID: 1, OrderValue: decimal.Zero}
	assert.Contains(t, OrderConfirmation(order), "Customer: N/A")
}

func TestPendingPaymentsSummary(t *testing.T) {
	assert.Contains(t, PendingPaymentsSummary("2026-08-28", nil), "All payments received")

	payments := []domain.PendingPayment{
		{OrderID: 42, OrderValue: decimal.RequireFromString("350.00")},
		{OrderID: 43, OrderValue: decimal.RequireFromString("120.50")},
	}
	message := PendingPaymentsSummary("2026-08-28", payments)
	assert.Contains(t, message, "Total Pending: 2 orders")
	assert.Contains(t, message, "₹470.50")
}

func TestWhatsappAddr(t *testing.T) {
	assert.Equal(t, "whatsapp:+919876543210", whatsappAddr("+919876543210"))
	assert.Equal(t, "whatsapp:+919876543210", whatsappAddr("whatsapp:+919876543210"))
}

func TestTwilioNotifier_NotConfigured(t *testing.T) {
	notifier := NewTwilioNotifier("", "", "")
	assert.ErrorIs(t, notifier.Send("+919876543210", "hello"), ErrNotConfigured)
}
