package service

import (
	"context"
	"log"
	"time"

	"github.com/sanjayxseth/mskitchen/internal/domain"
	"github.com/sanjayxseth/mskitchen/internal/notify"
)

type OrderService struct {
	repo           OrderRepository
	notifier       Notifier
	publisher      OrderPublisher
	qrEncoder      UPIQRGenerator
	operatorNumber string
}

func NewOrderService(repo OrderRepository, notifier Notifier, publisher OrderPublisher, qr UPIQRGenerator, operatorNumber string) *OrderService {
	return &OrderService{
		repo:           repo,
		notifier:       notifier,
		publisher:      publisher,
		qrEncoder:      qr,
		operatorNumber: operatorNumber,
	}
}

// Place validates the payload, runs the placement transaction, and
// after the commit fires the operator notification and the analytics
// event. Neither post-commit step can fail the order: the notification
// outcome only shows up as the Notified flag.
func (s *OrderService) Place(ctx context.Context, req *domain.PlaceOrderRequest) (*domain.Order, error) {
	if req.MenuID <= 0 || len(req.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}
	if req.CustomerID <= 0 && req.WhatsAppNumber == "" {
		return nil, domain.ErrCustomerRequired
	}

	placed, err := s.repo.PlaceOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	// Reload with the joined customer and menu fields; if the reload
	// fails the committed order is still returned as-is.
	order := placed
	if full, err := s.repo.GetOrder(placed.ID); err == nil {
		order = full
	}

	if s.notifier != nil && s.operatorNumber != "" {
		message := notify.OrderConfirmation(order)
		if err := s.notifier.Send(s.operatorNumber, message); err != nil {
			log.Printf("[orders] WARNING: notification for order %d failed: %v", order.ID, err)
		} else {
			order.Notified = true
		}
	}

	if s.publisher != nil {
		items := make([]domain.OrderEventItem, 0, len(order.Items))
		for _, line := range order.Items {
			items = append(items, domain.OrderEventItem{MenuItemID: line.MenuItemID, Quantity: line.Quantity})
		}
		_ = s.publisher.PublishOrder(ctx, domain.OrderEvent{
			Type:       domain.EventOrderPlaced,
			OrderID:    order.ID,
			MenuID:     order.MenuID,
			MenuDate:   order.MenuDate,
			CustomerID: order.CustomerID,
			OrderValue: order.OrderValue.StringFixed(2),
			Items:      items,
			Timestamp:  time.Now(),
		})
	}

	return order, nil
}

func (s *OrderService) Get(id int) (*domain.Order, error) {
	return s.repo.GetOrder(id)
}

func (s *OrderService) List(filter domain.OrderFilter) ([]domain.Order, error) {
	return s.repo.ListOrders(filter)
}

func (s *OrderService) UpdatePayment(id int, status string) (*domain.Order, error) {
	if !domain.ValidPaymentStatus(status) {
		return nil, domain.ErrInvalidPaymentStatus
	}
	return s.repo.UpdatePaymentStatus(id, status)
}

func (s *OrderService) PendingPayments(date string) ([]domain.PendingPayment, error) {
	return s.repo.PendingPayments(date)
}

// NotifyPendingPayments sends the day's unpaid-orders report to the
// operator: one summary message, then one message per order. Returns
// how many messages went out.
func (s *OrderService) NotifyPendingPayments(date string) (int, error) {
	payments, err := s.repo.PendingPayments(date)
	if err != nil {
		return 0, err
	}
	if s.notifier == nil || s.operatorNumber == "" {
		return 0, notify.ErrNotConfigured
	}

	sent := 0
	if err := s.notifier.Send(s.operatorNumber, notify.PendingPaymentsSummary(date, payments)); err != nil {
		return 0, err
	}
	sent++

	for _, p := range payments {
		if err := s.notifier.Send(s.operatorNumber, notify.PendingPaymentDetail(p)); err != nil {
			log.Printf("[orders] WARNING: pending payment reminder for order %d failed: %v", p.OrderID, err)
			continue
		}
		sent++
	}
	return sent, nil
}

func (s *OrderService) PaymentQRCode(orderID int) ([]byte, error) {
	upi, value, err := s.repo.OrderUPIDetails(orderID)
	if err != nil {
		return nil, err
	}
	return s.qrEncoder.Generate(upi, value, orderID)
}

var _ OrderServiceInterface = (*OrderService)(nil)
