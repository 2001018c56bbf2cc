package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID             int             `json:"id"`
	WhatsAppNumber string          `json:"whatsapp_number"`
	Address        string          `json:"address"`
	Name           string          `json:"name"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	TotalOrders    int             `json:"total_orders,omitempty"`
	TotalSpent     decimal.Decimal `json:"total_spent,omitempty"`
}

type Menu struct {
	ID                  int             `json:"id"`
	Date                time.Time       `json:"date"`
	DeliveryWindowStart string          `json:"delivery_window_start"`
	DeliveryWindowEnd   string          `json:"delivery_window_end"`
	UPIPhoneNumber      string          `json:"upi_phone_number"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	Items               []MenuItem      `json:"items,omitempty"`
	TotalOrders         int             `json:"total_orders,omitempty"`
	TotalRevenue        decimal.Decimal `json:"total_revenue,omitempty"`
}

type MenuItem struct {
	ID                int             `json:"id"`
	MenuID            int             `json:"menu_id"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	QuantityAvailable int             `json:"quantity_available"`
	QuantitySold      int             `json:"quantity_sold"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type Order struct {
	ID                 int             `json:"id"`
	MenuID             int             `json:"menu_id"`
	CustomerID         int             `json:"customer_id"`
	OrderValue         decimal.Decimal `json:"order_value"`
	Status             string          `json:"status"`
	PaymentStatus      string          `json:"payment_status"`
	PaymentConfirmedAt *time.Time      `json:"payment_confirmed_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	Items              []OrderLine     `json:"items"`

	CustomerWhatsApp    string `json:"customer_whatsapp,omitempty"`
	CustomerAddress     string `json:"customer_address,omitempty"`
	CustomerName        string `json:"customer_name,omitempty"`
	MenuDate            string `json:"menu_date,omitempty"`
	DeliveryWindowStart string `json:"delivery_window_start,omitempty"`
	DeliveryWindowEnd   string `json:"delivery_window_end,omitempty"`

	// Notified reports whether the post-commit operator notification
	// went out. It never affects the order itself.
	Notified bool `json:"notified"`
}

type OrderLine struct {
	ID         int             `json:"id"`
	OrderID    int             `json:"order_id"`
	MenuItemID int             `json:"menu_item_id"`
	ItemName   string          `json:"item_name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

type Review struct {
	ID         int       `json:"id"`
	OrderID    int       `json:"order_id"`
	CustomerID int       `json:"customer_id"`
	MenuItemID *int      `json:"menu_item_id,omitempty"`
	Rating     int       `json:"rating"`
	Comments   string    `json:"comments"`
	CreatedAt  time.Time `json:"created_at"`

	CustomerWhatsApp string          `json:"customer_whatsapp,omitempty"`
	CustomerName     string          `json:"customer_name,omitempty"`
	MenuItemName     string          `json:"menu_item_name,omitempty"`
	OrderValue       decimal.Decimal `json:"order_value,omitempty"`
}

type Recipe struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Ingredients  string    `json:"ingredients"`
	Instructions string    `json:"instructions"`
	PrepTime     int       `json:"prep_time"`
	CookTime     int       `json:"cook_time"`
	Servings     int       `json:"servings"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PlaceOrderRequest is the caller payload for the placement
// transaction. Either CustomerID or WhatsAppNumber identifies the
// customer; an explicit id wins when both are present.
type PlaceOrderRequest struct {
	MenuID         int                `json:"menu_id"`
	CustomerID     int                `json:"customer_id,omitempty"`
	WhatsAppNumber string             `json:"whatsapp_number,omitempty"`
	Address        string             `json:"address,omitempty"`
	Name           string             `json:"name,omitempty"`
	Items          []OrderLineRequest `json:"items"`
}

type OrderLineRequest struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

// OrderFilter narrows order listings. Zero values mean "no filter".
type OrderFilter struct {
	StartDate     string
	EndDate       string
	Status        string
	PaymentStatus string
}

type ReviewFilter struct {
	StartDate  string
	EndDate    string
	MenuItemID int
	MinRating  int
}

type PendingPayment struct {
	OrderID          int             `json:"order_id"`
	OrderValue       decimal.Decimal `json:"order_value"`
	CreatedAt        time.Time       `json:"created_at"`
	MenuDate         string          `json:"menu_date"`
	CustomerWhatsApp string          `json:"customer_whatsapp"`
	CustomerAddress  string          `json:"customer_address"`
	CustomerName     string          `json:"customer_name"`
	OrderItems       string          `json:"order_items"`
}

type CustomerOrderValue struct {
	CustomerID     int             `json:"id"`
	WhatsAppNumber string          `json:"whatsapp_number"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	TotalOrders    int             `json:"total_orders"`
	TotalValue     decimal.Decimal `json:"total_value"`
}

type ItemOrderCount struct {
	MenuItemID    int             `json:"id"`
	Name          string          `json:"name"`
	OrderCount    int             `json:"order_count"`
	TotalQuantity int             `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

type ItemRating struct {
	MenuItemID    int     `json:"id"`
	Name          string  `json:"name"`
	ReviewCount   int     `json:"review_count"`
	AverageRating float64 `json:"average_rating"`
}

type ItemAnalytics struct {
	MenuItemID int     `json:"menu_item_id"`
	ItemName   string  `json:"item_name"`
	Score      float64 `json:"score"`
}

// OrderEvent is published to Kafka after a placement commits.
type OrderEvent struct {
	Type       string           `json:"type"`
	OrderID    int              `json:"order_id"`
	MenuID     int              `json:"menu_id"`
	MenuDate   string           `json:"menu_date"`
	CustomerID int              `json:"customer_id"`
	OrderValue string           `json:"order_value"`
	Items      []OrderEventItem `json:"items"`
	Timestamp  time.Time        `json:"timestamp"`
}

type OrderEventItem struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

type BroadcastResult struct {
	Number  string `json:"number"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type BulkCreateResult struct {
	Created []Customer        `json:"customers"`
	Skipped []SkippedCustomer `json:"skipped"`
}

type SkippedCustomer struct {
	WhatsAppNumber string `json:"whatsapp_number"`
	Reason         string `json:"reason"`
}

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"

	PaymentPending   = "pending"
	PaymentConfirmed = "confirmed"
	PaymentPaid      = "paid"

	EventOrderPlaced = "order_placed"
)

func ValidPaymentStatus(status string) bool {
	switch status {
	case PaymentPending, PaymentConfirmed, PaymentPaid:
		return true
	}
	return false
}
