package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sanjayxseth/mskitchen/internal/domain"
)

type OrderRepository interface {
	PlaceOrder(ctx context.Context, req *domain.PlaceOrderRequest) (*domain.Order, error)
	GetOrder(id int) (*domain.Order, error)
	ListOrders(filter domain.OrderFilter) ([]domain.Order, error)
	UpdatePaymentStatus(id int, status string) (*domain.Order, error)
	PendingPayments(date string) ([]domain.PendingPayment, error)
	OrderUPIDetails(orderID int) (string, decimal.Decimal, error)
}

type MenuRepository interface {
	CreateMenu(menu *domain.Menu) error
	ListMenus() ([]domain.Menu, error)
	GetMenu(id int) (*domain.Menu, error)
	GetMenuByDate(date string) (*domain.Menu, error)
	UpdateMenu(menu *domain.Menu) error
	DeleteMenu(id int) (int64, error)
}

type CustomerRepository interface {
	CreateCustomer(c *domain.Customer) error
	ListCustomers() ([]domain.Customer, error)
	GetCustomer(id int) (*domain.Customer, error)
	GetCustomerByWhatsApp(number string) (*domain.Customer, error)
	UpdateCustomer(c *domain.Customer) error
	DeleteCustomer(id int) (int64, error)
}

type ReviewRepository interface {
	OrderBelongsToCustomer(orderID, customerID int) (bool, error)
	ItemInOrder(menuItemID, orderID int) (bool, error)
	HasReview(orderID, customerID int) (bool, error)
	InsertReview(review *domain.Review) error
	GetReview(id int) (*domain.Review, error)
	ListReviews(filter domain.ReviewFilter) ([]domain.Review, error)
}

type RecipeRepository interface {
	CreateRecipe(rec *domain.Recipe) error
	ListRecipes() ([]domain.Recipe, error)
	GetRecipe(id int) (*domain.Recipe, error)
	UpdateRecipe(rec *domain.Recipe) error
	DeleteRecipe(id int) (int64, error)
}

type ReportRepository interface {
	CustomerOrderValues(startDate, endDate string) ([]domain.CustomerOrderValue, error)
	ItemOrderCounts(startDate, endDate string) ([]domain.ItemOrderCount, error)
	ItemRatings(startDate, endDate string) ([]domain.ItemRating, error)
	TopItemsToday(limit int) ([]domain.ItemAnalytics, error)
	ItemName(menuItemID int) (string, error)
}

type ReviewCache interface {
	ReviewMarkerKey(orderID, customerID int) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

type AnalyticsCache interface {
	IncrementItemScore(ctx context.Context, date string, menuItemID, quantity int) error
	TopItems(ctx context.Context, date string, limit int) (map[int]float64, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

// Notifier delivers a rendered message to a WhatsApp number. No
// delivery guarantee; callers decide what a failure means.
type Notifier interface {
	Send(to, message string) error
}

type OrderServiceInterface interface {
	Place(ctx context.Context, req *domain.PlaceOrderRequest) (*domain.Order, error)
	Get(id int) (*domain.Order, error)
	List(filter domain.OrderFilter) ([]domain.Order, error)
	UpdatePayment(id int, status string) (*domain.Order, error)
	PendingPayments(date string) ([]domain.PendingPayment, error)
	NotifyPendingPayments(date string) (int, error)
	PaymentQRCode(orderID int) ([]byte, error)
}

type MenuServiceInterface interface {
	Create(menu *domain.Menu) error
	List() ([]domain.Menu, error)
	Get(id int) (*domain.Menu, error)
	GetByDate(date string) (*domain.Menu, error)
	Update(menu *domain.Menu) error
	Delete(id int) (int64, error)
	Broadcast(id int, numbers []string) ([]domain.BroadcastResult, error)
}

type CustomerServiceInterface interface {
	Create(c *domain.Customer) error
	List() ([]domain.Customer, error)
	Get(id int) (*domain.Customer, error)
	GetByWhatsApp(number string) (*domain.Customer, error)
	BulkCreate(customers []domain.Customer) (*domain.BulkCreateResult, error)
	Update(c *domain.Customer) error
	Delete(id int) (int64, error)
}

type ReviewServiceInterface interface {
	Create(ctx context.Context, review *domain.Review) error
	Get(id int) (*domain.Review, error)
	List(filter domain.ReviewFilter) ([]domain.Review, error)
	ItemRatings(startDate, endDate string) ([]domain.ItemRating, error)
}

type RecipeServiceInterface interface {
	Create(rec *domain.Recipe) error
	List() ([]domain.Recipe, error)
	Get(id int) (*domain.Recipe, error)
	Update(rec *domain.Recipe) error
	Delete(id int) (int64, error)
}

type ReportServiceInterface interface {
	CustomerOrderValues(startDate, endDate string) ([]domain.CustomerOrderValue, error)
	CustomerOrderValuesPDF(startDate, endDate string) ([]byte, error)
	ItemOrderCounts(startDate, endDate string) ([]domain.ItemOrderCount, error)
	ItemOrderCountsPDF(startDate, endDate string) ([]byte, error)
	ItemRatings(startDate, endDate string) ([]domain.ItemRating, error)
	ItemRatingsPDF(startDate, endDate string) ([]byte, error)
}

type AnalyticsServiceInterface interface {
	TopItemsToday(ctx context.Context, limit int) ([]domain.ItemAnalytics, error)
}
