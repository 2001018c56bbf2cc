package storage

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/sanjayxseth/mskitchen/internal/domain"
)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestPlaceOrder_Success(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	req := &domain.PlaceOrderRequest{
		MenuID:         1,
		WhatsAppNumber: "+919876543210",
		Name:           "Asha",
		Items: []domain.OrderLineRequest{
			{MenuItemID: 3, Quantity: 2},
			{MenuItemID: 4, Quantity: 1},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM menus").WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery("SELECT id FROM customers WHERE whatsapp_number").WithArgs("+919876543210").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("INSERT INTO customers").WithArgs("+919876543210", "", "Asha").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery("SELECT name, price, quantity_available").WithArgs(3, 1).
		WillReturnRows(sqlmock.NewRows([]string{"name", "price", "quantity_available"}).
			AddRow("Dal Makhani", "175.00", 10))
	mock.ExpectExec("UPDATE menu_items").WithArgs(2, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT name, price, quantity_available").WithArgs(4, 1).
		WillReturnRows(sqlmock.NewRows([]string{"name", "price", "quantity_available"}).
			AddRow("Paneer Tikka", "180.00", 5))
	mock.ExpectExec("UPDATE menu_items").WithArgs(1, 4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, time.Now()))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101))
	mock.ExpectCommit()

	order, err := repo.PlaceOrder(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, 42, order.ID)
	assert.Equal(t, 7, order.CustomerID)
	assert.Equal(t, "530.00", order.OrderValue.StringFixed(2))
	assert.Len(t, order.Items, 2)
	assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrder_MenuNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	req := &domain.PlaceOrderRequest{
		MenuID:     99,
		CustomerID: 7,
		Items:      []domain.OrderLineRequest{{MenuItemID: 3, Quantity: 1}},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM menus").WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	order, err := repo.PlaceOrder(context.Background(), req)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domain.ErrMenuNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A duplicate line checks availability after the earlier line's
// decrement, so two lines of 3 against a stock of 5 must fail on the
// second line and roll everything back.
func TestPlaceOrder_DuplicateLineSeesDecrement(t *testing.T) {
	repo, mock := newMockRepo(t)

	req := &domain.PlaceOrderRequest{
		MenuID:     1,
		CustomerID: 7,
		Items: []domain.OrderLineRequest{
			{MenuItemID: 3, Quantity: 3},
			{MenuItemID: 3, Quantity: 3},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM menus").WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery("SELECT id FROM customers WHERE id").WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery("SELECT name, price, quantity_available").WithArgs(3, 1).
		WillReturnRows(sqlmock.NewRows([]string{"name", "price", "quantity_available"}).
			AddRow("Dal Makhani", "175.00", 5))
	mock.ExpectExec("UPDATE menu_items").WithArgs(3, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT name, price, quantity_available").WithArgs(3, 1).
		WillReturnRows(sqlmock.NewRows([]string{"name", "price", "quantity_available"}).
			AddRow("Dal Makhani", "175.00", 2))
	mock.ExpectRollback()

	order, err := repo.PlaceOrder(context.Background(), req)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var lineErr *domain.LineError
	assert.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 3, lineErr.MenuItemID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrder_ItemNotOnMenu(t *testing.T) {
	repo, mock := newMockRepo(t)

	req := &domain.PlaceOrderRequest{
		MenuID:     1,
		CustomerID: 7,
		Items:      []domain.OrderLineRequest{{MenuItemID: 77, Quantity: 1}},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM menus").WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery("SELECT id FROM customers WHERE id").WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery("SELECT name, price, quantity_available").WithArgs(77, 1).
		WillReturnRows(sqlmock.NewRows([]string{"name", "price", "quantity_available"}))
	mock.ExpectRollback()

	order, err := repo.PlaceOrder(context.Background(), req)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrder_CustomerConflict(t *testing.T) {
	repo, mock := newMockRepo(t)

	req := &domain.PlaceOrderRequest{
		MenuID:         1,
		WhatsAppNumber: "+919876543210",
		Items:          []domain.OrderLineRequest{{MenuItemID: 3, Quantity: 1}},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM menus").WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery("SELECT id FROM customers WHERE whatsapp_number").WithArgs("+919876543210").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("INSERT INTO customers").
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	order, err := repo.PlaceOrder(context.Background(), req)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domain.ErrCustomerConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePaymentStatus_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("UPDATE orders").WithArgs("paid", 99).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	order, err := repo.UpdatePaymentStatus(99, "paid")
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
