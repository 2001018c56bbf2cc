package storage

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/sanjayxseth/mskitchen/internal/domain"
)

// PlaceOrder runs the whole placement as one transaction: resolve the
// customer, lock and check each requested menu item, decrement stock,
// and persist the order with its lines. Any failure rolls everything
// back. Lines are processed in submission order; a later line sees the
// stock decrement of an earlier line, including duplicates of the same
// item.
func (r *PostgresRepository) PlaceOrder(ctx context.Context, req *domain.PlaceOrderRequest) (*domain.Order, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var menuID int
	err = tx.QueryRowContext(ctx, "SELECT id FROM menus WHERE id = $1", req.MenuID).Scan(&menuID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrMenuNotFound
	}
	if err != nil {
		return nil, err
	}

	customerID, err := resolveCustomer(ctx, tx, req)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	lines := make([]domain.OrderLine, 0, len(req.Items))
	for _, line := range req.Items {
		var (
			name      string
			price     decimal.Decimal
			available int
		)
		err = tx.QueryRowContext(ctx, `
			SELECT name, price, quantity_available
			FROM menu_items
			WHERE id = $1 AND menu_id = $2
			FOR UPDATE`,
			line.MenuItemID, req.MenuID).Scan(&name, &price, &available)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.LineError{MenuItemID: line.MenuItemID, Err: domain.ErrItemNotFound}
		}
		if err != nil {
			return nil, err
		}
		if line.Quantity > available {
			return nil, &domain.LineError{MenuItemID: line.MenuItemID, Err: domain.ErrInsufficientStock}
		}

		// Decrement immediately so a duplicate line later in the
		// request checks against the reduced availability.
		if _, err = tx.ExecContext(ctx, `
			UPDATE menu_items
			SET quantity_sold = quantity_sold + $1,
			    quantity_available = quantity_available - $1,
			    updated_at = NOW()
			WHERE id = $2`,
			line.Quantity, line.MenuItemID); err != nil {
			return nil, err
		}

		subtotal := price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(subtotal)
		lines = append(lines, domain.OrderLine{
			MenuItemID: line.MenuItemID,
			ItemName:   name,
			Quantity:   line.Quantity,
			Price:      price,
			Subtotal:   subtotal,
		})
	}

	order := &domain.Order{
		MenuID:        req.MenuID,
		CustomerID:    customerID,
		OrderValue:    total,
		Status:        domain.OrderStatusConfirmed,
		PaymentStatus: domain.PaymentPending,
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (menu_id, customer_id, order_value, status, payment_status)
		VALUES ($1, $2, $3, 'confirmed', 'pending')
		RETURNING id, created_at`,
		order.MenuID, order.CustomerID, order.OrderValue).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return nil, err
	}

	for i := range lines {
		lines[i].OrderID = order.ID
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, quantity, price, subtotal)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			order.ID, lines[i].MenuItemID, lines[i].Quantity, lines[i].Price, lines[i].Subtotal).
			Scan(&lines[i].ID)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	order.Items = lines
	return order, nil
}

// resolveCustomer returns the id of an existing customer, or inserts a
// new row keyed by whatsapp number. The unique constraint on
// whatsapp_number arbitrates concurrent first-time inserts: the loser
// fails the whole placement with ErrCustomerConflict.
func resolveCustomer(ctx context.Context, tx *sql.Tx, req *domain.PlaceOrderRequest) (int, error) {
	if req.CustomerID > 0 {
		var id int
		err := tx.QueryRowContext(ctx, "SELECT id FROM customers WHERE id = $1", req.CustomerID).Scan(&id)
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrCustomerNotFound
		}
		return id, err
	}

	if req.WhatsAppNumber == "" {
		return 0, domain.ErrCustomerRequired
	}

	var id int
	err := tx.QueryRowContext(ctx, "SELECT id FROM customers WHERE whatsapp_number = $1", req.WhatsAppNumber).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO customers (whatsapp_number, address, name)
		VALUES ($1, $2, $3)
		RETURNING id`,
		req.WhatsAppNumber, req.Address, req.Name).Scan(&id)
	if isUniqueViolation(err) {
		return 0, domain.ErrCustomerConflict
	}
	return id, err
}

func (r *PostgresRepository) GetOrder(id int) (*domain.Order, error) {
	var order domain.Order
	var confirmedAt sql.NullTime
	err := r.DB.QueryRow(`
		SELECT o.id, o.menu_id, o.customer_id, o.order_value, o.status, o.payment_status,
		       o.payment_confirmed_at, o.created_at, o.updated_at,
		       c.whatsapp_number, COALESCE(c.address, ''), COALESCE(c.name, ''),
		       m.date::text, m.delivery_window_start::text, m.delivery_window_end::text
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN menus m ON m.id = o.menu_id
		WHERE o.id = $1`, id).
		Scan(&order.ID, &order.MenuID, &order.CustomerID, &order.OrderValue, &order.Status,
			&order.PaymentStatus, &confirmedAt, &order.CreatedAt, &order.UpdatedAt,
			&order.CustomerWhatsApp, &order.CustomerAddress, &order.CustomerName,
			&order.MenuDate, &order.DeliveryWindowStart, &order.DeliveryWindowEnd)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if confirmedAt.Valid {
		order.PaymentConfirmedAt = &confirmedAt.Time
	}

	items, err := r.orderLines(order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *PostgresRepository) ListOrders(filter domain.OrderFilter) ([]domain.Order, error) {
	sqlStr := `
		SELECT o.id, o.menu_id, o.customer_id, o.order_value, o.status, o.payment_status,
		       o.payment_confirmed_at, o.created_at, o.updated_at,
		       c.whatsapp_number, COALESCE(c.address, ''), COALESCE(c.name, ''),
		       m.date::text
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN menus m ON m.id = o.menu_id
		WHERE 1=1`
	var params []interface{}
	if filter.StartDate != "" {
		params = append(params, filter.StartDate)
		sqlStr += " AND o.created_at >= $" + strconv.Itoa(len(params))
	}
	if filter.EndDate != "" {
		params = append(params, filter.EndDate)
		sqlStr += " AND o.created_at <= $" + strconv.Itoa(len(params))
	}
	if filter.Status != "" {
		params = append(params, filter.Status)
		sqlStr += " AND o.status = $" + strconv.Itoa(len(params))
	}
	if filter.PaymentStatus != "" {
		params = append(params, filter.PaymentStatus)
		sqlStr += " AND o.payment_status = $" + strconv.Itoa(len(params))
	}
	sqlStr += " ORDER BY o.created_at DESC"

	rows, err := r.DB.Query(sqlStr, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		var confirmedAt sql.NullTime
		if err := rows.Scan(&order.ID, &order.MenuID, &order.CustomerID, &order.OrderValue,
			&order.Status, &order.PaymentStatus, &confirmedAt, &order.CreatedAt, &order.UpdatedAt,
			&order.CustomerWhatsApp, &order.CustomerAddress, &order.CustomerName, &order.MenuDate); err != nil {
			continue
		}
		if confirmedAt.Valid {
			order.PaymentConfirmedAt = &confirmedAt.Time
		}
		orders = append(orders, order)
	}

	for i := range orders {
		items, err := r.orderLines(orders[i].ID)
		if err != nil {
			continue
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresRepository) orderLines(orderID int) ([]domain.OrderLine, error) {
	rows, err := r.DB.Query(`
		SELECT oi.id, oi.order_id, oi.menu_item_id, mi.name, oi.quantity, oi.price, oi.subtotal
		FROM order_items oi
		JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE oi.order_id = $1
		ORDER BY oi.id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderLine
	for rows.Next() {
		var item domain.OrderLine
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.ItemName,
			&item.Quantity, &item.Price, &item.Subtotal); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) UpdatePaymentStatus(id int, status string) (*domain.Order, error) {
	var order domain.Order
	var confirmedAt sql.NullTime
	err := r.DB.QueryRow(`
		UPDATE orders
		SET payment_status = $1,
		    payment_confirmed_at = CASE WHEN $1 IN ('confirmed', 'paid') THEN NOW() ELSE NULL END,
		    updated_at = NOW()
		WHERE id = $2
		RETURNING id, menu_id, customer_id, order_value, status, payment_status,
		          payment_confirmed_at, created_at, updated_at`,
		status, id).
		Scan(&order.ID, &order.MenuID, &order.CustomerID, &order.OrderValue, &order.Status,
			&order.PaymentStatus, &confirmedAt, &order.CreatedAt, &order.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if confirmedAt.Valid {
		order.PaymentConfirmedAt = &confirmedAt.Time
	}
	return &order, nil
}

func (r *PostgresRepository) PendingPayments(date string) ([]domain.PendingPayment, error) {
	rows, err := r.DB.Query(`
		SELECT o.id, o.order_value, o.created_at, m.date::text,
		       c.whatsapp_number, COALESCE(c.address, ''), COALESCE(c.name, ''),
		       STRING_AGG(mi.name || ' x' || oi.quantity, ', ') AS order_items
		FROM orders o
		JOIN menus m ON m.id = o.menu_id
		JOIN customers c ON c.id = o.customer_id
		JOIN order_items oi ON oi.order_id = o.id
		JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE m.date = $1 AND o.payment_status = 'pending'
		GROUP BY o.id, o.order_value, o.created_at, m.date, c.whatsapp_number, c.address, c.name
		ORDER BY o.created_at`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.PendingPayment
	for rows.Next() {
		var p domain.PendingPayment
		if err := rows.Scan(&p.OrderID, &p.OrderValue, &p.CreatedAt, &p.MenuDate,
			&p.CustomerWhatsApp, &p.CustomerAddress, &p.CustomerName, &p.OrderItems); err != nil {
			continue
		}
		payments = append(payments, p)
	}
	return payments, nil
}

// OrderUPIDetails returns what the payment QR needs: the menu's UPI
// number and the order value.
func (r *PostgresRepository) OrderUPIDetails(orderID int) (string, decimal.Decimal, error) {
	var upi string
	var value decimal.Decimal
	err := r.DB.QueryRow(`
		SELECT m.upi_phone_number, o.order_value
		FROM orders o
		JOIN menus m ON m.id = o.menu_id
		WHERE o.id = $1`, orderID).Scan(&upi, &value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", decimal.Zero, domain.ErrOrderNotFound
	}
	return upi, value, err
}
