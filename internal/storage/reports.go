package storage

import (
	"github.com/sanjayxseth/mskitchen/internal/domain"
)

func (r *PostgresRepository) CustomerOrderValues(startDate, endDate string) ([]domain.CustomerOrderValue, error) {
	rows, err := r.DB.Query(`
		SELECT c.id, c.whatsapp_number, COALESCE(c.name, ''), COALESCE(c.address, ''),
		       COUNT(DISTINCT o.id) AS total_orders,
		       COALESCE(SUM(o.order_value), 0) AS total_value
		FROM customers c
		JOIN orders o ON o.customer_id = c.id
		WHERE o.created_at >= $1 AND o.created_at <= $2
		GROUP BY c.id, c.whatsapp_number, c.name, c.address
		HAVING COUNT(DISTINCT o.id) > 0
		ORDER BY total_value DESC`, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []domain.CustomerOrderValue
	for rows.Next() {
		var row domain.CustomerOrderValue
		if err := rows.Scan(&row.CustomerID, &row.WhatsAppNumber, &row.Name, &row.Address,
			&row.TotalOrders, &row.TotalValue); err != nil {
			continue
		}
		report = append(report, row)
	}
	return report, nil
}

func (r *PostgresRepository) ItemOrderCounts(startDate, endDate string) ([]domain.ItemOrderCount, error) {
	rows, err := r.DB.Query(`
		SELECT mi.id, mi.name,
		       COUNT(oi.id) AS order_count,
		       SUM(oi.quantity) AS total_quantity,
		       COALESCE(SUM(oi.subtotal), 0) AS total_revenue
		FROM menu_items mi
		JOIN order_items oi ON oi.menu_item_id = mi.id
		JOIN orders o ON o.id = oi.order_id
		WHERE o.created_at >= $1 AND o.created_at <= $2
		GROUP BY mi.id, mi.name
		ORDER BY order_count DESC`, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []domain.ItemOrderCount
	for rows.Next() {
		var row domain.ItemOrderCount
		if err := rows.Scan(&row.MenuItemID, &row.Name, &row.OrderCount,
			&row.TotalQuantity, &row.TotalRevenue); err != nil {
			continue
		}
		report = append(report, row)
	}
	return report, nil
}

func (r *PostgresRepository) ItemRatings(startDate, endDate string) ([]domain.ItemRating, error) {
	rows, err := r.DB.Query(`
		SELECT mi.id, mi.name,
		       COUNT(r.id) AS review_count,
		       ROUND(AVG(r.rating)::numeric, 2) AS average_rating
		FROM menu_items mi
		JOIN reviews r ON r.menu_item_id = mi.id
		JOIN orders o ON o.id = r.order_id
		WHERE o.created_at >= $1 AND o.created_at <= $2
		GROUP BY mi.id, mi.name
		HAVING COUNT(r.id) > 0
		ORDER BY average_rating DESC, review_count DESC`, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []domain.ItemRating
	for rows.Next() {
		var row domain.ItemRating
		if err := rows.Scan(&row.MenuItemID, &row.Name, &row.ReviewCount, &row.AverageRating); err != nil {
			continue
		}
		report = append(report, row)
	}
	return report, nil
}

// TopItemsToday is the SQL fallback for the analytics leaderboard when
// Redis has nothing for the day.
func (r *PostgresRepository) TopItemsToday(limit int) ([]domain.ItemAnalytics, error) {
	rows, err := r.DB.Query(`
		SELECT mi.id, mi.name, SUM(oi.quantity) AS score
		FROM menu_items mi
		JOIN order_items oi ON oi.menu_item_id = mi.id
		JOIN orders o ON o.id = oi.order_id
		WHERE o.created_at::date = CURRENT_DATE
		GROUP BY mi.id, mi.name
		ORDER BY score DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.ItemAnalytics
	for rows.Next() {
		var item domain.ItemAnalytics
		if err := rows.Scan(&item.MenuItemID, &item.ItemName, &item.Score); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// ItemName resolves a menu item id for leaderboard rows coming back
// from Redis.
func (r *PostgresRepository) ItemName(menuItemID int) (string, error) {
	var name string
	err := r.DB.QueryRow("SELECT name FROM menu_items WHERE id = $1", menuItemID).Scan(&name)
	return name, err
}
