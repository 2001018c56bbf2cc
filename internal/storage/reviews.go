package storage

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/sanjayxseth/mskitchen/internal/domain"
)

// OrderBelongsToCustomer verifies the review target exists.
func (r *PostgresRepository) OrderBelongsToCustomer(orderID, customerID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM orders WHERE id = $1 AND customer_id = $2
		)`, orderID, customerID).Scan(&exists)
	return exists, err
}

// ItemInOrder reports whether the menu item appears on the order's
// lines, so a review can only target something actually purchased.
func (r *PostgresRepository) ItemInOrder(menuItemID, orderID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM order_items WHERE menu_item_id = $1 AND order_id = $2
		)`, menuItemID, orderID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) HasReview(orderID, customerID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM reviews WHERE order_id = $1 AND customer_id = $2
		)`, orderID, customerID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) InsertReview(review *domain.Review) error {
	var itemID sql.NullInt64
	if review.MenuItemID != nil {
		itemID = sql.NullInt64{Int64: int64(*review.MenuItemID), Valid: true}
	}
	return r.DB.QueryRow(`
		INSERT INTO reviews (order_id, customer_id, menu_item_id, rating, comments)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		review.OrderID, review.CustomerID, itemID, review.Rating, review.Comments).
		Scan(&review.ID, &review.CreatedAt)
}

func (r *PostgresRepository) GetReview(id int) (*domain.Review, error) {
	var rev domain.Review
	var itemID sql.NullInt64
	var itemName sql.NullString
	err := r.DB.QueryRow(`
		SELECT r.id, r.order_id, r.customer_id, r.menu_item_id, r.rating,
		       COALESCE(r.comments, ''), r.created_at,
		       c.whatsapp_number, COALESCE(c.name, ''), mi.name
		FROM reviews r
		JOIN customers c ON c.id = r.customer_id
		LEFT JOIN menu_items mi ON mi.id = r.menu_item_id
		WHERE r.id = $1`, id).
		Scan(&rev.ID, &rev.OrderID, &rev.CustomerID, &itemID, &rev.Rating,
			&rev.Comments, &rev.CreatedAt, &rev.CustomerWhatsApp, &rev.CustomerName, &itemName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	if itemID.Valid {
		v := int(itemID.Int64)
		rev.MenuItemID = &v
	}
	if itemName.Valid {
		rev.MenuItemName = itemName.String
	}
	return &rev, nil
}

func (r *PostgresRepository) ListReviews(filter domain.ReviewFilter) ([]domain.Review, error) {
	sqlStr := `
		SELECT r.id, r.order_id, r.customer_id, r.menu_item_id, r.rating,
		       COALESCE(r.comments, ''), r.created_at,
		       c.whatsapp_number, COALESCE(c.name, ''), mi.name, o.order_value
		FROM reviews r
		JOIN customers c ON c.id = r.customer_id
		JOIN orders o ON o.id = r.order_id
		LEFT JOIN menu_items mi ON mi.id = r.menu_item_id
		WHERE 1=1`
	var params []interface{}
	if filter.StartDate != "" {
		params = append(params, filter.StartDate)
		sqlStr += " AND r.created_at >= $" + strconv.Itoa(len(params))
	}
	if filter.EndDate != "" {
		params = append(params, filter.EndDate)
		sqlStr += " AND r.created_at <= $" + strconv.Itoa(len(params))
	}
	if filter.MenuItemID > 0 {
		params = append(params, filter.MenuItemID)
		sqlStr += " AND r.menu_item_id = $" + strconv.Itoa(len(params))
	}
	if filter.MinRating > 0 {
		params = append(params, filter.MinRating)
		sqlStr += " AND r.rating >= $" + strconv.Itoa(len(params))
	}
	sqlStr += " ORDER BY r.created_at DESC"

	rows, err := r.DB.Query(sqlStr, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rev domain.Review
		var itemID sql.NullInt64
		var itemName sql.NullString
		if err := rows.Scan(&rev.ID, &rev.OrderID, &rev.CustomerID, &itemID, &rev.Rating,
			&rev.Comments, &rev.CreatedAt, &rev.CustomerWhatsApp, &rev.CustomerName,
			&itemName, &rev.OrderValue); err != nil {
			continue
		}
		if itemID.Valid {
			v := int(itemID.Int64)
			rev.MenuItemID = &v
		}
		if itemName.Valid {
			rev.MenuItemName = itemName.String
		}
		reviews = append(reviews, rev)
	}
	return reviews, nil
}
