package storage

import (
	"database/sql"
	"errors"

	"github.com/sanjayxseth/mskitchen/internal/domain"
)

func (r *PostgresRepository) CreateMenu(menu *domain.Menu) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var existing int
	err = tx.QueryRow("SELECT id FROM menus WHERE date = $1", menu.Date).Scan(&existing)
	if err == nil {
		return domain.ErrMenuDateTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	err = tx.QueryRow(`
		INSERT INTO menus (date, delivery_window_start, delivery_window_end, upi_phone_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		menu.Date, menu.DeliveryWindowStart, menu.DeliveryWindowEnd, menu.UPIPhoneNumber).
		Scan(&menu.ID, &menu.CreatedAt, &menu.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrMenuDateTaken
	}
	if err != nil {
		return err
	}

	for i := range menu.Items {
		item := &menu.Items[i]
		item.MenuID = menu.ID
		err = tx.QueryRow(`
			INSERT INTO menu_items (menu_id, name, price, quantity_available)
			VALUES ($1, $2, $3, $4)
			RETURNING id, quantity_sold, created_at, updated_at`,
			menu.ID, item.Name, item.Price, item.QuantityAvailable).
			Scan(&item.ID, &item.QuantitySold, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) ListMenus() ([]domain.Menu, error) {
	rows, err := r.DB.Query(`
		SELECT m.id, m.date, m.delivery_window_start::text, m.delivery_window_end::text,
		       m.upi_phone_number, m.created_at, m.updated_at,
		       COUNT(DISTINCT o.id) AS total_orders,
		       COALESCE(SUM(o.order_value), 0) AS total_revenue
		FROM menus m
		LEFT JOIN orders o ON o.menu_id = m.id
		GROUP BY m.id
		ORDER BY m.date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menus []domain.Menu
	for rows.Next() {
		var m domain.Menu
		if err := rows.Scan(&m.ID, &m.Date, &m.DeliveryWindowStart, &m.DeliveryWindowEnd,
			&m.UPIPhoneNumber, &m.CreatedAt, &m.UpdatedAt, &m.TotalOrders, &m.TotalRevenue); err != nil {
			continue
		}
		menus = append(menus, m)
	}
	return menus, nil
}

func (r *PostgresRepository) GetMenu(id int) (*domain.Menu, error) {
	menu, err := r.scanMenu(r.DB.QueryRow(`
		SELECT id, date, delivery_window_start::text, delivery_window_end::text,
		       upi_phone_number, created_at, updated_at
		FROM menus WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return r.attachItems(menu)
}

func (r *PostgresRepository) GetMenuByDate(date string) (*domain.Menu, error) {
	menu, err := r.scanMenu(r.DB.QueryRow(`
		SELECT id, date, delivery_window_start::text, delivery_window_end::text,
		       upi_phone_number, created_at, updated_at
		FROM menus WHERE date = $1`, date))
	if err != nil {
		return nil, err
	}
	return r.attachItems(menu)
}

func (r *PostgresRepository) scanMenu(row *sql.Row) (*domain.Menu, error) {
	var m domain.Menu
	err := row.Scan(&m.ID, &m.Date, &m.DeliveryWindowStart, &m.DeliveryWindowEnd,
		&m.UPIPhoneNumber, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrMenuNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PostgresRepository) attachItems(menu *domain.Menu) (*domain.Menu, error) {
	rows, err := r.DB.Query(`
		SELECT id, menu_id, name, price, quantity_available, quantity_sold, created_at, updated_at
		FROM menu_items
		WHERE menu_id = $1
		ORDER BY id`, menu.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.MenuID, &item.Name, &item.Price,
			&item.QuantityAvailable, &item.QuantitySold, &item.CreatedAt, &item.UpdatedAt); err != nil {
			continue
		}
		menu.Items = append(menu.Items, item)
	}
	return menu, nil
}

func (r *PostgresRepository) UpdateMenu(menu *domain.Menu) error {
	err := r.DB.QueryRow(`
		UPDATE menus
		SET date = $1, delivery_window_start = $2, delivery_window_end = $3,
		    upi_phone_number = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id, date, delivery_window_start::text, delivery_window_end::text,
		          upi_phone_number, created_at, updated_at`,
		menu.Date, menu.DeliveryWindowStart, menu.DeliveryWindowEnd, menu.UPIPhoneNumber, menu.ID).
		Scan(&menu.ID, &menu.Date, &menu.DeliveryWindowStart, &menu.DeliveryWindowEnd,
			&menu.UPIPhoneNumber, &menu.CreatedAt, &menu.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrMenuNotFound
	}
	return err
}

func (r *PostgresRepository) DeleteMenu(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM menus WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
