package storage

import (
	"database/sql"
	"errors"

	"github.com/sanjayxseth/mskitchen/internal/domain"
)

func (r *PostgresRepository) CreateCustomer(c *domain.Customer) error {
	err := r.DB.QueryRow(`
		INSERT INTO customers (whatsapp_number, address, name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		c.WhatsAppNumber, c.Address, c.Name).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrCustomerConflict
	}
	return err
}

func (r *PostgresRepository) ListCustomers() ([]domain.Customer, error) {
	rows, err := r.DB.Query(`
		SELECT c.id, c.whatsapp_number, COALESCE(c.address, ''), COALESCE(c.name, ''),
		       c.created_at, c.updated_at,
		       COUNT(DISTINCT o.id) AS total_orders,
		       COALESCE(SUM(o.order_value), 0) AS total_spent
		FROM customers c
		LEFT JOIN orders o ON o.customer_id = c.id
		GROUP BY c.id
		ORDER BY c.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.WhatsAppNumber, &c.Address, &c.Name,
			&c.CreatedAt, &c.UpdatedAt, &c.TotalOrders, &c.TotalSpent); err != nil {
			continue
		}
		customers = append(customers, c)
	}
	return customers, nil
}

func (r *PostgresRepository) GetCustomer(id int) (*domain.Customer, error) {
	return r.scanCustomer(r.DB.QueryRow(`
		SELECT id, whatsapp_number, COALESCE(address, ''), COALESCE(name, ''), created_at, updated_at
		FROM customers WHERE id = $1`, id))
}

func (r *PostgresRepository) GetCustomerByWhatsApp(number string) (*domain.Customer, error) {
	return r.scanCustomer(r.DB.QueryRow(`
		SELECT id, whatsapp_number, COALESCE(address, ''), COALESCE(name, ''), created_at, updated_at
		FROM customers WHERE whatsapp_number = $1`, number))
}

func (r *PostgresRepository) scanCustomer(row *sql.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.WhatsAppNumber, &c.Address, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) UpdateCustomer(c *domain.Customer) error {
	err := r.DB.QueryRow(`
		UPDATE customers
		SET whatsapp_number = $1, address = $2, name = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, whatsapp_number, COALESCE(address, ''), COALESCE(name, ''), created_at, updated_at`,
		c.WhatsAppNumber, c.Address, c.Name, c.ID).
		Scan(&c.ID, &c.WhatsAppNumber, &c.Address, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrCustomerNotFound
	}
	if isUniqueViolation(err) {
		return domain.ErrCustomerConflict
	}
	return err
}

func (r *PostgresRepository) DeleteCustomer(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
