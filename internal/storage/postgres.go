package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// EnsureSchema creates every table and index the service relies on.
// All statements are idempotent so startup can always run them.
func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
			id SERIAL PRIMARY KEY,
			whatsapp_number VARCHAR(20) NOT NULL UNIQUE,
			address TEXT NOT NULL,
			name VARCHAR(255),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS menus (
			id SERIAL PRIMARY KEY,
			date DATE NOT NULL,
			delivery_window_start TIME NOT NULL,
			delivery_window_end TIME NOT NULL,
			upi_phone_number VARCHAR(20) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(date)
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			menu_id INTEGER NOT NULL REFERENCES menus(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			price DECIMAL(10, 2) NOT NULL,
			quantity_available INTEGER NOT NULL DEFAULT 0 CHECK (quantity_available >= 0),
			quantity_sold INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			menu_id INTEGER NOT NULL REFERENCES menus(id) ON DELETE CASCADE,
			customer_id INTEGER NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
			order_value DECIMAL(10, 2) NOT NULL,
			status VARCHAR(50) DEFAULT 'pending',
			payment_status VARCHAR(50) DEFAULT 'pending',
			payment_confirmed_at TIMESTAMP,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			menu_item_id INTEGER NOT NULL REFERENCES menu_items(id) ON DELETE CASCADE,
			quantity INTEGER NOT NULL,
			price DECIMAL(10, 2) NOT NULL,
			subtotal DECIMAL(10, 2) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			customer_id INTEGER NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
			menu_item_id INTEGER REFERENCES menu_items(id) ON DELETE SET NULL,
			rating INTEGER NOT NULL CHECK (rating >= 1 AND rating <= 5),
			comments TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS recipes (
			id SERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			ingredients TEXT,
			instructions TEXT,
			prep_time INTEGER,
			cook_time INTEGER,
			servings INTEGER,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_customers_whatsapp ON customers(whatsapp_number)`,
		`CREATE INDEX IF NOT EXISTS idx_menus_date ON menus(date)`,
		`CREATE INDEX IF NOT EXISTS idx_menu_items_menu_id ON menu_items(menu_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_menu_id ON orders(menu_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders(customer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_date ON orders(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_order_id ON reviews(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_menu_item_id ON reviews(menu_item_id)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// isUniqueViolation reports whether err is Postgres error 23505.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
