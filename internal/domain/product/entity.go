package product

import "time"

type Product struct {
	ID            int64      `json:"id" db:"id"`
	Name          string     `json:"name" db:"name"`
	Description   string     `json:"description,omitempty" db:"description"`
	Price         float64    `json:"price" db:"price"`
	Category      string     `json:"category" db:"category"`
	StockQuantity int        `json:"stock_quantity" db:"stock_quantity"`
	IsActive      bool       `json:"is_active" db:"is_active"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}
