package postgres

import (
	"catalog-service/internal/domain/product"
)

type ProductRepository struct {
	*Repository[product.Product]
}

func NewProductRepository(db Querier) *ProductRepository {
	return &ProductRepository{Repository: NewRepository(db, productTable())}
}

func productTable() Table[product.Product] {
	return Table[product.Product]{
		Name: "products",
		Columns: []string{
			"id", "name", "description", "price", "category",
			"stock_quantity", "is_active", "created_at", "updated_at",
		},
		InsertColumns: []string{
			"name", "description", "price", "category", "stock_quantity", "is_active",
		},
		UpdateColumns: []string{
			"name", "description", "price", "category", "stock_quantity", "is_active", "updated_at",
		},
		Scan: func(row rowScanner) (product.Product, error) {
			var e product.Product
			err := row.Scan(
				&e.ID, &e.Name, &e.Description, &e.Price, &e.Category,
				&e.StockQuantity, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
			)
			return e, err
		},
		InsertValues: func(e *product.Product) []any {
			return []any{e.Name, e.Description, e.Price, e.Category, e.StockQuantity, e.IsActive}
		},
		InsertReturning: func(e *product.Product) []any {
			return []any{&e.ID, &e.CreatedAt}
		},
		UpdateValues: func(e *product.Product) []any {
			return []any{e.Name, e.Description, e.Price, e.Category, e.StockQuantity, e.IsActive, e.UpdatedAt}
		},
		ID: func(e *product.Product) int64 { return e.ID },
	}
}
