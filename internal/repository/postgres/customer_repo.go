package postgres

import (
	"context"
	"fmt"

	"catalog-service/internal/domain/customer"
)

type CustomerRepository struct {
	*Repository[customer.Customer]
	db *DB
}

func NewCustomerRepository(db *DB) *CustomerRepository {
	return &CustomerRepository{
		Repository: NewRepository(db.Pool(), customerTable()),
		db:         db,
	}
}

// ExistsByEmail reports whether a customer other than excludeID owns email.
// Matching is case-insensitive, consistent with the unique index on
// LOWER(email).
func (r *CustomerRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	sql := `SELECT EXISTS(SELECT 1 FROM customers WHERE LOWER(email) = LOWER($1) AND id <> $2)`

	var exists bool
	if err := r.Repository.db.QueryRow(ctx, sql, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check customer email: %w", err)
	}
	return exists, nil
}

// WithinTx runs fn against a repository bound to one transaction. When the
// receiver is already transactional, fn runs on it directly.
func (r *CustomerRepository) WithinTx(ctx context.Context, fn func(customer.Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithTx(ctx, func(q Querier) error {
		return fn(&CustomerRepository{Repository: r.Repository.WithQuerier(q)})
	})
}

func customerTable() Table[customer.Customer] {
	return Table[customer.Customer]{
		Name: "customers",
		Columns: []string{
			"id", "first_name", "last_name", "email", "phone",
			"address", "city", "country", "is_active", "created_at", "updated_at",
		},
		InsertColumns: []string{
			"first_name", "last_name", "email", "phone", "address", "city", "country", "is_active",
		},
		UpdateColumns: []string{
			"first_name", "last_name", "email", "phone", "address", "city", "country", "is_active", "updated_at",
		},
		Scan: func(row rowScanner) (customer.Customer, error) {
			var e customer.Customer
			err := row.Scan(
				&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Phone,
				&e.Address, &e.City, &e.Country, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
			)
			return e, err
		},
		InsertValues: func(e *customer.Customer) []any {
			return []any{e.FirstName, e.LastName, e.Email, e.Phone, e.Address, e.City, e.Country, e.IsActive}
		},
		InsertReturning: func(e *customer.Customer) []any {
			return []any{&e.ID, &e.CreatedAt}
		},
		UpdateValues: func(e *customer.Customer) []any {
			return []any{e.FirstName, e.LastName, e.Email, e.Phone, e.Address, e.City, e.Country, e.IsActive, e.UpdatedAt}
		},
		ID: func(e *customer.Customer) int64 { return e.ID },
	}
}
