package customer

import (
	"context"

	"catalog-service/internal/repository/query"
)

// Repository is the persistence contract for customers. In addition to the
// generic CRUD surface it exposes the email uniqueness probe and WithinTx,
// which runs fn against a repository bound to a single transaction so the
// uniqueness pre-check and the insert commit together.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Customer, error)
	GetAll(ctx context.Context) ([]Customer, error)
	Find(ctx context.Context, f query.Filter) ([]Customer, error)
	GetPaged(ctx context.Context, p query.Page, f query.Filter, s query.Sort) ([]Customer, int64, error)
	Create(ctx context.Context, e *Customer) error
	Update(ctx context.Context, e *Customer) error
	Delete(ctx context.Context, e *Customer) error
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context, f query.Filter) (int64, error)

	// ExistsByEmail reports whether any customer other than excludeID owns
	// email. Pass excludeID 0 for creation checks.
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)

	WithinTx(ctx context.Context, fn func(Repository) error) error
}
