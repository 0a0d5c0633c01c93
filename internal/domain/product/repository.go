package product

import (
	"context"

	"catalog-service/internal/repository/query"
)

// Repository is the persistence contract for products. GetByID returns
// (nil, nil) on a miss; the service layer decides whether absence is an
// error. GetPaged counts the filtered set before applying the page window.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Product, error)
	GetAll(ctx context.Context) ([]Product, error)
	Find(ctx context.Context, f query.Filter) ([]Product, error)
	GetPaged(ctx context.Context, p query.Page, f query.Filter, s query.Sort) ([]Product, int64, error)
	Create(ctx context.Context, e *Product) error
	Update(ctx context.Context, e *Product) error
	Delete(ctx context.Context, e *Product) error
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context, f query.Filter) (int64, error)
}
