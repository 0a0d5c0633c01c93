package product

import (
	"context"
	"fmt"
	"time"

	"catalog-service/internal/domain/pagination"
	"catalog-service/internal/domain/product"
	"catalog-service/internal/events"
	"catalog-service/internal/pkg/cache"
	xerrors "catalog-service/internal/pkg/errors"
	"catalog-service/internal/repository/query"

	"go.uber.org/zap"
)

const entityName = "product"

// sortColumns maps API sort names to columns. Unrecognized or absent names
// fall back to id ascending rather than erroring.
var sortColumns = map[string]string{
	"name":           "name",
	"price":          "price",
	"category":       "category",
	"stock_quantity": "stock_quantity",
	"created_at":     "created_at",
}

type ProductService struct {
	repo   product.Repository
	cache  *cache.Cache[product.Product]
	events events.Publisher
	logger *zap.Logger
}

func NewProductService(repo product.Repository, c *cache.Cache[product.Product], pub events.Publisher, logger *zap.Logger) *ProductService {
	if pub == nil {
		pub = events.NopPublisher{}
	}
	return &ProductService{
		repo:   repo,
		cache:  c,
		events: pub,
		logger: logger,
	}
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*product.Product, error) {
	if e, ok := s.cache.Get(ctx, id); ok {
		return e, nil
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if e == nil {
		return nil, xerrors.NewNotFound(entityName, id)
	}

	s.cache.Set(ctx, id, e)
	return e, nil
}

// GetAllProducts retrieves every product without paging
func (s *ProductService) GetAllProducts(ctx context.Context) ([]product.Product, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return items, nil
}

// GetProductsByCategory retrieves all products in one category, unpaged
func (s *ProductService) GetProductsByCategory(ctx context.Context, category string) ([]product.Product, error) {
	f := query.Filter{}.Where("category", query.OpEq, category)

	items, err := s.repo.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list products by category: %w", err)
	}
	return items, nil
}

// ListProducts retrieves one page of products matching the filters
func (s *ProductService) ListProducts(ctx context.Context, filters *product.ProductListFilters) (*pagination.Result[product.Product], error) {
	f := buildFilter(filters)
	sort := buildSort(filters.SortBy, filters.SortOrder)
	page := query.NewPage(filters.Page, filters.PageSize)

	items, total, err := s.repo.GetPaged(ctx, page, f, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return pagination.NewResult(items, total, page.Number, page.Size), nil
}

// CreateProduct creates a new product. New products start active.
func (s *ProductService) CreateProduct(ctx context.Context, req *product.CreateProductRequest) (*product.Product, error) {
	e := &product.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		StockQuantity: req.StockQuantity,
		IsActive:      true,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("failed to create product", zap.Error(err))
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("product created",
		zap.Int64("product_id", e.ID),
		zap.String("category", e.Category),
	)
	s.events.Publish(events.ChangeEvent{Entity: entityName, Action: events.ActionCreated, ID: e.ID})

	return e, nil
}

// UpdateProduct applies the provided fields to an existing product and
// stamps updated_at.
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, req *product.UpdateProductRequest) (*product.Product, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if e == nil {
		return nil, xerrors.NewNotFound(entityName, id)
	}

	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Price != nil {
		e.Price = *req.Price
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.StockQuantity != nil {
		e.StockQuantity = *req.StockQuantity
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}

	now := time.Now()
	e.UpdatedAt = &now

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("failed to update product", zap.Int64("product_id", id), zap.Error(err))
		return nil, err
	}

	s.cache.Invalidate(ctx, id)
	s.logger.Info("product updated", zap.Int64("product_id", id))
	s.events.Publish(events.ChangeEvent{Entity: entityName, Action: events.ActionUpdated, ID: id})

	return e, nil
}

// DeleteProduct removes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}
	if e == nil {
		return xerrors.NewNotFound(entityName, id)
	}

	if err := s.repo.Delete(ctx, e); err != nil {
		s.logger.Error("failed to delete product", zap.Int64("product_id", id), zap.Error(err))
		return err
	}

	s.cache.Invalidate(ctx, id)
	s.logger.Info("product deleted", zap.Int64("product_id", id))
	s.events.Publish(events.ChangeEvent{Entity: entityName, Action: events.ActionDeleted, ID: id})

	return nil
}

// buildFilter ANDs a condition per present filter field. Search matches
// name or description, case-insensitively.
func buildFilter(filters *product.ProductListFilters) query.Filter {
	f := query.Filter{}

	if filters.Search != "" {
		f = f.AnyOf([]string{"name", "description"}, query.OpContains, filters.Search)
	}
	if filters.Category != "" {
		f = f.Where("category", query.OpEq, filters.Category)
	}
	if filters.MinPrice != nil {
		f = f.Where("price", query.OpGte, *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		f = f.Where("price", query.OpLte, *filters.MaxPrice)
	}
	if filters.IsActive != nil {
		f = f.Where("is_active", query.OpEq, *filters.IsActive)
	}

	return f
}

// buildSort resolves the sort name through the lookup table. Unknown or
// absent names sort by id ascending regardless of the requested direction.
func buildSort(sortBy, sortOrder string) query.Sort {
	col, ok := sortColumns[sortBy]
	if !ok {
		return query.Sort{}
	}
	return query.Sort{Column: col, Desc: sortOrder == "desc"}
}
