package customer

import (
	"context"
	"fmt"
	"time"

	"catalog-service/internal/domain/customer"
	"catalog-service/internal/domain/pagination"
	"catalog-service/internal/events"
	"catalog-service/internal/pkg/cache"
	xerrors "catalog-service/internal/pkg/errors"
	"catalog-service/internal/repository/query"

	"go.uber.org/zap"
)

const entityName = "customer"

var sortColumns = map[string]string{
	"first_name": "first_name",
	"last_name":  "last_name",
	"email":      "email",
	"country":    "country",
	"city":       "city",
	"created_at": "created_at",
}

type CustomerService struct {
	repo   customer.Repository
	cache  *cache.Cache[customer.Customer]
	events events.Publisher
	logger *zap.Logger
}

func NewCustomerService(repo customer.Repository, c *cache.Cache[customer.Customer], pub events.Publisher, logger *zap.Logger) *CustomerService {
	if pub == nil {
		pub = events.NopPublisher{}
	}
	return &CustomerService{
		repo:   repo,
		cache:  c,
		events: pub,
		logger: logger,
	}
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id int64) (*customer.Customer, error) {
	if e, ok := s.cache.Get(ctx, id); ok {
		return e, nil
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if e == nil {
		return nil, xerrors.NewNotFound(entityName, id)
	}

	s.cache.Set(ctx, id, e)
	return e, nil
}

// GetAllCustomers retrieves every customer without paging
func (s *CustomerService) GetAllCustomers(ctx context.Context) ([]customer.Customer, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return items, nil
}

// GetCustomersByCountry retrieves all customers in one country, unpaged
func (s *CustomerService) GetCustomersByCountry(ctx context.Context, country string) ([]customer.Customer, error) {
	f := query.Filter{}.Where("country", query.OpEq, country)

	items, err := s.repo.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers by country: %w", err)
	}
	return items, nil
}

// ListCustomers retrieves one page of customers matching the filters
func (s *CustomerService) ListCustomers(ctx context.Context, filters *customer.CustomerListFilters) (*pagination.Result[customer.Customer], error) {
	f := buildFilter(filters)
	sort := buildSort(filters.SortBy, filters.SortOrder)
	page := query.NewPage(filters.Page, filters.PageSize)

	items, total, err := s.repo.GetPaged(ctx, page, f, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return pagination.NewResult(items, total, page.Number, page.Size), nil
}

// CreateCustomer creates a new customer. The email pre-check and the insert
// run in one transaction; the unique index on email remains the
// authoritative guard, so a lost race still maps to a conflict.
func (s *CustomerService) CreateCustomer(ctx context.Context, req *customer.CreateCustomerRequest) (*customer.Customer, error) {
	e := &customer.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		Country:   req.Country,
		IsActive:  true,
	}

	err := s.repo.WithinTx(ctx, func(txRepo customer.Repository) error {
		taken, err := txRepo.ExistsByEmail(ctx, req.Email, 0)
		if err != nil {
			return fmt.Errorf("failed to check customer email: %w", err)
		}
		if taken {
			return xerrors.NewConflict(entityName, "email", req.Email)
		}
		return txRepo.Create(ctx, e)
	})
	if err != nil {
		if !xerrors.Is(err, xerrors.ErrConflict) {
			s.logger.Error("failed to create customer", zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("customer created",
		zap.Int64("customer_id", e.ID),
		zap.String("email", e.Email),
	)
	s.events.Publish(events.ChangeEvent{Entity: entityName, Action: events.ActionCreated, ID: e.ID})

	return e, nil
}

// UpdateCustomer applies the provided fields to an existing customer and
// stamps updated_at. Changing the email re-runs the uniqueness check
// excluding the customer's own id; keeping the current email passes.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id int64, req *customer.UpdateCustomerRequest) (*customer.Customer, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if e == nil {
		return nil, xerrors.NewNotFound(entityName, id)
	}

	if req.FirstName != nil {
		e.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		e.LastName = *req.LastName
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Phone != nil {
		e.Phone = *req.Phone
	}
	if req.Address != nil {
		e.Address = *req.Address
	}
	if req.City != nil {
		e.City = *req.City
	}
	if req.Country != nil {
		e.Country = *req.Country
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}

	now := time.Now()
	e.UpdatedAt = &now

	err = s.repo.WithinTx(ctx, func(txRepo customer.Repository) error {
		if req.Email != nil {
			taken, err := txRepo.ExistsByEmail(ctx, *req.Email, id)
			if err != nil {
				return fmt.Errorf("failed to check customer email: %w", err)
			}
			if taken {
				return xerrors.NewConflict(entityName, "email", *req.Email)
			}
		}
		return txRepo.Update(ctx, e)
	})
	if err != nil {
		if !xerrors.Is(err, xerrors.ErrConflict) && !xerrors.Is(err, xerrors.ErrNotFound) {
			s.logger.Error("failed to update customer", zap.Int64("customer_id", id), zap.Error(err))
		}
		return nil, err
	}

	s.cache.Invalidate(ctx, id)
	s.logger.Info("customer updated", zap.Int64("customer_id", id))
	s.events.Publish(events.ChangeEvent{Entity: entityName, Action: events.ActionUpdated, ID: id})

	return e, nil
}

// DeleteCustomer removes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get customer: %w", err)
	}
	if e == nil {
		return xerrors.NewNotFound(entityName, id)
	}

	if err := s.repo.Delete(ctx, e); err != nil {
		s.logger.Error("failed to delete customer", zap.Int64("customer_id", id), zap.Error(err))
		return err
	}

	s.cache.Invalidate(ctx, id)
	s.logger.Info("customer deleted", zap.Int64("customer_id", id))
	s.events.Publish(events.ChangeEvent{Entity: entityName, Action: events.ActionDeleted, ID: id})

	return nil
}

// buildFilter ANDs a condition per present filter field. Search matches
// first name, last name, or email, case-insensitively.
func buildFilter(filters *customer.CustomerListFilters) query.Filter {
	f := query.Filter{}

	if filters.Search != "" {
		f = f.AnyOf([]string{"first_name", "last_name", "email"}, query.OpContains, filters.Search)
	}
	if filters.Country != "" {
		f = f.Where("country", query.OpEq, filters.Country)
	}
	if filters.City != "" {
		f = f.Where("city", query.OpEq, filters.City)
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
