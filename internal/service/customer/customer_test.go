package customer_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"catalog-service/internal/domain/customer"
	xerrors "catalog-service/internal/pkg/errors"
	"catalog-service/internal/repository/query"
	svc "catalog-service/internal/service/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCustomerRepo struct {
	items  map[int64]customer.Customer
	nextID int64
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{items: map[int64]customer.Customer{}}
}

func customerColumn(e customer.Customer, col string) any {
	switch col {
	case "id":
		return e.ID
	case "first_name":
		return e.FirstName
	case "last_name":
		return e.LastName
	case "email":
		return e.Email
	case "country":
		return e.Country
	case "city":
		return e.City
	case "is_active":
		return e.IsActive
	case "created_at":
		return e.CreatedAt
	}
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*customer.Customer, error) {
	if e, ok := f.items[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func (f *fakeCustomerRepo) GetAll(ctx context.Context) ([]customer.Customer, error) {
	return f.Find(ctx, query.Filter{})
}

func (f *fakeCustomerRepo) Find(_ context.Context, filter query.Filter) ([]customer.Customer, error) {
	out := []customer.Customer{}
	for _, e := range f.items {
		if filter.Match(func(col string) any { return customerColumn(e, col) }) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCustomerRepo) GetPaged(ctx context.Context, p query.Page, filter query.Filter, s query.Sort) ([]customer.Customer, int64, error) {
	all, _ := f.Find(ctx, filter)
	total := int64(len(all))

	if s.Column != "" {
		sort.SliceStable(all, func(i, j int) bool {
			a := customerColumn(all[i], s.Column)
			b := customerColumn(all[j], s.Column)
			if s.Desc {
				a, b = b, a
			}
			as, aok := a.(string)
			bs, bok := b.(string)
			if aok && bok {
				return as < bs
			}
			return false
		})
	}

	start := p.Offset()
	if start >= len(all) {
		return []customer.Customer{}, total, nil
	}
	end := start + p.Limit()
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (f *fakeCustomerRepo) Create(_ context.Context, e *customer.Customer) error {
	f.nextID++
	e.ID = f.nextID
	e.CreatedAt = time.Now()
	f.items[e.ID] = *e
	return nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, e *customer.Customer) error {
	if _, ok := f.items[e.ID]; !ok {
		return xerrors.ErrNotFound
	}
	f.items[e.ID] = *e
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, e *customer.Customer) error {
	if _, ok := f.items[e.ID]; !ok {
		return xerrors.ErrNotFound
	}
	delete(f.items, e.ID)
	return nil
}

func (f *fakeCustomerRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.items[id]
	return ok, nil
}

func (f *fakeCustomerRepo) Count(ctx context.Context, filter query.Filter) (int64, error) {
	all, _ := f.Find(ctx, filter)
	return int64(len(all)), nil
}

func (f *fakeCustomerRepo) ExistsByEmail(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, e := range f.items {
		if e.ID != excludeID && strings.EqualFold(e.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCustomerRepo) WithinTx(_ context.Context, fn func(customer.Repository) error) error {
	return fn(f)
}

func newService(repo customer.Repository) *svc.CustomerService {
	return svc.NewCustomerService(repo, nil, nil, zap.NewNop())
}

func createReq(first, email, country string) *customer.CreateCustomerRequest {
	return &customer.CreateCustomerRequest{
		FirstName: first,
		LastName:  "Doe",
		Email:     email,
		Country:   country,
	}
}

func TestCreateCustomerDefaults(t *testing.T) {
	s := newService(newFakeCustomerRepo())

	e, err := s.CreateCustomer(context.Background(), createReq("Jane", "jane@example.com", "Kenya"))
	require.NoError(t, err)

	assert.NotZero(t, e.ID)
	assert.True(t, e.IsActive)
	assert.Nil(t, e.UpdatedAt)
}

func TestCreateCustomerDuplicateEmailConflicts(t *testing.T) {
	repo := newFakeCustomerRepo()
	s := newService(repo)

	_, err := s.CreateCustomer(context.Background(), createReq("Jane", "jane@example.com", "Kenya"))
	require.NoError(t, err)

	_, err = s.CreateCustomer(context.Background(), createReq("John", "jane@example.com", "Uganda"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, xerrors.ErrConflict))

	// conflict performs no persistence
	total, _ := repo.Count(context.Background(), query.Filter{})
	assert.EqualValues(t, 1, total)
}

func TestCreateCustomerDuplicateEmailCaseInsensitive(t *testing.T) {
	s := newService(newFakeCustomerRepo())

	_, err := s.CreateCustomer(context.Background(), createReq("Jane", "jane@example.com", "Kenya"))
	require.NoError(t, err)

	_, err = s.CreateCustomer(context.Background(), createReq("John", "JANE@Example.COM", "Uganda"))
	assert.True(t, errors.Is(err, xerrors.ErrConflict))
}

func TestUpdateCustomerEmailOwnedByOtherConflicts(t *testing.T) {
	s := newService(newFakeCustomerRepo())

	_, err := s.CreateCustomer(context.Background(), createReq("Jane", "jane@example.com", "Kenya"))
	require.NoError(t, err)
	john, err := s.CreateCustomer(context.Background(), createReq("John", "john@example.com", "Kenya"))
	require.NoError(t, err)

	taken := "jane@example.com"
	_, err = s.UpdateCustomer(context.Background(), john.ID, &customer.UpdateCustomerRequest{Email: &taken})
	assert.True(t, errors.Is(err, xerrors.ErrConflict))
}

func TestUpdateCustomerOwnEmailSucceeds(t *testing.T) {
	s := newService(newFakeCustomerRepo())

	jane, err := s.CreateCustomer(context.Background(), createReq("Jane", "jane@example.com", "Kenya"))
	require.NoError(t, err)

	own := "jane@example.com"
	city := "Nairobi"
	updated, err := s.UpdateCustomer(context.Background(), jane.ID, &customer.UpdateCustomerRequest{
		Email: &own,
		City:  &city,
	})
	require.NoError(t, err)
	assert.Equal(t, "Nairobi", updated.City)
	require.NotNil(t, updated.UpdatedAt)
}

func TestCustomerNotFoundCarriesKey(t *testing.T) {
	s := newService(newFakeCustomerRepo())

	_, err := s.GetCustomer(context.Background(), 99)
	require.Error(t, err)

	var nf *xerrors.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "customer", nf.Entity)
	assert.Equal(t, int64(99), nf.Key)

	_, err = s.UpdateCustomer(context.Background(), 99, &customer.UpdateCustomerRequest{})
	assert.True(t, errors.Is(err, xerrors.ErrNotFound))

	err = s.DeleteCustomer(context.Background(), 99)
	assert.True(t, errors.Is(err, xerrors.ErrNotFound))
}

func TestListCustomersCountryFilterAndPaging(t *testing.T) {
	s := newService(newFakeCustomerRepo())

	countries := []string{"Kenya", "Kenya", "Kenya", "Uganda", "Tanzania"}
	for i, country := range countries {
		_, err := s.CreateCustomer(context.Background(), createReq("C", string(rune('a'+i))+"@example.com", country))
		require.NoError(t, err)
	}

	res, err := s.ListCustomers(context.Background(), &customer.CustomerListFilters{
		Country: "Kenya", Page: 1, PageSize: 2,
	})
	require.NoError(t, err)
	assert.Len(t, res.Items, 2)
	assert.EqualValues(t, 3, res.TotalCount)

	res, err = s.ListCustomers(context.Background(), &customer.CustomerListFilters{
		Country: "Kenya", Page: 2, PageSize: 2,
	})
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)
	assert.EqualValues(t, 3, res.TotalCount)
}

func TestGetCustomersByCountry(t *testing.T) {
	s := newService(newFakeCustomerRepo())

	_, err := s.CreateCustomer(context.Background(), createReq("Jane", "jane@example.com", "Kenya"))
	require.NoError(t, err)
	_, err = s.CreateCustomer(context.Background(), createReq("John", "john@example.com", "Uganda"))
	require.NoError(t, err)

	items, err := s.GetCustomersByCountry(context.Background(), "Kenya")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "jane@example.com", items[0].Email)
}

func TestListCustomersSearchSpansNamesAndEmail(t *testing.T) {
	s := newService(newFakeCustomerRepo())

	_, err := s.CreateCustomer(context.Background(), createReq("Jane", "jane@example.com", "Kenya"))
	require.NoError(t, err)
	_, err = s.CreateCustomer(context.Background(), createReq("John", "john@other.org", "Kenya"))
	require.NoError(t, err)

	res, err := s.ListCustomers(context.Background(), &customer.CustomerListFilters{
		Search: "example.com", Page: 1, PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Jane", res.Items[0].FirstName)
}
