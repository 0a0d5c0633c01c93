package validate

import (
	"errors"
	"testing"

	"catalog-service/internal/domain/customer"
	"catalog-service/internal/domain/product"
	xerrors "catalog-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductCollectsAllErrors(t *testing.T) {
	va := New()

	err := va.Struct(product.CreateProductRequest{
		Name:          "",
		Price:         -10,
		Category:      "",
		StockQuantity: -5,
	})
	require.Error(t, err)

	var verr *xerrors.ValidationError
	require.True(t, errors.As(err, &verr))

	// one response carries every broken field, not just the first
	assert.GreaterOrEqual(t, len(verr.Fields), 4)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "price")
	assert.Contains(t, verr.Fields, "category")
	assert.Contains(t, verr.Fields, "stock_quantity")
	assert.True(t, errors.Is(err, xerrors.ErrInvalidInput))
}

func TestCreateProductValid(t *testing.T) {
	va := New()

	err := va.Struct(product.CreateProductRequest{
		Name:          "Widget",
		Price:         9.99,
		Category:      "Tools",
		StockQuantity: 5,
	})
	assert.NoError(t, err)
}

func TestProductFieldBounds(t *testing.T) {
	va := New()

	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}

	err := va.Struct(product.CreateProductRequest{
		Name:     string(long),
		Price:    1,
		Category: "Tools",
	})
	require.Error(t, err)

	var verr *xerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "name")
}

func TestCustomerPhoneCharset(t *testing.T) {
	va := New()

	base := customer.CreateCustomerRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@example.com",
	}

	ok := base
	ok.Phone = "+254 (711) 222-333"
	assert.NoError(t, va.Struct(ok))

	bad := base
	bad.Phone = "call me maybe"
	err := va.Struct(bad)
	require.Error(t, err)

	var verr *xerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "phone")
}

func TestCustomerEmailRequired(t *testing.T) {
	va := New()

	err := va.Struct(customer.CreateCustomerRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "not-an-email",
	})
	require.Error(t, err)

	var verr *xerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "email")
}

func TestUpdateRequestOmittedFieldsPass(t *testing.T) {
	va := New()

	// partial update with no fields set is valid
	assert.NoError(t, va.Struct(product.UpdateProductRequest{}))

	bad := -1.0
	err := va.Struct(product.UpdateProductRequest{Price: &bad})
	require.Error(t, err)
}
