package product

import (
	"net/http"
	"strconv"

	"catalog-service/internal/domain/product"
	"catalog-service/internal/pkg/response"
	"catalog-service/internal/pkg/validate"
	service "catalog-service/internal/service/product"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService *service.ProductService
	validator      *validate.Validator
}

func NewProductHandler(productService *service.ProductService, validator *validate.Validator) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator,
	}
}

// ListProducts retrieves products with filters, sorting, and paging
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var filters product.ProductListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid query parameters", err)
		return
	}

	result, err := h.productService.ListProducts(c.Request.Context(), &filters)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "products retrieved", result)
}

// GetProduct retrieves a product by ID
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid product ID", err)
		return
	}

	result, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "product retrieved", result)
}

// GetProductsByCategory retrieves all products in one category
func (h *ProductHandler) GetProductsByCategory(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		response.ValidationError(c, "category is required", nil)
		return
	}

	items, err := h.productService.GetProductsByCategory(c.Request.Context(), category)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "products retrieved", items)
}

// CreateProduct creates a new product
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req product.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		response.FromError(c, err)
		return
	}

	result, err := h.productService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "product created successfully", result)
}

// UpdateProduct updates an existing product
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid product ID", err)
		return
	}

	var req product.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		response.FromError(c, err)
		return
	}

	result, err := h.productService.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "product updated successfully", result)
}

// DeleteProduct removes a product
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid product ID", err)
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "product deleted successfully", nil)
}
