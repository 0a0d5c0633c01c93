package product

type CreateProductRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Description   string  `json:"description" validate:"max=2000"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	Category      string  `json:"category" validate:"required,max=100"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Name          *string  `json:"name" validate:"omitempty,max=200"`
	Description   *string  `json:"description" validate:"omitempty,max=2000"`
	Price         *float64 `json:"price" validate:"omitempty,gt=0"`
	Category      *string  `json:"category" validate:"omitempty,max=100"`
	StockQuantity *int     `json:"stock_quantity" validate:"omitempty,gte=0"`
	IsActive      *bool    `json:"is_active"`
}

type ProductListFilters struct {
	Search    string   `form:"search"`
	Category  string   `form:"category"`
	MinPrice  *float64 `form:"min_price"`
	MaxPrice  *float64 `form:"max_price"`
	IsActive  *bool    `form:"is_active"`
	Page      int      `form:"page"`
	PageSize  int      `form:"page_size"`
	SortBy    string   `form:"sort_by"` // name, price, category, stock_quantity, created_at
	SortOrder string   `form:"sort_order" validate:"omitempty,oneof=asc desc"`
}
