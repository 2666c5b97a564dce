package request

// CreateProductRequest represents the product creation request body
type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Stock    int     `json:"stock" binding:"gte=0"`
	ImageURL string  `json:"image_url"`
	Category string  `json:"category"`
}

// UpdateProductRequest represents the product update request body.
// Omitted fields are left unchanged.
type UpdateProductRequest struct {
	Name     *string  `json:"name" binding:"omitempty,max=100"`
	Price    *float64 `json:"price" binding:"omitempty,gt=0"`
	Stock    *int     `json:"stock" binding:"omitempty,gte=0"`
	ImageURL *string  `json:"image_url"`
	Category *string  `json:"category"`
}

// ListProductsRequest represents the product listing query parameters
type ListProductsRequest struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Search    string `form:"search"`
	Category  string `form:"category"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}
