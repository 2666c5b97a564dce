package request

// CheckoutRequest represents the checkout request body
type CheckoutRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gte=1"`
}

// ListPurchasesRequest represents the purchase listing query parameters
type ListPurchasesRequest struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Status  string `form:"status"`
}
