package handler

import (
	"strconv"

	"github.com/dcastano/ventas-api/internal/application/service"
	"github.com/dcastano/ventas-api/internal/domain/repository"
	"github.com/dcastano/ventas-api/internal/presentation/http/dto/request"
	"github.com/dcastano/ventas-api/internal/presentation/http/dto/response"
	"github.com/dcastano/ventas-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles catalog HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func parseProductID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return 0, false
	}
	return uint(id), true
}

// List returns a paginated slice of the catalog
func (h *ProductHandler) List(c *gin.Context) {
	var req request.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:     req.Search,
		Category:   req.Category,
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved", result)
}

// Get returns a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved", gin.H{"product": product})
}

// Create adds a product to the catalog (admin only)
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Stock:    req.Stock,
		ImageURL: req.ImageURL,
		Category: req.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created", gin.H{"product": product})
}

// Update applies a partial update to a product (admin only)
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, &service.UpdateProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Stock:    req.Stock,
		ImageURL: req.ImageURL,
		Category: req.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated", gin.H{"product": product})
}

// Delete removes a product from the catalog (admin only)
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product deleted", nil)
}
