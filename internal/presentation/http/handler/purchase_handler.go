package handler

import (
	"github.com/dcastano/ventas-api/internal/application/service"
	"github.com/dcastano/ventas-api/internal/domain/enum"
	"github.com/dcastano/ventas-api/internal/presentation/http/dto/request"
	"github.com/dcastano/ventas-api/internal/presentation/http/dto/response"
	"github.com/dcastano/ventas-api/pkg/apperror"
	"github.com/dcastano/ventas-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// PurchaseHandler handles checkout and purchase history HTTP requests
type PurchaseHandler struct {
	purchaseService *service.PurchaseService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseService *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// Checkout records a purchase for the authenticated user
func (h *PurchaseHandler) Checkout(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	purchase, err := h.purchaseService.Checkout(c.Request.Context(), userID, &service.CheckoutInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase recorded", gin.H{"purchase": purchase})
}

// ListMine returns the authenticated user's purchase history
func (h *PurchaseHandler) ListMine(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var req request.ListPurchasesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage}
	result, err := h.purchaseService.ListMine(c.Request.Context(), userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Purchases retrieved", result)
}

// ListAll returns every purchase (admin only)
func (h *PurchaseHandler) ListAll(c *gin.Context) {
	var req request.ListPurchasesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	var status *enum.PurchaseStatus
	switch req.Status {
	case "pending":
		s := enum.PurchaseStatusPending
		status = &s
	case "paid":
		s := enum.PurchaseStatusPaid
		status = &s
	case "cancelled":
		s := enum.PurchaseStatusCancelled
		status = &s
	}

	params := &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage}
	result, err := h.purchaseService.ListAll(c.Request.Context(), params, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Purchases retrieved", result)
}
