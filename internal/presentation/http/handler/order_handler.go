package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopsphere/storefront-api/internal/application/service"
	"github.com/shopsphere/storefront-api/internal/domain/entity"
	"github.com/shopsphere/storefront-api/internal/domain/enum"
	"github.com/shopsphere/storefront-api/internal/domain/repository"
	"github.com/shopsphere/storefront-api/internal/presentation/http/dto/request"
	"github.com/shopsphere/storefront-api/internal/presentation/http/dto/response"
	"github.com/shopsphere/storefront-api/pkg/pagination"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// PlaceOrder places an order from the user's cart
// @Summary Place Order
// @Description Checkout the current cart into an order
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.PlaceOrderRequest true "Checkout data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	method := enum.PaymentMethod(req.PaymentMethod)
	if !method.IsValid() {
		response.BadRequest(c, "Unknown payment method")
		return
	}

	order, err := h.orderService.PlaceOrder(c.Request.Context(), &service.PlaceOrderInput{
		UserID:            *userID,
		ShippingAddressID: req.ShippingAddressID,
		PaymentMethod:     method,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order placed successfully", gin.H{"order": order})
}

// ListOrders lists the caller's orders with status and date filters
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var filter request.OrderFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	params := &repository.OrderFilterParams{
		Pagination:     &pagination.PaginationParams{Page: filter.Page, PerPage: filter.PerPage},
		SkipUserFilter: IsAdmin(c),
	}
	params.Pagination.Validate()

	if filter.Status != "" {
		status := enum.OrderStatus(filter.Status)
		if !status.IsValid() {
			response.BadRequest(c, "Unknown order status")
			return
		}
		params.Status = &status
	}
	if start := c.Query("startDate"); start != "" {
		t, err := time.Parse("2006-01-02", start)
		if err != nil {
			response.BadRequest(c, "Invalid startDate format")
			return
		}
		params.StartDate = &t
	}
	if end := c.Query("endDate"); end != "" {
		t, err := time.Parse("2006-01-02", end)
		if err != nil {
			response.BadRequest(c, "Invalid endDate format")
			return
		}
		params.EndDate = &t
	}

	orders, total, err := h.orderService.ListOrders(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(orders,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total))
	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// GetOrder returns a single order with its items
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), *userID, IsAdmin(c), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", gin.H{"order": order})
}

// CancelOrder cancels an order that has not shipped yet
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.CancelOrder(c.Request.Context(), *userID, IsAdmin(c), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order cancelled successfully", gin.H{"order": order})
}

// UpdateStatus moves an order through its lifecycle (admin only)
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), orderID, enum.OrderStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated", gin.H{"order": order})
}

// RequestReturn files a return request for a delivered order item
func (h *OrderHandler) RequestReturn(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.ReturnRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.orderService.RequestReturn(c.Request.Context(), &service.RequestReturnInput{
		UserID:      *userID,
		OrderID:     orderID,
		OrderItemID: req.OrderItemID,
		Reason:      req.Reason,
		IsDamaged:   req.IsDamaged,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Return request submitted", gin.H{"return_request": result})
}

// AddAddress saves a shipping address for the user
func (h *OrderHandler) AddAddress(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	address := &entity.Address{
		UserID:    *userID,
		FullName:  req.FullName,
		Line1:     req.Line1,
		Line2:     req.Line2,
		City:      req.City,
		State:     req.State,
		Pincode:   req.Pincode,
		Phone:     req.Phone,
		IsDefault: req.IsDefault,
	}

	saved, err := h.orderService.AddAddress(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Address saved successfully", gin.H{"address": saved})
}

// ListAddresses lists the user's saved shipping addresses
func (h *OrderHandler) ListAddresses(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	addresses, err := h.orderService.ListAddresses(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Addresses retrieved successfully", gin.H{"addresses": addresses})
}

// DeleteAddress removes a saved shipping address
func (h *OrderHandler) DeleteAddress(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid address ID")
		return
	}

	if err := h.orderService.DeleteAddress(c.Request.Context(), *userID, addressID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Address deleted successfully", nil)
}
