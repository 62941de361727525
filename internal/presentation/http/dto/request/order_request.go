package request

import "github.com/google/uuid"

// PlaceOrderRequest represents a checkout request
type PlaceOrderRequest struct {
	ShippingAddressID uuid.UUID `json:"shipping_address_id" binding:"required"`
	PaymentMethod     string    `json:"payment_method" binding:"required"`
}

// UpdateOrderStatusRequest represents an admin order status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ReturnRequestRequest represents a return request for an order item
type ReturnRequestRequest struct {
	OrderItemID uuid.UUID `json:"order_item_id" binding:"required"`
	Reason      string    `json:"reason" binding:"required,min=3,max=500"`
	IsDamaged   bool      `json:"is_damaged"`
}

// OrderFilterRequest represents order list filter parameters
type OrderFilterRequest struct {
	Status  string `form:"status"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
