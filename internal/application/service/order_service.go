package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopsphere/storefront-api/internal/domain/entity"
	"github.com/shopsphere/storefront-api/internal/domain/enum"
	"github.com/shopsphere/storefront-api/internal/domain/repository"
	"github.com/shopsphere/storefront-api/pkg/apperror"
	"github.com/shopsphere/storefront-api/pkg/email"
)

// OrderService handles order placement and lifecycle operations
type OrderService struct {
	orderRepo       repository.OrderRepository
	returnRepo      repository.ReturnRequestRepository
	cartRepo        repository.CartRepository
	productRepo     repository.ProductRepository
	addressRepo     repository.AddressRepository
	emailService    *email.EmailService
	deliveryFee     float64
	freeDeliveryMin float64
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	returnRepo repository.ReturnRequestRepository,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	addressRepo repository.AddressRepository,
	emailService *email.EmailService,
	deliveryFee, freeDeliveryMin float64,
) *OrderService {
	return &OrderService{
		orderRepo:       orderRepo,
		returnRepo:      returnRepo,
		cartRepo:        cartRepo,
		productRepo:     productRepo,
		addressRepo:     addressRepo,
		emailService:    emailService,
		deliveryFee:     deliveryFee,
		freeDeliveryMin: freeDeliveryMin,
	}
}

// PlaceOrderInput represents the checkout input
type PlaceOrderInput struct {
	UserID            uuid.UUID
	ShippingAddressID uuid.UUID
	PaymentMethod     enum.PaymentMethod
}

// PlaceOrder turns the user's cart into an order: it validates stock,
// computes the totals, decrements inventory and clears the cart.
func (s *OrderService) PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error) {
	if !input.PaymentMethod.IsValid() {
		return nil, apperror.NewBadRequestError("Unsupported payment method")
	}

	address, err := s.addressRepo.GetByID(ctx, input.ShippingAddressID)
	if err != nil {
		return nil, err
	}
	if address == nil || address.UserID != input.UserID {
		return nil, apperror.NewNotFoundError("Shipping address")
	}

	cart, err := s.cartRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, apperror.NewBadRequestError("Cart is empty")
	}

	var subtotal float64
	items := make([]entity.OrderItem, 0, len(cart.Items))
	for _, cartItem := range cart.Items {
		product := cartItem.Product
		if !product.IsListed {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("%s is no longer available", product.Name))
		}
		if product.Stock < cartItem.Quantity {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Not enough stock for %s", product.Name))
		}
		subtotal += product.Price * float64(cartItem.Quantity)
		items = append(items, entity.OrderItem{
			ProductID: cartItem.ProductID,
			Quantity:  cartItem.Quantity,
			Price:     product.Price,
			Status:    enum.ItemStatusProcessing,
		})
	}

	deliveryFee := s.deliveryFee
	if s.freeDeliveryMin > 0 && subtotal >= s.freeDeliveryMin {
		deliveryFee = 0
	}

	var discount float64
	order := &entity.Order{
		UserID:            input.UserID,
		ShippingAddressID: input.ShippingAddressID,
		Subtotal:          subtotal,
		DiscountAmount:    discount,
		DeliveryFee:       deliveryFee,
		FinalAmount:       subtotal - discount + deliveryFee,
		PaymentMethod:     input.PaymentMethod,
		PaymentStatus:     enum.PaymentStatusPending,
		OrderStatus:       enum.OrderStatusProcessing,
		Items:             items,
	}

	for _, item := range items {
		if err := s.productRepo.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		// Put the stock back, the order was not persisted
		for _, item := range items {
			_ = s.productRepo.AdjustStock(ctx, item.ProductID, item.Quantity)
		}
		return nil, err
	}

	if err := s.cartRepo.Clear(ctx, cart.ID); err != nil {
		log.Printf("Warning: failed to clear cart %s after order %s: %v", cart.ID, order.ID, err)
	}

	s.sendConfirmation(ctx, order)

	return s.orderRepo.GetWithItems(ctx, order.ID)
}

// sendConfirmation emails the customer; a mail failure never fails the order
func (s *OrderService) sendConfirmation(ctx context.Context, order *entity.Order) {
	if s.emailService == nil {
		return
	}
	loaded, err := s.orderRepo.GetByID(ctx, order.ID)
	if err != nil || loaded == nil || loaded.User.Email == "" {
		return
	}
	data := email.OrderConfirmationData{
		Name:        loaded.User.Name,
		OrderID:     order.ID.String(),
		ItemCount:   len(order.Items),
		FinalAmount: fmt.Sprintf("%.2f", order.FinalAmount),
	}
	if err := s.emailService.SendOrderConfirmation(loaded.User.Email, data); err != nil {
		log.Printf("Warning: failed to send confirmation for order %s: %v", order.ID, err)
	}
}

// GetOrder retrieves an order, enforcing ownership for non-admin callers
func (s *OrderService) GetOrder(ctx context.Context, userID uuid.UUID, isAdmin bool, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if !isAdmin && order.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return order, nil
}

// ListOrders lists orders with filtering and pagination
func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	return s.orderRepo.List(ctx, userID, params)
}

// CancelOrder cancels a not-yet-shipped order and restores its stock
func (s *OrderService) CancelOrder(ctx context.Context, userID uuid.UUID, isAdmin bool, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.GetOrder(ctx, userID, isAdmin, orderID)
	if err != nil {
		return nil, err
	}

	switch order.OrderStatus {
	case enum.OrderStatusCancelled:
		return nil, apperror.NewBadRequestError("Order is already cancelled")
	case enum.OrderStatusShipped, enum.OrderStatusDelivered, enum.OrderStatusReturned:
		return nil, apperror.NewBadRequestError("Order can no longer be cancelled")
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, enum.OrderStatusCancelled); err != nil {
		return nil, err
	}

	for _, item := range order.Items {
		if err := s.productRepo.AdjustStock(ctx, item.ProductID, item.Quantity); err != nil {
			log.Printf("Warning: failed to restore stock for product %s: %v", item.ProductID, err)
		}
	}

	return s.orderRepo.GetWithItems(ctx, orderID)
}

// UpdateStatus moves an order through its lifecycle (admin only). Marking an
// order delivered records the delivery date, which anchors the return window.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status enum.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown order status")
	}

	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	order.OrderStatus = status
	if status == enum.OrderStatusDelivered && order.DeliveryDate == nil {
		now := time.Now()
		order.DeliveryDate = &now
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// RequestReturnInput represents a return request on a delivered line item
type RequestReturnInput struct {
	UserID      uuid.UUID
	OrderID     uuid.UUID
	OrderItemID uuid.UUID
	Reason      string
	IsDamaged   bool
}

// RequestReturn files a return request for an order item while the order is
// inside its return window.
func (s *OrderService) RequestReturn(ctx context.Context, input *RequestReturnInput) (*entity.ReturnRequest, error) {
	order, err := s.GetOrder(ctx, input.UserID, false, input.OrderID)
	if err != nil {
		return nil, err
	}

	if !order.IsReturnEligible(time.Now()) {
		return nil, apperror.NewBadRequestError("Order is no longer eligible for return")
	}

	var item *entity.OrderItem
	for i := range order.Items {
		if order.Items[i].ID == input.OrderItemID {
			item = &order.Items[i]
			break
		}
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Order item")
	}

	existing, err := s.returnRepo.GetByOrderItemID(ctx, input.OrderItemID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A return request already exists for this item")
	}

	request := &entity.ReturnRequest{
		OrderItemID: input.OrderItemID,
		Reason:      input.Reason,
		IsDamaged:   input.IsDamaged,
		Status:      enum.ReturnStatusPending,
		RequestDate: time.Now(),
	}
	if err := s.returnRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	item.Status = enum.ItemStatusReturnRequested
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return request, nil
}

// AddAddress saves a shipping address for the user
func (s *OrderService) AddAddress(ctx context.Context, address *entity.Address) (*entity.Address, error) {
	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

// ListAddresses lists the user's saved shipping addresses
func (s *OrderService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]entity.Address, error) {
	return s.addressRepo.ListByUser(ctx, userID)
}

// DeleteAddress removes a saved address, enforcing ownership
func (s *OrderService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	address, err := s.addressRepo.GetByID(ctx, addressID)
	if err != nil {
		return err
	}
	if address == nil {
		return apperror.NewNotFoundError("Address")
	}
	if address.UserID != userID {
		return apperror.ErrForbidden
	}
	return s.addressRepo.Delete(ctx, addressID)
}
