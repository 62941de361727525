package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopsphere/storefront-api/internal/domain/entity"
	"github.com/shopsphere/storefront-api/internal/domain/repository"
	"github.com/shopsphere/storefront-api/pkg/apperror"
)

// CartService handles shopping cart operations
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart returns the user's cart, creating an empty one on first access
func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return s.cartRepo.GetOrCreate(ctx, userID)
}

// AddItem puts a product into the user's cart
func (s *CartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, apperror.NewBadRequestError("Quantity must be at least 1")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsListed {
		return nil, apperror.NewNotFoundError("Product")
	}
	if product.Stock < quantity {
		return nil, apperror.NewBadRequestError("Not enough stock available")
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Merge with an existing line for the same product
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			newQuantity := cart.Items[i].Quantity + quantity
			if product.Stock < newQuantity {
				return nil, apperror.NewBadRequestError("Not enough stock available")
			}
			if err := s.cartRepo.UpdateItemQuantity(ctx, cart.Items[i].ID, newQuantity); err != nil {
				return nil, err
			}
			return s.cartRepo.GetByUserID(ctx, userID)
		}
	}

	item := &entity.CartItem{
		CartID:    cart.ID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.AddItem(ctx, item); err != nil {
		return nil, err
	}
	return s.cartRepo.GetByUserID(ctx, userID)
}

// UpdateItemQuantity changes the quantity of a cart line
func (s *CartService) UpdateItemQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, apperror.NewBadRequestError("Quantity must be at least 1")
	}

	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, apperror.NewNotFoundError("Cart")
	}

	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			if cart.Items[i].Product.Stock < quantity {
				return nil, apperror.NewBadRequestError("Not enough stock available")
			}
			if err := s.cartRepo.UpdateItemQuantity(ctx, itemID, quantity); err != nil {
				return nil, err
			}
			return s.cartRepo.GetByUserID(ctx, userID)
		}
	}
	return nil, apperror.NewNotFoundError("Cart item")
}

// RemoveItem removes a line from the user's cart
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, apperror.NewNotFoundError("Cart")
	}

	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			if err := s.cartRepo.RemoveItem(ctx, itemID); err != nil {
				return nil, err
			}
			return s.cartRepo.GetByUserID(ctx, userID)
		}
	}
	return nil, apperror.NewNotFoundError("Cart item")
}

// CountItems returns the number of lines in the user's cart
func (s *CartService) CountItems(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.cartRepo.CountItems(ctx, userID)
}
