package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopsphere/storefront-api/internal/domain/entity"
)

// CartRepository defines the interface for cart data operations
type CartRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
	AddItem(ctx context.Context, item *entity.CartItem) error
	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error
	RemoveItem(ctx context.Context, itemID uuid.UUID) error
	Clear(ctx context.Context, cartID uuid.UUID) error
	CountItems(ctx context.Context, userID uuid.UUID) (int64, error)
}

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	List(ctx context.Context, category string) ([]entity.Product, error)
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) error
}
