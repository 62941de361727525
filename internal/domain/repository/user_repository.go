package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopsphere/storefront-api/internal/domain/entity"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByProviderID(ctx context.Context, provider, providerID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}

// AddressRepository defines the interface for shipping address operations
type AddressRepository interface {
	Create(ctx context.Context, address *entity.Address) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Address, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
