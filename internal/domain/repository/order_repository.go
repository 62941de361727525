package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopsphere/storefront-api/internal/domain/entity"
	"github.com/shopsphere/storefront-api/internal/domain/enum"
	"github.com/shopsphere/storefront-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	List(ctx context.Context, userID uuid.UUID, params *OrderFilterParams) ([]entity.Order, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error

	// ListForReport returns all non-cancelled orders in the given range,
	// optionally expanding the owning user, item products and shipping address.
	ListForReport(ctx context.Context, params *ReportFilterParams) ([]entity.Order, error)
}

// OrderFilterParams contains filtering parameters for order listings
type OrderFilterParams struct {
	Pagination     *pagination.PaginationParams
	Status         *enum.OrderStatus
	StartDate      *time.Time
	EndDate        *time.Time
	SkipUserFilter bool // If true, returns all orders (for admins)
}

// ReportFilterParams contains filtering parameters for sales report queries.
// Cancelled orders are always excluded; bounds are inclusive and either side
// may be left open.
type ReportFilterParams struct {
	StartDate     *time.Time
	EndDate       *time.Time
	ExpandRelated bool // preload user, item products and shipping address
}

// ReturnRequestRepository defines the interface for return request operations
type ReturnRequestRepository interface {
	Create(ctx context.Context, request *entity.ReturnRequest) error
	GetByOrderItemID(ctx context.Context, orderItemID uuid.UUID) (*entity.ReturnRequest, error)
	Update(ctx context.Context, request *entity.ReturnRequest) error
}
