package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopsphere/storefront-api/internal/domain/entity"
	"github.com/shopsphere/storefront-api/internal/domain/enum"
	domainRepo "github.com/shopsphere/storefront-api/internal/domain/repository"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("ShippingAddress").
		Preload("Items.Product").
		Preload("Items.ReturnRequest").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{})
	if !params.SkipUserFilter && userID != uuid.Nil {
		query = query.Where("user_id = ?", userID)
	}

	if params.Status != nil {
		query = query.Where("order_status = ?", *params.Status)
	}

	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Update("order_status", status).Error
}

// ListForReport returns every non-cancelled order in the range. Both bounds
// are inclusive; a nil bound leaves that side open.
func (r *orderRepository) ListForReport(ctx context.Context, params *domainRepo.ReportFilterParams) ([]entity.Order, error) {
	var orders []entity.Order

	query := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("order_status <> ?", enum.OrderStatusCancelled)

	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	if params.ExpandRelated {
		query = query.
			Preload("User").
			Preload("Items.Product").
			Preload("ShippingAddress")
	}

	err := query.Order("created_at ASC").Find(&orders).Error
	return orders, err
}

type returnRequestRepository struct {
	db *gorm.DB
}

// NewReturnRequestRepository creates a new return request repository
func NewReturnRequestRepository(db *gorm.DB) domainRepo.ReturnRequestRepository {
	return &returnRequestRepository{db: db}
}

func (r *returnRequestRepository) Create(ctx context.Context, request *entity.ReturnRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *returnRequestRepository) GetByOrderItemID(ctx context.Context, orderItemID uuid.UUID) (*entity.ReturnRequest, error) {
	var request entity.ReturnRequest
	err := r.db.WithContext(ctx).First(&request, "order_item_id = ?", orderItemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &request, err
}

func (r *returnRequestRepository) Update(ctx context.Context, request *entity.ReturnRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}
