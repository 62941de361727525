package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopsphere/storefront-api/internal/domain/enum"
	"gorm.io/gorm"
)

// returnWindow is how long after delivery an item stays eligible for return
const returnWindow = 7 * 24 * time.Hour

// Order represents a placed storefront order
type Order struct {
	ID                uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID            uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	ShippingAddressID uuid.UUID          `gorm:"type:uuid;not null" json:"shipping_address_id"`
	Subtotal          float64            `gorm:"not null" json:"subtotal"`
	DiscountAmount    float64            `gorm:"default:0" json:"discount_amount"`
	DeliveryFee       float64            `gorm:"not null" json:"delivery_fee"`
	FinalAmount       float64            `gorm:"not null" json:"final_amount"`
	CouponCode        *string            `gorm:"size:50" json:"coupon_code,omitempty"`
	PaymentMethod     enum.PaymentMethod `gorm:"size:50;not null" json:"payment_method"`
	PaymentStatus     enum.PaymentStatus `gorm:"size:50;default:'Pending'" json:"payment_status"`
	OrderStatus       enum.OrderStatus   `gorm:"size:50;default:'Processing';index" json:"order_status"`
	DeliveryDate      *time.Time         `json:"delivery_date,omitempty"`
	CreatedAt         time.Time          `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
	DeletedAt         gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	User            User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ShippingAddress Address     `gorm:"foreignKey:ShippingAddressID" json:"shipping_address,omitempty"`
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// IsReturnEligible reports whether the order is still inside the return window.
// The window is counted from the delivery date, falling back to the creation
// timestamp when no delivery date was recorded.
func (o *Order) IsReturnEligible(now time.Time) bool {
	if o.OrderStatus != enum.OrderStatusDelivered {
		return false
	}
	reference := o.CreatedAt
	if o.DeliveryDate != nil {
		reference = *o.DeliveryDate
	}
	return now.Sub(reference) < returnWindow
}

// OrderItem represents a line item in an order
type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     float64         `gorm:"not null" json:"price"`
	Status    enum.ItemStatus `gorm:"size:50;default:'Processing'" json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Relationships
	Order         Order          `gorm:"foreignKey:OrderID" json:"-"`
	Product       Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	ReturnRequest *ReturnRequest `gorm:"foreignKey:OrderItemID" json:"return_request,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// ReturnRequest represents a customer's return request on a delivered item
type ReturnRequest struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	OrderItemID   uuid.UUID         `gorm:"type:uuid;unique;not null" json:"order_item_id"`
	Reason        string            `gorm:"type:text" json:"reason"`
	IsDamaged     bool              `gorm:"default:false" json:"is_damaged"`
	Status        enum.ReturnStatus `gorm:"size:50;default:'Pending'" json:"status"`
	RequestDate   time.Time         `json:"request_date"`
	AdminResponse *string           `gorm:"type:text" json:"admin_response,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new return request
func (rr *ReturnRequest) BeforeCreate(tx *gorm.DB) error {
	if rr.ID == uuid.Nil {
		rr.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReturnRequest model
func (ReturnRequest) TableName() string {
	return "return_requests"
}
