package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Address represents a shipping address saved by a user
type Address struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	FullName  string         `gorm:"size:255;not null" json:"full_name"`
	Line1     string         `gorm:"size:255;not null" json:"line1"`
	Line2     *string        `gorm:"size:255" json:"line2,omitempty"`
	City      string         `gorm:"size:100;not null" json:"city"`
	State     string         `gorm:"size:100" json:"state"`
	Pincode   string         `gorm:"size:20;not null" json:"pincode"`
	Phone     string         `gorm:"size:50;not null" json:"phone"`
	IsDefault bool           `gorm:"default:false" json:"is_default"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new address
func (a *Address) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Address model
func (Address) TableName() string {
	return "addresses"
}
