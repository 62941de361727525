package request

// CreateAddressRequest represents a request to save a shipping address
type CreateAddressRequest struct {
	FullName  string  `json:"full_name" binding:"required,min=2,max=255"`
	Line1     string  `json:"line1" binding:"required,max=255"`
	Line2     *string `json:"line2"`
	City      string  `json:"city" binding:"required,max=100"`
	State     string  `json:"state" binding:"omitempty,max=100"`
	Pincode   string  `json:"pincode" binding:"required,max=20"`
	Phone     string  `json:"phone" binding:"required,max=50"`
	IsDefault bool    `json:"is_default"`
}
