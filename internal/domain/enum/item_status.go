package enum

import "database/sql/driver"

// ItemStatus represents the fulfillment status of a single order line item
type ItemStatus string

const (
	ItemStatusProcessing      ItemStatus = "Processing"
	ItemStatusShipped         ItemStatus = "Shipped"
	ItemStatusDelivered       ItemStatus = "Delivered"
	ItemStatusCancelled       ItemStatus = "Cancelled"
	ItemStatusReturned        ItemStatus = "Returned"
	ItemStatusReturnRequested ItemStatus = "Return Requested"
)

func (s ItemStatus) String() string {
	return string(s)
}

func (s ItemStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *ItemStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ItemStatusProcessing
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = ItemStatus(v)
	case []byte:
		*s = ItemStatus(v)
	}
	return nil
}

// ReturnStatus represents the state of a return request on a line item
type ReturnStatus string

const (
	ReturnStatusEmpty    ReturnStatus = "Empty"
	ReturnStatusPending  ReturnStatus = "Pending"
	ReturnStatusApproved ReturnStatus = "Approved"
	ReturnStatusRejected ReturnStatus = "Rejected"
)

func (s ReturnStatus) String() string {
	return string(s)
}

func (s ReturnStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *ReturnStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ReturnStatusEmpty
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = ReturnStatus(v)
	case []byte:
		*s = ReturnStatus(v)
	}
	return nil
}
