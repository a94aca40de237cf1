package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// KnownStatus reports whether s is one of the recognized order statuses.
// Transitions themselves are unconstrained: an operator may set any known
// status from any other status.
func KnownStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

func KnownPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	}
	return false
}

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
	ErrUnknownStatus = errors.New("unknown order status")
	ErrInvalidAmount = errors.New("invalid amount")
)

// InvalidAddressError enumerates the required shipping-address fields that
// were missing from a checkout request.
type InvalidAddressError struct {
	Missing []string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("missing shipping address fields: %s", strings.Join(e.Missing, ", "))
}

// Address is the shipping address captured at checkout. First name, phone,
// street, city and province are required; the rest is optional.
type Address struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
}

func (a Address) Validate() error {
	var missing []string
	if strings.TrimSpace(a.FirstName) == "" {
		missing = append(missing, "firstName")
	}
	if strings.TrimSpace(a.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(a.Street) == "" {
		missing = append(missing, "street")
	}
	if strings.TrimSpace(a.City) == "" {
		missing = append(missing, "city")
	}
	if strings.TrimSpace(a.Province) == "" {
		missing = append(missing, "province")
	}
	if len(missing) > 0 {
		return &InvalidAddressError{Missing: missing}
	}
	return nil
}

// FullName joins first and last name the way the storefront displays it.
func (a Address) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// OrderItem is a snapshot of one cart line at submission time. It is never
// re-fetched or re-priced after the order is created.
type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
}

type Order struct {
	ID            string
	OrderNumber   string
	Items         []OrderItem
	Subtotal      int64
	Shipping      int64
	Tax           int64
	Total         int64
	Status        Status
	PaymentMethod string
	PaymentStatus PaymentStatus
	ShippingAddr  Address
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (o *Order) Validate() error {
	if len(o.Items) == 0 {
		return ErrEmptyCart
	}
	if o.Subtotal < 0 || o.Total < 0 {
		return ErrInvalidAmount
	}
	return o.ShippingAddr.Validate()
}
