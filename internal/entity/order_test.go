package domain

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() Address {
	return Address{
		FirstName: "Ayesha",
		LastName:  "Khan",
		Phone:     "+92-300-1234567",
		Street:    "12 Canal Road",
		City:      "Lahore",
		Province:  "Punjab",
	}
}

func TestAddressValidateComplete(t *testing.T) {
	assert.NoError(t, validAddress().Validate())
}

func TestAddressValidateEnumeratesMissingFields(t *testing.T) {
	a := validAddress()
	a.Phone = ""
	a.City = "   "

	err := a.Validate()
	var inv *InvalidAddressError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, []string{"phone", "city"}, inv.Missing)
	assert.Contains(t, inv.Error(), "phone")
}

func TestAddressOptionalFieldsNotRequired(t *testing.T) {
	a := validAddress()
	a.LastName = ""
	a.Email = ""
	a.PostalCode = ""
	assert.NoError(t, a.Validate())
}

func TestAddressFullName(t *testing.T) {
	assert.Equal(t, "Ayesha Khan", validAddress().FullName())

	solo := Address{FirstName: "Ayesha"}
	assert.Equal(t, "Ayesha", solo.FullName())
}

var orderNumberRe = regexp.MustCompile(`^ORD-[0-9A-Z]+-[0-9A-Z]{5}$`)

func TestNewOrderNumberFormat(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
	for i := 0; i < 100; i++ {
		n := NewOrderNumber(now)
		assert.Regexp(t, orderNumberRe, n)
	}
}

func TestNewOrderNumberEmbedsTimestamp(t *testing.T) {
	a := NewOrderNumber(time.UnixMilli(1_000_000))
	b := NewOrderNumber(time.UnixMilli(2_000_000))

	// same millisecond gives the same timestamp segment
	assert.Equal(t, segment(a), segment(NewOrderNumber(time.UnixMilli(1_000_000))))
	assert.NotEqual(t, segment(a), segment(b))
}

func segment(orderNumber string) string {
	return orderNumber[4 : len(orderNumber)-6]
}

func TestKnownStatus(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled} {
		assert.True(t, KnownStatus(s), string(s))
	}
	assert.False(t, KnownStatus("refunded"))
	assert.False(t, KnownStatus(""))
}

func TestKnownPaymentStatus(t *testing.T) {
	for _, s := range []PaymentStatus{PaymentPending, PaymentPaid, PaymentFailed} {
		assert.True(t, KnownPaymentStatus(s), string(s))
	}
	assert.False(t, KnownPaymentStatus("refunded"))
}

func TestOrderValidate(t *testing.T) {
	o := &Order{
		Items:        []OrderItem{{ProductID: "p1", Name: "Candle", Price: 1200, Quantity: 1}},
		Subtotal:     1200,
		Total:        1450,
		ShippingAddr: validAddress(),
	}
	assert.NoError(t, o.Validate())

	empty := *o
	empty.Items = nil
	assert.ErrorIs(t, empty.Validate(), ErrEmptyCart)

	negative := *o
	negative.Total = -1
	assert.ErrorIs(t, negative.Validate(), ErrInvalidAmount)
}
