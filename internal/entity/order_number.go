package domain

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const orderNumberRandLen = 5

var base36Max = new(big.Int).Exp(big.NewInt(36), big.NewInt(orderNumberRandLen), nil)

// NewOrderNumber builds a customer-facing order number of the form
// ORD-<base36 millis>-<base36 random>. Collisions are accepted as negligible;
// the unique index on orders.order_number is the backstop.
func NewOrderNumber(now time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))

	n, err := rand.Int(rand.Reader, base36Max)
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// fall back to the clock rather than refuse the order.
		n = big.NewInt(now.UnixNano() % base36Max.Int64())
	}
	suffix := strings.ToUpper(n.Text(36))
	for len(suffix) < orderNumberRandLen {
		suffix = "0" + suffix
	}

	return "ORD-" + ts + "-" + suffix
}
