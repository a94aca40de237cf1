// Package cart implements the session-scoped shopping cart: an ordered set of
// line items keyed by product id, with derived subtotal and item count.
package cart

import "errors"

// ErrInvalidQuantity is returned when a caller passes a non-positive quantity
// where a positive one is required. Quantities are never silently clamped.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// LineItem is one cart line. Display metadata and unit price are copied from
// the catalog at add time and not re-fetched afterwards.
type LineItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
}

// Cart holds line items in insertion order, at most one line per product id.
// The zero value is an empty, usable cart.
type Cart struct {
	Items []LineItem `json:"items"`
}

// AddItem adds qty units of item to the cart. If the product is already
// present its quantity is incremented; otherwise a new line is appended.
// The Quantity field on item is ignored; qty is authoritative.
func (c *Cart) AddItem(item LineItem, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += qty
			return nil
		}
	}
	item.Quantity = qty
	c.Items = append(c.Items, item)
	return nil
}

// SetQuantity sets the line's quantity to exactly qty. A quantity of zero or
// less removes the line (decrementing to zero means removal, not an error).
// Updating an absent product id is a no-op.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = qty
			return
		}
	}
}

// Remove drops the line for productID if present; no-op otherwise.
func (c *Cart) Remove(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called by the checkout flow after a successful
// order submission, never on navigation.
func (c *Cart) Clear() {
	c.Items = nil
}

// Subtotal recomputes the sum of unit price times quantity on every call.
func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, it := range c.Items {
		sum += it.UnitPrice * int64(it.Quantity)
	}
	return sum
}

// ItemCount recomputes the sum of quantities on every call.
func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
