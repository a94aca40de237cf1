package domain

// ShippingPolicy holds the shipping tariff. Values come from the store
// settings record, not from code.
type ShippingPolicy struct {
	FreeThreshold int64
	StandardCost  int64
}

// Shipping returns the shipping cost for a given subtotal. An empty cart
// ships nothing, and orders at or above the free threshold ship free.
func (p ShippingPolicy) Shipping(subtotal int64) int64 {
	if subtotal <= 0 {
		return 0
	}
	if subtotal >= p.FreeThreshold {
		return 0
	}
	return p.StandardCost
}

// Total sums subtotal, shipping and tax. Tax is always zero today; the
// parameter stays so the formula does not change when a tax engine lands.
func Total(subtotal, shipping, tax int64) int64 {
	return subtotal + shipping + tax
}
