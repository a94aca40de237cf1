package domain

// StoreSettings is the single back-office configuration record. The
// checkout's shipping policy reads from here rather than from constants.
type StoreSettings struct {
	StoreName    string `json:"storeName"`
	StoreEmail   string `json:"storeEmail"`
	StorePhone   string `json:"storePhone"`
	StoreAddress string `json:"storeAddress"`

	FreeShippingThreshold int64 `json:"freeShippingThreshold"`
	StandardShippingCost  int64 `json:"standardShippingCost"`
	ExpressShippingCost   int64 `json:"expressShippingCost"`

	CODEnabled          bool `json:"codEnabled"`
	BankTransferEnabled bool `json:"bankTransferEnabled"`
	OrderNotifications  bool `json:"orderNotifications"`
}

// DefaultSettings are used until an administrator saves the record.
func DefaultSettings() StoreSettings {
	return StoreSettings{
		StoreName:             "Aurea",
		StoreEmail:            "info@aurea.com",
		StorePhone:            "+92 300 1234567",
		StoreAddress:          "Lahore, Punjab, Pakistan",
		FreeShippingThreshold: 5000,
		StandardShippingCost:  250,
		ExpressShippingCost:   500,
		CODEnabled:            true,
		BankTransferEnabled:   false,
		OrderNotifications:    true,
	}
}

func (s StoreSettings) ShippingPolicy() ShippingPolicy {
	return ShippingPolicy{
		FreeThreshold: s.FreeShippingThreshold,
		StandardCost:  s.StandardShippingCost,
	}
}
