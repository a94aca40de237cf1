package usecase

import (
	"context"

	"github.com/aurea-shop/storefront-api/internal/cart"
	domain "github.com/aurea-shop/storefront-api/internal/entity"
)

// ProductFilter narrows catalog listings. Zero value means "everything".
type ProductFilter struct {
	Category string
	Search   string
	Featured *bool
	Limit    int
}

type ProductRepo interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	List(ctx context.Context, f ProductFilter) ([]domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}

type OrderRepo interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, status domain.Status, limit int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, to domain.Status) error
	// UpdateStatusIf is a guarded compare-and-set; false means the order was
	// not in fromStatus (or does not exist).
	UpdateStatusIf(ctx context.Context, id string, from, to domain.Status) (bool, error)
	UpdatePaymentStatus(ctx context.Context, id string, to domain.PaymentStatus) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (domain.StoreSettings, error)
	Save(ctx context.Context, s domain.StoreSettings) error
}

// Carts is the slice of the cart engine the checkout flow needs.
type Carts interface {
	Get(ctx context.Context, sessionID string) (cart.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

type IdempotencyStore interface {
	TryLock(ctx context.Context, scope, key string) (bool, error)
	Release(ctx context.Context, scope, key string) error
	Remember(ctx context.Context, scope, key, value string) error
	Recall(ctx context.Context, scope, key string) (string, bool, error)
}

// OrderEvents publishes storefront events to the message broker.
type OrderEvents interface {
	PublishPlaced(ctx context.Context, msg PlacedMsg) error
}

// AnalyticsSummary is the admin dashboard aggregate over the order store.
type AnalyticsSummary struct {
	TotalRevenue      int64                 `json:"totalRevenue"`
	TotalOrders       int                   `json:"totalOrders"`
	AverageOrderValue int64                 `json:"averageOrderValue"`
	UniqueCustomers   int                   `json:"uniqueCustomers"`
	StatusCounts      map[domain.Status]int `json:"statusCounts"`
	RecentOrders      []domain.Order        `json:"recentOrders"`
}

type AnalyticsRepo interface {
	Summary(ctx context.Context, recentLimit int) (AnalyticsSummary, error)
}

type OrderCache interface {
	SetStatus(ctx context.Context, orderID, status string) error
	GetStatus(ctx context.Context, orderID string) (string, bool, error)
}
