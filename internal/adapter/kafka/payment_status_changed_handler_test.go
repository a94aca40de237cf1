package kafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/aurea-shop/storefront-api/internal/entity"
	"github.com/aurea-shop/storefront-api/internal/usecase"
)

type paymentRepoStub struct {
	usecase.OrderRepo
	updates map[string]domain.PaymentStatus
	err     error
}

func (s *paymentRepoStub) UpdatePaymentStatus(_ context.Context, id string, to domain.PaymentStatus) error {
	if s.err != nil {
		return s.err
	}
	if s.updates == nil {
		s.updates = map[string]domain.PaymentStatus{}
	}
	s.updates[id] = to
	return nil
}

type cacheStub struct{ set map[string]string }

func (c *cacheStub) SetStatus(_ context.Context, orderID, status string) error {
	if c.set == nil {
		c.set = map[string]string{}
	}
	c.set[orderID] = status
	return nil
}

func (c *cacheStub) GetStatus(_ context.Context, orderID string) (string, bool, error) {
	v, ok := c.set[orderID]
	return v, ok, nil
}

func TestPaymentStatusMapping(t *testing.T) {
	cases := []struct {
		external string
		want     domain.PaymentStatus
	}{
		{"PAID", domain.PaymentPaid},
		{"SUCCESS", domain.PaymentPaid},
		{"FAILED", domain.PaymentFailed},
		{"DECLINED", domain.PaymentFailed},
		{"TIMEOUT", domain.PaymentFailed},
	}
	for _, tc := range cases {
		repo := &paymentRepoStub{}
		h := NewPaymentStatusChangedHandler(repo, nil)

		err := h.Handle(context.Background(), usecase.PaymentStatusChangedMsg{OrderID: "o1", Status: tc.external})
		require.NoError(t, err, tc.external)
		assert.Equal(t, tc.want, repo.updates["o1"], tc.external)
	}
}

func TestPaymentStatusUnknownLabelSkipped(t *testing.T) {
	repo := &paymentRepoStub{}
	cache := &cacheStub{}
	h := NewPaymentStatusChangedHandler(repo, cache)

	// a label this service does not know yet must not be written as failed
	err := h.Handle(context.Background(), usecase.PaymentStatusChangedMsg{OrderID: "o1", Status: "PENDING"})
	require.NoError(t, err)
	assert.Empty(t, repo.updates)
	assert.Empty(t, cache.set)
}

func TestPaymentStatusCacheUpdated(t *testing.T) {
	repo := &paymentRepoStub{}
	cache := &cacheStub{}
	h := NewPaymentStatusChangedHandler(repo, cache)

	require.NoError(t, h.Handle(context.Background(), usecase.PaymentStatusChangedMsg{OrderID: "o1", Status: "PAID"}))
	assert.Equal(t, "payment:paid", cache.set["o1"])
}

func TestPaymentStatusRepoErrorPropagates(t *testing.T) {
	repo := &paymentRepoStub{err: domain.ErrOrderNotFound}
	cache := &cacheStub{}
	h := NewPaymentStatusChangedHandler(repo, cache)

	err := h.Handle(context.Background(), usecase.PaymentStatusChangedMsg{OrderID: "ghost", Status: "PAID"})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	assert.Empty(t, cache.set)
}
