package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/aurea-shop/storefront-api/internal/entity"
)

type recordingOrderRepo struct {
	OrderRepo
	statusCalls  []domain.Status
	paymentCalls []domain.PaymentStatus
	err          error
}

func (r *recordingOrderRepo) UpdateStatus(_ context.Context, _ string, to domain.Status) error {
	if r.err != nil {
		return r.err
	}
	r.statusCalls = append(r.statusCalls, to)
	return nil
}

func (r *recordingOrderRepo) UpdatePaymentStatus(_ context.Context, _ string, to domain.PaymentStatus) error {
	if r.err != nil {
		return r.err
	}
	r.paymentCalls = append(r.paymentCalls, to)
	return nil
}

type recordingCache struct {
	set map[string]string
}

func (c *recordingCache) SetStatus(_ context.Context, orderID, status string) error {
	if c.set == nil {
		c.set = map[string]string{}
	}
	c.set[orderID] = status
	return nil
}

func (c *recordingCache) GetStatus(_ context.Context, orderID string) (string, bool, error) {
	v, ok := c.set[orderID]
	return v, ok, nil
}

func TestSetOrderStatusRejectsUnknownLabel(t *testing.T) {
	repo := &recordingOrderRepo{}
	uc := NewSetOrderStatus(repo, nil)

	err := uc.Execute(context.Background(), "o1", "refunded")
	assert.ErrorIs(t, err, domain.ErrUnknownStatus)
	assert.Empty(t, repo.statusCalls)
}

func TestSetOrderStatusAllowsAnyKnownTransition(t *testing.T) {
	repo := &recordingOrderRepo{}
	cache := &recordingCache{}
	uc := NewSetOrderStatus(repo, cache)

	// delivered back to pending is legal; the workflow has no ordering rules
	require.NoError(t, uc.Execute(context.Background(), "o1", domain.StatusDelivered))
	require.NoError(t, uc.Execute(context.Background(), "o1", domain.StatusPending))

	assert.Equal(t, []domain.Status{domain.StatusDelivered, domain.StatusPending}, repo.statusCalls)
	assert.Equal(t, "pending", cache.set["o1"])
}

func TestSetOrderStatusPropagatesRepoError(t *testing.T) {
	repo := &recordingOrderRepo{err: domain.ErrOrderNotFound}
	uc := NewSetOrderStatus(repo, nil)

	err := uc.Execute(context.Background(), "missing", domain.StatusShipped)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestSetPaymentStatus(t *testing.T) {
	repo := &recordingOrderRepo{}
	uc := NewSetOrderStatus(repo, nil)

	require.NoError(t, uc.SetPaymentStatus(context.Background(), "o1", domain.PaymentPaid))
	assert.Equal(t, []domain.PaymentStatus{domain.PaymentPaid}, repo.paymentCalls)

	err := uc.SetPaymentStatus(context.Background(), "o1", "chargeback")
	assert.ErrorIs(t, err, domain.ErrUnknownStatus)
}
