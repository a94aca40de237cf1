package cart

import (
	"context"
	"sync"
)

// Store is the cart persistence port. Load returns an empty cart, not an
// error, for a session it has never seen.
type Store interface {
	Load(ctx context.Context, sessionID string) (Cart, error)
	Save(ctx context.Context, sessionID string, c Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// Engine owns cart persistence for every shopper session. Each mutation is a
// load-mutate-save round trip through the Store. A shopper's session is a
// single logical actor, but the HTTP server is not; the mutex keeps
// concurrent requests from interleaving a round trip.
type Engine struct {
	mu    sync.Mutex
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

func (e *Engine) AddItem(ctx context.Context, sessionID string, item LineItem, qty int) (Cart, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, err := e.store.Load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}
	if err := c.AddItem(item, qty); err != nil {
		return Cart{}, err
	}
	if err := e.store.Save(ctx, sessionID, c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

func (e *Engine) SetQuantity(ctx context.Context, sessionID, productID string, qty int) (Cart, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, err := e.store.Load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}
	c.SetQuantity(productID, qty)
	if err := e.store.Save(ctx, sessionID, c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

func (e *Engine) RemoveItem(ctx context.Context, sessionID, productID string) (Cart, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, err := e.store.Load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}
	c.Remove(productID)
	if err := e.store.Save(ctx, sessionID, c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

func (e *Engine) Clear(ctx context.Context, sessionID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Delete(ctx, sessionID)
}

func (e *Engine) Get(ctx context.Context, sessionID string) (Cart, error) {
	return e.store.Load(ctx, sessionID)
}
