// Package orderrepo provides an in-memory implementation of ports.OrderRepository.
// Orders are snapshotted on the way in and on the way out, so neither the
// repository nor its callers can observe each other's later mutations.
package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"creational/internal/core/domain/model/kernel"
	"creational/internal/core/domain/model/order"
	"creational/internal/core/ports"
	"creational/internal/pkg/errs"
)

var _ ports.OrderRepository = (*MemoryOrderRepository)(nil)

// ErrOrderAlreadyExists is returned by Add for a duplicate ID.
var ErrOrderAlreadyExists = errors.New("order already exists")

// MemoryOrderRepository keeps orders in a map guarded by a RWMutex.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*order.Order
	ids    []string
}

// NewMemoryOrderRepository creates an empty repository.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make(map[string]*order.Order),
	}
}

// Add stores a snapshot of a new order.
func (r *MemoryOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	snap, err := aggregate.Snapshot()
	if err != nil {
		return err
	}

	key := snap.ID().String()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[key]; ok {
		return fmt.Errorf("%w: %s", ErrOrderAlreadyExists, key)
	}
	r.orders[key] = snap
	r.ids = append(r.ids, key)
	return nil
}

// Get returns a snapshot of the stored order.
func (r *MemoryOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	stored, ok := r.orders[id.String()]
	r.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return stored.Snapshot()
}

// List returns snapshots of all orders in insertion order.
func (r *MemoryOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*order.Order, 0, len(r.ids))
	for _, key := range r.ids {
		snap, err := r.orders[key].Snapshot()
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}
