// Package ports defines the contracts between the application layer and the
// adapters that back it.
package ports

import (
	"context"

	"creational/internal/core/domain/model/kernel"
	"creational/internal/core/domain/model/order"
)

// OrderRepository stores order aggregates. Implementations must not share
// mutable state with callers: what goes in and what comes out are
// independent copies.
type OrderRepository interface {
	// Add stores a new order. Adding an ID that already exists is an error.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with the given ID.
	// Returns an errs.ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns every stored order in insertion order.
	List(ctx context.Context) ([]*order.Order, error)
}
