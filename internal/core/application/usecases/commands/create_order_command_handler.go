package commands

import (
	"context"

	"creational/internal/core/domain/model/order"
)

// CreateOrderCommandHandler builds an order from a command and stores it.
type CreateOrderCommandHandler struct {
	repo OrderRepository
}

// NewCreateOrderCommandHandler creates a handler backed by repo.
func NewCreateOrderCommandHandler(repo OrderRepository) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{repo: repo}
}

// Handle builds the order with the requested products and amounts and adds
// it to the repository.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID())
	if err != nil {
		return err
	}
	for _, p := range cmd.Products() {
		o.AddProduct(p)
	}
	if err = o.SetDeliveryCost(cmd.DeliveryCost()); err != nil {
		return err
	}
	if err = o.SetDiscount(cmd.Discount()); err != nil {
		return err
	}

	return h.repo.Add(ctx, o)
}
