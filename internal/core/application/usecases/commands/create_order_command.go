package commands

import (
	"errors"

	"creational/internal/core/domain/model/kernel"
	"creational/internal/core/domain/model/order"
	"creational/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new order.
//
// Example:
//
//	p1, _ := order.NewProduct("Product 1", 10.0)
//	p2, _ := order.NewProduct("Product 2", 15.0)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), []order.Product{p1, p2}, 5.0, 2.0)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	products     []order.Product
	deliveryCost float64
	discount     float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the order ID and both amounts. An empty
// product list is allowed.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	products []order.Product,
	deliveryCost float64,
	discount float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDeliveryCost(deliveryCost),
		cmd.setDiscount(discount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.products = append(make([]order.Product, 0, len(products)), products...)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Products returns a copy of the requested line items.
func (c CreateOrderCommand) Products() []order.Product {
	return append([]order.Product(nil), c.products...)
}

func (c CreateOrderCommand) DeliveryCost() float64 {
	return c.deliveryCost
}

func (c CreateOrderCommand) Discount() float64 {
	return c.discount
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDeliveryCost(cost float64) error {
	if err := order.ValidateAmount("delivery cost", cost); err != nil {
		return err
	}
	c.deliveryCost = cost
	return nil
}

func (c *CreateOrderCommand) setDiscount(discount float64) error {
	if err := order.ValidateAmount("discount", discount); err != nil {
		return err
	}
	c.discount = discount
	return nil
}
