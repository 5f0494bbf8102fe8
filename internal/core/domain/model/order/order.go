package order

import (
	"errors"
	"strings"

	"creational/internal/core/domain/model/kernel"
	"creational/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is an ordered collection of products plus a delivery cost and a
// discount. It doubles as a prototype: Clone yields an independent order
// that can be adjusted without touching the source.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Delivery cost and discount are finite and not negative
//   - Product order is preserved (display only)
//   - Can only be created through NewOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// products holds the line items in insertion order
	products []Product

	deliveryCost float64
	discount     float64

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an empty order.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID())
//	if err != nil {
//	    return err
//	}
//	p, _ := order.NewProduct("Product 1", 10.0)
//	o.AddProduct(p)
//	_ = o.SetDeliveryCost(5.0)
//	_ = o.SetDiscount(2.0)
func NewOrder(id kernel.UUID) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		products:      make([]Product, 0),
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Products returns a copy of the line items.
func (o *Order) Products() []Product {
	out := make([]Product, len(o.products))
	copy(out, o.products)
	return out
}

// DeliveryCost returns the delivery cost.
func (o *Order) DeliveryCost() float64 {
	return o.deliveryCost
}

// Discount returns the discount.
func (o *Order) Discount() float64 {
	return o.discount
}

// Total returns the sum of product prices plus delivery cost minus discount.
func (o *Order) Total() float64 {
	total := o.deliveryCost - o.discount
	for _, p := range o.products {
		total += p.price
	}
	return total
}

// AddProduct appends a product.
func (o *Order) AddProduct(p Product) {
	o.products = append(o.products, p)
}

// SetDeliveryCost replaces the delivery cost.
func (o *Order) SetDeliveryCost(cost float64) error {
	if err := ValidateAmount("delivery cost", cost); err != nil {
		return err
	}
	o.deliveryCost = cost
	return nil
}

// SetDiscount replaces the discount.
func (o *Order) SetDiscount(discount float64) error {
	if err := ValidateAmount("discount", discount); err != nil {
		return err
	}
	o.discount = discount
	return nil
}

// Clone returns a deep copy of the order under a fresh identifier.
// Every product is copied through Product.Clone, so the clone and the source
// share no product storage. Cloning an order not built by NewOrder fails
// with a *errs.CopyFailedError wrapping ErrOrderIsNotConstructed.
func (o *Order) Clone() (*Order, error) {
	return o.copyAs(kernel.NewUUID())
}

// Snapshot returns a deep copy that keeps the source identifier. It is
// meant for stores that must not share mutable state with their callers.
func (o *Order) Snapshot() (*Order, error) {
	if o == nil {
		return nil, errs.NewCopyFailedErrorWithCause("order", ErrOrderIsNotConstructed)
	}
	return o.copyAs(o.id)
}

// String renders the order as:
//
//	Order:
//	[name: $price, name: $price]
//	Delivery Cost: $cost
//	Discount: $discount
func (o *Order) String() string {
	items := make([]string, len(o.products))
	for i, p := range o.products {
		items[i] = p.String()
	}

	var b strings.Builder
	b.WriteString("Order:\n[")
	b.WriteString(strings.Join(items, ", "))
	b.WriteString("]\nDelivery Cost: $")
	b.WriteString(formatAmount(o.deliveryCost))
	b.WriteString("\nDiscount: $")
	b.WriteString(formatAmount(o.discount))
	return b.String()
}

func (o *Order) copyAs(id kernel.UUID) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, errs.NewCopyFailedErrorWithCause("order", err)
	}

	cloned, err := NewOrder(id)
	if err != nil {
		return nil, errs.NewCopyFailedErrorWithCause("order", err)
	}

	cloned.products = make([]Product, 0, len(o.products))
	for _, p := range o.products {
		cloned.AddProduct(p.Clone())
	}
	cloned.deliveryCost = o.deliveryCost
	cloned.discount = o.discount
	return cloned, nil
}
