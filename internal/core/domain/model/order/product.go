package order

import (
	"errors"

	"creational/internal/pkg/errs"
)

// Product is a line item of an Order. It has no nested owned state, so a
// plain value copy is a complete copy.
type Product struct {
	name  string
	price float64
}

// NewProduct validates and creates a Product.
//
// Example:
//
//	p, err := order.NewProduct("Product 1", 10.0)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(p) // Product 1: $10.0
func NewProduct(name string, price float64) (Product, error) {
	p := Product{}
	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return Product{}, err
	}
	return p, nil
}

// Name returns the product name.
func (p Product) Name() string {
	return p.name
}

// Price returns the unit price.
func (p Product) Price() float64 {
	return p.price
}

// Clone returns an independent copy of the product.
func (p Product) Clone() Product {
	return Product{name: p.name, price: p.price}
}

// String renders the product as "name: $price".
func (p Product) String() string {
	return p.name + ": $" + formatAmount(p.price)
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if err := ValidateAmount("product price", price); err != nil {
		return err
	}
	p.price = price
	return nil
}
