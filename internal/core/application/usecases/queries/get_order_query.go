package queries

import (
	"errors"

	"creational/internal/core/domain/model/kernel"
	"creational/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order by ID.
type GetOrderQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetOrderQuery(id kernel.UUID) (GetOrderQuery, error) {
	if err := id.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) ID() kernel.UUID {
	return q.id
}

// ProductView is a read model of one line item.
type ProductView struct {
	Name  string
	Price float64
}

// GetOrderQueryResponse is a read model of an order.
type GetOrderQueryResponse struct {
	ID           kernel.UUID
	Products     []ProductView
	DeliveryCost float64
	Discount     float64
	Total        float64
	Text         string
}
