package queries

import (
	"context"

	"creational/internal/core/ports"
)

// GetAllOrdersQueryHandler reads the order list from the repository.
type GetAllOrdersQueryHandler struct {
	repo ports.OrderRepository
}

func NewGetAllOrdersQueryHandler(repo ports.OrderRepository) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{repo: repo}
}

func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]GetOrderQueryResponse, len(orders))
	for i, o := range orders {
		out[i] = newOrderResponse(o)
	}
	return out, nil
}
