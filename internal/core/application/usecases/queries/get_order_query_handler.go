package queries

import (
	"context"

	"creational/internal/core/domain/model/order"
	"creational/internal/core/ports"
)

// GetOrderQueryHandler reads orders from the repository.
type GetOrderQueryHandler struct {
	repo ports.OrderRepository
}

func NewGetOrderQueryHandler(repo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{repo: repo}
}

// Handle returns the order's read model, or the repository's
// errs.ObjectNotFoundError for an unknown ID.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.repo.Get(ctx, query.ID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return newOrderResponse(o), nil
}

func newOrderResponse(o *order.Order) GetOrderQueryResponse {
	items := o.Products()
	views := make([]ProductView, len(items))
	for i, p := range items {
		views[i] = ProductView{Name: p.Name(), Price: p.Price()}
	}

	return GetOrderQueryResponse{
		ID:           o.ID(),
		Products:     views,
		DeliveryCost: o.DeliveryCost(),
		Discount:     o.Discount(),
		Total:        o.Total(),
		Text:         o.String(),
	}
}
