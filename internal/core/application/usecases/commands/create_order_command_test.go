package commands_test

import (
	"errors"
	"math"
	"testing"

	"creational/internal/core/application/usecases/commands"
	"creational/internal/core/domain/model/kernel"
	"creational/internal/core/domain/model/order"
	"creational/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func products(t *testing.T) []order.Product {
	t.Helper()
	p1, err := order.NewProduct("Product 1", 10.0)
	require.NoError(t, err)
	p2, err := order.NewProduct("Product 2", 15.0)
	require.NoError(t, err)
	return []order.Product{p1, p2}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	items := products(t)

	cmd, err := commands.NewCreateOrderCommand(id, items, 5.0, 2.0)

	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, items, cmd.Products())
	assert.InDelta(t, 5.0, cmd.DeliveryCost(), 0)
	assert.InDelta(t, 2.0, cmd.Discount(), 0)
}

func TestNewCreateOrderCommand_CopiesProducts(t *testing.T) {
	items := products(t)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), items, 0, 0)
	require.NoError(t, err)
	items[0] = items[1]

	assert.Equal(t, "Product 1", cmd.Products()[0].Name())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, nil, 0, 0)

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidAmounts(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), nil, -1, math.NaN())

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Contains(t, err.Error(), "delivery cost")
	assert.Contains(t, err.Error(), "discount")
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(id, products(t), 5.0, 2.0)

	repo := new(MockOrderRepository)
	repo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.ID().IsEqual(id) &&
			len(o.Products()) == 2 &&
			o.DeliveryCost() == 5.0 &&
			o.Discount() == 2.0
	})).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(repo)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	repo := new(MockOrderRepository)
	h := commands.NewCreateOrderCommandHandler(repo)

	err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), products(t), 0, 0)

	repo := new(MockOrderRepository)
	repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once()

	h := commands.NewCreateOrderCommandHandler(repo)
	err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "add error")
	repo.AssertExpectations(t)
}
