package commands

import (
	"errors"

	"creational/internal/core/domain/model/kernel"
	"creational/internal/core/domain/model/order"
	"creational/internal/pkg/guard"
)

var ErrCloneOrderCommandIsNotConstructed = errors.New(
	"CloneOrderCommand must be created via NewCloneOrderCommand constructor",
)

// CloneOrderCommand asks for a deep copy of a stored order, optionally with
// a different discount. The copy is stored under a new ID.
//
// Example:
//
//	discount := 3.0
//	cmd, err := NewCloneOrderCommand(sourceID, &discount)
//	if err != nil {
//	    return err
//	}
//	cloneID, err := handler.Handle(ctx, cmd)
type CloneOrderCommand struct {
	sourceID kernel.UUID
	discount *float64

	guard guard.ConstructorGuard
}

// NewCloneOrderCommand validates the source ID and, when given, the
// discount override. A nil discount keeps the source's discount.
func NewCloneOrderCommand(sourceID kernel.UUID, discount *float64) (CloneOrderCommand, error) {
	if err := sourceID.Validate(); err != nil {
		return CloneOrderCommand{}, err
	}

	cmd := CloneOrderCommand{
		sourceID: sourceID,
		guard:    guard.NewConstructorGuard(),
	}
	if discount != nil {
		if err := order.ValidateAmount("discount", *discount); err != nil {
			return CloneOrderCommand{}, err
		}
		d := *discount
		cmd.discount = &d
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CloneOrderCommand) Validate() error {
	return c.guard.Validate(ErrCloneOrderCommandIsNotConstructed)
}

func (c CloneOrderCommand) SourceID() kernel.UUID {
	return c.sourceID
}

// Discount returns the override and whether one was requested.
func (c CloneOrderCommand) Discount() (float64, bool) {
	if c.discount == nil {
		return 0, false
	}
	return *c.discount, true
}
