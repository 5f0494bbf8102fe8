package commands

import (
	"context"

	"creational/internal/core/domain/model/kernel"
)

// CloneOrderCommandHandler copies a stored order and stores the copy.
type CloneOrderCommandHandler struct {
	repo OrderRepository
}

// NewCloneOrderCommandHandler creates a handler backed by repo.
func NewCloneOrderCommandHandler(repo OrderRepository) CloneOrderCommandHandler {
	return CloneOrderCommandHandler{repo: repo}
}

// Handle loads the source, deep-copies it, applies the discount override and
// adds the clone. It returns the clone's ID. A copy failure is returned
// as-is (an *errs.CopyFailedError) and must not be retried.
func (h CloneOrderCommandHandler) Handle(ctx context.Context, cmd CloneOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	source, err := h.repo.Get(ctx, cmd.SourceID())
	if err != nil {
		return kernel.UUID{}, err
	}

	cloned, err := source.Clone()
	if err != nil {
		return kernel.UUID{}, err
	}

	if discount, ok := cmd.Discount(); ok {
		if err = cloned.SetDiscount(discount); err != nil {
			return kernel.UUID{}, err
		}
	}

	if err = h.repo.Add(ctx, cloned); err != nil {
		return kernel.UUID{}, err
	}
	return cloned.ID(), nil
}
