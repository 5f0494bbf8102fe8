package queries

import (
	"context"
	"errors"

	"creational/internal/core/ports"
	"creational/internal/pkg/guard"
)

var ErrGetAllSettingsQueryIsNotConstructed = errors.New(
	"GetAllSettingsQuery must be created via NewGetAllSettingsQuery constructor",
)

// GetAllSettingsQuery returns every setting.
type GetAllSettingsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllSettingsQuery() GetAllSettingsQuery {
	return GetAllSettingsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllSettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllSettingsQueryIsNotConstructed)
}

// GetAllSettingsQueryHandler returns a snapshot of the shared store.
type GetAllSettingsQueryHandler struct {
	provider ports.SettingsProvider
}

func NewGetAllSettingsQueryHandler(provider ports.SettingsProvider) GetAllSettingsQueryHandler {
	return GetAllSettingsQueryHandler{provider: provider}
}

func (h GetAllSettingsQueryHandler) Handle(_ context.Context, query GetAllSettingsQuery) (map[string]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.provider.Store().All(), nil
}
