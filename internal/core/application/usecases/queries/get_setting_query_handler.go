package queries

import (
	"context"

	"creational/internal/core/ports"
)

// GetSettingQueryHandler reads from the shared settings store.
type GetSettingQueryHandler struct {
	provider ports.SettingsProvider
}

func NewGetSettingQueryHandler(provider ports.SettingsProvider) GetSettingQueryHandler {
	return GetSettingQueryHandler{provider: provider}
}

func (h GetSettingQueryHandler) Handle(_ context.Context, query GetSettingQuery) (GetSettingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSettingQueryResponse{}, err
	}

	value, found := h.provider.Store().Get(query.Key())
	return GetSettingQueryResponse{Key: query.Key(), Value: value, Found: found}, nil
}
