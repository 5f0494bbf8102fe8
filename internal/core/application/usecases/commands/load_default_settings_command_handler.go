package commands

import (
	"context"
)

// LoadDefaultSettingsCommandHandler writes the defaults into the shared store.
type LoadDefaultSettingsCommandHandler struct {
	provider SettingsProvider
}

func NewLoadDefaultSettingsCommandHandler(provider SettingsProvider) LoadDefaultSettingsCommandHandler {
	return LoadDefaultSettingsCommandHandler{provider: provider}
}

func (h LoadDefaultSettingsCommandHandler) Handle(_ context.Context, cmd LoadDefaultSettingsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.provider.Store().LoadDefaults()
	return nil
}
