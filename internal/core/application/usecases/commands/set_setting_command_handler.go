package commands

import (
	"context"
)

// SetSettingCommandHandler writes settings into the shared store.
type SetSettingCommandHandler struct {
	provider SettingsProvider
}

func NewSetSettingCommandHandler(provider SettingsProvider) SetSettingCommandHandler {
	return SetSettingCommandHandler{provider: provider}
}

// Handle stores the command's key/value pair.
func (h SetSettingCommandHandler) Handle(_ context.Context, cmd SetSettingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.provider.Store().Set(cmd.Key(), cmd.Value())
	return nil
}
