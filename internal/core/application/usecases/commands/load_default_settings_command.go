package commands

import (
	"errors"

	"creational/internal/pkg/guard"
)

var ErrLoadDefaultSettingsCommandIsNotConstructed = errors.New(
	"LoadDefaultSettingsCommand must be created via NewLoadDefaultSettingsCommand constructor",
)

// LoadDefaultSettingsCommand resets the default settings (theme, language).
// Other keys are left alone.
type LoadDefaultSettingsCommand struct {
	guard guard.ConstructorGuard
}

func NewLoadDefaultSettingsCommand() LoadDefaultSettingsCommand {
	return LoadDefaultSettingsCommand{guard: guard.NewConstructorGuard()}
}

func (c LoadDefaultSettingsCommand) Validate() error {
	return c.guard.Validate(ErrLoadDefaultSettingsCommandIsNotConstructed)
}
