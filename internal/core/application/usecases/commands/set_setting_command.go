package commands

import (
	"errors"

	"creational/internal/core/domain/model/settings"
	"creational/internal/pkg/errs"
	"creational/internal/pkg/guard"
)

var (
	ErrSetSettingCommandIsNotConstructed = errors.New(
		"SetSettingCommand must be created via NewSetSettingCommand constructor",
	)
	ErrSettingKeyIsRequired = errs.NewValueIsRequiredError("setting key")
)

// SetSettingCommand inserts or overwrites one setting.
//
// Example:
//
//	cmd, err := NewSetSettingCommand("theme", "light")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type SetSettingCommand struct {
	key   string
	value string

	guard guard.ConstructorGuard
}

// NewSetSettingCommand normalizes the key and rejects it when blank. Empty
// values are allowed.
func NewSetSettingCommand(key, value string) (SetSettingCommand, error) {
	key = settings.NormalizeKey(key)
	if key == "" {
		return SetSettingCommand{}, ErrSettingKeyIsRequired
	}

	return SetSettingCommand{
		key:   key,
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetSettingCommand) Validate() error {
	return c.guard.Validate(ErrSetSettingCommandIsNotConstructed)
}

func (c SetSettingCommand) Key() string {
	return c.key
}

func (c SetSettingCommand) Value() string {
	return c.value
}
