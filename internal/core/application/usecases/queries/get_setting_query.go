// Package queries contains read-only operations over settings, reports and
// orders. Queries never change state.
package queries

import (
	"errors"

	"creational/internal/core/domain/model/settings"
	"creational/internal/pkg/errs"
	"creational/internal/pkg/guard"
)

var (
	ErrGetSettingQueryIsNotConstructed = errors.New(
		"GetSettingQuery must be created via NewGetSettingQuery constructor",
	)
	ErrSettingKeyIsRequired = errs.NewValueIsRequiredError("setting key")
)

// GetSettingQuery looks up a single setting.
type GetSettingQuery struct {
	key   string
	guard guard.ConstructorGuard
}

func NewGetSettingQuery(key string) (GetSettingQuery, error) {
	key = settings.NormalizeKey(key)
	if key == "" {
		return GetSettingQuery{}, ErrSettingKeyIsRequired
	}
	return GetSettingQuery{key: key, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSettingQuery) Validate() error {
	return q.guard.Validate(ErrGetSettingQueryIsNotConstructed)
}

func (q GetSettingQuery) Key() string {
	return q.key
}

// GetSettingQueryResponse carries the lookup result. Found is false for an
// unset key; that is not an error.
type GetSettingQueryResponse struct {
	Key   string
	Value string
	Found bool
}
