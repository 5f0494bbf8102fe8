// Package guard provides ConstructorGuard, a marker embedded in commands,
// queries and value objects to tell a constructor-built value from a zero
// value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil error for an unconstructed value.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value was produced by its
// constructor. The zero value is "not constructed".
//
// Example:
//
//	type GetSettingQuery struct {
//	    key   string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewGetSettingQuery(key string) GetSettingQuery {
//	    return GetSettingQuery{key: key, guard: guard.NewConstructorGuard()}
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
