// Package commands contains the operations that change state: settings
// writes and order creation/cloning.
// Every command follows the same shape: a guarded command value built by its
// constructor, and a handler that validates it and talks to the ports.
package commands

import (
	"creational/internal/core/ports"
)

// Handler dependencies. Declared here so tests can substitute them.
type (
	// OrderRepository is the order store used by order commands.
	OrderRepository = ports.OrderRepository

	// SettingsProvider hands out the shared settings store.
	SettingsProvider = ports.SettingsProvider
)
