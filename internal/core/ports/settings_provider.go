package ports

import "creational/internal/core/domain/model/settings"

// SettingsProvider hands out the process-wide settings store.
type SettingsProvider interface {
	Store() *settings.Store
}
