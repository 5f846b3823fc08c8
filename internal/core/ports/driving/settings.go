package driving

import "github.com/riosdeldesierto/consulta-clientes/internal/core/domain"

// SettingsService manages persisted application settings.
type SettingsService interface {
	// Get returns the persisted settings merged over defaults.
	Get() (*domain.AppSettings, error)

	// Set validates and persists a single setting.
	Set(key, value string) error

	// Unset removes a persisted override.
	Unset(key string) error

	// Keys returns the recognised setting keys.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Path returns where settings are persisted.
	Path() string
}
