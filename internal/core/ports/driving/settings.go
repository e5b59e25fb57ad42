package driving

import "github.com/custodia-labs/regdoc/internal/core/domain"

// SettingsService reads and writes the application configuration.
type SettingsService interface {
	// Get returns the effective settings, defaults filled in.
	Get() (domain.Settings, error)

	// Set validates and stores one setting given as text.
	Set(key, value string) error

	// Path returns where settings are stored.
	Path() string
}
