package services

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/custodia-labs/regdoc/internal/core/domain"
	"github.com/custodia-labs/regdoc/internal/core/ports/driven"
	"github.com/custodia-labs/regdoc/internal/core/ports/driving"
	"github.com/custodia-labs/regdoc/internal/documents"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService maps configuration keys to domain.Settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the effective settings. Unset keys take their defaults.
// An unknown backend or document id in the file is an error.
func (s *SettingsService) Get() (domain.Settings, error) {
	settings := domain.DefaultSettings()
	if s.configStore == nil {
		return settings, nil
	}

	if v := s.configStore.GetString(domain.KeyCorpusBackend); v != "" {
		backend := domain.Backend(v)
		if !backend.IsValid() {
			return settings, fmt.Errorf("%s: unknown backend %q: %w", domain.KeyCorpusBackend, v, domain.ErrInvalidInput)
		}
		settings.Backend = backend
	}
	if v := s.configStore.GetString(domain.KeyCorpusDir); v != "" {
		settings.CorpusDir = v
	}
	settings.DatabaseDir = s.configStore.GetString(domain.KeyDatabaseDir)

	if ids := s.configStore.GetStringSlice(domain.KeyDocumentsEnabled); len(ids) > 0 {
		if _, err := documents.Select(ids); err != nil {
			return settings, fmt.Errorf("%s: %w", domain.KeyDocumentsEnabled, err)
		}
		settings.Documents = ids
	}
	if _, ok := s.configStore.Get(domain.KeyOutputDecorated); ok {
		settings.Decorated = s.configStore.GetBool(domain.KeyOutputDecorated)
	}

	return settings, nil
}

// Set parses value for the key and stores it.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}

	switch key {
	case domain.KeyCorpusBackend:
		if !domain.Backend(value).IsValid() {
			return fmt.Errorf("unknown backend %q: %w", value, domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, value)

	case domain.KeyCorpusDir, domain.KeyDatabaseDir:
		return s.configStore.Set(key, value)

	case domain.KeyDocumentsEnabled:
		ids := splitList(value)
		if _, err := documents.Select(ids); err != nil {
			return err
		}
		return s.configStore.Set(key, ids)

	case domain.KeyOutputDecorated:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false: %w", key, domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, b)

	default:
		return fmt.Errorf("unknown setting %q (known: %s): %w",
			key, strings.Join(domain.SettingKeys, ", "), domain.ErrInvalidInput)
	}
}

// Path returns where settings are stored.
func (s *SettingsService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

// Entries returns the catalogue entries enabled by the settings.
func Entries(settings domain.Settings) ([]documents.Entry, error) {
	return documents.Select(settings.Documents)
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" && !slices.Contains(out, part) {
			out = append(out, part)
		}
	}
	return out
}
