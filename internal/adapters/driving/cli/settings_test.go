package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/regdoc/internal/core/domain"
)

func TestSettingsCmd_NotConfigured(t *testing.T) {
	_, err := execute("settings", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}

func TestSettingsCmd_ShowDefaults(t *testing.T) {
	setupTestServices(t)

	out, err := execute("settings")
	require.NoError(t, err)
	assert.Contains(t, out, "Backend:   csv")
	assert.Contains(t, out, "Directory: corpus")
	assert.Contains(t, out, "Database:  (default)")
	assert.Contains(t, out, "Enabled: (all)")
	assert.Contains(t, out, "Decorated: true")
}

func TestSettingsCmd_Set(t *testing.T) {
	env := setupTestServices(t)

	tests := []struct {
		key   string
		value string
		check func(t *testing.T)
	}{
		{
			key:   domain.KeyCorpusBackend,
			value: "sqlite",
			check: func(t *testing.T) {
				assert.Equal(t, "sqlite", env.config.GetString(domain.KeyCorpusBackend))
			},
		},
		{
			key:   domain.KeyDocumentsEnabled,
			value: "covid_location, gdpr",
			check: func(t *testing.T) {
				assert.Equal(t, []string{"covid_location", "gdpr"}, env.config.GetStringSlice(domain.KeyDocumentsEnabled))
			},
		},
		{
			key:   domain.KeyOutputDecorated,
			value: "false",
			check: func(t *testing.T) {
				assert.False(t, env.config.GetBool(domain.KeyOutputDecorated))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			out, err := execute("settings", "set", tt.key, tt.value)
			require.NoError(t, err)
			assert.Contains(t, out, tt.key+" = "+tt.value)
			tt.check(t)
		})
	}

	out, err := execute("settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Backend:   sqlite")
	assert.Contains(t, out, "Enabled: covid_location, gdpr")
	assert.Contains(t, out, "Decorated: false")
}

func TestSettingsCmd_SetInvalid(t *testing.T) {
	setupTestServices(t)

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown key", key: "search.mode", value: "hybrid"},
		{name: "unknown backend", key: domain.KeyCorpusBackend, value: "parquet"},
		{name: "not a bool", key: domain.KeyOutputDecorated, value: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute("settings", "set", tt.key, tt.value)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	_, err := execute("settings", "set", domain.KeyDocumentsEnabled, "nope")
	assert.ErrorIs(t, err, domain.ErrUnknownDocument)
}

func TestSettingsPathCmd(t *testing.T) {
	setupTestServices(t)

	out, err := execute("settings", "path")
	require.NoError(t, err)
	assert.Equal(t, ":memory:\n", out)
}
