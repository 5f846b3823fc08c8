package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

type mapOverrides map[string]any

func (m mapOverrides) All() map[string]any { return m }

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range domain.SettingKeys() {
		t.Setenv(EnvPrefix+"_"+strings.ToUpper(key), "")
	}
	t.Setenv(LegacyAPIURLEnv, "")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	s, err := Load(nil)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *s)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)

	s, err := Load(mapOverrides{
		"api_url":      "http://files.test/api/",
		"api_rate":     2.0,
		"api_timeout":  "10s",
		"download_dir": "/tmp/exports",
	})

	require.NoError(t, err)
	assert.Equal(t, "http://files.test/api", s.APIURL)
	assert.InDelta(t, 2.0, s.APIRate, 0.0001)
	assert.Equal(t, 10*time.Second, s.APITimeout)
	assert.Equal(t, "/tmp/exports", s.DownloadDir)
	assert.Equal(t, "es-CO", s.Locale)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONSULTA_API_URL", "http://env.test/api")
	t.Setenv("CONSULTA_CURRENCY", "usd")

	s, err := Load(mapOverrides{"api_url": "http://files.test/api"})

	require.NoError(t, err)
	assert.Equal(t, "http://env.test/api", s.APIURL)
	assert.Equal(t, "USD", s.Currency)
}

func TestLoad_LegacyAPIURLEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(LegacyAPIURLEnv, "http://legacy.test/api")

	s, err := Load(nil)

	require.NoError(t, err)
	assert.Equal(t, "http://legacy.test/api", s.APIURL)
}

func TestLoad_InvalidValue(t *testing.T) {
	clearEnv(t)

	_, err := Load(mapOverrides{"api_timeout": "never"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
