package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

func TestSettingsCmd_ShowsDefaults(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
	for _, key := range domain.SettingKeys() {
		assert.Contains(t, out, key)
	}
	assert.Contains(t, out, domain.DefaultAPIURL+" (default)")
	assert.Contains(t, out, "(not set) (default)")
}

func TestSettingsCmd_SetThenShow(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "settings", "set", "currency", "usd")
	require.NoError(t, err)
	assert.Contains(t, out, "Set currency")

	out, err = execute(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "USD")
	assert.NotContains(t, out, "USD (default)")
}

func TestSettingsCmd_SetRejectsInvalidValue(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "settings", "set", "api_rate", "-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsCmd_SetRejectsUnknownKey(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "settings", "set", "theme", "dark")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown setting "theme"`)
}

func TestSettingsCmd_UnsetRestoresDefault(t *testing.T) {
	ts := setupTestServices(t)
	require.NoError(t, ts.settings.Set(domain.SettingAPIRate, "2"))

	out, err := execute(t, "settings", "unset", "api_rate")
	require.NoError(t, err)
	assert.Contains(t, out, "Unset api_rate")

	s, err := ts.settings.Get()
	require.NoError(t, err)
	assert.InDelta(t, domain.DefaultAPIRate, s.APIRate, 0.0001)
}

func TestSettingsCmd_UnsetUnknownKey(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "settings", "unset", "theme")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsCmd_RequiresService(t *testing.T) {
	setupTestServices(t)
	settingsService = nil

	_, err := execute(t, "settings", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}
