// Package config resolves the effective application settings.
//
// Precedence, highest first: environment variables (CONSULTA_<KEY>, and
// REACT_APP_API_URL for the base URL), the persisted TOML overrides, and
// the built-in defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

// EnvPrefix is the prefix of every environment variable read.
const EnvPrefix = "CONSULTA"

// LegacyAPIURLEnv is honoured for the base URL when CONSULTA_API_URL is unset.
const LegacyAPIURLEnv = "REACT_APP_API_URL"

// Overrides supplies persisted configuration values.
type Overrides interface {
	All() map[string]any
}

// Load merges defaults, overrides and environment into AppSettings.
// overrides may be nil.
func Load(overrides Overrides) (*domain.AppSettings, error) {
	v := viper.New()
	setDefaults(v)

	if overrides != nil {
		if err := v.MergeConfigMap(overrides.All()); err != nil {
			return nil, fmt.Errorf("merge config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(domain.SettingAPIURL, EnvPrefix+"_API_URL", LegacyAPIURLEnv); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	s := &domain.AppSettings{}
	for _, key := range domain.SettingKeys() {
		if err := s.Set(key, v.GetString(key)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func setDefaults(v *viper.Viper) {
	d := domain.DefaultAppSettings()
	for _, key := range domain.SettingKeys() {
		v.SetDefault(key, d.Value(key))
	}
}
