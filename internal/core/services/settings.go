package services

import (
	"fmt"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/ports/driven"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/ports/driving"
	"github.com/riosdeldesierto/consulta-clientes/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages persisted application settings.
// It sees only the config file; environment overrides are applied by the
// configuration loader at startup.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns persisted settings merged over defaults.
// Stored values that fail validation are ignored.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	settings := domain.DefaultAppSettings()

	for _, key := range domain.SettingKeys() {
		val, ok := s.configStore.Get(key)
		if !ok {
			continue
		}
		if err := settings.Set(key, fmt.Sprint(val)); err != nil {
			logger.Warn("Ignoring stored %s: %v", key, err)
		}
	}

	return &settings, nil
}

// Set validates and persists a single setting.
func (s *SettingsService) Set(key, value string) error {
	parsed, err := domain.ParseSetting(key, value)
	if err != nil {
		return err
	}
	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	logger.Debug("Saved %s = %v", key, parsed)
	return nil
}

// Unset removes a persisted override so the default applies again.
func (s *SettingsService) Unset(key string) error {
	if !domain.IsSettingKey(key) {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if err := s.configStore.Delete(key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return domain.SettingKeys()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns where settings are persisted.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}
