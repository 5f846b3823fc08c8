package domain

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Setting keys recognised by the configuration layer.
const (
	SettingAPIURL      = "api_url"
	SettingAPITimeout  = "api_timeout"
	SettingAPIRate     = "api_rate"
	SettingDownloadDir = "download_dir"
	SettingLocale      = "locale"
	SettingCurrency    = "currency"
	SettingTimezone    = "timezone"
	SettingLogLevel    = "log_level"
)

// Default values.
const (
	DefaultAPIURL     = "http://localhost:8000/api"
	DefaultAPITimeout = 30 * time.Second
	DefaultAPIRate    = 5.0
	DefaultLocale     = "es-CO"
	DefaultCurrency   = "COP"
	DefaultTimezone   = "America/Bogota"
	DefaultLogLevel   = "info"
)

// SettingKeys lists every recognised setting in display order.
func SettingKeys() []string {
	return []string{
		SettingAPIURL,
		SettingAPITimeout,
		SettingAPIRate,
		SettingDownloadDir,
		SettingLocale,
		SettingCurrency,
		SettingTimezone,
		SettingLogLevel,
	}
}

// IsSettingKey reports whether key is recognised.
func IsSettingKey(key string) bool {
	return slices.Contains(SettingKeys(), key)
}

// AppSettings is the effective application configuration.
type AppSettings struct {
	APIURL      string
	APITimeout  time.Duration
	APIRate     float64 // requests per second, 0 disables throttling
	DownloadDir string  // empty means the working directory
	Locale      string
	Currency    string
	Timezone    string
	LogLevel    string
}

// DefaultAppSettings returns the built-in defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		APIURL:     DefaultAPIURL,
		APITimeout: DefaultAPITimeout,
		APIRate:    DefaultAPIRate,
		Locale:     DefaultLocale,
		Currency:   DefaultCurrency,
		Timezone:   DefaultTimezone,
		LogLevel:   DefaultLogLevel,
	}
}

// Value returns the textual form of a setting.
func (s AppSettings) Value(key string) string {
	switch key {
	case SettingAPIURL:
		return s.APIURL
	case SettingAPITimeout:
		return s.APITimeout.String()
	case SettingAPIRate:
		return strconv.FormatFloat(s.APIRate, 'f', -1, 64)
	case SettingDownloadDir:
		return s.DownloadDir
	case SettingLocale:
		return s.Locale
	case SettingCurrency:
		return s.Currency
	case SettingTimezone:
		return s.Timezone
	case SettingLogLevel:
		return s.LogLevel
	default:
		return ""
	}
}

// Set parses raw and assigns it to the field named by key.
func (s *AppSettings) Set(key, raw string) error {
	value, err := ParseSetting(key, raw)
	if err != nil {
		return err
	}

	switch key {
	case SettingAPIURL:
		s.APIURL = value.(string)
	case SettingAPITimeout:
		// ParseSetting already validated the duration
		s.APITimeout, _ = time.ParseDuration(value.(string))
	case SettingAPIRate:
		s.APIRate = value.(float64)
	case SettingDownloadDir:
		s.DownloadDir = value.(string)
	case SettingLocale:
		s.Locale = value.(string)
	case SettingCurrency:
		s.Currency = value.(string)
	case SettingTimezone:
		s.Timezone = value.(string)
	case SettingLogLevel:
		s.LogLevel = value.(string)
	}
	return nil
}

// Validate checks every field.
func (s AppSettings) Validate() error {
	for _, key := range SettingKeys() {
		if _, err := ParseSetting(key, s.Value(key)); err != nil {
			return err
		}
	}
	return nil
}

// ParseSetting validates a textual value for key and returns the typed
// value to persist: float64 for api_rate, string for everything else.
func ParseSetting(key, raw string) (any, error) {
	value := strings.TrimSpace(raw)

	switch key {
	case SettingAPIURL:
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("%w: %s must be an absolute http(s) URL", ErrInvalidInput, key)
		}
		return strings.TrimRight(value, "/"), nil
	case SettingAPITimeout:
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %s must be a positive duration such as 30s", ErrInvalidInput, key)
		}
		return d.String(), nil
	case SettingAPIRate:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return nil, fmt.Errorf("%w: %s must be a non-negative number", ErrInvalidInput, key)
		}
		return f, nil
	case SettingDownloadDir:
		return value, nil
	case SettingLocale:
		if value == "" {
			return nil, fmt.Errorf("%w: %s must not be empty", ErrInvalidInput, key)
		}
		return value, nil
	case SettingCurrency:
		if len(value) != 3 {
			return nil, fmt.Errorf("%w: %s must be an ISO 4217 code", ErrInvalidInput, key)
		}
		return strings.ToUpper(value), nil
	case SettingTimezone:
		if _, err := time.LoadLocation(value); err != nil || value == "" {
			return nil, fmt.Errorf("%w: unknown %s %q", ErrInvalidInput, key, value)
		}
		return value, nil
	case SettingLogLevel:
		switch strings.ToLower(value) {
		case "debug", "info", "warn", "error":
			return strings.ToLower(value), nil
		}
		return nil, fmt.Errorf("%w: %s must be one of debug, info, warn, error", ErrInvalidInput, key)
	default:
		return nil, fmt.Errorf("%w: unknown setting %q", ErrInvalidInput, key)
	}
}
