package driven

import "context"

// ConfigStore provides access to persisted configuration overrides.
// Implementations handle persistence (e.g., TOML files) and type conversion.
// Values set here override built-in defaults; environment variables override both.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetFloat retrieves a numeric configuration value.
	// Integers are widened. Returns 0 if key doesn't exist or isn't numeric.
	GetFloat(key string) float64

	// All returns a copy of every stored key and value.
	All() map[string]any

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(key string) error

	// Load reads configuration from storage.
	Load() error

	// Watch reloads the configuration whenever storage changes and calls
	// onChange afterwards. It blocks until ctx is cancelled.
	Watch(ctx context.Context, onChange func()) error

	// Path returns the configuration file path.
	Path() string
}
