package guide

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the per-project configuration file looked up from the
// working directory.
const ConfigFileName = ".vibeboard.yaml"

// DefaultAPIKeyEnv is the environment variable holding the credential unless
// the config names another one.
const DefaultAPIKeyEnv = "GEMINI_API_KEY"

// PlaceholderAPIKey is the sample value shipped in setup instructions. It is
// treated the same as an absent credential so a copy-pasted template never
// reaches the network.
const PlaceholderAPIKey = "your_gemini_api_key_here"

// ErrMissingAPIKey signals an absent or placeholder credential. Callers must
// print setup guidance and skip the remote call entirely.
var ErrMissingAPIKey = errors.New("API key is not configured")

// Config holds project-level configuration loaded from .vibeboard.yaml.
type Config struct {
	Generate GenerateSettings `yaml:"generate"`
	Serve    ServeSettings    `yaml:"serve"`
	Batch    BatchSettings    `yaml:"batch"`
	Watch    WatchSettings    `yaml:"watch"`
}

// GenerateSettings controls how boards are generated.
type GenerateSettings struct {
	APIKeyEnv string `yaml:"api_key_env"` // env var to read the API key from (default: GEMINI_API_KEY)
	Model     string `yaml:"model"`       // model name (default: gemini-1.5-flash)
	BaseURL   string `yaml:"base_url"`    // OpenAI-compatible API base URL
	Timeout   string `yaml:"timeout"`     // per-request timeout (e.g., "2m", "30s"); empty keeps the transport default
}

// ServeSettings controls the HTTP API server.
type ServeSettings struct {
	Addr string `yaml:"addr"` // listen address (default: :8080)
}

// BatchSettings controls defaults for the batch command.
type BatchSettings struct {
	Concurrency int    `yaml:"concurrency"` // simultaneous generations (default: 1, i.e. sequential)
	OutputDir   string `yaml:"output_dir"`  // directory for generated board files
}

// WatchSettings controls defaults for the watch command.
type WatchSettings struct {
	Debounce string `yaml:"debounce"` // debounce interval for file changes (e.g., "500ms")
}

// LoadConfig reads .vibeboard.yaml from root and returns the parsed config.
// If the file does not exist, a zero-value Config is returned with no error.
func LoadConfig(root string) (*Config, error) {
	path := filepath.Join(root, ConfigFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// ResolveAPIKey reads the credential from the environment variable named by
// envVar (DefaultAPIKeyEnv when empty). An unset, blank, or placeholder value
// yields ErrMissingAPIKey.
func ResolveAPIKey(envVar string) (string, error) {
	if envVar == "" {
		envVar = DefaultAPIKeyEnv
	}
	key := strings.TrimSpace(os.Getenv(envVar))
	if key == "" || key == PlaceholderAPIKey {
		return "", fmt.Errorf("%w: set %s to your API key", ErrMissingAPIKey, envVar)
	}
	return key, nil
}
