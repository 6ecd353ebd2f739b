package main

import (
	"fmt"
	"os"
	"time"

	"github.com/travelvibe/vibeboard/guide"
)

// generateFlags are the provider flags shared by every command that talks to
// the model. Empty flag values fall back to the config file, then to the
// package defaults.
type generateFlags struct {
	model   string
	baseURL string
	timeout time.Duration
}

// pick returns the first non-empty string.
func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// buildCurator loads the project config, resolves the credential, and wires
// up the curator. A guide.ErrMissingAPIKey from here means no network call
// was or will be attempted.
func buildCurator(flags generateFlags) (*guide.Curator, error) {
	cfg, err := guide.LoadConfig(".")
	if err != nil {
		return nil, err
	}

	apiKey, err := guide.ResolveAPIKey(cfg.Generate.APIKeyEnv)
	if err != nil {
		return nil, err
	}

	timeout := flags.timeout
	if timeout == 0 && cfg.Generate.Timeout != "" {
		timeout, err = time.ParseDuration(cfg.Generate.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid generate.timeout in config: %w", err)
		}
	}

	provider := guide.NewOpenAIProvider(
		guide.WithModel(pick(flags.model, cfg.Generate.Model)),
		guide.WithBaseURL(pick(flags.baseURL, cfg.Generate.BaseURL)),
		guide.WithAPIKey(apiKey),
		guide.WithTimeout(timeout),
	)
	return guide.NewCurator(provider), nil
}

// printSetupInstructions tells the user how to configure the credential. Used
// on the configuration-error path, before any network attempt.
func printSetupInstructions(envVar string) {
	if envVar == "" {
		envVar = guide.DefaultAPIKeyEnv
	}
	fmt.Printf("🛑 Please set your %s environment variable.\n", envVar)
	fmt.Println("You can get a free API key from Google AI Studio: https://aistudio.google.com/app/apikey")
}

// apiKeyEnvName reads the configured credential env var name, swallowing
// config errors since callers only need it for a help message.
func apiKeyEnvName() string {
	cfg, err := guide.LoadConfig(".")
	if err != nil || cfg.Generate.APIKeyEnv == "" {
		return guide.DefaultAPIKeyEnv
	}
	return cfg.Generate.APIKeyEnv
}

// readDestinationsFile parses a destinations file: one destination per line,
// blank lines and #-comments skipped.
func readDestinationsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseDestinations(string(data)), nil
}
