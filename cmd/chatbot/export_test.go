package main

import (
	"io"
	"time"

	"github.com/fwojciec/chatbot"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// ErrMissingAPIKey exports errMissingAPIKey for testing.
var ErrMissingAPIKey = errMissingAPIKey

// Options mirrors the flag values resolveConfig reads.
type Options struct {
	Variant      string
	Model        string
	APIKey       string
	Timeout      time.Duration
	FallbackText string
	ErrorText    string
	LogLevel     string
}

// Resolved mirrors the validated configuration.
type Resolved struct {
	Variant  chatbot.Variant
	Model    string
	APIKey   string
	Timeout  time.Duration
	LogLevel zerolog.Level
}

// ResolveConfigForTest exposes resolveConfig for external tests.
func ResolveConfigForTest(o Options, geminiKey, viteGeminiKey, viteURLKey string) (Resolved, error) {
	cfg, err := resolveConfig(options{
		variant:      o.Variant,
		model:        o.Model,
		apiKey:       o.APIKey,
		timeout:      o.Timeout,
		fallbackText: o.FallbackText,
		errorText:    o.ErrorText,
		logLevel:     o.LogLevel,
	}, envKeys{gemini: geminiKey, viteGemini: viteGeminiKey, viteURL: viteURLKey})
	if err != nil {
		return Resolved{}, err
	}
	return Resolved{
		Variant:  cfg.variant,
		Model:    cfg.model,
		APIKey:   cfg.apiKey,
		Timeout:  cfg.timeout,
		LogLevel: cfg.logLevel,
	}, nil
}

// LoadEnvFile exports loadEnvFile for testing.
func LoadEnvFile(path string) error {
	return loadEnvFile(path)
}

// BuildLogger exports buildLogger for testing.
func BuildLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return buildLogger(w, level)
}

// NewRootCmd exports newRootCmd for testing.
func NewRootCmd() *cobra.Command {
	return newRootCmd()
}

// PreferenceStore exports preferenceStore for testing.
func PreferenceStore(path string, logger zerolog.Logger) chatbot.PreferenceStore {
	return preferenceStore(path, logger)
}
