// Command chatbot is a terminal chat client for the Gemini API.
//
// Usage:
//
//	GEMINI_API_KEY=gk-... chatbot [flags]
//
// The key may also come from VITE_GEMINI_API_KEY or VITE_API_URL, either in
// the environment or in a .env file in the working directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"time"

	"github.com/fwojciec/chatbot"
	bt "github.com/fwojciec/chatbot/bubbletea"
	"github.com/fwojciec/chatbot/gemini"
	"github.com/fwojciec/chatbot/toml"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const defaultEnvFile = ".env"

var errMissingAPIKey = errors.New("missing API key: set --api-key or GEMINI_API_KEY")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chatbot: %v\n", err)
		os.Exit(1)
	}
}

// options holds raw flag values.
type options struct {
	variant      string
	model        string
	apiKey       string
	baseURL      string
	timeout      time.Duration
	fallbackText string
	errorText    string
	logFile      string
	logLevel     string
	envFile      string
	preferences  string
}

// envKeys holds the credential environment variables in priority order.
type envKeys struct {
	gemini     string
	viteGemini string
	viteURL    string
}

// config is the validated configuration the program runs with.
type config struct {
	variant  chatbot.Variant
	model    string
	apiKey   string
	baseURL  string
	timeout  time.Duration
	logLevel zerolog.Level
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "chatbot",
		Short:         "Chat with Gemini in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.variant, "variant", "classic", "interface variant: classic, modern")
	f.StringVar(&opts.model, "model", "", "Gemini model ID (default gemini-2.0-flash)")
	f.StringVar(&opts.apiKey, "api-key", "", "API key (overrides GEMINI_API_KEY)")
	f.StringVar(&opts.baseURL, "base-url", "", "API base URL")
	f.DurationVar(&opts.timeout, "timeout", 60*time.Second, "per-request timeout, 0 disables")
	f.StringVar(&opts.fallbackText, "fallback-text", "", "reply shown when the model returns no text")
	f.StringVar(&opts.errorText, "error-text", "", "reply shown when the request fails")
	f.StringVar(&opts.logFile, "log-file", "", "write logs to this file (disabled when empty)")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	f.StringVar(&opts.envFile, "env-file", defaultEnvFile, "dotenv file to load before reading the environment")
	f.StringVar(&opts.preferences, "preferences", "", "preferences file (default under the user config dir)")
	_ = f.MarkHidden("base-url")
	return cmd
}

func run(ctx context.Context, opts options) error {
	if err := loadEnvFile(opts.envFile); err != nil {
		return err
	}

	// Env vars are read here and passed as values.
	cfg, err := resolveConfig(opts, envKeys{
		gemini:     os.Getenv("GEMINI_API_KEY"),
		viteGemini: os.Getenv("VITE_GEMINI_API_KEY"),
		viteURL:    os.Getenv("VITE_API_URL"),
	})
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(opts.logFile, cfg.logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	gen, err := gemini.New(ctx, cfg.apiKey,
		gemini.WithModel(cfg.model),
		gemini.WithBaseURL(cfg.baseURL),
		gemini.WithTimeout(cfg.timeout),
	)
	if err != nil {
		return err
	}
	ctrl := chatbot.NewController(gen, append(cfg.variant.ControllerOptions(), chatbot.WithLogger(logger))...)

	store := preferenceStore(opts.preferences, logger)
	dark, err := chatbot.InitialDark(cfg.variant, store)
	if err != nil {
		logger.Warn().Err(err).Msg("load preferences failed, using variant default")
	}

	logger.Info().
		Str("variant", cfg.variant.Name).
		Str("model", gen.Model()).
		Dur("timeout", cfg.timeout).
		Bool("dark", dark).
		Msg("starting")

	m := bt.New(ctrl, bt.Config{
		Variant:     cfg.variant,
		Dark:        dark,
		Preferences: store,
		Logger:      logger,
	})
	if err := bt.Run(ctx, m); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	logger.Info().Int("turns", len(ctrl.Transcript())).Msg("exiting")
	return nil
}

// resolveConfig validates flags and picks the API key. It never reads the
// environment itself.
func resolveConfig(opts options, env envKeys) (config, error) {
	variant, err := chatbot.LookupVariant(opts.variant)
	if err != nil {
		return config{}, err
	}
	if opts.fallbackText != "" {
		variant.FallbackText = opts.fallbackText
	}
	if opts.errorText != "" {
		variant.ErrorText = opts.errorText
	}

	key := firstNonEmpty(opts.apiKey, env.gemini, env.viteGemini, env.viteURL)
	if key == "" {
		return config{}, errMissingAPIKey
	}

	if opts.timeout < 0 {
		return config{}, fmt.Errorf("invalid timeout %s: must not be negative", opts.timeout)
	}

	level, err := zerolog.ParseLevel(opts.logLevel)
	if err != nil {
		return config{}, fmt.Errorf("invalid log level: %w", err)
	}

	return config{
		variant:  variant,
		model:    opts.model,
		apiKey:   key,
		baseURL:  opts.baseURL,
		timeout:  opts.timeout,
		logLevel: level,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// loadEnvFile loads path into the environment without overriding variables
// that are already set. A missing default file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist) && path == defaultEnvFile:
		return nil
	default:
		return fmt.Errorf("load env file: %w", err)
	}
}

// newLogger returns a file logger tagged with a fresh session id, or a
// disabled logger when path is empty. The TUI owns the terminal, so logs
// never go to stdout or stderr.
func newLogger(path string, level zerolog.Level) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("open log file: %w", err)
	}
	return buildLogger(f, level), func() { _ = f.Close() }, nil
}

func buildLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()
}

// preferenceStore returns the TOML store at path, or at the default path
// when path is empty. It returns nil when no location is available.
func preferenceStore(path string, logger zerolog.Logger) chatbot.PreferenceStore {
	if path == "" {
		p, err := toml.DefaultPath()
		if err != nil {
			logger.Warn().Err(err).Msg("no preferences location, theme will not persist")
			return nil
		}
		path = p
	}
	store := toml.NewStore(path)
	logger.Debug().Str("path", store.Path()).Msg("preferences store")
	return store
}
