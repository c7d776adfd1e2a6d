package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openmined/skeleton-api/internal/server"
	"github.com/openmined/skeleton-api/internal/server/middlewares"
)

const (
	defaultEnvFile  = ".env"
	defaultLogLevel = "info"
)

type appConfig struct {
	Server   *server.Config
	LogLevel string
}

// viper key -> environment variable. The names are unprefixed on purpose,
// PORT and CORS_ORIGIN are what hosting platforms set.
var envBindings = map[string]string{
	"host":            "HOST",
	"port":            "PORT",
	"cors_origin":     "CORS_ORIGIN",
	"static_dir":      "STATIC_DIR",
	"example_count":   "EXAMPLE_COUNT",
	"rate_limit":      "RATE_LIMIT",
	"body_limit":      "BODY_LIMIT",
	"disabled_stages": "DISABLED_STAGES",
	"cert_file":       "TLS_CERT_FILE",
	"key_file":        "TLS_KEY_FILE",
	"log_level":       "LOG_LEVEL",
}

var flagBindings = map[string]string{
	"host":        "host",
	"port":        "port",
	"cors_origin": "cors-origin",
	"static_dir":  "static-dir",
	"log_level":   "log-level",
}

// loadConfig resolves settings with precedence flag > env > .env > config file > default.
func loadConfig(cmd *cobra.Command) (*appConfig, error) {
	v := viper.New()

	// godotenv never overrides variables that are already set
	envFile, _ := cmd.Flags().GetString("env-file")
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("env file read '%s': %w", envFile, err)
		}
	}

	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config read '%s': %w", configFile, err)
		}
	}

	defaults := server.DefaultConfig()
	v.SetDefault("port", defaults.HTTP.Port)
	v.SetDefault("cors_origin", defaults.CORSOrigin)
	v.SetDefault("static_dir", defaults.StaticDir)
	v.SetDefault("example_count", defaults.ExampleCount)
	v.SetDefault("body_limit", middlewares.DefaultBodyLimit)
	v.SetDefault("log_level", defaultLogLevel)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}
	for key, flag := range flagBindings {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	cfg := &server.Config{
		HTTP: server.HTTPConfig{
			Host:     v.GetString("host"),
			Port:     v.GetInt("port"),
			CertFile: v.GetString("cert_file"),
			KeyFile:  v.GetString("key_file"),
		},
		CORSOrigin:     v.GetString("cors_origin"),
		StaticDir:      v.GetString("static_dir"),
		ExampleCount:   v.GetInt("example_count"),
		RateLimit:      v.GetString("rate_limit"),
		BodyLimit:      v.GetInt64("body_limit"),
		DisabledStages: splitList(v.Get("disabled_stages")),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &appConfig{
		Server:   cfg,
		LogLevel: v.GetString("log_level"),
	}, nil
}

// splitList accepts "a,b" from the environment or a list from a config file.
func splitList(value any) []string {
	var parts []string
	switch val := value.(type) {
	case string:
		parts = strings.Split(val, ",")
	case []string:
		parts = val
	case []any:
		for _, p := range val {
			parts = append(parts, fmt.Sprint(p))
		}
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
