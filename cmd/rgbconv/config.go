package main

import (
	"os"
)

// cliConfig holds settings shared by every subcommand
type cliConfig struct {
	ColorMode string
	LogLevel  string
}

// defaultCLIConfig returns the built-in defaults
func defaultCLIConfig() cliConfig {
	return cliConfig{
		ColorMode: "auto",
		LogLevel:  "warn",
	}
}

// loadCLIConfig overlays environment variables on the defaults; flags override both
func loadCLIConfig() cliConfig {
	cfg := defaultCLIConfig()
	if v := os.Getenv("RGBCONV_COLOR_MODE"); v != "" {
		cfg.ColorMode = v
	}
	if v := os.Getenv("RGBCONV_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}
