// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the
// codebook-vault application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// logger role label.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Generator holds defaults for the password generator.
	Generator Generator `envPrefix:"GENERATOR_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown on the TUI welcome screen.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogRole is the "role" field attached to every log entry.
	// Env: APP_LOG_ROLE
	LogRole string `env:"LOG_ROLE"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite database file.
type DB struct {
	// Path is the filesystem path of the database file
	// (e.g. "vault.db"). Created on first start if missing.
	// Env: STORAGE_DB_PATH
	Path string `env:"PATH"`
}

// Generator holds defaults for generated passwords.
type Generator struct {
	// Length is the default generated password length.
	// Env: GENERATOR_LENGTH
	Length int `env:"LENGTH"`

	// Extended selects the 94-character alphanumeric-plus-symbol set by
	// default instead of the 62-character alphanumeric one.
	// Env: GENERATOR_EXTENDED
	Extended bool `env:"EXTENDED"`
}

// Defaults applied after merging when the corresponding fields are unset.
const (
	defaultDBPath          = "vault.db"
	defaultGeneratorLength = 12
	defaultLogRole         = "vault"
)

// GetConfig assembles the application configuration from environment
// variables, command-line flags and an optional JSON file, applies defaults
// and validates the result.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// applyDefaults fills unset fields with their default values.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.Path == "" {
		cfg.Storage.DB.Path = defaultDBPath
	}
	if cfg.Generator.Length == 0 {
		cfg.Generator.Length = defaultGeneratorLength
	}
	if cfg.App.LogRole == "" {
		cfg.App.LogRole = defaultLogRole
	}
}
