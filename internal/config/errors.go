package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database file path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidGeneratorConfigs indicates invalid password generator
	// settings (for example, a non-positive default length).
	ErrInvalidGeneratorConfigs = errors.New("invalid generator configuration")
)
