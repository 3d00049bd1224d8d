package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unsupported in-memory DSN: sessions are the only
	// in-memory state this application allows).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a negative session TTL or sweep interval).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
