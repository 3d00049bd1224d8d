package config

import (
	"strings"
	"time"
)

// Defaults applied to any field still unset after all sources are merged.
const (
	DefaultHTTPAddress       = ":3000"
	DefaultDSN               = "./users.db"
	DefaultUploadsDir        = "./uploads"
	DefaultSessionTTL        = 24 * time.Hour
	DefaultSessionCookieName = "session_id"
	DefaultSweepInterval     = 5 * time.Minute
)

// applyDefaults fills in the defaults above for every zero-valued field of
// the merged configuration.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Storage.Files.UploadsDir == "" {
		cfg.Storage.Files.UploadsDir = DefaultUploadsDir
	}
	if cfg.App.SessionTTL == 0 {
		cfg.App.SessionTTL = DefaultSessionTTL
	}
	if cfg.App.SessionCookieName == "" {
		cfg.App.SessionCookieName = DefaultSessionCookieName
	}
	if cfg.App.SweepInterval == 0 {
		cfg.App.SweepInterval = DefaultSweepInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.SessionTTL < 0 || cfg.App.SweepInterval < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
