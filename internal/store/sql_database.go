package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/reut-b/profile-site/internal/config"
	"github.com/reut-b/profile-site/internal/logger"
	"github.com/reut-b/profile-site/migrations"
)

// DB wraps the shared *sql.DB handle together with the goose dialect of the
// driver it was opened with.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// NewConnect opens the database backend selected by the DSN: a value
// beginning with "postgres://" opens a PostgreSQL connection via pgx, any
// other value is treated as a SQLite database file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate brings the schema up to date. Safe to call at every startup.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
