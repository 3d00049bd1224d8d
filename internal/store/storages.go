package store

import (
	"context"
	"fmt"

	"github.com/reut-b/profile-site/internal/config"
	"github.com/reut-b/profile-site/internal/logger"
)

// Storages aggregates every persistence backend the application needs:
// the relational user repository and the profile-picture file store.
type Storages struct {
	UserRepository UserRepository
	Pictures       PicturesStorage
}

// NewStorages connects the database, applies migrations, prepares the
// uploads directory, and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	pictures, err := NewPicturesStorage(cfg.Files.UploadsDir, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		Pictures:       pictures,
	}, nil
}
