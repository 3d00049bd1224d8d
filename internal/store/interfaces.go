package store

import (
	"context"
	"io"

	"github.com/reut-b/profile-site/models"
)

// UserRepository is the data-access contract for the single persisted
// entity. There are deliberately no update or delete operations: a user
// record, once created, is immutable.
type UserRepository interface {
	// CreateUser inserts a new user row (password already hashed) and
	// returns it with the assigned id. Returns ErrUsernameTaken on a
	// unique-constraint violation.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the full row including the password hash,
	// or ErrUserNotFound. For auth-internal use only.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// GetUserByID returns the sanitized projection without the password
	// column, or ErrUserNotFound.
	GetUserByID(ctx context.Context, id int64) (models.UserView, error)
}

// PicturesStorage persists uploaded profile pictures and resolves stored
// names back to servable paths.
type PicturesStorage interface {
	Save(ctx context.Context, fileName string, src io.Reader) error
	Path(fileName string) (string, error)
}
