package service

import (
	"context"
	"io"

	"github.com/reut-b/profile-site/models"
)

// PictureUpload carries one uploaded profile picture through signup.
// Only the extension of FileName survives; the stored name is derived from
// the signup timestamp and username.
type PictureUpload struct {
	// FileName is the client-supplied original file name.
	FileName string

	// Data streams the file contents. A nil Data means no file was
	// uploaded.
	Data io.Reader
}

// SignupInput is the full set of fields collected by the signup form.
type SignupInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	BirthDate string
	Picture   PictureUpload
}

// AuthService implements the user-facing account operations: signup,
// credential verification, and sanitized lookup.
type AuthService interface {
	// Signup registers a new account. The steps run strictly in order:
	// username-existence check, picture file move, password hash, insert.
	// A failed file move aborts before any row is written.
	//
	// Returns the sanitized view of the created user, or:
	//   - ErrInvalidDataProvided if a required field is empty.
	//   - ErrMissingUpload if no picture was supplied.
	//   - store.ErrUsernameTaken if the username exists (pre-check or
	//     constraint violation, indistinguishably).
	//   - ErrUploadFailed if the picture cannot be persisted.
	Signup(ctx context.Context, input SignupInput) (models.UserView, error)

	// Authenticate verifies a username/password pair and returns the
	// sanitized user view on success. Unknown username and wrong password
	// both fail with ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (models.UserView, error)

	// GetUserByID returns the sanitized projection of the given user, or
	// store.ErrUserNotFound.
	GetUserByID(ctx context.Context, id int64) (models.UserView, error)
}
